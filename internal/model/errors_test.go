package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechniqueError_UnwrapsToSentinel(t *testing.T) {
	err := &TechniqueError{Technique: TechniqueHomograph, Cause: errors.New("boom")}
	assert.True(t, errors.Is(err, ErrTechniqueFailure))
	assert.Contains(t, err.Error(), "homograph")
}

func TestLookupError_UnwrapsToSentinel(t *testing.T) {
	err := &LookupError{Stage: "dns", Cause: errors.New("timeout")}
	assert.True(t, errors.Is(err, ErrLookupFailure))
	assert.Contains(t, err.Error(), "dns")
}

func TestConfig_TechniqueEnabled(t *testing.T) {
	var empty Config
	assert.True(t, empty.TechniqueEnabled(TechniqueTLD))

	all := Config{Techniques: map[Technique]bool{Technique("all"): true}}
	assert.True(t, all.TechniqueEnabled(TechniqueBitsquatting))

	scoped := Config{Techniques: map[Technique]bool{TechniqueTLD: true}}
	assert.True(t, scoped.TechniqueEnabled(TechniqueTLD))
	assert.False(t, scoped.TechniqueEnabled(TechniqueHomograph))
}
