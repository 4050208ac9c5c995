package parser

import (
	"testing"

	"github.com/berckan/lookalike/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PlainDomain(t *testing.T) {
	name, tld, err := Parse("example.com")
	require.NoError(t, err)
	assert.Equal(t, "example", name)
	assert.Equal(t, "com", tld)
}

func TestParse_StripsSchemeAndPath(t *testing.T) {
	name, tld, err := Parse("https://www.example.com/login?x=1")
	require.NoError(t, err)
	assert.Equal(t, "example", name)
	assert.Equal(t, "com", tld)
}

func TestParse_MultiLabelSuffix(t *testing.T) {
	name, tld, err := Parse("example.co.uk")
	require.NoError(t, err)
	assert.Equal(t, "example", name)
	assert.Equal(t, "co.uk", tld)
}

func TestParse_BareNameDefaultsToCom(t *testing.T) {
	name, tld, err := Parse("example")
	require.NoError(t, err)
	assert.Equal(t, "example", name)
	assert.Equal(t, "com", tld)
}

func TestParse_EmptyIsInvalid(t *testing.T) {
	_, _, err := Parse("   ")
	assert.ErrorIs(t, err, model.ErrInvalidTarget)
}

func TestParse_UppercaseIsLowercased(t *testing.T) {
	name, tld, err := Parse("EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "example", name)
	assert.Equal(t, "com", tld)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "example.com", Canonical("example", "com"))
}
