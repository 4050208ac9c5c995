package aggregator

import (
	"testing"

	"github.com/berckan/lookalike/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variant(candidate string, score int, registered bool, level model.TrustLevel) model.Variant {
	v := model.NewVariant("example", candidate, model.TechniqueTLD, "")
	v.RiskScore = score
	v.Registered = registered
	v.TrustLevel = level
	return v
}

func TestSort_DescendingByScoreTiesByCandidate(t *testing.T) {
	in := []model.Variant{
		variant("b.com", 50, true, model.TrustModerate),
		variant("a.com", 95, true, model.TrustCritical),
		variant("c.com", 95, true, model.TrustCritical),
	}

	out := Sort(in)

	require.Len(t, out, 3)
	assert.Equal(t, "a.com", out[0].Candidate)
	assert.Equal(t, "c.com", out[1].Candidate)
	assert.Equal(t, "b.com", out[2].Candidate)
}

func TestFilterRegistered(t *testing.T) {
	in := []model.Variant{
		variant("reg.com", 80, true, model.TrustHighRisk),
		variant("unreg.com", 0, false, model.TrustUnregistered),
	}

	out := FilterRegistered(in)
	require.Len(t, out, 1)
	assert.Equal(t, "reg.com", out[0].Candidate)
}

func TestSummarize(t *testing.T) {
	in := []model.Variant{
		variant("a.com", 95, true, model.TrustCritical),
		variant("b.com", 0, false, model.TrustUnregistered),
	}
	in[0].Error = "dns timeout"

	s := Summarize(in)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Registered)
	assert.Equal(t, 1, s.WithErrors)
	assert.Equal(t, 1, s.ByTrustLevel[model.TrustCritical])
	assert.Equal(t, 1, s.ByTrustLevel[model.TrustUnregistered])
}

func TestSuspicious(t *testing.T) {
	assert.False(t, Suspicious([]model.Variant{
		variant("a.com", 35, true, model.TrustModerate),
	}))
	assert.True(t, Suspicious([]model.Variant{
		variant("a.com", 35, true, model.TrustModerate),
		variant("b.com", 70, true, model.TrustSuspicious),
	}))
	assert.False(t, Suspicious([]model.Variant{
		variant("a.com", 95, false, model.TrustCritical),
	}))
}
