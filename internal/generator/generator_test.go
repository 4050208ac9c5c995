package generator

import (
	"testing"

	"github.com/berckan/lookalike/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := model.Config{MaxVariants: 500}

	g1 := New(cfg, "paypal", "com", testLogger())
	g2 := New(cfg, "paypal", "com", testLogger())

	out1 := g1.Generate()
	out2 := g2.Generate()

	require.Equal(t, len(out1), len(out2))
	for i := range out1 {
		assert.Equal(t, out1[i].Candidate, out2[i].Candidate)
		assert.Equal(t, out1[i].Technique, out2[i].Technique)
	}
}

func TestGenerate_NoDuplicateCandidates(t *testing.T) {
	cfg := model.Config{MaxVariants: 1000}
	g := New(cfg, "google", "com", testLogger())
	out := g.Generate()

	seen := make(map[string]bool)
	for _, v := range out {
		require.False(t, seen[v.Candidate], "duplicate candidate %s", v.Candidate)
		seen[v.Candidate] = true
	}
}

func TestGenerate_NeverEmitsOriginal(t *testing.T) {
	cfg := model.Config{MaxVariants: 1000}
	g := New(cfg, "amazon", "com", testLogger())
	out := g.Generate()

	for _, v := range out {
		assert.NotEqual(t, "amazon.com", v.Candidate)
	}
}

func TestGenerate_RespectsCap(t *testing.T) {
	cfg := model.Config{MaxVariants: 25}
	g := New(cfg, "microsoft", "com", testLogger())
	out := g.Generate()

	assert.LessOrEqual(t, len(out), 25)
}

func TestGenerate_EachVariantHasKnownTechnique(t *testing.T) {
	cfg := model.Config{MaxVariants: 1000}
	g := New(cfg, "apple", "com", testLogger())
	out := g.Generate()

	known := make(map[model.Technique]bool, len(model.AllTechniques))
	for _, tag := range model.AllTechniques {
		known[tag] = true
	}

	for _, v := range out {
		assert.True(t, known[v.Technique], "unexpected technique tag %q", v.Technique)
		assert.Equal(t, "apple.com", v.Original)
	}
}

func TestGenerate_TechniqueFilter(t *testing.T) {
	cfg := model.Config{
		MaxVariants: 1000,
		Techniques:  map[model.Technique]bool{model.TechniqueTLD: true},
	}
	g := New(cfg, "netflix", "com", testLogger())
	out := g.Generate()

	require.NotEmpty(t, out)
	for _, v := range out {
		assert.Equal(t, model.TechniqueTLD, v.Technique)
	}
}

func TestGenerate_AlternativeTLDScenario(t *testing.T) {
	// Scenario: netflix.com with only the tld technique enabled must
	// produce netflix.net, netflix.org, netflix.co.uk among its variants.
	cfg := model.Config{
		MaxVariants: 1000,
		Techniques:  map[model.Technique]bool{model.TechniqueTLD: true},
	}
	g := New(cfg, "netflix", "com", testLogger())
	out := g.Generate()

	candidates := make(map[string]bool, len(out))
	for _, v := range out {
		candidates[v.Candidate] = true
	}

	assert.True(t, candidates["netflix.net"])
	assert.True(t, candidates["netflix.org"])
	assert.True(t, candidates["netflix.co.uk"])
}

func TestGenerate_HomographCapScenario(t *testing.T) {
	// Scenario: paypal.com with only the homograph technique enabled and
	// cap=10 must yield exactly 10 records, each candidate differing from
	// paypal.com in exactly one code point drawn from the built-in
	// lookalike list for the replaced letter.
	cfg := model.Config{
		MaxVariants: 10,
		Techniques:  map[model.Technique]bool{model.TechniqueHomograph: true},
	}
	g := New(cfg, "paypal", "com", testLogger())
	out := g.Generate()

	require.Len(t, out, 10)

	original := []rune("paypal")
	for _, v := range out {
		assert.Equal(t, model.TechniqueHomograph, v.Technique)

		name, tld, err := splitCanonical(v.Candidate)
		require.NoError(t, err)
		assert.Equal(t, "com", tld)

		candidateRunes := []rune(name)
		require.Len(t, candidateRunes, len(original))

		diffs := 0
		for i, r := range candidateRunes {
			if r == original[i] {
				continue
			}
			diffs++
			lookalikes := HomographMap[byte(original[i])]
			if len(lookalikes) > 3 {
				lookalikes = lookalikes[:3]
			}
			assert.Contains(t, lookalikes, r, "substituted rune %q at position %d not in the built-in lookalike list", r, i)
		}
		assert.Equal(t, 1, diffs, "candidate %q must differ from paypal in exactly one code point", v.Candidate)
	}
}

func TestGenerate_SingleCharOmissionYieldsNothing(t *testing.T) {
	cfg := model.Config{
		MaxVariants: 10,
		Techniques:  map[model.Technique]bool{model.TechniqueOmission: true},
	}
	g := New(cfg, "a", "com", testLogger())
	out := g.Generate()

	assert.Empty(t, out)
}

func TestGenerate_BitsquattingStaysLowercaseASCII(t *testing.T) {
	cfg := model.Config{
		MaxVariants: 1000,
		Techniques:  map[model.Technique]bool{model.TechniqueBitsquatting: true},
	}
	g := New(cfg, "github", "com", testLogger())
	out := g.Generate()

	for _, v := range out {
		name, _, err := splitCanonical(v.Candidate)
		require.NoError(t, err)
		for _, r := range name {
			assert.True(t, r >= 'a' && r <= 'z' || r == '-', "unexpected rune %q in %s", r, v.Candidate)
		}
	}
}

func splitCanonical(candidate string) (string, string, error) {
	for i := len(candidate) - 1; i >= 0; i-- {
		if candidate[i] == '.' {
			return candidate[:i], candidate[i+1:], nil
		}
	}
	return candidate, "", nil
}

func TestTechniqueDescription_KnownAndUnknown(t *testing.T) {
	for _, tag := range model.AllTechniques {
		assert.NotEmpty(t, TechniqueDescription(tag))
	}
	assert.Equal(t, "no description available", TechniqueDescription(model.Technique("bogus")))
}
