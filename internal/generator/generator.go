// Package generator expands a (name, tld) pair into a deduplicated,
// ordered sequence of lookalike-domain variants across sixteen named
// techniques.
package generator

import (
	"fmt"

	"github.com/berckan/lookalike/internal/metrics"
	"github.com/berckan/lookalike/internal/model"
	"github.com/berckan/lookalike/internal/parser"
	"github.com/rs/zerolog"
)

// Generator is single-threaded and pure: it holds the emitted-set and
// the variant-count cap as its only state. It is not safe to call
// concurrently from multiple goroutines against the same instance — the
// contract is one fresh Generator per target.
type Generator struct {
	cfg      model.Config
	name     string
	tld      string
	original string

	emitted map[string]bool
	out     []model.Variant

	log zerolog.Logger
}

// New builds a Generator for one (name, tld) target under cfg.
func New(cfg model.Config, name, tld string, log zerolog.Logger) *Generator {
	return &Generator{
		cfg:      cfg,
		name:     name,
		tld:      tld,
		original: parser.Canonical(name, tld),
		emitted:  make(map[string]bool),
		log:      log,
	}
}

type techniqueFunc func(g *Generator)

// order is the fixed technique iteration order; output is reproducible
// across runs given identical inputs.
var order = []struct {
	tag Technique
	fn  techniqueFunc
}{
	{model.TechniqueHomograph, (*Generator).genHomograph},
	{model.TechniqueLeetspeak, (*Generator).genLeetspeak},
	{model.TechniqueTypo, (*Generator).genTypo},
	{model.TechniquePhonetic, (*Generator).genPhonetic},
	{model.TechniqueRepetition, (*Generator).genRepetition},
	{model.TechniqueOmission, (*Generator).genOmission},
	{model.TechniqueInsertion, (*Generator).genInsertion},
	{model.TechniqueTransposition, (*Generator).genTransposition},
	{model.TechniqueHyphenation, (*Generator).genHyphenation},
	{model.TechniqueTLD, (*Generator).genTLD},
	{model.TechniquePrefix, (*Generator).genPrefix},
	{model.TechniqueSuffix, (*Generator).genSuffix},
	{model.TechniqueVowelSwap, (*Generator).genVowelSwap},
	{model.TechniqueDoubleChar, (*Generator).genDoubleChar},
	{model.TechniqueBitsquatting, (*Generator).genBitsquatting},
	{model.TechniqueSubdomain, (*Generator).genSubdomain},
}

// Technique is a re-export of model.Technique for callers that only
// import this package.
type Technique = model.Technique

// Generate produces the ordered, deduplicated, capped sequence of
// variants for the generator's target. A per-technique panic or error
// is recovered, logged at warn, and the run continues with the next
// technique — a single technique's failure never aborts generation.
func (g *Generator) Generate() []model.Variant {
	g.out = nil

	for _, entry := range order {
		if !g.cfg.TechniqueEnabled(entry.tag) {
			continue
		}
		if g.capReached() {
			break
		}
		g.runTechnique(entry.tag, entry.fn)
	}

	return g.out
}

func (g *Generator) runTechnique(tag Technique, fn techniqueFunc) {
	defer func() {
		if r := recover(); r != nil {
			err := &model.TechniqueError{Technique: tag, Cause: fmt.Errorf("%v", r)}
			g.log.Warn().Err(err).Str("technique", string(tag)).Msg("technique panicked, skipping")
		}
	}()
	fn(g)
}

func (g *Generator) capReached() bool {
	max := g.cfg.MaxVariants
	if max <= 0 {
		max = 1000
	}
	return len(g.out) >= max
}

// emit canonicalizes candidateName+candidateTLD, deduplicates against
// the emitted-set, and appends a new Variant if it is unique, not equal
// to the original, and the cap has not yet been reached. It returns
// true once the cap is reached so callers can stop early.
func (g *Generator) emit(tag Technique, detail, candidateName, candidateTLD string) (capHit bool) {
	if g.capReached() {
		return true
	}

	candidate := parser.Canonical(candidateName, candidateTLD)
	if candidate == g.original {
		return false
	}

	key := candidate
	if g.emitted[key] {
		return false
	}
	g.emitted[key] = true

	v := model.NewVariant(g.original, candidate, tag, detail)
	g.out = append(g.out, v)
	metrics.VariantsGenerated.WithLabelValues(string(tag)).Inc()

	return g.capReached()
}
