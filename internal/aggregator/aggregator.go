// Package aggregator collects analyzed variants, sorts them by risk,
// and exposes the single stable record shape report writers consume.
package aggregator

import (
	"sort"

	"github.com/berckan/lookalike/internal/model"
)

// Summary is the always-well-defined aggregate count by trust level
// that spec.md §7 promises regardless of individual variant errors.
type Summary struct {
	Total          int
	Registered     int
	ByTrustLevel   map[model.TrustLevel]int
	WithErrors     int
}

// Sort re-sorts analyzed descending by RiskScore, ties broken by
// Candidate ascending for determinism. The input slice is sorted
// in place and also returned.
func Sort(analyzed []model.Variant) []model.Variant {
	sort.SliceStable(analyzed, func(i, j int) bool {
		if analyzed[i].RiskScore != analyzed[j].RiskScore {
			return analyzed[i].RiskScore > analyzed[j].RiskScore
		}
		return analyzed[i].Candidate < analyzed[j].Candidate
	})
	return analyzed
}

// FilterRegistered returns only the variants with Registered == true,
// for consumers that only want hits.
func FilterRegistered(analyzed []model.Variant) []model.Variant {
	out := make([]model.Variant, 0, len(analyzed))
	for _, v := range analyzed {
		if v.Registered {
			out = append(out, v)
		}
	}
	return out
}

// Summarize computes the aggregate counts by trust level. It is always
// well-defined even when individual variants carry an Error.
func Summarize(analyzed []model.Variant) Summary {
	s := Summary{
		Total:        len(analyzed),
		ByTrustLevel: make(map[model.TrustLevel]int),
	}
	for _, v := range analyzed {
		if v.Registered {
			s.Registered++
		}
		if v.Error != "" {
			s.WithErrors++
		}
		s.ByTrustLevel[v.TrustLevel]++
	}
	return s
}

// Suspicious reports whether analyzed contains at least one registered
// variant whose trust level is critical, high_risk, or suspicious — the
// condition the CLI collaborator maps to exit code 2.
func Suspicious(analyzed []model.Variant) bool {
	for _, v := range analyzed {
		if !v.Registered {
			continue
		}
		switch v.TrustLevel {
		case model.TrustCritical, model.TrustHighRisk, model.TrustSuspicious:
			return true
		}
	}
	return false
}
