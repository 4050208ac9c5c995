// Package report renders the aggregator's output in the formats the
// surrounding CLI/server/batch collaborators expose: JSON, CSV,
// console, and HTML. Every writer consumes the same Report shape.
package report

import (
	"time"

	"github.com/berckan/lookalike/internal/aggregator"
	"github.com/berckan/lookalike/internal/model"
)

// Report is the single stable shape every writer renders from.
type Report struct {
	Target        string
	GeneratedAt   time.Time
	ThresholdDays int
	Summary       aggregator.Summary
	Variants      []model.Variant
}

// New builds a Report from an analyzed, aggregator-sorted variant list.
func New(target string, thresholdDays int, variants []model.Variant) Report {
	return Report{
		Target:        target,
		GeneratedAt:   time.Now(),
		ThresholdDays: thresholdDays,
		Summary:       aggregator.Summarize(variants),
		Variants:      variants,
	}
}
