package report

import (
	"fmt"
	"io"

	"github.com/berckan/lookalike/internal/model"
	"github.com/fatih/color"
)

var trustColor = map[model.TrustLevel]*color.Color{
	model.TrustCritical:    color.New(color.FgRed, color.Bold),
	model.TrustHighRisk:    color.New(color.FgRed),
	model.TrustSuspicious:  color.New(color.FgYellow, color.Bold),
	model.TrustLowTrust:    color.New(color.FgYellow),
	model.TrustModerate:    color.New(color.FgCyan),
	model.TrustEstablished: color.New(color.FgGreen),
	model.TrustUnknown:     color.New(color.FgMagenta),
	model.TrustUnregistered: color.New(color.FgHiBlack),
}

// WriteConsole renders a risk-colored table, grounded on the teacher's
// html/template result rendering but adapted for a terminal surface.
// Unregistered variants are only shown when includeUnregistered is set.
func WriteConsole(w io.Writer, r Report, includeUnregistered bool) {
	fmt.Fprintf(w, "Target: %s\n", r.Target)
	fmt.Fprintf(w, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Threshold: %d days\n\n", r.ThresholdDays)

	fmt.Fprintf(w, "Total variants: %d  Registered: %d  With errors: %d\n",
		r.Summary.Total, r.Summary.Registered, r.Summary.WithErrors)
	for _, level := range []model.TrustLevel{
		model.TrustCritical, model.TrustHighRisk, model.TrustSuspicious,
		model.TrustLowTrust, model.TrustModerate, model.TrustEstablished,
		model.TrustUnknown, model.TrustUnregistered,
	} {
		if count := r.Summary.ByTrustLevel[level]; count > 0 {
			c := trustColor[level]
			c.Fprintf(w, "  %-14s %d\n", level, count)
		}
	}
	fmt.Fprintln(w)

	for _, v := range r.Variants {
		if !v.Registered && !includeUnregistered {
			continue
		}
		c := trustColor[v.TrustLevel]
		if c == nil {
			c = color.New(color.FgWhite)
		}
		c.Fprintf(w, "[%s] %s", v.TrustLevel, v.Candidate)
		fmt.Fprintf(w, "  (%s, score %d)\n", v.Technique, v.RiskScore)
		if v.AgeDays != nil {
			fmt.Fprintf(w, "    age: %d days", *v.AgeDays)
			if v.CreationDate != nil {
				fmt.Fprintf(w, "  created: %s", v.CreationDate.Format("2006-01-02"))
			}
			fmt.Fprintln(w)
		}
		if v.Registrar != "" {
			fmt.Fprintf(w, "    registrar: %s\n", v.Registrar)
		}
		if v.Error != "" {
			color.New(color.FgHiBlack).Fprintf(w, "    error: %s\n", v.Error)
		}
	}
}
