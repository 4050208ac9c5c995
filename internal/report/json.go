package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/berckan/lookalike/internal/model"
)

type variantJSON struct {
	Original     string                            `json:"original"`
	Candidate    string                            `json:"candidate"`
	Technique    string                            `json:"technique"`
	Detail       string                            `json:"detail"`
	Registered   bool                              `json:"registered"`
	DNSRecords   map[string][]string               `json:"dns_records"`
	Whois        map[string]string                 `json:"whois"`
	CreationDate *time.Time                        `json:"creation_date"`
	Registrar    string                            `json:"registrar"`
	AgeDays      *int                              `json:"age_days"`
	TrustLevel   string                            `json:"trust_level"`
	RiskScore    int                                `json:"risk_score"`
	Error        string                            `json:"error"`
}

func toVariantJSON(v model.Variant) variantJSON {
	dns := make(map[string][]string, len(v.DNSRecords))
	for k, recs := range v.DNSRecords {
		dns[string(k)] = recs
	}
	if dns == nil {
		dns = map[string][]string{}
	}

	whois := v.Whois
	if whois == nil {
		whois = map[string]string{}
	}

	return variantJSON{
		Original:     v.Original,
		Candidate:    v.Candidate,
		Technique:    string(v.Technique),
		Detail:       v.Detail,
		Registered:   v.Registered,
		DNSRecords:   dns,
		Whois:        whois,
		CreationDate: v.CreationDate,
		Registrar:    v.Registrar,
		AgeDays:      v.AgeDays,
		TrustLevel:   string(v.TrustLevel),
		RiskScore:    v.RiskScore,
		Error:        v.Error,
	}
}

type reportJSON struct {
	Target        string                 `json:"target"`
	GeneratedAt   time.Time              `json:"generated_at"`
	ThresholdDays int                    `json:"threshold_days"`
	Summary       map[string]interface{} `json:"summary"`
	Variants      []variantJSON          `json:"variants"`
}

// WriteJSON renders r as indented JSON. Instants use Go's default
// ISO-8601 (RFC 3339) time.Time encoding; every Variant key is present:
// an absent creation_date or age_days is emitted as JSON null, and an
// absent registrar or error as an empty string, rather than omitted.
func WriteJSON(w io.Writer, r Report) error {
	variants := make([]variantJSON, 0, len(r.Variants))
	for _, v := range r.Variants {
		variants = append(variants, toVariantJSON(v))
	}

	byTrust := make(map[string]int, len(r.Summary.ByTrustLevel))
	for k, v := range r.Summary.ByTrustLevel {
		byTrust[string(k)] = v
	}

	doc := reportJSON{
		Target:        r.Target,
		GeneratedAt:   r.GeneratedAt,
		ThresholdDays: r.ThresholdDays,
		Summary: map[string]interface{}{
			"total":           r.Summary.Total,
			"registered":      r.Summary.Registered,
			"with_errors":     r.Summary.WithErrors,
			"by_trust_level":  byTrust,
		},
		Variants: variants,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
