package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/berckan/lookalike/internal/model"
)

// WriteCSV renders r as CSV, grounded on the original source's
// csv.writer exporter: one row per variant, a fixed header.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"candidate", "original", "technique", "detail", "registered",
		"trust_level", "risk_score", "age_days", "creation_date",
		"registrar", "a_records", "error",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, v := range r.Variants {
		ageDays := ""
		if v.AgeDays != nil {
			ageDays = strconv.Itoa(*v.AgeDays)
		}
		created := ""
		if v.CreationDate != nil {
			created = v.CreationDate.Format("2006-01-02")
		}
		aRecords := strings.Join(v.DNSRecords[model.RecordA], ";")

		row := []string{
			v.Candidate,
			v.Original,
			string(v.Technique),
			v.Detail,
			strconv.FormatBool(v.Registered),
			string(v.TrustLevel),
			strconv.Itoa(v.RiskScore),
			ageDays,
			created,
			v.Registrar,
			aRecords,
			v.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
