// Command batch-scan runs the lookalike pipeline against a list of
// target domains and emails a summary of suspicious findings, grounded
// on the teacher's cmd/daily-scan driver.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/berckan/lookalike/internal/aggregator"
	"github.com/berckan/lookalike/internal/analyzer"
	"github.com/berckan/lookalike/internal/config"
	"github.com/berckan/lookalike/internal/generator"
	"github.com/berckan/lookalike/internal/metrics"
	"github.com/berckan/lookalike/internal/model"
	"github.com/berckan/lookalike/internal/parser"
	"github.com/rs/zerolog"
)

type targetResult struct {
	Target     string             `json:"target"`
	Summary    aggregator.Summary `json:"summary"`
	Suspicious []model.Variant    `json:"suspicious"`
}

func main() {
	listPath := os.Getenv("TARGETS_FILE")
	if listPath == "" && len(os.Args) > 1 {
		listPath = os.Args[1]
	}
	if listPath == "" {
		fmt.Println("usage: batch-scan <targets-file>")
		os.Exit(1)
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	targets, err := readTargets(listPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read targets file")
	}

	opts, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Starting batch scan of %d targets...\n", len(targets))

	batchStart := time.Now()
	var results []targetResult
	for _, target := range targets {
		fmt.Printf("Scanning %s...\n", target)
		res, err := scanOne(ctx, target, opts, log)
		if err != nil {
			log.Warn().Err(err).Str("target", target).Msg("skipping target")
			continue
		}
		results = append(results, res)
	}
	metrics.BatchDuration.Observe(time.Since(batchStart).Seconds())

	outFile := opts.OutputFile
	if outFile == "" {
		outFile = "batch-scan-report.json"
	}
	if err := writeSummary(outFile, results); err != nil {
		log.Error().Err(err).Msg("failed to write summary report")
	}

	var allSuspicious []model.Variant
	for _, r := range results {
		allSuspicious = append(allSuspicious, r.Suspicious...)
	}

	fmt.Printf("Scan complete: %d suspicious lookalikes found across %d targets\n", len(allSuspicious), len(results))

	apiKey := os.Getenv("RESEND_API_KEY")
	emailTo := os.Getenv("EMAIL_TO")
	if len(allSuspicious) == 0 {
		fmt.Println("No suspicious lookalikes found, skipping email")
		return
	}
	if apiKey == "" || emailTo == "" {
		fmt.Println("RESEND_API_KEY / EMAIL_TO not set, skipping email")
		return
	}

	if err := sendEmail(apiKey, emailTo, allSuspicious); err != nil {
		log.Error().Err(err).Msg("failed to send summary email")
		os.Exit(1)
	}
	fmt.Println("Summary email sent")
}

func readTargets(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var targets []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	return targets, sc.Err()
}

func scanOne(ctx context.Context, target string, opts config.Options, log zerolog.Logger) (targetResult, error) {
	name, tld, err := parser.Parse(target)
	if err != nil {
		return targetResult{}, fmt.Errorf("invalid target %q: %w", target, err)
	}

	o := opts
	o.Target = target
	cfg := o.Build()

	scoped := log.With().Str("target", target).Logger()

	gen := generator.New(cfg, name, tld, scoped)
	variants := gen.Generate()

	an := analyzer.New(ctx, cfg, scoped)
	analyzed := aggregator.Sort(an.AnalyzeAll(ctx, variants))

	suspicious := make([]model.Variant, 0)
	for _, v := range analyzed {
		if !v.Registered {
			continue
		}
		switch v.TrustLevel {
		case model.TrustCritical, model.TrustHighRisk, model.TrustSuspicious:
			suspicious = append(suspicious, v)
		}
	}

	return targetResult{
		Target:     parser.Canonical(name, tld),
		Summary:    aggregator.Summarize(analyzed),
		Suspicious: suspicious,
	}, nil
}

// domainRisk is one row of the domains_by_risk ranking: a per-target
// rollup sorted by critical+suspicious descending, grounded on
// batch_analyzer.py's generate_summary_report.
type domainRisk struct {
	Domain     string `json:"domain"`
	Registered int    `json:"registered"`
	Suspicious int    `json:"suspicious"`
	Critical   int    `json:"critical"`
}

type reportMetadata struct {
	GeneratedAt            time.Time `json:"generated_at"`
	TotalDomainsAnalyzed   int       `json:"total_domains_analyzed"`
	TotalVariantsGenerated int       `json:"total_variants_generated"`
	TotalRegisteredFound   int       `json:"total_registered_found"`
	TotalSuspicious        int       `json:"total_suspicious"`
	TotalCritical          int       `json:"total_critical"`
}

func writeSummary(path string, results []targetResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	meta := reportMetadata{GeneratedAt: time.Now(), TotalDomainsAnalyzed: len(results)}
	byRisk := make([]domainRisk, 0, len(results))
	for _, r := range results {
		critical := r.Summary.ByTrustLevel[model.TrustCritical]
		suspicious := r.Summary.ByTrustLevel[model.TrustCritical] +
			r.Summary.ByTrustLevel[model.TrustHighRisk] +
			r.Summary.ByTrustLevel[model.TrustSuspicious] +
			r.Summary.ByTrustLevel[model.TrustLowTrust]

		meta.TotalVariantsGenerated += r.Summary.Total
		meta.TotalRegisteredFound += r.Summary.Registered
		meta.TotalSuspicious += suspicious
		meta.TotalCritical += critical

		byRisk = append(byRisk, domainRisk{
			Domain:     r.Target,
			Registered: r.Summary.Registered,
			Suspicious: suspicious,
			Critical:   critical,
		})
	}

	sort.SliceStable(byRisk, func(i, j int) bool {
		return (byRisk[i].Critical + byRisk[i].Suspicious) > (byRisk[j].Critical + byRisk[j].Suspicious)
	})

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		ReportMetadata  reportMetadata `json:"report_metadata"`
		DomainsByRisk   []domainRisk   `json:"domains_by_risk"`
		DetailedResults []targetResult `json:"detailed_results"`
	}{
		ReportMetadata:  meta,
		DomainsByRisk:   byRisk,
		DetailedResults: results,
	})
}

// sendEmail builds an HTML summary of suspicious lookalike registrations
// and sends it via the Resend API, in the teacher's table-based email
// layout repurposed from available-domain announcements to risk alerts.
func sendEmail(apiKey, to string, variants []model.Variant) error {
	byTrust := make(map[model.TrustLevel][]model.Variant)
	for _, v := range variants {
		byTrust[v.TrustLevel] = append(byTrust[v.TrustLevel], v)
	}

	var html strings.Builder
	html.WriteString(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4;">
<table width="100%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px 0;">
<tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">

<tr>
<td style="background-color: #7f1d1d; padding: 30px; text-align: center;">
<h1 style="color: #fecaca; margin: 0; font-family: Arial, sans-serif; font-size: 28px;">Lookalike Domain Alert</h1>
<p style="color: #fca5a5; margin: 10px 0 0 0; font-family: Arial, sans-serif; font-size: 14px;">Batch Scan Report</p>
</td>
</tr>

<tr>
<td style="padding: 30px; text-align: center; border-bottom: 1px solid #e5e5e5;">
<p style="font-family: Arial, sans-serif; font-size: 18px; color: #333; margin: 0;">
Found <strong style="color: #b91c1c; font-size: 32px;">`)
	html.WriteString(fmt.Sprintf("%d", len(variants)))
	html.WriteString(`</strong> suspicious registrations
</p>
<p style="font-family: Arial, sans-serif; font-size: 12px; color: #999; margin: 10px 0 0 0;">`)
	html.WriteString(time.Now().Format("January 2, 2006"))
	html.WriteString(`</p>
</td>
</tr>

<tr>
<td style="padding: 20px 30px;">
`)

	for _, level := range []model.TrustLevel{model.TrustCritical, model.TrustHighRisk, model.TrustSuspicious} {
		group := byTrust[level]
		if len(group) == 0 {
			continue
		}
		html.WriteString(fmt.Sprintf(`
<table width="100%%" cellpadding="0" cellspacing="0" style="margin-bottom: 20px;">
<tr>
<td style="background-color: #fef2f2; padding: 10px 15px; border-radius: 6px 6px 0 0; border-left: 4px solid #b91c1c;">
<strong style="font-family: Arial, sans-serif; font-size: 16px; color: #7f1d1d;">%s</strong>
<span style="font-family: Arial, sans-serif; font-size: 12px; color: #666; margin-left: 8px;">(%d domains)</span>
</td>
</tr>
<tr>
<td style="padding: 15px; background-color: #fafafa; border-radius: 0 0 6px 6px;">
`, level, len(group)))

		for i, v := range group {
			if i > 0 {
				html.WriteString(` `)
			}
			html.WriteString(fmt.Sprintf(`<code style="display: inline-block; background-color: #ffffff; border: 1px solid #d1d5db; padding: 6px 12px; border-radius: 4px; font-family: 'Courier New', monospace; font-size: 14px; color: #111; margin: 3px;">%s</code>`, v.Candidate))
		}

		html.WriteString(`
</td>
</tr>
</table>
`)
	}

	html.WriteString(`
</td>
</tr>

<tr>
<td style="background-color: #f9f9f9; padding: 20px 30px; text-align: center; border-top: 1px solid #e5e5e5;">
<p style="font-family: Arial, sans-serif; font-size: 12px; color: #999; margin: 0;">Sent by Lookalike Scanner</p>
</td>
</tr>

</table>
</td></tr>
</table>
</body>
</html>`)

	payload := map[string]interface{}{
		"from":    "Lookalike Scanner <onboarding@resend.dev>",
		"to":      []string{to},
		"subject": fmt.Sprintf("%d suspicious lookalike domains found - %s", len(variants), time.Now().Format("Jan 2")),
		"html":    html.String(),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}
	return nil
}
