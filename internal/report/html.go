package report

import (
	"html/template"
	"io"
	"strconv"
)

var htmlFuncs = template.FuncMap{
	"ageDays": func(v *int) string {
		if v == nil {
			return "—"
		}
		return strconv.Itoa(*v)
	},
}

const htmlTemplateSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Lookalike Domain Report — {{.Target}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
  background: #0f172a; color: #e2e8f0; padding: 2rem; }
h1 { color: #f8fafc; }
.meta { color: #64748b; margin-bottom: 2rem; }
.summary { display: flex; gap: 1rem; flex-wrap: wrap; margin-bottom: 2rem; }
.stat-card { background: #1e293b; padding: 1rem 1.5rem; border-radius: 0.5rem; border: 1px solid #334155; }
.stat-card h3 { color: #94a3b8; font-size: 0.8rem; text-transform: uppercase; margin: 0; }
.stat-card .value { font-size: 1.75rem; font-weight: bold; color: #f8fafc; }
table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
th, td { padding: 0.6rem; text-align: left; border-bottom: 1px solid #334155; }
th { background: #1e293b; color: #94a3b8; text-transform: uppercase; font-size: 0.7rem; }
.badge { padding: 0.2rem 0.5rem; border-radius: 0.25rem; font-size: 0.7rem; font-weight: 600; }
.badge-critical, .badge-high_risk { background: #7f1d1d; color: #fecaca; }
.badge-suspicious, .badge-low_trust { background: #78350f; color: #fde68a; }
.badge-moderate, .badge-established { background: #14532d; color: #bbf7d0; }
.badge-unknown { background: #4c1d95; color: #ddd6fe; }
.badge-unregistered { background: #1e293b; color: #64748b; }
.domain { font-family: monospace; color: #38bdf8; }
.technique { font-family: monospace; color: #a78bfa; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>Lookalike Domain Report</h1>
<p class="meta">Target: <strong>{{.Target}}</strong> | Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}} | Threshold: {{.ThresholdDays}} days</p>

<div class="summary">
<div class="stat-card"><h3>Total</h3><div class="value">{{.Summary.Total}}</div></div>
<div class="stat-card"><h3>Registered</h3><div class="value">{{.Summary.Registered}}</div></div>
<div class="stat-card"><h3>With Errors</h3><div class="value">{{.Summary.WithErrors}}</div></div>
</div>

<table>
<thead><tr><th>Trust</th><th>Domain</th><th>Technique</th><th>Age (days)</th><th>Registrar</th></tr></thead>
<tbody>
{{range .Variants}}
<tr>
<td><span class="badge badge-{{.TrustLevel}}">{{.TrustLevel}}</span></td>
<td class="domain">{{.Candidate}}</td>
<td class="technique">{{.Technique}}</td>
<td>{{ageDays .AgeDays}}</td>
<td>{{.Registrar}}</td>
</tr>
{{end}}
</tbody>
</table>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Funcs(htmlFuncs).Parse(htmlTemplateSource))

// WriteHTML renders r as a self-contained HTML report, grounded on the
// original source's export_html_report and the teacher's own use of
// html/template.
func WriteHTML(w io.Writer, r Report) error {
	return htmlTemplate.Execute(w, r)
}
