// Package handlers implements the HTTP surface for the lookalike
// pipeline, adapted from the teacher's domain-checker handlers: the
// same html/template rendering shape, now driving generator+analyzer
// instead of a single WHOIS availability check.
package handlers

import (
	"context"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/berckan/lookalike/internal/aggregator"
	"github.com/berckan/lookalike/internal/analyzer"
	"github.com/berckan/lookalike/internal/config"
	"github.com/berckan/lookalike/internal/generator"
	"github.com/berckan/lookalike/internal/model"
	"github.com/berckan/lookalike/internal/parser"
	"github.com/rs/zerolog"
)

var templates = template.Must(template.ParseGlob("web/templates/*.html"))

// Server holds the shared base config and logger every handler uses to
// run the pipeline for a posted target.
type Server struct {
	BaseOptions config.Options
	Log         zerolog.Logger
}

// New builds a Server from a loaded config.Options baseline.
func New(base config.Options, log zerolog.Logger) *Server {
	return &Server{BaseOptions: base, Log: log}
}

// Home renders the landing page with the analyze form.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	templates.ExecuteTemplate(w, "index.html", nil)
}

// Healthz reports liveness for load balancers and uptime checks.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type analyzeView struct {
	Target   string
	Summary  aggregator.Summary
	Variants []model.Variant
}

// Analyze handles a single-target lookalike scan submitted via HTMX and
// renders the result partial.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	target := strings.TrimSpace(r.FormValue("domain"))
	if target == "" {
		http.Error(w, "domain is required", http.StatusBadRequest)
		return
	}

	view, err := s.runOne(r.Context(), target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	templates.ExecuteTemplate(w, "result.html", view)
}

// AnalyzeBulk handles a newline-separated list of targets, capped at 20
// per request to bound server load, mirroring the teacher's 50-domain
// cap on bulk WHOIS checks.
func (s *Server) AnalyzeBulk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lines := strings.Split(r.FormValue("domains"), "\n")
	var targets []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t != "" {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		http.Error(w, "no domains provided", http.StatusBadRequest)
		return
	}
	if len(targets) > 20 {
		targets = targets[:20]
	}

	var views []analyzeView
	for _, t := range targets {
		view, err := s.runOne(r.Context(), t)
		if err != nil {
			s.Log.Warn().Err(err).Str("target", t).Msg("skipping invalid target")
			continue
		}
		views = append(views, view)
	}

	templates.ExecuteTemplate(w, "results-bulk.html", views)
}

func (s *Server) runOne(ctx context.Context, target string) (analyzeView, error) {
	name, tld, err := parser.Parse(target)
	if err != nil {
		return analyzeView{}, err
	}

	o := s.BaseOptions
	o.Target = target
	cfg := o.Build()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	gen := generator.New(cfg, name, tld, s.Log)
	variants := gen.Generate()

	an := analyzer.New(ctx, cfg, s.Log)
	analyzed := aggregator.Sort(an.AnalyzeAll(ctx, variants))

	return analyzeView{
		Target:   parser.Canonical(name, tld),
		Summary:  aggregator.Summarize(analyzed),
		Variants: analyzed,
	}, nil
}
