// Package metrics exposes Prometheus counters and histograms for the
// pipeline's network activity and timing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VariantsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lookalike",
		Name:      "variants_generated_total",
		Help:      "Variants produced by the generator, by technique.",
	}, []string{"technique"})

	DNSQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lookalike",
		Name:      "dns_queries_total",
		Help:      "DNS queries issued by the analyzer, by record kind and outcome.",
	}, []string{"kind", "outcome"})

	WhoisQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lookalike",
		Name:      "whois_queries_total",
		Help:      "WHOIS queries issued by the analyzer, by outcome.",
	}, []string{"outcome"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lookalike",
		Name:      "analysis_duration_seconds",
		Help:      "Wall-clock time to analyze one variant.",
		Buckets:   prometheus.DefBuckets,
	})

	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lookalike",
		Name:      "batch_duration_seconds",
		Help:      "Wall-clock time to analyze a full batch of variants.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})
)
