// Command lookalike-server exposes the lookalike pipeline over HTTP,
// grounded on the teacher's cmd/server + internal/handlers.
package main

import (
	"net/http"
	"os"

	"github.com/berckan/lookalike/internal/config"
	"github.com/berckan/lookalike/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	base, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	srv := handlers.New(base, log)

	fs := http.FileServer(http.Dir("web/static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	http.HandleFunc("/", srv.Home)
	http.HandleFunc("/healthz", srv.Healthz)
	http.HandleFunc("/analyze", srv.Analyze)
	http.HandleFunc("/analyze-bulk", srv.AnalyzeBulk)
	http.Handle("/metrics", promhttp.Handler())

	log.Info().Str("port", port).Msg("server starting")
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
