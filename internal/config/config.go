// Package config loads the immutable run configuration from defaults,
// an optional YAML file, and environment variables, in the style of the
// pack's viper_config.go.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/berckan/lookalike/internal/model"
	"github.com/spf13/viper"
)

// Options is the raw set of fields the CLI/server/batch driver collect
// (from flags, a config file, or defaults) before they're frozen into a
// model.Config for the pipeline.
type Options struct {
	Target              string
	ThresholdDays        int
	MaxVariants          int
	Techniques           []string
	NoDNS                bool
	NoWHOIS              bool
	Workers              int
	TimeoutSeconds       float64
	ThrottleMilliseconds int
	ResolverAddr         string
	RateLimit            int
	OutputFormat         string
	OutputFile           string
	IncludeUnregistered  bool
	LogLevel             string
}

// Load reads defaults, an optional "lookalike.yaml" config file from the
// working directory or its two parents, and environment variables
// (LOOKALIKE_* prefix), via viper. CLI flags are applied on top by the
// caller, which always wins over file/env — the same precedence order
// as the pack's viper_config.go.
func Load() (Options, error) {
	v := viper.New()
	v.SetConfigName("lookalike")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	v.AddConfigPath("../..")

	v.SetDefault("threshold_days", 730)
	v.SetDefault("max_variants", 1000)
	v.SetDefault("workers", 10)
	v.SetDefault("timeout_seconds", 5.0)
	v.SetDefault("throttle_milliseconds", 100)
	v.SetDefault("resolver_addr", "8.8.8.8:53")
	v.SetDefault("rate_limit", 10)
	v.SetDefault("output_format", "console")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("LOOKALIKE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Options{}, fmt.Errorf("error reading config: %w", err)
		}
	}

	return Options{
		ThresholdDays:        v.GetInt("threshold_days"),
		MaxVariants:          v.GetInt("max_variants"),
		Workers:              v.GetInt("workers"),
		TimeoutSeconds:       v.GetFloat64("timeout_seconds"),
		ThrottleMilliseconds: v.GetInt("throttle_milliseconds"),
		ResolverAddr:         v.GetString("resolver_addr"),
		RateLimit:            v.GetInt("rate_limit"),
		OutputFormat:         v.GetString("output_format"),
		LogLevel:             v.GetString("log_level"),
	}, nil
}

// Build freezes Options into the immutable model.Config the pipeline
// consumes.
func (o Options) Build() model.Config {
	techniques := make(map[model.Technique]bool)
	for _, t := range o.Techniques {
		t = strings.TrimSpace(strings.ToLower(t))
		if t == "" {
			continue
		}
		techniques[model.Technique(t)] = true
	}

	return model.Config{
		Target:              o.Target,
		ThresholdDays:        o.ThresholdDays,
		MaxVariants:          o.MaxVariants,
		Techniques:           techniques,
		DNSEnabled:           !o.NoDNS,
		WHOISEnabled:         !o.NoWHOIS,
		Workers:              o.Workers,
		QueryTimeout:         time.Duration(o.TimeoutSeconds * float64(time.Second)),
		Throttle:             time.Duration(o.ThrottleMilliseconds) * time.Millisecond,
		ResolverAddr:         o.ResolverAddr,
		RateLimit:            o.RateLimit,
		OutputFormat:         o.OutputFormat,
		OutputFile:           o.OutputFile,
		IncludeUnregistered:  o.IncludeUnregistered,
	}
}
