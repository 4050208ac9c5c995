// Command lookalike generates and scores lookalike domain variants for a
// target domain, in the Cobra-based CLI style of the pack's dnsctl and
// Hyper-ZiLLA collaborators.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/berckan/lookalike/internal/aggregator"
	"github.com/berckan/lookalike/internal/analyzer"
	"github.com/berckan/lookalike/internal/config"
	"github.com/berckan/lookalike/internal/generator"
	"github.com/berckan/lookalike/internal/model"
	"github.com/berckan/lookalike/internal/parser"
	"github.com/berckan/lookalike/internal/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var opts config.Options

func main() {
	root := &cobra.Command{
		Use:   "lookalike",
		Short: "Generate and score lookalike domains for a target",
	}

	analyze := &cobra.Command{
		Use:   "analyze <domain>",
		Short: "Generate lookalike variants of a domain and analyze each one",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}

	flags := analyze.Flags()
	flags.IntVar(&opts.ThresholdDays, "threshold", 0, "age in days at or above which a registered domain is treated as established (default from config)")
	flags.IntVar(&opts.MaxVariants, "max-variants", 0, "maximum number of variants to generate (default from config)")
	var techniques []string
	flags.StringSliceVar(&techniques, "techniques", nil, "comma-separated technique tags to restrict generation to (default: all)")
	flags.IntVar(&opts.Workers, "threads", 0, "number of concurrent analysis workers (default from config)")
	flags.Float64Var(&opts.TimeoutSeconds, "timeout", 0, "per-query timeout in seconds (default from config)")
	flags.BoolVar(&opts.NoDNS, "no-dns", false, "skip DNS resolution")
	flags.BoolVar(&opts.NoWHOIS, "no-whois", false, "skip WHOIS lookups")
	flags.StringVar(&opts.OutputFormat, "format", "", "output format: console, json, csv, html (default from config)")
	flags.StringVar(&opts.OutputFile, "output", "", "write output to a file instead of stdout")
	flags.BoolVar(&opts.IncludeUnregistered, "include-unregistered", false, "include unregistered variants in console output")
	flags.StringVar(&opts.ResolverAddr, "resolver", "", "DNS resolver address (default from config)")
	flags.IntVar(&opts.RateLimit, "rate", 0, "maximum number of variants whose analysis starts per second (default from config)")

	techCmd := &cobra.Command{
		Use:   "techniques",
		Short: "List the lookalike generation techniques and what each does",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tag := range model.AllTechniques {
				fmt.Printf("%-14s %s\n", tag, generator.TechniqueDescription(tag))
			}
			return nil
		},
	}

	root.AddCommand(analyze, techCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags win over file/env defaults: only overwrite the loaded value
	// when the flag was actually set on the command line.
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		loaded.ThresholdDays = opts.ThresholdDays
	}
	if flags.Changed("max-variants") {
		loaded.MaxVariants = opts.MaxVariants
	}
	if flags.Changed("techniques") {
		loaded.Techniques, _ = flags.GetStringSlice("techniques")
	}
	if flags.Changed("threads") {
		loaded.Workers = opts.Workers
	}
	if flags.Changed("timeout") {
		loaded.TimeoutSeconds = opts.TimeoutSeconds
	}
	loaded.NoDNS = opts.NoDNS
	loaded.NoWHOIS = opts.NoWHOIS
	if flags.Changed("format") {
		loaded.OutputFormat = opts.OutputFormat
	}
	loaded.OutputFile = opts.OutputFile
	loaded.IncludeUnregistered = opts.IncludeUnregistered
	if flags.Changed("resolver") {
		loaded.ResolverAddr = opts.ResolverAddr
	}
	if flags.Changed("rate") {
		loaded.RateLimit = opts.RateLimit
	}

	target := args[0]
	loaded.Target = target

	log := zerolog.New(os.Stderr).With().Timestamp().Str("target", target).Logger()
	if lvl, err := zerolog.ParseLevel(loaded.LogLevel); err == nil {
		log = log.Level(lvl)
	}

	name, tld, err := parser.Parse(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid target %q: %v\n", target, err)
		os.Exit(1)
	}

	cfg := loaded.Build()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gen := generator.New(cfg, name, tld, log)
	variants := gen.Generate()
	if len(variants) == 0 {
		fmt.Fprintln(os.Stderr, "no variants were generated")
		os.Exit(1)
	}

	an := analyzer.New(ctx, cfg, log)
	analyzed := an.AnalyzeAll(ctx, variants)
	sorted := aggregator.Sort(analyzed)

	rep := report.New(parser.Canonical(name, tld), cfg.ThresholdDays, sorted)

	out := os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	switch cfg.OutputFormat {
	case "json":
		err = report.WriteJSON(out, rep)
	case "csv":
		err = report.WriteCSV(out, rep)
	case "html":
		err = report.WriteHTML(out, rep)
	default:
		report.WriteConsole(out, rep, cfg.IncludeUnregistered)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error writing report: %v\n", err)
		os.Exit(1)
	}

	if aggregator.Suspicious(sorted) {
		os.Exit(2)
	}
	return nil
}
