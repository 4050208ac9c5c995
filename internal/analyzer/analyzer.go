// Package analyzer consumes generated variants and resolves each via
// DNS, retrieves WHOIS registration metadata when resolvable, and
// assigns a trust level from the registration age.
package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/berckan/lookalike/internal/metrics"
	"github.com/berckan/lookalike/internal/model"
	"github.com/projectdiscovery/ratelimit"
	"github.com/rs/zerolog"
)

var dnsKinds = []model.DNSRecordKind{
	model.RecordA,
	model.RecordAAAA,
	model.RecordMX,
	model.RecordNS,
}

// Analyzer owns the DNS resolver, WHOIS client, and clock used to
// analyze variants. A single Analyzer is safe to share across the
// worker pool: workers never observe each other's state, only the
// Analyzer's read-only dependencies.
type Analyzer struct {
	cfg     model.Config
	dns     Resolver
	whois   WhoisClient
	clock   Clock
	limiter *ratelimit.Limiter
	log     zerolog.Logger
}

// Option customizes an Analyzer at construction, primarily to inject
// fakes in tests.
type Option func(*Analyzer)

// WithResolver overrides the DNS resolver.
func WithResolver(r Resolver) Option { return func(a *Analyzer) { a.dns = r } }

// WithWhoisClient overrides the WHOIS client.
func WithWhoisClient(w WhoisClient) Option { return func(a *Analyzer) { a.whois = w } }

// WithClock overrides the clock used for age calculations.
func WithClock(c Clock) Option { return func(a *Analyzer) { a.clock = c } }

// New builds an Analyzer for cfg. By default it uses the real DNS and
// WHOIS clients and the system clock; pass Options to override for
// tests.
func New(ctx context.Context, cfg model.Config, log zerolog.Logger, opts ...Option) *Analyzer {
	rate := cfg.RateLimit
	if rate <= 0 {
		rate = 10
	}

	a := &Analyzer{
		cfg:     cfg,
		dns:     NewDNSResolver(cfg.ResolverAddr),
		whois:   RealWhoisClient{},
		clock:   SystemClock,
		limiter: ratelimit.New(ctx, uint(rate), time.Second),
		log:     log,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// AnalyzeOne performs DNS resolution and, if resolvable and enabled,
// WHOIS lookup for a single variant, returning the updated copy. The
// input variant is never mutated; the caller owns both copies.
func (a *Analyzer) AnalyzeOne(ctx context.Context, v model.Variant) model.Variant {
	start := time.Now()
	defer func() { metrics.AnalysisDuration.Observe(time.Since(start).Seconds()) }()

	out := v
	out.DNSRecords = make(map[model.DNSRecordKind][]string, len(dnsKinds))
	out.Whois = make(map[string]string, len(v.Whois))

	if a.cfg.DNSEnabled {
		a.resolveDNS(ctx, &out)
	}

	if out.Registered && a.cfg.WHOISEnabled {
		a.resolveWhois(ctx, &out)
	}

	trust, score := TrustBucket(out.Registered, out.AgeDays, a.thresholdDays())
	out.TrustLevel = trust
	out.RiskScore = score

	return out
}

func (a *Analyzer) thresholdDays() int {
	if a.cfg.ThresholdDays <= 0 {
		return 730
	}
	return a.cfg.ThresholdDays
}

func (a *Analyzer) resolveDNS(ctx context.Context, v *model.Variant) {
	timeout := a.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	for _, kind := range dnsKinds {
		qctx, cancel := context.WithTimeout(ctx, timeout)
		records, err := a.dns.Lookup(qctx, kind, v.Candidate)
		cancel()

		if err != nil {
			le := &model.LookupError{Stage: "dns", Cause: err}
			a.log.Debug().Err(le).Str("candidate", v.Candidate).Str("kind", string(kind)).Msg("dns lookup failed")
			if v.Error == "" {
				v.Error = le.Error()
			}
			metrics.DNSQueries.WithLabelValues(string(kind), "error").Inc()
			continue
		}
		if len(records) == 0 {
			metrics.DNSQueries.WithLabelValues(string(kind), "absent").Inc()
			continue
		}
		v.DNSRecords[kind] = records
		v.Registered = true
		metrics.DNSQueries.WithLabelValues(string(kind), "present").Inc()
	}
}

func (a *Analyzer) resolveWhois(ctx context.Context, v *model.Variant) {
	timeout := a.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	// WHOIS gets at least the DNS timeout, per spec: "wrapped in
	// per-operation timeouts equal to the configured timeout (DNS) or
	// >= that (WHOIS)".
	wctx, cancel := context.WithTimeout(ctx, timeout*2)
	defer cancel()

	raw, err := a.whois.Lookup(wctx, v.Candidate)
	if err != nil {
		le := &model.LookupError{Stage: "whois", Cause: err}
		a.log.Debug().Err(le).Str("candidate", v.Candidate).Msg("whois lookup failed")
		v.Error = le.Error()
		metrics.WhoisQueries.WithLabelValues("error").Inc()
		return
	}

	if looksUnregistered(raw) {
		le := &model.LookupError{Stage: "whois", Cause: errWhoisNoRecord}
		v.Error = le.Error()
		metrics.WhoisQueries.WithLabelValues("no_record").Inc()
		return
	}

	metrics.WhoisQueries.WithLabelValues("ok").Inc()

	fields := ParseWhois(raw)
	for k, val := range fields {
		v.Whois[k] = val
	}

	if registrar, ok := fields[model.WhoisRegistrar]; ok {
		v.Registrar = registrar
	}

	creationRaw, ok := fields[model.WhoisCreationDate]
	if !ok {
		return
	}

	created, ok := ExtractCreationDate(creationRaw)
	if !ok {
		return
	}

	t := created
	v.CreationDate = &t
	days := int(a.clock.Now().Sub(created).Hours() / 24)
	if days < 0 {
		days = 0
	}
	v.AgeDays = &days
}

// AnalyzeAll runs a bounded worker pool of cfg.Workers goroutines over
// variants, throttling with a small inter-completion delay. Output
// order is completion order, not input order; callers re-sort via the
// aggregator. Cancelling ctx stops workers from pulling new variants;
// in-flight queries terminate at or before their timeout, and the pool
// drains returning whatever partial results it has.
func (a *Analyzer) AnalyzeAll(ctx context.Context, variants []model.Variant) []model.Variant {
	workers := a.cfg.Workers
	if workers <= 0 {
		workers = 10
	}

	in := make(chan model.Variant)
	go func() {
		defer close(in)
		for _, v := range variants {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		mu  sync.Mutex
		out = make([]model.Variant, 0, len(variants))
		wg  sync.WaitGroup
	)

	throttle := a.cfg.Throttle
	if throttle <= 0 {
		throttle = 100 * time.Millisecond
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range in {
				select {
				case <-ctx.Done():
					return
				default:
				}

				if a.limiter != nil {
					a.limiter.Take()
				}

				result := a.AnalyzeOne(ctx, v)

				mu.Lock()
				out = append(out, result)
				mu.Unlock()

				time.Sleep(throttle)
			}
		}()
	}

	wg.Wait()
	return out
}
