package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/berckan/lookalike/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	records map[model.DNSRecordKind][]string
	err     error
}

func (f fakeResolver) Lookup(ctx context.Context, kind model.DNSRecordKind, name string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records[kind], nil
}

type fakeWhois struct {
	raw string
	err error
}

func (f fakeWhois) Lookup(ctx context.Context, domain string) (string, error) {
	return f.raw, f.err
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestAnalyzer(t *testing.T, cfg model.Config, opts ...Option) *Analyzer {
	t.Helper()
	ctx := context.Background()
	return New(ctx, cfg, zerolog.Nop(), opts...)
}

func TestTrustBucket_Boundaries(t *testing.T) {
	cases := []struct {
		name      string
		age       int
		threshold int
		level     model.TrustLevel
		score     int
	}{
		{"critical lower bound", 0, 730, model.TrustCritical, 95},
		{"critical upper edge", 29, 730, model.TrustCritical, 95},
		{"high risk lower edge", 30, 730, model.TrustHighRisk, 85},
		{"suspicious lower edge", 90, 730, model.TrustSuspicious, 70},
		{"low trust lower edge", 180, 730, model.TrustLowTrust, 55},
		{"moderate lower edge", 365, 730, model.TrustModerate, 35},
		{"established at threshold", 730, 730, model.TrustEstablished, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			age := tc.age
			level, score := TrustBucket(true, &age, tc.threshold)
			assert.Equal(t, tc.level, level)
			assert.Equal(t, tc.score, score)
		})
	}
}

func TestTrustBucket_Unregistered(t *testing.T) {
	level, score := TrustBucket(false, nil, 730)
	assert.Equal(t, model.TrustUnregistered, level)
	assert.Equal(t, 0, score)
}

func TestTrustBucket_UnknownAge(t *testing.T) {
	level, score := TrustBucket(true, nil, 730)
	assert.Equal(t, model.TrustUnknown, level)
	assert.Equal(t, 50, score)
}

func TestAnalyzeOne_UnregisteredNeverCallsWhois(t *testing.T) {
	cfg := model.Config{DNSEnabled: true, WHOISEnabled: true}
	a := newTestAnalyzer(t, cfg,
		WithResolver(fakeResolver{}),
		WithWhoisClient(fakeWhois{err: errors.New("should not be called")}),
	)

	v := model.NewVariant("example", "example-secure.com", model.TechniquePrefix, "")
	out := a.AnalyzeOne(context.Background(), v)

	assert.False(t, out.Registered)
	assert.Equal(t, model.TrustUnregistered, out.TrustLevel)
	assert.Empty(t, out.Error)
}

func TestAnalyzeOne_RegisteredWhoisDown(t *testing.T) {
	cfg := model.Config{DNSEnabled: true, WHOISEnabled: true, ThresholdDays: 730}
	a := newTestAnalyzer(t, cfg,
		WithResolver(fakeResolver{records: map[model.DNSRecordKind][]string{model.RecordA: {"1.2.3.4"}}}),
		WithWhoisClient(fakeWhois{err: errors.New("whois timeout")}),
	)

	v := model.NewVariant("example", "examp1e.com", model.TechniqueLeetspeak, "")
	out := a.AnalyzeOne(context.Background(), v)

	assert.True(t, out.Registered)
	assert.NotEmpty(t, out.Error)
	assert.Equal(t, model.TrustUnknown, out.TrustLevel)
	assert.Equal(t, 50, out.RiskScore)
}

func TestAnalyzeOne_RegisteredWithCreationDate(t *testing.T) {
	clock := fixedClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cfg := model.Config{DNSEnabled: true, WHOISEnabled: true, ThresholdDays: 730}
	a := newTestAnalyzer(t, cfg,
		WithResolver(fakeResolver{records: map[model.DNSRecordKind][]string{model.RecordA: {"1.2.3.4"}}}),
		WithWhoisClient(fakeWhois{raw: "Registrar: Example Registrar\nCreation Date: 2025-12-20T00:00:00Z\n"}),
		WithClock(clock),
	)

	v := model.NewVariant("example", "examp1e.com", model.TechniqueLeetspeak, "")
	out := a.AnalyzeOne(context.Background(), v)

	require.NotNil(t, out.AgeDays)
	assert.Equal(t, 12, *out.AgeDays)
	assert.Equal(t, model.TrustCritical, out.TrustLevel)
	assert.Equal(t, "Example Registrar", out.Registrar)
}

func TestAnalyzeOne_DoesNotMutateInput(t *testing.T) {
	cfg := model.Config{DNSEnabled: true}
	a := newTestAnalyzer(t, cfg, WithResolver(fakeResolver{
		records: map[model.DNSRecordKind][]string{model.RecordA: {"1.2.3.4"}},
	}))

	v := model.NewVariant("example", "examp1e.com", model.TechniqueLeetspeak, "")
	_ = a.AnalyzeOne(context.Background(), v)

	assert.False(t, v.Registered)
	assert.Empty(t, v.DNSRecords)
}

func TestAnalyzeOne_DoesNotMutateInputWhois(t *testing.T) {
	cfg := model.Config{DNSEnabled: true, WHOISEnabled: true}
	a := newTestAnalyzer(t, cfg,
		WithResolver(fakeResolver{records: map[model.DNSRecordKind][]string{model.RecordA: {"1.2.3.4"}}}),
		WithWhoisClient(fakeWhois{raw: "Registrar: Example Registrar\n"}),
	)

	v := model.NewVariant("example", "examp1e.com", model.TechniqueLeetspeak, "")
	out := a.AnalyzeOne(context.Background(), v)

	assert.Empty(t, v.Whois)
	assert.NotEmpty(t, out.Whois)
}

func TestAnalyzeAll_ReturnsAllVariants(t *testing.T) {
	cfg := model.Config{DNSEnabled: true, Workers: 4, Throttle: time.Millisecond}
	a := newTestAnalyzer(t, cfg, WithResolver(fakeResolver{}))

	variants := make([]model.Variant, 0, 20)
	for i := 0; i < 20; i++ {
		variants = append(variants, model.NewVariant("example", "v.com", model.TechniqueTLD, ""))
	}

	out := a.AnalyzeAll(context.Background(), variants)
	assert.Len(t, out, 20)
}

func TestExtractCreationDate_ThreeShapes(t *testing.T) {
	fixed := time.Date(2020, 5, 4, 0, 0, 0, 0, time.UTC)

	got, ok := ExtractCreationDate(fixed)
	require.True(t, ok)
	assert.True(t, got.Equal(fixed))

	got, ok = ExtractCreationDate("2020-05-04")
	require.True(t, ok)
	assert.Equal(t, fixed, got)

	got, ok = ExtractCreationDate([]string{"2020-05-04", "2021-01-01"})
	require.True(t, ok)
	assert.Equal(t, fixed, got)

	_, ok = ExtractCreationDate(42)
	assert.False(t, ok)
}

func TestLooksUnregistered(t *testing.T) {
	assert.True(t, looksUnregistered("No match for DOMAIN.COM"))
	assert.False(t, looksUnregistered("Registrar: Example\nCreation Date: 2020-01-01"))
}
