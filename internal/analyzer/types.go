package analyzer

import (
	"context"
	"time"

	"github.com/berckan/lookalike/internal/model"
)

// Resolver issues one DNS query for a single record kind and returns
// the textual form of each answer. Implementations must treat
// NXDOMAIN, NoAnswer, NoNameservers, and timeout as "not present" —
// returning (nil, nil), not an error.
type Resolver interface {
	Lookup(ctx context.Context, kind model.DNSRecordKind, name string) ([]string, error)
}

// WhoisClient performs a single WHOIS query and returns the raw,
// server-specific response text.
type WhoisClient interface {
	Lookup(ctx context.Context, domain string) (raw string, err error)
}

// Clock abstracts time.Now so age calculations can be driven by a fixed
// instant in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the production Clock backed by time.Now.
var SystemClock Clock = systemClock{}
