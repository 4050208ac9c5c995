// Package parser splits a raw target string into a canonical
// (name, tld) pair, the input shape the generator and analyzer operate
// on.
package parser

import (
	"strings"

	"github.com/berckan/lookalike/internal/model"
	"golang.org/x/net/publicsuffix"
)

// Parse strips a leading scheme, drops anything from the first slash
// onward, strips a single leading "www." label, lowercases the rest,
// and splits it into (name, tld). It prefers the public-suffix table so
// multi-label suffixes like "co.uk" survive intact; it falls back to a
// last-dot split when the suffix table has no opinion. A bare name with
// no dot defaults to the "com" tld. Returns model.ErrInvalidTarget if
// the stripped string is empty.
func Parse(raw string) (name string, tld string, err error) {
	s := strings.TrimSpace(raw)

	if idx := strings.Index(s, "://"); idx != -1 {
		s = s[idx+3:]
	}

	if idx := strings.IndexByte(s, '/'); idx != -1 {
		s = s[:idx]
	}

	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSpace(s)

	if s == "" {
		return "", "", model.ErrInvalidTarget
	}

	if !strings.Contains(s, ".") {
		return s, "com", nil
	}

	if suffix, icann := publicsuffix.PublicSuffix(s); icann && suffix != "" && suffix != s {
		name = strings.TrimSuffix(s, "."+suffix)
		name = strings.TrimSuffix(name, suffix)
		name = strings.TrimSuffix(name, ".")
		if name != "" {
			return name, suffix, nil
		}
	}

	idx := strings.LastIndexByte(s, '.')
	return s[:idx], s[idx+1:], nil
}

// Canonical rejoins a (name, tld) pair into the "name.tld" form used as
// Variant.Original / Variant.Candidate.
func Canonical(name, tld string) string {
	return name + "." + tld
}
