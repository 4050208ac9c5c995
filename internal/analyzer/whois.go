package analyzer

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/berckan/lookalike/internal/model"
	"github.com/likexian/whois"
)

// errWhoisNoRecord marks a WHOIS response that, despite DNS resolving
// the candidate, indicates the registry itself has no record for it.
var errWhoisNoRecord = errors.New("whois server reports no record")

// RealWhoisClient issues WHOIS queries via likexian/whois, exactly as
// the teacher's checker.Check does, wrapped in a goroutine so the call
// honors ctx's deadline even though the underlying library does not
// accept a context.
type RealWhoisClient struct{}

func (RealWhoisClient) Lookup(ctx context.Context, domain string) (string, error) {
	type result struct {
		raw string
		err error
	}
	ch := make(chan result, 1)

	go func() {
		raw, err := whois.Whois(domain)
		ch <- result{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.raw, r.err
	}
}

// notRegisteredPatterns is the teacher's availablePatterns list,
// repurposed: here it decides whether a WHOIS response that DNS already
// flagged as registered is actually a "no such domain" response from
// the WHOIS server (which happens for some ccTLDs that answer DNS but
// not WHOIS consistently). When matched, the response is treated as a
// LookupFailure with no creation date rather than parsed further.
var notRegisteredPatterns = []string{
	"no match for",
	"not found",
	"no entries found",
	"domain not found",
	"no data found",
	"status: free",
	"status: available",
	"no object found",
	"object does not exist",
	"nothing found",
	"no information available",
	"is available for registration",
	"domain name has not been registered",
	"no such domain",
	"no matching record",
}

func looksUnregistered(raw string) bool {
	lower := strings.ToLower(raw)
	for _, pattern := range notRegisteredPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

var (
	reCreationDate   = regexp.MustCompile(`(?im)^\s*(?:creation date|created(?: on)?|registered(?: on)?|domain registration date)\s*:\s*(.+)$`)
	reExpirationDate = regexp.MustCompile(`(?im)^\s*(?:registry expiry date|expiration date|expiry date|paid-till)\s*:\s*(.+)$`)
	reRegistrar      = regexp.MustCompile(`(?im)^\s*registrar(?:\s*name)?\s*:\s*(.+)$`)
	reNameServer     = regexp.MustCompile(`(?im)^\s*(?:name server|nserver|nameserver)\s*:\s*(.+)$`)
	reOrg            = regexp.MustCompile(`(?im)^\s*(?:registrant organi[sz]ation|org)\s*:\s*(.+)$`)
	reCountry        = regexp.MustCompile(`(?im)^\s*(?:registrant country|country)\s*:\s*(.+)$`)
	reDomainName     = regexp.MustCompile(`(?im)^\s*domain name\s*:\s*(.+)$`)
)

// ParseWhois extracts the fixed key set of §3 from a raw WHOIS response.
// Unmatched fields are simply absent from the returned map.
func ParseWhois(raw string) map[string]string {
	out := make(map[string]string)

	if m := reDomainName.FindStringSubmatch(raw); m != nil {
		out[model.WhoisDomainName] = strings.TrimSpace(m[1])
	}
	if m := reRegistrar.FindStringSubmatch(raw); m != nil {
		out[model.WhoisRegistrar] = strings.TrimSpace(m[1])
	}
	if m := reCreationDate.FindStringSubmatch(raw); m != nil {
		out[model.WhoisCreationDate] = strings.TrimSpace(m[1])
	}
	if m := reExpirationDate.FindStringSubmatch(raw); m != nil {
		out[model.WhoisExpirationDate] = strings.TrimSpace(m[1])
	}
	if m := reOrg.FindStringSubmatch(raw); m != nil {
		out[model.WhoisOrg] = strings.TrimSpace(m[1])
	}
	if m := reCountry.FindStringSubmatch(raw); m != nil {
		out[model.WhoisCountry] = strings.TrimSpace(m[1])
	}

	servers := reNameServer.FindAllStringSubmatch(raw, -1)
	if len(servers) > 0 {
		names := make([]string, 0, len(servers))
		for _, s := range servers {
			names = append(names, strings.ToLower(strings.TrimSpace(s[1])))
		}
		out[model.WhoisNameServers] = strings.Join(names, ",")
	}

	return out
}

var dateLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102",
	"02-Jan-2006",
	"02-01-2006",
}

// ExtractCreationDate normalizes the three shapes a WHOIS creation_date
// value may arrive in: a list (the first element is used, recursively),
// a time.Time instant (used as-is), or a string parsed against a small
// set of common layouts with "YYYY-MM-DD" as the documented fallback.
// Any other shape, an empty list, or a non-parsable string yields
// ok=false.
func ExtractCreationDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case []any:
		if len(val) == 0 {
			return time.Time{}, false
		}
		return ExtractCreationDate(val[0])
	case []string:
		if len(val) == 0 {
			return time.Time{}, false
		}
		return ExtractCreationDate(val[0])
	case []time.Time:
		if len(val) == 0 {
			return time.Time{}, false
		}
		return val[0], true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
