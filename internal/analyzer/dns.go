package analyzer

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/berckan/lookalike/internal/model"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

var qtype = map[model.DNSRecordKind]uint16{
	model.RecordA:    dns.TypeA,
	model.RecordAAAA: dns.TypeAAAA,
	model.RecordMX:   dns.TypeMX,
	model.RecordNS:   dns.TypeNS,
}

// DNSResolver queries a resolver directly via miekg/dns, falling back to
// net.Resolver.LookupHost (A records only) when the dns.Client cannot be
// used. Unicode candidate names are punycode-encoded at the query
// boundary only; the caller's stored Candidate string is never altered.
type DNSResolver struct {
	ResolverAddr string
	client       *dns.Client
	fallback     *net.Resolver
}

// NewDNSResolver builds a resolver targeting addr (host:port, default
// "8.8.8.8:53" when empty), grounded on the teacher's hardcoded dialer.
func NewDNSResolver(addr string) *DNSResolver {
	if addr == "" {
		addr = "8.8.8.8:53"
	}
	return &DNSResolver{
		ResolverAddr: addr,
		client:       &dns.Client{},
		fallback: &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
				d := net.Dialer{Timeout: 5 * time.Second}
				return d.DialContext(ctx, network, addr)
			},
		},
	}
}

// Lookup issues one query for kind against name, returning the textual
// form of each answer record. NXDOMAIN/NODATA/timeout are reported as
// "not present": (nil, nil).
func (r *DNSResolver) Lookup(ctx context.Context, kind model.DNSRecordKind, name string) ([]string, error) {
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		ascii = name
	}

	t, ok := qtype[kind]
	if !ok {
		return nil, nil
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(ascii), t)
	msg.RecursionDesired = true

	client := r.client
	if deadline, has := ctx.Deadline(); has {
		client = &dns.Client{Net: r.client.Net, Timeout: time.Until(deadline)}
	}

	in, _, err := client.ExchangeContext(ctx, msg, r.ResolverAddr)
	if err != nil {
		if isTimeoutOrTemporary(err) {
			return nil, nil
		}
		return r.lookupFallback(ctx, kind, ascii)
	}

	if in == nil || in.Rcode == dns.RcodeNameError || in.Rcode == dns.RcodeServerFailure {
		return nil, nil
	}
	if in.Rcode != dns.RcodeSuccess {
		return nil, nil
	}

	return extractAnswers(kind, in), nil
}

// lookupFallback is used when the dns.Client exchange itself cannot be
// completed (e.g. network unreachable), per spec: "if a full resolver
// is unavailable, fall back to an A-record-only host lookup."
func (r *DNSResolver) lookupFallback(ctx context.Context, kind model.DNSRecordKind, name string) ([]string, error) {
	if kind != model.RecordA {
		return nil, nil
	}
	addrs, err := r.fallback.LookupHost(ctx, name)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && (dnsErr.IsNotFound || dnsErr.IsTimeout) {
			return nil, nil
		}
		return nil, nil
	}
	return addrs, nil
}

func extractAnswers(kind model.DNSRecordKind, in *dns.Msg) []string {
	var out []string
	for _, rr := range in.Answer {
		switch kind {
		case model.RecordA:
			if a, ok := rr.(*dns.A); ok {
				out = append(out, a.A.String())
			}
		case model.RecordAAAA:
			if a, ok := rr.(*dns.AAAA); ok {
				out = append(out, a.AAAA.String())
			}
		case model.RecordMX:
			if mx, ok := rr.(*dns.MX); ok {
				out = append(out, mx.Mx)
			}
		case model.RecordNS:
			if ns, ok := rr.(*dns.NS); ok {
				out = append(out, ns.Ns)
			}
		}
	}
	return out
}

func isTimeoutOrTemporary(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
