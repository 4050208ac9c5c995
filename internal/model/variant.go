// Package model holds the record shapes shared by every stage of the
// lookalike-domain pipeline: the Variant that flows from generator to
// analyzer to aggregator, and the immutable Config that parameterizes
// a single run.
package model

import "time"

// Technique is one of the sixteen named variant-generation techniques.
type Technique string

const (
	TechniqueHomograph      Technique = "homograph"
	TechniqueLeetspeak      Technique = "leetspeak"
	TechniqueTypo           Technique = "typo"
	TechniquePhonetic       Technique = "phonetic"
	TechniqueRepetition     Technique = "repetition"
	TechniqueOmission       Technique = "omission"
	TechniqueInsertion      Technique = "insertion"
	TechniqueTransposition  Technique = "transposition"
	TechniqueHyphenation    Technique = "hyphenation"
	TechniqueTLD            Technique = "tld"
	TechniquePrefix         Technique = "prefix"
	TechniqueSuffix         Technique = "suffix"
	TechniqueVowelSwap      Technique = "vowel_swap"
	TechniqueDoubleChar     Technique = "double_char"
	TechniqueBitsquatting   Technique = "bitsquatting"
	TechniqueSubdomain      Technique = "subdomain"
)

// AllTechniques lists the sixteen technique tags in the fixed iteration
// order the generator uses, so output is reproducible.
var AllTechniques = []Technique{
	TechniqueHomograph,
	TechniqueLeetspeak,
	TechniqueTypo,
	TechniquePhonetic,
	TechniqueRepetition,
	TechniqueOmission,
	TechniqueInsertion,
	TechniqueTransposition,
	TechniqueHyphenation,
	TechniqueTLD,
	TechniquePrefix,
	TechniqueSuffix,
	TechniqueVowelSwap,
	TechniqueDoubleChar,
	TechniqueBitsquatting,
	TechniqueSubdomain,
}

// TrustLevel is the qualitative age bucket assigned to a registered
// variant, or the sentinel values for unregistered/unknown domains.
type TrustLevel string

const (
	TrustUnregistered TrustLevel = "unregistered"
	TrustUnknown      TrustLevel = "unknown"
	TrustEstablished  TrustLevel = "established"
	TrustModerate     TrustLevel = "moderate"
	TrustLowTrust     TrustLevel = "low_trust"
	TrustSuspicious   TrustLevel = "suspicious"
	TrustHighRisk     TrustLevel = "high_risk"
	TrustCritical     TrustLevel = "critical"
)

// DNSRecordKind is one of the four record kinds the analyzer queries.
type DNSRecordKind string

const (
	RecordA     DNSRecordKind = "A"
	RecordAAAA  DNSRecordKind = "AAAA"
	RecordMX    DNSRecordKind = "MX"
	RecordNS    DNSRecordKind = "NS"
)

// WHOIS keys retained in the Variant.Whois map. No other key is stored.
const (
	WhoisDomainName     = "domain_name"
	WhoisRegistrar      = "registrar"
	WhoisCreationDate   = "creation_date"
	WhoisExpirationDate = "expiration_date"
	WhoisNameServers    = "name_servers"
	WhoisOrg            = "org"
	WhoisCountry        = "country"
)

// Variant is the unit that flows through the pipeline: one candidate
// domain produced by one technique from one target.
type Variant struct {
	Original  string
	Candidate string
	Technique Technique
	Detail    string

	Registered bool
	DNSRecords map[DNSRecordKind][]string
	Whois      map[string]string

	CreationDate *time.Time
	Registrar    string
	AgeDays      *int
	TrustLevel   TrustLevel
	RiskScore    int

	Error string
}

// NewVariant constructs a Variant in its pre-analysis state: not
// registered, empty DNS/WHOIS maps, trust level unregistered.
func NewVariant(original, candidate string, technique Technique, detail string) Variant {
	return Variant{
		Original:   original,
		Candidate:  candidate,
		Technique:  technique,
		Detail:     detail,
		DNSRecords: make(map[DNSRecordKind][]string),
		Whois:      make(map[string]string),
		TrustLevel: TrustUnregistered,
		RiskScore:  0,
	}
}

// Config is the immutable configuration carried through one run. It is
// constructed once by the config loader and never mutated afterward.
type Config struct {
	Target string

	ThresholdDays int
	MaxVariants   int
	Techniques    map[Technique]bool

	DNSEnabled   bool
	WHOISEnabled bool

	Workers       int
	QueryTimeout  time.Duration
	Throttle      time.Duration
	ResolverAddr  string
	RateLimit     int

	OutputFormat         string
	OutputFile           string
	IncludeUnregistered  bool
}

// TechniqueEnabled reports whether tag is active for this run. An empty
// Techniques map (or one containing the "all" sentinel) means every
// technique is enabled.
func (c Config) TechniqueEnabled(tag Technique) bool {
	if len(c.Techniques) == 0 {
		return true
	}
	if c.Techniques[Technique("all")] {
		return true
	}
	return c.Techniques[tag]
}
