package generator

// The mapping tables below are the generator's corpus: the sixteen
// techniques are thin iteration logic over this data, and the system's
// output changes materially if these tables change. They are versioned
// here as plain data, not derived at runtime.

// HomographMap maps each lowercase ASCII letter to a short list of
// Unicode lookalikes drawn from scripts commonly used in homograph
// attacks (Cyrillic, Greek, and a few full-width/Latin-extended forms).
// Only the first three entries per letter are ever used (see
// genHomograph in internal/generator/technique_character.go) to bound
// fan-out.
var HomographMap = map[byte][]rune{
	'a': {'а', 'ɑ', 'α'}, // Cyrillic а, Latin alpha, Greek alpha
	'b': {'Ь', 'Ƅ', 'ß'},
	'c': {'с', 'ϲ', 'ƈ'}, // Cyrillic с, Greek lunate sigma
	'd': {'ԁ', 'ɗ', 'ḍ'},
	'e': {'е', 'ė', 'ę'}, // Cyrillic е
	'f': {'ḟ', 'ƒ', 'Ϝ'},
	'g': {'ɡ', 'ǵ', 'ġ'},
	'h': {'һ', 'ḥ', 'ħ'}, // Cyrillic һ
	'i': {'і', 'ı', 'ɩ'}, // Cyrillic і, dotless ı
	'j': {'ј', 'ʝ', 'ϳ'}, // Cyrillic ј
	'k': {'κ', 'ḳ', 'ƙ'},
	'l': {'ⅼ', '1', 'ł'}, // Roman numeral ell, digit one
	'm': {'м', 'ṃ', 'ɱ'}, // Cyrillic м
	'n': {'ո', 'ṇ', 'ñ'}, // Armenian n
	'o': {'о', '0', 'ο'}, // Cyrillic о, digit zero, Greek omicron
	'p': {'р', 'ρ', 'ṗ'}, // Cyrillic р, Greek rho
	'q': {'ԛ', 'գ', 'զ'},
	'r': {'ṛ', 'ʀ', 'ɾ'},
	's': {'ѕ', 'ʂ', 'ś'}, // Cyrillic ѕ
	't': {'т', 'ṭ', 'ţ'}, // Cyrillic т
	'u': {'υ', 'ս', 'ü'}, // Greek upsilon, Armenian s
	'v': {'ѵ', 'ν', 'ṿ'}, // Cyrillic izhitsa, Greek nu
	'w': {'ԝ', 'ẉ', 'ω'},
	'x': {'х', 'χ', 'ẋ'}, // Cyrillic х, Greek chi
	'y': {'у', 'ý', 'ỳ'}, // Cyrillic у
	'z': {'ᴢ', 'ẓ', 'ź'},
}

// LeetMap maps each lowercase ASCII letter to its common leetspeak
// digit/symbol substitutions.
var LeetMap = map[byte][]rune{
	'a': {'4', '@'},
	'b': {'8'},
	'c': {'('},
	'e': {'3'},
	'g': {'9'},
	'i': {'1', '!'},
	'l': {'1', '|'},
	'o': {'0'},
	's': {'5', '$'},
	't': {'7'},
	'z': {'2'},
}

// QwertyAdjacency maps each lowercase letter to its two closest keys on
// a standard QWERTY layout, used by the typo technique.
var QwertyAdjacency = map[byte][]byte{
	'a': {'s', 'q'},
	'b': {'v', 'n'},
	'c': {'x', 'v'},
	'd': {'s', 'f'},
	'e': {'w', 'r'},
	'f': {'d', 'g'},
	'g': {'f', 'h'},
	'h': {'g', 'j'},
	'i': {'u', 'o'},
	'j': {'h', 'k'},
	'k': {'j', 'l'},
	'l': {'k', 'o'},
	'm': {'n', 'j'},
	'n': {'b', 'm'},
	'o': {'i', 'p'},
	'p': {'o', 'l'},
	'q': {'w', 'a'},
	'r': {'e', 't'},
	's': {'a', 'd'},
	't': {'r', 'y'},
	'u': {'y', 'i'},
	'v': {'c', 'b'},
	'w': {'q', 'e'},
	'x': {'z', 'c'},
	'y': {'t', 'u'},
	'z': {'x', 's'},
}

// PhoneticRule is one ordered, first-occurrence substring substitution.
type PhoneticRule struct {
	From string
	To   []string
}

// PhoneticRules is the ordered rule set consulted by the phonetic
// technique. Each rule is applied once, at the first occurrence of
// From, producing one variant per entry in To.
var PhoneticRules = []PhoneticRule{
	{From: "ph", To: []string{"f"}},
	{From: "f", To: []string{"ph"}},
	{From: "ck", To: []string{"k", "c"}},
	{From: "c", To: []string{"k"}},
	{From: "k", To: []string{"c"}},
	{From: "s", To: []string{"c", "z"}},
	{From: "z", To: []string{"s"}},
	{From: "x", To: []string{"ks", "cks"}},
	{From: "w", To: []string{"vv", "uu"}},
	{From: "oo", To: []string{"u"}},
	{From: "u", To: []string{"oo"}},
}

// AlternativeTLDs is the built-in list of alternative top-level domains
// consulted by the tld technique: generic, country-code, and combo
// suffixes.
var AlternativeTLDs = []string{
	// Generic
	"net", "org", "info", "biz", "co", "io", "xyz", "online", "site",
	"website", "space", "tech", "store", "shop", "club", "live", "app",
	"dev", "cloud", "link", "click",
	// Country-code, commonly squatted
	"co.uk", "org.uk", "com.br", "com.au", "com.cn", "co.jp", "de",
	"fr", "es", "it", "nl", "ru", "in", "uk", "us", "ca", "mx", "jp",
	"cn", "au", "br",
	// Combo / lookalike suffixes
	"com.co", "net.co", "com-login", "com.security",
}

// PhishingPrefixes is the built-in list of prefixes consulted by the
// prefix technique, after stripping a trailing "-" or ".".
var PhishingPrefixes = []string{
	"secure", "login", "my", "account", "verify", "update", "portal",
	"auth", "support", "helpdesk", "service", "online", "official",
	"customer", "billing", "id", "signin", "www",
}

// PhishingSuffixes is the built-in list of suffixes consulted by the
// suffix technique, after stripping a leading "-".
var PhishingSuffixes = []string{
	"login", "secure", "verify", "account", "support", "service",
	"online", "update", "auth", "portal", "id", "billing", "official",
	"signin", "help", "team",
}

// SubdomainLabels is the built-in list consulted by the subdomain
// technique, always paired with the "com" tld.
var SubdomainLabels = []string{
	"login", "secure", "account", "auth", "my", "portal",
}

// Vowels is the fixed vowel alphabet consulted by the vowel_swap
// technique.
var Vowels = []byte{'a', 'e', 'i', 'o', 'u'}

// InsertionAlphabet is the fixed alphabet consulted by the insertion
// technique.
var InsertionAlphabet = []byte("aeiourstnl")
