package generator

import (
	"fmt"
	"strings"

	"github.com/berckan/lookalike/internal/model"
)

// genRepetition doubles each alphabetic character in turn.
func (g *Generator) genRepetition() {
	runes := []rune(g.name)
	for i, r := range runes {
		if !isAlpha(r) {
			continue
		}
		out := make([]rune, 0, len(runes)+1)
		out = append(out, runes[:i+1]...)
		out = append(out, r)
		out = append(out, runes[i+1:]...)
		detail := fmt.Sprintf("repetition: doubled %q at position %d", r, i)
		if g.emit(model.TechniqueRepetition, detail, string(out), g.tld) {
			return
		}
	}
}

// genOmission drops each position in turn, skipping results that would
// be empty.
func (g *Generator) genOmission() {
	runes := []rune(g.name)
	if len(runes) <= 1 {
		return
	}
	for i := range runes {
		out := make([]rune, 0, len(runes)-1)
		out = append(out, runes[:i]...)
		out = append(out, runes[i+1:]...)
		if len(out) == 0 {
			continue
		}
		detail := fmt.Sprintf("omission: dropped %q at position %d", runes[i], i)
		if g.emit(model.TechniqueOmission, detail, string(out), g.tld) {
			return
		}
	}
}

// genInsertion inserts each character of InsertionAlphabet into each
// gap (including before the first and after the last character).
func (g *Generator) genInsertion() {
	runes := []rune(g.name)
	for gap := 0; gap <= len(runes); gap++ {
		for _, c := range InsertionAlphabet {
			out := make([]rune, 0, len(runes)+1)
			out = append(out, runes[:gap]...)
			out = append(out, rune(c))
			out = append(out, runes[gap:]...)
			detail := fmt.Sprintf("insertion: inserted %q at gap %d", c, gap)
			if g.emit(model.TechniqueInsertion, detail, string(out), g.tld) {
				return
			}
		}
	}
}

// genTransposition swaps each adjacent pair of characters.
func (g *Generator) genTransposition() {
	runes := []rune(g.name)
	for i := 0; i+1 < len(runes); i++ {
		out := make([]rune, len(runes))
		copy(out, runes)
		out[i], out[i+1] = out[i+1], out[i]
		detail := fmt.Sprintf("transposition: swapped positions %d and %d", i, i+1)
		if g.emit(model.TechniqueTransposition, detail, string(out), g.tld) {
			return
		}
	}
}

// genHyphenation inserts a hyphen at each interior position, and, when
// the name already contains a hyphen, also emits a version with all
// hyphens removed.
func (g *Generator) genHyphenation() {
	runes := []rune(g.name)
	for i := 1; i < len(runes); i++ {
		out := make([]rune, 0, len(runes)+1)
		out = append(out, runes[:i]...)
		out = append(out, '-')
		out = append(out, runes[i:]...)
		detail := fmt.Sprintf("hyphenation: inserted '-' at position %d", i)
		if g.emit(model.TechniqueHyphenation, detail, string(out), g.tld) {
			return
		}
	}

	if strings.Contains(g.name, "-") {
		stripped := strings.ReplaceAll(g.name, "-", "")
		if stripped != "" {
			g.emit(model.TechniqueHyphenation, "hyphenation: removed all hyphens", stripped, g.tld)
		}
	}
}

// genTLD pairs the unchanged name with each alternative TLD that
// differs from the original.
func (g *Generator) genTLD() {
	for _, alt := range AlternativeTLDs {
		if alt == g.tld {
			continue
		}
		detail := fmt.Sprintf("tld: swapped .%s -> .%s", g.tld, alt)
		if g.emit(model.TechniqueTLD, detail, g.name, alt) {
			return
		}
	}
}

// genPrefix prepends each built-in phishing prefix, hyphen-joined to
// the name, with the tld unchanged.
func (g *Generator) genPrefix() {
	for _, p := range PhishingPrefixes {
		p = strings.TrimSuffix(p, "-")
		p = strings.TrimSuffix(p, ".")
		candidate := p + "-" + g.name
		detail := fmt.Sprintf("prefix: prepended %q", p)
		if g.emit(model.TechniquePrefix, detail, candidate, g.tld) {
			return
		}
	}
}

// genSuffix appends each built-in phishing suffix, hyphen-joined to the
// name, with the tld unchanged.
func (g *Generator) genSuffix() {
	for _, s := range PhishingSuffixes {
		s = strings.TrimPrefix(s, "-")
		candidate := g.name + "-" + s
		detail := fmt.Sprintf("suffix: appended %q", s)
		if g.emit(model.TechniqueSuffix, detail, candidate, g.tld) {
			return
		}
	}
}

// genVowelSwap replaces each vowel, at each position, with each of the
// other four vowels.
func (g *Generator) genVowelSwap() {
	runes := []rune(g.name)
	for i, r := range runes {
		if !isVowel(r) {
			continue
		}
		for _, v := range Vowels {
			if rune(v) == r {
				continue
			}
			candidate := replaceRune(runes, i, rune(v))
			detail := fmt.Sprintf("vowel_swap: position %d %q -> %q", i, r, v)
			if g.emit(model.TechniqueVowelSwap, detail, candidate, g.tld) {
				return
			}
		}
	}
}

// genDoubleChar finds each run of exactly two identical characters and
// emits a variant with one of them removed.
func (g *Generator) genDoubleChar() {
	runes := []rune(g.name)
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] != runes[i+1] {
			continue
		}
		// Require the run be exactly two: not preceded or followed by
		// the same character.
		if i > 0 && runes[i-1] == runes[i] {
			continue
		}
		if i+2 < len(runes) && runes[i+2] == runes[i] {
			continue
		}
		out := make([]rune, 0, len(runes)-1)
		out = append(out, runes[:i]...)
		out = append(out, runes[i+1:]...)
		detail := fmt.Sprintf("double_char: collapsed run of %q at position %d", runes[i], i)
		if g.emit(model.TechniqueDoubleChar, detail, string(out), g.tld) {
			return
		}
	}
}

// genBitsquatting flips each of the eight bit positions of each ASCII
// character and emits only when the result is a lowercase ASCII letter.
func (g *Generator) genBitsquatting() {
	bytes := []byte(g.name)
	for i, b := range bytes {
		if b > 127 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			flipped := b ^ (1 << uint(bit))
			if flipped < 'a' || flipped > 'z' {
				continue
			}
			out := make([]byte, len(bytes))
			copy(out, bytes)
			out[i] = flipped
			detail := fmt.Sprintf("bitsquatting: flipped bit %d of position %d (%q -> %q)", bit, i, b, flipped)
			if g.emit(model.TechniqueBitsquatting, detail, string(out), g.tld) {
				return
			}
		}
	}
}

// genSubdomain pairs name+"."+label with the "com" tld for each
// built-in subdomain label. This is the only technique that produces a
// multi-label candidate name.
func (g *Generator) genSubdomain() {
	for _, label := range SubdomainLabels {
		candidateName := g.name + "." + label
		detail := fmt.Sprintf("subdomain: appended label %q", label)
		if g.emit(model.TechniqueSubdomain, detail, candidateName, "com") {
			return
		}
	}
}

func isAlpha(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}
