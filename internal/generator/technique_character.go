package generator

import (
	"fmt"
	"strings"

	"github.com/berckan/lookalike/internal/model"
)

// genHomograph substitutes, at each position, each Unicode lookalike
// from the built-in HomographMap for the character there. Only the
// first three lookalikes per character are used, bounding fan-out; this
// cap applies only to this technique, per design.
func (g *Generator) genHomograph() {
	runes := []rune(g.name)
	for i, r := range runes {
		if r > 127 {
			continue
		}
		lookalikes, ok := HomographMap[byte(r)]
		if !ok {
			continue
		}
		capped := lookalikes
		if len(capped) > 3 {
			capped = capped[:3]
		}
		for _, alt := range capped {
			candidate := replaceRune(runes, i, alt)
			detail := fmt.Sprintf("homograph: position %d %q -> %q", i, r, alt)
			if g.emit(model.TechniqueHomograph, detail, candidate, g.tld) {
				return
			}
		}
	}
}

// genLeetspeak substitutes, at each position, each leetspeak
// replacement from the built-in LeetMap.
func (g *Generator) genLeetspeak() {
	runes := []rune(g.name)
	for i, r := range runes {
		if r > 127 {
			continue
		}
		subs, ok := LeetMap[byte(r)]
		if !ok {
			continue
		}
		for _, alt := range subs {
			candidate := replaceRune(runes, i, alt)
			detail := fmt.Sprintf("leetspeak: position %d %q -> %q", i, r, alt)
			if g.emit(model.TechniqueLeetspeak, detail, candidate, g.tld) {
				return
			}
		}
	}
}

// genTypo substitutes, at each position, each QWERTY-adjacent key.
func (g *Generator) genTypo() {
	runes := []rune(g.name)
	for i, r := range runes {
		if r > 127 {
			continue
		}
		neighbours, ok := QwertyAdjacency[byte(r)]
		if !ok {
			continue
		}
		for _, alt := range neighbours {
			candidate := replaceRune(runes, i, rune(alt))
			detail := fmt.Sprintf("typo: position %d %q -> %q", i, r, alt)
			if g.emit(model.TechniqueTypo, detail, candidate, g.tld) {
				return
			}
		}
	}
}

// genPhonetic applies the first occurrence of each phonetic rule's From
// substring, substituting each of its To alternatives.
func (g *Generator) genPhonetic() {
	for _, rule := range PhoneticRules {
		idx := strings.Index(g.name, rule.From)
		if idx == -1 {
			continue
		}
		for _, to := range rule.To {
			candidate := g.name[:idx] + to + g.name[idx+len(rule.From):]
			detail := fmt.Sprintf("phonetic: %q -> %q at position %d", rule.From, to, idx)
			if g.emit(model.TechniquePhonetic, detail, candidate, g.tld) {
				return
			}
		}
	}
}

func replaceRune(runes []rune, i int, r rune) string {
	out := make([]rune, len(runes))
	copy(out, runes)
	out[i] = r
	return string(out)
}
