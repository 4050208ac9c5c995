package generator

import "github.com/berckan/lookalike/internal/model"

var techniqueDescriptions = map[model.Technique]string{
	model.TechniqueHomograph:   "Swaps a letter for a visually similar character from another script (Cyrillic, Greek, Latin-extended).",
	model.TechniqueLeetspeak:   "Replaces letters with visually similar digits or symbols, e.g. o -> 0, e -> 3.",
	model.TechniqueTypo:        "Substitutes a letter for one of its neighbours on a QWERTY keyboard.",
	model.TechniquePhonetic:    "Swaps a letter sequence for one that sounds alike, e.g. ph -> f, ck -> k.",
	model.TechniqueRepetition:  "Doubles a single character in the name.",
	model.TechniqueOmission:    "Drops a single character from the name.",
	model.TechniqueInsertion:   "Inserts an extra character at some position in the name.",
	model.TechniqueTransposition: "Swaps two adjacent characters.",
	model.TechniqueHyphenation: "Inserts or removes a hyphen between characters.",
	model.TechniqueTLD:        "Keeps the name but swaps in an alternative top-level domain.",
	model.TechniquePrefix:     "Prepends a phishing-suggestive word such as \"secure\" or \"login\".",
	model.TechniqueSuffix:     "Appends a phishing-suggestive word such as \"support\" or \"verify\".",
	model.TechniqueVowelSwap:  "Replaces one vowel with a different vowel.",
	model.TechniqueDoubleChar: "Collapses a doubled character run down to one occurrence.",
	model.TechniqueBitsquatting: "Flips a single bit in one character's byte value, simulating hardware bit errors.",
	model.TechniqueSubdomain:  "Appends a credential-suggestive label after the name under .com, e.g. <name>.login.com.",
}

// TechniqueDescription returns a one-line human-readable description of
// tag, used by the CLI's techniques subcommand.
func TechniqueDescription(tag model.Technique) string {
	if d, ok := techniqueDescriptions[tag]; ok {
		return d
	}
	return "no description available"
}
