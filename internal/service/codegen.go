package service

import (
	"fmt"
	"strings"
)

// codeRoot prefixes every generated code: VG for Valverde, MAO for Mao.
const codeRoot = "VG-MAO-"

// maxAbbreviationLen caps the sector abbreviation inside a generated code.
const maxAbbreviationLen = 5

// fallbackAbbreviation is used when a sector has no usable tokens.
const fallbackAbbreviation = "XXX"

// stopWords are articles and conjunctions dropped when abbreviating a sector.
var stopWords = map[string]struct{}{
	"de":  {},
	"del": {},
	"la":  {},
	"el":  {},
	"los": {},
	"las": {},
	"y":   {},
}

// sectorAbbreviation derives the abbreviation for a sector name: the first
// letter of each non-stop-word token, uppercased, truncated to five letters.
func sectorAbbreviation(sector string) string {
	var initials []rune
	for _, word := range strings.Fields(sector) {
		if _, ok := stopWords[strings.ToLower(word)]; ok {
			continue
		}
		initials = append(initials, []rune(strings.ToUpper(word))[0])
	}

	if len(initials) == 0 {
		return fallbackAbbreviation
	}
	if len(initials) > maxAbbreviationLen {
		initials = initials[:maxAbbreviationLen]
	}
	return string(initials)
}

// codePrefix builds the shared prefix for all codes in a sector bucket.
func codePrefix(sector string) string {
	return codeRoot + sectorAbbreviation(sector) + "-"
}

// formatCode appends the zero-padded sequence number to a prefix.
func formatCode(prefix string, sequence int) string {
	return fmt.Sprintf("%s%05d", prefix, sequence)
}
