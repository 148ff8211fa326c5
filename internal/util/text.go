package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reSpaces      = regexp.MustCompile(`[\s\p{Zs}]+`)
	reAnnotations = regexp.MustCompile(`\(.*?\)`)
	bracketGlyphs = strings.NewReplacer("【", "", "】", "")
)

// NFC composes Hangul jamo sequences. File names coming from macOS volumes are
// stored decomposed and would otherwise never match the Korean markers.
func NFC(input string) string {
	return norm.NFC.String(input)
}

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// StripAnnotations removes "(...)" groups and 【】 glyphs from a heading.
func StripAnnotations(input string) string {
	s := reAnnotations.ReplaceAllString(input, "")
	s = strings.TrimSpace(s)
	s = bracketGlyphs.Replace(s)
	return strings.TrimSpace(s)
}

func DigitsOnly(input string) string {
	out := strings.Builder{}
	for _, r := range input {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func HasDigit(input string) bool {
	return strings.ContainsFunc(input, func(r rune) bool { return r >= '0' && r <= '9' })
}

func ContainsAny(s string, probes []string) bool {
	for _, p := range probes {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
