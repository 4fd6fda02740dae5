// Package textnorm folds free text so that lookups ignore case and accents.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining marks ("Sangría" -> "sangria", "ñ" -> "n").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Clean folds s, drops everything except letters, digits, '_', '-' and spaces,
// and trims the result.
func Clean(s string) string {
	folded := Fold(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Key folds an identifier and treats '_' and ' ' as the same character.
func Key(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(Fold(s), "_", " ")), " ")
}
