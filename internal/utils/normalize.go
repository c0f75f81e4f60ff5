package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases a term and strips accents and diacritics, so catalog
// text and queries match regardless of spelling variants.
// Example: "Gestión" -> "gestion", "Résumé" -> "resume".
func Fold(s string) string {
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, s)

	return strings.ToLower(folded)
}

// FoldFields folds a string and splits it into letter/digit runs,
// discarding punctuation. Used by the catalog tokenizer.
func FoldFields(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
