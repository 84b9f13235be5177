// Package fold provides Unicode case and diacritic folding for
// accent-insensitive string comparison.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips diacritics, so "Café" folds to "cafe".
// Diacritics are removed by NFD decomposition followed by dropping
// combining marks (Unicode category Mn); the result is recomposed to NFC.
func Fold(s string) string {
	s = strings.ToLower(s)

	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	return norm.NFC.String(b.String())
}
