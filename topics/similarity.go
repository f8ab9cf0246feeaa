package topics

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// normalizeStem folds simple English plurals so "tips" and "tip" compare
// equal.
func normalizeStem(w string) string {
	if len(w) > 4 && strings.HasSuffix(w, "ies") {
		return w[:len(w)-3] + "y"
	}
	if len(w) > 3 && w[len(w)-1] == 's' && w[len(w)-2] != 's' && w[len(w)-2] != 'u' && w[len(w)-2] != 'i' {
		return w[:len(w)-1]
	}
	return w
}

// WordSet returns the set of normalised words in s.
func WordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range strings.Fields(lower.String(s)) {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if f == "" {
			continue
		}
		set[normalizeStem(f)] = struct{}{}
	}
	return set
}

// Overlap is |A∩B| / min(|A|,|B|) over the word sets of a and b, or 0 when
// either side has no words.
func Overlap(a, b string) float64 {
	return overlapSets(WordSet(a), WordSet(b))
}

func overlapSets(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	shared := 0
	for w := range small {
		if _, ok := large[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(small))
}
