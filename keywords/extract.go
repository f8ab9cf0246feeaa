// Package keywords extracts ranked keyword phrases from video titles.
package keywords

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLimit is the keyword cap used when Extract is called with limit <= 0.
const DefaultLimit = 10

// minTokenRunes is the shortest token kept after filtering.
const minTokenRunes = 4

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "this": {}, "that": {}, "from": {},
	"your": {}, "you": {}, "are": {}, "was": {}, "were": {}, "have": {}, "has": {},
	"will": {}, "what": {}, "when": {}, "where": {}, "which": {}, "who": {}, "how": {},
	"why": {}, "into": {}, "about": {}, "than": {}, "then": {}, "them": {}, "they": {},
	"their": {}, "there": {}, "these": {}, "those": {}, "just": {}, "only": {}, "also": {},
	"some": {}, "more": {}, "most": {}, "very": {}, "much": {}, "many": {}, "over": {},
	"after": {}, "before": {}, "again": {}, "been": {}, "being": {}, "does": {}, "doing": {},
	"should": {}, "would": {}, "could": {}, "here": {}, "each": {}, "every": {}, "other": {},
	"such": {}, "like": {}, "make": {}, "made": {}, "ever": {}, "even": {}, "because": {},
	"while": {}, "under": {}, "until": {}, "upon": {}, "onto": {}, "didn't": {}, "don't": {},
	"can't": {}, "won't": {}, "it's": {}, "i'm": {}, "you're": {}, "official": {}, "video": {},
	"videos": {}, "episode": {}, "part": {},
}

var lower = cases.Lower(language.Und)

// Tokens lowercases s, splits it on whitespace, trims punctuation from the
// edges of each token and drops stop words and tokens shorter than four runes.
func Tokens(s string) []string {
	fields := strings.Fields(lower.String(s))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(f) < minTokenRunes {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Extract returns up to limit distinct keywords from titles: trigrams first,
// then bigrams, then unigrams, each group ranked by frequency. N-grams never
// span two titles. The result is empty when no title has a usable token.
func Extract(titles []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	uni, bi, tri := newCounter(), newCounter(), newCounter()
	for _, title := range titles {
		toks := Tokens(title)
		for i, t := range toks {
			uni.add(t)
			if i+2 <= len(toks) {
				bi.add(strings.Join(toks[i:i+2], " "))
			}
			if i+3 <= len(toks) {
				tri.add(strings.Join(toks[i:i+3], " "))
			}
		}
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, limit)
	for _, group := range [][]string{tri.ranked(), bi.ranked(), uni.ranked()} {
		for _, k := range group {
			if len(out) == limit {
				return out
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

// WordCount is the number of space-separated words in a keyword.
func WordCount(k string) int {
	return len(strings.Fields(k))
}

type counter struct {
	order []string
	freq  map[string]int
}

func newCounter() *counter {
	return &counter{freq: make(map[string]int)}
}

func (c *counter) add(k string) {
	if _, ok := c.freq[k]; !ok {
		c.order = append(c.order, k)
	}
	c.freq[k]++
}

// ranked orders by frequency; the stable sort keeps first-seen order on ties.
func (c *counter) ranked() []string {
	out := append([]string(nil), c.order...)
	sort.SliceStable(out, func(i, j int) bool { return c.freq[out[i]] > c.freq[out[j]] })
	return out
}
