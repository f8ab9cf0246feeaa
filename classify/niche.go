// Package classify assigns niche and video-type labels to a channel using
// fixed keyword tables. Every function here is pure and deterministic.
package classify

import (
	"strings"

	"shortsgenix/keywords"
)

// Weights applied per matched niche keyword.
const (
	titleWeight       = 1
	descriptionWeight = 2
)

// ClassifyNiche scores every niche against the extracted keywords, the video
// titles and the channel description. A keyword match is worth the keyword's
// word count, a title match 1 and a description match 2. The highest score
// wins, ties go to the earlier niche, and NicheDefault is returned when
// nothing matches.
func ClassifyNiche(kws []string, titles []string, description string) Niche {
	scores := make([]int, len(nicheRules))

	for _, k := range kws {
		lk := strings.ToLower(k)
		w := keywords.WordCount(lk)
		for i, rule := range nicheRules {
			for _, nk := range rule.keywords {
				if strings.Contains(lk, nk) {
					scores[i] += w
				}
			}
		}
	}

	for _, t := range titles {
		lt := strings.ToLower(t)
		for i, rule := range nicheRules {
			for _, nk := range rule.keywords {
				if strings.Contains(lt, nk) {
					scores[i] += titleWeight
				}
			}
		}
	}

	if description != "" {
		ld := strings.ToLower(description)
		for i, rule := range nicheRules {
			for _, nk := range rule.keywords {
				if strings.Contains(ld, nk) {
					scores[i] += descriptionWeight
				}
			}
		}
	}

	best, bestScore := NicheDefault, 0
	for i, rule := range nicheRules {
		if scores[i] > bestScore {
			best, bestScore = rule.label, scores[i]
		}
	}
	return best
}

// NicheForCategory maps a YouTube video category ID to a niche.
func NicheForCategory(categoryID string) (Niche, bool) {
	n, ok := categoryNiches[strings.TrimSpace(categoryID)]
	return n, ok
}

// ResolveNiche runs ClassifyNiche and falls back to the category lookup only
// when the keyword tables produced no signal.
func ResolveNiche(kws []string, titles []string, description, categoryID string) Niche {
	n := ClassifyNiche(kws, titles, description)
	if n != NicheDefault {
		return n
	}
	if c, ok := NicheForCategory(categoryID); ok {
		return c
	}
	return NicheDefault
}
