package classify

import "strings"

// VideoText is the text of one video considered by ClassifyVideoType.
type VideoText struct {
	Title       string
	Description string
	Tags        []string
}

// ClassifyVideoType counts occurrences of each type's phrases across titles,
// descriptions and tags. The highest count wins, ties go to the earlier type,
// and TypeVlog is returned when nothing matches.
func ClassifyVideoType(videos []VideoText) VideoType {
	scores := make([]int, len(typeRules))

	score := func(text string) {
		if text == "" {
			return
		}
		lt := strings.ToLower(text)
		for i, rule := range typeRules {
			for _, phrase := range rule.keywords {
				scores[i] += strings.Count(lt, phrase)
			}
		}
	}

	for _, v := range videos {
		score(v.Title)
		score(v.Description)
		for _, tag := range v.Tags {
			score(tag)
		}
	}

	best, bestScore := TypeVlog, 0
	for i, rule := range typeRules {
		if scores[i] > bestScore {
			best, bestScore = rule.label, scores[i]
		}
	}
	return best
}
