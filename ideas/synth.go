// Package ideas turns a channel's niche, video type and trending topics into
// ranked Shorts ideas, and serves them over HTTP.
package ideas

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"shortsgenix/classify"
)

// DefaultCount is the number of ideas returned per request.
const DefaultCount = 5

// Marker prefixes every idea title.
const Marker = "🔥 "

// Idea is one suggestion.
type Idea struct {
	Title string
	Score float64
}

// MarshalJSON renders the score as a one-decimal string.
func (i Idea) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title string `json:"title"`
		Score string `json:"score"`
	}{i.Title, strconv.FormatFloat(i.Score, 'f', 1, 64)})
}

// Synthesizer fills templates with topics. Shuffle, when set, permutes the
// candidate pool before it is truncated to Count; rand.Shuffle fits.
type Synthesizer struct {
	Count   int
	Shuffle func(n int, swap func(i, j int))
}

// Generate builds one idea per topic and returns at most Count of them.
func (s Synthesizer) Generate(niche classify.Niche, vtype classify.VideoType, topics []string) []Idea {
	count := s.Count
	if count <= 0 {
		count = DefaultCount
	}
	tmpls := Templates(niche, vtype)
	if len(tmpls) == 0 || len(topics) == 0 {
		return []Idea{}
	}

	pool := make([]Idea, 0, len(topics))
	for i, topic := range topics {
		title := strings.ReplaceAll(tmpls[i%len(tmpls)], Placeholder, capitalize(strings.TrimSpace(topic)))
		pool = append(pool, Idea{Title: Marker + title, Score: Score(i)})
	}

	if s.Shuffle != nil {
		s.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// Score is the presentation score for the topic at position i, built from a
// synthetic trend rank (90-10i) and view estimate (800k+50k·i), clamped to
// [0, 10] and rounded to one decimal.
func Score(i int) float64 {
	trendRank := 90.0 - float64(i)*10
	viewsEstimate := 800000.0 + float64(i)*50000
	v := trendRank/100*5 + viewsEstimate/1_000_000*5
	v = math.Max(0, math.Min(10, v))
	return math.Round(v*10) / 10
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
