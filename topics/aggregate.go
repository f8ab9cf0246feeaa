// Package topics merges trending topics from the trend service and the
// YouTube trending chart and drops those too close to a channel's content.
package topics

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// ErrNoTopics is returned when every source and fallback came up empty.
var ErrNoTopics = errors.New("no trending topics")

// SourceLimit caps how many topics are taken from each source.
const SourceLimit = 10

// DefaultThreshold is the overlap ratio at or above which a topic is
// considered a near duplicate of existing content.
const DefaultThreshold = 0.5

// TrendSource returns related and daily trending queries.
type TrendSource interface {
	Related(ctx context.Context, seed string) ([]string, error)
	Daily(ctx context.Context, geo string) ([]string, error)
}

// ChartSource returns titles from the platform's trending chart.
type ChartSource interface {
	TrendingTitles(ctx context.Context, region, categoryID string, limit int) ([]string, error)
}

// Options toggles the optional sources and the similarity filter.
type Options struct {
	IncludeDaily  bool
	IncludeChart  bool
	FilterSimilar bool
	Threshold     float64
}

// Input is what the aggregator knows about the channel.
type Input struct {
	Keywords    []string
	Titles      []string
	Description string
	CategoryID  string
	Region      string
}

// Result is the merged topic list.
type Result struct {
	Topics   []string
	Fallback bool // related lookup failed; keywords stood in
	Filtered int  // topics dropped by the similarity filter
}

// Aggregator collects topics for one request. Chart may be nil.
type Aggregator struct {
	Trends TrendSource
	Chart  ChartSource
	Opts   Options
}

type candidate struct {
	text     string
	external bool
}

// Collect gathers topics from every enabled source. Only an empty final list
// is an error; individual source failures degrade to fewer topics. The
// extracted keywords stand in when the related lookup fails or when the
// similarity filter leaves nothing.
func (a *Aggregator) Collect(ctx context.Context, in Input) (Result, error) {
	var res Result
	var pool []candidate

	seed := ""
	if len(in.Keywords) > 0 {
		seed = in.Keywords[0]
	}

	related, err := a.related(ctx, seed)
	if err != nil || len(related) == 0 {
		slog.WarnContext(ctx, "trend lookup failed, reusing keywords", "seed", seed, "err", err)
		res.Fallback = true
		for _, k := range capList(in.Keywords) {
			pool = append(pool, candidate{text: k})
		}
	} else {
		for _, t := range related {
			pool = append(pool, candidate{text: t, external: true})
		}
	}

	if a.Opts.IncludeDaily && a.Trends != nil {
		daily, err := a.Trends.Daily(ctx, in.Region)
		if err != nil {
			slog.WarnContext(ctx, "daily trends unavailable", "region", in.Region, "err", err)
		}
		for _, t := range capList(daily) {
			pool = append(pool, candidate{text: t, external: true})
		}
	}

	if a.Opts.IncludeChart && a.Chart != nil {
		chart, err := a.Chart.TrendingTitles(ctx, in.Region, in.CategoryID, SourceLimit)
		if err != nil {
			slog.WarnContext(ctx, "trending chart unavailable", "region", in.Region, "category", in.CategoryID, "err", err)
		}
		for _, t := range capList(chart) {
			pool = append(pool, candidate{text: t, external: true})
		}
	}

	pool = dedupe(pool)

	if a.Opts.FilterSimilar {
		threshold := a.Opts.Threshold
		if threshold <= 0 {
			threshold = DefaultThreshold
		}
		channelWords := WordSet(strings.Join(in.Titles, " ") + " " + in.Description)
		kept := pool[:0]
		for _, c := range pool {
			if c.external && overlapSets(WordSet(c.text), channelWords) >= threshold {
				res.Filtered++
				continue
			}
			kept = append(kept, c)
		}
		pool = kept
	}

	if len(pool) == 0 && !res.Fallback && res.Filtered > 0 {
		slog.WarnContext(ctx, "every trend overlapped channel content, reusing keywords", "filtered", res.Filtered)
		res.Fallback = true
		for _, k := range capList(in.Keywords) {
			pool = append(pool, candidate{text: k})
		}
		pool = dedupe(pool)
	}

	for _, c := range pool {
		res.Topics = append(res.Topics, c.text)
	}
	if len(res.Topics) == 0 {
		return res, ErrNoTopics
	}
	return res, nil
}

func (a *Aggregator) related(ctx context.Context, seed string) ([]string, error) {
	if a.Trends == nil || seed == "" {
		return nil, nil
	}
	out, err := a.Trends.Related(ctx, seed)
	if err != nil {
		return nil, err
	}
	return capList(out), nil
}

func capList(in []string) []string {
	if len(in) > SourceLimit {
		return in[:SourceLimit]
	}
	return in
}

// dedupe keeps the first occurrence of each exact string and drops blanks.
func dedupe(in []candidate) []candidate {
	seen := make(map[string]struct{}, len(in))
	out := make([]candidate, 0, len(in))
	for _, c := range in {
		c.text = strings.TrimSpace(c.text)
		if c.text == "" {
			continue
		}
		if _, dup := seen[c.text]; dup {
			continue
		}
		seen[c.text] = struct{}{}
		out = append(out, c)
	}
	return out
}
