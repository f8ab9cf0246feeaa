package ideas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"shortsgenix/classify"
	"shortsgenix/keywords"
	"shortsgenix/topics"
	"shortsgenix/youtube"
)

// ErrNoKeywords means no video title produced a usable keyword.
var ErrNoKeywords = errors.New("no keywords extracted from channel videos")

// ChannelSource resolves a channel and lists its videos.
type ChannelSource interface {
	Channel(ctx context.Context, ref youtube.ChannelRef) (*youtube.Channel, error)
	Videos(ctx context.Context, channelID string, limit int) ([]youtube.Video, error)
}

// Pipeline runs one idea request end to end. Every field is read-only after
// construction so a single Pipeline serves concurrent requests.
type Pipeline struct {
	Channels     ChannelSource
	Topics       *topics.Aggregator
	Synth        Synthesizer
	VideoLimit   int
	KeywordLimit int
	Region       string
}

// Result is the outcome of a successful run.
type Result struct {
	Channel   *youtube.Channel
	Niche     classify.Niche
	VideoType classify.VideoType
	Keywords  []string
	Topics    []string
	Fallback  bool
	Ideas     []Idea
}

// Run fetches the channel behind rawURL, classifies it and synthesises ideas.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*Result, error) {
	ref, err := youtube.ParseChannelURL(rawURL)
	if err != nil {
		return nil, err
	}

	ch, err := p.Channels.Channel(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("fetch channel %s: %w", ref, err)
	}
	slog.InfoContext(ctx, "channel resolved",
		"channel_id", ch.ID,
		"title", ch.Title,
		"subscribers", humanize.Comma(int64(ch.SubscriberCount)),
		"videos", humanize.Comma(int64(ch.VideoCount)),
	)

	videos, err := p.Channels.Videos(ctx, ch.ID, p.VideoLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch videos for %s: %w", ch.ID, err)
	}

	titles := make([]string, 0, len(videos))
	texts := make([]classify.VideoText, 0, len(videos))
	for _, v := range videos {
		titles = append(titles, v.Title)
		texts = append(texts, classify.VideoText{Title: v.Title, Description: v.Description, Tags: v.Tags})
	}

	kws := keywords.Extract(titles, p.KeywordLimit)
	if len(kws) == 0 {
		return nil, fmt.Errorf("channel %s: %w", ch.ID, ErrNoKeywords)
	}

	categoryID := youtube.DominantCategory(videos)
	niche := classify.ResolveNiche(kws, titles, ch.Description, categoryID)
	vtype := classify.ClassifyVideoType(texts)

	agg, err := p.Topics.Collect(ctx, topics.Input{
		Keywords:    kws,
		Titles:      titles,
		Description: ch.Description,
		CategoryID:  categoryID,
		Region:      p.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", ch.ID, err)
	}

	slog.DebugContext(ctx, "channel classified",
		"niche", niche,
		"video_type", vtype,
		"category", categoryID,
		"keywords", kws,
		"topics", len(agg.Topics),
		"filtered", agg.Filtered,
		"fallback", agg.Fallback,
	)

	return &Result{
		Channel:   ch,
		Niche:     niche,
		VideoType: vtype,
		Keywords:  kws,
		Topics:    agg.Topics,
		Fallback:  agg.Fallback,
		Ideas:     p.Synth.Generate(niche, vtype, agg.Topics),
	}, nil
}
