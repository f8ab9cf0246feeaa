package ideas

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortsgenix/classify"
	"shortsgenix/topics"
	"shortsgenix/youtube"
)

type fakeChannels struct {
	channel    *youtube.Channel
	videos     []youtube.Video
	channelErr error
	videosErr  error

	gotRef   youtube.ChannelRef
	gotLimit int
}

func (f *fakeChannels) Channel(_ context.Context, ref youtube.ChannelRef) (*youtube.Channel, error) {
	f.gotRef = ref
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.channel, nil
}

func (f *fakeChannels) Videos(_ context.Context, _ string, limit int) ([]youtube.Video, error) {
	f.gotLimit = limit
	if f.videosErr != nil {
		return nil, f.videosErr
	}
	return f.videos, nil
}

type fakeTrends struct {
	related    []string
	relatedErr error
	gotSeed    string
}

func (f *fakeTrends) Related(_ context.Context, seed string) ([]string, error) {
	f.gotSeed = seed
	return f.related, f.relatedErr
}

func (f *fakeTrends) Daily(context.Context, string) ([]string, error) { return nil, nil }

func gamingChannel() *fakeChannels {
	return &fakeChannels{
		channel: &youtube.Channel{ID: "UC123", Title: "Blocky Plays", SubscriberCount: 120000},
		videos: []youtube.Video{
			{ID: "a", Title: "Minecraft speedrun world record attempt", CategoryID: "20"},
			{ID: "b", Title: "Minecraft speedrun tips for beginners", CategoryID: "20"},
			{ID: "c", Title: "Fortnite gameplay highlights", CategoryID: "20"},
		},
	}
}

func newTestPipeline(ch ChannelSource, tr topics.TrendSource) *Pipeline {
	return &Pipeline{
		Channels:     ch,
		Topics:       &topics.Aggregator{Trends: tr},
		Synth:        Synthesizer{Count: DefaultCount},
		VideoLimit:   20,
		KeywordLimit: 10,
		Region:       "US",
	}
}

func TestPipelineRun_Gaming(t *testing.T) {
	ch := gamingChannel()
	tr := &fakeTrends{related: []string{"speedrun glitch", "seed finder", "world record", "any percent", "pearl trade", "bastion route"}}

	res, err := newTestPipeline(ch, tr).Run(context.Background(), "https://www.youtube.com/@BlockyPlays")
	require.NoError(t, err)

	assert.Equal(t, youtube.ChannelRef{Kind: youtube.RefHandle, Value: "BlockyPlays"}, ch.gotRef)
	assert.Equal(t, 20, ch.gotLimit)
	assert.Equal(t, "minecraft speedrun world", tr.gotSeed)

	assert.Equal(t, classify.NicheGaming, res.Niche)
	assert.Equal(t, classify.TypeTutorial, res.VideoType)
	assert.False(t, res.Fallback)
	assert.Equal(t, tr.related, res.Topics)
	require.Len(t, res.Ideas, DefaultCount)
	assert.Equal(t, "🔥 One Speedrun glitch trick pros don't share!", res.Ideas[0].Title)
	assert.Equal(t, "Blocky Plays", res.Channel.Title)
}

func TestPipelineRun_TrendFailureFallsBackToKeywords(t *testing.T) {
	ch := gamingChannel()
	tr := &fakeTrends{relatedErr: errors.New("suggest: 503")}

	res, err := newTestPipeline(ch, tr).Run(context.Background(), "https://youtube.com/channel/UCabcdefghijklmnopqrstuv")
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Equal(t, res.Keywords, res.Topics)
	assert.NotEmpty(t, res.Ideas)
	assert.LessOrEqual(t, len(res.Ideas), DefaultCount)
}

func TestPipelineRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		setup func(*fakeChannels)
		want  error
	}{
		{
			name: "invalid url",
			url:  "https://invalid",
			want: youtube.ErrInvalidURL,
		},
		{
			name:  "channel not found",
			url:   "https://youtube.com/@nobody",
			setup: func(f *fakeChannels) { f.channelErr = fmt.Errorf("channels.list: %w", youtube.ErrChannelNotFound) },
			want:  youtube.ErrChannelNotFound,
		},
		{
			name:  "quota",
			url:   "https://youtube.com/@nobody",
			setup: func(f *fakeChannels) { f.videosErr = fmt.Errorf("search.list: %w", youtube.ErrQuotaExceeded) },
			want:  youtube.ErrQuotaExceeded,
		},
		{
			name: "no keywords",
			url:  "https://youtube.com/@tiny",
			setup: func(f *fakeChannels) {
				f.videos = []youtube.Video{{Title: "I am ok"}, {Title: "Go go go"}}
			},
			want: ErrNoKeywords,
		},
		{
			name:  "no videos",
			url:   "https://youtube.com/@empty",
			setup: func(f *fakeChannels) { f.videos = nil },
			want:  ErrNoKeywords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := gamingChannel()
			if tt.setup != nil {
				tt.setup(ch)
			}
			_, err := newTestPipeline(ch, &fakeTrends{related: []string{"x topic"}}).Run(context.Background(), tt.url)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPipelineRun_NoTrendSource(t *testing.T) {
	p := newTestPipeline(gamingChannel(), nil)
	res, err := p.Run(context.Background(), "https://youtube.com/@BlockyPlays")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
}
