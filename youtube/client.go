// Package youtube resolves channels and their videos through the YouTube
// Data API v3.
package youtube

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// MaxVideos is the Data API page size ceiling for search and videos calls.
const MaxVideos = 50

// Channel is the snapshot of a channel fetched once per request.
type Channel struct {
	ID              string
	Title           string
	Description     string
	SubscriberCount uint64
	VideoCount      uint64
	ViewCount       uint64
}

// Video is the subset of a video's metadata the idea pipeline uses.
type Video struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	CategoryID  string
	ViewCount   uint64
}

// Client wraps the generated Data API service.
type Client struct {
	svc *yt.Service
}

// NewClient builds a Client authenticated with an API key. Extra options
// (for example option.WithEndpoint in tests) are appended.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Channel looks up a channel by handle, ID or legacy username.
func (c *Client) Channel(ctx context.Context, ref ChannelRef) (*Channel, error) {
	call := c.svc.Channels.List([]string{"snippet", "statistics"}).Context(ctx)
	switch ref.Kind {
	case RefID:
		call = call.Id(ref.Value)
	case RefUsername:
		call = call.ForUsername(ref.Value)
	default:
		call = call.ForHandle("@" + strings.TrimPrefix(ref.Value, "@"))
	}

	resp, err := call.Do()
	if err != nil {
		return nil, classify("channels.list", err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	item := resp.Items[0]
	ch := &Channel{ID: item.Id}
	if item.Snippet != nil {
		ch.Title = item.Snippet.Title
		ch.Description = item.Snippet.Description
	}
	if item.Statistics != nil {
		ch.SubscriberCount = item.Statistics.SubscriberCount
		ch.VideoCount = item.Statistics.VideoCount
		ch.ViewCount = item.Statistics.ViewCount
	}
	return ch, nil
}

// Videos returns up to limit of the channel's most viewed videos, falling
// back to the most recent ones when the view-count search comes back empty.
// Descriptions, tags and categories come from a follow-up videos.list call.
func (c *Client) Videos(ctx context.Context, channelID string, limit int) ([]Video, error) {
	if limit <= 0 || limit > MaxVideos {
		limit = 20
	}

	ids, err := c.searchVideoIDs(ctx, channelID, "viewCount", limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		ids, err = c.searchVideoIDs(ctx, channelID, "date", limit)
		if err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	resp, err := c.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(ids...).
		MaxResults(int64(len(ids))).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("videos.list", err)
	}

	byID := make(map[string]*yt.Video, len(resp.Items))
	for _, v := range resp.Items {
		byID[v.Id] = v
	}

	videos := make([]Video, 0, len(ids))
	for _, id := range ids {
		v, ok := byID[id]
		if !ok || v.Snippet == nil {
			continue
		}
		out := Video{
			ID:          v.Id,
			Title:       v.Snippet.Title,
			Description: v.Snippet.Description,
			Tags:        v.Snippet.Tags,
			CategoryID:  v.Snippet.CategoryId,
		}
		if v.Statistics != nil {
			out.ViewCount = v.Statistics.ViewCount
		}
		videos = append(videos, out)
	}
	return videos, nil
}

func (c *Client) searchVideoIDs(ctx context.Context, channelID, order string, limit int) ([]string, error) {
	resp, err := c.svc.Search.List([]string{"id"}).
		ChannelId(channelID).
		Type("video").
		Order(order).
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("search.list", err)
	}
	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// TrendingTitles returns titles from the most-popular chart for a region,
// narrowed to a video category when categoryID is set.
func (c *Client) TrendingTitles(ctx context.Context, region, categoryID string, limit int) ([]string, error) {
	if limit <= 0 || limit > MaxVideos {
		limit = 10
	}
	call := c.svc.Videos.List([]string{"snippet"}).
		Chart("mostPopular").
		MaxResults(int64(limit)).
		Context(ctx)
	if region != "" {
		call = call.RegionCode(region)
	}
	if categoryID != "" {
		call = call.VideoCategoryId(categoryID)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, classify("videos.list chart", err)
	}
	titles := make([]string, 0, len(resp.Items))
	for _, v := range resp.Items {
		if v.Snippet != nil && v.Snippet.Title != "" {
			titles = append(titles, v.Snippet.Title)
		}
	}
	return titles, nil
}

// DominantCategory returns the most frequent category ID among videos; ties
// go to the category seen first.
func DominantCategory(videos []Video) string {
	counts := make(map[string]int)
	var order []string
	for _, v := range videos {
		if v.CategoryID == "" {
			continue
		}
		if counts[v.CategoryID] == 0 {
			order = append(order, v.CategoryID)
		}
		counts[v.CategoryID]++
	}
	best, bestN := "", 0
	for _, id := range order {
		if counts[id] > bestN {
			best, bestN = id, counts[id]
		}
	}
	return best
}
