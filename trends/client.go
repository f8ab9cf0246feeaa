// Package trends fetches trending query strings from Google's public
// suggestion and daily-trends endpoints.
package trends

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultSuggestURL = "https://suggestqueries.google.com/complete/search"
	DefaultDailyURL   = "https://trends.google.com/trending/rss"

	// MaxResults caps every list returned by the client.
	MaxResults = 10

	userAgent    = "shortsgenix/1.0"
	maxBodyBytes = 1 << 20
)

var strict = bluemonday.StrictPolicy()

// Client talks to the trend endpoints. The zero value is not usable; use
// NewClient.
type Client struct {
	suggestURL string
	dailyURL   string
	http       *http.Client
}

// NewClient returns a Client; empty URLs select the public Google endpoints.
func NewClient(suggestURL, dailyURL string, timeout time.Duration) *Client {
	suggestURL = strings.TrimSpace(suggestURL)
	if suggestURL == "" {
		suggestURL = DefaultSuggestURL
	}
	dailyURL = strings.TrimSpace(dailyURL)
	if dailyURL == "" {
		dailyURL = DefaultDailyURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		suggestURL: suggestURL,
		dailyURL:   dailyURL,
		http:       &http.Client{Timeout: timeout},
	}
}

// Related returns YouTube search suggestions for seed, excluding the seed
// itself.
func (c *Client) Related(ctx context.Context, seed string) ([]string, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil, fmt.Errorf("trends: seed is required")
	}

	u, err := url.Parse(c.suggestURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("client", "firefox")
	q.Set("ds", "yt")
	q.Set("q", seed)
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	// Payload shape: ["seed", ["suggestion", ...], ...]
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("trends: decode suggestions: %w", err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("trends: malformed suggestions payload")
	}
	var suggestions []string
	if err := json.Unmarshal(raw[1], &suggestions); err != nil {
		return nil, fmt.Errorf("trends: decode suggestions: %w", err)
	}

	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		s = clean(s)
		if s == "" || strings.EqualFold(s, seed) {
			continue
		}
		out = append(out, s)
		if len(out) == MaxResults {
			break
		}
	}
	return out, nil
}

type rssFeed struct {
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

// Daily returns today's trending searches for a region code such as "US".
func (c *Client) Daily(ctx context.Context, geo string) ([]string, error) {
	u, err := url.Parse(c.dailyURL)
	if err != nil {
		return nil, err
	}
	if geo = strings.TrimSpace(geo); geo != "" {
		q := u.Query()
		q.Set("geo", strings.ToUpper(geo))
		u.RawQuery = q.Encode()
	}

	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("trends: decode daily feed: %w", err)
	}

	out := make([]string, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		if t := clean(item.Title); t != "" {
			out = append(out, t)
		}
		if len(out) == MaxResults {
			break
		}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trends: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("trends: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

// clean strips markup and entities and collapses whitespace.
func clean(s string) string {
	s = html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
