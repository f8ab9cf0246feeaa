package trends

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelated_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "minecraft", r.URL.Query().Get("q"))
		assert.Equal(t, "yt", r.URL.Query().Get("ds"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["minecraft",["minecraft","minecraft <b>hardcore</b>","minecraft  house   ideas","","minecraft &amp; friends"],[],{}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	got, err := c.Related(context.Background(), "minecraft")
	require.NoError(t, err)
	assert.Equal(t, []string{"minecraft hardcore", "minecraft house ideas", "minecraft & friends"}, got)
}

func TestRelated_CapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []string
		for i := 0; i < 15; i++ {
			items = append(items, `"s`+strings.Repeat("x", i+1)+`"`)
		}
		w.Write([]byte(`["q",[` + strings.Join(items, ",") + `]]`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, "", time.Second).Related(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, got, MaxResults)
}

func TestRelated_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"http error", http.StatusServiceUnavailable, "down"},
		{"not json", 200, "<html>"},
		{"short array", 200, `["q"]`},
		{"wrong inner type", 200, `["q", 42]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "", time.Second).Related(context.Background(), "q")
			assert.Error(t, err)
		})
	}
}

func TestRelated_EmptySeed(t *testing.T) {
	_, err := NewClient("", "", 0).Related(context.Background(), "  ")
	assert.Error(t, err)
}

func TestDaily_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GB", r.URL.Query().Get("geo"))
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Daily Search Trends</title>
<item><title>champions league</title></item>
<item><title>  eclipse   tonight </title></item>
<item><title></title></item>
</channel></rss>`))
	}))
	defer srv.Close()

	got, err := NewClient("", srv.URL, time.Second).Daily(context.Background(), "gb")
	require.NoError(t, err)
	assert.Equal(t, []string{"champions league", "eclipse tonight"}, got)
}

func TestDaily_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<rss><channel><item>`))
	}))
	defer srv.Close()

	_, err := NewClient("", srv.URL, time.Second).Daily(context.Background(), "US")
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(" ", "", 0)
	assert.Equal(t, DefaultSuggestURL, c.suggestURL)
	assert.Equal(t, DefaultDailyURL, c.dailyURL)
	assert.Equal(t, 10*time.Second, c.http.Timeout)
}
