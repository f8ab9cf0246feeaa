package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("YOUTUBE_API_KEY", "key-123")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "key-123", cfg.YouTubeAPIKey)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "US", cfg.Region)
	require.Equal(t, 20, cfg.VideoLimit)
	require.Equal(t, 10, cfg.KeywordLimit)
	require.Equal(t, 5, cfg.IdeaCount)
	require.Equal(t, 0.5, cfg.SimilarityThreshold)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	require.True(t, cfg.FilterSimilar)
	require.True(t, cfg.IncludeTrendingChart)
	require.False(t, cfg.IncludeDailyTrends)
	require.True(t, cfg.ShuffleIdeas)
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_MissingAPIKey(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("YOUTUBE_API_KEY", "")

	cfg, err := Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("YOUTUBE_API_KEY", "k")
	t.Setenv("PORT", "8080")
	t.Setenv("YOUTUBE_REGION", "gb")
	t.Setenv("IDEA_COUNT", "3")
	t.Setenv("FILTER_SIMILAR", "false")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "GB", cfg.Region)
	require.Equal(t, 3, cfg.IdeaCount)
	require.False(t, cfg.FilterSimilar)
	require.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := map[string]string{
		"PORT":                 "http",
		"VIDEO_LIMIT":          "500",
		"SIMILARITY_THRESHOLD": "1.5",
		"LOG_LEVEL":            "verbose",
		"TRENDS_SUGGEST_URL":   "not a url",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)

			t.Setenv("YOUTUBE_API_KEY", "k")
			t.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
