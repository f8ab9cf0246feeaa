// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port               string `mapstructure:"PORT" validate:"required,numeric"`
	CORSOrigins        string `mapstructure:"CORS_ORIGINS"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE" validate:"gte=0"`
	LogLevel           string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	// YouTube Data API
	YouTubeAPIKey string `mapstructure:"YOUTUBE_API_KEY" validate:"required"`
	Region        string `mapstructure:"YOUTUBE_REGION" validate:"len=2"`
	VideoLimit    int    `mapstructure:"VIDEO_LIMIT" validate:"gte=1,lte=50"`

	// Trend service
	TrendsSuggestURL string        `mapstructure:"TRENDS_SUGGEST_URL" validate:"omitempty,url"`
	TrendsDailyURL   string        `mapstructure:"TRENDS_DAILY_URL" validate:"omitempty,url"`
	HTTPTimeout      time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"gt=0"`

	// Pipeline
	KeywordLimit         int     `mapstructure:"KEYWORD_LIMIT" validate:"gte=1"`
	IdeaCount            int     `mapstructure:"IDEA_COUNT" validate:"gte=1"`
	SimilarityThreshold  float64 `mapstructure:"SIMILARITY_THRESHOLD" validate:"gt=0,lte=1"`
	FilterSimilar        bool    `mapstructure:"FILTER_SIMILAR"`
	IncludeTrendingChart bool    `mapstructure:"INCLUDE_TRENDING_CHART"`
	IncludeDailyTrends   bool    `mapstructure:"INCLUDE_DAILY_TRENDS"`
	ShuffleIdeas         bool    `mapstructure:"SHUFFLE_IDEAS"`
}

var defaults = map[string]interface{}{
	"PORT":                   "3000",
	"CORS_ORIGINS":           "*",
	"RATE_LIMIT_PER_MINUTE":  30,
	"LOG_LEVEL":              "info",
	"YOUTUBE_REGION":         "US",
	"VIDEO_LIMIT":            20,
	"HTTP_TIMEOUT":           "10s",
	"KEYWORD_LIMIT":          10,
	"IDEA_COUNT":             5,
	"SIMILARITY_THRESHOLD":   0.5,
	"FILTER_SIMILAR":         true,
	"INCLUDE_TRENDING_CHART": true,
	"INCLUDE_DAILY_TRENDS":   false,
	"SHUFFLE_IDEAS":          true,
}

// bindEnv binds every mapstructure tag so viper.Unmarshal sees env values
// even for keys without a default.
func bindEnv(c Config) {
	typ := reflect.TypeOf(c)
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("mapstructure"); tag != "" {
			viper.BindEnv(tag)
		}
	}
}

// Load reads the configuration from the environment and validates it. A
// missing YOUTUBE_API_KEY is an error.
func Load() (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Region = strings.ToUpper(strings.TrimSpace(cfg.Region))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel converts LogLevel for slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AllowedOrigins splits CORSOrigins on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
