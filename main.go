package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"shortsgenix/config"
	"shortsgenix/httputil"
	"shortsgenix/ideas"
	"shortsgenix/ratelimit"
	"shortsgenix/topics"
	"shortsgenix/trends"
	"shortsgenix/youtube"
)

const healthMessage = "ShortsGenix Backend API is running"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(httputil.NewLogHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}),
	)))

	ctx := context.Background()
	yt, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		slog.Error("failed to create youtube client", "err", err)
		os.Exit(1)
	}
	tr := trends.NewClient(cfg.TrendsSuggestURL, cfg.TrendsDailyURL, cfg.HTTPTimeout)

	var limiter *ratelimit.Limiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = ratelimit.New(cfg.RateLimitPerMinute, 0)
		defer limiter.Close()
	}

	h := &ideas.Handler{Pipeline: newPipeline(cfg, yt, tr)}
	r := newRouter(cfg, h, limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("ShortsGenix API listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "err", err)
	}
	slog.Info("server shut down")
}

// newPipeline wires the request pipeline from configuration.
func newPipeline(cfg *config.Config, channels ideas.ChannelSource, tr topics.TrendSource) *ideas.Pipeline {
	agg := &topics.Aggregator{
		Trends: tr,
		Opts: topics.Options{
			IncludeDaily:  cfg.IncludeDailyTrends,
			IncludeChart:  cfg.IncludeTrendingChart,
			FilterSimilar: cfg.FilterSimilar,
			Threshold:     cfg.SimilarityThreshold,
		},
	}
	if chart, ok := channels.(topics.ChartSource); ok {
		agg.Chart = chart
	}

	synth := ideas.Synthesizer{Count: cfg.IdeaCount}
	if cfg.ShuffleIdeas {
		synth.Shuffle = rand.Shuffle
	}

	return &ideas.Pipeline{
		Channels:     channels,
		Topics:       agg,
		Synth:        synth,
		VideoLimit:   cfg.VideoLimit,
		KeywordLimit: cfg.KeywordLimit,
		Region:       cfg.Region,
	}
}

func newRouter(cfg *config.Config, h *ideas.Handler, limiter *ratelimit.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(httputil.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", httputil.RequestIDHeader},
		ExposedHeaders: []string{httputil.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(healthMessage))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Post("/api/ideas", h.HandleGenerate)
	})

	return r
}
