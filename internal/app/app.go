// Package app wires configuration, ingestion, the classification pipeline
// and output persistence into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/cache"
	"github.com/BenBen05059997/globalPerspective-v1/internal/config"
	"github.com/BenBen05059997/globalPerspective-v1/internal/ingest"
	"github.com/BenBen05059997/globalPerspective-v1/internal/metrics"
	"github.com/BenBen05059997/globalPerspective-v1/internal/pipeline"
	"github.com/BenBen05059997/globalPerspective-v1/internal/quota"
	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
	"github.com/BenBen05059997/globalPerspective-v1/internal/retry"
	"github.com/BenBen05059997/globalPerspective-v1/internal/storage"
)

type App struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
	rss      *ingest.RSSFetcher
	api      *ingest.APIClient
	seen     *storage.SeenStore
}

func New(cfg *config.Config) (*App, error) {
	store, err := refdata.Load(cfg.CountriesPath, cfg.PublishersPath)
	if err != nil {
		slog.Warn("Reference data load failed, using built-in fallback", "error", err)
	}
	slog.Info("Reference data ready",
		"countries", store.Countries(),
		"publishers", store.Publishers())

	c := cache.New()
	limiter := quota.NewLimiter(cfg.DailyQuota)
	retryCfg := retry.Config{
		MaxAttempts: cfg.RetryAttempts,
		Delay:       cfg.RetryDelay,
		Backoff:     true,
	}

	seen := storage.NewSeenStore(cfg.CacheFilePath, cfg.CacheTTLHours)
	if err := seen.Load(); err != nil {
		slog.Warn("Seen-article store load failed, starting empty", "error", err)
	}

	return &App{
		cfg:      cfg,
		pipeline: pipeline.New(store),
		rss:      ingest.NewRSSFetcher(c, cfg.NewsMaxAge),
		api:      ingest.NewAPIClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, cfg.RequestTimeout, limiter, retryCfg).WithCache(c),
		seen:     seen,
	}, nil
}

// Run executes the pipeline once, or on an interval when RunInterval is set.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.RunInterval <= 0 {
		return a.runOnce(ctx)
	}

	ticker := time.NewTicker(a.cfg.RunInterval)
	defer ticker.Stop()

	if err := a.runOnce(ctx); err != nil {
		slog.Error("Run failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := a.runOnce(ctx); err != nil {
				slog.Error("Run failed", "error", err)
			}
		}
	}
}

func (a *App) runOnce(ctx context.Context) error {
	raw, err := a.collect(ctx)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}

	raw = a.filterSeen(raw)
	if len(raw) == 0 {
		slog.Info("No new articles this run")
		metrics.Global.SetLastRun()
		return nil
	}

	result := a.pipeline.Run(raw)

	if err := storage.WriteJSON(a.cfg.OutputPath, result); err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}
	slog.Info("Wrote perspective output", "path", a.cfg.OutputPath, "stacks", len(result.Stacks))

	a.markSeen(raw)
	if err := a.seen.Save(); err != nil {
		slog.Warn("Failed to persist seen-article store", "error", err)
	}

	metrics.Global.SetLastRun()
	return nil
}

func (a *App) collect(ctx context.Context) ([]article.Raw, error) {
	var raw []article.Raw

	feeds, err := ingest.LoadFeeds(a.cfg.FeedsConfigPath)
	if err != nil {
		slog.Warn("Could not load feeds config", "path", a.cfg.FeedsConfigPath, "error", err)
	} else {
		raw = append(raw, a.rss.FetchAll(ctx, feeds)...)
	}

	apiItems, err := a.api.Fetch(ctx, a.cfg.NewsAPIQuery)
	if err != nil {
		slog.Error("News API fetch failed", "error", err)
	} else {
		raw = append(raw, apiItems...)
	}

	if len(raw) == 0 && err != nil {
		return nil, fmt.Errorf("no articles collected: %w", err)
	}

	if a.cfg.MaxNewsLimit > 0 && len(raw) > a.cfg.MaxNewsLimit {
		raw = raw[:a.cfg.MaxNewsLimit]
	}

	slog.Info("Collected raw articles", "count", len(raw))
	return raw, nil
}

func (a *App) filterSeen(raw []article.Raw) []article.Raw {
	out := raw[:0]
	for _, r := range raw {
		if a.seen.IsSeen(a.seen.Hash(r.Title, r.URL)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (a *App) markSeen(raw []article.Raw) {
	for _, r := range raw {
		source := ""
		if r.Source != nil {
			source = r.Source.Name
		}
		a.seen.MarkSeen(a.seen.Hash(r.Title, r.URL), r.Title, r.URL, source)
	}
}
