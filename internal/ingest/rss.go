// Package ingest collects raw articles from RSS feeds and news APIs and
// converts them into the pipeline's input form.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/cache"
	"github.com/BenBen05059997/globalPerspective-v1/internal/metrics"
)

// FeedsConfig is YAML config structure
// feeds:
//   - https://...
type FeedsConfig struct {
	Feeds []string `yaml:"feeds"`
}

// LoadFeeds reads the RSS feed URL list from a YAML file.
func LoadFeeds(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return cfg.Feeds, nil
}

// RSSFetcher downloads feeds and converts entries to raw articles.
type RSSFetcher struct {
	parser *gofeed.Parser
	cache  *cache.Cache
	maxAge time.Duration
}

func NewRSSFetcher(c *cache.Cache, maxAge time.Duration) *RSSFetcher {
	return &RSSFetcher{
		parser: gofeed.NewParser(),
		cache:  c,
		maxAge: maxAge,
	}
}

// FetchAll downloads and parses all feeds. A failing feed is logged and
// skipped so one broken source cannot take down a run.
func (f *RSSFetcher) FetchAll(ctx context.Context, urls []string) []article.Raw {
	var all []article.Raw
	successCount := 0

	for _, url := range urls {
		items, err := f.fetchFeed(ctx, url)
		if err != nil {
			slog.Error("Error parsing RSS feed", "url", url, "error", err)
			metrics.Global.IncrementFetchErrors()
			continue
		}
		all = append(all, items...)
		successCount++
		slog.Info("Loaded articles from feed", "count", len(items), "url", url)
	}

	slog.Info("Processed RSS feeds", "ok", successCount, "total", len(urls))
	return all
}

func (f *RSSFetcher) fetchFeed(ctx context.Context, url string) ([]article.Raw, error) {
	key := "rss:" + url
	if f.cache != nil {
		if cached, ok := f.cache.Get(key); ok {
			if items, ok := cached.([]article.Raw); ok {
				slog.Debug("RSS cache hit", "url", url)
				return items, nil
			}
		}
	}

	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	items := f.convert(feed)
	if f.cache != nil {
		f.cache.Set(key, items, 15*time.Minute)
	}
	return items, nil
}

func (f *RSSFetcher) convert(feed *gofeed.Feed) []article.Raw {
	sourceName := feed.Title
	var out []article.Raw

	for _, item := range feed.Items {
		if f.maxAge > 0 && item.PublishedParsed != nil {
			if time.Since(*item.PublishedParsed) > f.maxAge {
				continue
			}
		}

		publishedAt := ""
		if item.PublishedParsed != nil {
			publishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
		} else if item.Published != "" {
			publishedAt = item.Published
		}

		out = append(out, article.Raw{
			Source:      &article.RawSource{Name: sourceName},
			Title:       StripHTML(item.Title),
			Description: StripHTML(item.Description),
			URL:         item.Link,
			PublishedAt: publishedAt,
			Language:    feed.Language,
		})
	}

	return out
}
