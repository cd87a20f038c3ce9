package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/cache"
	"github.com/BenBen05059997/globalPerspective-v1/internal/metrics"
	"github.com/BenBen05059997/globalPerspective-v1/internal/quota"
	"github.com/BenBen05059997/globalPerspective-v1/internal/retry"
)

// apiResponse mirrors the newsdata.io latest-news payload. Only the fields
// the pipeline consumes are mapped.
type apiResponse struct {
	Status  string      `json:"status"`
	Results []apiResult `json:"results"`
}

type apiResult struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	PubDate     string   `json:"pubDate"`
	SourceID    string   `json:"source_id"`
	SourceName  string   `json:"source_name"`
	Language    string   `json:"language"`
	Country     []string `json:"country"`
}

// APIClient fetches raw articles from a newsdata.io-compatible endpoint.
type APIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *quota.Limiter
	retry   retry.Config
	cache   *cache.Cache
}

func NewAPIClient(baseURL, apiKey string, timeout time.Duration, limiter *quota.Limiter, retryCfg retry.Config) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
		retry:   retryCfg,
	}
}

// WithCache enables response caching, so loop-mode runs inside the TTL do
// not spend quota on the same query.
func (c *APIClient) WithCache(cc *cache.Cache) *APIClient {
	c.cache = cc
	return c
}

// Fetch queries the API for the given search term and returns raw articles.
// Returns nil without error when the daily quota is spent.
func (c *APIClient) Fetch(ctx context.Context, query string) ([]article.Raw, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	cacheKey := ""
	if c.cache != nil {
		cacheKey = c.cache.GenerateKey("newsapi", c.baseURL, query)
		if cached, ok := c.cache.Get(cacheKey); ok {
			if items, ok := cached.([]article.Raw); ok {
				slog.Debug("News API cache hit", "query", query)
				return items, nil
			}
		}
	}

	if !c.limiter.Allow() {
		slog.Warn("Skipping API fetch, daily quota spent")
		return nil, nil
	}

	var resp apiResponse
	err := retry.WithRetry(ctx, c.retry, func() error {
		return c.doRequest(ctx, query, &resp)
	})
	if err != nil {
		metrics.Global.IncrementFetchErrors()
		return nil, err
	}

	if err := c.limiter.Use(); err != nil {
		return nil, err
	}

	if resp.Status != "success" {
		return nil, fmt.Errorf("API returned status %q", resp.Status)
	}

	out := make([]article.Raw, 0, len(resp.Results))
	for _, r := range resp.Results {
		raw := article.Raw{
			Title:       StripHTML(r.Title),
			Description: StripHTML(r.Description),
			URL:         r.Link,
			PublishedAt: r.PubDate,
			Language:    r.Language,
		}
		if r.SourceID != "" || r.SourceName != "" {
			raw.Source = &article.RawSource{ID: r.SourceID, Name: r.SourceName}
		}
		out = append(out, raw)
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, out, 15*time.Minute)
	}

	slog.Info("Fetched articles from news API", "count", len(out), "query", query)
	return out, nil
}

func (c *APIClient) doRequest(ctx context.Context, query string, out *apiResponse) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}

	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	return nil
}
