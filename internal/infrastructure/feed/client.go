// Package feed fetches job postings from the external webhook and maps the
// feed's loosely shaped envelope onto the canonical posting list.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"jobskills/internal/config"
	"jobskills/internal/domain/job"
	"jobskills/internal/infrastructure/cache"
)

var ErrUnrecognizedEnvelope = errors.New("unrecognized feed envelope")

const cacheKey = "jobs:feed"

type Source interface {
	Fetch(ctx context.Context) ([]job.Posting, error)
}

type Client struct {
	url    string
	http   *http.Client
	cache  *cache.Redis
	ttl    time.Duration
	logger *log.Logger
}

func NewClient(cfg config.FeedConfig, c *cache.Redis, logger *log.Logger) *Client {
	return &Client{
		url:    cfg.WebhookURL,
		http:   &http.Client{Timeout: cfg.FetchTimeout},
		cache:  c,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}
}

// Fetch returns the current feed, served from the short-lived cache when a
// fresh copy is available. Scheduler ticks and dashboard requests landing in
// the same window share one upstream call.
func (c *Client) Fetch(ctx context.Context) ([]job.Posting, error) {
	var cached []job.Posting
	if ok, _ := c.cache.GetJSON(ctx, cacheKey, &cached); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch job feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}

	postings, err := ParseEnvelope(body)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetJSON(ctx, cacheKey, postings, c.ttl); err != nil && c.logger != nil {
		c.logger.Printf("[Feed] cache write failed: %v", err)
	}

	return postings, nil
}

// ParseEnvelope maps every accepted feed shape onto one canonical list: a
// top-level array, {"data": [...]} or {"jobs": [...]}. Anything else is an
// error rather than a silent empty list.
func ParseEnvelope(body []byte) ([]job.Posting, error) {
	var direct []job.Posting
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Data []job.Posting `json:"data"`
		Jobs []job.Posting `json:"jobs"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedEnvelope, err)
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	if wrapped.Jobs != nil {
		return wrapped.Jobs, nil
	}

	return nil, ErrUnrecognizedEnvelope
}
