// Package fetcher is the single network primitive of the crawler: one GET per
// call, body returned as text, no retries and no caching.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultTimeout         = 30 * time.Second
	DefaultUserAgent       = "saasnews-crawler/1.0 (+https://github.com/AyushiSoni2003/Scrape-saas-news)"
	DefaultMaxBodySize     = 10 * 1024 * 1024
	DefaultMaxConnsPerHost = 50
)

// Fetcher retrieves the body of an HTML page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Config configures an HTTPFetcher.
type Config struct {
	Timeout     time.Duration
	UserAgent   string
	MaxBodySize int64
	// MaxConnsPerHost sizes the idle pool; usually the crawl concurrency.
	MaxConnsPerHost int
	// RequestsPerSecond enables a politeness limiter when positive.
	RequestsPerSecond float64
	Burst             int
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
	if c.MaxConnsPerHost <= 0 {
		c.MaxConnsPerHost = DefaultMaxConnsPerHost
	}
	if c.RequestsPerSecond > 0 && c.Burst <= 0 {
		c.Burst = 1
	}
	return c
}

// HTTPFetcher implements Fetcher over a shared http.Client.
type HTTPFetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
	limiter     *rate.Limiter
}

// New creates an HTTPFetcher with its own client built from cfg.
func New(cfg Config) *HTTPFetcher {
	cfg = cfg.WithDefaults()
	return NewWithClient(NewClient(cfg.Timeout, cfg.MaxConnsPerHost), cfg)
}

// NewWithClient creates an HTTPFetcher that issues requests through client.
func NewWithClient(client *http.Client, cfg Config) *HTTPFetcher {
	cfg = cfg.WithDefaults()

	f := &HTTPFetcher{
		client:      client,
		userAgent:   cfg.UserAgent,
		maxBodySize: cfg.MaxBodySize,
	}
	if cfg.RequestsPerSecond > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	return f
}

// Fetch issues a GET for url. Any failure is returned as a *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", &FetchError{URL: url, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection goes back to the pool.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxBodySize))
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", &FetchError{URL: url, StatusCode: 0, Err: fmt.Errorf("read response body: %w", err)}
	}

	return string(body), nil
}
