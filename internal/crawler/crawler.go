// Package crawler coordinates one crawl run: category discovery, parallel
// pagination per category and bounded-concurrency article extraction.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/discovery"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/fetcher"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/retry"
)

// DefaultMaxConcurrency is the number of article fetches allowed in flight.
const DefaultMaxConcurrency = 50

// ErrIndexUnavailable means the category index could not be fetched or
// parsed, so nothing was crawled.
var ErrIndexUnavailable = errors.New("category index unavailable")

// Extractor turns one fetched article page into a record.
type Extractor interface {
	Extract(pageURL, html string) (domain.RawRecord, error)
}

// CategoryDiscoverer lists category URLs found on the index page.
type CategoryDiscoverer interface {
	Discover(indexHTML string) ([]string, error)
}

// ArticleEnumerator lists article URLs for one category.
type ArticleEnumerator interface {
	Enumerate(ctx context.Context, categoryURL string) ([]string, error)
}

// Config controls a Crawler.
type Config struct {
	IndexURL       string
	MaxConcurrency int
	Retry          retry.Config
}

// Result summarises one CrawlAll run.
type Result struct {
	RunID            string
	Categories       int
	FailedCategories int
	ArticleURLs      int
	FailedArticles   int
	Records          []domain.RawRecord
	Duration         time.Duration
}

// Crawler is the crawl orchestrator.
type Crawler struct {
	fetcher    fetcher.Fetcher
	extractor  Extractor
	discoverer CategoryDiscoverer
	enumerator ArticleEnumerator
	cfg        Config
	log        logger.Logger
}

// New creates a Crawler. Fetch retries only apply to temporary fetch errors.
func New(
	f fetcher.Fetcher,
	ex Extractor,
	disc CategoryDiscoverer,
	enum ArticleEnumerator,
	cfg Config,
	log logger.Logger,
) *Crawler {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	cfg.Retry = cfg.Retry.WithDefaults()
	if cfg.Retry.IsRetryable == nil {
		cfg.Retry.IsRetryable = fetcher.IsTemporary
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Crawler{
		fetcher:    f,
		extractor:  ex,
		discoverer: disc,
		enumerator: enum,
		cfg:        cfg,
		log:        log,
	}
}

// NewDefault wires the standard discoverer and enumerator around f.
func NewDefault(
	f fetcher.Fetcher,
	ex Extractor,
	baseURL string,
	selectors discovery.Selectors,
	maxPages int,
	cfg Config,
	log logger.Logger,
) *Crawler {
	if log == nil {
		log = logger.NewNop()
	}
	return New(f, ex,
		discovery.NewDiscoverer(baseURL, selectors),
		discovery.NewEnumerator(f, selectors, maxPages, log),
		cfg, log)
}

// CrawlAll crawls every category and returns the extracted records in
// category order, then pagination order. Failures of single categories or
// articles are logged and counted, never returned. Only an unreachable
// index aborts the run.
func (c *Crawler) CrawlAll(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString()}
	log := c.log.With(logger.String("run_id", result.RunID))

	log.Info("Crawl started",
		logger.String("index_url", c.cfg.IndexURL),
		logger.Int("max_concurrency", c.cfg.MaxConcurrency))

	indexHTML, err := c.fetchWithRetry(ctx, c.cfg.IndexURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	}
	categories, err := c.discoverer.Discover(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	}
	result.Categories = len(categories)
	log.Info("Categories discovered", logger.Int("count", len(categories)))

	perCategory, failed := c.enumerateAll(ctx, log, categories)
	result.FailedCategories = failed

	urls := make([]string, 0)
	for _, links := range perCategory {
		urls = append(urls, links...)
	}
	result.ArticleURLs = len(urls)

	result.Records = c.fetchArticles(ctx, log, urls)
	result.FailedArticles = len(urls) - len(result.Records)
	result.Duration = time.Since(start)

	log.Info("Crawl finished",
		logger.Int("categories", result.Categories),
		logger.Int("failed_categories", result.FailedCategories),
		logger.Int("article_urls", result.ArticleURLs),
		logger.Int("records", len(result.Records)),
		logger.Int("failed_articles", result.FailedArticles),
		logger.Duration("duration", result.Duration))

	return result, nil
}

func (c *Crawler) fetchWithRetry(ctx context.Context, url string) (string, error) {
	var body string
	err := retry.Do(ctx, c.cfg.Retry, func(ctx context.Context) error {
		var fetchErr error
		body, fetchErr = c.fetcher.Fetch(ctx, url)
		return fetchErr
	})
	return body, err
}
