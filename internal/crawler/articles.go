package crawler

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
)

type articleResult struct {
	record domain.RawRecord
	ok     bool
}

// FetchArticles fetches and extracts every URL with at most MaxConcurrency
// fetches in flight. Records come back in the order of urls; URLs that fail
// are logged and left out. Cancelling ctx stops admitting new URLs.
func (c *Crawler) FetchArticles(ctx context.Context, urls []string) []domain.RawRecord {
	return c.fetchArticles(ctx, c.log, urls)
}

func (c *Crawler) fetchArticles(ctx context.Context, log logger.Logger, urls []string) []domain.RawRecord {
	results := make([]articleResult, len(urls))
	gate := semaphore.NewWeighted(int64(c.cfg.MaxConcurrency))

	var wg sync.WaitGroup
	for i, url := range urls {
		if err := gate.Acquire(ctx, 1); err != nil {
			log.Warn("Crawl cancelled, remaining articles skipped",
				logger.Int("skipped", len(urls)-i),
				logger.Error(err))
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer gate.Release(1)

			record, err := c.fetchArticle(ctx, url)
			if err != nil {
				log.Warn("Article dropped",
					logger.String("url", url),
					logger.Error(err))
				return
			}
			results[i] = articleResult{record: record, ok: true}
		}()
	}
	wg.Wait()

	records := make([]domain.RawRecord, 0, len(urls))
	for _, r := range results {
		if r.ok {
			records = append(records, r.record)
		}
	}
	return records
}

// fetchArticle runs one fetch and extract, turning a panic in extraction
// into an error so one malformed page cannot take the batch down.
func (c *Crawler) fetchArticle(ctx context.Context, url string) (record domain.RawRecord, err error) {
	html, err := c.fetchWithRetry(ctx, url)
	if err != nil {
		return domain.RawRecord{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract %s: panic: %v", url, r)
		}
	}()

	return c.extractor.Extract(url, html)
}
