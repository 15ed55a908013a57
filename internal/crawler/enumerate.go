package crawler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
)

// enumerateAll runs one enumeration per category, all at once. Each task
// owns its slot in the returned slice; a failed category leaves its slot
// empty and does not cancel the others.
func (c *Crawler) enumerateAll(ctx context.Context, log logger.Logger, categories []string) ([][]string, int) {
	perCategory := make([][]string, len(categories))
	failures := make([]bool, len(categories))

	var g errgroup.Group
	for i, categoryURL := range categories {
		g.Go(func() error {
			links, err := c.enumerator.Enumerate(ctx, categoryURL)
			if err != nil {
				failures[i] = true
				log.Warn("Category enumeration failed",
					logger.String("category_url", categoryURL),
					logger.Int("collected_before_failure", len(links)),
					logger.Error(err))
				return nil
			}
			perCategory[i] = links
			log.Info("Category enumerated",
				logger.String("category_url", categoryURL),
				logger.Int("articles", len(links)))
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}
	return perCategory, failed
}
