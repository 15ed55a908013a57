package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/fetcher"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/siteurl"
)

// DefaultMaxPages bounds one category's pagination chain.
const DefaultMaxPages = 500

// Enumerator walks a category's listing pages by following the next-page
// control and collects every article link on the way.
type Enumerator struct {
	fetcher   fetcher.Fetcher
	selectors Selectors
	maxPages  int
	log       logger.Logger
}

// NewEnumerator creates an Enumerator. maxPages <= 0 disables the page cap;
// revisiting a page always stops the walk.
func NewEnumerator(f fetcher.Fetcher, selectors Selectors, maxPages int, log logger.Logger) *Enumerator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Enumerator{
		fetcher:   f,
		selectors: selectors.WithDefaults(),
		maxPages:  maxPages,
		log:       log,
	}
}

// Enumerate returns the article URLs reachable from startURL in page order,
// then listing order within each page. A failed page fetch aborts the walk
// and is returned.
func (e *Enumerator) Enumerate(ctx context.Context, startURL string) ([]string, error) {
	articles := make([]string, 0)
	visited := make(map[string]struct{})
	current := startURL

	for pages := 0; current != ""; pages++ {
		if e.maxPages > 0 && pages >= e.maxPages {
			e.log.Warn("Pagination cap reached, stopping category",
				logger.String("category_url", startURL),
				logger.Int("max_pages", e.maxPages),
				logger.String("next_page", current))
			break
		}

		key, err := siteurl.PageKey(current)
		if err != nil {
			return articles, fmt.Errorf("enumerate %s: %w", startURL, err)
		}
		if _, seen := visited[key]; seen {
			e.log.Warn("Pagination cycle detected, stopping category",
				logger.String("category_url", startURL),
				logger.String("page_url", current))
			break
		}
		visited[key] = struct{}{}

		if err = ctx.Err(); err != nil {
			return articles, fmt.Errorf("enumerate %s: %w", startURL, err)
		}

		body, err := e.fetcher.Fetch(ctx, current)
		if err != nil {
			return articles, fmt.Errorf("enumerate %s: %w", startURL, err)
		}

		links, next, err := e.parseListing(current, body)
		if err != nil {
			return articles, fmt.Errorf("enumerate %s: %w", startURL, err)
		}
		articles = append(articles, links...)

		e.log.Debug("Listing page parsed",
			logger.String("page_url", current),
			logger.Int("articles", len(links)),
			logger.Bool("has_next", next != ""))

		current = next
	}

	return articles, nil
}

// parseListing returns the article links on one listing page and the
// resolved next-page URL, or "" when there is none.
func (e *Enumerator) parseListing(pageURL, body string) (links []string, next string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("parse listing %s: %w", pageURL, err)
	}

	doc.Find(e.selectors.ListingLink).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if resolved, resolveErr := siteurl.Resolve(pageURL, href); resolveErr == nil {
			links = append(links, resolved)
		}
	})

	if href, ok := doc.Find(e.selectors.NextPage).First().Attr("href"); ok {
		if resolved, resolveErr := siteurl.Resolve(pageURL, href); resolveErr == nil {
			next = resolved
		}
	}

	return links, next, nil
}
