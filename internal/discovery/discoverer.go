package discovery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/siteurl"
)

// Discoverer reads category links from the site's index page.
type Discoverer struct {
	baseURL   string
	selectors Selectors
}

// NewDiscoverer creates a Discoverer that resolves hrefs against baseURL.
func NewDiscoverer(baseURL string, selectors Selectors) *Discoverer {
	return &Discoverer{baseURL: baseURL, selectors: selectors.WithDefaults()}
}

// Discover returns the absolute category URLs in navigation order.
// The last navigation item is a "load more" control and is always skipped.
// A page without the navigation region yields an empty slice.
func (d *Discoverer) Discover(indexHTML string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(indexHTML))
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	items := doc.Find(d.selectors.Navigation).First().Find(d.selectors.NavigationItem)
	if items.Length() == 0 {
		return []string{}, nil
	}
	items = items.Slice(0, items.Length()-1)

	categories := make([]string, 0, items.Length())
	items.Each(func(_ int, item *goquery.Selection) {
		href, ok := item.Find("a").First().Attr("href")
		if !ok {
			return
		}
		resolved, resolveErr := siteurl.Resolve(d.baseURL, href)
		if resolveErr != nil {
			return
		}
		categories = append(categories, resolved)
	})

	return categories, nil
}
