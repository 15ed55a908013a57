package discovery_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/discovery"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/fetcher"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
)

const base = "https://www.thesaasnews.com"

// pageFetcher serves canned pages and records every requested URL.
type pageFetcher struct {
	mu       sync.Mutex
	pages    map[string]string
	requests []string
}

func (f *pageFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, url)
	body, ok := f.pages[url]
	if !ok {
		return "", &fetcher.FetchError{URL: url, StatusCode: 404, Err: fetcher.ErrUnexpectedStatus}
	}
	return body, nil
}

func (f *pageFetcher) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

const indexPage = `<html><body>
<div class="secondary-navigation"><ul>
  <li><a href="/news/category/product-updates">Product Updates</a></li>
  <li><a href="https://www.thesaasnews.com/news/category/saas">SaaS</a></li>
  <li><span>No link here</span></li>
  <li><a href="/news/category/ai">AI</a></li>
  <li><a href="/news?load=more">Load more</a></li>
</ul></div>
</body></html>`

func TestDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	got, err := discovery.NewDiscoverer(base, discovery.Selectors{}).Discover(indexPage)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.thesaasnews.com/news/category/product-updates",
		"https://www.thesaasnews.com/news/category/saas",
		"https://www.thesaasnews.com/news/category/ai",
	}, got)
}

func TestDiscoverer_Discover_NoNavigation(t *testing.T) {
	t.Parallel()

	got, err := discovery.NewDiscoverer(base, discovery.Selectors{}).Discover(`<html><body><ul><li><a href="/x">x</a></li></ul></body></html>`)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDiscoverer_Discover_SingleItemIsExcluded(t *testing.T) {
	t.Parallel()

	got, err := discovery.NewDiscoverer(base, discovery.Selectors{}).Discover(
		`<div class="secondary-navigation"><li><a href="/more">More</a></li></div>`)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func listingPage(next string, hrefs ...string) string {
	page := `<html><body><div class="listing">`
	for _, h := range hrefs {
		page += `<a class="blog-listing-snippet" href="` + h + `">article</a>`
	}
	page += `<a class="other" href="/news/not-an-article">x</a></div>`
	if next != "" {
		page += `<a class="page-next" href="` + next + `">Next</a>`
	}
	return page + `</body></html>`
}

func TestEnumerator_ThreePages(t *testing.T) {
	t.Parallel()

	start := base + "/news/category/ai"
	f := &pageFetcher{pages: map[string]string{
		start:             listingPage("/news/category/ai?page=2", "/news/a1", "/news/a2"),
		start + "?page=2": listingPage("?page=3", "/news/a3", base+"/news/a4"),
		start + "?page=3": listingPage("", "/news/a5"),
	}}

	got, err := discovery.NewEnumerator(f, discovery.Selectors{}, 0, logger.NewNop()).
		Enumerate(context.Background(), start)

	require.NoError(t, err)
	assert.Equal(t, []string{
		base + "/news/a1",
		base + "/news/a2",
		base + "/news/a3",
		base + "/news/a4",
		base + "/news/a5",
	}, got)
	assert.Equal(t, []string{start, start + "?page=2", start + "?page=3"}, f.Requests())
}

func TestEnumerator_CycleStops(t *testing.T) {
	t.Parallel()

	start := base + "/news/category/saas"
	f := &pageFetcher{pages: map[string]string{
		start:             listingPage("/news/category/saas?page=2", "/news/s1"),
		start + "?page=2": listingPage("/news/category/saas/", "/news/s2"),
	}}

	got, err := discovery.NewEnumerator(f, discovery.Selectors{}, 0, logger.NewNop()).
		Enumerate(context.Background(), start)

	require.NoError(t, err)
	assert.Equal(t, []string{base + "/news/s1", base + "/news/s2"}, got)
	assert.Len(t, f.Requests(), 2)
}

func TestEnumerator_MaxPages(t *testing.T) {
	t.Parallel()

	start := base + "/news/category/p"
	f := &pageFetcher{pages: map[string]string{
		start:             listingPage("?page=2", "/news/p1"),
		start + "?page=2": listingPage("?page=3", "/news/p2"),
		start + "?page=3": listingPage("", "/news/p3"),
	}}

	got, err := discovery.NewEnumerator(f, discovery.Selectors{}, 2, logger.NewNop()).
		Enumerate(context.Background(), start)

	require.NoError(t, err)
	assert.Equal(t, []string{base + "/news/p1", base + "/news/p2"}, got)
	assert.Len(t, f.Requests(), 2)
}

func TestEnumerator_FetchFailurePropagates(t *testing.T) {
	t.Parallel()

	start := base + "/news/category/broken"
	f := &pageFetcher{pages: map[string]string{
		start: listingPage("?page=2", "/news/b1"),
	}}

	got, err := discovery.NewEnumerator(f, discovery.Selectors{}, 0, nil).
		Enumerate(context.Background(), start)

	var fe *fetcher.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, start+"?page=2", fe.URL)
	assert.Equal(t, []string{base + "/news/b1"}, got)
}

func TestEnumerator_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &pageFetcher{pages: map[string]string{}}
	_, err := discovery.NewEnumerator(f, discovery.Selectors{}, 0, nil).Enumerate(ctx, base+"/news")

	require.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, f.Requests())
}
