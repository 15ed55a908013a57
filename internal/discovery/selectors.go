// Package discovery finds what to crawl: the category links on the site's
// index page and, per category, every article URL across its paginated
// listing.
package discovery

const (
	DefaultNavigationSelector     = "div.secondary-navigation"
	DefaultNavigationItemSelector = "li"
	DefaultListingLinkSelector    = "a.blog-listing-snippet"
	DefaultNextPageSelector       = "a.page-next"
)

// Selectors names the structural markers of the index and listing pages.
type Selectors struct {
	Navigation     string `mapstructure:"navigation"`
	NavigationItem string `mapstructure:"navigation_item"`
	ListingLink    string `mapstructure:"listing_link"`
	NextPage       string `mapstructure:"next_page"`
}

// WithDefaults fills empty selectors.
func (s Selectors) WithDefaults() Selectors {
	if s.Navigation == "" {
		s.Navigation = DefaultNavigationSelector
	}
	if s.NavigationItem == "" {
		s.NavigationItem = DefaultNavigationItemSelector
	}
	if s.ListingLink == "" {
		s.ListingLink = DefaultListingLinkSelector
	}
	if s.NextPage == "" {
		s.NextPage = DefaultNextPageSelector
	}
	return s
}
