// Package extractor pulls the structured funding fields out of one article
// page. The site writes them as inline labeled prose ("Company: Acme"), so
// selectors only isolate the content block and the values come from pattern
// search over its flattened text.
package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
)

const (
	DefaultTitleSelector   = "title"
	DefaultContentSelector = "div.rich-text"
)

// Selectors locates the headline and the searchable content region.
type Selectors struct {
	Title   string `mapstructure:"title"`
	Content string `mapstructure:"content"`
}

// WithDefaults fills empty selectors.
func (s Selectors) WithDefaults() Selectors {
	if s.Title == "" {
		s.Title = DefaultTitleSelector
	}
	if s.Content == "" {
		s.Content = DefaultContentSelector
	}
	return s
}

// ParseError is returned when a page cannot be parsed as HTML at all.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.URL, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

var (
	fundingDatePattern = regexp.MustCompile(`(?i)Funding Date[:\s\p{Zs}]+(\p{L}+[\s\p{Zs}]+\d{4})`)
	companyPattern     = regexp.MustCompile(`(?i)Company[:\s\p{Zs}]+([\p{L}\p{N}\p{M}_\s\p{Zs}\-.,&']+)`)
	roundPattern       = regexp.MustCompile(`(?i)Round[:\s\p{Zs}]+(Series[\s\p{Zs}]+[A-F])`)
	categoryPattern    = regexp.MustCompile(`(?i)Software Category[:\s\p{Zs}]+([\p{L}\p{N}\p{M}_\s\p{Zs}/]+)`)

	// nextLabel ends a free-text capture that ran into the following label.
	// Only a label followed by a colon counts, so values such as
	// "Merry-Go-Round Labs" stay whole.
	nextLabel = regexp.MustCompile(`(?i)\b(?:Funding Date|Company|Round|Software Category)[\s\p{Zs}]*:`)
)

// Extractor turns article HTML into a domain.RawRecord.
type Extractor struct {
	selectors Selectors
}

// New creates an Extractor. Empty selectors fall back to the defaults.
func New(selectors Selectors) *Extractor {
	return &Extractor{selectors: selectors.WithDefaults()}
}

// Extract reads the headline and labeled fields from html.
// A page without the content region yields a record holding only the URL and
// headline; that is not an error. Only a document that cannot be parsed at
// all returns a *ParseError, alongside a record carrying the URL.
func (e *Extractor) Extract(pageURL, html string) (domain.RawRecord, error) {
	record := domain.RawRecord{URL: pageURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return record, &ParseError{URL: pageURL, Err: err}
	}

	record.Headline = strings.TrimSpace(doc.Find(e.selectors.Title).First().Text())

	content := doc.Find(e.selectors.Content).First()
	if content.Length() == 0 {
		return record, nil
	}

	text := flattenText(content)
	record.FundingDateText = firstMatch(fundingDatePattern, text)
	record.Company = freeText(companyPattern, text)
	record.Round = firstMatch(roundPattern, text)
	record.SoftwareCategory = freeText(categoryPattern, text)

	return record, nil
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return collapseSpaces(m[1])
}

// freeText returns the capture of re cut at the first following label. The
// label search runs over the text after the capture start because the colon
// that marks a label is never part of the capture.
func freeText(re *regexp.Regexp, text string) string {
	loc := re.FindStringSubmatchIndex(text)
	if len(loc) < 4 || loc[2] < 0 {
		return ""
	}
	start, end := loc[2], loc[3]
	if next := nextLabel.FindStringIndex(text[start:]); next != nil && start+next[0] < end {
		end = start + next[0]
	}
	return collapseSpaces(text[start:end])
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
