// Package normalizer cleans extracted records, derives their funding date and
// category group, and drops repeated URLs.
package normalizer

import (
	"strings"
	"time"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/siteurl"
)

// FundingDateLayout is "Month YYYY" with the full month name.
const FundingDateLayout = "January 2006"

// Normalizer turns RawRecords into NormalizedRecords.
type Normalizer struct {
	baseURL string
	log     logger.Logger
}

// New creates a Normalizer resolving root-relative URLs against baseURL.
func New(baseURL string, log logger.Logger) *Normalizer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Normalizer{baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// Normalize cleans every record and keeps only the first record seen for
// each URL, in input order. It logs the per-group counts of the output.
func (n *Normalizer) Normalize(records []domain.RawRecord) []domain.NormalizedRecord {
	out := make([]domain.NormalizedRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, r := range records {
		nr := n.normalizeOne(r)
		if _, dup := seen[nr.URL]; dup {
			continue
		}
		seen[nr.URL] = struct{}{}
		out = append(out, nr)
	}

	summary := Summarize(out)
	fields := make([]logger.Field, 0, len(domain.CategoryGroups)+2)
	fields = append(fields,
		logger.Int("input", len(records)),
		logger.Int("unique", len(out)))
	for _, g := range domain.CategoryGroups {
		fields = append(fields, logger.Int(string(g), summary[g]))
	}
	n.log.Info("Records normalized", fields...)

	return out
}

func (n *Normalizer) normalizeOne(r domain.RawRecord) domain.NormalizedRecord {
	clean := domain.RawRecord{
		URL:              n.ResolveURL(strings.TrimSpace(r.URL)),
		Headline:         CollapseWhitespace(r.Headline),
		FundingDateText:  r.FundingDateText,
		Company:          CollapseWhitespace(r.Company),
		Round:            CollapseWhitespace(r.Round),
		SoftwareCategory: CollapseWhitespace(r.SoftwareCategory),
	}
	return domain.NormalizedRecord{
		RawRecord:     clean,
		FundingDate:   ParseFundingDate(r.FundingDateText),
		CategoryGroup: Categorize(clean.SoftwareCategory),
	}
}

// ResolveURL prefixes a root-relative URL with the base URL.
func (n *Normalizer) ResolveURL(raw string) string {
	return siteurl.PrefixBase(n.baseURL, raw)
}

// CollapseWhitespace replaces every whitespace run with one space and trims.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseFundingDate parses "March 2023" into 2023-03-01 UTC.
// Anything else, including the empty string, yields nil.
func ParseFundingDate(text string) *time.Time {
	text = CollapseWhitespace(text)
	if text == "" {
		return nil
	}
	t, err := time.Parse(FundingDateLayout, text)
	if err != nil {
		return nil
	}
	return &t
}

// Categorize maps a software category to its group. The checks run in a
// fixed order, so "AI Product" is ProductUpdates.
func Categorize(softwareCategory string) domain.CategoryGroup {
	c := strings.ToLower(softwareCategory)
	switch {
	case strings.Contains(c, "product"):
		return domain.ProductUpdates
	case strings.Contains(c, "saas"):
		return domain.SaaSNews
	case strings.Contains(c, "ai"), strings.Contains(c, "machine"):
		return domain.AIML
	default:
		return domain.Other
	}
}
