// Package domain holds the record types that flow through the crawl pipeline
// and the persisted article model.
package domain

import "time"

// RawRecord is what the extractor produces for one article page.
// Unmatched fields are empty strings.
type RawRecord struct {
	URL              string `json:"url"`
	Headline         string `json:"headline"`
	FundingDateText  string `json:"funding_date_text"`
	Company          string `json:"company"`
	Round            string `json:"round"`
	SoftwareCategory string `json:"software_category"`
}

// NormalizedRecord is a cleaned RawRecord plus derived fields.
type NormalizedRecord struct {
	RawRecord

	// FundingDate is nil when FundingDateText is not "Month YYYY".
	FundingDate   *time.Time    `json:"funding_date,omitempty"`
	CategoryGroup CategoryGroup `json:"category_group"`
}

// CategoryGroup is the pipeline's own four-way article classification.
type CategoryGroup string

const (
	ProductUpdates CategoryGroup = "Product Updates"
	SaaSNews       CategoryGroup = "SaaS News"
	AIML           CategoryGroup = "AI/ML"
	Other          CategoryGroup = "Other"
)

// CategoryGroups lists every group in display order.
var CategoryGroups = []CategoryGroup{ProductUpdates, SaaSNews, AIML, Other}

func (g CategoryGroup) String() string { return string(g) }
