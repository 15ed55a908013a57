package normalizer

import "github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"

// Summary counts records per category group.
type Summary map[domain.CategoryGroup]int

// Summarize counts records by group. Every group is present, possibly zero.
func Summarize(records []domain.NormalizedRecord) Summary {
	s := make(Summary, len(domain.CategoryGroups))
	for _, g := range domain.CategoryGroups {
		s[g] = 0
	}
	for _, r := range records {
		s[r.CategoryGroup]++
	}
	return s
}

// Total is the number of records counted.
func (s Summary) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}
