package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
)

// ValidationError names the offending key.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

// Validate checks the settings the pipeline cannot run without.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &ValidationError{Field: "site.base_url", Message: "must be an absolute URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Field: "site.base_url", Message: "scheme must be http or https"}
	}
	if c.Crawler.MaxConcurrency <= 0 {
		return &ValidationError{Field: "crawler.max_concurrency", Message: "must be positive"}
	}
	if c.Crawler.RequestTimeout <= 0 {
		return &ValidationError{Field: "crawler.request_timeout", Message: "must be positive"}
	}
	if c.Crawler.MaxPagesPerCategory < 0 {
		return &ValidationError{Field: "crawler.max_pages_per_category", Message: "must not be negative"}
	}
	if c.Crawler.RequestsPerSecond < 0 {
		return &ValidationError{Field: "crawler.requests_per_second", Message: "must not be negative"}
	}
	if c.Crawler.Retry.MaxAttempts < 1 {
		return &ValidationError{Field: "crawler.retry.max_attempts", Message: "must be at least 1"}
	}
	switch strings.ToLower(c.Logger.Format) {
	case "", logger.FormatJSON, logger.FormatConsole:
	default:
		return &ValidationError{Field: "logger.format", Message: "must be json or console"}
	}
	return nil
}
