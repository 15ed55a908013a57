// Package config defines the saasnews configuration tree and loads it from
// viper (defaults, config file, environment, flags).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/api"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/database"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/discovery"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/extractor"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/retry"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/scheduler"
)

// EnvPrefix prefixes every environment override, e.g. SAASNEWS_CRAWLER_MAX_CONCURRENCY.
const EnvPrefix = "SAASNEWS"

// Config is the full application configuration.
type Config struct {
	App       AppConfig        `mapstructure:"app"`
	Logger    logger.Config    `mapstructure:"logger"`
	Site      SiteConfig       `mapstructure:"site"`
	Crawler   CrawlerConfig    `mapstructure:"crawler"`
	Database  database.Config  `mapstructure:"database"`
	Server    api.ServerConfig `mapstructure:"server"`
	Scheduler scheduler.Config `mapstructure:"scheduler"`
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// SiteConfig describes the crawled site.
type SiteConfig struct {
	BaseURL   string          `mapstructure:"base_url"`
	IndexPath string          `mapstructure:"index_path"`
	Selectors SelectorsConfig `mapstructure:"selectors"`
}

// SelectorsConfig holds every CSS selector the crawler relies on.
type SelectorsConfig struct {
	Navigation     string `mapstructure:"navigation"`
	NavigationItem string `mapstructure:"navigation_item"`
	ListingLink    string `mapstructure:"listing_link"`
	NextPage       string `mapstructure:"next_page"`
	Title          string `mapstructure:"title"`
	Content        string `mapstructure:"content"`
}

// Discovery returns the index and listing selectors.
func (s SelectorsConfig) Discovery() discovery.Selectors {
	return discovery.Selectors{
		Navigation:     s.Navigation,
		NavigationItem: s.NavigationItem,
		ListingLink:    s.ListingLink,
		NextPage:       s.NextPage,
	}
}

// Extractor returns the article page selectors.
func (s SelectorsConfig) Extractor() extractor.Selectors {
	return extractor.Selectors{Title: s.Title, Content: s.Content}
}

// CrawlerConfig tunes fetching and concurrency.
type CrawlerConfig struct {
	MaxConcurrency      int           `mapstructure:"max_concurrency"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	UserAgent           string        `mapstructure:"user_agent"`
	MaxBodySize         int64         `mapstructure:"max_body_size"`
	MaxPagesPerCategory int           `mapstructure:"max_pages_per_category"`
	RequestsPerSecond   float64       `mapstructure:"requests_per_second"`
	Burst               int           `mapstructure:"burst"`
	Retry               retry.Config  `mapstructure:"retry"`
}

// IndexURL is the category index page.
func (c *Config) IndexURL() string {
	return strings.TrimRight(c.Site.BaseURL, "/") + "/" + strings.TrimLeft(c.Site.IndexPath, "/")
}

// Load decodes the settings held by v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           &cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}
	if err = decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
