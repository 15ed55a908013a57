package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/crawler"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/discovery"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/extractor"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/fetcher"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/scheduler"
)

const (
	DefaultBaseURL   = "https://www.thesaasnews.com"
	DefaultIndexPath = "/news"
)

// SetDefaults registers a default for every key. Keys without a default are
// invisible to environment overrides.
func SetDefaults(v *viper.Viper) {
	setAppDefaults(v)
	setSiteDefaults(v)
	setCrawlerDefaults(v)
	setDatabaseDefaults(v)
	setServerDefaults(v)
	setSchedulerDefaults(v)
}

func setAppDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "saasnews")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.development", false)
	v.SetDefault("logger.output_paths", []string{"stdout"})
}

func setSiteDefaults(v *viper.Viper) {
	v.SetDefault("site.base_url", DefaultBaseURL)
	v.SetDefault("site.index_path", DefaultIndexPath)
	v.SetDefault("site.selectors.navigation", discovery.DefaultNavigationSelector)
	v.SetDefault("site.selectors.navigation_item", discovery.DefaultNavigationItemSelector)
	v.SetDefault("site.selectors.listing_link", discovery.DefaultListingLinkSelector)
	v.SetDefault("site.selectors.next_page", discovery.DefaultNextPageSelector)
	v.SetDefault("site.selectors.title", extractor.DefaultTitleSelector)
	v.SetDefault("site.selectors.content", extractor.DefaultContentSelector)
}

func setCrawlerDefaults(v *viper.Viper) {
	v.SetDefault("crawler.max_concurrency", crawler.DefaultMaxConcurrency)
	v.SetDefault("crawler.request_timeout", fetcher.DefaultTimeout)
	v.SetDefault("crawler.user_agent", fetcher.DefaultUserAgent)
	v.SetDefault("crawler.max_body_size", fetcher.DefaultMaxBodySize)
	v.SetDefault("crawler.max_pages_per_category", discovery.DefaultMaxPages)
	v.SetDefault("crawler.requests_per_second", 0)
	v.SetDefault("crawler.burst", 0)
	v.SetDefault("crawler.retry.max_attempts", 1)
	v.SetDefault("crawler.retry.initial_delay", 500*time.Millisecond)
	v.SetDefault("crawler.retry.max_delay", 10*time.Second)
	v.SetDefault("crawler.retry.multiplier", 2.0)
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "saasnews")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
}

func setServerDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	// POST /scrape answers only when the crawl is done.
	v.SetDefault("server.write_timeout", 30*time.Minute)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

func setSchedulerDefaults(v *viper.Viper) {
	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.schedule", scheduler.DefaultSchedule)
	v.SetDefault("scheduler.timeout", time.Hour)
}

// BindEnv enables SAASNEWS_* overrides and the conventional unprefixed
// variables used by container deployments.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string][]string{
		"logger.level":      {"SAASNEWS_LOGGER_LEVEL", "LOG_LEVEL"},
		"logger.format":     {"SAASNEWS_LOGGER_FORMAT", "LOG_FORMAT"},
		"database.host":     {"SAASNEWS_DATABASE_HOST", "POSTGRES_HOST"},
		"database.port":     {"SAASNEWS_DATABASE_PORT", "POSTGRES_PORT"},
		"database.user":     {"SAASNEWS_DATABASE_USER", "POSTGRES_USER"},
		"database.password": {"SAASNEWS_DATABASE_PASSWORD", "POSTGRES_PASSWORD"},
		"database.dbname":   {"SAASNEWS_DATABASE_DBNAME", "POSTGRES_DB"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}
