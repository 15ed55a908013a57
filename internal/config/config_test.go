package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/config"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()

	v := viper.New()
	config.SetDefaults(v)
	require.NoError(t, config.BindEnv(v))
	if yaml != "" {
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "https://www.thesaasnews.com/news", cfg.IndexURL())
	assert.Equal(t, 50, cfg.Crawler.MaxConcurrency)
	assert.Equal(t, 30*time.Second, cfg.Crawler.RequestTimeout)
	assert.Equal(t, 500, cfg.Crawler.MaxPagesPerCategory)
	assert.Equal(t, 1, cfg.Crawler.Retry.MaxAttempts)
	assert.Equal(t, "div.secondary-navigation", cfg.Site.Selectors.Discovery().Navigation)
	assert.Equal(t, "a.page-next", cfg.Site.Selectors.Discovery().NextPage)
	assert.Equal(t, "div.rich-text", cfg.Site.Selectors.Extractor().Content)
	assert.Equal(t, "@every 24h", cfg.Scheduler.Schedule)
	assert.Equal(t, []string{"stdout"}, cfg.Logger.OutputPaths)
}

func TestLoad_FileOverrides(t *testing.T) {
	v := newViper(t, `
site:
  base_url: https://staging.example.com/
  index_path: news/all
  selectors:
    content: article.body
crawler:
  max_concurrency: 8
  request_timeout: 5s
  retry:
    max_attempts: 3
    initial_delay: 250ms
database:
  host: db.internal
  port: 6543
scheduler:
  enabled: true
  schedule: "0 */6 * * *"
`)

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/news/all", cfg.IndexURL())
	assert.Equal(t, "article.body", cfg.Site.Selectors.Content)
	assert.Equal(t, "title", cfg.Site.Selectors.Title)
	assert.Equal(t, 8, cfg.Crawler.MaxConcurrency)
	assert.Equal(t, 5*time.Second, cfg.Crawler.RequestTimeout)
	assert.Equal(t, 3, cfg.Crawler.Retry.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Crawler.Retry.InitialDelay)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "6543", cfg.Database.Port)
	assert.True(t, cfg.Scheduler.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SAASNEWS_CRAWLER_MAX_CONCURRENCY", "12")
	t.Setenv("SAASNEWS_CRAWLER_REQUEST_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	cfg, err := config.Load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Crawler.MaxConcurrency)
	assert.Equal(t, 45*time.Second, cfg.Crawler.RequestTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"relative base url", "site:\n  base_url: /news\n", "site.base_url"},
		{"ftp base url", "site:\n  base_url: ftp://example.com\n", "site.base_url"},
		{"zero concurrency", "crawler:\n  max_concurrency: 0\n", "crawler.max_concurrency"},
		{"negative pages", "crawler:\n  max_pages_per_category: -1\n", "crawler.max_pages_per_category"},
		{"zero attempts", "crawler:\n  retry:\n    max_attempts: 0\n", "crawler.retry.max_attempts"},
		{"bad log format", "logger:\n  format: xml\n", "logger.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(newViper(t, tt.yaml))

			var ve *config.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}
