// Package bootstrap builds the saasnews components from a loaded Config.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/config"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/crawler"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/database"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/extractor"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/fetcher"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/normalizer"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/sentiment"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/service"
)

// CreateLogger builds the service logger tagged with the app name.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	logCfg := cfg.Logger
	if cfg.App.Debug {
		logCfg.Level = "debug"
		logCfg.Development = true
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		logger.String("service", cfg.App.Name),
		logger.String("environment", cfg.App.Environment),
	), nil
}

// NewCrawler wires fetcher, extractor, discoverer and enumerator.
func NewCrawler(cfg *config.Config, log logger.Logger) *crawler.Crawler {
	f := fetcher.New(fetcher.Config{
		Timeout:           cfg.Crawler.RequestTimeout,
		UserAgent:         cfg.Crawler.UserAgent,
		MaxBodySize:       cfg.Crawler.MaxBodySize,
		MaxConnsPerHost:   cfg.Crawler.MaxConcurrency,
		RequestsPerSecond: cfg.Crawler.RequestsPerSecond,
		Burst:             cfg.Crawler.Burst,
	})

	return crawler.NewDefault(
		f,
		extractor.New(cfg.Site.Selectors.Extractor()),
		cfg.Site.BaseURL,
		cfg.Site.Selectors.Discovery(),
		cfg.Crawler.MaxPagesPerCategory,
		crawler.Config{
			IndexURL:       cfg.IndexURL(),
			MaxConcurrency: cfg.Crawler.MaxConcurrency,
			Retry:          cfg.Crawler.Retry,
		},
		log.With(logger.String("component", "crawler")),
	)
}

// NewScrapeService wires the whole pipeline. store may be nil.
func NewScrapeService(cfg *config.Config, store service.Store, log logger.Logger) *service.ScrapeService {
	return service.NewScrapeService(
		NewCrawler(cfg, log),
		normalizer.New(cfg.Site.BaseURL, log.With(logger.String("component", "normalizer"))),
		sentiment.NewLexiconClassifier(),
		store,
		log,
	)
}

// SetupDatabase opens the Postgres pool.
func SetupDatabase(ctx context.Context, cfg *config.Config, log logger.Logger) (*sqlx.DB, error) {
	db, err := database.NewPostgresConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info("Database connection established",
		logger.String("host", cfg.Database.Host),
		logger.String("dbname", cfg.Database.DBName))
	return db, nil
}
