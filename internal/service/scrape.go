// Package service runs the full scrape pipeline: crawl, normalize, classify,
// store and refresh statistics.
package service

//go:generate mockgen -destination=../../testutils/mocks/service/mocks.go -package=servicemocks . Store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/crawler"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/normalizer"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/sentiment"
)

// ErrRunInProgress is returned when a scrape is triggered while one is running.
var ErrRunInProgress = errors.New("scrape already in progress")

// Crawler produces the raw records of one crawl run.
type Crawler interface {
	CrawlAll(ctx context.Context) (*crawler.Result, error)
}

// Normalizer cleans and deduplicates raw records.
type Normalizer interface {
	Normalize(records []domain.RawRecord) []domain.NormalizedRecord
}

// Store persists articles and maintains the statistics table.
type Store interface {
	SaveArticles(ctx context.Context, articles []domain.Article) (int, error)
	RecomputeStatistics(ctx context.Context) error
}

// RunReport describes one completed scrape.
type RunReport struct {
	RunID            string                    `json:"run_id"`
	Categories       int                       `json:"categories"`
	FailedCategories int                       `json:"failed_categories"`
	ArticleURLs      int                       `json:"article_urls"`
	FailedArticles   int                       `json:"failed_articles"`
	Extracted        int                       `json:"extracted"`
	Normalized       int                       `json:"normalized"`
	Inserted         int                       `json:"inserted"`
	Stored           bool                      `json:"stored"`
	Groups           normalizer.Summary        `json:"groups"`
	Duration         time.Duration             `json:"duration_ns"`
	Records          []domain.NormalizedRecord `json:"-"`
}

// ScrapeService runs scrapes one at a time.
type ScrapeService struct {
	crawler    Crawler
	normalizer Normalizer
	classifier sentiment.Classifier
	store      Store
	log        logger.Logger

	running sync.Mutex
}

// NewScrapeService creates a ScrapeService. A nil store runs the pipeline
// without persisting anything.
func NewScrapeService(
	c Crawler,
	n Normalizer,
	classifier sentiment.Classifier,
	store Store,
	log logger.Logger,
) *ScrapeService {
	if log == nil {
		log = logger.NewNop()
	}
	return &ScrapeService{
		crawler:    c,
		normalizer: n,
		classifier: classifier,
		store:      store,
		log:        log,
	}
}

// Run executes one scrape. A concurrent call returns ErrRunInProgress.
func (s *ScrapeService) Run(ctx context.Context) (*RunReport, error) {
	if !s.running.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.running.Unlock()

	start := time.Now()

	result, err := s.crawler.CrawlAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("crawl: %w", err)
	}

	records := s.normalizer.Normalize(result.Records)
	report := &RunReport{
		RunID:            result.RunID,
		Categories:       result.Categories,
		FailedCategories: result.FailedCategories,
		ArticleURLs:      result.ArticleURLs,
		FailedArticles:   result.FailedArticles,
		Extracted:        len(result.Records),
		Normalized:       len(records),
		Groups:           normalizer.Summarize(records),
		Records:          records,
	}

	if report.Extracted == 0 {
		s.log.Warn("Scrape extracted no records",
			logger.String("run_id", report.RunID),
			logger.Int("categories", report.Categories),
			logger.Int("failed_categories", report.FailedCategories),
			logger.Int("article_urls", report.ArticleURLs),
			logger.Int("failed_articles", report.FailedArticles))
	}

	if s.store != nil {
		inserted, saveErr := s.store.SaveArticles(ctx, s.toArticles(records))
		if saveErr != nil {
			return nil, fmt.Errorf("save articles: %w", saveErr)
		}
		if statsErr := s.store.RecomputeStatistics(ctx); statsErr != nil {
			return nil, fmt.Errorf("recompute statistics: %w", statsErr)
		}
		report.Inserted = inserted
		report.Stored = true
	}
	report.Duration = time.Since(start)

	s.log.Info("Scrape completed",
		logger.String("run_id", report.RunID),
		logger.Int("extracted", report.Extracted),
		logger.Int("normalized", report.Normalized),
		logger.Int("inserted", report.Inserted),
		logger.Bool("stored", report.Stored),
		logger.Duration("duration", report.Duration))

	return report, nil
}

func (s *ScrapeService) toArticles(records []domain.NormalizedRecord) []domain.Article {
	articles := make([]domain.Article, 0, len(records))
	for _, r := range records {
		articles = append(articles, domain.Article{
			Headline:        r.Headline,
			URL:             r.URL,
			PublicationDate: r.FundingDate,
			Category:        r.CategoryGroup.String(),
			Sentiment:       s.classify(r.Headline),
		})
	}
	return articles
}

func (s *ScrapeService) classify(text string) domain.Sentiment {
	if s.classifier == nil {
		return domain.SentimentNeutral
	}
	return s.classifier.Classify(text)
}
