// Package api exposes stored articles, their statistics and the scrape
// trigger over HTTP.
package api

//go:generate mockgen -destination=../../testutils/mocks/api/mocks.go -package=apimocks . ArticleStore,Scraper

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/sentiment"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/service"
)

// ArticleStore is the storage the handlers read and write.
type ArticleStore interface {
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	CreateArticle(ctx context.Context, article *domain.Article) error
	ListStatistics(ctx context.Context) ([]domain.ArticleStatistics, error)
	RecomputeStatistics(ctx context.Context) error
}

// Scraper runs one scrape synchronously.
type Scraper interface {
	Run(ctx context.Context) (*service.RunReport, error)
}

// NewRouter builds the gin engine with every route registered. classifier
// labels created articles that arrive without a sentiment.
func NewRouter(store ArticleStore, scraper Scraper, classifier sentiment.Classifier, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	articles := NewArticlesHandler(store, classifier, log)
	router.GET("/articles", articles.List)
	router.POST("/articles", articles.Create)
	router.GET("/article/:id", articles.Get)
	router.GET("/article-statistics", articles.Statistics)

	router.POST("/scrape", NewScrapeHandler(scraper, log).Trigger)

	return router
}

func loggingMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.String("query", c.Request.URL.RawQuery),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)))
	}
}
