package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/database"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/sentiment"
)

const dateLayout = "2006-01-02"

// ArticlesHandler serves the article and statistics endpoints.
type ArticlesHandler struct {
	store      ArticleStore
	classifier sentiment.Classifier
	log        logger.Logger
}

// NewArticlesHandler creates an ArticlesHandler. A nil classifier labels
// articles without a sentiment as neutral.
func NewArticlesHandler(store ArticleStore, classifier sentiment.Classifier, log logger.Logger) *ArticlesHandler {
	return &ArticlesHandler{store: store, classifier: classifier, log: log}
}

// CreateArticleRequest is the body of POST /articles.
type CreateArticleRequest struct {
	Headline        string  `json:"headline"         binding:"required"`
	URL             string  `json:"url"              binding:"required,url"`
	PublicationDate *string `json:"publication_date"`
	Category        string  `json:"category"         binding:"required"`
	Sentiment       string  `json:"sentiment"`
}

// List handles GET /articles?category=&date=&limit=&offset=
func (h *ArticlesHandler) List(c *gin.Context) {
	limit, offset, err := parseLimitOffset(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	filter := domain.ArticleFilter{
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	}
	if s := c.Query("date"); s != "" {
		date, parseErr := time.Parse(dateLayout, s)
		if parseErr != nil {
			respondBadRequest(c, "date must be formatted as YYYY-MM-DD")
			return
		}
		filter.PublishedSince = &date
	}

	articles, total, err := h.store.ListArticles(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("List articles failed", logger.Error(err))
		respondInternalError(c, "failed to list articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": total})
}

// Get handles GET /article/:id
func (h *ArticlesHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "article id must be a positive integer")
		return
	}

	article, err := h.store.GetArticle(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "article")
		return
	}
	if err != nil {
		h.log.Error("Get article failed", logger.Int64("id", id), logger.Error(err))
		respondInternalError(c, "failed to get article")
		return
	}

	c.JSON(http.StatusOK, article)
}

// Create handles POST /articles. A missing sentiment is stored as neutral.
func (h *ArticlesHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	article := domain.Article{
		Headline: strings.TrimSpace(req.Headline),
		URL:      strings.TrimSpace(req.URL),
		Category: strings.TrimSpace(req.Category),
	}
	if req.Sentiment != "" {
		s, ok := domain.ParseSentiment(req.Sentiment)
		if !ok {
			respondBadRequest(c, "sentiment must be one of positive, neutral, negative")
			return
		}
		article.Sentiment = s
	} else {
		article.Sentiment = h.classify(article.Headline)
	}
	if req.PublicationDate != nil && *req.PublicationDate != "" {
		date, err := time.Parse(dateLayout, *req.PublicationDate)
		if err != nil {
			respondBadRequest(c, "publication_date must be formatted as YYYY-MM-DD")
			return
		}
		article.PublicationDate = &date
	}

	ctx := c.Request.Context()
	if err := h.store.CreateArticle(ctx, &article); err != nil {
		if errors.Is(err, database.ErrDuplicateURL) {
			respondError(c, http.StatusConflict, err.Error())
			return
		}
		h.log.Error("Create article failed", logger.String("url", article.URL), logger.Error(err))
		respondInternalError(c, "failed to create article")
		return
	}

	if err := h.store.RecomputeStatistics(ctx); err != nil {
		h.log.Warn("Statistics refresh failed after create", logger.Error(err))
	}

	c.JSON(http.StatusCreated, article)
}

func (h *ArticlesHandler) classify(headline string) domain.Sentiment {
	if h.classifier == nil {
		return domain.SentimentNeutral
	}
	return h.classifier.Classify(headline)
}

// Statistics handles GET /article-statistics
func (h *ArticlesHandler) Statistics(c *gin.Context) {
	stats, err := h.store.ListStatistics(c.Request.Context())
	if err != nil {
		h.log.Error("List statistics failed", logger.Error(err))
		respondInternalError(c, "failed to list statistics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}
