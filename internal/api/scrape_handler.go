package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/service"
)

// ScrapeHandler triggers scrape runs.
type ScrapeHandler struct {
	scraper Scraper
	log     logger.Logger
}

// NewScrapeHandler creates a ScrapeHandler.
func NewScrapeHandler(scraper Scraper, log logger.Logger) *ScrapeHandler {
	return &ScrapeHandler{scraper: scraper, log: log}
}

// Trigger handles POST /scrape and blocks until the run finishes.
func (h *ScrapeHandler) Trigger(c *gin.Context) {
	report, err := h.scraper.Run(c.Request.Context())
	if errors.Is(err, service.ErrRunInProgress) {
		respondError(c, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.log.Error("Scrape failed", logger.Error(err))
		respondInternalError(c, "scrape failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "scraping completed",
		"report":  report,
	})
}
