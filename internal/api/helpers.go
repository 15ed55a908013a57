package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidPagination = errors.New("limit and offset must be non-negative integers")

// parseLimitOffset reads limit and offset; absent values are zero.
func parseLimitOffset(c *gin.Context) (limit, offset int, err error) {
	if s := c.Query("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil || limit < 0 {
			return 0, 0, errInvalidPagination
		}
	}
	if s := c.Query("offset"); s != "" {
		if offset, err = strconv.Atoi(s); err != nil || offset < 0 {
			return 0, 0, errInvalidPagination
		}
	}
	return limit, offset, nil
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondNotFound(c *gin.Context, resource string) {
	respondError(c, http.StatusNotFound, resource+" not found")
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

func respondInternalError(c *gin.Context, message string) {
	respondError(c, http.StatusInternalServerError, message)
}
