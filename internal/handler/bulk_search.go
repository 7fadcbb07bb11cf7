package handler

import (
	"context"
	"net/http"

	"placesearch-api/internal/models"

	"github.com/gin-gonic/gin"
)

// BulkSearchHandler handles multi-query search requests
type BulkSearchHandler struct {
	service BulkSearchService
}

// Service interface for dependency injection
type BulkSearchService interface {
	BulkSearch(ctx context.Context, queries []string, filters models.SearchFilters) ([]models.CanonicalPlace, []models.QueryResult, error)
}

// bulkSearchRequest is the POST /bulk-search body.
type bulkSearchRequest struct {
	Queries    []string         `json:"queries"`
	Location   *models.GeoPoint `json:"location"`
	Radius     float64          `json:"radius"`
	Categories []string         `json:"categories"`
	MaxResults int              `json:"maxResults"`
}

// NewBulkSearchHandler creates a new bulk search handler
func NewBulkSearchHandler(svc BulkSearchService) *BulkSearchHandler {
	return &BulkSearchHandler{service: svc}
}

// BulkSearch handles POST /api/places/bulk-search requests
func (h *BulkSearchHandler) BulkSearch(c *gin.Context) {
	var req bulkSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(req.Queries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Queries array is required"})
		return
	}
	if len(req.Queries) > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 10 queries allowed per bulk search"})
		return
	}

	filters := models.SearchFilters{
		Center:     req.Location,
		Radius:     req.Radius,
		Categories: req.Categories,
		MaxResults: req.MaxResults,
	}

	combined, breakdown, err := h.service.BulkSearch(c.Request.Context(), req.Queries, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         combined,
		"count":        len(combined),
		"queryResults": breakdown,
		"totalQueries": len(req.Queries),
	})
}
