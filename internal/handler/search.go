package handler

import (
	"context"
	"net/http"

	"placesearch-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles place search requests
type SearchHandler struct {
	service PlaceSearchService
}

// Service interface for dependency injection
type PlaceSearchService interface {
	Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.CanonicalPlace, error)
}

// searchRequest is the POST /search body.
type searchRequest struct {
	Query      string           `json:"query"`
	Location   *models.GeoPoint `json:"location"`
	Radius     float64          `json:"radius"`
	Categories []string         `json:"categories"`
	MaxResults int              `json:"maxResults"`
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc PlaceSearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles POST /api/places/search requests
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	filters := models.SearchFilters{
		Center:     req.Location,
		Radius:     req.Radius,
		Categories: req.Categories,
		MaxResults: req.MaxResults,
	}

	found, err := h.service.Search(c.Request.Context(), req.Query, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     found,
		"count":    len(found),
		"query":    req.Query,
		"location": req.Location,
	})
}
