package handler

import (
	"context"
	"net/http"

	"placesearch-api/internal/models"

	"github.com/gin-gonic/gin"
)

// DetailsHandler handles place detail requests
type DetailsHandler struct {
	service PlaceDetailsService
}

// Service interface for dependency injection
type PlaceDetailsService interface {
	GetDetails(ctx context.Context, placeID string) (models.CanonicalPlace, error)
}

// NewDetailsHandler creates a new details handler
func NewDetailsHandler(svc PlaceDetailsService) *DetailsHandler {
	return &DetailsHandler{service: svc}
}

// GetDetails handles GET /api/places/details/:placeId requests
func (h *DetailsHandler) GetDetails(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required path parameter 'placeId'"})
		return
	}

	place, err := h.service.GetDetails(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    place,
	})
}
