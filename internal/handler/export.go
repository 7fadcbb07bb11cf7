package handler

import (
	"net/http"
	"time"

	"placesearch-api/internal/export"
	"placesearch-api/internal/models"

	"github.com/gin-gonic/gin"
)

const defaultExportFilename = "google-places-export"

// ExportHandler serializes already-normalized places into downloadable files.
// It consumes the canonical records unchanged; no re-normalization happens
// here.
type ExportHandler struct{}

// exportRequest is the body of both export endpoints.
type exportRequest struct {
	Places   []models.CanonicalPlace `json:"places"`
	Filename string                  `json:"filename"`
}

// NewExportHandler creates a new export handler
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportCSV handles POST /api/places/export/csv requests
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(req.Places) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Places data is required for export"})
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = defaultExportFilename
	}

	csvData, err := export.GenerateCSV(req.Places)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to export CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csvData))
}

// ExportJSON handles POST /api/places/export/json requests
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(req.Places) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Places data is required for export"})
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = defaultExportFilename
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`.json"`)
	c.JSON(http.StatusOK, gin.H{
		"exported_at":  time.Now().UTC().Format(time.RFC3339),
		"total_places": len(req.Places),
		"places":       req.Places,
	})
}
