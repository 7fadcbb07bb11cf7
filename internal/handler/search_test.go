package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placesearch-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPlaceSearchService is a mock implementation of the PlaceSearchService interface
type MockPlaceSearchService struct {
	mock.Mock
}

func (m *MockPlaceSearchService) Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.CanonicalPlace, error) {
	args := m.Called(ctx, query, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CanonicalPlace), args.Error(1)
}

func postJSON(t *testing.T, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSearchHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed body", func(t *testing.T) {
		handler := NewSearchHandler(new(MockPlaceSearchService))
		c, w := postJSON(t, "/api/places/search", `{"query":`)

		handler.Search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid request body", decodeBody(t, w)["error"])
	})

	t.Run("missing query", func(t *testing.T) {
		handler := NewSearchHandler(new(MockPlaceSearchService))
		c, w := postJSON(t, "/api/places/search", `{"query":""}`)

		handler.Search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Search query is required", decodeBody(t, w)["error"])
	})

	t.Run("successful search", func(t *testing.T) {
		mockSvc := new(MockPlaceSearchService)
		mockSvc.On("Search", mock.Anything, "pizza", models.SearchFilters{
			Center:     &models.GeoPoint{Lat: 39.8, Lng: -89.65},
			Radius:     2000,
			Categories: []string{"restaurant"},
			MaxResults: 5,
		}).Return([]models.CanonicalPlace{{ID: "p1", Name: "Luigi's"}}, nil)

		handler := NewSearchHandler(mockSvc)
		c, w := postJSON(t, "/api/places/search", `{
			"query": "pizza",
			"location": {"lat": 39.8, "lng": -89.65},
			"radius": 2000,
			"categories": ["restaurant"],
			"maxResults": 5
		}`)

		handler.Search(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(1), body["count"])
		assert.Equal(t, "pizza", body["query"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(MockPlaceSearchService)
		mockSvc.On("Search", mock.Anything, "pizza", mock.Anything).Return(nil, assert.AnError)

		handler := NewSearchHandler(mockSvc)
		c, w := postJSON(t, "/api/places/search", `{"query":"pizza"}`)

		handler.Search(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["error"])
	})
}
