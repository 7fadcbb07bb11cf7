package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"placesearch-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlaceDetailsService is a mock implementation of the PlaceDetailsService interface
type MockPlaceDetailsService struct {
	mock.Mock
}

func (m *MockPlaceDetailsService) GetDetails(ctx context.Context, placeID string) (models.CanonicalPlace, error) {
	args := m.Called(ctx, placeID)
	return args.Get(0).(models.CanonicalPlace), args.Error(1)
}

func TestDetailsHandler_GetDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(placeID string) (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/places/details/"+placeID, nil)
		if placeID != "" {
			c.Params = gin.Params{{Key: "placeId", Value: placeID}}
		}
		return c, w
	}

	t.Run("missing place id", func(t *testing.T) {
		handler := NewDetailsHandler(new(MockPlaceDetailsService))
		c, w := newContext("")

		handler.GetDetails(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing required path parameter 'placeId'", decodeBody(t, w)["error"])
	})

	t.Run("successful lookup", func(t *testing.T) {
		mockSvc := new(MockPlaceDetailsService)
		mockSvc.On("GetDetails", mock.Anything, "p1").
			Return(models.CanonicalPlace{ID: "p1", Name: "Café X"}, nil)

		handler := NewDetailsHandler(mockSvc)
		c, w := newContext("p1")

		handler.GetDetails(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Café X", data["name"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(MockPlaceDetailsService)
		mockSvc.On("GetDetails", mock.Anything, "p1").
			Return(models.CanonicalPlace{}, assert.AnError)

		handler := NewDetailsHandler(mockSvc)
		c, w := newContext("p1")

		handler.GetDetails(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["success"])
	})
}
