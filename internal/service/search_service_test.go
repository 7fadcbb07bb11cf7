package service

import (
	"context"
	"testing"
	"time"

	"placesearch-api/internal/models"
	"placesearch-api/internal/places"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPlacesAPI is a mock implementation of the PlacesAPI interface
type MockPlacesAPI struct {
	mock.Mock
}

func (m *MockPlacesAPI) SearchText(ctx context.Context, req *places.SearchRequest) (*places.SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*places.SearchResponse), args.Error(1)
}

func (m *MockPlacesAPI) GetPlace(ctx context.Context, placeID string) (*places.Place, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*places.Place), args.Error(1)
}

func newTestService(api PlacesAPI) *SearchService {
	return NewSearchService(api, time.Millisecond)
}

func TestSearchService_Search(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		_, err := newTestService(new(MockPlacesAPI)).Search(context.Background(), "", models.SearchFilters{})
		assert.Error(t, err)
	})

	t.Run("enriches every hit and preserves order", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("SearchText", mock.Anything, mock.Anything).Return(&places.SearchResponse{
			Places: []places.Place{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		}, nil)
		mockAPI.On("GetPlace", mock.Anything, "a").Return(&places.Place{ID: "a", DisplayName: &places.LocalizedText{Text: "A"}}, nil)
		mockAPI.On("GetPlace", mock.Anything, "b").Return(&places.Place{ID: "b", DisplayName: &places.LocalizedText{Text: "B"}}, nil)
		mockAPI.On("GetPlace", mock.Anything, "c").Return(&places.Place{ID: "c", DisplayName: &places.LocalizedText{Text: "C"}}, nil)

		results, err := newTestService(mockAPI).Search(context.Background(), "cafes", models.SearchFilters{})

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{results[0].Name, results[1].Name, results[2].Name})
		mockAPI.AssertExpectations(t)
	})

	t.Run("detail failure degrades that hit only", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("SearchText", mock.Anything, mock.Anything).Return(&places.SearchResponse{
			Places: []places.Place{
				{ID: "a", DisplayName: &places.LocalizedText{Text: "A basic"}},
				{ID: "b", DisplayName: &places.LocalizedText{Text: "B basic"}},
			},
		}, nil)
		mockAPI.On("GetPlace", mock.Anything, "a").Return(&places.Place{ID: "a", DisplayName: &places.LocalizedText{Text: "A rich"}}, nil)
		mockAPI.On("GetPlace", mock.Anything, "b").Return(nil, assert.AnError)

		results, err := newTestService(mockAPI).Search(context.Background(), "cafes", models.SearchFilters{})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "A rich", results[0].Name)
		// The failed hit falls back to the search payload.
		assert.Equal(t, "B basic", results[1].Name)
		assert.Equal(t, "b", results[1].ID)
	})

	t.Run("search failure propagates", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("SearchText", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := newTestService(mockAPI).Search(context.Background(), "cafes", models.SearchFilters{})

		assert.Error(t, err)
		mockAPI.AssertNotCalled(t, "GetPlace", mock.Anything, mock.Anything)
	})

	t.Run("max results is capped at upstream limit", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("SearchText", mock.Anything, mock.MatchedBy(func(req *places.SearchRequest) bool {
			return req.MaxResultCount == 20
		})).Return(&places.SearchResponse{}, nil)

		_, err := newTestService(mockAPI).Search(context.Background(), "cafes", models.SearchFilters{MaxResults: 50})

		require.NoError(t, err)
		mockAPI.AssertExpectations(t)
	})

	t.Run("location bias built from filters", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("SearchText", mock.Anything, mock.MatchedBy(func(req *places.SearchRequest) bool {
			return req.LocationBias != nil &&
				req.LocationBias.Circle.Center.Latitude == 35.68 &&
				req.LocationBias.Circle.Radius == 5000
		})).Return(&places.SearchResponse{}, nil)

		_, err := newTestService(mockAPI).Search(context.Background(), "cafes", models.SearchFilters{
			Center: &models.GeoPoint{Lat: 35.68, Lng: 139.76},
		})

		require.NoError(t, err)
		mockAPI.AssertExpectations(t)
	})

	t.Run("category filter applied after enrichment", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("SearchText", mock.Anything, mock.Anything).Return(&places.SearchResponse{
			Places: []places.Place{{ID: "a"}, {ID: "b"}},
		}, nil)
		mockAPI.On("GetPlace", mock.Anything, "a").Return(&places.Place{ID: "a", Types: []string{"restaurant"}}, nil)
		mockAPI.On("GetPlace", mock.Anything, "b").Return(&places.Place{ID: "b", Types: []string{"hair_salon"}}, nil)

		results, err := newTestService(mockAPI).Search(context.Background(), "springfield", models.SearchFilters{
			Categories: []string{"Restaurant"},
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "a", results[0].ID)
	})
}

func TestSearchService_GetDetails(t *testing.T) {
	t.Run("empty place id", func(t *testing.T) {
		_, err := newTestService(new(MockPlacesAPI)).GetDetails(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("normalizes the fetched place", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("GetPlace", mock.Anything, "p1").Return(&places.Place{
			ID:          "p1",
			DisplayName: &places.LocalizedText{Text: "Café X"},
		}, nil)

		place, err := newTestService(mockAPI).GetDetails(context.Background(), "p1")

		require.NoError(t, err)
		assert.Equal(t, "Café X", place.Name)
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("GetPlace", mock.Anything, "p1").Return(nil, assert.AnError)

		_, err := newTestService(mockAPI).GetDetails(context.Background(), "p1")

		assert.Error(t, err)
	})
}

func TestSearchService_BulkSearch(t *testing.T) {
	t.Run("empty queries", func(t *testing.T) {
		_, _, err := newTestService(new(MockPlacesAPI)).BulkSearch(context.Background(), nil, models.SearchFilters{})
		assert.Error(t, err)
	})

	t.Run("too many queries", func(t *testing.T) {
		queries := make([]string, 11)
		for i := range queries {
			queries[i] = "q"
		}
		_, _, err := newTestService(new(MockPlacesAPI)).BulkSearch(context.Background(), queries, models.SearchFilters{})
		assert.Error(t, err)
	})

	t.Run("failed query annotated, remaining queries still run", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("SearchText", mock.Anything, mock.MatchedBy(func(req *places.SearchRequest) bool {
			return req.TextQuery == "good one"
		})).Return(&places.SearchResponse{Places: []places.Place{{ID: "a"}}}, nil)
		mockAPI.On("SearchText", mock.Anything, mock.MatchedBy(func(req *places.SearchRequest) bool {
			return req.TextQuery == "bad one"
		})).Return(nil, assert.AnError)
		mockAPI.On("SearchText", mock.Anything, mock.MatchedBy(func(req *places.SearchRequest) bool {
			return req.TextQuery == "good two"
		})).Return(&places.SearchResponse{Places: []places.Place{{ID: "b"}, {ID: "c"}}}, nil)
		mockAPI.On("GetPlace", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		combined, breakdown, err := newTestService(mockAPI).BulkSearch(
			context.Background(),
			[]string{"good one", "bad one", "good two"},
			models.SearchFilters{},
		)

		require.NoError(t, err)
		require.Len(t, breakdown, 3)

		assert.Equal(t, "good one", breakdown[0].Query)
		assert.Equal(t, 1, breakdown[0].Count)
		assert.Empty(t, breakdown[0].Error)

		assert.Equal(t, "bad one", breakdown[1].Query)
		assert.Equal(t, 0, breakdown[1].Count)
		assert.NotEmpty(t, breakdown[1].Error)
		assert.Empty(t, breakdown[1].Places)

		assert.Equal(t, "good two", breakdown[2].Query)
		assert.Equal(t, 2, breakdown[2].Count)

		// The combined list excludes the failed query's contribution.
		require.Len(t, combined, 3)
		assert.Equal(t, "a", combined[0].ID)
		assert.Equal(t, "b", combined[1].ID)
		assert.Equal(t, "c", combined[2].ID)
	})

	t.Run("blank queries are skipped", func(t *testing.T) {
		mockAPI := new(MockPlacesAPI)
		mockAPI.On("SearchText", mock.Anything, mock.Anything).Return(&places.SearchResponse{}, nil)

		_, breakdown, err := newTestService(mockAPI).BulkSearch(
			context.Background(),
			[]string{"  ", "coffee"},
			models.SearchFilters{},
		)

		require.NoError(t, err)
		require.Len(t, breakdown, 1)
		assert.Equal(t, "coffee", breakdown[0].Query)
	})
}

func TestFilterByCategoriesIdempotent(t *testing.T) {
	placesList := []models.CanonicalPlace{
		{ID: "a", Types: []string{"restaurant", "bar"}},
		{ID: "b", Types: []string{"hair_salon"}},
		{ID: "c", Types: []string{"barber_shop"}},
	}
	categories := []string{"bar"}

	once := filterByCategories(placesList, categories)
	twice := filterByCategories(once, categories)

	// "bar" matches both "bar" and "barber_shop" via substring overlap.
	require.Len(t, once, 2)
	assert.Equal(t, once, twice)
}

func TestFilterByCategoriesBidirectional(t *testing.T) {
	placesList := []models.CanonicalPlace{
		{ID: "a", Types: []string{"cafe"}},
	}

	// The requested category contains the place type.
	assert.Len(t, filterByCategories(placesList, []string{"internet cafe"}), 1)
	// The place type contains the requested category.
	assert.Len(t, filterByCategories(placesList, []string{"caf"}), 1)
	// No overlap in either direction.
	assert.Empty(t, filterByCategories(placesList, []string{"museum"}))
}
