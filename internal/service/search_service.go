package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"placesearch-api/internal/models"
	"placesearch-api/internal/normalizer"
	"placesearch-api/internal/places"

	"github.com/rs/zerolog/log"
)

const (
	maxResultsLimit = 20
	maxBulkQueries  = 10
	defaultRadius   = 5000
)

// SearchService contains the core business logic for place search and
// enrichment
type SearchService struct {
	api        PlacesAPI
	queryDelay time.Duration
}

// PlacesAPI interface for dependency injection. The production implementation
// is the field-mask negotiator.
type PlacesAPI interface {
	SearchText(ctx context.Context, req *places.SearchRequest) (*places.SearchResponse, error)
	GetPlace(ctx context.Context, placeID string) (*places.Place, error)
}

// NewSearchService creates a new search service
func NewSearchService(api PlacesAPI, queryDelay time.Duration) *SearchService {
	if queryDelay == 0 {
		queryDelay = 200 * time.Millisecond
	}
	return &SearchService{api: api, queryDelay: queryDelay}
}

// Search executes one text search and enriches every hit with a detail fetch.
// Detail fetches run concurrently; a failed fetch degrades that hit to its
// minimal search payload instead of failing the batch. The category filter is
// applied only after enrichment, and upstream result order is preserved.
func (s *SearchService) Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.CanonicalPlace, error) {
	if query == "" {
		return nil, fmt.Errorf("service: query cannot be empty")
	}

	maxResults := filters.MaxResults
	if maxResults <= 0 || maxResults > maxResultsLimit {
		maxResults = maxResultsLimit
	}

	req := &places.SearchRequest{
		TextQuery:      query,
		MaxResultCount: maxResults,
	}
	if filters.Center != nil {
		radius := filters.Radius
		if radius <= 0 {
			radius = defaultRadius
		}
		req.LocationBias = &places.LocationBias{
			Circle: places.Circle{
				Center: places.LatLng{Latitude: filters.Center.Lat, Longitude: filters.Center.Lng},
				Radius: radius,
			},
		}
	}

	resp, err := s.api.SearchText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search places: %w", err)
	}

	hits := resp.Places
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	enriched := s.enrich(ctx, hits)

	return filterByCategories(enriched, filters.Categories), nil
}

// enrich fans out one detail fetch per hit and recombines results by hit
// index. Failures are isolated: a hit whose detail fetch fails is normalized
// from the search payload alone.
func (s *SearchService) enrich(ctx context.Context, hits []places.Place) []models.CanonicalPlace {
	results := make([]models.CanonicalPlace, len(hits))

	var wg sync.WaitGroup
	for i := range hits {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			hit := hits[i]
			detailed, err := s.api.GetPlace(ctx, hit.ID)
			if err != nil {
				log.Warn().Err(err).Str("place_id", hit.ID).Msg("detail fetch failed, falling back to search payload")
				results[i] = normalizer.Normalize(&hit)
				return
			}

			results[i] = normalizer.Normalize(detailed)
		}(i)
	}
	wg.Wait()

	return results
}

// GetDetails fetches and normalizes one place by identifier.
func (s *SearchService) GetDetails(ctx context.Context, placeID string) (models.CanonicalPlace, error) {
	if placeID == "" {
		return models.CanonicalPlace{}, fmt.Errorf("service: place id cannot be empty")
	}

	place, err := s.api.GetPlace(ctx, placeID)
	if err != nil {
		return models.CanonicalPlace{}, fmt.Errorf("service: failed to get place details: %w", err)
	}

	return normalizer.Normalize(place), nil
}

// BulkSearch runs up to ten queries sequentially with a pause between them
// to stay under upstream rate limits. A failing query contributes an empty
// result with an error annotation; the remaining queries still run. The
// flattened combined list and the per-query breakdown are returned together.
func (s *SearchService) BulkSearch(ctx context.Context, queries []string, filters models.SearchFilters) ([]models.CanonicalPlace, []models.QueryResult, error) {
	if len(queries) == 0 {
		return nil, nil, fmt.Errorf("service: queries cannot be empty")
	}
	if len(queries) > maxBulkQueries {
		return nil, nil, fmt.Errorf("service: at most %d queries allowed per bulk search", maxBulkQueries)
	}

	var combined []models.CanonicalPlace
	var breakdown []models.QueryResult

	for _, query := range queries {
		trimmed := strings.TrimSpace(query)
		if trimmed == "" {
			continue
		}

		found, err := s.Search(ctx, trimmed, filters)
		if err != nil {
			log.Warn().Err(err).Str("query", trimmed).Msg("bulk search query failed")
			breakdown = append(breakdown, models.QueryResult{
				Query:  trimmed,
				Places: []models.CanonicalPlace{},
				Count:  0,
				Error:  err.Error(),
			})
			continue
		}

		breakdown = append(breakdown, models.QueryResult{
			Query:  trimmed,
			Places: found,
			Count:  len(found),
		})
		combined = append(combined, found...)

		select {
		case <-ctx.Done():
			return combined, breakdown, ctx.Err()
		case <-time.After(s.queryDelay):
		}
	}

	if combined == nil {
		combined = []models.CanonicalPlace{}
	}

	return combined, breakdown, nil
}

// filterByCategories retains places whose type list has case-insensitive
// substring overlap, in either direction, with any requested category. The
// bidirectional match is a known loose heuristic ("bar" matches "barber");
// it is kept as-is for parity with existing consumers.
func filterByCategories(placesList []models.CanonicalPlace, categories []string) []models.CanonicalPlace {
	if len(categories) == 0 {
		return placesList
	}

	filtered := make([]models.CanonicalPlace, 0, len(placesList))
	for _, place := range placesList {
		if matchesAnyCategory(place.Types, categories) {
			filtered = append(filtered, place)
		}
	}

	return filtered
}

func matchesAnyCategory(types, categories []string) bool {
	for _, placeType := range types {
		lowerType := strings.ToLower(placeType)
		for _, category := range categories {
			lowerCategory := strings.ToLower(category)
			if strings.Contains(lowerType, lowerCategory) || strings.Contains(lowerCategory, lowerType) {
				return true
			}
		}
	}
	return false
}
