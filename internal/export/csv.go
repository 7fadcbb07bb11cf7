package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"placesearch-api/internal/models"
)

var csvHeaders = []string{
	"Business Name",
	"Address",
	"Phone Number",
	"Website",
	"Rating",
	"Review Count",
	"Primary Type",
	"All Types",
	"Business Status",
	"Price Level",
	"Latitude",
	"Longitude",
	"Google Maps URL",
	"Opening Hours",
}

// GenerateCSV serializes places into the fixed 14-column export format.
func GenerateCSV(placesList []models.CanonicalPlace) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(csvHeaders); err != nil {
		return "", fmt.Errorf("export: failed to write CSV header: %w", err)
	}

	for _, place := range placesList {
		row := []string{
			place.Name,
			place.Address,
			strValue(place.Phone),
			strValue(place.Website),
			strconv.FormatFloat(place.Rating, 'f', -1, 64),
			strconv.Itoa(place.UserRatingCount),
			strValue(place.PrimaryType),
			strings.Join(place.Types, "; "),
			place.BusinessStatus,
			strValue(place.PriceLevel),
			formatCoordinate(place.Location, func(p *models.GeoPoint) float64 { return p.Lat }),
			formatCoordinate(place.Location, func(p *models.GeoPoint) float64 { return p.Lng }),
			strValue(place.GoogleMapsURL),
			formatOpeningHours(place.OpeningHours),
		}

		for i, cell := range row {
			row[i] = sanitizeCell(cell)
		}

		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("export: failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("export: failed to flush CSV: %w", err)
	}

	return sb.String(), nil
}

// sanitizeCell neutralizes spreadsheet formula injection: cells starting with
// =, +, - or @ get a leading single quote.
func sanitizeCell(value string) string {
	if strings.HasPrefix(value, "=") || strings.HasPrefix(value, "+") ||
		strings.HasPrefix(value, "-") || strings.HasPrefix(value, "@") {
		return "'" + value
	}
	return value
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatCoordinate(point *models.GeoPoint, pick func(*models.GeoPoint) float64) string {
	if point == nil {
		return ""
	}
	return strconv.FormatFloat(pick(point), 'f', -1, 64)
}

func formatOpeningHours(entries []models.OpeningHoursEntry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, entry.Day+": "+entry.Hours)
	}

	return strings.Join(parts, "; ")
}
