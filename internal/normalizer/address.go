package normalizer

import (
	"strings"

	"placesearch-api/internal/models"
	"placesearch-api/internal/places"
)

// DecomposeAddress maps the upstream's typed address components into the
// fixed locality fields. Street components accumulate; locality fields are
// last-wins. A missing component list yields the all-null zero value.
func DecomposeAddress(components []places.AddressComponent) models.AddressParts {
	var parts models.AddressParts

	var streetParts []string
	for _, component := range components {
		text := component.LongText
		if text == "" {
			text = component.ShortText
		}

		if hasType(component.Types, "street_number") || hasType(component.Types, "route") {
			streetParts = append(streetParts, text)
		}
		if hasType(component.Types, "neighborhood") || hasType(component.Types, "sublocality") {
			parts.Neighborhood = strPtr(text)
		}
		if hasType(component.Types, "locality") || hasType(component.Types, "administrative_area_level_2") {
			parts.City = strPtr(text)
		}
		if hasType(component.Types, "postal_code") {
			parts.PostalCode = strPtr(text)
		}
		if hasType(component.Types, "administrative_area_level_1") {
			parts.State = strPtr(text)
		}
		if hasType(component.Types, "country") {
			parts.CountryCode = strPtr(component.ShortText)
		}
	}

	if len(streetParts) > 0 {
		parts.Street = strPtr(strings.TrimSpace(strings.Join(streetParts, " ")))
	}

	return parts
}

func hasType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func strPtr(s string) *string {
	return &s
}
