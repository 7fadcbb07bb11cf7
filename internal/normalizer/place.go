package normalizer

import (
	"strings"
	"time"

	"placesearch-api/internal/models"
	"placesearch-api/internal/places"
)

const (
	maxPhotos  = 10
	maxReviews = 5
)

// Normalize assembles one CanonicalPlace from one raw upstream record. It is
// pure and total: every canonical field resolves to its documented default
// when the upstream data is missing, so the result is always schema-complete
// no matter which field-mask tier produced the input.
func Normalize(place *places.Place) models.CanonicalPlace {
	if place == nil {
		place = &places.Place{}
	}

	addressParts := DecomposeAddress(place.AddressComponents)
	name := displayText(place.DisplayName, "Unknown")
	subtitle := localizedOrNil(place.PrimaryTypeDisplayName)

	categoryName := subtitle
	if categoryName == nil {
		categoryName = strOrNil(place.PrimaryType)
	}

	businessStatus := place.BusinessStatus
	if businessStatus == "" {
		businessStatus = "OPERATIONAL"
	}

	var location *models.GeoPoint
	if place.Location != nil {
		location = &models.GeoPoint{Lat: place.Location.Latitude, Lng: place.Location.Longitude}
	}

	var plusCode *string
	if place.PlusCode != nil {
		plusCode = strOrNil(place.PlusCode.GlobalCode)
	}

	address := place.FormattedAddress
	if address == "" {
		address = "Address not available"
	}

	types := place.Types
	if types == nil {
		types = []string{}
	}

	var imageURL *string
	if len(place.Photos) > 0 {
		imageURL = strOrNil(place.Photos[0].Name)
	}

	return models.CanonicalPlace{
		ID:           place.ID,
		PlaceID:      place.ID,
		Title:        name,
		Name:         name,
		Subtitle:     subtitle,
		Description:  localizedOrNil(place.EditorialSummary),
		CategoryName: categoryName,

		Address:               address,
		ShortFormattedAddress: strOrNil(place.ShortFormattedAddress),
		AdrFormatAddress:      strOrNil(place.AdrFormatAddress),
		Street:                addressParts.Street,
		Neighborhood:          addressParts.Neighborhood,
		City:                  addressParts.City,
		PostalCode:            addressParts.PostalCode,
		State:                 addressParts.State,
		CountryCode:           addressParts.CountryCode,

		Location: location,
		PlusCode: plusCode,

		Phone:            strOrNil(place.NationalPhoneNumber),
		PhoneUnformatted: strOrNil(place.InternationalPhone),
		Website:          strOrNil(place.WebsiteURI),
		GoogleMapsURL:    strOrNil(place.GoogleMapsURI),

		Rating:              place.Rating,
		TotalScore:          place.Rating,
		UserRatingCount:     place.UserRatingCount,
		ReviewsCount:        place.UserRatingCount,
		ReviewsDistribution: ReviewsDistribution(place.Reviews),
		Types:               types,
		Categories:          types,
		PrimaryType:         strOrNil(place.PrimaryType),
		BusinessStatus:      businessStatus,
		PermanentlyClosed:   place.BusinessStatus == "CLOSED_PERMANENTLY",
		TemporarilyClosed:   place.BusinessStatus == "CLOSED_TEMPORARILY",

		PriceLevel: strOrNil(place.PriceLevel),
		Price:      ConvertPriceLevel(place.PriceLevel),

		OpeningHours: FormatOpeningHours(place.RegularOpeningHours, place.CurrentOpeningHours),

		Photos:      normalizePhotos(place.Photos),
		ImagesCount: len(place.Photos),

		Reviews: normalizeReviews(place.Reviews),

		AdditionalInfo: ExtractAttributes(place),

		ScrapedAt: time.Now().UTC().Format(time.RFC3339),

		URL: strOrNil(place.GoogleMapsURI),

		IsAdvertisement:       false,
		Menu:                  strOrNil(place.WebsiteURI),
		ClaimThisBusiness:     false,
		HotelAds:              []interface{}{},
		PeopleAlsoSearch:      []interface{}{},
		PlacesTags:            []interface{}{},
		ReviewsTags:           ExtractReviewTags(place.Reviews),
		GasPrices:             []interface{}{},
		QuestionsAndAnswers:   []interface{}{},
		OwnerUpdates:          []interface{}{},
		ImageURL:              imageURL,
		WebResults:            []interface{}{},
		TableReservationLinks: []interface{}{},
		BookingLinks:          []interface{}{},
		OrderBy:               []interface{}{},
		Images:                normalizeImages(place.Photos),
		ImageURLs:             photoNames(place.Photos),
		RestaurantData:        map[string]interface{}{},
	}
}

// ConvertPriceLevel maps the raw price tier enum to its symbolic string.
// Unknown values map to null.
func ConvertPriceLevel(priceLevel string) *string {
	switch priceLevel {
	case "PRICE_LEVEL_FREE":
		return strPtr("Free")
	case "PRICE_LEVEL_INEXPENSIVE":
		return strPtr("$")
	case "PRICE_LEVEL_MODERATE":
		return strPtr("$$")
	case "PRICE_LEVEL_EXPENSIVE":
		return strPtr("$$$")
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return strPtr("$$$$")
	default:
		return nil
	}
}

// FormatOpeningHours picks whichever hours block is present, regular
// preferred, and splits each "Day: range" description on the first ": ". A
// description without the separator becomes the day with hours marked
// unavailable.
func FormatOpeningHours(regular, current *places.OpeningHours) []models.OpeningHoursEntry {
	hours := regular
	if hours == nil {
		hours = current
	}
	if hours == nil || len(hours.WeekdayDescriptions) == 0 {
		return nil
	}

	entries := make([]models.OpeningHoursEntry, 0, len(hours.WeekdayDescriptions))
	for _, description := range hours.WeekdayDescriptions {
		parts := strings.SplitN(description, ": ", 2)
		if len(parts) == 2 {
			entries = append(entries, models.OpeningHoursEntry{Day: parts[0], Hours: parts[1]})
			continue
		}
		entries = append(entries, models.OpeningHoursEntry{Day: description, Hours: "Hours not available"})
	}

	return entries
}

func normalizePhotos(photos []places.Photo) []models.PhotoInfo {
	capped := photos
	if len(capped) > maxPhotos {
		capped = capped[:maxPhotos]
	}

	result := make([]models.PhotoInfo, 0, len(capped))
	for _, photo := range capped {
		attributions := make([]models.AuthorAttribution, 0, len(photo.AuthorAttributions))
		for _, attribution := range photo.AuthorAttributions {
			attributions = append(attributions, models.AuthorAttribution{
				DisplayName: attribution.DisplayName,
				URI:         attribution.URI,
				PhotoURI:    attribution.PhotoURI,
			})
		}
		result = append(result, models.PhotoInfo{
			Name:               photo.Name,
			WidthPx:            photo.WidthPx,
			HeightPx:           photo.HeightPx,
			AuthorAttributions: attributions,
		})
	}

	return result
}

func normalizeImages(photos []places.Photo) []models.ImageInfo {
	capped := photos
	if len(capped) > maxPhotos {
		capped = capped[:maxPhotos]
	}

	result := make([]models.ImageInfo, 0, len(capped))
	for _, photo := range capped {
		image := models.ImageInfo{ImageURL: photo.Name, AuthorName: "Unknown"}
		if len(photo.AuthorAttributions) > 0 {
			if name := photo.AuthorAttributions[0].DisplayName; name != "" {
				image.AuthorName = name
			}
			image.AuthorURL = strOrNil(photo.AuthorAttributions[0].URI)
		}
		result = append(result, image)
	}

	return result
}

func photoNames(photos []places.Photo) []string {
	capped := photos
	if len(capped) > maxPhotos {
		capped = capped[:maxPhotos]
	}

	names := make([]string, 0, len(capped))
	for _, photo := range capped {
		names = append(names, photo.Name)
	}

	return names
}

func normalizeReviews(reviews []places.Review) []models.ReviewInfo {
	capped := reviews
	if len(capped) > maxReviews {
		capped = capped[:maxReviews]
	}

	result := make([]models.ReviewInfo, 0, len(capped))
	for _, review := range capped {
		info := models.ReviewInfo{
			Name:                 "Anonymous",
			PublishAt:            strOrNil(review.RelativePublishTimeDescription),
			PublishedAtDate:      strOrNil(review.PublishTime),
			ReviewID:             strOrNil(review.Name),
			ReviewOrigin:         "Google",
			Stars:                review.Rating,
			Rating:               review.Rating,
			ReviewImageURLs:      []string{},
			ReviewContext:        map[string]interface{}{},
			ReviewDetailedRating: map[string]interface{}{},
		}
		if review.Text != nil {
			info.Text = review.Text.Text
		}
		if review.AuthorAttribution != nil {
			if review.AuthorAttribution.DisplayName != "" {
				info.Name = review.AuthorAttribution.DisplayName
			}
			info.ReviewerID = strOrNil(review.AuthorAttribution.URI)
			info.ReviewerURL = strOrNil(review.AuthorAttribution.URI)
			info.ReviewerPhotoURL = strOrNil(review.AuthorAttribution.PhotoURI)
		}
		result = append(result, info)
	}

	return result
}

func displayText(text *places.LocalizedText, fallback string) string {
	if text == nil || text.Text == "" {
		return fallback
	}
	return text.Text
}

func localizedOrNil(text *places.LocalizedText) *string {
	if text == nil || text.Text == "" {
		return nil
	}
	return strPtr(text.Text)
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return strPtr(s)
}
