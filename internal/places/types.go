package places

// SearchRequest is the body of a Places API v1 text search call.
type SearchRequest struct {
	TextQuery      string        `json:"textQuery"`
	MaxResultCount int           `json:"maxResultCount"`
	LocationBias   *LocationBias `json:"locationBias,omitempty"`
}

// LocationBias biases search results towards a circular area.
type LocationBias struct {
	Circle Circle `json:"circle"`
}

// Circle is a center point plus a radius in meters.
type Circle struct {
	Center LatLng  `json:"center"`
	Radius float64 `json:"radius"`
}

// LatLng is a geographic coordinate as the Places API encodes it.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchResponse is the Places API v1 text search response.
type SearchResponse struct {
	Places []Place `json:"places"`
}

// Place mirrors the Places API v1 place resource. The populated subset
// depends on which field mask the upstream accepted; every field may be
// missing.
type Place struct {
	ID                     string             `json:"id"`
	DisplayName            *LocalizedText     `json:"displayName,omitempty"`
	PrimaryType            string             `json:"primaryType,omitempty"`
	PrimaryTypeDisplayName *LocalizedText     `json:"primaryTypeDisplayName,omitempty"`
	EditorialSummary       *LocalizedText     `json:"editorialSummary,omitempty"`
	FormattedAddress       string             `json:"formattedAddress,omitempty"`
	ShortFormattedAddress  string             `json:"shortFormattedAddress,omitempty"`
	AdrFormatAddress       string             `json:"adrFormatAddress,omitempty"`
	AddressComponents      []AddressComponent `json:"addressComponents,omitempty"`
	Location               *LatLng            `json:"location,omitempty"`
	PlusCode               *PlusCode          `json:"plusCode,omitempty"`
	Rating                 float64            `json:"rating,omitempty"`
	UserRatingCount        int                `json:"userRatingCount,omitempty"`
	Types                  []string           `json:"types,omitempty"`
	NationalPhoneNumber    string             `json:"nationalPhoneNumber,omitempty"`
	InternationalPhone     string             `json:"internationalPhoneNumber,omitempty"`
	WebsiteURI             string             `json:"websiteUri,omitempty"`
	GoogleMapsURI          string             `json:"googleMapsUri,omitempty"`
	BusinessStatus         string             `json:"businessStatus,omitempty"`
	PriceLevel             string             `json:"priceLevel,omitempty"`
	RegularOpeningHours    *OpeningHours      `json:"regularOpeningHours,omitempty"`
	CurrentOpeningHours    *OpeningHours      `json:"currentOpeningHours,omitempty"`
	Photos                 []Photo            `json:"photos,omitempty"`
	Reviews                []Review           `json:"reviews,omitempty"`

	PaymentOptions       *PaymentOptions       `json:"paymentOptions,omitempty"`
	AccessibilityOptions *AccessibilityOptions `json:"accessibilityOptions,omitempty"`

	// Capability flags. Pointers distinguish "listing does not advertise
	// this" (nil) from an explicit false.
	Takeout              *bool `json:"takeout,omitempty"`
	Delivery             *bool `json:"delivery,omitempty"`
	DineIn               *bool `json:"dineIn,omitempty"`
	CurbsidePickup       *bool `json:"curbsidePickup,omitempty"`
	Reservable           *bool `json:"reservable,omitempty"`
	ServesBreakfast      *bool `json:"servesBreakfast,omitempty"`
	ServesLunch          *bool `json:"servesLunch,omitempty"`
	ServesDinner         *bool `json:"servesDinner,omitempty"`
	ServesBrunch         *bool `json:"servesBrunch,omitempty"`
	ServesBeer           *bool `json:"servesBeer,omitempty"`
	ServesWine           *bool `json:"servesWine,omitempty"`
	ServesVegetarianFood *bool `json:"servesVegetarianFood,omitempty"`
	GoodForChildren      *bool `json:"goodForChildren,omitempty"`
	AllowsDogs           *bool `json:"allowsDogs,omitempty"`
}

// LocalizedText is a text value with its language code.
type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// AddressComponent is one typed component of a decomposed address.
type AddressComponent struct {
	LongText  string   `json:"longText,omitempty"`
	ShortText string   `json:"shortText,omitempty"`
	Types     []string `json:"types,omitempty"`
}

// PlusCode is an Open Location Code reference.
type PlusCode struct {
	GlobalCode   string `json:"globalCode,omitempty"`
	CompoundCode string `json:"compoundCode,omitempty"`
}

// OpeningHours carries the human-readable weekday descriptions of an hours
// block, e.g. "Monday: 9:00 AM – 5:00 PM".
type OpeningHours struct {
	OpenNow             bool     `json:"openNow,omitempty"`
	WeekdayDescriptions []string `json:"weekdayDescriptions,omitempty"`
}

// Photo is a place photo reference.
type Photo struct {
	Name               string              `json:"name"`
	WidthPx            int                 `json:"widthPx,omitempty"`
	HeightPx           int                 `json:"heightPx,omitempty"`
	AuthorAttributions []AuthorAttribution `json:"authorAttributions,omitempty"`
}

// AuthorAttribution credits the author of a photo or review.
type AuthorAttribution struct {
	DisplayName string `json:"displayName,omitempty"`
	URI         string `json:"uri,omitempty"`
	PhotoURI    string `json:"photoUri,omitempty"`
}

// Review is one user review on a place.
type Review struct {
	Name                           string             `json:"name,omitempty"`
	Rating                         float64            `json:"rating,omitempty"`
	Text                           *LocalizedText     `json:"text,omitempty"`
	RelativePublishTimeDescription string             `json:"relativePublishTimeDescription,omitempty"`
	PublishTime                    string             `json:"publishTime,omitempty"`
	AuthorAttribution              *AuthorAttribution `json:"authorAttribution,omitempty"`
}

// PaymentOptions lists the payment methods a place accepts.
type PaymentOptions struct {
	AcceptsCreditCards *bool `json:"acceptsCreditCards,omitempty"`
	AcceptsDebitCards  *bool `json:"acceptsDebitCards,omitempty"`
	AcceptsCashOnly    *bool `json:"acceptsCashOnly,omitempty"`
	AcceptsNfc         *bool `json:"acceptsNfc,omitempty"`
}

// AccessibilityOptions lists the wheelchair accessibility sub-flags.
type AccessibilityOptions struct {
	WheelchairAccessibleEntrance *bool `json:"wheelchairAccessibleEntrance,omitempty"`
	WheelchairAccessibleParking  *bool `json:"wheelchairAccessibleParking,omitempty"`
	WheelchairAccessibleRestroom *bool `json:"wheelchairAccessibleRestroom,omitempty"`
	WheelchairAccessibleSeating  *bool `json:"wheelchairAccessibleSeating,omitempty"`
}
