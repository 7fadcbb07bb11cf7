package models

// CanonicalPlace is the one fixed-shape record every upstream place is
// normalized into. Every field is always populated: absent upstream data is
// represented by null, an empty string, an empty array or zero, never by a
// missing member, so consumers never need existence checks. Instances are
// built once per detail fetch and never mutated afterwards.
type CanonicalPlace struct {
	// Basic information
	ID           string  `json:"id"`
	PlaceID      string  `json:"placeId"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Subtitle     *string `json:"subtitle"`
	Description  *string `json:"description"`
	CategoryName *string `json:"categoryName"`

	// Address information
	Address               string  `json:"address"`
	ShortFormattedAddress *string `json:"shortFormattedAddress"`
	AdrFormatAddress      *string `json:"adrFormatAddress"`
	Street                *string `json:"street"`
	Neighborhood          *string `json:"neighborhood"`
	City                  *string `json:"city"`
	PostalCode            *string `json:"postalCode"`
	State                 *string `json:"state"`
	CountryCode           *string `json:"countryCode"`

	// Location
	Location *GeoPoint `json:"location"`
	PlusCode *string   `json:"plusCode"`

	// Contact information
	Phone            *string `json:"phone"`
	PhoneUnformatted *string `json:"phoneUnformatted"`
	Website          *string `json:"website"`
	GoogleMapsURL    *string `json:"googleMapsUrl"`

	// Business details
	Rating              float64             `json:"rating"`
	TotalScore          float64             `json:"totalScore"`
	UserRatingCount     int                 `json:"userRatingCount"`
	ReviewsCount        int                 `json:"reviewsCount"`
	ReviewsDistribution ReviewsDistribution `json:"reviewsDistribution"`
	Types               []string            `json:"types"`
	Categories          []string            `json:"categories"`
	PrimaryType         *string             `json:"primaryType"`
	BusinessStatus      string              `json:"businessStatus"`
	PermanentlyClosed   bool                `json:"permanentlyClosed"`
	TemporarilyClosed   bool                `json:"temporarilyClosed"`

	// Pricing
	PriceLevel *string `json:"priceLevel"`
	Price      *string `json:"price"`

	// Hours
	OpeningHours []OpeningHoursEntry `json:"openingHours"`

	// Images
	Photos      []PhotoInfo `json:"photos"`
	ImagesCount int         `json:"imagesCount"`

	// Reviews
	Reviews []ReviewInfo `json:"reviews"`

	// Grouped business attributes
	AdditionalInfo AdditionalInfo `json:"additionalInfo"`

	// Metadata
	ScrapedAt string `json:"scrapedAt"`

	// URLs and links
	URL *string `json:"url"`

	// Parity fields with the richer external export schema. These are always
	// present with their documented defaults; the upstream API does not supply
	// them.
	Rank                  *int                   `json:"rank"`
	SearchPageURL         *string                `json:"searchPageUrl"`
	SearchPageLoadedURL   *string                `json:"searchPageLoadedUrl"`
	IsAdvertisement       bool                   `json:"isAdvertisement"`
	LocatedIn             *string                `json:"locatedIn"`
	Menu                  *string                `json:"menu"`
	ClaimThisBusiness     bool                   `json:"claimThisBusiness"`
	ReserveTableURL       *string                `json:"reserveTableUrl"`
	GoogleFoodURL         *string                `json:"googleFoodUrl"`
	HotelStars            *int                   `json:"hotelStars"`
	HotelDescription      *string                `json:"hotelDescription"`
	CheckInDate           *string                `json:"checkInDate"`
	CheckOutDate          *string                `json:"checkOutDate"`
	SimilarHotelsNearby   interface{}            `json:"similarHotelsNearby"`
	HotelReviewSummary    interface{}            `json:"hotelReviewSummary"`
	HotelAds              []interface{}          `json:"hotelAds"`
	PeopleAlsoSearch      []interface{}          `json:"peopleAlsoSearch"`
	PlacesTags            []interface{}          `json:"placesTags"`
	ReviewsTags           []ReviewTag            `json:"reviewsTags"`
	GasPrices             []interface{}          `json:"gasPrices"`
	QuestionsAndAnswers   []interface{}          `json:"questionsAndAnswers"`
	UpdatesFromCustomers  *string                `json:"updatesFromCustomers"`
	OwnerUpdates          []interface{}          `json:"ownerUpdates"`
	ImageURL              *string                `json:"imageUrl"`
	Kgmid                 *string                `json:"kgmid"`
	WebResults            []interface{}          `json:"webResults"`
	ParentPlaceURL        *string                `json:"parentPlaceUrl"`
	TableReservationLinks []interface{}          `json:"tableReservationLinks"`
	BookingLinks          []interface{}          `json:"bookingLinks"`
	OrderBy               []interface{}          `json:"orderBy"`
	Images                []ImageInfo            `json:"images"`
	ImageURLs             []string               `json:"imageUrls"`
	UserPlaceNote         *string                `json:"userPlaceNote"`
	RestaurantData        map[string]interface{} `json:"restaurantData"`
}

// GeoPoint is a geographic coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ReviewsDistribution is the 1-5 star review histogram.
type ReviewsDistribution struct {
	OneStar   int `json:"oneStar"`
	TwoStar   int `json:"twoStar"`
	ThreeStar int `json:"threeStar"`
	FourStar  int `json:"fourStar"`
	FiveStar  int `json:"fiveStar"`
}

// OpeningHoursEntry is one weekday description split into day and hours.
type OpeningHoursEntry struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// PhotoInfo describes one place photo.
type PhotoInfo struct {
	Name               string              `json:"name"`
	WidthPx            int                 `json:"widthPx"`
	HeightPx           int                 `json:"heightPx"`
	AuthorAttributions []AuthorAttribution `json:"authorAttributions"`
}

// AuthorAttribution credits the author of a photo or review.
type AuthorAttribution struct {
	DisplayName string `json:"displayName"`
	URI         string `json:"uri"`
	PhotoURI    string `json:"photoUri"`
}

// ImageInfo is the export-schema view of a photo.
type ImageInfo struct {
	ImageURL   string  `json:"imageUrl"`
	AuthorName string  `json:"authorName"`
	AuthorURL  *string `json:"authorUrl"`
	UploadedAt *string `json:"uploadedAt"`
}

// ReviewInfo is one normalized user review.
type ReviewInfo struct {
	Name                    string                 `json:"name"`
	Text                    string                 `json:"text"`
	TextTranslated          *string                `json:"textTranslated"`
	PublishAt               *string                `json:"publishAt"`
	PublishedAtDate         *string                `json:"publishedAtDate"`
	LikesCount              int                    `json:"likesCount"`
	ReviewID                *string                `json:"reviewId"`
	ReviewURL               *string                `json:"reviewUrl"`
	ReviewerID              *string                `json:"reviewerId"`
	ReviewerURL             *string                `json:"reviewerUrl"`
	ReviewerPhotoURL        *string                `json:"reviewerPhotoUrl"`
	ReviewerNumberOfReviews *int                   `json:"reviewerNumberOfReviews"`
	IsLocalGuide            bool                   `json:"isLocalGuide"`
	ReviewOrigin            string                 `json:"reviewOrigin"`
	Stars                   float64                `json:"stars"`
	Rating                  float64                `json:"rating"`
	ResponseFromOwnerDate   *string                `json:"responseFromOwnerDate"`
	ResponseFromOwnerText   *string                `json:"responseFromOwnerText"`
	ReviewImageURLs         []string               `json:"reviewImageUrls"`
	ReviewContext           map[string]interface{} `json:"reviewContext"`
	ReviewDetailedRating    map[string]interface{} `json:"reviewDetailedRating"`
}

// ReviewTag is one frequency-ranked keyword extracted from review bodies.
type ReviewTag struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// AttributeEntry is a single label→value pair within an attribute category.
type AttributeEntry map[string]bool

// AdditionalInfo groups business capability flags into labeled categories.
// A category is serialized only when the upstream listing defines at least one
// of its flags; omission means the listing does not advertise the attribute.
// Category order is fixed by the field order below.
type AdditionalInfo struct {
	ServiceOptions []AttributeEntry `json:"Service options,omitempty"`
	DiningOptions  []AttributeEntry `json:"Dining options,omitempty"`
	Offerings      []AttributeEntry `json:"Offerings,omitempty"`
	Accessibility  []AttributeEntry `json:"Accessibility,omitempty"`
	Children       []AttributeEntry `json:"Children,omitempty"`
	Payments       []AttributeEntry `json:"Payments,omitempty"`
	Planning       []AttributeEntry `json:"Planning,omitempty"`
}

// AddressParts holds the decomposed locality fields of a formatted address.
type AddressParts struct {
	Street       *string `json:"street"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	PostalCode   *string `json:"postalCode"`
	State        *string `json:"state"`
	CountryCode  *string `json:"countryCode"`
}
