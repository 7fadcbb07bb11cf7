package places

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// Field-mask tiers, richest first. Newer mask fields are not available in
// every API edition, so each operation carries a reduced tier that the
// upstream always accepts. There is no third tier.
var searchMaskTiers = []string{
	strings.Join([]string{
		"places.id",
		"places.displayName",
		"places.formattedAddress",
		"places.addressComponents",
		"places.location",
		"places.rating",
		"places.userRatingCount",
		"places.types",
		"places.nationalPhoneNumber",
		"places.internationalPhoneNumber",
		"places.websiteUri",
		"places.googleMapsUri",
		"places.businessStatus",
		"places.priceLevel",
		"places.primaryType",
		"places.primaryTypeDisplayName",
		"places.shortFormattedAddress",
		"places.adrFormatAddress",
		"places.plusCode",
		"places.editorialSummary",
	}, ","),
	strings.Join([]string{
		"places.id",
		"places.displayName",
		"places.formattedAddress",
		"places.location",
		"places.rating",
		"places.userRatingCount",
		"places.types",
		"places.nationalPhoneNumber",
		"places.websiteUri",
		"places.googleMapsUri",
		"places.businessStatus",
		"places.priceLevel",
		"places.primaryType",
	}, ","),
}

var detailMaskTiers = []string{
	strings.Join([]string{
		"id",
		"displayName",
		"formattedAddress",
		"addressComponents",
		"location",
		"rating",
		"userRatingCount",
		"types",
		"nationalPhoneNumber",
		"internationalPhoneNumber",
		"websiteUri",
		"googleMapsUri",
		"businessStatus",
		"priceLevel",
		"primaryType",
		"primaryTypeDisplayName",
		"shortFormattedAddress",
		"adrFormatAddress",
		"plusCode",
		"editorialSummary",
		"regularOpeningHours",
		"currentOpeningHours",
		"photos",
		"reviews",
		"paymentOptions",
		"accessibilityOptions",
		"allowsDogs",
		"delivery",
		"dineIn",
		"curbsidePickup",
		"reservable",
		"servesBreakfast",
		"servesLunch",
		"servesDinner",
		"servesBrunch",
		"servesBeer",
		"servesWine",
		"servesVegetarianFood",
		"takeout",
		"goodForChildren",
	}, ","),
	strings.Join([]string{
		"id",
		"displayName",
		"formattedAddress",
		"addressComponents",
		"location",
		"rating",
		"userRatingCount",
		"types",
		"nationalPhoneNumber",
		"internationalPhoneNumber",
		"websiteUri",
		"googleMapsUri",
		"businessStatus",
		"priceLevel",
		"primaryType",
		"primaryTypeDisplayName",
		"regularOpeningHours",
		"photos",
	}, ","),
}

// MaskClient is the low-level client contract the negotiator drives.
type MaskClient interface {
	SearchText(ctx context.Context, req *SearchRequest, fieldMask string) (*SearchResponse, error)
	GetPlace(ctx context.Context, placeID string, fieldMask string) (*Place, error)
}

// Negotiator tries each field-mask tier in order until the upstream accepts
// one. Only a mask rejection triggers the next tier; every other error class
// (auth, network, rate limit) propagates unchanged, since retrying those with
// a narrower mask cannot help.
type Negotiator struct {
	client MaskClient
}

// NewNegotiator creates a new field-mask negotiator
func NewNegotiator(client MaskClient) *Negotiator {
	return &Negotiator{client: client}
}

// SearchText performs a text search, degrading the field mask if rejected.
func (n *Negotiator) SearchText(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	resp, err := n.client.SearchText(ctx, req, searchMaskTiers[0])
	if err == nil || !maskRejected(err) {
		return resp, err
	}

	log.Warn().Err(err).Msg("search field mask rejected, retrying with reduced mask")

	return n.client.SearchText(ctx, req, searchMaskTiers[1])
}

// GetPlace fetches place details, degrading the field mask if rejected.
func (n *Negotiator) GetPlace(ctx context.Context, placeID string) (*Place, error) {
	place, err := n.client.GetPlace(ctx, placeID, detailMaskTiers[0])
	if err == nil || !maskRejected(err) {
		return place, err
	}

	log.Warn().Err(err).Str("place_id", placeID).Msg("detail field mask rejected, retrying with reduced mask")

	return n.client.GetPlace(ctx, placeID, detailMaskTiers[1])
}

func maskRejected(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.MaskRejected()
}
