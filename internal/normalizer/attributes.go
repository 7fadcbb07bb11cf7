package normalizer

import (
	"placesearch-api/internal/models"
	"placesearch-api/internal/places"
)

// ExtractAttributes maps the flat capability flags of a raw place into
// grouped, human-labeled categories. Service, dining and offering flags are
// included only when true; accessibility, payment, planning and children
// flags are included whenever the listing defines them, even as false. The
// check sequence below fixes the entry order.
func ExtractAttributes(place *places.Place) models.AdditionalInfo {
	var info models.AdditionalInfo

	var serviceOptions []models.AttributeEntry
	if isTrue(place.Takeout) {
		serviceOptions = append(serviceOptions, models.AttributeEntry{"Takeout": true})
	}
	if isTrue(place.Delivery) {
		serviceOptions = append(serviceOptions, models.AttributeEntry{"Delivery": true})
	}
	if isTrue(place.DineIn) {
		serviceOptions = append(serviceOptions, models.AttributeEntry{"Dine-in": true})
	}
	if isTrue(place.CurbsidePickup) {
		serviceOptions = append(serviceOptions, models.AttributeEntry{"Curbside pickup": true})
	}
	info.ServiceOptions = serviceOptions

	var diningOptions []models.AttributeEntry
	if isTrue(place.ServesBreakfast) {
		diningOptions = append(diningOptions, models.AttributeEntry{"Breakfast": true})
	}
	if isTrue(place.ServesLunch) {
		diningOptions = append(diningOptions, models.AttributeEntry{"Lunch": true})
	}
	if isTrue(place.ServesDinner) {
		diningOptions = append(diningOptions, models.AttributeEntry{"Dinner": true})
	}
	if isTrue(place.ServesBrunch) {
		diningOptions = append(diningOptions, models.AttributeEntry{"Brunch": true})
	}
	info.DiningOptions = diningOptions

	var offerings []models.AttributeEntry
	if isTrue(place.ServesVegetarianFood) {
		offerings = append(offerings, models.AttributeEntry{"Vegetarian options": true})
	}
	if isTrue(place.ServesBeer) {
		offerings = append(offerings, models.AttributeEntry{"Beer": true})
	}
	if isTrue(place.ServesWine) {
		offerings = append(offerings, models.AttributeEntry{"Wine": true})
	}
	info.Offerings = offerings

	if place.AccessibilityOptions != nil {
		var accessibility []models.AttributeEntry
		opts := place.AccessibilityOptions
		if opts.WheelchairAccessibleEntrance != nil {
			accessibility = append(accessibility, models.AttributeEntry{"Wheelchair accessible entrance": *opts.WheelchairAccessibleEntrance})
		}
		if opts.WheelchairAccessibleParking != nil {
			accessibility = append(accessibility, models.AttributeEntry{"Wheelchair accessible parking lot": *opts.WheelchairAccessibleParking})
		}
		if opts.WheelchairAccessibleRestroom != nil {
			accessibility = append(accessibility, models.AttributeEntry{"Wheelchair accessible restroom": *opts.WheelchairAccessibleRestroom})
		}
		if opts.WheelchairAccessibleSeating != nil {
			accessibility = append(accessibility, models.AttributeEntry{"Wheelchair accessible seating": *opts.WheelchairAccessibleSeating})
		}
		info.Accessibility = accessibility
	}

	if place.GoodForChildren != nil {
		info.Children = []models.AttributeEntry{{"Good for kids": *place.GoodForChildren}}
	}

	if place.PaymentOptions != nil {
		var payments []models.AttributeEntry
		opts := place.PaymentOptions
		if opts.AcceptsCreditCards != nil {
			payments = append(payments, models.AttributeEntry{"Credit cards": *opts.AcceptsCreditCards})
		}
		if opts.AcceptsDebitCards != nil {
			payments = append(payments, models.AttributeEntry{"Debit cards": *opts.AcceptsDebitCards})
		}
		if opts.AcceptsNfc != nil {
			payments = append(payments, models.AttributeEntry{"NFC mobile payments": *opts.AcceptsNfc})
		}
		info.Payments = payments
	}

	if place.Reservable != nil {
		info.Planning = []models.AttributeEntry{{"Accepts reservations": *place.Reservable}}
	}

	return info
}

func isTrue(flag *bool) bool {
	return flag != nil && *flag
}
