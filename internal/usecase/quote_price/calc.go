package quote_price

import (
	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

// Tiered pricing rules. Values are GBP.
const (
	recordingFullDayPrice  = 220.0 // recording sessions of 8+ hours, flat
	recordingDiscountRate  = 35.0  // hourly rate for 4-7 hour recording sessions
	hireFullDayPrice       = 150.0 // dry-hire and DJ practice at 8+ hours, flat
	discountTierFloorHours = 4
	discountTierCeilHours  = 7
)

// servicesWithHireCap are the hourly services that flatten to the full-day
// hire price at 8+ hours.
var servicesWithHireCap = map[string]bool{
	"dry-hire":    true,
	"dj-practice": true,
}

// quoteFor computes the price for a service and session length. Pure: same
// inputs always yield the same output. hours is assumed to be one of the
// allowed duration options; the minimum-length rule is enforced by the form
// layer, not here.
func quoteFor(service *domain.Service, hours int) (price float64, discounted bool) {
	if service.PerTrack {
		return service.BasePrice, false
	}

	hourlyRate := service.BasePrice

	switch {
	case service.ID == "recording":
		if hours >= domain.FullDaySessionHours {
			return recordingFullDayPrice, false
		}
		if hours >= discountTierFloorHours && hours <= discountTierCeilHours {
			return recordingDiscountRate * float64(hours), true
		}

	case servicesWithHireCap[service.ID]:
		if hours >= domain.FullDaySessionHours {
			return hireFullDayPrice, false
		}
	}

	return hourlyRate * float64(hours), false
}
