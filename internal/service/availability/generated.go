package availability

import (
	"context"
	"time"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

// OpeningPolicy describes the studio opening hours used to generate candidate
// slots when no live scheduling system is wired.
type OpeningPolicy struct {
	OpenHour      int // first bookable start hour
	LastStartHour int // last bookable start hour, inclusive
	PeakStartHour int // start hours at or after this carry the peak price
	OffPeakPrice  float64
	PeakPrice     float64
}

// DefaultOpeningPolicy mirrors the studio's published hours.
func DefaultOpeningPolicy() OpeningPolicy {
	return OpeningPolicy{
		OpenHour:      domain.DefaultOpenHour,
		LastStartHour: domain.DefaultLastStartHour,
		PeakStartHour: domain.DefaultPeakStartHour,
		OffPeakPrice:  domain.DefaultOffPeakHourlyPrice,
		PeakPrice:     domain.DefaultPeakHourlyPrice,
	}
}

// GeneratedSource deterministically produces candidate slots for business days
// within the opening hours: one-hour slots on every weekday, peak-priced from
// the evening onward. Weekend days are omitted entirely.
type GeneratedSource struct {
	policy OpeningPolicy
}

// NewGeneratedSource creates the standalone availability source.
func NewGeneratedSource(policy OpeningPolicy) *GeneratedSource {
	return &GeneratedSource{policy: policy}
}

// Month generates the full candidate grid for the month. serviceID and
// providerID are ignored: the generated policy is the same for every service.
func (s *GeneratedSource) Month(_ context.Context, _, _ string, year int, month time.Month) ([]domain.DayAvailability, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]domain.DayAvailability, 0, daysInMonth)
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}

		slots := make([]domain.TimeSlot, 0, s.policy.LastStartHour-s.policy.OpenHour+1)
		for hour := s.policy.OpenHour; hour <= s.policy.LastStartHour; hour++ {
			price := s.policy.OffPeakPrice
			if hour >= s.policy.PeakStartHour {
				price = s.policy.PeakPrice
			}
			slots = append(slots, domain.TimeSlot{
				Time:          types.NewHourString(hour),
				DurationHours: 1,
				Price:         price,
				Available:     true,
			})
		}

		days = append(days, domain.DayAvailability{
			Date:  domain.NewDate(date),
			Slots: slots,
		})
	}

	return days, nil
}
