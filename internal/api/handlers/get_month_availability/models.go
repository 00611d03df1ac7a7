package get_month_availability

import (
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	Year    int        `json:"year"`
	Month   int        `json:"month"`
	Loading bool       `json:"loading"`
	Error   string     `json:"error,omitempty"`
	Days    []DayModel `json:"days"`
}

// DayModel is one calendar day's selection state.
type DayModel struct {
	Date       string `json:"date"`
	State      string `json:"state"`
	Selectable bool   `json:"selectable"`
	FreeSlots  int    `json:"freeSlots"`
}

// FromMonthView converts a flow month view into the HTTP response.
func FromMonthView(view booking.MonthView) *MonthAvailabilityResponse {
	days := make([]DayModel, len(view.Days))
	for i, day := range view.Days {
		days[i] = DayModel{
			Date:       day.Date.String(),
			State:      string(day.State),
			Selectable: day.State.Selectable(),
			FreeSlots:  day.FreeSlots,
		}
	}

	return &MonthAvailabilityResponse{
		Year:    view.Month.Year,
		Month:   int(view.Month.Month),
		Loading: view.Loading,
		Error:   view.Error,
		Days:    days,
	}
}

// monthDelta returns the signed month distance from one month to another.
func monthDelta(from, to booking.MonthRef) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
}
