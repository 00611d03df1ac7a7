package select_slot

import (
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// SelectSlotResponse HTTP response model
type SelectSlotResponse struct {
	Step         string `json:"step"`
	SelectedDate string `json:"selectedDate"`
	SelectedTime string `json:"selectedTime"`
}

// FromSnapshot converts the flow snapshot into the HTTP response.
func FromSnapshot(snap booking.Snapshot) *SelectSlotResponse {
	return &SelectSlotResponse{
		Step:         string(snap.Step),
		SelectedDate: snap.SelectedDate.String(),
		SelectedTime: snap.SelectedTime.String(),
	}
}
