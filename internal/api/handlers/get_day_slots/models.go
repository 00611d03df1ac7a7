package get_day_slots

import (
	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date  string      `json:"date"`
	Slots []SlotModel `json:"slots"`
}

// SlotModel is one free one-hour slot.
type SlotModel struct {
	Time          string  `json:"time"`
	DurationHours int     `json:"durationHours"`
	Price         float64 `json:"price"`
}

// FromSlots converts the reconciled free slots into the HTTP response.
func FromSlots(date domain.Date, slots []domain.TimeSlot) *DaySlotsResponse {
	models := make([]SlotModel, len(slots))
	for i, slot := range slots {
		models[i] = SlotModel{
			Time:          slot.Time.String(),
			DurationHours: slot.DurationHours,
			Price:         slot.Price,
		}
	}

	return &DaySlotsResponse{
		Date:  date.String(),
		Slots: models,
	}
}
