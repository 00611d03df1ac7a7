package domain

import (
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

// DayState classifies a calendar day for selection purposes. DayNoData and
// DayFullyBooked both disable the day but are distinct states: one means the
// availability source produced nothing, the other means every candidate slot
// matched a booked marker.
type DayState string

const (
	DayOpen        DayState = "open"
	DayNoData      DayState = "no_data"
	DayFullyBooked DayState = "fully_booked"
	DayPast        DayState = "past"
)

// Selectable reports whether a user may pick a day in this state.
func (s DayState) Selectable() bool {
	return s == DayOpen
}

// FreeSlots returns the subset of the day's slots not excluded by a booked
// marker. A slot is excluded iff a marker exists with exactly matching date
// and time label; there is no fuzzy matching.
func FreeSlots(day DayAvailability, markers []BookedMarker) []TimeSlot {
	free := make([]TimeSlot, 0, len(day.Slots))
	for _, slot := range day.Slots {
		if !slotIsBooked(day.Date, slot.Time, markers) {
			free = append(free, slot)
		}
	}
	return free
}

// DayStateFor reconciles one day's availability against the booked markers.
// day may be nil when the availability source produced no entry for the date.
func DayStateFor(date Date, day *DayAvailability, markers []BookedMarker, today Date) DayState {
	if date.Before(today) {
		return DayPast
	}

	if day == nil || !day.HasCandidates() {
		return DayNoData
	}

	if len(FreeSlots(*day, markers)) == 0 {
		return DayFullyBooked
	}

	return DayOpen
}

func slotIsBooked(date Date, slotTime types.HourString, markers []BookedMarker) bool {
	for _, m := range markers {
		if m.Date == date && m.StartHour == slotTime {
			return true
		}
	}
	return false
}
