package domain

import (
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

// TimeSlot is a candidate one-hour booking interval on some day, with its
// listed hourly price. Immutable once produced by an availability source.
type TimeSlot struct {
	Time          types.HourString
	DurationHours int
	Price         float64
	Available     bool
}

// DayAvailability is the ordered candidate slot set for one calendar day.
// Absence of an entry for a date means "no data / no slots", which is a
// different state from "fully booked" (see DayStateFor).
type DayAvailability struct {
	Date  Date
	Slots []TimeSlot
}

// HasCandidates reports whether the day produced at least one candidate slot.
func (d *DayAvailability) HasCandidates() bool {
	return len(d.Slots) > 0
}

// BookedMarker is an externally sourced record that an hour on a date is
// already reserved. Markers are used purely for exclusion; they never carry
// who booked the slot.
type BookedMarker struct {
	Date      Date
	StartHour types.HourString
}
