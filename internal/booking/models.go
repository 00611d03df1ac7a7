package booking

import (
	"time"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

// Step is the user-facing stage of the booking flow.
type Step string

const (
	StepIdle             Step = "idle"
	StepBrowsingCalendar Step = "browsing_calendar"
	StepViewingSlots     Step = "viewing_slots"
	StepSlotChosen       Step = "slot_chosen"
	StepSubmitting       Step = "submitting"
	StepConfirmed        Step = "confirmed"
)

// FormFields is the mutable field set captured from the visitor. Date and
// time are not here: they are set only through slot selection, always
// together.
type FormFields struct {
	Name           string
	Email          string
	Phone          string
	Service        string
	Hours          string // string-encoded integer, as the form captures it
	Message        string
	ReferralSource domain.ReferralSource
	ReferenceCode  string
	Honeypot       string
	ProviderID     string // live scheduling mode only
}

// defaultFields returns the initial form state of a fresh booking attempt.
func defaultFields() FormFields {
	return FormFields{
		Service: domain.DefaultServiceID,
		Hours:   domain.DefaultHours,
	}
}

// FieldPatch is a partial update to the form fields; nil members are left
// unchanged.
type FieldPatch struct {
	Name           *string
	Email          *string
	Phone          *string
	Service        *string
	Hours          *string
	Message        *string
	ReferralSource *string
	ReferenceCode  *string
	Honeypot       *string
	ProviderID     *string
}

// MonthRef identifies a calendar month.
type MonthRef struct {
	Year  int
	Month time.Month
}

// add returns the month delta months away.
func (m MonthRef) add(delta int) MonthRef {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return MonthRef{Year: t.Year(), Month: t.Month()}
}

// DayView is the reconciled selection state of one calendar day.
type DayView struct {
	Date      domain.Date
	State     domain.DayState
	FreeSlots int
}

// MonthView is what the calendar renders for the current month. While either
// the availability fetch or the feed fetch is outstanding, Loading is true
// and Days is empty: free-slot counts are never rendered from only one of the
// two sources.
type MonthView struct {
	Month   MonthRef
	Loading bool
	Error   string // non-fatal fetch failure, empty otherwise
	Days    []DayView
}

// Snapshot is the externally visible state of the flow.
type Snapshot struct {
	Step         Step
	Fields       FormFields
	SelectedDate domain.Date
	SelectedTime types.HourString
}
