package booking

import "errors"

var (
	// ErrMissingSlot is returned when submission is attempted without a
	// selected date and time
	ErrMissingSlot = errors.New("date and time slot must be selected")

	// ErrMissingContactField is returned when a required contact field is empty
	ErrMissingContactField = errors.New("required contact field is missing")

	// ErrMissingReferralSource is returned when no referral source was chosen
	ErrMissingReferralSource = errors.New("referral source is required")

	// ErrMissingReferenceCode is returned when the reference-code referral
	// source was chosen without a code
	ErrMissingReferenceCode = errors.New("reference code is required")

	// ErrInvalidHours is returned when the session length is not a bookable
	// duration option
	ErrInvalidHours = errors.New("invalid session length")

	// ErrFieldTooLong is returned when a free-text field exceeds its limit
	ErrFieldTooLong = errors.New("field exceeds maximum length")

	// ErrServiceNotFound is returned when the form names an unknown service
	ErrServiceNotFound = errors.New("service not found")

	// ErrDayNotSelectable is returned when a past, empty or fully booked day
	// is selected; the flow state is unchanged
	ErrDayNotSelectable = errors.New("day is not selectable")

	// ErrSlotNotFree is returned when the chosen slot is not in the free set
	ErrSlotNotFree = errors.New("slot is not free")

	// ErrAvailabilityNotReady is returned when day or slot data is requested
	// before both the availability fetch and the feed fetch have settled
	ErrAvailabilityNotReady = errors.New("availability is still loading")

	// ErrSubmissionInFlight is returned when a submission is attempted while
	// one is already outstanding
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// ErrSubmitFailed wraps transport failures; the form state is preserved
	// so the user can retry without re-entering data
	ErrSubmitFailed = errors.New("booking submission failed")

	// ErrInvalidTransition is returned for operations not valid in the
	// current step
	ErrInvalidTransition = errors.New("operation not valid in current step")
)
