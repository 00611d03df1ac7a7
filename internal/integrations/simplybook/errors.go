package simplybook

import "errors"

var (
	// ErrAuthFailed is returned when authentication against the scheduling
	// system fails, including after the single transparent re-auth attempt
	ErrAuthFailed = errors.New("simplybook client: authentication failed")

	// ErrBookingNotFound is returned when a booking id is unknown upstream
	ErrBookingNotFound = errors.New("simplybook client: booking not found")

	// ErrInternal is returned on request construction or transport failures
	ErrInternal = errors.New("simplybook client: internal error")

	// ErrInvalidResponse is returned on an unexpected status or undecodable body
	ErrInvalidResponse = errors.New("simplybook client: invalid response")
)
