package domain

import (
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

// BookingRequest is the final payload sent to the submission sink: the
// captured contact, service and slot details of one booking attempt.
type BookingRequest struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Hours   string // string-encoded integer, as captured from the form
	Message string

	Date Date
	Time types.HourString

	ReferralSource ReferralSource
	ReferenceCode  string

	// Honeypot carries the hidden anti-spam field rendered by legacy forms.
	// Humans leave it empty; a non-empty value marks the submission as spam.
	Honeypot string

	// ProviderID is set only when submitting to a live scheduling system.
	ProviderID string
}

// HasSlot reports whether both date and time were captured. A slot selection
// always sets both atomically, so one without the other is a bug upstream.
func (b *BookingRequest) HasSlot() bool {
	return b.Date != "" && b.Time != ""
}
