package simplybook

import (
	"context"
	"fmt"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

// BookingTransport submits booking requests directly into the scheduling
// system instead of the mail relay. Used when the studio runs fully on live
// scheduling.
type BookingTransport struct {
	client *Client
	log    Logger
}

// NewBookingTransport creates the live-booking submission transport.
func NewBookingTransport(client *Client, log Logger) *BookingTransport {
	return &BookingTransport{
		client: client,
		log:    log,
	}
}

// Submit creates the booking in the scheduling system. When the form carries
// no provider, the first provider offering the service takes the booking.
func (t *BookingTransport) Submit(ctx context.Context, booking *domain.BookingRequest) error {
	providerID := booking.ProviderID
	if providerID == "" {
		providers, err := t.client.GetProviders(ctx, booking.Service)
		if err != nil {
			return fmt.Errorf("Submit: failed to resolve provider: %w", err)
		}
		if len(providers) == 0 {
			return fmt.Errorf("Submit: no provider available for service %s", booking.Service)
		}
		providerID = providers[0].ID
	}

	created, err := t.client.CreateBooking(ctx, &CreateBookingRequest{
		ServiceID:   booking.Service,
		ProviderID:  providerID,
		DateTime:    fmt.Sprintf("%s %02d:00", booking.Date, booking.Time.Hour()),
		ClientName:  booking.Name,
		ClientEmail: booking.Email,
		ClientPhone: booking.Phone,
		Additional: map[string]string{
			"hours":           booking.Hours,
			"message":         booking.Message,
			"referral_source": string(booking.ReferralSource),
			"reference_code":  booking.ReferenceCode,
		},
	})
	if err != nil {
		return fmt.Errorf("Submit: failed to create booking: %w", err)
	}

	t.log.Info("Submit: booking %s created for %s", created.ID, created.StartDateTime)
	return nil
}
