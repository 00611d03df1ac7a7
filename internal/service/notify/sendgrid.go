package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config holds the SendGrid sender settings.
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
	ToEmail   string
}

// SendGridTransport emails booking requests to the studio inbox directly via
// SendGrid, the in-process equivalent of the hosted mail-relay function.
type SendGridTransport struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	toEmail   string
	log       Logger
}

// NewSendGridTransport creates the transport.
func NewSendGridTransport(cfg Config, log Logger) *SendGridTransport {
	fromName := cfg.FromName
	if fromName == "" {
		fromName = "Booking Request"
	}

	return &SendGridTransport{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  fromName,
		toEmail:   cfg.ToEmail,
		log:       log,
	}
}

// Submit composes and sends the booking-request email. Any SendGrid error or
// non-2xx response is a submission failure; there are no automatic retries.
func (t *SendGridTransport) Submit(ctx context.Context, booking *domain.BookingRequest) error {
	from := mail.NewEmail(t.fromName, t.fromEmail)
	to := mail.NewEmail("", t.toEmail)
	subject := fmt.Sprintf("New Booking: %s", booking.Name)
	body := composeBody(booking)

	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := t.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrSendFailed, resp.StatusCode)
	}

	t.log.Info("Submit: booking email sent for %s on %s at %s", booking.Email, booking.Date, booking.Time)
	return nil
}

func composeBody(b *domain.BookingRequest) string {
	message := b.Message
	if message == "" {
		message = "N/A"
	}

	body := fmt.Sprintf(`Booking Request:

Name: %s
Email: %s
Phone: %s
Date: %s
Time: %s
Hours: %s
Service: %s
Message: %s
Referral source: %s
`, b.Name, b.Email, b.Phone, b.Date, b.Time, b.Hours, b.Service, message, b.ReferralSource)

	if b.ReferenceCode != "" {
		body += fmt.Sprintf("Reference code: %s\n", b.ReferenceCode)
	}
	return body
}
