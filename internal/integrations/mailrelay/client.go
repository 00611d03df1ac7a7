package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// JSONClient submits booking requests to the mail-relay sink as a JSON POST.
// Any 2xx response is confirmation; everything else, including transport
// failures, is a failure the user may retry. The client never retries on its
// own.
type JSONClient struct {
	sinkURL    string
	httpClient *http.Client
	log        Logger
}

// NewJSONClient creates a JSON mail-relay client.
func NewJSONClient(sinkURL string, timeout time.Duration, log Logger) *JSONClient {
	return &JSONClient{
		sinkURL: sinkURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Submit sends the booking request to the sink.
func (c *JSONClient) Submit(ctx context.Context, booking *domain.BookingRequest) error {
	body, err := json.Marshal(toPayload(booking))
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sinkURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	c.log.Info("Submit: booking request relayed for %s on %s at %s", booking.Email, booking.Date, booking.Time)
	return nil
}

// FormClient is the legacy transport: it posts URL-encoded form data and
// carries a honeypot anti-spam field. When the honeypot value is non-empty the
// submission is silently abandoned with no network call, which callers observe
// as success.
type FormClient struct {
	sinkURL       string
	honeypotField string
	httpClient    *http.Client
	log           Logger
}

// NewFormClient creates a legacy form-encoded mail-relay client.
func NewFormClient(sinkURL, honeypotField string, timeout time.Duration, log Logger) *FormClient {
	return &FormClient{
		sinkURL:       sinkURL,
		honeypotField: honeypotField,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Submit sends the booking as form data, honoring the honeypot rule.
func (c *FormClient) Submit(ctx context.Context, booking *domain.BookingRequest) error {
	if strings.TrimSpace(booking.Honeypot) != "" {
		c.log.Warn("Submit: honeypot field %q filled, dropping submission silently", c.honeypotField)
		return nil
	}

	form := url.Values{}
	form.Set("name", booking.Name)
	form.Set("email", booking.Email)
	form.Set("phone", booking.Phone)
	form.Set("date", booking.Date.String())
	form.Set("time", booking.Time.String())
	form.Set("hours", booking.Hours)
	form.Set("service", booking.Service)
	form.Set("message", booking.Message)
	form.Set("referralSource", string(booking.ReferralSource))
	if booking.ReferenceCode != "" {
		form.Set("referenceCode", booking.ReferenceCode)
	}
	form.Set(c.honeypotField, "")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sinkURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	c.log.Info("Submit: booking request relayed for %s on %s at %s", booking.Email, booking.Date, booking.Time)
	return nil
}
