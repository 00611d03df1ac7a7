package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

func TestComposeBody(t *testing.T) {
	body := composeBody(&domain.BookingRequest{
		Name:           "Ada",
		Email:          "ada@example.com",
		Phone:          "07000000000",
		Service:        "recording",
		Hours:          "4",
		Message:        "Bringing my own mics",
		Date:           "2026-06-01",
		Time:           "18:00",
		ReferralSource: domain.ReferralGoogleSearch,
	})

	assert.Contains(t, body, "Name: Ada")
	assert.Contains(t, body, "Date: 2026-06-01")
	assert.Contains(t, body, "Time: 18:00")
	assert.Contains(t, body, "Message: Bringing my own mics")
	assert.NotContains(t, body, "Reference code")
}

func TestComposeBody_EmptyMessageAndReferenceCode(t *testing.T) {
	body := composeBody(&domain.BookingRequest{
		Name:           "Ada",
		ReferralSource: domain.ReferralReferenceCode,
		ReferenceCode:  "STUDIO50",
	})

	assert.Contains(t, body, "Message: N/A")
	assert.True(t, strings.HasSuffix(body, "Reference code: STUDIO50\n"))
}

func TestNewSendGridTransport_DefaultFromName(t *testing.T) {
	transport := NewSendGridTransport(Config{APIKey: "key", FromEmail: "from@example.com"}, nil)
	assert.Equal(t, "Booking Request", transport.fromName)
}
