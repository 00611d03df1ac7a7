package mailrelay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking() *domain.BookingRequest {
	return &domain.BookingRequest{
		Name:           "Ada",
		Email:          "ada@example.com",
		Phone:          "07000000000",
		Service:        "recording",
		Hours:          "4",
		Date:           "2026-06-01",
		Time:           "18:00",
		ReferralSource: domain.ReferralGoogleSearch,
	}
}

func TestJSONClient_Submit(t *testing.T) {
	var got submissionPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewJSONClient(srv.URL, 0, nopLogger{})

	require.NoError(t, client.Submit(context.Background(), sampleBooking()))
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "2026-06-01", got.Date)
	assert.Equal(t, "18:00", got.Time)
}

func TestJSONClient_SubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewJSONClient(srv.URL, 0, nopLogger{})

	err := client.Submit(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrRejected)
}

func TestFormClient_Submit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Ada", r.PostForm.Get("name"))
		assert.Equal(t, "18:00", r.PostForm.Get("time"))
		// honeypot field travels empty for human submissions
		assert.Contains(t, r.PostForm, "website")
		assert.Equal(t, "", r.PostForm.Get("website"))
	}))
	defer srv.Close()

	client := NewFormClient(srv.URL, "website", 0, nopLogger{})

	require.NoError(t, client.Submit(context.Background(), sampleBooking()))
}

func TestFormClient_HoneypotAbandonsSilently(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := NewFormClient(srv.URL, "website", 0, nopLogger{})

	booking := sampleBooking()
	booking.Honeypot = "http://spam.example"

	// callers observe success, but nothing reaches the sink
	require.NoError(t, client.Submit(context.Background(), booking))
	assert.Equal(t, int32(0), calls.Load())
}
