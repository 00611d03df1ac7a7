package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uncensored-studios/studio-booking-service/internal/booking"
	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	quotePrice "github.com/uncensored-studios/studio-booking-service/internal/usecase/quote_price"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type staticSource struct{}

func (staticSource) Month(context.Context, string, string, int, time.Month) ([]domain.DayAvailability, error) {
	return nil, nil
}

type staticFeed struct{}

func (staticFeed) FetchMarkers(context.Context) []domain.BookedMarker {
	return []domain.BookedMarker{}
}

type staticTransport struct{}

func (staticTransport) Submit(context.Context, *domain.BookingRequest) error { return nil }

func newFlow() *booking.Flow {
	quoter := quotePrice.NewUseCase(domain.DefaultCatalog, testLogger{})
	return booking.NewFlow(domain.DefaultCatalog, staticSource{}, staticFeed{}, quoter, staticTransport{}, testLogger{})
}

type recordingGauge struct{ last int }

func (g *recordingGauge) SetActiveSessions(n int) { g.last = n }

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour, newFlow, testLogger{}, nil)

	id := store.Create()
	require.NotEmpty(t, id)

	flow, err := store.Get(id)
	require.NoError(t, err)
	assert.NotNil(t, flow)

	// the same session always resolves to the same flow
	again, err := store.Get(id)
	require.NoError(t, err)
	assert.Same(t, flow, again)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore(time.Hour, newFlow, testLogger{}, nil)

	first, err := store.Get(store.Create())
	require.NoError(t, err)
	second, err := store.Get(store.Create())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestStore_GetUnknownSession(t *testing.T) {
	store := NewStore(time.Hour, newFlow, testLogger{}, nil)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour, newFlow, testLogger{}, nil)

	id := store.Create()
	store.Delete(id)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Count())
}

func TestStore_SweepExpiresIdleSessions(t *testing.T) {
	store := NewStore(10*time.Millisecond, newFlow, testLogger{}, nil)

	stale := store.Create()
	time.Sleep(30 * time.Millisecond)
	fresh := store.Create()

	store.sweep()

	_, err := store.Get(stale)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(fresh)
	assert.NoError(t, err)
}

func TestStore_GaugeTracksCount(t *testing.T) {
	gauge := &recordingGauge{}
	store := NewStore(time.Hour, newFlow, testLogger{}, gauge)

	id := store.Create()
	assert.Equal(t, 1, gauge.last)

	store.Create()
	assert.Equal(t, 2, gauge.last)

	store.Delete(id)
	assert.Equal(t, 1, gauge.last)
}
