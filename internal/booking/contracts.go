package booking

import (
	"context"
	"time"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	quotePrice "github.com/uncensored-studios/studio-booking-service/internal/usecase/quote_price"
)

// AvailabilitySource produces one month's candidate slot grid. The flow calls
// it at most once per month-navigation action.
type AvailabilitySource interface {
	Month(ctx context.Context, serviceID, providerID string, year int, month time.Month) ([]domain.DayAvailability, error)
}

// MarkerSource produces the booked markers from the published calendar feed.
// It never fails: feed problems degrade to an empty marker set.
type MarkerSource interface {
	FetchMarkers(ctx context.Context) []domain.BookedMarker
}

// Quoter computes price quotes.
type Quoter interface {
	Execute(req *quotePrice.Request) (*quotePrice.Response, error)
}

// Transport delivers the final booking request to the configured sink. It
// performs no retries; retry is always an explicit user action.
type Transport interface {
	Submit(ctx context.Context, booking *domain.BookingRequest) error
}

// TimeProvider supplies the current time (swappable for tests).
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
