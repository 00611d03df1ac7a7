package availability

import (
	"context"
	"time"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/internal/integrations/simplybook"
)

// Source produces the candidate slot grid for one month. Implementations must
// return entries only for days that have at least one candidate slot and must
// tolerate partial per-day data by omitting the day, never by returning an
// error entry. serviceID and providerID qualify the query for live sources;
// the generated source ignores them.
type Source interface {
	Month(ctx context.Context, serviceID, providerID string, year int, month time.Month) ([]domain.DayAvailability, error)
}

// SchedulingClient is the subset of the scheduling system used by the live
// source.
type SchedulingClient interface {
	GetServices(ctx context.Context) ([]simplybook.Service, error)
	GetProviders(ctx context.Context, serviceID string) ([]simplybook.Provider, error)
	GetDailyAvailability(ctx context.Context, serviceID, providerID, startDate, endDate string) (map[string]bool, error)
	GetFreeTime(ctx context.Context, serviceID, providerID, date string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
