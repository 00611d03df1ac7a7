package availability

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

// LiveSource answers month queries from the live scheduling system: one
// daily-available range query for the month, then a free-time query per open
// day. Days whose per-day query fails are omitted rather than failing the
// whole month.
type LiveSource struct {
	client SchedulingClient
	log    Logger

	mu     sync.Mutex
	prices map[string]float64 // service id -> hourly price, cached per process
}

// NewLiveSource creates the scheduling-system-backed availability source.
func NewLiveSource(client SchedulingClient, log Logger) *LiveSource {
	return &LiveSource{
		client: client,
		log:    log,
	}
}

// Month fetches the candidate grid for the month from the scheduling system.
func (s *LiveSource) Month(ctx context.Context, serviceID, providerID string, year int, month time.Month) ([]domain.DayAvailability, error) {
	providerID, err := s.resolveProvider(ctx, serviceID, providerID)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	startDate := first.Format(domain.DateFormat)
	endDate := last.Format(domain.DateFormat)

	flags, err := s.client.GetDailyAvailability(ctx, serviceID, providerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: daily availability for %s/%s: %v", ErrFetchAvailability, serviceID, providerID, err)
	}

	price := s.hourlyPrice(ctx, serviceID)

	days := make([]domain.DayAvailability, 0, len(flags))
	for dateStr, open := range flags {
		if !open {
			continue
		}

		date, err := domain.ParseDate(dateStr)
		if err != nil || !date.InMonth(year, month) {
			continue
		}

		freeTimes, err := s.client.GetFreeTime(ctx, serviceID, providerID, dateStr)
		if err != nil {
			// Partial data: skip the day, keep the month.
			s.log.Warn("Month: free-time query failed for %s, omitting day: %v", dateStr, err)
			continue
		}

		slots := make([]domain.TimeSlot, 0, len(freeTimes))
		for _, t := range freeTimes {
			label, err := types.ParseHourString(t)
			if err != nil {
				continue
			}
			slots = append(slots, domain.TimeSlot{
				Time:          label,
				DurationHours: 1,
				Price:         price,
				Available:     true,
			})
		}

		if len(slots) == 0 {
			continue
		}

		sort.Slice(slots, func(i, j int) bool {
			return slots[i].Time.Before(slots[j].Time)
		})

		days = append(days, domain.DayAvailability{Date: date, Slots: slots})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days, nil
}

// resolveProvider falls back to the first provider listed for the service
// when none was chosen yet.
func (s *LiveSource) resolveProvider(ctx context.Context, serviceID, providerID string) (string, error) {
	if providerID != "" {
		return providerID, nil
	}

	providers, err := s.client.GetProviders(ctx, serviceID)
	if err != nil {
		return "", fmt.Errorf("%w: list providers for %s: %v", ErrFetchAvailability, serviceID, err)
	}
	if len(providers) == 0 {
		return "", fmt.Errorf("%w: service %s", ErrNoProvider, serviceID)
	}
	return providers[0].ID, nil
}

// hourlyPrice looks up the listed price of the service, caching the catalog
// after the first successful fetch. A lookup failure degrades to a zero price
// on the slot rather than failing the month query.
func (s *LiveSource) hourlyPrice(ctx context.Context, serviceID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prices == nil {
		services, err := s.client.GetServices(ctx)
		if err != nil {
			s.log.Warn("hourlyPrice: service catalog unavailable, listing slots without prices: %v", err)
			return 0
		}
		s.prices = make(map[string]float64, len(services))
		for _, svc := range services {
			s.prices[svc.ID] = svc.Price
		}
	}

	return s.prices[serviceID]
}
