package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/internal/integrations/simplybook"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubScheduling struct {
	services  []simplybook.Service
	providers []simplybook.Provider
	daily     map[string]bool
	freeTime  map[string][]string // date -> times
	freeErrs  map[string]error    // date -> error
	dailyErr  error
}

func (s *stubScheduling) GetServices(context.Context) ([]simplybook.Service, error) {
	return s.services, nil
}

func (s *stubScheduling) GetProviders(context.Context, string) ([]simplybook.Provider, error) {
	return s.providers, nil
}

func (s *stubScheduling) GetDailyAvailability(_ context.Context, _, _, _, _ string) (map[string]bool, error) {
	if s.dailyErr != nil {
		return nil, s.dailyErr
	}
	return s.daily, nil
}

func (s *stubScheduling) GetFreeTime(_ context.Context, _, _, date string) ([]string, error) {
	if err := s.freeErrs[date]; err != nil {
		return nil, err
	}
	return s.freeTime[date], nil
}

func TestLiveSource_Month(t *testing.T) {
	client := &stubScheduling{
		services:  []simplybook.Service{{ID: "recording", Price: 40}},
		providers: []simplybook.Provider{{ID: "p1", Name: "Room A"}},
		daily: map[string]bool{
			"2026-07-01": true,
			"2026-07-02": false,
			"2026-07-03": true,
		},
		freeTime: map[string][]string{
			"2026-07-01": {"10:00", "09:00"},
			"2026-07-03": {"18:00"},
		},
	}
	source := NewLiveSource(client, nopLogger{})

	days, err := source.Month(context.Background(), "recording", "", 2026, time.July)
	require.NoError(t, err)
	require.Len(t, days, 2)

	// days and slots come back sorted, closed days omitted
	assert.Equal(t, domain.Date("2026-07-01"), days[0].Date)
	require.Len(t, days[0].Slots, 2)
	assert.Equal(t, types.HourString("9:00"), days[0].Slots[0].Time)
	assert.Equal(t, types.HourString("10:00"), days[0].Slots[1].Time)
	assert.Equal(t, 40.0, days[0].Slots[0].Price)

	assert.Equal(t, domain.Date("2026-07-03"), days[1].Date)
}

func TestLiveSource_PerDayFailureOmitsDay(t *testing.T) {
	client := &stubScheduling{
		providers: []simplybook.Provider{{ID: "p1"}},
		daily: map[string]bool{
			"2026-07-01": true,
			"2026-07-03": true,
		},
		freeTime: map[string][]string{"2026-07-03": {"12:00"}},
		freeErrs: map[string]error{"2026-07-01": errors.New("timeout")},
	}
	source := NewLiveSource(client, nopLogger{})

	days, err := source.Month(context.Background(), "recording", "p1", 2026, time.July)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, domain.Date("2026-07-03"), days[0].Date)
}

func TestLiveSource_MonthFetchFailure(t *testing.T) {
	client := &stubScheduling{
		providers: []simplybook.Provider{{ID: "p1"}},
		dailyErr:  errors.New("unreachable"),
	}
	source := NewLiveSource(client, nopLogger{})

	_, err := source.Month(context.Background(), "recording", "p1", 2026, time.July)
	assert.ErrorIs(t, err, ErrFetchAvailability)
}

func TestLiveSource_NoProvider(t *testing.T) {
	source := NewLiveSource(&stubScheduling{}, nopLogger{})

	_, err := source.Month(context.Background(), "recording", "", 2026, time.July)
	assert.ErrorIs(t, err, ErrNoProvider)
}
