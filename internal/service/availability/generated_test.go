package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

func TestGeneratedSource_WeekdaysOnly(t *testing.T) {
	source := NewGeneratedSource(DefaultOpeningPolicy())

	// June 2026: 30 days, 8 weekend days
	days, err := source.Month(context.Background(), "", "", 2026, time.June)
	require.NoError(t, err)
	assert.Len(t, days, 22)

	for _, day := range days {
		ts, err := day.Date.Time()
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, ts.Weekday())
		assert.NotEqual(t, time.Sunday, ts.Weekday())
	}
}

func TestGeneratedSource_SlotGridAndPeakPricing(t *testing.T) {
	source := NewGeneratedSource(DefaultOpeningPolicy())

	days, err := source.Month(context.Background(), "", "", 2026, time.June)
	require.NoError(t, err)
	require.NotEmpty(t, days)

	slots := days[0].Slots
	// start hours 9 through 21 inclusive
	require.Len(t, slots, 13)
	assert.Equal(t, types.HourString("9:00"), slots[0].Time)
	assert.Equal(t, types.HourString("21:00"), slots[len(slots)-1].Time)

	for _, slot := range slots {
		assert.Equal(t, 1, slot.DurationHours)
		if slot.Time.Hour() >= domain.DefaultPeakStartHour {
			assert.Equal(t, float64(domain.DefaultPeakHourlyPrice), slot.Price)
		} else {
			assert.Equal(t, float64(domain.DefaultOffPeakHourlyPrice), slot.Price)
		}
	}
}

func TestGeneratedSource_Deterministic(t *testing.T) {
	source := NewGeneratedSource(DefaultOpeningPolicy())

	first, err := source.Month(context.Background(), "", "", 2026, time.July)
	require.NoError(t, err)
	second, err := source.Month(context.Background(), "", "", 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
