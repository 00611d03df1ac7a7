package calendarfeed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

func TestParse_CompleteEvents(t *testing.T) {
	feed := "BEGIN:VCALENDAR\r\n" +
		"BEGIN:VEVENT\r\n" +
		"SUMMARY:Booked\r\n" +
		"DTSTART:20260115T090000Z\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"DTSTART;TZID=Europe/London:20260116T180000\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	markers := Parse(feed)

	assert.Equal(t, []domain.BookedMarker{
		{Date: domain.Date("2026-01-15"), StartHour: types.HourString("9:00")},
		{Date: domain.Date("2026-01-16"), StartHour: types.HourString("18:00")},
	}, markers)
}

func TestParse_PartialEventDropped(t *testing.T) {
	feed := "BEGIN:VEVENT\n" +
		"SUMMARY:No start time\n" +
		"END:VEVENT\n" +
		"BEGIN:VEVENT\n" +
		"DTSTART:20260201T100000Z\n" +
		"END:VEVENT\n"

	markers := Parse(feed)

	assert.Len(t, markers, 1)
	assert.Equal(t, domain.Date("2026-02-01"), markers[0].Date)
}

func TestParse_UnterminatedEventDropped(t *testing.T) {
	feed := "BEGIN:VEVENT\n" +
		"DTSTART:20260201T100000Z\n" +
		"BEGIN:VEVENT\n" +
		"DTSTART:20260202T110000Z\n" +
		"END:VEVENT\n"

	markers := Parse(feed)

	assert.Equal(t, []domain.BookedMarker{
		{Date: domain.Date("2026-02-02"), StartHour: types.HourString("11:00")},
	}, markers)
}

func TestParse_DtstartOutsideEventIgnored(t *testing.T) {
	feed := "DTSTART:20260201T100000Z\n"

	assert.Empty(t, Parse(feed))
}

func TestParse_HourLabelHasNoLeadingZero(t *testing.T) {
	feed := "BEGIN:VEVENT\nDTSTART:20260301T090000Z\nEND:VEVENT\n"

	markers := Parse(feed)

	assert.Len(t, markers, 1)
	assert.Equal(t, types.HourString("9:00"), markers[0].StartHour)
}

func TestParse_EmptyFeed(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParse_MalformedDtstartDropsEvent(t *testing.T) {
	feed := "BEGIN:VEVENT\nDTSTART:tomorrow-ish\nEND:VEVENT\n"

	assert.Empty(t, Parse(feed))
}
