package calendarfeed

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

// dtstartPattern captures the 8-digit date and 2-digit start hour from an
// iCalendar DTSTART line, with or without parameters such as TZID.
var dtstartPattern = regexp.MustCompile(`^DTSTART[^:]*:(\d{8})T(\d{2})`)

type parserState int

const (
	stateOutsideEvent parserState = iota
	stateInsideEvent
)

// Parse scans an iCalendar feed body and extracts one booked marker per
// complete VEVENT. The parser is forgiving by contract: events missing either
// the date or the start hour are dropped, never reported as errors, and lines
// in any other form are ignored. The two-state machine makes the
// partial-event-drop rule an explicit transition.
func Parse(feed string) []domain.BookedMarker {
	markers := make([]domain.BookedMarker, 0)

	state := stateOutsideEvent
	var date domain.Date
	var startHour types.HourString
	var haveDate, haveHour bool

	reset := func() {
		date, startHour = "", ""
		haveDate, haveHour = false, false
	}

	scanner := bufio.NewScanner(strings.NewReader(feed))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch state {
		case stateOutsideEvent:
			if line == "BEGIN:VEVENT" {
				reset()
				state = stateInsideEvent
			}

		case stateInsideEvent:
			switch {
			case line == "END:VEVENT":
				if haveDate && haveHour {
					markers = append(markers, domain.BookedMarker{Date: date, StartHour: startHour})
				}
				state = stateOutsideEvent

			case line == "BEGIN:VEVENT":
				// Unterminated previous event; drop it and start over.
				reset()

			case strings.HasPrefix(line, "DTSTART"):
				if m := dtstartPattern.FindStringSubmatch(line); m != nil {
					date = normalizeDate(m[1])
					startHour = normalizeHour(m[2])
					haveDate, haveHour = true, true
				}
			}
		}
	}

	return markers
}

// normalizeDate converts YYYYMMDD to YYYY-MM-DD.
func normalizeDate(yyyymmdd string) domain.Date {
	return domain.Date(fmt.Sprintf("%s-%s-%s", yyyymmdd[0:4], yyyymmdd[4:6], yyyymmdd[6:8]))
}

// normalizeHour converts a zero-padded hour to the "H:00" label form.
func normalizeHour(hh string) types.HourString {
	hour, _ := strconv.Atoi(hh)
	return types.NewHourString(hour)
}
