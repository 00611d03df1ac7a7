package calendarfeed

import "errors"

var (
	// ErrFetch is returned when the feed could not be retrieved
	ErrFetch = errors.New("calendarfeed client: failed to fetch feed")

	// ErrUnexpectedStatus is returned on a non-200 response from the feed host
	ErrUnexpectedStatus = errors.New("calendarfeed client: unexpected status code")
)
