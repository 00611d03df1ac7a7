package availability

import "errors"

var (
	// ErrFetchAvailability is returned when a month query against the live
	// scheduling system fails outright
	ErrFetchAvailability = errors.New("availability: failed to fetch month availability")

	// ErrNoProvider is returned when the live source cannot resolve a provider
	// for the selected service
	ErrNoProvider = errors.New("availability: no provider available for service")
)
