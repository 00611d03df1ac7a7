package quote_price

import "errors"

var (
	// ErrServiceNotFound is returned when the service id is not in the catalog
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")
)
