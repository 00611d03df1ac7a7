package get_day_slots

import (
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
)

// FlowStore resolves a session id to its booking flow.
type FlowStore interface {
	Get(id string) (*booking.Flow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
