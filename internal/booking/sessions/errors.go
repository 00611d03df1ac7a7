package sessions

import "errors"

var (
	// ErrSessionNotFound is returned when the session id is unknown or the
	// session has been expired by the idle sweeper
	ErrSessionNotFound = errors.New("session not found")
)
