package create_session

// SessionCreator starts new booking sessions.
type SessionCreator interface {
	Create() string
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
