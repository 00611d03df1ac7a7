package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default studio opening policy used by the generated availability source.
// Start hours run 09:00-21:00 inclusive, one-hour slots, weekdays only.
const (
	DefaultOpenHour      = 9
	DefaultLastStartHour = 21
	DefaultPeakStartHour = 18

	DefaultOffPeakHourlyPrice = 20.0
	DefaultPeakHourlyPrice    = 25.0
)

// Session length rules
const (
	MinSessionHours     = 2
	FullDaySessionHours = 8
)

// Form defaults applied on session creation and after a successful submission
const (
	DefaultServiceID = "dry-hire"
	DefaultHours     = "2"
)

// Business validation constants
const (
	MaxMessageLength       = 2000
	MaxReferenceCodeLength = 32
)
