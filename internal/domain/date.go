package domain

import (
	"fmt"
	"time"
)

// Date is a timezone-naive calendar date in YYYY-MM-DD form. Booking dates are
// compared as plain strings throughout the system; time.Time appears only at
// the edges (month arithmetic, feed timestamp normalization).
type Date string

// NewDate derives the calendar date of t.
func NewDate(t time.Time) Date {
	return Date(t.Format(DateFormat))
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// Time converts the date to a midnight time.Time in UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateFormat, string(d))
}

// Before reports whether d is an earlier calendar day than other.
// Lexicographic order on YYYY-MM-DD is chronological order.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

// InMonth reports whether the date falls in the given year and month.
func (d Date) InMonth(year int, month time.Month) bool {
	t, err := d.Time()
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	return string(d)
}
