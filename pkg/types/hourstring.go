package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHourString is returned when a string is not a valid "H:00" label
	ErrInvalidHourString = errors.New("invalid hour string format")
)

// HourString is a timezone-naive start-of-hour label such as "9:00" or "18:00".
// Hours carry no leading zero; minutes are always "00". Labels compare for
// equality as plain strings, which keeps them safe to match against markers
// extracted from external calendar feeds.
type HourString string

// NewHourString builds the label for the given hour of day.
func NewHourString(hour int) HourString {
	return HourString(fmt.Sprintf("%d:00", hour))
}

// ParseHourString validates and normalizes a label. "09:00" normalizes to
// "9:00" so both spellings compare equal after parsing.
func ParseHourString(s string) (HourString, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[1] != "00" {
		return "", fmt.Errorf("%w: %q", ErrInvalidHourString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidHourString, s)
	}

	return NewHourString(hour), nil
}

// Hour returns the hour component, or -1 for a malformed label.
func (h HourString) Hour() int {
	parts := strings.Split(string(h), ":")
	if len(parts) != 2 {
		return -1
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	return hour
}

// Before reports whether h starts earlier in the day than other.
func (h HourString) Before(other HourString) bool {
	return h.Hour() < other.Hour()
}

// String returns the label.
func (h HourString) String() string {
	return string(h)
}
