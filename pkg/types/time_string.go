package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout     = "15:04"
	minutesPerDay  = 24 * 60
	minutesPerHour = 60
)

// ErrInvalidTimeString is returned when a value is not a valid HH:MM wall-clock time
var ErrInvalidTimeString = errors.New("invalid time string format")

// ErrTimeOutOfRange is returned when minute arithmetic leaves the 00:00-23:59 range
var ErrTimeOutOfRange = errors.New("time is out of day range")

// TimeString is a venue-local wall-clock time in HH:MM format (no date, no zone)
type TimeString string

// NewTimeStringFromString parses and normalizes an HH:MM value ("9:00" becomes "09:00")
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// NewTimeString takes the wall-clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// FromMinutes builds a TimeString from minutes since midnight
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)), nil
}

// Minutes returns minutes since midnight, or -1 when the value is not a valid time
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*minutesPerHour + parsed.Minute()
}

// IsValid reports whether the value is a parseable HH:MM time
func (t TimeString) IsValid() bool {
	return t.Minutes() >= 0
}

// AddMinutes shifts the time by n minutes within the same day
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	current := t.Minutes()
	if current < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return FromMinutes(current + n)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeString) String() string {
	return string(t)
}
