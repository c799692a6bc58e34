package types

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateString is returned when a value is not a valid YYYY-MM-DD calendar date
var ErrInvalidDateString = errors.New("invalid date string format")

// DateString is a calendar date in YYYY-MM-DD format without a time zone
type DateString string

// NewDateStringFromString validates a YYYY-MM-DD value
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return DateString(t.Format(dateLayout)), nil
}

// NewDateString takes the calendar date of t in its own location
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// IsValid reports whether the value is a parseable calendar date
func (d DateString) IsValid() bool {
	_, err := time.Parse(dateLayout, string(d))
	return err == nil
}

func (d DateString) String() string {
	return string(d)
}
