package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

// TimeString represents a time of day as an "HH:MM" string.
// Used for slot boundaries and delivery windows where only the
// minute-of-day matters and timezone handling is done elsewhere.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (truncated to minutes)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time format %q, expected HH:MM: %w", s, err)
	}
	return NewTimeString(t), nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("minutes out of range: %d", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String returns the "HH:MM" representation
func (ts TimeString) String() string {
	return string(ts)
}

// TotalMinutes returns minutes since midnight.
// Invalid values yield an error, callers validate on construction.
func (ts TimeString) TotalMinutes() (int, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("invalid time string %q: %w", ts, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := ts.TotalMinutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(total + minutes)
}

// IsBefore returns true if ts is strictly earlier than other.
// Unparsable values compare as not-before (строковое сравнение здесь недопустимо).
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err1 := ts.TotalMinutes()
	b, err2 := other.TotalMinutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter returns true if ts is strictly later than other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, err1 := ts.TotalMinutes()
	b, err2 := other.TotalMinutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

// Value implements driver.Valuer for storing as a plain string column
func (ts TimeString) Value() (driver.Value, error) {
	return string(ts), nil
}

// Scan implements sql.Scanner
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*ts = TimeString(v)
	case []byte:
		*ts = TimeString(v)
	case time.Time:
		*ts = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}
