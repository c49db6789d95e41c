package types

import (
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is the unit the availability webhook speaks in, so it is kept
// as a comparable value type instead of a full time.Time.
type TimeString string

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return TimeString(parsed.Format(timeLayout)), nil
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes.
// The result must still fall within the same day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s%+d minutes is outside the day", t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
