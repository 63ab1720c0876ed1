package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseBookingDate parses a calendar date in yyyy-MM-dd form.
func ParseBookingDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse booking date %q: %w", value, err)
	}
	return date, nil
}

// ParseBookingTime parses a time of day in HH:mm form.
func ParseBookingTime(value string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse booking time %q: %w", value, err)
	}
	return t, nil
}

// CombineDateTime merges a calendar date with a time of day.
func CombineDateTime(date, t time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.Local)
}

// MinutesOfDay returns the minute offset of t within its day.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
