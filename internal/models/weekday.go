package models

import (
	"fmt"
	"time"
)

// DayOfWeek is the canonical day-of-week encoding for the whole service:
// 0=Sunday .. 6=Saturday, mirroring time.Weekday. Historical data sources
// disagree on the encoding (some are 1-7 Monday-first), so every conversion
// from external input goes through this file and nowhere else.
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DayOf returns the canonical day for a wall-clock instant.
func DayOf(t time.Time) DayOfWeek {
	return DayOfWeek(t.Weekday())
}

// Next is tomorrow's day, wrapping Saturday back to Sunday.
func (d DayOfWeek) Next() DayOfWeek {
	return (d + 1) % 7
}

// Valid reports whether d is within the canonical 0-6 range.
func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// ParseDay validates a canonical 0-6 day value from external input.
func ParseDay(n int) (DayOfWeek, error) {
	d := DayOfWeek(n)
	if !d.Valid() {
		return 0, fmt.Errorf("day of week out of range: %d", n)
	}
	return d, nil
}

// FromMondayFirst converts the competing 1=Monday..7=Sunday encoding.
func FromMondayFirst(n int) (DayOfWeek, error) {
	if n < 1 || n > 7 {
		return 0, fmt.Errorf("monday-first day out of range: %d", n)
	}
	return DayOfWeek(n % 7), nil
}
