package core

import (
	"time"
)

// Timestamp represents a point in time with timezone awareness
type Timestamp time.Time

// NewTimestamp creates a new timestamp from time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Now returns the current timestamp
func Now() Timestamp {
	return Timestamp(time.Now())
}

// Time returns the underlying time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero checks if the timestamp is zero
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Before returns true if t is before u
func (t Timestamp) Before(u Timestamp) bool {
	return time.Time(t).Before(time.Time(u))
}

// After returns true if t is after u
func (t Timestamp) After(u Timestamp) bool {
	return time.Time(t).After(time.Time(u))
}

// DrawDate is a calendar date (midnight UTC) on which a draw took place.
type DrawDate time.Time

// NewDrawDate truncates t to a calendar date in UTC.
func NewDrawDate(t time.Time) DrawDate {
	y, m, d := t.UTC().Date()
	return DrawDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDrawDate parses an ISO date string (YYYY-MM-DD).
func ParseDrawDate(s string) (DrawDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DrawDate{}, err
	}
	return NewDrawDate(t), nil
}

// Time returns the underlying time.Time
func (d DrawDate) Time() time.Time {
	return time.Time(d)
}

// String formats the date as YYYY-MM-DD.
func (d DrawDate) String() string {
	return time.Time(d).Format("2006-01-02")
}

// IsZero checks if the date is zero
func (d DrawDate) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before returns true if d is before u
func (d DrawDate) Before(u DrawDate) bool {
	return time.Time(d).Before(time.Time(u))
}

// After returns true if d is after u
func (d DrawDate) After(u DrawDate) bool {
	return time.Time(d).After(time.Time(u))
}

// AddDays returns the date shifted by n calendar days.
func (d DrawDate) AddDays(n int) DrawDate {
	return DrawDate(time.Time(d).AddDate(0, 0, n))
}
