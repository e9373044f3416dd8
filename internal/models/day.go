// ABOUTME: Day is a calendar-date value type used by the streak engine.
// ABOUTME: Serializes as "YYYY-MM-DD" and provides day-granularity arithmetic.
package models

import (
	"fmt"
	"math"
	"time"
)

// DayFormat is the wire format for calendar dates.
const DayFormat = "2006-01-02"

// Day represents a calendar date with no time-of-day component,
// in the local time zone.
type Day struct {
	t time.Time
}

// NewDay constructs a Day from year, month, and day.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DayOf truncates a timestamp to its calendar day.
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

// Today returns the current local calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a "YYYY-MM-DD" string.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// String returns the day in "YYYY-MM-DD" format.
func (d Day) String() string {
	return d.t.Format(DayFormat)
}

// Time returns the underlying midnight-local timestamp.
func (d Day) Time() time.Time {
	return d.t
}

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.t.Weekday()
}

// Equal reports whether two days are the same calendar date.
func (d Day) Equal(o Day) bool {
	return d.t.Equal(o.t)
}

// Before reports whether d is an earlier calendar date than o.
func (d Day) Before(o Day) bool {
	return d.t.Before(o.t)
}

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.t.AddDate(0, 0, n))
}

// DaysUntil returns the number of whole calendar days from d to o.
// Negative when o is earlier than d. Rounding absorbs DST offsets.
func (d Day) DaysUntil(o Day) int {
	return int(math.Round(o.t.Sub(d.t).Hours() / 24))
}

// MarshalJSON encodes the day as a quoted "YYYY-MM-DD" string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string.
func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid day value: %s", s)
	}
	parsed, err := ParseDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the day as a "YYYY-MM-DD" string.
func (d Day) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes a "YYYY-MM-DD" string.
func (d *Day) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
