package entity

import (
	"fmt"
	"sort"
	"time"
)

// Date is a calendar date without time-of-day. The zero value is not a
// valid date. Being a comparable struct it can key maps directly.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const displayLayout = "Mon, Jan 02"

// NewDate normalizes the given components (e.g. Jan 32 becomes Feb 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf extracts the calendar date from t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO 8601 date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DaysSince returns the number of days from o to d (negative if d is
// earlier).
func (d Date) DaysSince(o Date) int {
	return int(d.Time().Sub(o.Time()) / (24 * time.Hour))
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// ISOWeek returns the ISO 8601 year and week number.
func (d Date) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

// String formats the date as ISO 8601 (2006-01-02), the form used for
// persistence and button action values.
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// Display formats the date the way it is shown to users ("Fri, Sep 04").
func (d Date) Display() string {
	return d.Time().Format(displayLayout)
}

// SortDates sorts dates ascending in place and returns the slice.
func SortDates(dates []Date) []Date {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
