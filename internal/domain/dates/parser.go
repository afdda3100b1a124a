package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/critmass/availability-bot/internal/domain"
	"github.com/critmass/availability-bot/internal/domain/entity"
)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Parser resolves free text like "friday", "june 5" or "2026-09-04" to a
// calendar date, preferring the next future occurrence when the text
// names no year.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(text string, today entity.Date) (entity.Date, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return entity.Date{}, fmt.Errorf("%w: empty date text", domain.ErrDateParse)
	}

	switch s {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	}

	// Bare weekday: today or the next occurrence, never a past one.
	if wd, ok := weekdays[s]; ok {
		return today.AddDays(int(wd-today.Weekday()+7) % 7), nil
	}

	// ISO 8601.
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return entity.DateOf(t), nil
	}

	// Numeric month/day, e.g. "9/4".
	if m, d, ok := splitNumeric(s, "/"); ok {
		return monthDay(m, d, today)
	}

	// "<month> <day>", "<day> <month>", optionally with a year.
	fields := strings.Fields(s)
	switch len(fields) {
	case 2:
		if m, ok := months[fields[0]]; ok {
			if d, err := strconv.Atoi(strings.TrimSuffix(fields[1], ",")); err == nil {
				return monthDay(int(m), d, today)
			}
		}
		if m, ok := months[fields[1]]; ok {
			if d, err := strconv.Atoi(fields[0]); err == nil {
				return monthDay(int(m), d, today)
			}
		}
	case 3:
		if m, ok := months[fields[0]]; ok {
			d, derr := strconv.Atoi(strings.TrimSuffix(fields[1], ","))
			y, yerr := strconv.Atoi(fields[2])
			if derr == nil && yerr == nil {
				return exactDate(y, time.Month(m), d)
			}
		}
	}

	return entity.Date{}, fmt.Errorf("%w: %q", domain.ErrDateParse, text)
}

func splitNumeric(s, sep string) (m, d int, ok bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, false
	}
	m, merr := strconv.Atoi(parts[0])
	d, derr := strconv.Atoi(parts[1])
	if merr != nil || derr != nil {
		return 0, 0, false
	}
	return m, d, true
}

// monthDay resolves a yearless month/day to this year, or next year if
// the date has already passed.
func monthDay(m, d int, today entity.Date) (entity.Date, error) {
	if m >= 1 && m <= 12 && d >= 1 {
		for _, y := range []int{today.Year, today.Year + 1} {
			if d > daysIn(time.Month(m), y) {
				continue
			}
			date := entity.NewDate(y, time.Month(m), d)
			if !date.Before(today) {
				return date, nil
			}
		}
	}
	return entity.Date{}, fmt.Errorf("%w: no such upcoming date %d/%d", domain.ErrDateParse, m, d)
}

func exactDate(y int, m time.Month, d int) (entity.Date, error) {
	if d < 1 || d > daysIn(m, y) {
		return entity.Date{}, fmt.Errorf("%w: no such date %s %d, %d", domain.ErrDateParse, m, d, y)
	}
	return entity.NewDate(y, m, d), nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
