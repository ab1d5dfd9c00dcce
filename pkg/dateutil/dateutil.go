package dateutil

import (
	"fmt"
	"math"
	"time"
)

// DayFormat is the ISO calendar-date layout used for all stored dates.
const DayFormat = "2006-01-02"

// DisplayFormat is the layout for dates shown on cards and calendar cells.
const DisplayFormat = "02 Jan 2006"

// Calc performs calendar-day arithmetic in a fixed timezone.
type Calc struct {
	location *time.Location
}

// NewCalc creates a calculator for the given IANA timezone string.
// e.g. "Asia/Jakarta"
func NewCalc(timezone string) (*Calc, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calc{location: loc}, nil
}

// ParseDay parses an ISO calendar date in the calculator's timezone.
func (c *Calc) ParseDay(day string) (time.Time, bool) {
	t, err := time.ParseInLocation(DayFormat, day, c.location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today returns the calendar date of the given instant as an ISO string.
func (c *Calc) Today(now time.Time) string {
	return now.In(c.location).Format(DayFormat)
}

// AddDays shifts an ISO calendar date by n days. An unparseable date is
// treated as the date itself (returned unchanged).
func (c *Calc) AddDays(day string, n int) string {
	t, ok := c.ParseDay(day)
	if !ok {
		return day
	}
	return t.AddDate(0, 0, n).Format(DayFormat)
}

// DaysUntil returns the difference, in whole days, between the end of the
// deadline day (23:59:59.999 local) and now, floored. Negative means
// overdue, zero means due today. An unparseable deadline counts as today.
func (c *Calc) DaysUntil(deadline string, now time.Time) int {
	t, ok := c.ParseDay(deadline)
	if !ok {
		t, _ = c.ParseDay(c.Today(now))
	}
	end := c.EndOfDay(t)
	diff := end.Sub(now).Hours() / 24
	return int(math.Floor(diff))
}

// EndOfDay returns 23:59:59.999 of the given day in the calculator's timezone.
func (c *Calc) EndOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59,
		999*int(time.Millisecond), c.location)
}

// FormatDisplay renders an ISO calendar date for display ("02 Jan 2006").
// An unparseable date is returned as-is.
func (c *Calc) FormatDisplay(day string) string {
	t, ok := c.ParseDay(day)
	if !ok {
		return day
	}
	return t.Format(DisplayFormat)
}
