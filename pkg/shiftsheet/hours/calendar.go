package hours

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// HolidayCalendar is a read-only set of calendar dates.
type HolidayCalendar struct {
	dates map[string]struct{}
}

// NewHolidayCalendar builds a calendar from YYYY-MM-DD dates.
func NewHolidayCalendar(dates ...string) (HolidayCalendar, error) {
	cal := HolidayCalendar{dates: make(map[string]struct{}, len(dates))}
	for _, d := range dates {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			return HolidayCalendar{}, fmt.Errorf("holiday %q: %w", d, err)
		}
		cal.dates[t.Format(dateLayout)] = struct{}{}
	}
	return cal, nil
}

// MustHolidayCalendar is like NewHolidayCalendar but panics on a bad date.
func MustHolidayCalendar(dates ...string) HolidayCalendar {
	cal, err := NewHolidayCalendar(dates...)
	if err != nil {
		panic(err)
	}
	return cal
}

// ParseHolidays parses a comma-separated list of YYYY-MM-DD dates.
func ParseHolidays(list string) (HolidayCalendar, error) {
	return NewHolidayCalendar(strings.Split(list, ",")...)
}

// Contains reports whether the calendar day of t is a holiday.
func (c HolidayCalendar) Contains(t time.Time) bool {
	_, ok := c.dates[t.Format(dateLayout)]
	return ok
}

// Len returns the number of holidays.
func (c HolidayCalendar) Len() int {
	return len(c.dates)
}

// Dates returns the holidays in ascending order.
func (c HolidayCalendar) Dates() []string {
	out := make([]string, 0, len(c.dates))
	for d := range c.dates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
