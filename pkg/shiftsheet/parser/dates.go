package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var headerDateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"1-2-2006",
	"01-02-2006",
	"1-2-06",
	"01-02-06",
	"2-Jan-06",
	"02-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2006/01/02",
	"Mon 1/2/2006",
	"Monday 1/2/2006",
}

// ParseHeaderDate parses the text of a week header cell as a calendar date.
func ParseHeaderDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	// Excel serials left unformatted; the range keeps small integers out.
	if serial, err := strconv.ParseFloat(text, 64); err == nil {
		if serial >= 20000 && serial <= 80000 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return truncateDay(t), true
			}
		}
		return time.Time{}, false
	}

	for _, layout := range headerDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return truncateDay(t), true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
