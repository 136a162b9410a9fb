// Package hours computes shift durations and classifies them into
// holiday, regular and overtime buckets.
package hours

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})$`)

// ParseClock parses an HH:MM:SS time of day into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, models.NewParseError("time", s, fmt.Errorf("want HH:MM:SS"))
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	ss, _ := strconv.Atoi(m[3])
	if hh > 23 || mm > 59 || ss > 59 {
		return 0, models.NewParseError("time", s, fmt.Errorf("out of range"))
	}
	return time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute + time.Duration(ss)*time.Second, nil
}

// Duration returns the hours between timeIn and timeOut. A result of zero
// or less wraps by a day, so an out equal to the in counts as 24 hours.
func Duration(timeIn, timeOut string) (float64, error) {
	in, err := ParseClock(timeIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseClock(timeOut)
	if err != nil {
		return 0, err
	}
	d := out - in
	if d <= 0 {
		d += 24 * time.Hour
	}
	return d.Hours(), nil
}

// Compute attaches a duration to every shift. Shifts whose punches do not
// parse are dropped and reported; they are never guessed.
func Compute(shifts []models.ShiftRecord) ([]models.WorkedHours, []models.Warning) {
	worked := make([]models.WorkedHours, 0, len(shifts))
	var warnings []models.Warning
	for _, s := range shifts {
		h, err := Duration(s.TimeIn, s.TimeOut)
		if err != nil {
			warnings = append(warnings, models.Warning{
				Kind:     models.WarningParse,
				Employee: s.EmployeeName,
				ShiftID:  s.ID.String(),
				Message:  fmt.Sprintf("dropping shift on %s: %v", s.Date.Format("2006-01-02"), err),
			})
			continue
		}
		worked = append(worked, models.WorkedHours{ShiftRecord: s, Hours: h})
	}
	return worked, warnings
}
