package hours

import (
	"math"
	"sort"
	"strings"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// DefaultOvertimeThreshold is the weekly regular-hour cap.
const DefaultOvertimeThreshold = 40.0

// Granularity selects the grouping key of Classify.
type Granularity int

const (
	// ByWeek groups by employee and ISO week.
	ByWeek Granularity = iota
	// ByBuildingMonth also splits by year, month and building name.
	ByBuildingMonth
)

// Policy is the read-only configuration of a classification run.
type Policy struct {
	Holidays          HolidayCalendar
	OvertimeThreshold float64
}

type groupKey struct {
	employee string
	isoYear  int
	isoWeek  int
	year     int
	month    int
	building string
}

type bucket struct {
	holiday []float64
	regular []float64
}

// Classify groups worked hours and splits each group into holiday,
// regular and overtime hours. Holiday hours never count toward the
// overtime threshold and are never capped.
func Classify(worked []models.WorkedHours, policy Policy, granularity Granularity) []models.EmployeeWeekSummary {
	threshold := policy.OvertimeThreshold
	if threshold <= 0 {
		threshold = DefaultOvertimeThreshold
	}

	groups := make(map[groupKey]*bucket)
	for _, w := range worked {
		isoYear, isoWeek := w.Date.ISOWeek()
		key := groupKey{
			employee: strings.TrimSpace(w.EmployeeName),
			isoYear:  isoYear,
			isoWeek:  isoWeek,
		}
		if granularity == ByBuildingMonth {
			key.year = w.Date.Year()
			key.month = int(w.Date.Month())
			key.building = w.BuildingName
		}

		b, ok := groups[key]
		if !ok {
			b = &bucket{}
			groups[key] = b
		}
		if policy.Holidays.Contains(w.Date) {
			b.holiday = append(b.holiday, w.Hours)
		} else {
			b.regular = append(b.regular, w.Hours)
		}
	}

	summaries := make([]models.EmployeeWeekSummary, 0, len(groups))
	for key, b := range groups {
		regular := sum(b.regular)
		summaries = append(summaries, models.EmployeeWeekSummary{
			EmployeeName:  key.employee,
			ISOYear:       key.isoYear,
			ISOWeek:       key.isoWeek,
			BuildingName:  key.building,
			Year:          key.year,
			Month:         key.month,
			HolidayHours:  sum(b.holiday),
			RegularHours:  math.Min(regular, threshold),
			OvertimeHours: math.Max(0, regular-threshold),
		})
	}
	SortSummaries(summaries)
	return summaries
}

// SortSummaries orders summaries by employee, ISO week, building and month.
func SortSummaries(s []models.EmployeeWeekSummary) {
	sort.Slice(s, func(i, j int) bool {
		a, b := s[i], s[j]
		switch {
		case a.EmployeeName != b.EmployeeName:
			return a.EmployeeName < b.EmployeeName
		case a.ISOYear != b.ISOYear:
			return a.ISOYear < b.ISOYear
		case a.ISOWeek != b.ISOWeek:
			return a.ISOWeek < b.ISOWeek
		case a.BuildingName != b.BuildingName:
			return a.BuildingName < b.BuildingName
		case a.Year != b.Year:
			return a.Year < b.Year
		default:
			return a.Month < b.Month
		}
	})
}

// Totals sums weekly summaries into one row per employee, sorted by name.
func Totals(summaries []models.EmployeeWeekSummary) []models.EmployeeTotals {
	index := make(map[string]int)
	var totals []models.EmployeeTotals
	sorted := append([]models.EmployeeWeekSummary(nil), summaries...)
	SortSummaries(sorted)
	for _, s := range sorted {
		i, ok := index[s.EmployeeName]
		if !ok {
			i = len(totals)
			index[s.EmployeeName] = i
			totals = append(totals, models.EmployeeTotals{EmployeeName: s.EmployeeName})
		}
		totals[i].HolidayHours += s.HolidayHours
		totals[i].RegularHours += s.RegularHours
		totals[i].OvertimeHours += s.OvertimeHours
	}
	return totals
}

// BuildingHours sums worked hours per building name, sorted by name.
func BuildingHours(worked []models.WorkedHours) []models.BuildingHours {
	byBuilding := make(map[string][]float64)
	for _, w := range worked {
		byBuilding[w.BuildingName] = append(byBuilding[w.BuildingName], w.Hours)
	}
	out := make([]models.BuildingHours, 0, len(byBuilding))
	for name, hours := range byBuilding {
		out = append(out, models.BuildingHours{BuildingName: name, Hours: sum(hours)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BuildingName < out[j].BuildingName
	})
	return out
}

// sum adds values in ascending order so totals do not depend on input order.
func sum(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	total := 0.0
	for _, v := range sorted {
		total += v
	}
	return total
}
