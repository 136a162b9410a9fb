// Package payroll prices classified hours and totals them per building.
package payroll

import (
	"sort"
	"strings"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// DefaultPremiumMultiplier is applied to overtime and holiday hours.
const DefaultPremiumMultiplier = 1.5

// suffixTokens are trailing labels that mark variants of the same site.
var suffixTokens = []string{"employees", "rover", "valet"}

// NormalizeBuilding strips known suffix tokens and surrounding whitespace,
// so "Hamilton Cove Rover" and "Hamilton Cove" share one bucket.
func NormalizeBuilding(name string) string {
	fields := strings.Fields(name)
	for len(fields) > 0 && isSuffixToken(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

func isSuffixToken(word string) bool {
	for _, t := range suffixTokens {
		if strings.EqualFold(word, t) {
			return true
		}
	}
	return false
}

type payKey struct {
	building string
	year     int
	month    int
	employee string
}

// Join groups building-granularity summaries by building, month, year and
// employee, then prices them with the employee's rate. An employee with no
// rate keeps a nil Rate and zero pay; the gap is never filled in.
func Join(summaries []models.EmployeeWeekSummary, rates []models.HourlyRate, multiplier float64) []models.EmployeePay {
	if multiplier <= 0 {
		multiplier = DefaultPremiumMultiplier
	}

	rateByName := make(map[string]float64, len(rates))
	for _, r := range rates {
		rateByName[strings.TrimSpace(r.EmployeeName)] = r.Rate
	}

	grouped := make(map[payKey]*models.EmployeePay)
	keys := make([]payKey, 0)
	for _, s := range summaries {
		key := payKey{
			building: NormalizeBuilding(s.BuildingName),
			year:     s.Year,
			month:    s.Month,
			employee: strings.TrimSpace(s.EmployeeName),
		}
		p, ok := grouped[key]
		if !ok {
			p = &models.EmployeePay{
				EmployeeName: key.employee,
				BuildingName: key.building,
				Month:        key.month,
				Year:         key.year,
			}
			grouped[key] = p
			keys = append(keys, key)
		}
		p.HolidayHours += s.HolidayHours
		p.RegularHours += s.RegularHours
		p.OvertimeHours += s.OvertimeHours
	}

	sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })

	pay := make([]models.EmployeePay, 0, len(keys))
	for _, key := range keys {
		p := *grouped[key]
		if rate, ok := rateByName[key.employee]; ok {
			r := rate
			p.Rate = &r
			p.RegularPay = p.RegularHours * rate
			p.OvertimePay = p.OvertimeHours * rate * multiplier
			p.HolidayPay = p.HolidayHours * rate * multiplier
			p.TotalPay = p.RegularPay + p.OvertimePay + p.HolidayPay
		}
		pay = append(pay, p)
	}
	return pay
}

func lessKey(a, b payKey) bool {
	switch {
	case a.building != b.building:
		return a.building < b.building
	case a.year != b.year:
		return a.year < b.year
	case a.month != b.month:
		return a.month < b.month
	default:
		return a.employee < b.employee
	}
}

// Aggregate sums employee pay into one line per building, month and year.
// Employees without a rate add nothing to the sums and are listed on the
// line's MissingRate instead.
func Aggregate(pay []models.EmployeePay) []models.PayrollLine {
	sorted := append([]models.EmployeePay(nil), pay...)
	sort.Slice(sorted, func(i, j int) bool {
		return lessKey(keyOf(sorted[i]), keyOf(sorted[j]))
	})

	var lines []models.PayrollLine
	for _, p := range sorted {
		n := len(lines)
		if n == 0 || lines[n-1].BuildingName != p.BuildingName || lines[n-1].Year != p.Year || lines[n-1].Month != p.Month {
			lines = append(lines, models.PayrollLine{
				BuildingName: p.BuildingName,
				Month:        p.Month,
				Year:         p.Year,
			})
			n++
		}
		line := &lines[n-1]
		if p.MissingRate() {
			line.MissingRate = append(line.MissingRate, p.EmployeeName)
			continue
		}
		line.RegularPay += p.RegularPay
		line.OvertimePay += p.OvertimePay
		line.HolidayPay += p.HolidayPay
		line.TotalPay += p.TotalPay
	}
	return lines
}

func keyOf(p models.EmployeePay) payKey {
	return payKey{building: p.BuildingName, year: p.Year, month: p.Month, employee: p.EmployeeName}
}

// MissingRates returns the sorted names of employees that could not be priced.
func MissingRates(pay []models.EmployeePay) []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range pay {
		if p.MissingRate() && !seen[p.EmployeeName] {
			seen[p.EmployeeName] = true
			names = append(names, p.EmployeeName)
		}
	}
	sort.Strings(names)
	return names
}
