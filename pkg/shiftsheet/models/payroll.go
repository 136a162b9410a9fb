package models

// HourlyRate is the mean of all observed rate entries for an employee.
type HourlyRate struct {
	EmployeeName string  `json:"employee_name"`
	Rate         float64 `json:"rate"`
	// Observations is the number of rate cells averaged.
	Observations int `json:"observations"`
	// Fallbacks counts observations replaced by the fallback rate.
	Fallbacks int `json:"fallbacks,omitempty"`
}

// EmployeePay is one employee's classified hours for a building/month/year
// joined with their rate. Rate is nil when no rate was found.
type EmployeePay struct {
	EmployeeName  string   `json:"employee_name"`
	BuildingName  string   `json:"building_name"`
	Month         int      `json:"month"`
	Year          int      `json:"year"`
	HolidayHours  float64  `json:"holiday_hours"`
	RegularHours  float64  `json:"regular_hours"`
	OvertimeHours float64  `json:"overtime_hours"`
	Rate          *float64 `json:"rate"`
	RegularPay    float64  `json:"regular_pay"`
	OvertimePay   float64  `json:"overtime_pay"`
	HolidayPay    float64  `json:"holiday_pay"`
	TotalPay      float64  `json:"total_pay"`
}

// MissingRate reports whether the employee had no matching rate.
func (p EmployeePay) MissingRate() bool {
	return p.Rate == nil
}

// PayrollLine is the pay total for one building, month and year.
type PayrollLine struct {
	BuildingName string  `json:"building_name"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	RegularPay   float64 `json:"regular_pay"`
	OvertimePay  float64 `json:"overtime_pay"`
	HolidayPay   float64 `json:"holiday_pay"`
	TotalPay     float64 `json:"total_pay"`
	// MissingRate lists employees whose hours could not be priced.
	// A non-empty list marks the line as partial.
	MissingRate []string `json:"missing_rate,omitempty"`
}

// Partial reports whether some hours in the line were left unpriced.
func (l PayrollLine) Partial() bool {
	return len(l.MissingRate) > 0
}
