package models

// EmployeeWeekSummary holds classified hours for one employee grouping.
// Year, Month and BuildingName are only populated at building granularity.
type EmployeeWeekSummary struct {
	EmployeeName  string  `json:"employee_name"`
	ISOYear       int     `json:"iso_year"`
	ISOWeek       int     `json:"iso_week"`
	BuildingName  string  `json:"building_name,omitempty"`
	Year          int     `json:"year,omitempty"`
	Month         int     `json:"month,omitempty"`
	HolidayHours  float64 `json:"holiday_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// EmployeeTotals is one row of the per-employee output table.
type EmployeeTotals struct {
	EmployeeName  string  `json:"employee_name"`
	HolidayHours  float64 `json:"holiday_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// BuildingHours is the total worked hours for one building.
type BuildingHours struct {
	BuildingName string  `json:"building_name"`
	Hours        float64 `json:"hours"`
}
