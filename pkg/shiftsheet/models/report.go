package models

// WarningKind classifies a non-fatal condition observed during a run.
type WarningKind string

const (
	// WarningAlignment marks time-in/time-out punches that could not be paired.
	WarningAlignment WarningKind = "alignment"
	// WarningParse marks a punch or rate value that failed to convert.
	WarningParse WarningKind = "parse"
	// WarningLayout marks a missing optional landmark such as the building line.
	WarningLayout WarningKind = "layout"
	// WarningJoinGap marks an employee with hours but no rate.
	WarningJoinGap WarningKind = "join_gap"
)

// Warning is a non-fatal condition surfaced to the caller.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	File     string      `json:"file,omitempty"`
	Employee string      `json:"employee,omitempty"`
	// ShiftID names the shift the warning is about, if any.
	ShiftID  string      `json:"shift_id,omitempty"`
	Message  string      `json:"message"`
}

// FileResult is the isolated partial result of extracting one workbook.
type FileResult struct {
	// File is the workbook file name (no path).
	File         string        `json:"file"`
	// Path is the absolute workbook path, when read from disk.
	Path         string        `json:"path,omitempty"`
	Sheet        string        `json:"sheet"`
	BuildingName string        `json:"building_name"`
	Shifts       []WorkedHours `json:"shifts"`
	Rates        []RateEntry   `json:"rates"`
	Warnings     []Warning     `json:"warnings,omitempty"`
}

// RateEntry is a single observed rate cell for an employee.
type RateEntry struct {
	EmployeeName string  `json:"employee_name"`
	Rate         float64 `json:"rate"`
	// Fallback is set when the cell failed to parse and the fallback was used.
	Fallback bool `json:"fallback,omitempty"`
	Row      int  `json:"row"`
}

// FileFailure records a file that could not be processed.
type FileFailure struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Report is the combined output of one batch run.
type Report struct {
	Employees     []EmployeeTotals      `json:"employees"`
	Shifts        []WorkedHours         `json:"shifts"`
	Summaries     []EmployeeWeekSummary `json:"summaries"`
	Pay           []EmployeePay         `json:"pay"`
	Payroll       []PayrollLine         `json:"payroll"`
	Rates         []HourlyRate          `json:"rates"`
	BuildingHours []BuildingHours       `json:"building_hours"`
	Files         []string              `json:"files"`
	Failures      []FileFailure         `json:"failures,omitempty"`
	Warnings      []Warning             `json:"warnings,omitempty"`
}
