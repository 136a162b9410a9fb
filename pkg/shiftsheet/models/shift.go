package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftKey identifies the spreadsheet origin of a shift: the employee row
// and the dated column that holds its time-in punch.
type ShiftKey struct {
	// Row is the 0-based grid row of the employee.
	Row int `json:"row"`
	// DateColumn is the 0-based grid column whose header carries the date.
	DateColumn int `json:"date_column"`
}

// PunchKind tells whether a punch opens or closes a shift.
type PunchKind string

const (
	// PunchIn is a punch found under a dated header column.
	PunchIn PunchKind = "in"
	// PunchOut is a punch found under the blank header following a dated column.
	PunchOut PunchKind = "out"
)

// Punch is one long-form (identity, date, value) row produced by the week extractor.
type Punch struct {
	Key      ShiftKey  `json:"key"`
	Kind     PunchKind `json:"kind"`
	Employee string    `json:"employee"`
	// Date is the header date of the shift; both punches of a shift share it.
	Date time.Time `json:"date"`
	// Value is the raw time-of-day text.
	Value string `json:"value"`
	// Week is 1 or 2, the block the punch was read from.
	Week int `json:"week"`
}

// ShiftRecord is one complete time-in/time-out pair for an employee on a date.
type ShiftRecord struct {
	ID           uuid.UUID `json:"id"`
	Key          ShiftKey  `json:"key"`
	EmployeeName string    `json:"employee_name"`
	Date         time.Time `json:"date"`
	TimeIn       string    `json:"time_in"`
	TimeOut      string    `json:"time_out"`
	BuildingName string    `json:"building_name"`
}

// WorkedHours is a shift record with its computed duration in fractional hours.
type WorkedHours struct {
	ShiftRecord
	Hours float64 `json:"hours"`
}
