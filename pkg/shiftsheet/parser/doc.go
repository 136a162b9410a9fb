// Package parser reads biweekly timesheet workbooks and reshapes their
// non-tabular layout into long-form punches, shift records and rate entries.
package parser

// Unknown is the sentinel that stands in for a blank cell.
const Unknown = ""

// DateLayout is the canonical text form of calendar dates in a RawGrid.
const DateLayout = "2006-01-02"

// ClockLayout is the canonical text form of times of day in a RawGrid.
const ClockLayout = "15:04:05"
