package parser

import (
	"time"

	"github.com/ukaji3/shiftsheet-go/internal/sheetfixture"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

var (
	week1Start = time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC)
	week2Start = time.Date(2023, 1, 23, 0, 0, 0, 0, time.UTC)
)

func standardSheet() sheetfixture.Sheet {
	return sheetfixture.Sheet{
		Title: "Hamilton Cove Weekly Schedule",
		Weeks: [2]sheetfixture.Week{
			{
				Start: week1Start,
				Employees: []sheetfixture.Employee{
					{Name: "Jane Smith", Shifts: sheetfixture.NineToFive(0, 1, 2), Rate: "15"},
					{Name: " John Doe ", Shifts: map[int]sheetfixture.Shift{
						4: {In: "22:00:00", Out: "06:00:00"},
					}, Rate: "20"},
				},
			},
			{
				Start: week2Start,
				Employees: []sheetfixture.Employee{
					{Name: "Jane Smith", Shifts: sheetfixture.NineToFive(0), Rate: "17"},
				},
			},
		},
	}
}

func standardGrid() *models.RawGrid {
	return standardSheet().Grid("hamilton.xlsx")
}
