package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

func TestLocateWeekHeaders(t *testing.T) {
	headers, err := LocateWeekHeaders(standardGrid(), 1)
	require.NoError(t, err)
	assert.Equal(t, WeekHeaders{First: 2, Second: 8}, headers)
}

func TestLocateWeekHeaders_CaseInsensitive(t *testing.T) {
	g := &models.RawGrid{Rows: [][]string{
		{"", "title"},
		{"", "DATE"},
		{"", "x"},
		{"", "week 2 date"},
		{"", "date"},
	}}

	headers, err := LocateWeekHeaders(g, 1)
	require.NoError(t, err)
	assert.Equal(t, WeekHeaders{First: 1, Second: 3}, headers)
}

func TestLocateWeekHeaders_TooFewMarkers(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{"empty grid", nil},
		{"one marker", [][]string{{"", "Date"}, {"", "Jane"}}},
		{"marker in wrong column", [][]string{{"Date", ""}, {"Date", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LocateWeekHeaders(&models.RawGrid{Rows: tt.rows}, 1)
			var layoutErr *models.LayoutError
			require.ErrorAs(t, err, &layoutErr)
			assert.Contains(t, layoutErr.Reason, "Date")
		})
	}
}

func TestBuildingName(t *testing.T) {
	tests := []struct {
		title    string
		expected string
		found    bool
	}{
		{"Hamilton Cove Weekly Schedule", "Hamilton Cove", true},
		{"Harbor Point employees", "Harbor Point", true},
		{"  Ocean Towers WEEKLY", "Ocean Towers", true},
		{"Café Plaza Weekly Schedule", "Café Plaza", true},
		{"Tōkyō Bay 2 employees", "Tōkyō Bay 2", true},
		{"Schedule for the month", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			g := &models.RawGrid{Rows: [][]string{
				{"", tt.title},
				{"", "Date"},
			}}
			name, found := BuildingName(g, 1)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestBuildingName_IgnoresRowsBelowHeader(t *testing.T) {
	g := &models.RawGrid{Rows: [][]string{
		{"", "Date"},
		{"", "Hamilton Cove Weekly"},
	}}
	_, found := BuildingName(g, 0)
	assert.False(t, found)
}
