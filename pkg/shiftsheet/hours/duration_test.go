package hours

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		out      string
		expected float64
	}{
		{"day shift", "09:00:00", "17:00:00", 8.0},
		{"overnight shift", "22:00:00", "06:00:00", 8.0},
		{"half hour", "09:00:00", "13:30:00", 4.5},
		{"single digit hour", "9:00:00", "9:15:00", 0.25},
		{"to midnight", "16:00:00", "00:00:00", 8.0},
		// Equal punches wrap to a full day. Kept as-is for compatibility;
		// see DESIGN.md.
		{"equal punches", "08:00:00", "08:00:00", 24.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Duration(tt.in, tt.out)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestDuration_ParseError(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"09:00", "17:00:00"},
		{"09:00:00", "5pm"},
		{"25:00:00", "17:00:00"},
		{"09:60:00", "17:00:00"},
		{"", ""},
	}

	for _, tt := range tests {
		_, err := Duration(tt.in, tt.out)
		var parseErr *models.ParseError
		if assert.ErrorAs(t, err, &parseErr, "Duration(%q, %q)", tt.in, tt.out) {
			assert.Equal(t, "time", parseErr.Kind)
		}
	}
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("13:45:30")
	require.NoError(t, err)
	assert.Equal(t, 13*time.Hour+45*time.Minute+30*time.Second, d)
}

func TestCompute(t *testing.T) {
	johnShift := uuid.NewSHA1(uuid.NameSpaceURL, []byte("john"))
	date := time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC)
	shifts := []models.ShiftRecord{
		{EmployeeName: "Jane Smith", Date: date, TimeIn: "09:00:00", TimeOut: "17:20:00"},
		{ID: johnShift, EmployeeName: "John Doe", Date: date, TimeIn: "9am", TimeOut: "17:00:00"},
	}

	worked, warnings := Compute(shifts)
	require.Len(t, worked, 1)
	assert.Equal(t, "Jane Smith", worked[0].EmployeeName)
	assert.InDelta(t, 8.0+1.0/3.0, worked[0].Hours, 1e-12, "not rounded")

	require.Len(t, warnings, 1)
	assert.Equal(t, models.WarningParse, warnings[0].Kind)
	assert.Equal(t, "John Doe", warnings[0].Employee)
	assert.Equal(t, johnShift.String(), warnings[0].ShiftID)
}
