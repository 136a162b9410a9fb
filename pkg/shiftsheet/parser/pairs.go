package parser

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// shiftNamespace seeds the name-based shift identifiers.
var shiftNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("shiftsheet:shift"))

// ShiftSource describes where a batch of punches came from.
type ShiftSource struct {
	File     string
	// Path is the absolute workbook path; File stands in when it is empty.
	Path     string
	Sheet    string
	Building string
}

// ShiftID returns the identifier of the shift at key in src. The same
// cell in the same workbook always yields the same ID, and workbooks that
// share a file name in different directories do not collide.
func ShiftID(src ShiftSource, key models.ShiftKey) uuid.UUID {
	origin := src.Path
	if origin == "" {
		origin = src.File
	}
	name := fmt.Sprintf("%s|%s|%d|%d", origin, src.Sheet, key.Row, key.DateColumn)
	return uuid.NewSHA1(shiftNamespace, []byte(name))
}

// ResolvePairs assembles one shift record per ShiftKey from time-in and
// time-out punches. Punches without a partner are dropped and reported as
// alignment warnings, as is any difference between in and out counts.
func ResolvePairs(src ShiftSource, punches []models.Punch) ([]models.ShiftRecord, []models.Warning) {
	var ins []models.Punch
	outs := make(map[models.ShiftKey]models.Punch)
	outCount := 0
	for _, p := range punches {
		switch p.Kind {
		case models.PunchIn:
			ins = append(ins, p)
		case models.PunchOut:
			outs[p.Key] = p
			outCount++
		}
	}

	var warnings []models.Warning
	if len(ins) != outCount {
		warnings = append(warnings, models.Warning{
			Kind:    models.WarningAlignment,
			File:    src.File,
			Message: fmt.Sprintf("%d time-in punches but %d time-out punches", len(ins), outCount),
		})
	}

	records := make([]models.ShiftRecord, 0, len(ins))
	for _, in := range ins {
		out, ok := outs[in.Key]
		if !ok {
			warnings = append(warnings, orphanWarning(src, in))
			continue
		}
		delete(outs, in.Key)
		records = append(records, models.ShiftRecord{
			ID:           ShiftID(src, in.Key),
			Key:          in.Key,
			EmployeeName: in.Employee,
			Date:         in.Date,
			TimeIn:       in.Value,
			TimeOut:      out.Value,
			BuildingName: src.Building,
		})
	}

	orphans := make([]models.Punch, 0, len(outs))
	for _, out := range outs {
		orphans = append(orphans, out)
	}
	sort.Slice(orphans, func(i, j int) bool {
		if orphans[i].Key.DateColumn != orphans[j].Key.DateColumn {
			return orphans[i].Key.DateColumn < orphans[j].Key.DateColumn
		}
		return orphans[i].Key.Row < orphans[j].Key.Row
	})
	for _, out := range orphans {
		warnings = append(warnings, orphanWarning(src, out))
	}

	return records, warnings
}

func orphanWarning(src ShiftSource, p models.Punch) models.Warning {
	msg := fmt.Sprintf("unpaired time-%s punch %q on %s (row %d)",
		p.Kind, p.Value, p.Date.Format(DateLayout), p.Key.Row+1)
	return models.Warning{
		Kind:     models.WarningAlignment,
		File:     src.File,
		Employee: p.Employee,
		ShiftID:  ShiftID(src, p.Key).String(),
		Message:  msg,
	}
}
