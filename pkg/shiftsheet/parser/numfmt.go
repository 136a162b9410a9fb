package parser

import (
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// numFmtKind tells what a cell's number format displays.
type numFmtKind int

const (
	fmtOther numFmtKind = iota
	fmtDate
	fmtTime
	fmtDateTime
)

// builtInNumFmtKinds covers the built-in number format IDs that display
// dates or times, including the East Asian locale IDs.
var builtInNumFmtKinds = map[int]numFmtKind{
	14: fmtDate, 15: fmtDate, 16: fmtDate, 17: fmtDate,
	18: fmtTime, 19: fmtTime, 20: fmtTime, 21: fmtTime,
	22: fmtDateTime,
	27: fmtDate, 28: fmtDate, 29: fmtDate, 30: fmtDate, 31: fmtDate,
	32: fmtTime, 33: fmtTime, 34: fmtTime, 35: fmtTime,
	36: fmtDate,
	45: fmtTime, 46: fmtTime, 47: fmtTime,
	50: fmtDate, 51: fmtDate, 52: fmtDate, 53: fmtDate, 54: fmtDate,
	55: fmtTime, 56: fmtTime, 57: fmtDate, 58: fmtDate,
}

// numFmtLiterals matches the parts of a format code that never stand for a
// date or time token: quoted text, escaped characters, colors, locales
// and conditions.
var numFmtLiterals = regexp.MustCompile(`"[^"]*"|\\.|\[[^\]]*\]`)

// elapsedTime matches the [h], [mm] and [ss] elapsed-time tokens.
var elapsedTime = regexp.MustCompile(`(?i)\[(h+|m+|s+)\]`)

// numFmtCodeKind classifies a custom number format code such as "mmm d"
// or "h:mm AM/PM".
func numFmtCodeKind(code string) numFmtKind {
	section := strings.SplitN(code, ";", 2)[0]
	hasTime := elapsedTime.MatchString(section)

	lower := strings.ToLower(numFmtLiterals.ReplaceAllString(section, ""))
	if lower == "general" || lower == "" {
		if hasTime {
			return fmtTime
		}
		return fmtOther
	}
	lower = strings.NewReplacer("am/pm", "", "a/p", "").Replace(lower)

	hasDate := strings.ContainsAny(lower, "yd")
	if strings.ContainsAny(lower, "hs") {
		hasTime = true
	}
	// A bare "m" is a month unless hours or seconds sit beside it.
	if !hasTime && strings.Contains(lower, "m") {
		hasDate = true
	}

	switch {
	case hasDate && hasTime:
		return fmtDateTime
	case hasDate:
		return fmtDate
	case hasTime:
		return fmtTime
	}
	return fmtOther
}

// formatCache resolves the number format kind of cells of one sheet,
// looking each style up once.
type formatCache struct {
	f      *excelize.File
	sheet  string
	styles map[int]numFmtKind
}

func newFormatCache(f *excelize.File, sheet string) *formatCache {
	return &formatCache{f: f, sheet: sheet, styles: make(map[int]numFmtKind)}
}

// kindAt returns the format kind of the cell at 0-based (col, row).
func (c *formatCache) kindAt(col, row int) numFmtKind {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmtOther
	}
	styleID, err := c.f.GetCellStyle(c.sheet, cell)
	if err != nil {
		return fmtOther
	}
	if kind, ok := c.styles[styleID]; ok {
		return kind
	}

	kind := fmtOther
	if style, err := c.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			kind = numFmtCodeKind(*style.CustomNumFmt)
		} else {
			kind = builtInNumFmtKinds[style.NumFmt]
		}
	}
	c.styles[styleID] = kind
	return kind
}
