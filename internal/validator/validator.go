package validator

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/timesheet/internal/calendar"
	"github.com/derekprior/timesheet/internal/excel"
)

// Violation represents a problem found in a timesheet workbook.
type Violation struct {
	Sheet   string
	Type    string // "error" or "warning"
	Message string
}

// timeCells are the pre-filled clock cells that must display as hh:mm.
var timeCells = []string{"C", "D", "E", "F"}

// Validate opens a timesheet workbook and checks its structure: week sheet
// names, their order, the period header, labels and formulas. Formulas are
// compared as text, never evaluated.
func Validate(path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets, err := readWeeks(f)
	if err != nil {
		return nil, err
	}

	var violations []Violation

	violations = append(violations, checkSequence(sheets)...)
	violations = append(violations, checkYearCoverage(sheets)...)
	for _, w := range sheets {
		violations = append(violations, checkPeriod(f, w)...)
		violations = append(violations, checkLabels(f, w)...)
		violations = append(violations, checkFormulas(f, w)...)
		violations = append(violations, checkTimeFormats(f, w)...)
	}

	return violations, nil
}

type week struct {
	Sheet  string
	Monday time.Time
}

// readWeeks decodes every sheet name into its Monday. Sheets that are not
// week sheets are an error: the workbook is not a timesheet.
func readWeeks(f *excelize.File) ([]week, error) {
	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	weeks := make([]week, 0, len(names))
	for _, name := range names {
		monday, err := calendar.ParseSheetName(name)
		if err != nil {
			return nil, fmt.Errorf("not a timesheet workbook: %w", err)
		}
		weeks = append(weeks, week{Sheet: name, Monday: monday})
	}
	return weeks, nil
}

func checkSequence(weeks []week) []Violation {
	var violations []Violation
	for i := 1; i < len(weeks); i++ {
		prev, cur := weeks[i-1], weeks[i]
		if want := prev.Monday.AddDate(0, 0, calendar.DaysPerWeek); !cur.Monday.Equal(want) {
			violations = append(violations, Violation{
				Sheet: cur.Sheet,
				Type:  "error",
				Message: fmt.Sprintf("follows %s; expected %s",
					prev.Sheet, calendar.SheetName(want)),
			})
		}
	}
	return violations
}

// checkYearCoverage warns when the weeks are not exactly those of a year.
// The year is taken from the last week, which never spills past it.
func checkYearCoverage(weeks []week) []Violation {
	year := weeks[len(weeks)-1].Monday.Year()
	want := calendar.Mondays(year)

	present := make(map[time.Time]bool, len(weeks))
	for _, w := range weeks {
		present[w.Monday] = true
	}

	missing := 0
	for _, m := range want {
		if !present[m] {
			missing++
		}
	}
	if missing > 0 || len(weeks) != len(want) {
		return []Violation{{
			Type: "warning",
			Message: fmt.Sprintf("workbook has %d weeks, %d of the %d weeks of %d are missing",
				len(weeks), missing, len(want), year),
		}}
	}
	return nil
}

func checkPeriod(f *excelize.File, w week) []Violation {
	raw, err := f.GetCellValue(w.Sheet, "B2", excelize.Options{RawCellValue: true})
	if err != nil {
		return []Violation{{Sheet: w.Sheet, Type: "error", Message: fmt.Sprintf("reading B2: %v", err)}}
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return []Violation{{Sheet: w.Sheet, Type: "error", Message: fmt.Sprintf("B2 = %q, want the week's Monday", raw)}}
	}
	got, err := excelize.ExcelDateToTime(serial, false)
	if err != nil || !got.Equal(w.Monday) {
		return []Violation{{
			Sheet:   w.Sheet,
			Type:    "error",
			Message: fmt.Sprintf("B2 is %s, want %s", got.Format("01/02/2006"), w.Monday.Format("01/02/2006")),
		}}
	}

	var violations []Violation
	if name, _ := f.GetCellValue(w.Sheet, "B1"); name == "" {
		violations = append(violations, Violation{Sheet: w.Sheet, Type: "warning", Message: "name in B1 is blank"})
	}
	return violations
}

func checkLabels(f *excelize.File, w week) []Violation {
	labels := excel.HeaderLabels()
	var violations []Violation
	for _, cell := range sortedCells(labels) {
		want := labels[cell]
		got, err := f.GetCellValue(w.Sheet, cell)
		if err != nil || got != want {
			violations = append(violations, Violation{
				Sheet:   w.Sheet,
				Type:    "error",
				Message: fmt.Sprintf("%s = %q, want %q", cell, got, want),
			})
		}
	}
	return violations
}

func checkFormulas(f *excelize.File, w week) []Violation {
	formulas := excel.WeekFormulas()
	var violations []Violation
	for _, cell := range sortedCells(formulas) {
		got, err := f.GetCellFormula(w.Sheet, cell)
		if err != nil || got != formulas[cell] {
			typ := "warning"
			if cell == "J12" {
				typ = "error" // the cross-check is what catches data-entry mistakes
			}
			violations = append(violations, Violation{
				Sheet:   w.Sheet,
				Type:    typ,
				Message: fmt.Sprintf("%s formula = %q, want %q", cell, got, formulas[cell]),
			})
		}
	}
	return violations
}

// checkTimeFormats warns about clock times that would render as plain
// numbers. Blank cells and text entries are fine.
func checkTimeFormats(f *excelize.File, w week) []Violation {
	var violations []Violation
	for row := 5; row <= 9; row++ {
		for _, col := range timeCells {
			cell := fmt.Sprintf("%s%d", col, row)
			raw, err := f.GetCellValue(w.Sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				continue
			}
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				continue
			}
			if !hasTimeFormat(f, w.Sheet, cell) {
				violations = append(violations, Violation{
					Sheet:   w.Sheet,
					Type:    "warning",
					Message: fmt.Sprintf("%s holds a time without the hh:mm format", cell),
				})
			}
		}
	}
	return violations
}

func hasTimeFormat(f *excelize.File, sheet, cell string) bool {
	id, err := f.GetCellStyle(sheet, cell)
	if err != nil || id == 0 {
		return false
	}
	style, err := f.GetStyle(id)
	if err != nil {
		return false
	}
	return style.CustomNumFmt != nil && *style.CustomNumFmt == excel.TimeFormat
}

// sortedCells orders cell references by row, then column.
func sortedCells(m map[string]string) []string {
	cells := make([]string, 0, len(m))
	for cell := range m {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		ci, ri, _ := excelize.CellNameToCoordinates(cells[i])
		cj, rj, _ := excelize.CellNameToCoordinates(cells[j])
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return cells
}
