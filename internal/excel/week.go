package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/timesheet/internal/calendar"
	"github.com/derekprior/timesheet/internal/config"
)

// ErrorMarker is shown in J12 when the column totals and the daily totals
// disagree.
const ErrorMarker = "Error!"

// Header labels by cell.
var labels = []struct {
	cell, text string
}{
	{"A1", "Name:"},
	{"A2", "Time Period:"},
	{"A4", "Date"},
	{"B4", "Day Of Week"},
	{"C4", "In"},
	{"D4", "Out"},
	{"E4", "In"},
	{"F4", "Out"},
	{"G4", "Straight"},
	{"H4", "Holiday"},
	{"I4", "Personal"},
	{"J4", "Daily Total"},
	// Merged group headers
	{"C3", "Time"},
	{"G3", "Hourly Breakdown"},
	{"A12", "Weekly Totals"},
}

// HeaderLabels returns the static label text of a week sheet keyed by cell.
func HeaderLabels() map[string]string {
	m := make(map[string]string, len(labels))
	for _, l := range labels {
		m[l.cell] = l.text
	}
	return m
}

var merges = []string{
	"C3:F3",   // Time
	"G3:I3",   // Hourly Breakdown
	"A12:F12", // Weekly Totals
}

// Column widths in pixels, A through J.
var columnPixels = [lastCol]int{87, 93, 40, 40, 40, 40, 55, 54, 61, 72}

// AddWeekSheet appends the timesheet for the week starting on monday.
// The sheet is named after the Monday (YYYYMMDD); name is written verbatim
// and may be empty. Weekdays are pre-filled from shifts.
func AddWeekSheet(f *excelize.File, monday time.Time, name string, shifts config.Shifts) error {
	return addWeekSheet(f, newStyleCache(f), monday, name, shifts)
}

func addWeekSheet(f *excelize.File, styles *styleCache, monday time.Time, name string, shifts config.Shifts) error {
	sheet := calendar.SheetName(monday)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	showGridLines := false
	if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{ShowGridLines: &showGridLines}); err != nil {
		return fmt.Errorf("hiding gridlines on %s: %w", sheet, err)
	}

	var layout sheetLayout

	// Content first, formats last, so seeded times keep their time format.
	if err := writeLabels(f, sheet, &layout, monday, name); err != nil {
		return fmt.Errorf("writing labels on %s: %w", sheet, err)
	}
	if err := mergeCells(f, sheet, &layout); err != nil {
		return fmt.Errorf("merging cells on %s: %w", sheet, err)
	}
	if err := writeFormulas(f, sheet); err != nil {
		return fmt.Errorf("writing formulas on %s: %w", sheet, err)
	}
	if err := writeDefaultData(f, sheet, monday, shifts); err != nil {
		return fmt.Errorf("writing default data on %s: %w", sheet, err)
	}
	if err := setColumnWidths(f, sheet); err != nil {
		return fmt.Errorf("setting column widths on %s: %w", sheet, err)
	}

	drawLines(&layout)
	addCellFormats(&layout)
	if err := layout.apply(f, sheet, styles); err != nil {
		return fmt.Errorf("styling %s: %w", sheet, err)
	}
	return nil
}

func writeLabels(f *excelize.File, sheet string, layout *sheetLayout, monday time.Time, name string) error {
	if err := f.SetCellStr(sheet, "B1", name); err != nil {
		return err
	}
	day := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
	if err := f.SetCellValue(sheet, "B2", day); err != nil {
		return err
	}

	for _, l := range labels {
		if err := f.SetCellStr(sheet, l.cell, l.text); err != nil {
			return err
		}
		layout.bold(l.cell)
	}
	return nil
}

func mergeCells(f *excelize.File, sheet string, layout *sheetLayout) error {
	for _, ref := range merges {
		r := rng(ref)
		if err := f.MergeCell(sheet, cellRef(r.left, r.top), cellRef(r.right, r.bottom)); err != nil {
			return fmt.Errorf("merging %s: %w", ref, err)
		}
		layout.center(ref)
	}
	return nil
}

func drawLines(layout *sheetLayout) {
	// Header block and its column groups
	layout.box("A3:J4", colorBlack)
	layout.box("A5:J11", colorBlack)
	layout.box("A3:A4", colorBlack)
	layout.box("B3:B4", colorBlack)
	layout.box("C3:F4", colorBlack)
	layout.box("G3:I4", colorBlack)

	// Separate time entry from the hourly breakdown without closing the box
	layout.sides("C5:F11", colorGray)
	layout.sides("G5:I11", colorGray)

	// Totals
	layout.box("G12:I12", colorBlack)
	layout.box("J12", colorBlack)
	layout.fill("A12:J12", colorGray)
}

func addCellFormats(layout *sheetLayout) {
	layout.numFmt("B2", dateFormat)
	layout.numFmt("A5:A11", dateFormat)
	layout.numFmt("B5:B11", weekdayFormat)
	layout.numFmt("C5:F9", TimeFormat)
}

func setColumnWidths(f *excelize.File, sheet string) error {
	for i, px := range columnPixels {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, ColumnWidth(px)); err != nil {
			return fmt.Errorf("column %s: %w", col, err)
		}
	}
	return nil
}

// writeDefaultData pre-fills zero holiday and personal hours for the week
// and clock times for Monday through Friday.
func writeDefaultData(f *excelize.File, sheet string, monday time.Time, shifts config.Shifts) error {
	for row := firstDay; row <= lastDay; row++ {
		for _, col := range []string{"H", "I"} {
			if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), 0); err != nil {
				return err
			}
		}
	}

	for i, day := range calendar.WeekDays(monday) {
		shift, ok := shifts.For(day.Weekday())
		if !ok {
			continue
		}
		row := firstDay + i
		times := []struct {
			col   string
			clock config.Clock
		}{
			{"C", shift.In},
			{"D", shift.LunchOut},
			{"E", shift.LunchIn},
			{"F", shift.Out},
		}
		for _, t := range times {
			cell := fmt.Sprintf("%s%d", t.col, row)
			if err := f.SetCellFloat(sheet, cell, t.clock.DayFraction(), -1, 64); err != nil {
				return err
			}
		}
	}
	return nil
}
