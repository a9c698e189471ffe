package excel

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/timesheet/internal/calendar"
	"github.com/derekprior/timesheet/internal/config"
)

// Extension is appended to output paths that have none.
const Extension = ".xlsx"

// Generate creates a workbook with one timesheet per week of year, in
// chronological order, for the person named in cfg.
func Generate(cfg *config.Config, year int) (*excelize.File, error) {
	if err := calendar.ValidateYear(year); err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := f.SetDefaultFont(cfg.Font); err != nil {
		return nil, fmt.Errorf("setting default font: %w", err)
	}

	styles := newStyleCache(f)
	for _, monday := range calendar.Mondays(year) {
		if err := addWeekSheet(f, styles, monday, cfg.Name, cfg.Shifts); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Save writes the workbook to path. The file is written under a temporary
// name in the same directory and renamed into place, so a failed save never
// leaves a truncated workbook behind.
func Save(f *excelize.File, path string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("serializing workbook: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".timesheet-*"+Extension)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// OutputPath adds the workbook extension to path when it has none.
func OutputPath(path string) string {
	if filepath.Ext(path) == "" {
		return path + Extension
	}
	return path
}

// Column widths are measured in characters of the default font's widest
// digit (7 px for Calibri 11) plus 5 px of cell padding.
const (
	maxDigitWidth = 7
	cellPadding   = 5
)

// ColumnWidth converts a width in pixels to a column width, rounded to
// hundredths of a character.
func ColumnWidth(pixels int) float64 {
	chars := float64(pixels-cellPadding) / maxDigitWidth
	return math.Trunc(chars*100+0.5) / 100
}

// cellRef names the cell at 1-based col and row. Callers only pass
// coordinates inside the week grid.
func cellRef(col, row int) string {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(fmt.Sprintf("excel: bad cell %d,%d: %v", col, row, err))
	}
	return ref
}
