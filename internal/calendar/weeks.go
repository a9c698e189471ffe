// Package calendar enumerates the Monday-anchored work weeks of a year.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// SheetNameLayout is the time layout used to name a week's worksheet.
const SheetNameLayout = "20060102"

// DaysPerWeek is the number of day rows on a timesheet.
const DaysPerWeek = 7

// Mondays returns the Monday of every week that has at least one day in year,
// in ascending order. The first Monday is the one on or before January 1st,
// so it may fall in the previous year. The last Monday is the final one whose
// own year is still year, even though its week may run into the next year.
func Mondays(year int) []time.Time {
	first := MondayOnOrBefore(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))

	var mondays []time.Time
	for d := first; d.Year() <= year; d = d.AddDate(0, 0, DaysPerWeek) {
		mondays = append(mondays, d)
	}
	return mondays
}

// MondayOnOrBefore returns midnight UTC of the Monday on or before t.
func MondayOnOrBefore(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// Weekday: Sunday = 0, Monday = 1, ..., Saturday = 6
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekDays returns the seven dates Monday through Sunday starting at monday.
func WeekDays(monday time.Time) []time.Time {
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// SheetName returns the worksheet name for the week starting on monday.
func SheetName(monday time.Time) string {
	return monday.Format(SheetNameLayout)
}

// ParseSheetName decodes a worksheet name back into its Monday.
func ParseSheetName(name string) (time.Time, error) {
	d, err := time.Parse(SheetNameLayout, name)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid sheet name %q: %w", name, err)
	}
	if d.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("sheet name %q is a %s, not a Monday", name, d.Weekday())
	}
	return d, nil
}

// Years outside this range cannot be laid out in the 1900 date system.
// Serials before 1900-03-01 are off by one because of the phantom
// 1900-02-29, and the last week of 9999 would run past 9999-12-31.
const (
	MinYear = 1901
	MaxYear = 9998
)

// ErrYearOutOfRange is returned for years that cannot be laid out.
var ErrYearOutOfRange = errors.New("year out of range")

// ValidateYear reports whether year lies within MinYear..MaxYear.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d is not between %d and %d", ErrYearOutOfRange, year, MinYear, MaxYear)
	}
	return nil
}
