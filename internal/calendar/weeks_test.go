package calendar

import (
	"errors"
	"testing"
	"time"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMondays(t *testing.T) {
	tests := []struct {
		year  int
		first string
		last  string
		count int
	}{
		{2023, "2022-12-26", "2023-12-25", 53}, // Jan 1 is a Sunday
		{2024, "2024-01-01", "2024-12-30", 53}, // Jan 1 is a Monday, leap year
		{2025, "2024-12-30", "2025-12-29", 53}, // Jan 1 is a Wednesday
		{2026, "2025-12-29", "2026-12-28", 53}, // Jan 1 is a Thursday
		{2019, "2018-12-31", "2019-12-30", 53}, // Jan 1 is a Tuesday
		{2021, "2020-12-28", "2021-12-27", 53}, // Jan 1 is a Friday
		{2022, "2021-12-27", "2022-12-26", 53}, // Jan 1 is a Saturday
		{2018, "2018-01-01", "2018-12-31", 53},
		{2017, "2016-12-26", "2017-12-25", 53},
	}

	for _, tt := range tests {
		mondays := Mondays(tt.year)
		if len(mondays) != tt.count {
			t.Errorf("Mondays(%d) returned %d weeks, want %d", tt.year, len(mondays), tt.count)
		}
		if len(mondays) == 0 {
			continue
		}
		if got := mondays[0]; !got.Equal(mustDate(tt.first)) {
			t.Errorf("Mondays(%d) first = %s, want %s", tt.year, got.Format("2006-01-02"), tt.first)
		}
		if got := mondays[len(mondays)-1]; !got.Equal(mustDate(tt.last)) {
			t.Errorf("Mondays(%d) last = %s, want %s", tt.year, got.Format("2006-01-02"), tt.last)
		}
	}
}

func TestMondaysProperties(t *testing.T) {
	for year := MinYear; year <= 2100; year++ {
		mondays := Mondays(year)
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

		first := mondays[0]
		if first.After(jan1) || !first.After(jan1.AddDate(0, 0, -7)) {
			t.Errorf("year %d: first Monday %s is not the Monday on or before Jan 1", year, first.Format("2006-01-02"))
		}

		for i, m := range mondays {
			if m.Weekday() != time.Monday {
				t.Errorf("year %d: %s is a %s", year, m.Format("2006-01-02"), m.Weekday())
			}
			if i > 0 && m.Sub(mondays[i-1]) != 7*24*time.Hour {
				t.Errorf("year %d: %s is not 7 days after %s", year,
					m.Format("2006-01-02"), mondays[i-1].Format("2006-01-02"))
			}
		}

		last := mondays[len(mondays)-1]
		if last.Year() > year {
			t.Errorf("year %d: last Monday %s is past the year", year, last.Format("2006-01-02"))
		}
		if next := last.AddDate(0, 0, 7); next.Year() <= year {
			t.Errorf("year %d: next Monday %s should have been included", year, next.Format("2006-01-02"))
		}
	}
}

func TestMondayOnOrBefore(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-01", "2024-01-01"},
		{"2024-01-02", "2024-01-01"},
		{"2024-01-07", "2024-01-01"},
		{"2024-01-08", "2024-01-08"},
		{"2019-01-01", "2018-12-31"},
	}
	for _, tt := range tests {
		if got := MondayOnOrBefore(mustDate(tt.in)); !got.Equal(mustDate(tt.want)) {
			t.Errorf("MondayOnOrBefore(%s) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(mustDate("2023-12-25"))
	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	if days[0].Weekday() != time.Monday || days[6].Weekday() != time.Sunday {
		t.Errorf("week runs %s..%s, want Monday..Sunday", days[0].Weekday(), days[6].Weekday())
	}
	if !days[6].Equal(mustDate("2023-12-31")) {
		t.Errorf("last day = %s, want 2023-12-31", days[6].Format("2006-01-02"))
	}
}

func TestSheetName(t *testing.T) {
	monday := mustDate("2022-12-26")
	name := SheetName(monday)
	if name != "20221226" {
		t.Errorf("SheetName = %q, want 20221226", name)
	}

	t.Run("round trip", func(t *testing.T) {
		for _, m := range Mondays(2023) {
			got, err := ParseSheetName(SheetName(m))
			if err != nil {
				t.Fatalf("ParseSheetName(%q): %v", SheetName(m), err)
			}
			if !got.Equal(m) {
				t.Errorf("ParseSheetName(%q) = %v, want %v", SheetName(m), got, m)
			}
		}
	})

	t.Run("rejects non-dates", func(t *testing.T) {
		if _, err := ParseSheetName("Sheet1"); err == nil {
			t.Error("expected error for Sheet1")
		}
	})

	t.Run("rejects non-Mondays", func(t *testing.T) {
		if _, err := ParseSheetName("20231227"); err == nil {
			t.Error("expected error for a Wednesday")
		}
	})
}

func TestValidateYear(t *testing.T) {
	for _, year := range []int{MinYear, 2024, MaxYear} {
		if err := ValidateYear(year); err != nil {
			t.Errorf("ValidateYear(%d) = %v, want nil", year, err)
		}
	}
	for _, year := range []int{0, -1, MinYear - 1, MaxYear + 1, 10000} {
		err := ValidateYear(year)
		if !errors.Is(err, ErrYearOutOfRange) {
			t.Errorf("ValidateYear(%d) = %v, want ErrYearOutOfRange", year, err)
		}
	}
}
