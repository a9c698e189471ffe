package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/derekprior/timesheet/internal/calendar"
)

// DefaultFont is the workbook font used when none is configured.
const DefaultFont = "Calibri"

var clockLayouts = []string{"3:04 PM", "3:04PM", "15:04"}

// Clock is a time of day, stored as minutes past midnight.
type Clock struct {
	Minutes int
}

// At returns the Clock for the given hour (0-23) and minute.
func At(hour, minute int) Clock {
	return Clock{Minutes: hour*60 + minute}
}

// ParseClock parses "7:00 AM", "7:00AM" or "07:00".
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return At(t.Hour(), t.Minute()), nil
		}
	}
	return Clock{}, fmt.Errorf("invalid time %q", s)
}

// UnmarshalYAML reads a clock time such as "7:00 AM" or "16:00".
func (c *Clock) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseClock(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// DayFraction returns the clock as a fraction of a day, the way
// spreadsheets store times.
func (c Clock) DayFraction() float64 {
	return float64(c.Minutes) / (24 * 60)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Minutes/60, c.Minutes%60)
}

// Shift is one day's default clock-in and clock-out times.
type Shift struct {
	In       Clock `yaml:"in"`
	LunchOut Clock `yaml:"lunch_out"`
	LunchIn  Clock `yaml:"lunch_in"`
	Out      Clock `yaml:"out"`
}

func (s Shift) validate(label string) error {
	if s.In.Minutes >= s.LunchOut.Minutes {
		return fmt.Errorf("%s shift: in %s must be before lunch out %s", label, s.In, s.LunchOut)
	}
	if s.LunchOut.Minutes > s.LunchIn.Minutes {
		return fmt.Errorf("%s shift: lunch out %s must not be after lunch in %s", label, s.LunchOut, s.LunchIn)
	}
	if s.LunchIn.Minutes >= s.Out.Minutes {
		return fmt.Errorf("%s shift: lunch in %s must be before out %s", label, s.LunchIn, s.Out)
	}
	return nil
}

// Shifts holds the times pre-filled on Monday through Friday.
// Wednesday has its own entry for the shorter lunch.
type Shifts struct {
	Weekday   Shift `yaml:"weekday"`
	Wednesday Shift `yaml:"wednesday"`
}

// For returns the shift seeded on the given weekday. Weekends get no shift.
func (s Shifts) For(day time.Weekday) (Shift, bool) {
	switch day {
	case time.Saturday, time.Sunday:
		return Shift{}, false
	case time.Wednesday:
		return s.Wednesday, true
	default:
		return s.Weekday, true
	}
}

// DefaultShifts returns 7:00 AM to 4:00 PM with a half hour lunch at 12:30,
// and on Wednesdays lunch from 11:15 AM to 12:30 PM.
func DefaultShifts() Shifts {
	weekday := Shift{In: At(7, 0), LunchOut: At(12, 30), LunchIn: At(13, 0), Out: At(16, 0)}
	wednesday := weekday
	wednesday.LunchOut = At(11, 15)
	wednesday.LunchIn = At(12, 30)
	return Shifts{Weekday: weekday, Wednesday: wednesday}
}

// Config holds the settings for generating a timesheet workbook.
type Config struct {
	Name   string `yaml:"name"`
	Year   int    `yaml:"year"` // 0 means the default year
	Output string `yaml:"output"`
	Font   string `yaml:"font"`
	Shifts Shifts `yaml:"shifts"`
}

// Default returns a Config with every optional setting filled in.
func Default() *Config {
	return &Config{
		Font:   DefaultFont,
		Shifts: DefaultShifts(),
	}
}

// YearOrDefault returns the configured year, or DefaultYear(now) when unset.
func (c *Config) YearOrDefault(now time.Time) int {
	if c.Year != 0 {
		return c.Year
	}
	return DefaultYear(now)
}

// OutputOrDefault returns the configured output path, or
// timesheet-<year>.xlsx when unset.
func (c *Config) OutputOrDefault(year int) string {
	if c.Output != "" {
		return c.Output
	}
	return fmt.Sprintf("timesheet-%d.xlsx", year)
}

// YearChoices returns the ten years offered for selection, starting five
// years before now.
func YearChoices(now time.Time) []int {
	years := make([]int, 10)
	for i := range years {
		years[i] = now.Year() - 5 + i
	}
	return years
}

// DefaultYear is the year selected when none is given: next year, since
// timesheets are usually prepared ahead of time.
func DefaultYear(now time.Time) int {
	return now.Year() + 1
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
// Settings missing from the YAML keep their defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// Validate checks the settings that can be wrong after flags and the
// config file have been merged.
func (c *Config) Validate() error {
	if c.Year != 0 {
		if err := calendar.ValidateYear(c.Year); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Font) == "" {
		return fmt.Errorf("font must not be empty")
	}

	if c.Output != "" && strings.HasSuffix(c.Output, string(os.PathSeparator)) {
		return fmt.Errorf("output %q is a directory, not a file", c.Output)
	}

	if err := c.Shifts.Weekday.validate("weekday"); err != nil {
		return err
	}
	if err := c.Shifts.Wednesday.validate("wednesday"); err != nil {
		return err
	}

	return nil
}
