package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/derekprior/timesheet/internal/calendar"
	"github.com/derekprior/timesheet/internal/config"
	"github.com/derekprior/timesheet/internal/excel"
	"github.com/derekprior/timesheet/internal/validator"
)

const defaultConfigFile = "timesheet.yaml"

// loadConfig reads the config file if one was given or the default exists,
// and falls back to built-in defaults otherwise.
func loadConfig(configFlag string) (*config.Config, error) {
	path := configFlag
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return config.Default(), nil
		}
		path = defaultConfigFile
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Weekly timesheet workbook generator",
	}

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter timesheet.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	var (
		configFile string
		name       string
		year       int
		outputFile string
		force      bool
	)
	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a timesheet workbook for a year",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				cfg.Name = name
			}
			if cmd.Flags().Changed("year") {
				cfg.Year = year
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = outputFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runGenerate(cfg, force)
		},
	}
	generateCmd.Flags().StringVar(&configFile, "config", "", "Path to config file (default: timesheet.yaml in current directory, if present)")
	generateCmd.Flags().StringVarP(&name, "name", "n", "", "Name of the person the timesheet is for")
	generateCmd.Flags().IntVarP(&year, "year", "y", 0, "Year to generate (default: next year)")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output Excel file path (default: timesheet-<year>.xlsx)")
	generateCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file if it exists")

	validateCmd := &cobra.Command{
		Use:          "validate <timesheet.xlsx>",
		Short:        "Check that a workbook is an intact timesheet",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}

	yearsCmd := &cobra.Command{
		Use:   "years",
		Short: "List the years offered for generation",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runYears(time.Now())
		},
	}

	rootCmd.AddCommand(initCmd, generateCmd, validateCmd, yearsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runInit writes the starter config. It never replaces an existing file.
func runInit(outputPath string) error {
	file, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}
	if err != nil {
		return fmt.Errorf("creating config: %w", err)
	}

	_, err = file.WriteString(configTemplate)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("✓ Created starter config %s\n", outputPath)
	fmt.Println("  Edit the name and shifts, then run: timesheet generate --config", outputPath)
	return nil
}

const configTemplate = `# Timesheet Configuration
# =======================
# Settings for "timesheet generate". Command-line flags override them.

# Name printed at the top of every week.
name: ""

# Year to generate. Every week that has a day in the year gets a sheet,
# so the first sheet may start in late December of the previous year.
# Leave at 0 to generate next year.
year: 0

# Where to write the workbook. Defaults to timesheet-<year>.xlsx.
output: ""

# Workbook font.
font: Calibri

# Clock times pre-filled Monday through Friday. Weekends are left blank.
# Times may be written as "7:00 AM" or "07:00".
shifts:
  weekday:
    in: "7:00 AM"
    lunch_out: "12:30 PM"
    lunch_in: "1:00 PM"
    out: "4:00 PM"
  # Wednesdays have a shorter lunch.
  wednesday:
    in: "7:00 AM"
    lunch_out: "11:15 AM"
    lunch_in: "12:30 PM"
    out: "4:00 PM"
`

func runGenerate(cfg *config.Config, force bool) error {
	year := cfg.YearOrDefault(time.Now())
	outputPath := excel.OutputPath(cfg.OutputOrDefault(year))

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%s already exists; use --force to overwrite it", outputPath)
		}
	}

	mondays := calendar.Mondays(year)
	fmt.Printf("Generating %d weeks for %d (%s through %s)...\n", len(mondays), year,
		mondays[0].Format("01/02/2006"), mondays[len(mondays)-1].AddDate(0, 0, 6).Format("01/02/2006"))
	if cfg.Name == "" {
		fmt.Fprintf(os.Stderr, "⚠ No name given; the name cell will be left blank\n")
	}

	f, err := excel.Generate(cfg, year)
	if err != nil {
		if errors.Is(err, calendar.ErrYearOutOfRange) {
			return err
		}
		return fmt.Errorf("generating Excel: %w", err)
	}
	defer f.Close()

	if err := excel.Save(f, outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Printf("✓ Timesheet saved to %s\n", outputPath)
	return nil
}

func runValidate(path string) error {
	violations, err := validator.Validate(path)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errCount := 0
	warnCount := 0
	for _, v := range violations {
		where := ""
		if v.Sheet != "" {
			where = v.Sheet + ": "
		}
		switch v.Type {
		case "error":
			errCount++
			fmt.Printf("✗ %s%s\n", where, v.Message)
		case "warning":
			warnCount++
			fmt.Printf("⚠ %s%s\n", where, v.Message)
		}
	}

	fmt.Printf("\nValidation complete: %d errors, %d warnings\n", errCount, warnCount)

	if errCount > 0 {
		return fmt.Errorf("%d problems found", errCount)
	}
	return nil
}

func runYears(now time.Time) {
	def := config.DefaultYear(now)
	for _, y := range config.YearChoices(now) {
		marker := " "
		if y == def {
			marker = "*"
		}
		fmt.Printf("%s %d\n", marker, y)
	}
}
