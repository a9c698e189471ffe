package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Daily straight hours above this are capped on weekends.
const weekendHourCap = 8

// straightHours is worked time from the row's in/out pairs, in hours.
func straightHours(row int) string {
	return fmt.Sprintf("((D%[1]d-C%[1]d)+(F%[1]d-E%[1]d))*24", row)
}

// WeekFormulas returns the formula of every computed cell on a week sheet,
// keyed by cell. Formulas are stored without the leading '='.
func WeekFormulas() map[string]string {
	formulas := make(map[string]string)

	// Dates chain down from the Monday in B2; blank B2 blanks the week.
	formulas["A5"] = `IF(B2 <> "", B2, "")`
	for row := firstDay + 1; row <= lastDay; row++ {
		formulas[fmt.Sprintf("A%d", row)] = fmt.Sprintf(`IF(A%[1]d <> "", A%[1]d+1, "")`, row-1)
	}

	for row := firstDay; row <= lastDay; row++ {
		// Day names come from the weekday number format.
		formulas[fmt.Sprintf("B%d", row)] = fmt.Sprintf("A%d", row)

		hours := straightHours(row)
		if row > firstDay+4 {
			hours = fmt.Sprintf("IF(%[1]s>%[2]d,%[2]d,%[1]s)", hours, weekendHourCap)
		}
		formulas[fmt.Sprintf("G%d", row)] = hours

		formulas[fmt.Sprintf("J%d", row)] = fmt.Sprintf("SUM(G%[1]d:I%[1]d)", row)
	}

	for _, col := range []string{"G", "H", "I"} {
		formulas[col+"12"] = fmt.Sprintf("SUM(%[1]s%[2]d:%[1]s%[3]d)", col, firstDay, lastDay)
	}
	// Column totals must agree with the daily totals.
	formulas["J12"] = fmt.Sprintf(`IF(SUM(G12:I12)=SUM(J%d:J%d),SUM(G12:I12),"%s")`, firstDay, lastDay, ErrorMarker)

	return formulas
}

func writeFormulas(f *excelize.File, sheet string) error {
	formulas := WeekFormulas()
	for row := 1; row <= lastRow; row++ {
		for col := 1; col <= lastCol; col++ {
			ref := cellRef(col, row)
			formula, ok := formulas[ref]
			if !ok {
				continue
			}
			if err := f.SetCellFormula(sheet, ref, formula); err != nil {
				return fmt.Errorf("%s: %w", ref, err)
			}
		}
	}
	return nil
}
