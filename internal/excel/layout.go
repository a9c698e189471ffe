package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet geometry shared by every week.
const (
	lastCol  = 10 // J: Daily Total
	lastRow  = 12 // Weekly Totals
	firstDay = 5  // Monday's row
	lastDay  = 11 // Sunday's row
)

const (
	colorBlack = "#000000"
	colorGray  = "#808080"
)

type edge int

const (
	edgeLeft edge = iota
	edgeTop
	edgeRight
	edgeBottom
)

var edgeNames = [...]string{"left", "top", "right", "bottom"}

// cellFormat is everything a week sheet sets on a cell besides its content.
// It is comparable so identical formats share one workbook style.
type cellFormat struct {
	bold    bool
	center  bool
	numFmt  string
	fill    string
	borders [4]string // colour per edge, empty for none
}

func (c cellFormat) isZero() bool {
	return c == cellFormat{}
}

func (c cellFormat) style() *excelize.Style {
	s := &excelize.Style{}
	if c.bold {
		s.Font = &excelize.Font{Bold: true}
	}
	if c.center {
		s.Alignment = &excelize.Alignment{Horizontal: "center"}
	}
	if c.numFmt != "" {
		numFmt := c.numFmt
		s.CustomNumFmt = &numFmt
	}
	if c.fill != "" {
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{c.fill}}
	}
	for e, color := range c.borders {
		if color != "" {
			s.Border = append(s.Border, excelize.Border{Type: edgeNames[e], Color: color, Style: 1})
		}
	}
	return s
}

// cellRange is an inclusive rectangle of 1-based coordinates.
type cellRange struct {
	top, left, bottom, right int
}

// rng parses "A1" or "A1:B2". The references are constants, so a bad one
// is a programming error.
func rng(ref string) cellRange {
	from, to, ok := strings.Cut(ref, ":")
	if !ok {
		to = from
	}
	left, top, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		panic(fmt.Sprintf("excel: bad range %q: %v", ref, err))
	}
	right, bottom, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		panic(fmt.Sprintf("excel: bad range %q: %v", ref, err))
	}
	return cellRange{top: top, left: left, bottom: bottom, right: right}
}

// sheetLayout collects the formats of one week sheet before they are
// written, so each cell gets exactly one style however many regions
// touch it.
type sheetLayout struct {
	cells [lastRow][lastCol]cellFormat
}

func (l *sheetLayout) at(row, col int) *cellFormat {
	return &l.cells[row-1][col-1]
}

func (l *sheetLayout) each(r cellRange, fn func(c *cellFormat)) {
	for row := r.top; row <= r.bottom; row++ {
		for col := r.left; col <= r.right; col++ {
			fn(l.at(row, col))
		}
	}
}

func (l *sheetLayout) bold(ref string) {
	l.each(rng(ref), func(c *cellFormat) { c.bold = true })
}

func (l *sheetLayout) center(ref string) {
	l.each(rng(ref), func(c *cellFormat) { c.center = true })
}

func (l *sheetLayout) numFmt(ref, format string) {
	l.each(rng(ref), func(c *cellFormat) { c.numFmt = format })
}

func (l *sheetLayout) fill(ref, color string) {
	l.each(rng(ref), func(c *cellFormat) { c.fill = color })
}

// sides draws the left edge of the leftmost column and the right edge of
// the rightmost column on every row of the range.
func (l *sheetLayout) sides(ref, color string) {
	r := rng(ref)
	for row := r.top; row <= r.bottom; row++ {
		l.at(row, r.left).borders[edgeLeft] = color
		l.at(row, r.right).borders[edgeRight] = color
	}
}

// box draws the outline of the range. Interior edges are left alone.
func (l *sheetLayout) box(ref, color string) {
	l.sides(ref, color)
	r := rng(ref)
	for col := r.left; col <= r.right; col++ {
		l.at(r.top, col).borders[edgeTop] = color
		l.at(r.bottom, col).borders[edgeBottom] = color
	}
}

// apply writes every non-empty format to the sheet.
func (l *sheetLayout) apply(f *excelize.File, sheet string, styles *styleCache) error {
	for row := 1; row <= lastRow; row++ {
		for col := 1; col <= lastCol; col++ {
			format := *l.at(row, col)
			if format.isZero() {
				continue
			}
			id, err := styles.id(format)
			if err != nil {
				return fmt.Errorf("creating style: %w", err)
			}
			ref := cellRef(col, row)
			if err := f.SetCellStyle(sheet, ref, ref, id); err != nil {
				return fmt.Errorf("styling %s: %w", ref, err)
			}
		}
	}
	return nil
}
