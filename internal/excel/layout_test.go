package excel

import "testing"

func TestRng(t *testing.T) {
	tests := []struct {
		ref  string
		want cellRange
	}{
		{"A3:J4", cellRange{top: 3, left: 1, bottom: 4, right: 10}},
		{"J12", cellRange{top: 12, left: 10, bottom: 12, right: 10}},
		{"C5:F11", cellRange{top: 5, left: 3, bottom: 11, right: 6}},
	}
	for _, tt := range tests {
		if got := rng(tt.ref); got != tt.want {
			t.Errorf("rng(%q) = %+v, want %+v", tt.ref, got, tt.want)
		}
	}
}

func TestCellRef(t *testing.T) {
	tests := []struct {
		col, row int
		want     string
	}{
		{1, 1, "A1"},
		{10, 12, "J12"},
		{27, 3, "AA3"},
	}
	for _, tt := range tests {
		if got := cellRef(tt.col, tt.row); got != tt.want {
			t.Errorf("cellRef(%d, %d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
		if r := rng(tt.want); r.left != tt.col || r.top != tt.row {
			t.Errorf("rng(%q) = %+v, want col %d row %d", tt.want, r, tt.col, tt.row)
		}
	}
}

func TestBox(t *testing.T) {
	var l sheetLayout
	l.box("C3:F4", colorBlack)

	want := []struct {
		row, col int
		edge     edge
		color    string
	}{
		{3, 3, edgeLeft, colorBlack},
		{4, 3, edgeLeft, colorBlack},
		{3, 6, edgeRight, colorBlack},
		{3, 4, edgeTop, colorBlack},
		{4, 5, edgeBottom, colorBlack},
		// interior edges untouched
		{3, 4, edgeLeft, ""},
		{3, 4, edgeBottom, ""},
		{4, 4, edgeTop, ""},
		{3, 3, edgeRight, ""},
	}
	for _, w := range want {
		if got := l.at(w.row, w.col).borders[w.edge]; got != w.color {
			t.Errorf("%s %s = %q, want %q", cellRef(w.col, w.row), edgeNames[w.edge], got, w.color)
		}
	}

	if !l.at(2, 3).isZero() || !l.at(5, 3).isZero() || !l.at(3, 2).isZero() || !l.at(3, 7).isZero() {
		t.Error("box touched cells outside its range")
	}
}

func TestSides(t *testing.T) {
	var l sheetLayout
	l.sides("G5:I11", colorGray)

	for row := 5; row <= 11; row++ {
		if got := l.at(row, 7).borders[edgeLeft]; got != colorGray {
			t.Errorf("G%d left = %q, want gray", row, got)
		}
		if got := l.at(row, 9).borders[edgeRight]; got != colorGray {
			t.Errorf("I%d right = %q, want gray", row, got)
		}
		if got := l.at(row, 8); !got.isZero() {
			t.Errorf("H%d = %+v, want untouched", row, got)
		}
	}
	if l.at(5, 7).borders[edgeTop] != "" || l.at(11, 7).borders[edgeBottom] != "" {
		t.Error("sides should not draw top or bottom edges")
	}
}

func TestDrawLines(t *testing.T) {
	var l sheetLayout
	drawLines(&l)

	t.Run("gray sides keep the black data box", func(t *testing.T) {
		c5 := l.at(5, 3)
		if c5.borders[edgeLeft] != colorGray || c5.borders[edgeTop] != colorBlack {
			t.Errorf("C5 borders = %v, want gray left and black top", c5.borders)
		}
	})

	t.Run("totals cell boxed", func(t *testing.T) {
		j12 := l.at(12, 10)
		for e, color := range j12.borders {
			if color != colorBlack {
				t.Errorf("J12 %s = %q, want black", edgeNames[e], color)
			}
		}
	})

	t.Run("totals row filled", func(t *testing.T) {
		for col := 1; col <= lastCol; col++ {
			if l.at(12, col).fill != colorGray {
				t.Errorf("%s not filled", cellRef(col, 12))
			}
		}
		if l.at(11, 1).fill != "" {
			t.Error("A11 should not be filled")
		}
	})
}

func TestCellFormatStyle(t *testing.T) {
	var format cellFormat
	if s := format.style(); s.Font != nil || s.Alignment != nil || s.CustomNumFmt != nil || len(s.Border) != 0 {
		t.Errorf("zero format produced %+v", s)
	}

	format = cellFormat{bold: true, center: true, numFmt: TimeFormat, fill: colorGray}
	format.borders[edgeTop] = colorBlack
	s := format.style()
	if s.Font == nil || !s.Font.Bold {
		t.Error("expected bold font")
	}
	if s.Alignment == nil || s.Alignment.Horizontal != "center" {
		t.Error("expected centered alignment")
	}
	if s.CustomNumFmt == nil || *s.CustomNumFmt != TimeFormat {
		t.Errorf("number format = %v, want %q", s.CustomNumFmt, TimeFormat)
	}
	if len(s.Border) != 1 || s.Border[0].Type != "top" || s.Border[0].Color != colorBlack {
		t.Errorf("borders = %+v, want a black top edge", s.Border)
	}
	if s.Fill.Pattern != 1 || len(s.Fill.Color) != 1 || s.Fill.Color[0] != colorGray {
		t.Errorf("fill = %+v, want solid gray", s.Fill)
	}
}
