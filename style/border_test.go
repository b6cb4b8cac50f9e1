package style

import (
	"testing"

	"docxhtml/docx"
)

func intp(v int) *int { return &v }

func TestParseEdge(t *testing.T) {
	theme := docx.ThemeColors{"accent1": "#4472c4"}
	tests := []struct {
		name string
		in   *docx.BorderEdge
		want *Edge
	}{
		{name: "nil", in: nil, want: nil},
		{name: "blank val", in: &docx.BorderEdge{Size: intp(4)}, want: nil},
		{name: "nil val", in: &docx.BorderEdge{Val: "nil", Size: intp(4), Color: "FF0000"}, want: nil},
		{name: "none val", in: &docx.BorderEdge{Val: "None", Size: intp(4)}, want: nil},
		{name: "single", in: &docx.BorderEdge{Val: "single", Size: intp(4), Color: "FF0000"}, want: &Edge{Width: 0.5, Style: BorderSolid, Color: "#ff0000"}},
		{name: "missing size", in: &docx.BorderEdge{Val: "single"}, want: &Edge{Width: 0.5, Style: BorderSolid}},
		{name: "zero size", in: &docx.BorderEdge{Val: "thick", Size: intp(0)}, want: &Edge{Width: 0.5, Style: BorderSolid}},
		{name: "double", in: &docx.BorderEdge{Val: "double", Size: intp(12)}, want: &Edge{Width: 1.5, Style: BorderDouble}},
		{name: "gap variant", in: &docx.BorderEdge{Val: "thinThickSmallGap", Size: intp(24)}, want: &Edge{Width: 3, Style: BorderSolid}},
		{name: "large gap", in: &docx.BorderEdge{Val: "thickThinLargeGap", Size: intp(8)}, want: &Edge{Width: 1, Style: BorderDouble}},
		{name: "dotted", in: &docx.BorderEdge{Val: "dotDash", Size: intp(8)}, want: &Edge{Width: 1, Style: BorderDotted}},
		{name: "dashed", in: &docx.BorderEdge{Val: "dashSmallGap", Size: intp(8)}, want: &Edge{Width: 1, Style: BorderDashed}},
		{name: "auto color", in: &docx.BorderEdge{Val: "single", Size: intp(8), Color: "auto"}, want: &Edge{Width: 1, Style: BorderSolid}},
		{name: "theme color", in: &docx.BorderEdge{Val: "single", Size: intp(8), Color: "auto", ThemeColor: "accent1", ThemeShade: "FF"},
			want: &Edge{Width: 1, Style: BorderSolid, Color: "#000000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEdge(tt.in, theme)
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("ParseEdge() = %+v, want %+v", got, tt.want)
			case *got != *tt.want:
				t.Errorf("ParseEdge() = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestBorders_OverrideAndFill(t *testing.T) {
	a := &Edge{Width: 1, Style: BorderSolid}
	b := &Edge{Width: 2, Style: BorderDouble}
	c := &Edge{Width: 3, Style: BorderDashed}

	base := Borders{Top: a, Left: a}
	over := Borders{Top: b, Right: c}

	got := base.OverrideWith(over)
	if got.Top != b || got.Right != c || got.Left != a || got.Bottom != nil {
		t.Errorf("OverrideWith() = %+v", got)
	}

	got = base.FillMissing(over)
	if got.Top != a || got.Right != c || got.Left != a || got.Bottom != nil {
		t.Errorf("FillMissing() = %+v", got)
	}

	if !(Borders{}).IsEmpty() {
		t.Error("zero Borders must be empty")
	}
	if base.IsEmpty() {
		t.Error("Borders with sides must not be empty")
	}
}

func TestParseTableBorders(t *testing.T) {
	in := &docx.Borders{
		Top:     &docx.BorderEdge{Val: "single", Size: intp(8)},
		Bottom:  &docx.BorderEdge{Val: "none"},
		InsideH: &docx.BorderEdge{Val: "dotted", Size: intp(4)},
		InsideV: &docx.BorderEdge{Val: "nil"},
	}
	tb := ParseTableBorders(in, nil)
	if tb.Perimeter.Top == nil || tb.Perimeter.Bottom != nil {
		t.Errorf("perimeter = %+v", tb.Perimeter)
	}
	if tb.InsideH.Top == nil || tb.InsideH.Top != tb.InsideH.Bottom || tb.InsideH.Left != nil || tb.InsideH.Right != nil {
		t.Errorf("insideH = %+v", tb.InsideH)
	}
	if !tb.InsideV.IsEmpty() {
		t.Errorf("insideV = %+v, want empty", tb.InsideV)
	}
	if !ParseTableBorders(nil, nil).IsEmpty() {
		t.Error("nil tblBorders must give empty borders")
	}
}

func TestRunBorder(t *testing.T) {
	b := RunBorder(&docx.BorderEdge{Val: "single", Size: intp(4), Color: "00FF00"}, nil)
	if b.Top == nil || b.Top != b.Right || b.Top != b.Bottom || b.Top != b.Left {
		t.Errorf("RunBorder() = %+v", b)
	}
	if !RunBorder(&docx.BorderEdge{Val: "none"}, nil).IsEmpty() {
		t.Error("none run border must be empty")
	}
}

func TestCellBorders(t *testing.T) {
	perim := &Edge{Width: 1, Style: BorderSolid, Color: "#000000"}
	inH := &Edge{Width: 0.5, Style: BorderDotted}
	inV := &Edge{Width: 0.5, Style: BorderDashed}
	own := &Edge{Width: 2, Style: BorderDouble}
	reg := &Edge{Width: 3, Style: BorderSolid, Color: "#ff0000"}

	table := TableBorders{
		Perimeter: Borders{Top: perim, Right: perim, Bottom: perim, Left: perim},
		InsideH:   Borders{Top: inH, Bottom: inH},
		InsideV:   Borders{Right: inV, Left: inV},
	}

	tests := []struct {
		name     string
		own      Borders
		region   Borders
		row, col int
		want     Borders
	}{
		{
			name: "top left corner",
			row:  0,
			col:  0,
			want: Borders{Top: perim, Right: inV, Bottom: inH, Left: perim},
		},
		{
			name: "bottom right corner",
			row:  2,
			col:  2,
			want: Borders{Top: inH, Right: perim, Bottom: perim, Left: inV},
		},
		{
			name: "middle",
			row:  1,
			col:  1,
			want: Borders{Top: inH, Right: inV, Bottom: inH, Left: inV},
		},
		{
			name:   "own beats region beats table",
			own:    Borders{Top: own},
			region: Borders{Top: reg, Left: reg},
			row:    1,
			col:    1,
			want:   Borders{Top: own, Right: inV, Bottom: inH, Left: reg},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CellBorders(tt.own, tt.region, table, tt.row, tt.col, 3, 3)
			if got != tt.want {
				t.Errorf("CellBorders() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
