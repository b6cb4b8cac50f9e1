package style

import (
	"strings"

	"docxhtml/docx"
)

// CSS border styles produced from WordprocessingML border values.
const (
	BorderSolid  = "solid"
	BorderDouble = "double"
	BorderDotted = "dotted"
	BorderDashed = "dashed"
)

// Edge is one visible side of a border. Width is in points, empty Color
// means current text color.
type Edge struct {
	Width float64
	Style string
	Color string
}

// Borders holds four optional edges. Absent edge is nil, invisible ("nil",
// "none") edges are never represented.
type Borders struct {
	Top    *Edge
	Right  *Edge
	Bottom *Edge
	Left   *Edge
}

// IsEmpty reports if no side is present.
func (b Borders) IsEmpty() bool {
	return b.Top == nil && b.Right == nil && b.Bottom == nil && b.Left == nil
}

// OverrideWith returns copy of b where every side present in o replaces
// side of b.
func (b Borders) OverrideWith(o Borders) Borders {
	return Borders{
		Top:    firstEdge(o.Top, b.Top),
		Right:  firstEdge(o.Right, b.Right),
		Bottom: firstEdge(o.Bottom, b.Bottom),
		Left:   firstEdge(o.Left, b.Left),
	}
}

// FillMissing returns copy of b where sides absent in b are taken from
// fallback.
func (b Borders) FillMissing(fallback Borders) Borders {
	return fallback.OverrideWith(b)
}

func firstEdge(a, b *Edge) *Edge {
	if a != nil {
		return a
	}
	return b
}

// ParseEdge converts border element into edge. Nil is returned for absent,
// blank and "nil"/"none" borders.
func ParseEdge(e *docx.BorderEdge, theme docx.ThemeColors) *Edge {
	if e == nil {
		return nil
	}
	val := strings.ToLower(strings.TrimSpace(e.Val))
	if val == "" {
		return nil
	}
	cssStyle := edgeStyle(val)
	if cssStyle == "" {
		return nil
	}
	width := 0.5
	if e.Size != nil && *e.Size > 0 {
		width = float64(*e.Size) / 8
	}
	color := docx.NormalizeColor(e.Color)
	if color == "" {
		color = ThemeColor(theme, e.ThemeColor, e.ThemeTint, e.ThemeShade)
	}
	return &Edge{Width: width, Style: cssStyle, Color: color}
}

func edgeStyle(val string) string {
	switch val {
	case "nil", "none":
		return ""
	case "double", "triple",
		"thickthinmediumgap", "thinthickmediumgap", "thickbetweenthinmediumgap", "thinthickthinmediumgap",
		"thickthinlargegap", "thinthicklargegap", "thickbetweenthinlargegap", "thinthickthinlargegap",
		"doublewave":
		return BorderDouble
	case "dotted", "dotdash", "dotdotdash", "dashdot", "dashdotdot":
		return BorderDotted
	case "dashed", "dashsmallgap", "dashlargegap":
		return BorderDashed
	default:
		return BorderSolid
	}
}

// ParseBorders converts four outer sides of a border block (pBdr,
// tcBorders).
func ParseBorders(b *docx.Borders, theme docx.ThemeColors) Borders {
	if b == nil {
		return Borders{}
	}
	return Borders{
		Top:    ParseEdge(b.Top, theme),
		Right:  ParseEdge(b.Right, theme),
		Bottom: ParseEdge(b.Bottom, theme),
		Left:   ParseEdge(b.Left, theme),
	}
}

// RunBorder expands single run border (bdr) to all four sides.
func RunBorder(e *docx.BorderEdge, theme docx.ThemeColors) Borders {
	edge := ParseEdge(e, theme)
	if edge == nil {
		return Borders{}
	}
	return Borders{Top: edge, Right: edge, Bottom: edge, Left: edge}
}

// TableBorders splits table border block. InsideH is kept on top and bottom
// sides, InsideV on left and right sides.
type TableBorders struct {
	Perimeter Borders
	InsideH   Borders
	InsideV   Borders
}

// ParseTableBorders converts tblBorders.
func ParseTableBorders(b *docx.Borders, theme docx.ThemeColors) TableBorders {
	if b == nil {
		return TableBorders{}
	}
	tb := TableBorders{Perimeter: ParseBorders(b, theme)}
	if h := ParseEdge(b.InsideH, theme); h != nil {
		tb.InsideH = Borders{Top: h, Bottom: h}
	}
	if v := ParseEdge(b.InsideV, theme); v != nil {
		tb.InsideV = Borders{Right: v, Left: v}
	}
	return tb
}

// IsEmpty reports if table has no borders at all.
func (tb TableBorders) IsEmpty() bool {
	return tb.Perimeter.IsEmpty() && tb.InsideH.IsEmpty() && tb.InsideV.IsEmpty()
}

// OverrideWith applies direct table borders on top of style borders.
func (tb TableBorders) OverrideWith(direct TableBorders) TableBorders {
	return TableBorders{
		Perimeter: tb.Perimeter.OverrideWith(direct.Perimeter),
		InsideH:   tb.InsideH.OverrideWith(direct.InsideH),
		InsideV:   tb.InsideV.OverrideWith(direct.InsideV),
	}
}

// CellBorders composes final borders of a cell. Cell own borders win, then
// region borders fill missing sides and whatever is still missing comes from
// table perimeter for boundary sides or from inside edges otherwise.
func CellBorders(own, region Borders, table TableBorders, row, col, rows, cols int) Borders {
	b := own.FillMissing(region)
	if b.Top == nil {
		if row == 0 {
			b.Top = table.Perimeter.Top
		} else {
			b.Top = table.InsideH.Top
		}
	}
	if b.Bottom == nil {
		if row == rows-1 {
			b.Bottom = table.Perimeter.Bottom
		} else {
			b.Bottom = table.InsideH.Bottom
		}
	}
	if b.Left == nil {
		if col == 0 {
			b.Left = table.Perimeter.Left
		} else {
			b.Left = table.InsideV.Left
		}
	}
	if b.Right == nil {
		if col == cols-1 {
			b.Right = table.Perimeter.Right
		} else {
			b.Right = table.InsideV.Right
		}
	}
	return b
}
