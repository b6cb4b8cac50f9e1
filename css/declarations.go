package css

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"docxhtml/docx"
	"docxhtml/style"
)

// Declarations is ordered list of "property:value" items of one rule.
type Declarations []string

// String joins declarations the way they are written into stylesheet.
func (d Declarations) String() string {
	return strings.Join(d, ";")
}

func (d Declarations) add(property, value string) Declarations {
	return append(d, property+":"+value)
}

// Paragraph holds CSS values of a resolved paragraph.
type Paragraph struct {
	TextAlign       string
	MarginTop       *Length
	MarginBottom    *Length
	MarginLeft      *Length
	MarginRight     *Length
	TextIndent      *Length
	LineHeight      string
	FontSize        *Length
	FontFamily      string
	Background      string
	Borders         style.Borders
	KeepTogether    bool
	KeepWithNext    bool
	PageBreakBefore bool
}

// NewParagraph materializes resolved paragraph. Font of the paragraph is
// taken from run resolved without direct formatting.
func NewParagraph(p style.Paragraph, run style.Run) Paragraph {
	res := Paragraph{
		TextAlign:       TextAlign(p.Alignment),
		TextIndent:      TextIndent(p.Indentation),
		LineHeight:      LineHeight(p.Spacing),
		FontSize:        HalfPoints(run.Size),
		FontFamily:      FontFamily(run.Fonts),
		Background:      p.Shading,
		Borders:         p.Borders,
		KeepTogether:    p.KeepTogether,
		KeepWithNext:    p.KeepWithNext,
		PageBreakBefore: p.PageBreakBefore,
	}
	if p.Spacing != nil {
		res.MarginTop = Twips(p.Spacing.Before)
		res.MarginBottom = Twips(p.Spacing.After)
	}
	if p.Indentation != nil {
		res.MarginLeft = Twips(p.Indentation.Left)
		res.MarginRight = Twips(p.Indentation.Right)
	}
	return res
}

// Declarations lists paragraph properties in fixed order.
func (p Paragraph) Declarations() Declarations {
	var d Declarations
	if p.TextAlign != "" {
		d = d.add("text-align", p.TextAlign)
	}
	if p.MarginTop != nil {
		d = d.add("margin-top", p.MarginTop.String())
	}
	if p.MarginBottom != nil {
		d = d.add("margin-bottom", p.MarginBottom.String())
	}
	if p.MarginLeft != nil {
		d = d.add("margin-left", p.MarginLeft.String())
	}
	if p.MarginRight != nil {
		d = d.add("margin-right", p.MarginRight.String())
	}
	if p.TextIndent != nil {
		d = d.add("text-indent", p.TextIndent.String())
	}
	if p.LineHeight != "" {
		d = d.add("line-height", p.LineHeight)
	}
	if p.FontSize != nil {
		d = d.add("font-size", p.FontSize.String())
	}
	if p.FontFamily != "" {
		d = d.add("font-family", p.FontFamily)
	}
	if p.Background != "" {
		d = d.add("background-color", p.Background)
	}
	d = appendBorders(d, p.Borders)
	if p.KeepTogether {
		d = d.add("page-break-inside", "avoid")
		d = d.add("break-inside", "avoid")
	}
	if p.KeepWithNext {
		d = d.add("page-break-after", "avoid")
		d = d.add("break-after", "avoid")
	}
	if p.PageBreakBefore {
		d = d.add("page-break-before", "always")
		d = d.add("break-before", "page")
	}
	return d
}

// Run holds CSS values of a resolved run.
type Run struct {
	Bold            bool
	Italic          bool
	SmallCaps       bool
	AllCaps         bool
	DecorationLines []string
	DecorationStyle string
	Color           string
	Background      string
	FontSize        *Length
	FontFamily      string
	VerticalAlign   string
	Borders         style.Borders
}

// NewRun materializes resolved run.
func NewRun(r style.Run) Run {
	res := Run{
		Bold:            r.Bold,
		Italic:          r.Italic,
		SmallCaps:       r.SmallCaps,
		AllCaps:         r.AllCaps,
		DecorationStyle: DecorationStyle(r.UnderlineType, r.DoubleStrike),
		Color:           docx.NormalizeColor(r.Color),
		Background:      docx.NormalizeHighlight(r.Highlight),
		FontSize:        HalfPoints(r.Size),
		FontFamily:      FontFamily(r.Fonts),
		VerticalAlign:   VerticalAlign(r.VerticalAlign),
		Borders:         r.Border,
	}
	if r.Underline && !strings.EqualFold(r.UnderlineType, "none") {
		res.DecorationLines = append(res.DecorationLines, "underline")
	}
	if r.Strike || r.DoubleStrike {
		res.DecorationLines = append(res.DecorationLines, "line-through")
	}
	return res
}

// Declarations lists run properties in fixed order.
func (r Run) Declarations() Declarations {
	var d Declarations
	if r.Bold {
		d = d.add("font-weight", "bold")
	}
	if r.Italic {
		d = d.add("font-style", "italic")
	}
	if r.FontSize != nil {
		d = d.add("font-size", r.FontSize.String())
	}
	if r.FontFamily != "" {
		d = d.add("font-family", r.FontFamily)
	}
	if r.Color != "" {
		d = d.add("color", r.Color)
	}
	if r.Background != "" {
		d = d.add("background-color", r.Background)
	}
	if r.SmallCaps {
		d = d.add("font-variant", "small-caps")
	}
	if r.AllCaps {
		d = d.add("text-transform", "uppercase")
	}
	if len(r.DecorationLines) > 0 {
		d = d.add("text-decoration-line", strings.Join(r.DecorationLines, " "))
	}
	if r.DecorationStyle != "" {
		d = d.add("text-decoration-style", r.DecorationStyle)
	}
	if r.VerticalAlign != "" {
		d = d.add("vertical-align", r.VerticalAlign)
	}
	return appendBorders(d, r.Borders)
}

// Box holds CSS values shared by tables, rows and cells.
type Box struct {
	Background string
	Borders    style.Borders
}

// Declarations lists background followed by border sides.
func (b Box) Declarations() Declarations {
	var d Declarations
	if b.Background != "" {
		d = d.add("background-color", b.Background)
	}
	return appendBorders(d, b.Borders)
}

func appendBorders(d Declarations, b style.Borders) Declarations {
	d = appendEdge(d, "border-top", b.Top)
	d = appendEdge(d, "border-right", b.Right)
	d = appendEdge(d, "border-bottom", b.Bottom)
	return appendEdge(d, "border-left", b.Left)
}

func appendEdge(d Declarations, property string, e *style.Edge) Declarations {
	if e == nil {
		return d
	}
	color := e.Color
	if color == "" {
		color = "currentColor"
	}
	return d.add(property, Points(e.Width).String()+" "+e.Style+" "+color)
}

// TextAlign maps paragraph justification, every justified variant becomes
// "justify".
func TextAlign(a docx.Alignment) string {
	switch a {
	case "":
		return ""
	case docx.AlignLeft:
		return "left"
	case docx.AlignCenter:
		return "center"
	case docx.AlignRight:
		return "right"
	default:
		return "justify"
	}
}

// TextIndent prefers first line indentation, hanging indentation becomes
// negative indent.
func TextIndent(ind *docx.Indentation) *Length {
	if ind == nil {
		return nil
	}
	if ind.FirstLine != nil {
		return Twips(ind.FirstLine)
	}
	if ind.Hanging != nil {
		return Twips(ind.Hanging).Negate()
	}
	return nil
}

// LineHeight converts spacing line value. With "auto" rule value is
// multiple of 240, otherwise it is exact height in twips.
func LineHeight(sp *docx.Spacing) string {
	if sp == nil || sp.Line == nil || *sp.Line <= 0 {
		return ""
	}
	rule := sp.LineRule
	if rule == "" || strings.EqualFold(rule, "auto") {
		return FormatDecimal(float64(*sp.Line) / 240)
	}
	return Twips(sp.Line).String()
}

// VerticalAlign maps vertAlign, baseline and unknown values are dropped.
func VerticalAlign(v string) string {
	switch v {
	case "superscript":
		return "super"
	case "subscript":
		return "sub"
	}
	return ""
}

// DecorationStyle selects text-decoration-style, double strike wins over
// underline type.
func DecorationStyle(underline string, doubleStrike bool) string {
	if doubleStrike {
		return "double"
	}
	switch strings.ToLower(strings.TrimSpace(underline)) {
	case "double":
		return "double"
	case "dotted", "dotdash", "dotdotdash":
		return "dotted"
	case "dash", "dashdot", "dashdotdot":
		return "dashed"
	case "wave":
		return "wavy"
	case "thick":
		return "solid"
	}
	return ""
}

var genericFamilies = map[string]bool{
	"serif":      true,
	"sans-serif": true,
	"monospace":  true,
	"cursive":    true,
	"fantasy":    true,
	"system-ui":  true,
}

// FontFamily renders font stack as font-family value. Generic families are
// written as keywords, every other name is quoted and escaped.
func FontFamily(stack []string) string {
	names := make([]string, 0, len(stack))
	for _, font := range stack {
		if name := fontName(font); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func fontName(font string) string {
	font = strings.TrimSpace(font)
	if font == "" {
		return ""
	}
	if lower := strings.ToLower(font); genericFamilies[lower] {
		return lower
	}
	var b strings.Builder
	b.Grow(len(font) + 2)
	b.WriteByte('"')
	for _, r := range font {
		switch {
		case unicode.IsControl(r) || r == utf8.RuneError:
			// dropped
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case strings.ContainsRune("<>&;{}", r):
			// markup and rule delimiters never reach <style> as is
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 1 {
		return ""
	}
	b.WriteByte('"')
	return b.String()
}
