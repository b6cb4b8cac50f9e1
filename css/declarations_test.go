package css

import (
	"slices"
	"strings"
	"testing"

	"docxhtml/docx"
	"docxhtml/style"
)

func TestRunDeclarations(t *testing.T) {
	tests := []struct {
		name string
		run  style.Run
		want []string
	}{
		{
			name: "empty",
			run:  style.Run{},
			want: nil,
		},
		{
			name: "bold red 16pt",
			run:  style.Run{Bold: true, Color: "FF0000", Size: intp(32)},
			want: []string{"font-weight:bold", "font-size:16pt", "color:#ff0000"},
		},
		{
			name: "auto color and no highlight",
			run:  style.Run{Color: "auto", Highlight: "none"},
			want: nil,
		},
		{
			name: "highlight",
			run:  style.Run{Italic: true, Highlight: "yellow"},
			want: []string{"font-style:italic", "background-color:#ffff00"},
		},
		{
			name: "decorations",
			run:  style.Run{Underline: true, UnderlineType: "wave", Strike: true},
			want: []string{"text-decoration-line:underline line-through", "text-decoration-style:wavy"},
		},
		{
			name: "underline none",
			run:  style.Run{Underline: true, UnderlineType: "none"},
			want: nil,
		},
		{
			name: "double strike",
			run:  style.Run{Strike: true, DoubleStrike: true, Underline: true, UnderlineType: "dotted"},
			want: []string{"text-decoration-line:underline line-through", "text-decoration-style:double"},
		},
		{
			name: "caps and superscript",
			run:  style.Run{SmallCaps: true, AllCaps: true, VerticalAlign: "superscript"},
			want: []string{"font-variant:small-caps", "text-transform:uppercase", "vertical-align:super"},
		},
		{
			name: "baseline dropped",
			run:  style.Run{VerticalAlign: "baseline"},
			want: nil,
		},
		{
			name: "fonts",
			run:  style.Run{Fonts: []string{"Times New Roman", "Calibri", "Sans-Serif"}},
			want: []string{`font-family:"Times New Roman", "Calibri", sans-serif`},
		},
		{
			name: "border",
			run:  style.Run{Border: style.Borders{Top: &style.Edge{Width: 0.5, Style: style.BorderSolid}}},
			want: []string{"border-top:0.5pt solid currentColor"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRun(tt.run).Declarations()
			if !slices.Equal([]string(got), tt.want) {
				t.Errorf("Declarations() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParagraphDeclarations(t *testing.T) {
	p := style.Paragraph{
		Alignment:       docx.AlignBoth,
		Spacing:         &docx.Spacing{Before: intp(240), After: intp(0), Line: intp(360)},
		Indentation:     &docx.Indentation{Left: intp(720), Hanging: intp(360)},
		Shading:         "#eeeeee",
		KeepTogether:    true,
		KeepWithNext:    true,
		PageBreakBefore: true,
		Borders: style.Borders{
			Bottom: &style.Edge{Width: 1.5, Style: style.BorderDouble, Color: "#ff0000"},
		},
	}
	run := style.Run{Size: intp(24), Fonts: []string{"Calibri"}}

	got := NewParagraph(p, run).Declarations()
	want := []string{
		"text-align:justify",
		"margin-top:12pt",
		"margin-bottom:0",
		"margin-left:36pt",
		"text-indent:-18pt",
		"line-height:1.5",
		"font-size:12pt",
		`font-family:"Calibri"`,
		"background-color:#eeeeee",
		"border-bottom:1.5pt double #ff0000",
		"page-break-inside:avoid",
		"break-inside:avoid",
		"page-break-after:avoid",
		"break-after:avoid",
		"page-break-before:always",
		"break-before:page",
	}
	if !slices.Equal([]string(got), want) {
		t.Errorf("Declarations() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestLineHeight(t *testing.T) {
	tests := []struct {
		name string
		sp   *docx.Spacing
		want string
	}{
		{"nil", nil, ""},
		{"no line", &docx.Spacing{}, ""},
		{"zero", &docx.Spacing{Line: intp(0)}, ""},
		{"auto default", &docx.Spacing{Line: intp(276)}, "1.15"},
		{"auto explicit", &docx.Spacing{Line: intp(240), LineRule: "auto"}, "1"},
		{"exact", &docx.Spacing{Line: intp(300), LineRule: "exact"}, "15pt"},
		{"at least", &docx.Spacing{Line: intp(280), LineRule: "atLeast"}, "14pt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineHeight(tt.sp); got != tt.want {
				t.Errorf("LineHeight() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextAlignAndIndent(t *testing.T) {
	aligns := map[docx.Alignment]string{
		"":                   "",
		docx.AlignLeft:       "left",
		docx.AlignCenter:     "center",
		docx.AlignRight:      "right",
		docx.AlignBoth:       "justify",
		docx.AlignDistribute: "justify",
	}
	for in, want := range aligns {
		if got := TextAlign(in); got != want {
			t.Errorf("TextAlign(%q) = %q, want %q", in, got, want)
		}
	}

	if got := TextIndent(&docx.Indentation{FirstLine: intp(240), Hanging: intp(360)}); got.String() != "12pt" {
		t.Errorf("first line must win, got %q", got)
	}
	if got := TextIndent(&docx.Indentation{Left: intp(240)}); got != nil {
		t.Errorf("no first line or hanging, got %q", got)
	}
}

func TestBoxDeclarations(t *testing.T) {
	edge := &style.Edge{Width: 0.5, Style: style.BorderDotted, Color: "#000000"}
	got := Box{Background: "#d9e2f3", Borders: style.Borders{Top: edge, Left: edge}}.Declarations()
	want := []string{
		"background-color:#d9e2f3",
		"border-top:0.5pt dotted #000000",
		"border-left:0.5pt dotted #000000",
	}
	if !slices.Equal([]string(got), want) {
		t.Errorf("Declarations() = %q, want %q", got, want)
	}
	if d := (Box{}).Declarations(); len(d) != 0 {
		t.Errorf("empty box = %q", d)
	}
}

func TestFontFamily(t *testing.T) {
	got := FontFamily(style.FontStack(docx.Fonts{ASCII: "Calibri", HAnsi: "Calibri", EastAsia: "MS Mincho"}))
	want := `"Calibri", "MS Mincho", system-ui, sans-serif, serif`
	if got != want {
		t.Errorf("FontFamily() = %q, want %q", got, want)
	}

	tests := []struct {
		name  string
		stack []string
		want  string
	}{
		{"quotes", []string{`Font "X"`, " ", "O'Neil"}, `"Font \"X\"", "O'Neil"`},
		{"backslash", []string{`A\B`}, `"A\\B"`},
		{"markup", []string{"X</style><script>"}, `"X\3c /style\3e \3c script\3e "`},
		{"rule delimiters", []string{"A;}b{c&d"}, `"A\3b \7d b\7b c\26 d"`},
		{"control characters", []string{"Ari\nal\x00\x7f"}, `"Arial"`},
		{"only control characters", []string{"\t\x01", "Arial"}, `"Arial"`},
		{"keyword quoted", []string{"inherit"}, `"inherit"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontFamily(tt.stack); got != tt.want {
				t.Errorf("FontFamily(%q) = %q, want %q", tt.stack, got, tt.want)
			}
		})
	}
}
