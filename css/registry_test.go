package css

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"docxhtml/docx"
	"docxhtml/style"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(Paragraph{}, Run{})

	bold := Declarations{"font-weight:bold"}
	red := Declarations{"color:#ff0000"}

	if got := r.Register(CategoryRun, bold); got != "s1" {
		t.Errorf("first run class = %q, want s1", got)
	}
	if got := r.Register(CategoryRun, red); got != "s2" {
		t.Errorf("second run class = %q, want s2", got)
	}
	if got := r.Register(CategoryRun, Declarations{"font-weight:bold"}); got != "s1" {
		t.Errorf("equal declarations = %q, want s1", got)
	}
	if got := r.Register(CategoryParagraph, bold); got != "p1" {
		t.Errorf("paragraph namespace = %q, want p1", got)
	}
	if got := r.Register(CategoryCell, nil); got != "" {
		t.Errorf("empty declarations = %q, want no class", got)
	}
	if got := r.Register(Category(42), bold); got != "" {
		t.Errorf("unknown category = %q, want no class", got)
	}
	if r.Len(CategoryRun) != 2 || r.Len(CategoryParagraph) != 1 || r.Len(CategoryCell) != 0 {
		t.Errorf("unexpected counts: runs %d, paragraphs %d, cells %d",
			r.Len(CategoryRun), r.Len(CategoryParagraph), r.Len(CategoryCell))
	}
}

func TestCategory_Prefix(t *testing.T) {
	want := map[Category]string{
		CategoryParagraph: "p",
		CategoryRun:       "s",
		CategoryTable:     "t",
		CategoryRow:       "r",
		CategoryCell:      "c",
		Category(-1):      "",
	}
	for c, p := range want {
		if got := c.Prefix(); got != p {
			t.Errorf("Category(%d).Prefix() = %q, want %q", c, got, p)
		}
	}
}

func TestRegistry_StylesheetDefaults(t *testing.T) {
	r := NewRegistry(Paragraph{}, Run{})
	out := r.Stylesheet(nil)

	for _, want := range []string{
		"body.docx-body{margin:0 auto;width:100%;max-width:21.001cm;min-height:29.7cm;padding:2.54cm 2.54cm 2.54cm 2.54cm;",
		"color:#222;",
		"line-height:1.6;",
		".docx-body .docx-paragraph{margin-top:0;margin-right:0;margin-bottom:0;margin-left:0;}\n",
		"@media screen{",
		"@media print{",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stylesheet does not contain %q", want)
		}
	}
	if !strings.HasSuffix(out, "@page{size:21.001cm 29.7cm;margin:0;}") {
		t.Errorf("stylesheet must end with page rule, got tail %q", out[max(0, len(out)-60):])
	}
	if strings.Index(out, "@media screen{") > strings.Index(out, "@media print{") {
		t.Error("screen rules must precede print rules")
	}
}

func TestRegistry_StylesheetSection(t *testing.T) {
	base := NewParagraph(style.Paragraph{Spacing: &docx.Spacing{After: intp(160), Line: intp(259)}},
		style.Run{Size: intp(22), Fonts: []string{"Calibri"}, Color: "1F1F1F"})
	r := NewRegistry(base, NewRun(style.Run{Size: intp(22), Fonts: []string{"Calibri"}, Color: "1F1F1F"}))

	out := r.Stylesheet(&docx.SectionProperties{
		PageSize:    &docx.PageSize{Width: 12240, Height: 15840},
		PageMargins: &docx.PageMargins{Top: 1440, Right: 720, Bottom: 1440, Left: 720},
	})
	for _, want := range []string{
		"max-width:21.59cm;min-height:27.94cm;padding:2.54cm 1.27cm 2.54cm 1.27cm;",
		`color:#1f1f1f;font-family:"Calibri";font-size:11pt;line-height:1.079;`,
		".docx-body .docx-paragraph{margin-top:0;margin-right:0;margin-bottom:8pt;margin-left:0;font-size:11pt;font-family:\"Calibri\";}\n",
		"@page{size:21.59cm 27.94cm;margin:0;}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stylesheet does not contain %q", want)
		}
	}
}

func TestRegistry_StylesheetRules(t *testing.T) {
	r := NewRegistry(Paragraph{}, Run{})
	shaded := Declarations{"background-color:#d9e2f3"}

	r.Register(CategoryRun, Declarations{"font-weight:bold"})
	r.Register(CategoryParagraph, Declarations{"text-align:center"})
	r.Register(CategoryRun, Declarations{"font-weight:bold"})
	r.Register(CategoryTable, shaded)
	r.Register(CategoryRow, shaded)
	r.Register(CategoryCell, shaded)

	out := r.Stylesheet(nil)

	rules := []string{
		".docx-body .p1{text-align:center}\n",
		".docx-body .s1{font-weight:bold}\n",
		".docx-body table.t1{background-color:#d9e2f3}\n" +
			".docx-body table.t1 td,.docx-body table.t1 th{background-color:#d9e2f3}\n",
		".docx-body tr.r1{background-color:#d9e2f3}\n" +
			".docx-body tr.r1 > td,.docx-body tr.r1 > th{background-color:#d9e2f3}\n",
		".docx-body td.c1{background-color:#d9e2f3}\n",
	}
	prev := -1
	for _, rule := range rules {
		if n := strings.Count(out, rule); n != 1 {
			t.Errorf("rule %q found %d times, want 1", rule, n)
			continue
		}
		idx := strings.Index(out, rule)
		if idx < prev {
			t.Errorf("rule %q is out of category order", rule)
		}
		prev = idx
	}
	if strings.Contains(out, ".s2") {
		t.Error("duplicate declarations must not produce new class")
	}
	if strings.Index(out, ".docx-body .docx-sdt-inline{") > strings.Index(out, ".docx-body .p1{") {
		t.Error("structural rules must precede registered rules")
	}
}

func TestRegistry_StylesheetDeterministic(t *testing.T) {
	build := func() string {
		r := NewRegistry(Paragraph{}, Run{})
		r.Register(CategoryRun, Declarations{"font-style:italic"})
		r.Register(CategoryParagraph, Declarations{"text-align:right"})
		r.Register(CategoryCell, Declarations{"background-color:#ffffff"})
		return r.Stylesheet(nil)
	}
	if build() != build() {
		t.Error("same registration sequence must give same stylesheet")
	}
}

func TestRegistry_Append(t *testing.T) {
	r := NewRegistry(Paragraph{}, Run{})
	p := NewParser(zaptest.NewLogger(t))

	r.Append(nil)
	r.Append(p.Parse([]byte(`/* nothing */`)))
	r.Append(p.Parse([]byte(`.custom { color: red }`), "extra.css"))

	out := r.Stylesheet(nil)
	if !strings.HasSuffix(out, "@page{size:21.001cm 29.7cm;margin:0;}\n.custom{color:red}") {
		t.Errorf("user stylesheet must follow page rule, got tail %q", out[max(0, len(out)-80):])
	}
}
