package css

import (
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func parseCSS(t *testing.T, src string) *Stylesheet {
	t.Helper()
	return NewParser(zaptest.NewLogger(t)).Parse([]byte(src), t.Name())
}

func TestParser_Rules(t *testing.T) {
	sheet := parseCSS(t, `
		p { margin: 0; COLOR: red }
		.docx-paragraph, h1 .title { font-weight: bold; }
		div {}
	`)

	if len(sheet.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sheet.Items))
	}

	first := sheet.Items[0].Rule
	if first == nil {
		t.Fatal("first item is not a rule")
	}
	if first.Selector() != "p" {
		t.Errorf("selector = %q, want p", first.Selector())
	}
	if d, ok := first.Property("color"); !ok || d.Value != "red" {
		t.Errorf("color = %+v, %v", d, ok)
	}
	if d, ok := first.Property("margin"); !ok || d.Value != "0" {
		t.Errorf("margin = %+v, %v", d, ok)
	}

	second := sheet.Items[1].Rule
	if second == nil {
		t.Fatal("second item is not a rule")
	}
	if want := []string{".docx-paragraph", "h1 .title"}; !slices.Equal(second.Selectors, want) {
		t.Errorf("selectors = %q, want %q", second.Selectors, want)
	}
	if got := sheet.RulesBySelector("h1 .title"); len(got) != 1 {
		t.Errorf("RulesBySelector found %d rules", len(got))
	}
	if got := sheet.RulesBySelector("div"); len(got) != 0 {
		t.Error("empty rule must be dropped")
	}
}

func TestParser_Important(t *testing.T) {
	sheet := parseCSS(t, `.note { color: red !important; margin: 0 }`)

	rules := sheet.RulesBySelector(".note")
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	color, ok := rules[0].Property("color")
	if !ok || color.Value != "red" || !color.Important {
		t.Errorf("color = %+v", color)
	}
	if color.String() != "color:red !important" {
		t.Errorf("String() = %q", color.String())
	}
	if margin, _ := rules[0].Property("margin"); margin.Important {
		t.Error("margin must not be important")
	}
}

func TestParser_AtRules(t *testing.T) {
	sheet := parseCSS(t, `
		@charset "utf-8";
		@import url("base.css");
		@import "print.css";
		@media print { .docx-body { color: black } }
		@media print { }
		@font-face { font-family: Custom; src: url(fonts/custom.woff) }
		@keyframes spin { from { opacity: 0 } to { opacity: 1 } }
		.after { color: blue }
	`)

	if got := sheet.Imports(); !slices.Equal(got, []string{"base.css", "print.css"}) {
		t.Errorf("Imports() = %q", got)
	}

	var media, fonts int
	for _, item := range sheet.Items {
		switch {
		case item.MediaBlock != nil:
			media++
			if item.MediaBlock.Query != "print" {
				t.Errorf("media query = %q", item.MediaBlock.Query)
			}
			if len(item.MediaBlock.Rules) != 1 || item.MediaBlock.Rules[0].Selector() != ".docx-body" {
				t.Errorf("media rules = %+v", item.MediaBlock.Rules)
			}
		case item.FontFace != nil:
			fonts++
		}
	}
	if media != 1 {
		t.Errorf("expected 1 media block, got %d", media)
	}
	if fonts != 1 {
		t.Errorf("expected 1 font face, got %d", fonts)
	}
	if len(sheet.RulesBySelector(".after")) != 1 {
		t.Error("rule after skipped at-rule block must be parsed")
	}
	for _, want := range []string{"unsupported at-rule: @charset", "unsupported at-rule: @keyframes"} {
		if !slices.Contains(sheet.Warnings, want) {
			t.Errorf("warnings %q do not contain %q", sheet.Warnings, want)
		}
	}
}

func TestStylesheet_String(t *testing.T) {
	sheet := parseCSS(t, `
		@import "x.css";
		p { color: red; margin: 0 }
		@media screen { .a { font-weight: bold } }
	`)

	want := "@import url(\"x.css\");\n" +
		"p{color:red;margin:0}\n" +
		"@media screen{.a{font-weight:bold}}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestStylesheet_RewriteURLs(t *testing.T) {
	sheet := parseCSS(t, `
		@import "theme.css";
		body { background: url(img/bg.png) no-repeat }
		@media print { .logo { background-image: url('logo.svg') } }
	`)

	sheet.RewriteURLs(func(u string) string {
		return "../" + u
	})

	if got := sheet.Imports(); len(got) != 1 || got[0] != "../theme.css" {
		t.Errorf("Imports() = %q", got)
	}
	out := sheet.String()
	for _, want := range []string{
		`background:url("../img/bg.png") no-repeat`,
		`background-image:url("../logo.svg")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := map[string]string{
		`"a.css"`: "a.css",
		`'b.css'`: "b.css",
		`c.css`:   "c.css",
		`"`:       `"`,
		` "d" `:   "d",
	}
	for in, want := range tests {
		if got := unquote(in); got != want {
			t.Errorf("unquote(%q) = %q, want %q", in, got, want)
		}
	}
}
