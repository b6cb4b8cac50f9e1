package style

import (
	"docxhtml/docx"
)

// System fallbacks closing every font stack.
var systemFonts = [...]string{"system-ui", "sans-serif", "serif"}

// fontMap merges rFonts along cascade, first writer of each slot wins.
type fontMap struct {
	docx.Fonts
}

func (m *fontMap) merge(f docx.Fonts) {
	if m.ASCII == "" {
		m.ASCII = f.ASCII
	}
	if m.HAnsi == "" {
		m.HAnsi = f.HAnsi
	}
	if m.EastAsia == "" {
		m.EastAsia = f.EastAsia
	}
	if m.CS == "" {
		m.CS = f.CS
	}
}

// stack orders fonts as ascii, hAnsi, eastAsia, cs without duplicates and
// appends system fallbacks.
func (m *fontMap) stack() []string {
	return FontStack(m.Fonts)
}

// FontStack builds ordered list of font families for rFonts.
func FontStack(f docx.Fonts) []string {
	seen := make(map[string]bool, 7)
	stack := make([]string, 0, 7)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		stack = append(stack, name)
	}
	add(f.ASCII)
	add(f.HAnsi)
	add(f.EastAsia)
	add(f.CS)
	for _, name := range systemFonts {
		add(name)
	}
	return stack
}
