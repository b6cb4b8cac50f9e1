package docx

import (
	"fmt"
	"strconv"
	"strings"
)

// highlightColors maps w:highlight values to CSS colors.
var highlightColors = map[string]string{
	"yellow":      "#ffff00",
	"brightgreen": "#ccff00",
	"green":       "#00ff00",
	"cyan":        "#00ffff",
	"turquoise":   "#40e0d0",
	"pink":        "#ffb6c1",
	"magenta":     "#ff00ff",
	"blue":        "#0000ff",
	"darkblue":    "#00008b",
	"darkcyan":    "#008b8b",
	"darkgreen":   "#006400",
	"darkmagenta": "#8b008b",
	"darkred":     "#8b0000",
	"darkyellow":  "#b8860b",
	"gray50":      "#808080",
	"gray25":      "#c0c0c0",
	"black":       "#000000",
	"white":       "#ffffff",
	"red":         "#ff0000",
	"teal":        "#008080",
	"violet":      "#8000ff",
	"orange":      "#ffa500",
}

// NormalizeColor converts WordprocessingML color value into lowercase
// "#rrggbb". Empty string is returned for "auto" and values which could not
// be interpreted.
func NormalizeColor(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" || strings.EqualFold(raw, "auto") {
		return ""
	}
	raw = strings.TrimPrefix(raw, "#")
	switch {
	case len(raw) == 6 && isHex(raw):
		return "#" + strings.ToLower(raw)
	case len(raw) == 3 && isHex(raw):
		var b strings.Builder
		b.WriteByte('#')
		for _, c := range strings.ToLower(raw) {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		return b.String()
	}
	for _, base := range []int{16, 10} {
		if n, err := strconv.ParseInt(raw, base, 32); err == nil {
			if n < 0 || n > 0xffffff {
				return ""
			}
			return fmt.Sprintf("#%06x", n)
		}
	}
	return ""
}

// NormalizeFill is NormalizeColor for shading fills and theme scheme
// values, where "none" also means no color.
func NormalizeFill(value string) string {
	raw := strings.TrimSpace(value)
	if strings.EqualFold(raw, "none") {
		return ""
	}
	return NormalizeColor(raw)
}

// NormalizeHighlight converts w:highlight value into CSS color using named
// highlight palette first.
func NormalizeHighlight(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" || strings.EqualFold(raw, "none") {
		return ""
	}
	if c, ok := highlightColors[strings.ToLower(raw)]; ok {
		return c
	}
	return NormalizeColor(raw)
}

func isHex(s string) bool {
	for i := range len(s) {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
