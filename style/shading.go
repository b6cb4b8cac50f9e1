// Package style implements the formatting cascade: style chains, paragraph
// and run property resolution, shading and border resolution and table
// conditional formatting. Everything here is pure, results depend only on
// arguments and on immutable style library and theme.
package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"docxhtml/docx"
)

// ShadingColor returns background color described by shading: direct fill
// first, then theme fill adjusted by fill tint/shade, then theme color
// adjusted by tint/shade. Empty string means no background.
func ShadingColor(shd *docx.Shading, theme docx.ThemeColors) string {
	if shd == nil {
		return ""
	}
	if c := docx.NormalizeFill(shd.Fill); c != "" {
		return c
	}
	if c := ThemeColor(theme, shd.ThemeFill, shd.ThemeFillTint, shd.ThemeFillShade); c != "" {
		return c
	}
	return ThemeColor(theme, shd.ThemeColor, shd.ThemeTint, shd.ThemeShade)
}

// ThemeColor looks up scheme color by name and applies tint and shade to it.
func ThemeColor(theme docx.ThemeColors, name, tint, shade string) string {
	base := theme.Lookup(name)
	if base == "" {
		return ""
	}
	return ApplyTintShade(base, tint, shade)
}

// ApplyTintShade lightens base "#rrggbb" color by tint and then darkens it by
// shade. Both are hexadecimal bytes expressing fraction of 255, empty or
// malformed values are ignored. Malformed base is returned unchanged.
func ApplyTintShade(base, tint, shade string) string {
	if len(base) != 7 || base[0] != '#' {
		return base
	}
	var rgb [3]int
	for i := range rgb {
		v, err := strconv.ParseUint(base[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return base
		}
		rgb[i] = int(v)
	}
	if t, ok := fraction(tint); ok {
		for i, c := range rgb {
			rgb[i] = clamp(int(math.Round(float64(c) + float64(255-c)*t)))
		}
	}
	if s, ok := fraction(shade); ok {
		for i, c := range rgb {
			rgb[i] = clamp(int(math.Round(float64(c) * (1 - s))))
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

func fraction(hex string) (float64, bool) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	return float64(v) / 255, true
}

func clamp(v int) int {
	return min(max(v, 0), 255)
}
