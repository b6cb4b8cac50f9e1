package style

import (
	"testing"

	"docxhtml/docx"
)

func TestApplyTintShade(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		tint  string
		shade string
		want  string
	}{
		{name: "no adjustments", base: "#4472c4", want: "#4472c4"},
		{name: "zero tint and shade", base: "#4472c4", tint: "00", shade: "00", want: "#4472c4"},
		{name: "full tint", base: "#4472c4", tint: "FF", want: "#ffffff"},
		{name: "full shade", base: "#4472c4", shade: "FF", want: "#000000"},
		{name: "tint before shade", base: "#000000", tint: "FF", shade: "FF", want: "#000000"},
		{name: "half tint", base: "#000000", tint: "80", want: "#808080"},
		{name: "shade 75%", base: "#ffffff", shade: "BF", want: "#404040"},
		{name: "malformed tint ignored", base: "#102030", tint: "zz", want: "#102030"},
		{name: "malformed base untouched", base: "blue", tint: "FF", want: "blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyTintShade(tt.base, tt.tint, tt.shade); got != tt.want {
				t.Errorf("ApplyTintShade(%q, %q, %q) = %q, want %q", tt.base, tt.tint, tt.shade, got, tt.want)
			}
		})
	}
}

func TestShadingColor(t *testing.T) {
	theme := docx.ThemeColors{"accent1": "#4472c4", "background1": "#ffffff"}
	tests := []struct {
		name string
		shd  *docx.Shading
		want string
	}{
		{name: "nil", shd: nil, want: ""},
		{name: "direct fill", shd: &docx.Shading{Fill: "D9E2F3", ThemeFill: "accent1"}, want: "#d9e2f3"},
		{name: "auto fill falls to theme", shd: &docx.Shading{Fill: "auto", ThemeFill: "accent1"}, want: "#4472c4"},
		{name: "none fill", shd: &docx.Shading{Fill: "none"}, want: ""},
		{name: "theme fill with shade", shd: &docx.Shading{ThemeFill: "background1", ThemeFillShade: "BF"}, want: "#404040"},
		{name: "theme fill key is case insensitive", shd: &docx.Shading{ThemeFill: "Accent1"}, want: "#4472c4"},
		{name: "unknown theme fill then theme color", shd: &docx.Shading{ThemeFill: "accent6", ThemeColor: "accent1", ThemeTint: "FF"}, want: "#ffffff"},
		{name: "nothing usable", shd: &docx.Shading{Val: "clear", ThemeColor: "accent9"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShadingColor(tt.shd, theme); got != tt.want {
				t.Errorf("ShadingColor() = %q, want %q", got, tt.want)
			}
		})
	}
}
