package docx

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ThemeColors maps lowercase scheme color names (accent1, dk1, hlink, ...)
// to normalized "#rrggbb" values.
type ThemeColors map[string]string

// Lookup returns theme color by its name, name is case insensitive.
func (tc ThemeColors) Lookup(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || len(tc) == 0 {
		return ""
	}
	return tc[strings.ToLower(name)]
}

// ParseTheme reads theme part (a:theme) and extracts its color scheme.
// Missing theme elements produce empty table, only unreadable XML is an
// error.
func ParseTheme(r io.Reader) (ThemeColors, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read theme: %w", err)
	}
	return ThemeFromElement(doc.Root()), nil
}

// ThemeFromElement extracts color scheme from already parsed a:theme
// element.
func ThemeFromElement(root *etree.Element) ThemeColors {
	colors := make(ThemeColors)
	if root == nil {
		return colors
	}
	elements := root.SelectElement("themeElements")
	if elements == nil {
		return colors
	}
	scheme := elements.SelectElement("clrScheme")
	if scheme == nil {
		return colors
	}
	for _, entry := range scheme.ChildElements() {
		if value := schemeColor(entry); value != "" {
			colors[strings.ToLower(entry.Tag)] = value
		}
	}
	return colors
}

// schemeColor takes first color definition (a:srgbClr, a:sysClr) carrying
// usable value, a:sysClr provides lastClr which wins over val.
func schemeColor(entry *etree.Element) string {
	for _, child := range entry.ChildElements() {
		if last := child.SelectAttrValue("lastClr", ""); last != "" {
			if c := NormalizeFill(last); c != "" {
				return c
			}
		}
		if c := NormalizeFill(child.SelectAttrValue("val", "")); c != "" {
			return c
		}
	}
	return ""
}
