package html

import (
	"strings"

	nethtml "golang.org/x/net/html"

	"docxhtml/docx"
)

// resolveLink computes hyperlink target from relationship and anchor.
// Internal targets have backslashes turned into slashes, anchor is appended
// unless target already has a fragment. False is returned when there is
// nothing to link to.
func resolveLink(rels docx.Relationships, relID, anchor string) (string, bool) {
	var target string
	if rel, ok := rels[relID]; ok && relID != "" {
		target = rel.Target
		if !strings.EqualFold(rel.TargetMode, "External") &&
			!strings.HasPrefix(target, "#") && !strings.HasPrefix(target, "http") &&
			!strings.HasPrefix(target, "/") {
			target = strings.ReplaceAll(target, `\`, "/")
		}
	}
	if strings.TrimSpace(anchor) != "" {
		switch {
		case strings.TrimSpace(target) == "":
			target = "#" + anchor
		case !strings.Contains(target, "#"):
			target += "#" + anchor
		}
	}
	return target, target != ""
}

// escape is used for text and for attribute values in double quotes.
func escape(s string) string {
	return nethtml.EscapeString(s)
}
