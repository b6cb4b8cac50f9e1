package css

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// escapeDoubleQuoted escapes a string for use inside CSS double quotes.
func escapeDoubleQuoted(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Declaration is a single property of a rule.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return d.Property + ":" + d.Value + " !important"
	}
	return d.Property + ":" + d.Value
}

// Rule is a style rule with grouped selectors.
type Rule struct {
	Selectors    []string
	Declarations []Declaration
}

// Selector returns selector group as written into stylesheet.
func (r Rule) Selector() string {
	return strings.Join(r.Selectors, ",")
}

// Property returns value of the last declaration of property.
func (r Rule) Property(name string) (Declaration, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i], true
		}
	}
	return Declaration{}, false
}

// MediaBlock is a @media block with nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// FontFace is a @font-face block.
type FontFace struct {
	Declarations []Declaration
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, FontFace or Import is non-nil.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	FontFace   *FontFace
	Import     *string
}

// Stylesheet is a parsed user stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // all top-level items in source order
	Warnings []string         // constructs dropped while parsing
}

// Imports returns all @import URLs in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// RulesBySelector returns all top-level rules whose selector group contains
// selector.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule == nil {
			continue
		}
		for _, sel := range item.Rule.Selectors {
			if sel == selector {
				matches = append(matches, *item.Rule)
				break
			}
		}
	}
	return matches
}

// urlRewritePattern matches url() references in CSS values.
// Handles: url("path"), url('path'), url(path)
var urlRewritePattern = regexp.MustCompile(`url\s*\(\s*(?:["']([^"']*)["']|([^)"]*))\s*\)`)

// WriteTo writes the stylesheet to w in source order, one item per line,
// implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, item := range s.Items {
		var (
			n   int
			err error
		)
		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", escapeDoubleQuoted(*item.Import))
		case item.FontFace != nil:
			n, err = fmt.Fprintf(w, "@font-face{%s}\n", joinDeclarations(item.FontFace.Declarations))
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = fmt.Fprintf(w, "%s{%s}\n", item.Rule.Selector(), joinDeclarations(item.Rule.Declarations))
		}
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func joinDeclarations(decls []Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ";")
}

func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var b strings.Builder
	b.WriteString("@media " + mb.Query + "{")
	for _, rule := range mb.Rules {
		b.WriteString(rule.Selector() + "{" + joinDeclarations(rule.Declarations) + "}")
	}
	b.WriteString("}\n")
	return io.WriteString(w, b.String())
}

// RewriteURLs walks all URL references in the stylesheet and applies fn to each.
// This covers @import URLs, @font-face src, and url() references in rule properties.
func (s *Stylesheet) RewriteURLs(fn func(originalURL string) string) {
	for i := range s.Items {
		item := &s.Items[i]

		switch {
		case item.Import != nil:
			newURL := fn(*item.Import)
			item.Import = &newURL
		case item.FontFace != nil:
			rewriteURLsInDeclarations(item.FontFace.Declarations, fn)
		case item.Rule != nil:
			rewriteURLsInDeclarations(item.Rule.Declarations, fn)
		case item.MediaBlock != nil:
			for j := range item.MediaBlock.Rules {
				rewriteURLsInDeclarations(item.MediaBlock.Rules[j].Declarations, fn)
			}
		}
	}
}

func rewriteURLsInDeclarations(decls []Declaration, fn func(string) string) {
	for i := range decls {
		if strings.Contains(decls[i].Value, "url(") {
			decls[i].Value = rewriteURLsInValue(decls[i].Value, fn)
		}
	}
}

// rewriteURLsInValue replaces url() references in a CSS value string.
func rewriteURLsInValue(value string, fn func(string) string) string {
	return urlRewritePattern.ReplaceAllStringFunc(value, func(match string) string {
		sub := urlRewritePattern.FindStringSubmatch(match)
		if len(sub) < 3 {
			return match
		}
		// Group 1 is quoted URL, group 2 is unquoted URL
		originalURL := sub[1]
		if originalURL == "" {
			originalURL = sub[2]
		}
		originalURL = strings.TrimSpace(originalURL)
		return fmt.Sprintf("url(\"%s\")", escapeDoubleQuoted(fn(originalURL)))
	})
}
