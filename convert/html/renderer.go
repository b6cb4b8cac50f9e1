// Package html renders document model into single self-contained HTML5 page
// with embedded stylesheet.
package html

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"docxhtml/css"
	"docxhtml/docx"
	"docxhtml/style"
)

// DefaultLanguage is used for <html lang> when neither options nor document
// specify one.
const DefaultLanguage = "fr"

// EmptyDocumentText is rendered when document body has no blocks.
const EmptyDocumentText = "Document vide"

// Options control rendering.
type Options struct {
	// Language of the page, document language and then DefaultLanguage are
	// used when blank.
	Language string
	// EmptyText replaces EmptyDocumentText when not blank.
	EmptyText string
	// Stylesheets are appended after generated rules in order.
	Stylesheets []*css.Stylesheet
}

// Renderer converts documents to HTML. It keeps no state between calls, every
// Render creates its own resolver and registry, so the same Renderer may be
// used for any number of documents.
type Renderer struct {
	opts Options
	log  *zap.Logger
}

// New creates renderer.
func New(opts Options, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{opts: opts, log: log.Named("html")}
}

// conversion is state of a single Render call.
type conversion struct {
	log      *zap.Logger
	resolver *style.Resolver
	registry *css.Registry
	rels     docx.Relationships
	errs     error
}

// Render produces complete HTML page for doc. Structural problems of the tree
// (nil nodes) do not stop the walk, all of them are reported together and no
// output is returned in this case.
func (r *Renderer) Render(doc *docx.Document) (string, error) {
	if doc == nil {
		doc = &docx.Document{}
	}

	resolver := style.NewResolver(doc.Styles, doc.Theme)
	baseParagraph := resolver.Paragraph(nil, nil)
	baseRun := resolver.Run(nil, baseParagraph)
	registry := css.NewRegistry(css.NewParagraph(baseParagraph, baseRun), css.NewRun(baseRun))
	for _, sheet := range r.opts.Stylesheets {
		registry.Append(sheet)
	}

	c := &conversion{
		log:      r.log,
		resolver: resolver,
		registry: registry,
		rels:     doc.Relationships,
	}

	r.log.Debug("Rendering document", zap.String("id", doc.ID), zap.Int("blocks", len(doc.Body)))

	var body strings.Builder
	if len(doc.Body) == 0 {
		body.WriteString(`<p class="docx-paragraph docx-empty">` + escape(r.emptyText()) + `</p>`)
	} else {
		for i, b := range doc.Body {
			if s := c.block(b, nil, fmt.Sprintf("body[%d]", i)); s != "" {
				body.WriteString(s)
				body.WriteByte('\n')
			}
		}
	}
	if c.errs != nil {
		return "", c.errs
	}

	r.log.Debug("Rendered document",
		zap.Int("paragraph classes", registry.Len(css.CategoryParagraph)),
		zap.Int("run classes", registry.Len(css.CategoryRun)),
		zap.Int("table classes", registry.Len(css.CategoryTable)),
		zap.Int("row classes", registry.Len(css.CategoryRow)),
		zap.Int("cell classes", registry.Len(css.CategoryCell)))

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n")
	page.WriteString(`<html lang="` + escape(r.Language(doc)) + "\">\n")
	page.WriteString("<head>\n<meta charset=\"utf-8\">\n<style>\n")
	page.WriteString(registry.Stylesheet(doc.Section))
	page.WriteString("</style>\n</head>\n<body class=\"docx-body\">\n")
	page.WriteString(body.String())
	page.WriteString("\n</body>\n</html>")
	return page.String(), nil
}

// Language returns language of the page produced for doc.
func (r *Renderer) Language(doc *docx.Document) string {
	if lang := strings.TrimSpace(r.opts.Language); lang != "" {
		return lang
	}
	if doc != nil {
		if lang := strings.TrimSpace(doc.Language); lang != "" {
			return lang
		}
	}
	return DefaultLanguage
}

func (r *Renderer) emptyText() string {
	if text := strings.TrimSpace(r.opts.EmptyText); text != "" {
		return text
	}
	return EmptyDocumentText
}

// fail records structural violation found at location.
func (c *conversion) fail(where, what string) {
	c.errs = multierr.Append(c.errs, fmt.Errorf("%s: %w: nil %s", where, docx.ErrStructure, what))
}

// withFallback returns new list with rp appended, list itself is never
// modified so siblings do not see each other's fallbacks.
func withFallback(list []*docx.RunProperties, rp *docx.RunProperties) []*docx.RunProperties {
	if rp == nil {
		return list
	}
	res := make([]*docx.RunProperties, 0, len(list)+1)
	res = append(res, list...)
	return append(res, rp)
}
