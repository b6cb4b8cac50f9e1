package css

import (
	"strings"

	"docxhtml/docx"
)

const defaultBodyFont = `"Segoe UI",-apple-system,BlinkMacSystemFont,"Helvetica Neue",Arial,sans-serif`

// Structural rules for fixed markup classes, written in this order.
var structuralRules = []string{
	`.docx-body .docx-empty{font-style:italic;color:#666;}`,
	`.docx-body .docx-span{}`,
	`.docx-body .docx-link{color:#0b57d0;text-decoration:underline;}`,
	`.docx-body .docx-page-break{display:block;border:0;border-top:1px dashed #bbb;margin:2rem 0;}`,
	`.docx-body .docx-column-break{display:block;border:0;border-top:1px dotted #bbb;margin:1.5rem 0;}`,
	`.docx-body .docx-section-break{display:block;border:0;border-top:1px solid #ccc;margin:2rem 0;}`,
	`.docx-body .docx-note-ref{font-size:0.75em;vertical-align:super;}`,
	`.docx-body .docx-note-separator{display:block;border:0;border-top:1px solid #ccc;margin:1rem 0;}`,
	`.docx-body .docx-table{border-collapse:collapse;width:100%;margin:1rem 0;}`,
	`.docx-body .docx-table td,.docx-body .docx-table th{border:1px solid #bbb;padding:0.35rem 0.5rem;vertical-align:top;}`,
	`.docx-body .docx-cell-middle{vertical-align:middle;}`,
	`.docx-body .docx-cell-bottom{vertical-align:bottom;}`,
	`.docx-body .docx-tab{display:inline-block;min-width:2em;}`,
	`.docx-body .docx-drawing{display:inline-block;color:#555;font-style:italic;border:1px solid #ddd;padding:0.1rem 0.3rem;border-radius:0.2rem;background-color:#f9f9f9;}`,
	`.docx-body .docx-field{background-color:rgba(0,0,0,0.05);padding:0 0.2rem;border-radius:0.2rem;}`,
	`.docx-body .docx-sdt{border:1px dashed #bbb;padding:0.35rem;margin:0.5rem 0;}`,
	`.docx-body .docx-sdt-inline{border:1px dashed #bbb;padding:0 0.25rem;margin:0 0.15rem;display:inline-block;}`,
}

const screenRules = `@media screen{` +
	`html{background-color:#b1b1b1;}` +
	`body.docx-body{margin:1.5rem auto;border:1px solid #000;box-shadow:0 0 18px rgba(0,0,0,0.12);}` +
	`.docx-body .docx-header::before{content:"HEADER";font-weight:bold;display:block;margin-bottom:0.5rem;}` +
	`.docx-body .docx-header{border-left:1px dashed #000;border-right:1px dashed #000;border-bottom:1px dashed #000;padding:0.75rem 1rem;margin-bottom:1.5rem;}` +
	`.docx-body .docx-footer::before{content:"FOOTER";font-weight:bold;display:block;margin-bottom:0.5rem;}` +
	`.docx-body .docx-footer{border-left:1px dashed #000;border-right:1px dashed #000;border-top:1px dashed #000;padding:0.75rem 1rem;margin-top:1.5rem;}` +
	`}`

const printRules = `@media print{body.docx-body{box-shadow:none;border:none;margin:0 auto;}html{background-color:#fff;}}`

// Stylesheet produces complete document stylesheet: body and base paragraph
// rules, structural rules, registered classes grouped by category in
// registration order, media rules and page rule followed by appended user
// stylesheets. Output depends only on registration sequence.
func (r *Registry) Stylesheet(section *docx.SectionProperties) string {
	layout := resolvePageLayout(section)

	var b strings.Builder
	r.writeBody(&b, layout)
	r.writeBaseParagraph(&b)
	for _, rule := range structuralRules {
		b.WriteString(rule)
		b.WriteByte('\n')
	}

	for _, reg := range r.rules[CategoryParagraph] {
		writeRule(&b, ".docx-body ."+reg.name, reg.declarations)
	}
	for _, reg := range r.rules[CategoryRun] {
		writeRule(&b, ".docx-body ."+reg.name, reg.declarations)
	}
	for _, reg := range r.rules[CategoryTable] {
		writeRule(&b, ".docx-body table."+reg.name, reg.declarations)
		writeRule(&b, ".docx-body table."+reg.name+" td,.docx-body table."+reg.name+" th", reg.declarations)
	}
	for _, reg := range r.rules[CategoryRow] {
		writeRule(&b, ".docx-body tr."+reg.name, reg.declarations)
		writeRule(&b, ".docx-body tr."+reg.name+" > td,.docx-body tr."+reg.name+" > th", reg.declarations)
	}
	for _, reg := range r.rules[CategoryCell] {
		writeRule(&b, ".docx-body td."+reg.name, reg.declarations)
	}

	b.WriteString(screenRules)
	b.WriteByte('\n')
	b.WriteString(printRules)
	b.WriteByte('\n')
	b.WriteString("@page{size:" + layout.width + " " + layout.height + ";margin:0;}")

	for _, sheet := range r.extra {
		b.WriteByte('\n')
		b.WriteString(strings.TrimRight(sheet.String(), "\n"))
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, decls Declarations) {
	b.WriteString(selector)
	b.WriteByte('{')
	b.WriteString(decls.String())
	b.WriteString("}\n")
}

func (r *Registry) writeBody(b *strings.Builder, layout pageLayout) {
	b.WriteString("body.docx-body{")
	b.WriteString("margin:0 auto;width:100%;max-width:" + layout.width + ";")
	b.WriteString("min-height:" + layout.height + ";")
	b.WriteString("padding:" + layout.padding() + ";")
	b.WriteString("box-sizing:border-box;")
	if r.baseRun.Color != "" {
		b.WriteString("color:" + r.baseRun.Color + ";")
	} else {
		b.WriteString("color:#222;")
	}
	if r.baseRun.FontFamily != "" {
		b.WriteString("font-family:" + r.baseRun.FontFamily + ";")
	} else {
		b.WriteString("font-family:" + defaultBodyFont + ";")
	}
	if r.baseRun.FontSize != nil {
		b.WriteString("font-size:" + r.baseRun.FontSize.String() + ";")
	}
	if r.baseParagraph.LineHeight != "" {
		b.WriteString("line-height:" + r.baseParagraph.LineHeight + ";")
	} else {
		b.WriteString("line-height:1.6;")
	}
	b.WriteString("background-color:#fff;}\n")
}

func (r *Registry) writeBaseParagraph(b *strings.Builder) {
	p := r.baseParagraph
	b.WriteString(".docx-body .docx-paragraph{")
	b.WriteString("margin-top:" + lengthOr(p.MarginTop, "0") + ";")
	b.WriteString("margin-right:" + lengthOr(p.MarginRight, "0") + ";")
	b.WriteString("margin-bottom:" + lengthOr(p.MarginBottom, "0") + ";")
	b.WriteString("margin-left:" + lengthOr(p.MarginLeft, "0") + ";")
	if p.TextIndent != nil {
		b.WriteString("text-indent:" + p.TextIndent.String() + ";")
	}
	if p.FontSize != nil {
		b.WriteString("font-size:" + p.FontSize.String() + ";")
	}
	if p.FontFamily != "" {
		b.WriteString("font-family:" + p.FontFamily + ";")
	}
	if p.Background != "" {
		b.WriteString("background-color:" + p.Background + ";")
	}
	b.WriteString("}\n")
}

func lengthOr(l *Length, fallback string) string {
	if l == nil {
		return fallback
	}
	return l.String()
}
