package html

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"docxhtml/css"
	"docxhtml/docx"
	"docxhtml/style"
)

func (c *conversion) content(item docx.Content, p style.Paragraph, where string) string {
	switch item := item.(type) {
	case *docx.Run:
		if item == nil {
			c.fail(where, "run")
			return ""
		}
		return c.run(item, p, where)
	case *docx.Hyperlink:
		if item == nil {
			c.fail(where, "hyperlink")
			return ""
		}
		return c.hyperlink(item, p, where)
	case *docx.BookmarkStart:
		if item == nil {
			return ""
		}
		return anchor(item.Name, item.ID)
	case *docx.BookmarkEnd:
		return ""
	case *docx.Field:
		if item == nil {
			c.fail(where, "field")
			return ""
		}
		return c.field(item, p, where)
	case *docx.StructuredTagRun:
		if item == nil {
			c.fail(where, "structured tag")
			return ""
		}
		var b strings.Builder
		b.WriteString(`<span class="docx-sdt-inline"`)
		writeTagAttributes(&b, item.Properties)
		b.WriteByte('>')
		for i, child := range item.Content {
			b.WriteString(c.content(child, p, fmt.Sprintf("%s/sdt[%d]", where, i)))
		}
		b.WriteString("</span>")
		return b.String()
	case nil:
		c.fail(where, "paragraph content")
		return ""
	default:
		c.log.Debug("Unsupported paragraph content", zap.String("where", where), zap.String("type", fmt.Sprintf("%T", item)))
		return ""
	}
}

func (c *conversion) runs(runs []*docx.Run, p style.Paragraph, where string) string {
	var b strings.Builder
	for i, run := range runs {
		runWhere := fmt.Sprintf("%s/run[%d]", where, i)
		if run == nil {
			c.fail(runWhere, "run")
			continue
		}
		b.WriteString(c.run(run, p, runWhere))
	}
	return b.String()
}

func (c *conversion) hyperlink(link *docx.Hyperlink, p style.Paragraph, where string) string {
	content := c.runs(link.Runs, p, where)
	if content == "" {
		return ""
	}
	href, ok := resolveLink(c.rels, link.RelationshipID, link.Anchor)
	if !ok {
		href = "#"
	}
	return `<a class="docx-link" href="` + escape(href) + `">` + content + "</a>"
}

// field renders field result, instruction runs are used when there is no
// result.
func (c *conversion) field(f *docx.Field, p style.Paragraph, where string) string {
	content := c.runs(f.ResultRuns, p, where+"/result")
	if content == "" {
		content = c.runs(f.InstructionRuns, p, where+"/instruction")
	}
	if content == "" {
		return ""
	}
	return `<span class="docx-field">` + content + "</span>"
}

// run renders run content. Hidden runs produce nothing, runs without own
// declarations are not wrapped.
func (c *conversion) run(run *docx.Run, p style.Paragraph, where string) string {
	resolved := c.resolver.Run(run.Properties, p)
	if resolved.Vanish {
		return ""
	}

	var content strings.Builder
	for i, in := range run.Inlines {
		content.WriteString(c.inline(in, fmt.Sprintf("%s/inline[%d]", where, i)))
	}
	if content.Len() == 0 {
		return ""
	}

	class := c.registry.Register(css.CategoryRun, css.NewRun(resolved).Declarations())
	if class == "" {
		return content.String()
	}
	return `<span class="docx-span ` + class + `">` + content.String() + "</span>"
}

func (c *conversion) inline(in docx.Inline, where string) string {
	switch in := in.(type) {
	case *docx.Text:
		if in == nil {
			c.fail(where, "text")
			return ""
		}
		return renderText(in.Value, in.PreserveSpace)
	case *docx.Break:
		if in == nil {
			return "<br/>"
		}
		switch in.Type {
		case docx.BreakPage:
			return `<span class="docx-page-break"></span>`
		case docx.BreakColumn:
			return `<span class="docx-column-break"></span>`
		default:
			return "<br/>"
		}
	case *docx.Tab:
		return `<span class="docx-tab">&emsp;</span>`
	case *docx.Drawing:
		if in == nil {
			c.fail(where, "drawing")
			return ""
		}
		return renderDrawing(in)
	case *docx.NoteReference:
		if in == nil {
			c.fail(where, "note reference")
			return ""
		}
		kind := in.Kind
		if kind == "" {
			kind = docx.NoteFootnote
		}
		return `<sup class="docx-note-ref" data-note-type="` + escape(string(kind)) + `">` + escape(in.ID) + "</sup>"
	case *docx.FieldInstruction, *docx.FieldChar, *docx.ReferenceMark:
		return ""
	case *docx.Symbol:
		if in == nil {
			c.fail(where, "symbol")
			return ""
		}
		return renderSymbol(in.Char)
	case *docx.SoftHyphen:
		return "&shy;"
	case *docx.NoBreakHyphen:
		return "&#8209;"
	case *docx.Separator:
		kind := docx.SeparatorRegular
		if in != nil && in.Kind != "" {
			kind = in.Kind
		}
		return `<span class="docx-note-separator" data-kind="` + escape(string(kind)) + `"></span>`
	case nil:
		c.fail(where, "inline")
		return ""
	default:
		c.log.Debug("Unsupported inline", zap.String("where", where), zap.String("type", fmt.Sprintf("%T", in)))
		return ""
	}
}

// renderText escapes text. With preserved space leading, trailing and
// repeated spaces become non-breaking, tabs always expand to four
// non-breaking spaces and line ends (CRLF counts once) become line breaks.
func renderText(value string, preserve bool) string {
	if value == "" {
		return ""
	}

	var (
		b     strings.Builder
		plain strings.Builder
	)
	flush := func() {
		if plain.Len() > 0 {
			b.WriteString(escape(plain.String()))
			plain.Reset()
		}
	}

	for i := 0; i < len(value); i++ {
		switch ch := value[i]; ch {
		case ' ':
			if preserve && (i == 0 || i == len(value)-1 || value[i-1] == ' ' || value[i+1] == ' ') {
				flush()
				b.WriteString("&nbsp;")
			} else {
				plain.WriteByte(' ')
			}
		case '\t':
			flush()
			b.WriteString("&nbsp;&nbsp;&nbsp;&nbsp;")
		case '\r':
			if i+1 < len(value) && value[i+1] == '\n' {
				continue
			}
			flush()
			b.WriteString("<br/>")
		case '\n':
			flush()
			b.WriteString("<br/>")
		default:
			plain.WriteByte(ch)
		}
	}
	flush()
	return b.String()
}

func renderDrawing(d *docx.Drawing) string {
	var b strings.Builder
	b.WriteString(`<span class="docx-drawing"`)
	if d.RelationshipID != "" {
		b.WriteString(` data-rel="` + escape(d.RelationshipID) + `"`)
	}
	if d.Width > 0 && d.Height > 0 {
		b.WriteString(` data-size="` + strconv.FormatInt(d.Width, 10) + "x" + strconv.FormatInt(d.Height, 10) + `"`)
	}
	b.WriteString(">[Image")
	if strings.TrimSpace(d.Description) != "" {
		b.WriteString(": " + escape(d.Description))
	}
	b.WriteString("]</span>")
	return b.String()
}

// renderSymbol decodes character code of w:sym, hexadecimal form is tried
// first. Undecodable code is emitted as is.
func renderSymbol(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	n, err := strconv.ParseInt(code, 16, 32)
	if err != nil {
		if n, err = strconv.ParseInt(code, 10, 32); err != nil {
			return escape(code)
		}
	}
	if r := rune(n); utf8.ValidRune(r) {
		return escape(string(r))
	}
	return escape(code)
}
