package html

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"docxhtml/css"
	"docxhtml/docx"
	"docxhtml/style"
)

func (c *conversion) block(b docx.Block, fallbacks []*docx.RunProperties, where string) string {
	switch b := b.(type) {
	case *docx.Paragraph:
		if b == nil {
			c.fail(where, "paragraph")
			return ""
		}
		return c.paragraph(b, fallbacks, where)
	case *docx.Table:
		if b == nil {
			c.fail(where, "table")
			return ""
		}
		return c.table(b, fallbacks, where)
	case *docx.StructuredTag:
		if b == nil {
			c.fail(where, "structured tag")
			return ""
		}
		return c.structuredTag(b, fallbacks, where)
	case *docx.SectionBreak:
		return `<span class="docx-section-break"></span>`
	case *docx.Bookmark:
		if b == nil || b.Kind != docx.BookmarkStartKind {
			return ""
		}
		return anchor(b.Name, b.ID)
	case nil:
		c.fail(where, "block")
		return ""
	default:
		c.log.Debug("Unsupported block", zap.String("where", where), zap.String("type", fmt.Sprintf("%T", b)))
		return ""
	}
}

func (c *conversion) paragraph(p *docx.Paragraph, fallbacks []*docx.RunProperties, where string) string {
	resolved := c.resolver.Paragraph(p.Properties, fallbacks)
	mark := c.resolver.Run(nil, resolved)
	class := c.registry.Register(css.CategoryParagraph, css.NewParagraph(resolved, mark).Declarations())

	var inner strings.Builder
	for i, item := range p.Content {
		inner.WriteString(c.content(item, resolved, fmt.Sprintf("%s/content[%d]", where, i)))
	}
	if inner.Len() == 0 {
		inner.WriteString("&nbsp;")
	}
	return `<p class="` + classList("docx-paragraph", class) + `">` + inner.String() + "</p>"
}

func (c *conversion) structuredTag(sdt *docx.StructuredTag, fallbacks []*docx.RunProperties, where string) string {
	var b strings.Builder
	b.WriteString(`<section class="docx-sdt"`)
	writeTagAttributes(&b, sdt.Properties)
	b.WriteByte('>')
	for i, child := range sdt.Content {
		b.WriteString(c.block(child, fallbacks, fmt.Sprintf("%s/sdt[%d]", where, i)))
	}
	b.WriteString("</section>")
	return b.String()
}

func (c *conversion) table(t *docx.Table, fallbacks []*docx.RunProperties, where string) string {
	ts := c.resolver.Table(t.Properties)
	theme := c.resolver.Theme()

	var (
		background string
		direct     style.TableBorders
	)
	if t.Properties != nil {
		background = style.ShadingColor(t.Properties.Shading, theme)
		direct = style.ParseTableBorders(t.Properties.Borders, theme)
	}
	if background == "" {
		background = ts.Background
	}
	borders := ts.Borders.OverrideWith(direct)

	class := c.registry.Register(css.CategoryTable, css.Box{Background: background, Borders: borders.Perimeter}.Declarations())

	var b strings.Builder
	b.WriteString(`<table class="` + classList("docx-table", class) + `">`)

	rows := len(t.Rows)
	for i, row := range t.Rows {
		rowWhere := fmt.Sprintf("%s/row[%d]", where, i)
		if row == nil {
			c.fail(rowWhere, "table row")
			continue
		}
		region := ts.RowRegion(row.Properties, i, rows)

		var rowBackground string
		if row.Properties != nil {
			rowBackground = style.ShadingColor(row.Properties.Shading, theme)
		}
		rowFallbacks := fallbacks
		var regionBorders style.Borders
		if region != nil {
			if rowBackground == "" {
				rowBackground = region.Background
			}
			rowFallbacks = withFallback(fallbacks, region.RunProperties)
			regionBorders = region.Borders
		}

		rowClass := c.registry.Register(css.CategoryRow, css.Box{Background: rowBackground}.Declarations())
		b.WriteString(`<tr class="` + classList("docx-row", rowClass) + `">`)

		cols := len(row.Cells)
		for j, cell := range row.Cells {
			cellWhere := fmt.Sprintf("%s/cell[%d]", rowWhere, j)
			if cell == nil {
				c.fail(cellWhere, "table cell")
				continue
			}
			var own style.Borders
			if cell.Properties != nil {
				own = style.ParseBorders(cell.Properties.Borders, theme)
			}
			cellBorders := style.CellBorders(own, regionBorders, borders, i, j, rows, cols)
			b.WriteString(c.cell(cell, cellBorders, rowBackground, background, rowFallbacks, cellWhere))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

// cell renders table cell. Cell background equal to the background of the
// row or of the table is not repeated.
func (c *conversion) cell(cell *docx.TableCell, borders style.Borders, rowBackground, tableBackground string,
	fallbacks []*docx.RunProperties, where string) string {

	var content strings.Builder
	for i, child := range cell.Content {
		content.WriteString(c.block(child, fallbacks, fmt.Sprintf("%s/block[%d]", where, i)))
	}
	if content.Len() == 0 {
		content.WriteString("&nbsp;")
	}

	classes := []string{"docx-cell"}
	var (
		background string
		span       int
	)
	if props := cell.Properties; props != nil {
		switch props.VerticalAlign {
		case "center":
			classes = append(classes, "docx-cell-middle")
		case "bottom":
			classes = append(classes, "docx-cell-bottom")
		}
		background = style.ShadingColor(props.Shading, c.resolver.Theme())
		span = props.GridSpan
	}
	if background == rowBackground || background == tableBackground {
		background = ""
	}
	if class := c.registry.Register(css.CategoryCell, css.Box{Background: background, Borders: borders}.Declarations()); class != "" {
		classes = append(classes, class)
	}

	var b strings.Builder
	b.WriteString(`<td class="` + strings.Join(classes, " ") + `"`)
	if span > 1 {
		b.WriteString(` colspan="` + strconv.Itoa(span) + `"`)
	}
	b.WriteByte('>')
	b.WriteString(content.String())
	b.WriteString("</td>")
	return b.String()
}

// anchor renders bookmark target, name is preferred over id.
func anchor(name, id string) string {
	target := name
	if target == "" {
		target = id
	}
	if strings.TrimSpace(target) == "" {
		return ""
	}
	return `<a id="` + escape(target) + `"></a>`
}

func classList(fixed, generated string) string {
	if generated == "" {
		return fixed
	}
	return fixed + " " + generated
}

func writeTagAttributes(b *strings.Builder, props docx.StructuredTagProperties) {
	if props.Tag != "" {
		b.WriteString(` data-tag="` + escape(props.Tag) + `"`)
	}
	if props.Alias != "" {
		b.WriteString(` data-alias="` + escape(props.Alias) + `"`)
	}
	if props.ID != "" {
		b.WriteString(` data-id="` + escape(props.ID) + `"`)
	}
}
