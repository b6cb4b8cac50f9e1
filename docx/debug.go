package docx

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/maruel/natural"

	"docxhtml/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the document model. It exists solely
// for manual inspection and debug reports.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.Attrs(0, "Document", "id", d.ID, "title", d.Title, "language", d.Language)
	if d.Section != nil {
		tw.section(1, "Section", d.Section)
	}
	if len(d.Theme) > 0 {
		tw.Line(1, "Theme: %d", len(d.Theme))
		for _, k := range SortedKeys(d.Theme) {
			tw.Line(2, "%s=%s", k, d.Theme[k])
		}
	}
	if len(d.Relationships) > 0 {
		tw.Line(1, "Relationships: %d", len(d.Relationships))
		for _, k := range SortedKeys(d.Relationships) {
			rel := d.Relationships[k]
			tw.Attrs(2, "Relationship", "id", rel.ID, "type", rel.Type, "target", rel.Target, "mode", rel.TargetMode)
		}
	}
	if d.Styles != nil {
		tw.Line(1, "Styles: %d", len(d.Styles.Styles))
		for _, st := range d.Styles.Styles {
			if st == nil {
				continue
			}
			tw.Attrs(2, "Style", "id", st.ID, "type", string(st.Type), "basedOn", st.BasedOn, "link", st.Link,
				"default", strconv.FormatBool(st.Default))
		}
	}
	tw.Line(1, "Body: %d", len(d.Body))
	tw.blocks(2, d.Body)
	return tw.String()
}

// SortedKeys returns map keys in natural order.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

func (tw treeWriter) section(depth int, label string, s *SectionProperties) {
	tw.Line(depth, "%s", label)
	if s.PageSize != nil {
		tw.Line(depth+1, "PageSize %dx%d", s.PageSize.Width, s.PageSize.Height)
	}
	if m := s.PageMargins; m != nil {
		tw.Line(depth+1, "PageMargins %d %d %d %d", m.Top, m.Right, m.Bottom, m.Left)
	}
}

func (tw treeWriter) blocks(depth int, blocks []Block) {
	for i, b := range blocks {
		switch b := b.(type) {
		case *Paragraph:
			style := ""
			if b.Properties != nil {
				style = b.Properties.StyleID
			}
			tw.Attrs(depth, fmt.Sprintf("Paragraph[%d]", i), "style", style)
			tw.contents(depth+1, b.Content)
		case *Table:
			tw.Line(depth, "Table[%d] rows=%d", i, len(b.Rows))
			for r, row := range b.Rows {
				if row == nil {
					tw.Line(depth+1, "Row[%d] <nil>", r)
					continue
				}
				cnf := ""
				if row.Properties != nil {
					cnf = row.Properties.CnfStyle
				}
				tw.Attrs(depth+1, fmt.Sprintf("Row[%d]", r), "cnfStyle", cnf)
				for c, cell := range row.Cells {
					if cell == nil {
						tw.Line(depth+2, "Cell[%d] <nil>", c)
						continue
					}
					tw.Line(depth+2, "Cell[%d]", c)
					tw.blocks(depth+3, cell.Content)
				}
			}
		case *StructuredTag:
			tw.Attrs(depth, fmt.Sprintf("StructuredTag[%d]", i), "tag", b.Properties.Tag, "alias", b.Properties.Alias)
			tw.blocks(depth+1, b.Content)
		case *SectionBreak:
			tw.Line(depth, "SectionBreak[%d]", i)
		case *Bookmark:
			tw.Attrs(depth, fmt.Sprintf("Bookmark[%d]", i), "kind", string(b.Kind), "id", b.ID, "name", b.Name)
		case nil:
			tw.Line(depth, "Block[%d] <nil>", i)
		default:
			tw.Line(depth, "Block[%d] %T", i, b)
		}
	}
}

func (tw treeWriter) contents(depth int, content []Content) {
	for i, c := range content {
		switch c := c.(type) {
		case *Run:
			tw.run(depth, i, c)
		case *Hyperlink:
			tw.Attrs(depth, fmt.Sprintf("Hyperlink[%d]", i), "rel", c.RelationshipID, "anchor", c.Anchor)
			for j, r := range c.Runs {
				tw.run(depth+1, j, r)
			}
		case *BookmarkStart:
			tw.Attrs(depth, fmt.Sprintf("BookmarkStart[%d]", i), "id", c.ID, "name", c.Name)
		case *BookmarkEnd:
			tw.Attrs(depth, fmt.Sprintf("BookmarkEnd[%d]", i), "id", c.ID)
		case *Field:
			tw.Text(depth, fmt.Sprintf("Field[%d]", i), c.Instruction)
			for j, r := range c.ResultRuns {
				tw.run(depth+1, j, r)
			}
		case *StructuredTagRun:
			tw.Attrs(depth, fmt.Sprintf("StructuredTagRun[%d]", i), "tag", c.Properties.Tag)
			tw.contents(depth+1, c.Content)
		case nil:
			tw.Line(depth, "Content[%d] <nil>", i)
		default:
			tw.Line(depth, "Content[%d] %T", i, c)
		}
	}
}

func (tw treeWriter) run(depth, i int, r *Run) {
	if r == nil {
		tw.Line(depth, "Run[%d] <nil>", i)
		return
	}
	style := ""
	if r.Properties != nil {
		style = r.Properties.StyleID
	}
	tw.Attrs(depth, fmt.Sprintf("Run[%d]", i), "style", style)
	for j, in := range r.Inlines {
		switch in := in.(type) {
		case *Text:
			tw.Text(depth+1, fmt.Sprintf("Text[%d]", j), in.Value)
		case *Break:
			tw.Attrs(depth+1, fmt.Sprintf("Break[%d]", j), "type", string(in.Type))
		case nil:
			tw.Line(depth+1, "Inline[%d] <nil>", j)
		default:
			tw.Line(depth+1, "%T[%d]", in, j)
		}
	}
}
