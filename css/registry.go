package css

import (
	"strconv"
	"strings"

	"docxhtml/docx"
)

// Category separates class namespaces of the registry.
type Category int

const (
	CategoryParagraph Category = iota
	CategoryRun
	CategoryTable
	CategoryRow
	CategoryCell
	categoryCount
)

var categoryPrefix = [categoryCount]string{"p", "s", "t", "r", "c"}

// Prefix returns class name prefix of category.
func (c Category) Prefix() string {
	if c < 0 || c >= categoryCount {
		return ""
	}
	return categoryPrefix[c]
}

type registered struct {
	name         string
	declarations Declarations
}

// Registry deduplicates declaration sets into generated class names and
// produces the document stylesheet. It belongs to a single conversion and is
// not safe for concurrent use.
type Registry struct {
	baseParagraph Paragraph
	baseRun       Run
	classes       [categoryCount]map[string]string
	rules         [categoryCount][]registered
	extra         []*Stylesheet
}

// NewRegistry creates registry. Base paragraph and run describe document
// defaults and end up in body and paragraph base rules.
func NewRegistry(baseParagraph Paragraph, baseRun Run) *Registry {
	r := &Registry{baseParagraph: baseParagraph, baseRun: baseRun}
	for i := range r.classes {
		r.classes[i] = make(map[string]string)
	}
	return r
}

// Register returns class for declarations. Equal declarations registered in
// the same category share class name. Empty declarations are not registered
// and empty name is returned.
func (r *Registry) Register(category Category, decls Declarations) string {
	if category < 0 || category >= categoryCount || len(decls) == 0 {
		return ""
	}
	sig := decls.String()
	if name, ok := r.classes[category][sig]; ok {
		return name
	}
	name := category.Prefix() + strconv.Itoa(len(r.rules[category])+1)
	r.classes[category][sig] = name
	r.rules[category] = append(r.rules[category], registered{name: name, declarations: decls})
	return name
}

// Len returns number of classes registered in category.
func (r *Registry) Len(category Category) int {
	if category < 0 || category >= categoryCount {
		return 0
	}
	return len(r.rules[category])
}

// Append adds user stylesheet emitted after generated rules.
func (r *Registry) Append(sheet *Stylesheet) {
	if sheet != nil && len(sheet.Items) > 0 {
		r.extra = append(r.extra, sheet)
	}
}

// pageLayout is page geometry in CSS units.
type pageLayout struct {
	width, height            string
	top, right, bottom, left string
}

func (l pageLayout) padding() string {
	return strings.Join([]string{l.top, l.right, l.bottom, l.left}, " ")
}

func resolvePageLayout(section *docx.SectionProperties) pageLayout {
	width, height := DefaultPageWidth, DefaultPageHeight
	top, right, bottom, left := DefaultMargin, DefaultMargin, DefaultMargin, DefaultMargin
	if section != nil {
		if ps := section.PageSize; ps != nil {
			width, height = ps.Width, ps.Height
		}
		if pm := section.PageMargins; pm != nil {
			top, right, bottom, left = pm.Top, pm.Right, pm.Bottom, pm.Left
		}
	}
	return pageLayout{
		width:  Centimeters(width),
		height: Centimeters(height),
		top:    Centimeters(top),
		right:  Centimeters(right),
		bottom: Centimeters(bottom),
		left:   Centimeters(left),
	}
}
