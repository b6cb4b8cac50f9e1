// Package docx defines in-memory model of a parsed word-processing document:
// the body tree, the style library, theme colors and section properties. The
// model is produced by an external parser (or decoded from YAML, see
// yaml.go) and is never modified by the conversion.
package docx

import (
	"errors"
)

// ErrStructure is returned when the tree violates model guarantees, for
// example nil node inside of a block list.
var ErrStructure = errors.New("malformed document structure")

// Document is the root of the model.
type Document struct {
	ID            string
	Title         string
	Language      string
	Body          []Block
	Section       *SectionProperties
	Relationships Relationships
	Styles        *Styles
	Theme         ThemeColors
}

// Block is one of the body level nodes: *Paragraph, *Table, *StructuredTag,
// *SectionBreak or *Bookmark. The set is closed.
type Block interface {
	block()
}

// Content is one of the nodes allowed inside of a paragraph: *Run,
// *Hyperlink, *BookmarkStart, *BookmarkEnd, *Field or *StructuredTagRun. The
// set is closed.
type Content interface {
	content()
}

// Inline is one of the nodes allowed inside of a run. The set is closed.
type Inline interface {
	inline()
}

type Paragraph struct {
	Properties *ParagraphProperties
	Content    []Content
}

type Table struct {
	Properties *TableProperties `yaml:"properties,omitempty"`
	Grid       []int            `yaml:"grid,omitempty"` // column widths in twips
	Rows       []*TableRow      `yaml:"rows,omitempty"`
}

type TableRow struct {
	Properties *TableRowProperties `yaml:"properties,omitempty"`
	Cells      []*TableCell        `yaml:"cells,omitempty"`
}

type TableCell struct {
	Properties *TableCellProperties
	Content    []Block
}

// StructuredTagProperties carries identification of content control.
type StructuredTagProperties struct {
	Tag   string `yaml:"tag,omitempty"`
	Alias string `yaml:"alias,omitempty"`
	ID    string `yaml:"id,omitempty"`
}

// StructuredTag is block level content control.
type StructuredTag struct {
	Properties StructuredTagProperties
	Content    []Block
}

// SectionBreak marks the end of a section which is not the last one.
type SectionBreak struct {
	Properties *SectionProperties
}

// BookmarkKind distinguishes start and end markers.
type BookmarkKind string

const (
	BookmarkStartKind BookmarkKind = "start"
	BookmarkEndKind   BookmarkKind = "end"
)

// Bookmark is block level bookmark marker.
type Bookmark struct {
	Kind BookmarkKind `yaml:"kind,omitempty"`
	ID   string       `yaml:"id,omitempty"`
	Name string       `yaml:"name,omitempty"`
}

func (*Paragraph) block()     {}
func (*Table) block()         {}
func (*StructuredTag) block() {}
func (*SectionBreak) block()  {}
func (*Bookmark) block()      {}

type Run struct {
	Properties *RunProperties
	Inlines    []Inline
}

type Hyperlink struct {
	RelationshipID string `yaml:"rel,omitempty"`
	Anchor         string `yaml:"anchor,omitempty"`
	Runs           []*Run `yaml:"runs,omitempty"`
}

type BookmarkStart struct {
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name,omitempty"`
}

type BookmarkEnd struct {
	ID string `yaml:"id,omitempty"`
}

// Field is complex or simple field. Result runs are displayed, instruction
// runs are only used when there is no result.
type Field struct {
	Instruction     string `yaml:"instruction,omitempty"`
	InstructionRuns []*Run `yaml:"instructionRuns,omitempty"`
	ResultRuns      []*Run `yaml:"resultRuns,omitempty"`
}

// StructuredTagRun is inline content control.
type StructuredTagRun struct {
	Properties StructuredTagProperties
	Content    []Content
}

func (*Run) content()              {}
func (*Hyperlink) content()        {}
func (*BookmarkStart) content()    {}
func (*BookmarkEnd) content()      {}
func (*Field) content()            {}
func (*StructuredTagRun) content() {}

type Text struct {
	Value         string
	PreserveSpace bool
}

// BreakType values follow w:br/@w:type.
type BreakType string

const (
	BreakTextWrapping BreakType = "textWrapping"
	BreakPage         BreakType = "page"
	BreakColumn       BreakType = "column"
)

type Break struct {
	Type BreakType
}

type Tab struct{}

// Drawing is a placeholder for embedded picture, sizes are in EMU.
type Drawing struct {
	RelationshipID string `yaml:"rel,omitempty"`
	Width          int64  `yaml:"width,omitempty"`
	Height         int64  `yaml:"height,omitempty"`
	Description    string `yaml:"description,omitempty"`
}

// NoteKind specifies what note reference points to.
type NoteKind string

const (
	NoteFootnote NoteKind = "footnote"
	NoteEndnote  NoteKind = "endnote"
	NoteComment  NoteKind = "comment"
)

type NoteReference struct {
	Kind NoteKind `yaml:"kind,omitempty"`
	ID   string   `yaml:"id,omitempty"`
}

type FieldInstruction struct {
	Text string
}

// FieldChar is w:fldChar marker (begin, separate, end).
type FieldChar struct {
	Type string
}

// Symbol is w:sym, Char is hexadecimal (or decimal) code point.
type Symbol struct {
	Font string `yaml:"font,omitempty"`
	Char string `yaml:"char,omitempty"`
}

type SoftHyphen struct{}

type NoBreakHyphen struct{}

// SeparatorKind distinguishes note separators.
type SeparatorKind string

const (
	SeparatorRegular      SeparatorKind = "separator"
	SeparatorContinuation SeparatorKind = "continuationseparator"
)

type Separator struct {
	Kind SeparatorKind
}

// ReferenceMark is w:footnoteRef / w:endnoteRef inside of note body.
type ReferenceMark struct {
	Kind NoteKind
}

func (*Text) inline()             {}
func (*Break) inline()            {}
func (*Tab) inline()              {}
func (*Drawing) inline()          {}
func (*NoteReference) inline()    {}
func (*FieldInstruction) inline() {}
func (*FieldChar) inline()        {}
func (*Symbol) inline()           {}
func (*SoftHyphen) inline()       {}
func (*NoBreakHyphen) inline()    {}
func (*Separator) inline()        {}
func (*ReferenceMark) inline()    {}

// PageSize is in twips.
type PageSize struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// PageMargins is in twips.
type PageMargins struct {
	Top    int `yaml:"top,omitempty"`
	Right  int `yaml:"right,omitempty"`
	Bottom int `yaml:"bottom,omitempty"`
	Left   int `yaml:"left,omitempty"`
}

type SectionProperties struct {
	PageSize    *PageSize    `yaml:"pageSize,omitempty"`
	PageMargins *PageMargins `yaml:"pageMargins,omitempty"`
}

// Relationship is an entry of document part relationships.
type Relationship struct {
	ID         string `yaml:"id,omitempty"`
	Type       string `yaml:"type,omitempty"`
	Target     string `yaml:"target,omitempty"`
	TargetMode string `yaml:"targetMode,omitempty"`
}

// Relationships indexes relationships by id.
type Relationships map[string]Relationship
