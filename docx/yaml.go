package docx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Documents are exchanged as YAML. Nodes of the closed sets (blocks, paragraph
// content and run inlines) are written as single key mappings where key names
// the node kind:
//
//	body:
//	  - paragraph:
//	      properties: {styleId: Heading1}
//	      content:
//	        - run:
//	            properties: {bold: true}
//	            inlines:
//	              - text: Hello
//	              - break: page
//	              - tab
//
// Keyword-only inlines (tab, softHyphen, noBreakHyphen) may be written as
// plain scalars, plain string inline is shorthand for text. Null list entry is
// kept as nil node and reported as structural error during conversion.

// Decode reads document model from YAML stream.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("unable to decode document: %w", err)
	}
	return &doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Document) UnmarshalYAML(n *yaml.Node) error {
	var aux struct {
		ID            string             `yaml:"id"`
		Title         string             `yaml:"title"`
		Language      string             `yaml:"language"`
		Body          []yaml.Node        `yaml:"body"`
		Section       *SectionProperties `yaml:"section"`
		Relationships []Relationship     `yaml:"relationships"`
		Styles        *Styles            `yaml:"styles"`
		Theme         map[string]string  `yaml:"theme"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	body, err := decodeBlocks(aux.Body)
	if err != nil {
		return err
	}
	*d = Document{
		ID:       aux.ID,
		Title:    aux.Title,
		Language: aux.Language,
		Body:     body,
		Section:  aux.Section,
		Styles:   aux.Styles,
	}
	if len(aux.Relationships) > 0 {
		d.Relationships = make(Relationships, len(aux.Relationships))
		for _, rel := range aux.Relationships {
			d.Relationships[rel.ID] = rel
		}
	}
	if len(aux.Theme) > 0 {
		d.Theme = make(ThemeColors, len(aux.Theme))
		for k, v := range aux.Theme {
			if c := NormalizeFill(v); c != "" {
				d.Theme[strings.ToLower(strings.TrimSpace(k))] = c
			}
		}
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Paragraph) UnmarshalYAML(n *yaml.Node) error {
	var aux struct {
		Properties *ParagraphProperties `yaml:"properties"`
		Content    []yaml.Node          `yaml:"content"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	content, err := decodeContents(aux.Content)
	if err != nil {
		return err
	}
	*p = Paragraph{Properties: aux.Properties, Content: content}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *TableCell) UnmarshalYAML(n *yaml.Node) error {
	var aux struct {
		Properties *TableCellProperties `yaml:"properties"`
		Content    []yaml.Node          `yaml:"content"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	content, err := decodeBlocks(aux.Content)
	if err != nil {
		return err
	}
	*c = TableCell{Properties: aux.Properties, Content: content}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StructuredTag) UnmarshalYAML(n *yaml.Node) error {
	var aux struct {
		StructuredTagProperties `yaml:",inline"`
		Content                 []yaml.Node `yaml:"content"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	content, err := decodeBlocks(aux.Content)
	if err != nil {
		return err
	}
	*s = StructuredTag{Properties: aux.StructuredTagProperties, Content: content}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StructuredTagRun) UnmarshalYAML(n *yaml.Node) error {
	var aux struct {
		StructuredTagProperties `yaml:",inline"`
		Content                 []yaml.Node `yaml:"content"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	content, err := decodeContents(aux.Content)
	if err != nil {
		return err
	}
	*s = StructuredTagRun{Properties: aux.StructuredTagProperties, Content: content}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Run) UnmarshalYAML(n *yaml.Node) error {
	var aux struct {
		Properties *RunProperties `yaml:"properties"`
		Inlines    []yaml.Node    `yaml:"inlines"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	inlines, err := decodeInlines(aux.Inlines)
	if err != nil {
		return err
	}
	*r = Run{Properties: aux.Properties, Inlines: inlines}
	return nil
}

// UnmarshalYAML accepts either plain string or {value, preserve} mapping.
func (t *Text) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*t = Text{Value: n.Value}
		return nil
	}
	var aux struct {
		Value    string `yaml:"value"`
		Preserve bool   `yaml:"preserve"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	*t = Text{Value: aux.Value, PreserveSpace: aux.Preserve}
	return nil
}

// UnmarshalYAML accepts either break type scalar or {type} mapping.
func (b *Break) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		b.Type = BreakType(n.Value)
		return nil
	}
	var aux struct {
		Type BreakType `yaml:"type"`
	}
	if err := n.Decode(&aux); err != nil {
		return err
	}
	b.Type = aux.Type
	return nil
}

// variant splits single key mapping into node kind and its value. Plain
// scalar is treated as kind with empty value.
func variant(n *yaml.Node) (string, *yaml.Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return "", nil, fmt.Errorf("line %d: node must have exactly one kind key, got %d", n.Line, len(n.Content)/2)
		}
		return n.Content[0].Value, n.Content[1], nil
	default:
		return "", nil, fmt.Errorf("line %d: unexpected node, expected mapping", n.Line)
	}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// decodeInto decodes value into out unless value is null, in which case out
// is left zeroed.
func decodeInto(value *yaml.Node, out any) error {
	if isNull(value) {
		return nil
	}
	return value.Decode(out)
}

func decodeBlocks(nodes []yaml.Node) ([]Block, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	blocks := make([]Block, 0, len(nodes))
	for i := range nodes {
		b, err := decodeBlock(&nodes[i])
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func decodeBlock(n *yaml.Node) (Block, error) {
	if isNull(n) {
		return nil, nil
	}
	kind, value, err := variant(n)
	if err != nil {
		return nil, err
	}
	var b Block
	switch kind {
	case "paragraph":
		b = &Paragraph{}
	case "table":
		b = &Table{}
	case "sdt":
		b = &StructuredTag{}
	case "sectionBreak":
		sb := &SectionBreak{}
		if err := decodeInto(value, &sb.Properties); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
		}
		return sb, nil
	case "bookmark":
		b = &Bookmark{Kind: BookmarkStartKind}
	default:
		return nil, fmt.Errorf("line %d: unknown block %q", n.Line, kind)
	}
	if err := decodeInto(value, b); err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
	}
	return b, nil
}

func decodeContents(nodes []yaml.Node) ([]Content, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	content := make([]Content, 0, len(nodes))
	for i := range nodes {
		c, err := decodeContent(&nodes[i])
		if err != nil {
			return nil, err
		}
		content = append(content, c)
	}
	return content, nil
}

func decodeContent(n *yaml.Node) (Content, error) {
	if isNull(n) {
		return nil, nil
	}
	kind, value, err := variant(n)
	if err != nil {
		return nil, err
	}
	var c Content
	switch kind {
	case "run":
		c = &Run{}
	case "hyperlink":
		c = &Hyperlink{}
	case "bookmarkStart":
		c = &BookmarkStart{}
	case "bookmarkEnd":
		c = &BookmarkEnd{}
	case "field":
		c = &Field{}
	case "sdt":
		c = &StructuredTagRun{}
	default:
		return nil, fmt.Errorf("line %d: unknown paragraph content %q", n.Line, kind)
	}
	if err := decodeInto(value, c); err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
	}
	return c, nil
}

func decodeInlines(nodes []yaml.Node) ([]Inline, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	inlines := make([]Inline, 0, len(nodes))
	for i := range nodes {
		in, err := decodeInline(&nodes[i])
		if err != nil {
			return nil, err
		}
		inlines = append(inlines, in)
	}
	return inlines, nil
}

func decodeInline(n *yaml.Node) (Inline, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind == yaml.ScalarNode {
		switch n.Value {
		case "tab":
			return &Tab{}, nil
		case "softHyphen":
			return &SoftHyphen{}, nil
		case "noBreakHyphen":
			return &NoBreakHyphen{}, nil
		}
		return &Text{Value: n.Value}, nil
	}
	kind, value, err := variant(n)
	if err != nil {
		return nil, err
	}
	var in Inline
	switch kind {
	case "text":
		in = &Text{}
	case "break":
		in = &Break{Type: BreakTextWrapping}
	case "tab":
		return &Tab{}, nil
	case "softHyphen":
		return &SoftHyphen{}, nil
	case "noBreakHyphen":
		return &NoBreakHyphen{}, nil
	case "drawing":
		in = &Drawing{}
	case "noteReference":
		in = &NoteReference{}
	case "footnoteReference":
		nr := &NoteReference{Kind: NoteFootnote}
		if err := decodeInto(value, &nr.ID); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
		}
		return nr, nil
	case "endnoteReference":
		nr := &NoteReference{Kind: NoteEndnote}
		if err := decodeInto(value, &nr.ID); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
		}
		return nr, nil
	case "fieldInstruction":
		fi := &FieldInstruction{}
		if err := decodeInto(value, &fi.Text); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
		}
		return fi, nil
	case "fieldChar":
		fc := &FieldChar{}
		if err := decodeInto(value, &fc.Type); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
		}
		return fc, nil
	case "symbol":
		in = &Symbol{}
	case "separator":
		sep := &Separator{Kind: SeparatorRegular}
		if err := decodeInto(value, &sep.Kind); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
		}
		return sep, nil
	case "referenceMark":
		rm := &ReferenceMark{Kind: NoteFootnote}
		if err := decodeInto(value, &rm.Kind); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
		}
		return rm, nil
	default:
		return nil, fmt.Errorf("line %d: unknown run inline %q", n.Line, kind)
	}
	if err := decodeInto(value, in); err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
	}
	return in, nil
}
