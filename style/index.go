package style

import (
	"strings"

	"docxhtml/docx"
)

// Index gives access to style library by id. It is immutable once built.
type Index struct {
	byID     map[string]*docx.Style
	order    []*docx.Style
	defaults []string
}

// NewIndex builds index over style library, nil library gives empty index.
// When several styles share id the first one wins.
func NewIndex(styles *docx.Styles) *Index {
	idx := &Index{byID: make(map[string]*docx.Style)}
	if styles == nil {
		return idx
	}
	for _, st := range styles.Styles {
		if st == nil || st.ID == "" {
			continue
		}
		if _, ok := idx.byID[st.ID]; ok {
			continue
		}
		idx.byID[st.ID] = st
		idx.order = append(idx.order, st)
	}
	idx.defaults = styles.DefaultHierarchy()
	return idx
}

// Style returns style by id or nil.
func (idx *Index) Style(id string) *docx.Style {
	return idx.byID[id]
}

// Styles returns all indexed styles in library order.
func (idx *Index) Styles() []*docx.Style {
	return idx.order
}

// DefaultHierarchy returns ids of styles flagged as default.
func (idx *Index) DefaultHierarchy() []string {
	return idx.defaults
}

// Chain follows basedOn links starting with id. Walk stops at missing style
// or when style is visited second time.
func (idx *Index) Chain(id string) []*docx.Style {
	chain, _ := idx.chain(id)
	return chain
}

func (idx *Index) chain(id string) ([]*docx.Style, map[string]bool) {
	seen := make(map[string]bool)
	if strings.TrimSpace(id) == "" {
		return nil, seen
	}
	var chain []*docx.Style
	for current := id; current != "" && !seen[current]; {
		seen[current] = true
		st := idx.byID[current]
		if st == nil {
			break
		}
		chain = append(chain, st)
		current = st.BasedOn
	}
	return chain, seen
}

// ParagraphChain is Chain followed by default styles which were not visited
// yet, so that paragraphs without style still inherit defaults.
func (idx *Index) ParagraphChain(id string) []*docx.Style {
	chain, seen := idx.chain(id)
	for _, def := range idx.defaults {
		if seen[def] {
			continue
		}
		seen[def] = true
		if st := idx.byID[def]; st != nil {
			chain = append(chain, st)
		}
	}
	return chain
}

// CharacterChain is Chain restricted to character styles.
func (idx *Index) CharacterChain(id string) []*docx.Style {
	var chain []*docx.Style
	for _, st := range idx.Chain(id) {
		if st.Type == docx.StyleCharacter {
			chain = append(chain, st)
		}
	}
	return chain
}
