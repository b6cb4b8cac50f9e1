package style

import (
	"docxhtml/docx"
)

// Paragraph is the effective formatting of a paragraph.
type Paragraph struct {
	Alignment       docx.Alignment
	Indentation     *docx.Indentation
	Spacing         *docx.Spacing
	KeepTogether    bool
	KeepWithNext    bool
	PageBreakBefore bool
	Shading         string
	Borders         Borders
	// RunFallbacks are run properties inherited by every run of the
	// paragraph, most specific first.
	RunFallbacks []*docx.RunProperties
}

// Run is the effective formatting of a run.
type Run struct {
	Bold          bool
	Italic        bool
	Underline     bool
	UnderlineType string
	Strike        bool
	DoubleStrike  bool
	SmallCaps     bool
	AllCaps       bool
	Vanish        bool
	Color         string
	Highlight     string
	VerticalAlign string
	Size          *int // half-points
	Fonts         []string
	Border        Borders
}

// Resolver computes effective formatting from direct properties, style
// chains and document defaults.
type Resolver struct {
	index            *Index
	theme            docx.ThemeColors
	defaultCharacter []*docx.RunProperties
	docParagraph     *docx.ParagraphProperties
	docRun           *docx.RunProperties
}

// NewResolver prepares resolver for a style library and theme, both may be
// nil.
func NewResolver(styles *docx.Styles, theme docx.ThemeColors) *Resolver {
	r := &Resolver{index: NewIndex(styles), theme: theme}
	for _, st := range r.index.Styles() {
		if st.Type == docx.StyleCharacter && st.Default && st.RunProperties != nil {
			r.defaultCharacter = append(r.defaultCharacter, st.RunProperties)
		}
	}
	if styles != nil {
		r.docParagraph = styles.Defaults.ParagraphProperties
		r.docRun = styles.Defaults.RunProperties
	}
	return r
}

// Index returns style index used by resolver.
func (r *Resolver) Index() *Index {
	return r.index
}

// Theme returns theme colors used by resolver.
func (r *Resolver) Theme() docx.ThemeColors {
	return r.theme
}

// Paragraph resolves paragraph formatting. Extra run fallbacks come from
// enclosing containers (table regions) and rank below paragraph styles.
func (r *Resolver) Paragraph(direct *docx.ParagraphProperties, extra []*docx.RunProperties) Paragraph {
	if direct == nil {
		direct = &docx.ParagraphProperties{}
	}

	var (
		fallbacks    []*docx.ParagraphProperties
		runFallbacks []*docx.RunProperties
	)
	runFallbacks = appendRun(runFallbacks, direct.RunProperties)
	for _, st := range r.index.ParagraphChain(direct.StyleID) {
		if st.ParagraphProperties != nil {
			fallbacks = append(fallbacks, st.ParagraphProperties)
		}
		runFallbacks = appendRun(runFallbacks, st.RunProperties)
		if st.ParagraphProperties != nil {
			runFallbacks = appendRun(runFallbacks, st.ParagraphProperties.RunProperties)
		}
		if st.Link != "" {
			if linked := r.index.Style(st.Link); linked != nil {
				runFallbacks = appendRun(runFallbacks, linked.RunProperties)
			}
		}
	}
	if r.docParagraph != nil {
		fallbacks = append(fallbacks, r.docParagraph)
		runFallbacks = appendRun(runFallbacks, r.docParagraph.RunProperties)
	}
	for _, rp := range extra {
		runFallbacks = appendRun(runFallbacks, rp)
	}
	runFallbacks = append(runFallbacks, r.defaultCharacter...)
	runFallbacks = appendRun(runFallbacks, r.docRun)

	p := Paragraph{
		Alignment:       direct.Alignment,
		Indentation:     direct.Indentation,
		Spacing:         direct.Spacing,
		KeepTogether:    direct.KeepTogether,
		KeepWithNext:    direct.KeepWithNext,
		PageBreakBefore: direct.PageBreakBefore,
		Shading:         ShadingColor(direct.Shading, r.theme),
		Borders:         ParseBorders(direct.Borders, r.theme),
		RunFallbacks:    runFallbacks,
	}
	for _, fb := range fallbacks {
		if p.Alignment == "" {
			p.Alignment = fb.Alignment
		}
		if p.Indentation == nil {
			p.Indentation = fb.Indentation
		}
		if p.Spacing == nil {
			p.Spacing = fb.Spacing
		}
		p.KeepTogether = p.KeepTogether || fb.KeepTogether
		p.KeepWithNext = p.KeepWithNext || fb.KeepWithNext
		p.PageBreakBefore = p.PageBreakBefore || fb.PageBreakBefore
		if p.Shading == "" {
			p.Shading = ShadingColor(fb.Shading, r.theme)
		}
		if p.Borders.IsEmpty() {
			p.Borders = ParseBorders(fb.Borders, r.theme)
		}
	}
	return p
}

func appendRun(list []*docx.RunProperties, rp *docx.RunProperties) []*docx.RunProperties {
	if rp == nil {
		return list
	}
	return append(list, rp)
}

// Run resolves run formatting against resolved paragraph. Cascade is direct
// properties, character styles along direct style chain, then paragraph run
// fallbacks. Flags once set stay set, scalars are taken from the first entry
// specifying them.
func (r *Resolver) Run(direct *docx.RunProperties, p Paragraph) Run {
	if direct == nil {
		direct = &docx.RunProperties{}
	}
	cascade := []*docx.RunProperties{direct}
	if direct.StyleID != "" {
		for _, st := range r.index.CharacterChain(direct.StyleID) {
			cascade = appendRun(cascade, st.RunProperties)
		}
	}
	cascade = append(cascade, p.RunFallbacks...)

	var (
		res         Run
		complexSize *int
		fonts       fontMap
	)
	for _, rp := range cascade {
		res.Bold = res.Bold || rp.Bold
		res.Italic = res.Italic || rp.Italic
		if rp.Underline {
			if !res.Underline {
				res.Underline = true
				if rp.UnderlineType != "" {
					res.UnderlineType = rp.UnderlineType
				}
			} else if res.UnderlineType == "" {
				res.UnderlineType = rp.UnderlineType
			}
		}
		res.Strike = res.Strike || rp.Strike
		if rp.DoubleStrike {
			res.DoubleStrike = true
			res.Strike = true
		}
		res.SmallCaps = res.SmallCaps || rp.SmallCaps
		res.AllCaps = res.AllCaps || rp.AllCaps
		res.Vanish = res.Vanish || rp.Vanish
		if res.Color == "" {
			res.Color = rp.Color
		}
		if res.Highlight == "" {
			res.Highlight = rp.Highlight
		}
		if res.VerticalAlign == "" {
			res.VerticalAlign = rp.VerticalAlign
		}
		if res.Size == nil {
			res.Size = rp.Size
		}
		if complexSize == nil {
			complexSize = rp.ComplexSize
		}
		fonts.merge(rp.Fonts)
		if res.Border.IsEmpty() {
			res.Border = RunBorder(rp.Border, r.theme)
		}
	}
	if res.Size == nil {
		res.Size = complexSize
	}
	res.Fonts = fonts.stack()
	return res
}
