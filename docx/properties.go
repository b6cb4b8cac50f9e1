package docx

// Alignment values follow w:jc/@w:val.
type Alignment string

const (
	AlignLeft       Alignment = "left"
	AlignCenter     Alignment = "center"
	AlignRight      Alignment = "right"
	AlignBoth       Alignment = "both"
	AlignJustify    Alignment = "justify"
	AlignDistribute Alignment = "distribute"
	AlignThai       Alignment = "thaiDistribute"
	AlignJustLow    Alignment = "justLow"
)

// Indentation values are in twips, nil means "not specified".
type Indentation struct {
	Left      *int `yaml:"left,omitempty"`
	Right     *int `yaml:"right,omitempty"`
	FirstLine *int `yaml:"firstLine,omitempty"`
	Hanging   *int `yaml:"hanging,omitempty"`
}

// Spacing values are in twips except Line which depends on LineRule ("auto"
// means 240ths of a line).
type Spacing struct {
	Before   *int   `yaml:"before,omitempty"`
	After    *int   `yaml:"after,omitempty"`
	Line     *int   `yaml:"line,omitempty"`
	LineRule string `yaml:"lineRule,omitempty"`
}

type TabStop struct {
	Alignment string `yaml:"val,omitempty"`
	Position  *int   `yaml:"pos,omitempty"`
}

// Shading mirrors w:shd attributes.
type Shading struct {
	Val            string `yaml:"val,omitempty"`
	Fill           string `yaml:"fill,omitempty"`
	Color          string `yaml:"color,omitempty"`
	ThemeFill      string `yaml:"themeFill,omitempty"`
	ThemeFillTint  string `yaml:"themeFillTint,omitempty"`
	ThemeFillShade string `yaml:"themeFillShade,omitempty"`
	ThemeColor     string `yaml:"themeColor,omitempty"`
	ThemeTint      string `yaml:"themeTint,omitempty"`
	ThemeShade     string `yaml:"themeShade,omitempty"`
}

// BorderEdge mirrors attributes of a single border element (w:top, w:bdr,
// ...). Size is in eighths of a point.
type BorderEdge struct {
	Val        string `yaml:"val,omitempty"`
	Size       *int   `yaml:"sz,omitempty"`
	Space      *int   `yaml:"space,omitempty"`
	Color      string `yaml:"color,omitempty"`
	ThemeColor string `yaml:"themeColor,omitempty"`
	ThemeTint  string `yaml:"themeTint,omitempty"`
	ThemeShade string `yaml:"themeShade,omitempty"`
}

// Borders mirrors w:pBdr, w:tblBorders and w:tcBorders. Inside edges are only
// meaningful for tables.
type Borders struct {
	Top     *BorderEdge `yaml:"top,omitempty"`
	Right   *BorderEdge `yaml:"right,omitempty"`
	Bottom  *BorderEdge `yaml:"bottom,omitempty"`
	Left    *BorderEdge `yaml:"left,omitempty"`
	InsideH *BorderEdge `yaml:"insideH,omitempty"`
	InsideV *BorderEdge `yaml:"insideV,omitempty"`
}

// Fonts mirrors w:rFonts.
type Fonts struct {
	ASCII    string `yaml:"ascii,omitempty"`
	HAnsi    string `yaml:"hAnsi,omitempty"`
	EastAsia string `yaml:"eastAsia,omitempty"`
	CS       string `yaml:"cs,omitempty"`
}

// IsEmpty reports if no font is specified.
func (f Fonts) IsEmpty() bool {
	return f.ASCII == "" && f.HAnsi == "" && f.EastAsia == "" && f.CS == ""
}

type ParagraphProperties struct {
	StyleID         string       `yaml:"styleId,omitempty"`
	Alignment       Alignment    `yaml:"alignment,omitempty"`
	Indentation     *Indentation `yaml:"indentation,omitempty"`
	Spacing         *Spacing     `yaml:"spacing,omitempty"`
	OutlineLevel    *int         `yaml:"outlineLevel,omitempty"`
	KeepTogether    bool         `yaml:"keepLines,omitempty"`
	KeepWithNext    bool         `yaml:"keepNext,omitempty"`
	PageBreakBefore bool         `yaml:"pageBreakBefore,omitempty"`
	Tabs            []TabStop    `yaml:"tabs,omitempty"`
	Shading         *Shading     `yaml:"shading,omitempty"`
	Borders         *Borders     `yaml:"borders,omitempty"`
	// Run properties embedded into w:pPr (paragraph mark formatting).
	RunProperties *RunProperties `yaml:"run,omitempty"`
}

type RunProperties struct {
	StyleID       string      `yaml:"styleId,omitempty"`
	Bold          bool        `yaml:"bold,omitempty"`
	Italic        bool        `yaml:"italic,omitempty"`
	Underline     bool        `yaml:"underline,omitempty"`
	UnderlineType string      `yaml:"underlineType,omitempty"`
	Strike        bool        `yaml:"strike,omitempty"`
	DoubleStrike  bool        `yaml:"doubleStrike,omitempty"`
	SmallCaps     bool        `yaml:"smallCaps,omitempty"`
	AllCaps       bool        `yaml:"caps,omitempty"`
	Vanish        bool        `yaml:"vanish,omitempty"`
	Color         string      `yaml:"color,omitempty"`
	Highlight     string      `yaml:"highlight,omitempty"`
	VerticalAlign string      `yaml:"vertAlign,omitempty"`
	Size          *int        `yaml:"size,omitempty"`        // half-points
	ComplexSize   *int        `yaml:"complexSize,omitempty"` // half-points
	Fonts         Fonts       `yaml:"fonts"`
	Border        *BorderEdge `yaml:"border,omitempty"`
	Shading       *Shading    `yaml:"shading,omitempty"`
}

type TableProperties struct {
	StyleID string   `yaml:"styleId,omitempty"`
	Width   *int     `yaml:"width,omitempty"`
	Shading *Shading `yaml:"shading,omitempty"`
	Borders *Borders `yaml:"borders,omitempty"`
}

type TableRowProperties struct {
	// CnfStyle is conditional formatting bit string (w:cnfStyle/@w:val).
	CnfStyle string   `yaml:"cnfStyle,omitempty"`
	Header   bool     `yaml:"header,omitempty"`
	Shading  *Shading `yaml:"shading,omitempty"`
}

type TableCellProperties struct {
	GridSpan      int      `yaml:"gridSpan,omitempty"`
	VerticalAlign string   `yaml:"vAlign,omitempty"`
	Width         *int     `yaml:"width,omitempty"`
	Shading       *Shading `yaml:"shading,omitempty"`
	Borders       *Borders `yaml:"borders,omitempty"`
}
