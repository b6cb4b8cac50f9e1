package docx

// StyleType follows w:style/@w:type.
type StyleType string

const (
	StyleParagraph StyleType = "paragraph"
	StyleCharacter StyleType = "character"
	StyleTable     StyleType = "table"
	StyleNumbering StyleType = "numbering"
)

// RegionType follows w:tblStylePr/@w:type.
type RegionType string

const (
	RegionWholeTable  RegionType = "wholeTable"
	RegionFirstRow    RegionType = "firstRow"
	RegionLastRow     RegionType = "lastRow"
	RegionFirstColumn RegionType = "firstCol"
	RegionLastColumn  RegionType = "lastCol"
	RegionBand1Horz   RegionType = "band1Horz"
	RegionBand2Horz   RegionType = "band2Horz"
	RegionBand1Vert   RegionType = "band1Vert"
	RegionBand2Vert   RegionType = "band2Vert"
)

// TableStyleRegion is conditional formatting declaration (w:tblStylePr).
type TableStyleRegion struct {
	Type                RegionType           `yaml:"type,omitempty"`
	TableProperties     *TableProperties     `yaml:"table,omitempty"`
	CellProperties      *TableCellProperties `yaml:"cell,omitempty"`
	RunProperties       *RunProperties       `yaml:"run,omitempty"`
	ParagraphProperties *ParagraphProperties `yaml:"paragraph,omitempty"`
}

// TableStyleProperties holds table specific part of a table style.
type TableStyleProperties struct {
	TableProperties *TableProperties    `yaml:"table,omitempty"`
	Regions         []*TableStyleRegion `yaml:"regions,omitempty"`
}

type Style struct {
	ID                  string                `yaml:"id,omitempty"`
	Name                string                `yaml:"name,omitempty"`
	Type                StyleType             `yaml:"type,omitempty"`
	BasedOn             string                `yaml:"basedOn,omitempty"`
	Link                string                `yaml:"link,omitempty"`
	Default             bool                  `yaml:"default,omitempty"`
	ParagraphProperties *ParagraphProperties  `yaml:"paragraph,omitempty"`
	RunProperties       *RunProperties        `yaml:"run,omitempty"`
	Table               *TableStyleProperties `yaml:"table,omitempty"`
}

// DocDefaults mirrors w:docDefaults.
type DocDefaults struct {
	ParagraphProperties *ParagraphProperties `yaml:"paragraph,omitempty"`
	RunProperties       *RunProperties       `yaml:"run,omitempty"`
}

// Styles is the style library of a document, order of Styles is
// significant.
type Styles struct {
	Defaults DocDefaults `yaml:"defaults"`
	Styles   []*Style    `yaml:"styles,omitempty"`
}

// DefaultHierarchy returns ids of all styles flagged as default, in library
// order.
func (s *Styles) DefaultHierarchy() []string {
	if s == nil {
		return nil
	}
	var ids []string
	for _, st := range s.Styles {
		if st != nil && st.Default && st.ID != "" {
			ids = append(ids, st.ID)
		}
	}
	return ids
}
