package style

import (
	"strings"

	"docxhtml/docx"
)

// Region is resolved conditional formatting of a table style.
type Region struct {
	Type          docx.RegionType
	Background    string
	RunProperties *docx.RunProperties
	Borders       Borders
}

// TableStyle is resolved table style: background and borders of the first
// chain style declaring them plus all declared regions.
type TableStyle struct {
	Background string
	Borders    TableBorders
	regions    map[docx.RegionType]*Region
}

// Region returns declared region or nil.
func (ts *TableStyle) Region(t docx.RegionType) *Region {
	if ts == nil {
		return nil
	}
	return ts.regions[t]
}

// cnfStyle bit positions in precedence order.
var cnfPrecedence = [...]struct {
	bit    int
	region docx.RegionType
}{
	{0, docx.RegionFirstRow},
	{1, docx.RegionLastRow},
	{6, docx.RegionBand1Horz},
	{7, docx.RegionBand2Horz},
	{4, docx.RegionBand1Vert},
	{5, docx.RegionBand2Vert},
	{2, docx.RegionFirstColumn},
	{3, docx.RegionLastColumn},
}

const cnfWidth = 12

// RowRegion selects conditional formatting region for a row. Explicit
// cnfStyle flags are checked first, only declared regions qualify, then
// position of the row decides.
func (ts *TableStyle) RowRegion(row *docx.TableRowProperties, index, count int) *Region {
	if ts == nil || len(ts.regions) == 0 {
		return nil
	}
	if row != nil {
		if flags := strings.TrimSpace(row.CnfStyle); flags != "" {
			if len(flags) < cnfWidth {
				flags = strings.Repeat("0", cnfWidth-len(flags)) + flags
			}
			for _, p := range cnfPrecedence {
				if flags[p.bit] != '1' {
					continue
				}
				if reg := ts.regions[p.region]; reg != nil {
					return reg
				}
			}
		}
	}
	if index == 0 {
		if reg := ts.regions[docx.RegionFirstRow]; reg != nil {
			return reg
		}
	}
	if count > 0 && index == count-1 {
		if reg := ts.regions[docx.RegionLastRow]; reg != nil {
			return reg
		}
	}
	return ts.regions[docx.RegionWholeTable]
}

// Table resolves table style referenced by table properties. Table without
// style gets empty table style.
func (r *Resolver) Table(props *docx.TableProperties) *TableStyle {
	ts := &TableStyle{regions: make(map[docx.RegionType]*Region)}
	if props == nil || strings.TrimSpace(props.StyleID) == "" {
		return ts
	}
	for _, st := range r.index.Chain(props.StyleID) {
		if st.Table == nil {
			continue
		}
		if tp := st.Table.TableProperties; tp != nil {
			if ts.Background == "" {
				ts.Background = ShadingColor(tp.Shading, r.theme)
			}
			if ts.Borders.IsEmpty() {
				ts.Borders = ParseTableBorders(tp.Borders, r.theme)
			}
		}
		for _, decl := range st.Table.Regions {
			if decl == nil || !knownRegion(decl.Type) {
				continue
			}
			if _, ok := ts.regions[decl.Type]; ok {
				continue
			}
			if reg := r.region(decl); reg != nil {
				ts.regions[decl.Type] = reg
			}
		}
	}
	return ts
}

func knownRegion(t docx.RegionType) bool {
	switch t {
	case docx.RegionWholeTable, docx.RegionFirstRow, docx.RegionLastRow,
		docx.RegionFirstColumn, docx.RegionLastColumn,
		docx.RegionBand1Horz, docx.RegionBand2Horz, docx.RegionBand1Vert, docx.RegionBand2Vert:
		return true
	}
	return false
}

// region converts tblStylePr, declaration carrying nothing usable is not a
// region.
func (r *Resolver) region(decl *docx.TableStyleRegion) *Region {
	reg := &Region{Type: decl.Type, RunProperties: decl.RunProperties}
	if decl.CellProperties != nil {
		reg.Background = ShadingColor(decl.CellProperties.Shading, r.theme)
		reg.Borders = ParseBorders(decl.CellProperties.Borders, r.theme)
	}
	if decl.TableProperties != nil {
		if reg.Background == "" {
			reg.Background = ShadingColor(decl.TableProperties.Shading, r.theme)
		}
		if reg.Borders.IsEmpty() {
			reg.Borders = ParseBorders(decl.TableProperties.Borders, r.theme)
		}
	}
	if reg.Background == "" && reg.RunProperties == nil && reg.Borders.IsEmpty() {
		return nil
	}
	return reg
}
