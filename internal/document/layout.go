package document

// Rect is a rectangle in twips (1/1440 inch).
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Layout is the geometry-bearing projection of a document onto pages.
type Layout struct {
	Pages []*Page `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// Page is one laid-out page.
type Page struct {
	Areas []*PageArea `json:"areas,omitempty" yaml:"areas,omitempty"`
}

// PageArea is a region of a page holding one or more columns.
type PageArea struct {
	Columns []*Column `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Column holds rows and tables; their order is given by range start only.
type Column struct {
	Bounds Rect           `json:"bounds" yaml:"bounds"`
	Rows   []*Row         `json:"rows,omitempty" yaml:"rows,omitempty"`
	Tables []*LayoutTable `json:"tables,omitempty" yaml:"tables,omitempty"`
}

// Element is a ranged layout element: a text row or a table.
type Element interface {
	ElementRange() Range
}

// Row is a laid-out line of text. Bounds are relative to its container.
type Row struct {
	Range  Range `json:"range" yaml:"range"`
	Bounds Rect  `json:"bounds" yaml:"bounds"`
}

// ElementRange implements Element.
func (r *Row) ElementRange() Range { return r.Range }

// IsEmpty reports whether the row holds nothing but a paragraph mark.
func (r *Row) IsEmpty() bool { return r.Range.Length <= 1 }

// LayoutTable is a laid-out table. Table indexes Document.Tables; one model
// table may be laid out as several layout tables across pages.
type LayoutTable struct {
	Table       int               `json:"table" yaml:"table"`
	Range       Range             `json:"range" yaml:"range"`
	Bounds      Rect              `json:"bounds" yaml:"bounds"`
	ParentWidth int               `json:"parent_width" yaml:"parent_width"`
	Rows        []*LayoutTableRow `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// ElementRange implements Element.
func (t *LayoutTable) ElementRange() Range { return t.Range }

// LayoutTableRow is a laid-out table row.
type LayoutTableRow struct {
	Bounds Rect               `json:"bounds" yaml:"bounds"`
	Cells  []*LayoutTableCell `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// LayoutTableCell is a laid-out table cell. Range is the content range of
// the model cell it renders; a vertically merged region is one layout cell.
type LayoutTableCell struct {
	Range  Range          `json:"range" yaml:"range"`
	Bounds Rect           `json:"bounds" yaml:"bounds"`
	Rows   []*Row         `json:"rows,omitempty" yaml:"rows,omitempty"`
	Tables []*LayoutTable `json:"tables,omitempty" yaml:"tables,omitempty"`
}

// Columns returns every column of every page in page order. Multi-column
// areas are flattened in reading order.
func (l *Layout) Columns() []*Column {
	if l == nil {
		return nil
	}
	var cols []*Column
	for _, p := range l.Pages {
		if p == nil {
			continue
		}
		for _, a := range p.Areas {
			if a == nil {
				continue
			}
			cols = append(cols, a.Columns...)
		}
	}
	return cols
}

// HasMultiColumnAreas reports whether any page area holds more than one column.
func (l *Layout) HasMultiColumnAreas() bool {
	if l == nil {
		return false
	}
	for _, p := range l.Pages {
		if p == nil {
			continue
		}
		for _, a := range p.Areas {
			if a != nil && len(a.Columns) > 1 {
				return true
			}
		}
	}
	return false
}

// TablesFor returns every layout table rendering the given model table,
// at any nesting depth.
func (l *Layout) TablesFor(table int) []*LayoutTable {
	var out []*LayoutTable
	var visit func(tables []*LayoutTable)
	visit = func(tables []*LayoutTable) {
		for _, t := range tables {
			if t.Table == table {
				out = append(out, t)
			}
			for _, r := range t.Rows {
				for _, c := range r.Cells {
					visit(c.Tables)
				}
			}
		}
	}
	for _, col := range l.Columns() {
		visit(col.Tables)
	}
	return out
}

// RowAt returns the layout row of the given model table whose cells contain pos.
func (l *Layout) RowAt(table, pos int) *LayoutTableRow {
	for _, t := range l.TablesFor(table) {
		for _, r := range t.Rows {
			for _, c := range r.Cells {
				if c.Range.Contains(pos) {
					return r
				}
			}
		}
	}
	return nil
}

// CellAt returns the layout cell of the given model table containing pos.
func (l *Layout) CellAt(table, pos int) *LayoutTableCell {
	for _, t := range l.TablesFor(table) {
		for _, r := range t.Rows {
			for _, c := range r.Cells {
				if c.Range.Contains(pos) {
					return c
				}
			}
		}
	}
	return nil
}
