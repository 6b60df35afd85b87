package document

// MergeState is the vertical merge state of a table cell.
type MergeState string

const (
	MergeNone     MergeState = ""
	MergeRestart  MergeState = "restart"
	MergeContinue MergeState = "continue"
)

// LineStyle is a border line style.
type LineStyle string

const (
	LineNil        LineStyle = ""
	LineNone       LineStyle = "none"
	LineSingle     LineStyle = "single"
	LineDashed     LineStyle = "dashed"
	LineDotted     LineStyle = "dotted"
	LineDotDash    LineStyle = "dot_dash"
	LineDotDotDash LineStyle = "dot_dot_dash"
	LineDouble     LineStyle = "double"
)

// VerticalAlignment is the vertical alignment of cell content.
type VerticalAlignment string

const (
	VAlignTop    VerticalAlignment = "top"
	VAlignCenter VerticalAlignment = "center"
	VAlignBottom VerticalAlignment = "bottom"
)

// Border is one side of a cell border.
type Border struct {
	Color Color     `json:"color,omitempty" yaml:"color,omitempty"`
	Style LineStyle `json:"style,omitempty" yaml:"style,omitempty"`
}

// Visible reports whether the border has a color and a drawable style.
func (b Border) Visible() bool {
	return !b.Color.IsEmpty() && b.Style != LineNone && b.Style != LineNil
}

// CellBorders holds the four sides of a cell border.
type CellBorders struct {
	Top    Border `json:"top,omitempty" yaml:"top,omitempty"`
	Left   Border `json:"left,omitempty" yaml:"left,omitempty"`
	Right  Border `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom Border `json:"bottom,omitempty" yaml:"bottom,omitempty"`
}

// Padding is cell padding in document units.
type Padding struct {
	Left   int `json:"left,omitempty" yaml:"left,omitempty"`
	Top    int `json:"top,omitempty" yaml:"top,omitempty"`
	Right  int `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom int `json:"bottom,omitempty" yaml:"bottom,omitempty"`
}

// Table is a model table. Nested tables are separate entries of
// Document.Tables.
type Table struct {
	Range Range       `json:"range" yaml:"range"`
	Rows  []*TableRow `json:"rows" yaml:"rows"`
}

// TableRow is a row of a model table.
type TableRow struct {
	Cells []*TableCell `json:"cells" yaml:"cells"`
}

// TableCell is a cell of a model table.
type TableCell struct {
	ContentRange      Range             `json:"content_range" yaml:"content_range"`
	VerticalMerge     MergeState        `json:"vertical_merge,omitempty" yaml:"vertical_merge,omitempty"`
	Borders           CellBorders       `json:"borders,omitempty" yaml:"borders,omitempty"`
	BackgroundColor   Color             `json:"background_color,omitempty" yaml:"background_color,omitempty"`
	WordWrap          bool              `json:"word_wrap,omitempty" yaml:"word_wrap,omitempty"`
	VerticalAlignment VerticalAlignment `json:"vertical_alignment,omitempty" yaml:"vertical_alignment,omitempty"`
	Padding           Padding           `json:"padding,omitempty" yaml:"padding,omitempty"`
}

// IsLastRow reports whether index is the final row of the table.
func (t *Table) IsLastRow(index int) bool {
	return index == len(t.Rows)-1
}
