package report

// Table is a table control made of rows of cells.
type Table struct {
	Rect Rect        `json:"bounds" yaml:"bounds"`
	Rows []*TableRow `json:"rows" yaml:"rows"`

	band *Band
}

// NewTable creates an empty table owned by band.
func NewTable(band *Band) *Table {
	return &Table{band: band}
}

// Bounds implements Control.
func (t *Table) Bounds() Rect { return t.Rect }

// SetBounds implements Control.
func (t *Table) SetBounds(r Rect) { t.Rect = r }

// Band returns the band the table was placed in.
func (t *Table) Band() *Band { return t.band }

// AddRow appends a new row of the given height.
func (t *Table) AddRow(height float64) *TableRow {
	row := &TableRow{Height: height, table: t}
	t.Rows = append(t.Rows, row)
	return row
}

// RemoveRow removes row from the table.
func (t *Table) RemoveRow(row *TableRow) {
	for i, r := range t.Rows {
		if r == row {
			t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
			row.table = nil
			return
		}
	}
}

// RowsHeight returns the sum of the row heights.
func (t *Table) RowsHeight() float64 {
	total := 0.0
	for _, r := range t.Rows {
		total += r.Height
	}
	return total
}

// ColumnCells returns the cells whose left edge matches cell's, in row order.
func (t *Table) ColumnCells(cell *TableCell, tol float64) []*TableCell {
	var cells []*TableCell
	for _, r := range t.Rows {
		for _, c := range r.Cells {
			if FloatsEqual(c.Left, cell.Left, tol) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// TableRow is a row of a table control.
type TableRow struct {
	Height float64      `json:"height" yaml:"height"`
	Cells  []*TableCell `json:"cells" yaml:"cells"`

	table *Table
}

// Table returns the owning table.
func (r *TableRow) Table() *Table { return r.table }

// AddCell appends a cell and fixes its left edge after the existing cells.
func (r *TableRow) AddCell() *TableCell {
	left := 0.0
	if n := len(r.Cells); n > 0 {
		last := r.Cells[n-1]
		left = last.Left + last.Width
	}
	c := &TableCell{Left: left, RowSpan: 1, row: r}
	r.Cells = append(r.Cells, c)
	return c
}

// RemoveCell removes cell from the row.
func (r *TableRow) RemoveCell(cell *TableCell) {
	for i, c := range r.Cells {
		if c == cell {
			r.Cells = append(r.Cells[:i], r.Cells[i+1:]...)
			cell.row = nil
			return
		}
	}
}

// TableCell is a cell of a table control. Nested controls suppress the text.
type TableCell struct {
	Left            float64        `json:"left" yaml:"left"`
	Width           float64        `json:"width" yaml:"width"`
	RowSpan         int            `json:"row_span" yaml:"row_span"`
	Borders         BorderSide     `json:"borders" yaml:"borders"`
	BorderColor     string         `json:"border_color,omitempty" yaml:"border_color,omitempty"`
	BorderDashStyle DashStyle      `json:"border_dash_style,omitempty" yaml:"border_dash_style,omitempty"`
	BackColor       string         `json:"back_color,omitempty" yaml:"back_color,omitempty"`
	WordWrap        bool           `json:"word_wrap" yaml:"word_wrap"`
	TextAlignment   TextAlignment  `json:"text_alignment" yaml:"text_alignment"`
	Padding         Padding        `json:"padding" yaml:"padding"`
	Text            string         `json:"text,omitempty" yaml:"text,omitempty"`
	Expression      string         `json:"expression,omitempty" yaml:"expression,omitempty"`
	Summary         SummaryRunning `json:"summary,omitempty" yaml:"summary,omitempty"`
	CanShrink       bool           `json:"can_shrink" yaml:"can_shrink"`
	AllowMarkup     bool           `json:"allow_markup" yaml:"allow_markup"`
	Controls        []Control      `json:"-" yaml:"-"`

	row *TableRow
}

// Row returns the owning row.
func (c *TableCell) Row() *TableRow { return c.row }

// Children implements Container.
func (c *TableCell) Children() []Control { return c.Controls }

// Add implements Container.
func (c *TableCell) Add(ctrl Control) { c.Controls = append(c.Controls, ctrl) }

// PaddingInfo implements Container.
func (c *TableCell) PaddingInfo() Padding { return c.Padding }

// IsEmpty reports whether the cell has no controls, text or expression.
func (c *TableCell) IsEmpty() bool {
	return len(c.Controls) == 0 && c.Text == "" && c.Expression == ""
}

// SetContent stores text as markup, or as an expression binding when
// running is not RunningNone.
func (c *TableCell) SetContent(text string, running SummaryRunning) {
	if running != RunningNone && running != "" {
		c.Expression = text
		c.Summary = running
		return
	}
	c.Text = text
}

// FitControl resizes ctrl to fill the cell's content area.
func (c *TableCell) FitControl(ctrl Control) {
	b := ctrl.Bounds()
	b.X, b.Y = 0, 0
	if w := c.Width - c.Padding.Left - c.Padding.Right; w > 0 {
		b.Width = w
	}
	if c.row != nil {
		if h := c.row.Height - c.Padding.Top - c.Padding.Bottom; h > 0 {
			b.Height = h
		}
	}
	ctrl.SetBounds(b)
}
