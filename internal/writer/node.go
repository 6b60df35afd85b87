package writer

import (
	"sort"

	"github.com/roboco-io/doc2report/internal/report"
)

// ReportNode is the serialized form of a report.
type ReportNode struct {
	PaperKind        string                   `json:"paper_kind,omitempty" yaml:"paper_kind,omitempty"`
	PageWidth        float64                  `json:"page_width" yaml:"page_width"`
	PageHeight       float64                  `json:"page_height" yaml:"page_height"`
	Landscape        bool                     `json:"landscape,omitempty" yaml:"landscape,omitempty"`
	Margins          report.Margins           `json:"margins" yaml:"margins"`
	DataSource       string                   `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember       string                   `json:"data_member,omitempty" yaml:"data_member,omitempty"`
	Parameters       []report.Parameter       `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	CalculatedFields []report.CalculatedField `json:"calculated_fields,omitempty" yaml:"calculated_fields,omitempty"`
	DataSources      []report.DataSource      `json:"data_sources,omitempty" yaml:"data_sources,omitempty"`
	Bands            []BandNode               `json:"bands" yaml:"bands"`
}

// SectionNode is a nested detail report.
type SectionNode struct {
	Name         string     `json:"name,omitempty" yaml:"name,omitempty"`
	DataSource   string     `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember   string     `json:"data_member,omitempty" yaml:"data_member,omitempty"`
	FilterString string     `json:"filter,omitempty" yaml:"filter,omitempty"`
	Bands        []BandNode `json:"bands" yaml:"bands"`
}

// BandNode is a serialized band.
type BandNode struct {
	Kind        string              `json:"kind" yaml:"kind"`
	Level       int                 `json:"level,omitempty" yaml:"level,omitempty"`
	Height      float64             `json:"height" yaml:"height"`
	GroupFields []report.GroupField `json:"group_fields,omitempty" yaml:"group_fields,omitempty"`
	SortFields  []report.GroupField `json:"sort_fields,omitempty" yaml:"sort_fields,omitempty"`
	Controls    []ControlNode       `json:"controls,omitempty" yaml:"controls,omitempty"`
	Report      *SectionNode        `json:"report,omitempty" yaml:"report,omitempty"`
}

// ControlNode is a serialized control. Exactly one payload is set.
type ControlNode struct {
	Type  string        `json:"type" yaml:"type"`
	Label *report.Label `json:"label,omitempty" yaml:"label,omitempty"`
	Chart *report.Chart `json:"chart,omitempty" yaml:"chart,omitempty"`
	Table *TableNode    `json:"table,omitempty" yaml:"table,omitempty"`
}

// TableNode is a serialized table.
type TableNode struct {
	Bounds report.Rect `json:"bounds" yaml:"bounds"`
	Rows   []RowNode   `json:"rows" yaml:"rows"`
}

// RowNode is a serialized table row.
type RowNode struct {
	Height float64    `json:"height" yaml:"height"`
	Cells  []CellNode `json:"cells" yaml:"cells"`
}

// CellNode is a serialized table cell.
type CellNode struct {
	Left            float64               `json:"left" yaml:"left"`
	Width           float64               `json:"width" yaml:"width"`
	RowSpan         int                   `json:"row_span,omitempty" yaml:"row_span,omitempty"`
	Borders         string                `json:"borders" yaml:"borders"`
	BorderColor     string                `json:"border_color,omitempty" yaml:"border_color,omitempty"`
	BorderDashStyle report.DashStyle      `json:"border_dash_style,omitempty" yaml:"border_dash_style,omitempty"`
	BackColor       string                `json:"back_color,omitempty" yaml:"back_color,omitempty"`
	WordWrap        bool                  `json:"word_wrap,omitempty" yaml:"word_wrap,omitempty"`
	TextAlignment   report.TextAlignment  `json:"text_alignment,omitempty" yaml:"text_alignment,omitempty"`
	Padding         *report.Padding       `json:"padding,omitempty" yaml:"padding,omitempty"`
	Text            string                `json:"text,omitempty" yaml:"text,omitempty"`
	Expression      string                `json:"expression,omitempty" yaml:"expression,omitempty"`
	Summary         report.SummaryRunning `json:"summary,omitempty" yaml:"summary,omitempty"`
	Controls        []ControlNode         `json:"controls,omitempty" yaml:"controls,omitempty"`
}

// Build converts a report into its node tree.
func Build(r *report.Report) *ReportNode {
	return &ReportNode{
		PaperKind:        r.PaperKind,
		PageWidth:        r.PageWidth,
		PageHeight:       r.PageHeight,
		Landscape:        r.Landscape,
		Margins:          r.Margins,
		DataSource:       r.DataSource,
		DataMember:       r.DataMember,
		Parameters:       r.Parameters,
		CalculatedFields: r.CalculatedFields,
		DataSources:      r.DataSources,
		Bands:            buildBands(r.Root()),
	}
}

// bandRank orders band kinds for output. Group bands are further ordered by
// level, DetailReport bands keep their insertion order.
func bandRank(k report.BandKind) int {
	switch k {
	case report.TopMargin:
		return 0
	case report.ReportHeader:
		return 1
	case report.PageHeader:
		return 2
	case report.GroupHeader:
		return 3
	case report.Detail:
		return 4
	case report.DetailReport:
		return 5
	case report.GroupFooter:
		return 6
	case report.ReportFooter:
		return 7
	case report.PageFooter:
		return 8
	default:
		return 9
	}
}

// SortedBands returns the bands of s in canonical output order.
func SortedBands(s *report.Section) []*report.Band {
	bands := append([]*report.Band(nil), s.Bands...)
	sort.SliceStable(bands, func(i, j int) bool {
		a, b := bands[i], bands[j]
		if ra, rb := bandRank(a.Kind), bandRank(b.Kind); ra != rb {
			return ra < rb
		}
		switch a.Kind {
		case report.GroupHeader:
			return a.Level > b.Level
		case report.GroupFooter:
			return a.Level < b.Level
		}
		return false
	})
	return bands
}

func buildBands(s *report.Section) []BandNode {
	nodes := []BandNode{}
	for _, b := range SortedBands(s) {
		n := BandNode{
			Kind:        b.Kind.String(),
			Level:       b.Level,
			Height:      b.Height,
			GroupFields: b.GroupFields,
			SortFields:  b.SortFields,
			Controls:    buildControls(b.Controls),
		}
		if b.Report != nil {
			n.Report = &SectionNode{
				Name:         b.Report.Name,
				DataSource:   b.Report.DataSource,
				DataMember:   b.Report.DataMember,
				FilterString: b.Report.FilterString,
				Bands:        buildBands(b.Report),
			}
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func buildControls(controls []report.Control) []ControlNode {
	var nodes []ControlNode
	for _, c := range controls {
		switch c := c.(type) {
		case *report.Label:
			nodes = append(nodes, ControlNode{Type: "label", Label: c})
		case *report.Chart:
			nodes = append(nodes, ControlNode{Type: "chart", Chart: c})
		case *report.Table:
			nodes = append(nodes, ControlNode{Type: "table", Table: buildTable(c)})
		}
	}
	return nodes
}

func buildTable(t *report.Table) *TableNode {
	n := &TableNode{Bounds: t.Bounds(), Rows: []RowNode{}}
	for _, r := range t.Rows {
		row := RowNode{Height: r.Height, Cells: []CellNode{}}
		for _, c := range r.Cells {
			cell := CellNode{
				Left:            c.Left,
				Width:           c.Width,
				Borders:         c.Borders.String(),
				BorderColor:     c.BorderColor,
				BorderDashStyle: c.BorderDashStyle,
				BackColor:       c.BackColor,
				WordWrap:        c.WordWrap,
				TextAlignment:   c.TextAlignment,
				Text:            c.Text,
				Expression:      c.Expression,
				Summary:         c.Summary,
				Controls:        buildControls(c.Controls),
			}
			if c.RowSpan > 1 {
				cell.RowSpan = c.RowSpan
			}
			if !c.Padding.IsZero() {
				p := c.Padding
				cell.Padding = &p
			}
			row.Cells = append(row.Cells, cell)
		}
		n.Rows = append(n.Rows, row)
	}
	return n
}
