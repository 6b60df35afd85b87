package report

// Control is a positioned element of a report.
type Control interface {
	Bounds() Rect
	SetBounds(r Rect)
}

// Container holds positioned child controls.
type Container interface {
	Children() []Control
	Add(c Control)
	PaddingInfo() Padding
}

// VerticalOffset returns the bottom edge of the lowest child of c, or 0.
func VerticalOffset(c Container) float64 {
	offset := 0.0
	for i, child := range c.Children() {
		if b := child.Bounds().Bottom(); i == 0 || b > offset {
			offset = b
		}
	}
	return offset
}

// Label displays markup text or an expression.
type Label struct {
	Rect        Rect           `json:"bounds" yaml:"bounds"`
	Text        string         `json:"text,omitempty" yaml:"text,omitempty"`
	Expression  string         `json:"expression,omitempty" yaml:"expression,omitempty"`
	Summary     SummaryRunning `json:"summary,omitempty" yaml:"summary,omitempty"`
	AllowMarkup bool           `json:"allow_markup" yaml:"allow_markup"`
	CanShrink   bool           `json:"can_shrink" yaml:"can_shrink"`
	Borders     BorderSide     `json:"borders" yaml:"borders"`
	Padding     Padding        `json:"padding" yaml:"padding"`
}

// NewLabel creates a markup-enabled label without borders.
func NewLabel() *Label {
	return &Label{AllowMarkup: true, Borders: BorderNone}
}

// Bounds implements Control.
func (l *Label) Bounds() Rect { return l.Rect }

// SetBounds implements Control.
func (l *Label) SetBounds(r Rect) { l.Rect = r }

// SetContent stores text as plain markup, or as an expression binding with
// the given summary scope when running is not RunningNone.
func (l *Label) SetContent(text string, running SummaryRunning) {
	if running != RunningNone && running != "" {
		l.Expression = text
		l.Summary = running
		return
	}
	l.Text = text
}

// ChartSeries is a data series of a chart control.
type ChartSeries struct {
	Name               string   `json:"name" yaml:"name"`
	ViewType           string   `json:"view_type,omitempty" yaml:"view_type,omitempty"`
	ArgumentDataMember string   `json:"argument_member,omitempty" yaml:"argument_member,omitempty"`
	ValueDataMembers   []string `json:"value_members,omitempty" yaml:"value_members,omitempty"`
}

// Chart is a chart control.
type Chart struct {
	Rect          Rect          `json:"bounds" yaml:"bounds"`
	Name          string        `json:"name,omitempty" yaml:"name,omitempty"`
	ChartType     string        `json:"chart_type,omitempty" yaml:"chart_type,omitempty"`
	Title         string        `json:"title,omitempty" yaml:"title,omitempty"`
	DataSource    string        `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember    string        `json:"data_member,omitempty" yaml:"data_member,omitempty"`
	LegendVisible bool          `json:"legend_visible" yaml:"legend_visible"`
	Series        []ChartSeries `json:"series,omitempty" yaml:"series,omitempty"`
}

// Bounds implements Control.
func (c *Chart) Bounds() Rect { return c.Rect }

// SetBounds implements Control.
func (c *Chart) SetBounds(r Rect) { c.Rect = r }
