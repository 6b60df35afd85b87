package report

import "strings"

// BorderSide is a bit set of visible borders.
type BorderSide uint8

const (
	BorderNone   BorderSide = 0
	BorderLeft   BorderSide = 1 << 0
	BorderTop    BorderSide = 1 << 1
	BorderRight  BorderSide = 1 << 2
	BorderBottom BorderSide = 1 << 3
	BorderAll               = BorderLeft | BorderTop | BorderRight | BorderBottom
)

// Has reports whether all sides of s are set.
func (b BorderSide) Has(s BorderSide) bool {
	return b&s == s && s != BorderNone
}

// String returns a comma-separated list of sides.
func (b BorderSide) String() string {
	if b == BorderNone {
		return "None"
	}
	if b == BorderAll {
		return "All"
	}
	var parts []string
	for _, s := range []struct {
		side BorderSide
		name string
	}{{BorderLeft, "Left"}, {BorderTop, "Top"}, {BorderRight, "Right"}, {BorderBottom, "Bottom"}} {
		if b.Has(s.side) {
			parts = append(parts, s.name)
		}
	}
	return strings.Join(parts, ", ")
}

// DashStyle is a border dash style.
type DashStyle string

const (
	DashSolid      DashStyle = "Solid"
	DashDash       DashStyle = "Dash"
	DashDot        DashStyle = "Dot"
	DashDashDot    DashStyle = "DashDot"
	DashDashDotDot DashStyle = "DashDotDot"
	DashDouble     DashStyle = "Double"
)

// TextAlignment is the alignment of text inside a control.
type TextAlignment string

const (
	AlignTopLeft    TextAlignment = "TopLeft"
	AlignMiddleLeft TextAlignment = "MiddleLeft"
	AlignBottomLeft TextAlignment = "BottomLeft"
)

// SortOrder is the order of a group or sort field.
type SortOrder string

const (
	SortNone       SortOrder = "None"
	SortAscending  SortOrder = "Ascending"
	SortDescending SortOrder = "Descending"
)

// SummaryRunning is the range a summary is calculated over.
type SummaryRunning string

const (
	RunningNone   SummaryRunning = "None"
	RunningGroup  SummaryRunning = "Group"
	RunningReport SummaryRunning = "Report"
)

// GroupField is a grouping or sorting criterion.
type GroupField struct {
	FieldName string    `json:"field" yaml:"field"`
	SortOrder SortOrder `json:"sort_order" yaml:"sort_order"`
}
