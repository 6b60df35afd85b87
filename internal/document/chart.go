package document

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// ChartSeries describes one data series of a chart.
type ChartSeries struct {
	Name               string   `json:"name" yaml:"name"`
	ViewType           string   `json:"view_type,omitempty" yaml:"view_type,omitempty"`
	ArgumentDataMember string   `json:"argument_member,omitempty" yaml:"argument_member,omitempty"`
	ValueDataMembers   []string `json:"value_members,omitempty" yaml:"value_members,omitempty"`
}

// ChartEntity is a chart anchored in the text flow. Size is in pixels.
type ChartEntity struct {
	Name           string        `json:"name,omitempty" yaml:"name,omitempty"`
	ChartType      string        `json:"chart_type,omitempty" yaml:"chart_type,omitempty"`
	Title          string        `json:"title,omitempty" yaml:"title,omitempty"`
	Size           Size          `json:"size" yaml:"size"`
	DataSourceName string        `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember     string        `json:"data_member,omitempty" yaml:"data_member,omitempty"`
	LegendVisible  bool          `json:"legend_visible,omitempty" yaml:"legend_visible,omitempty"`
	Series         []ChartSeries `json:"series,omitempty" yaml:"series,omitempty"`
}
