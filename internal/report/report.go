// Package report defines the banded report definition produced by a
// conversion: sections made of bands holding positioned controls.
//
// All geometry is in hundredths of an inch.
package report

// Margins are page margins in hundredths of an inch.
type Margins struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Parameter is a report parameter.
type Parameter struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// CalculatedField is an expression-backed field of the report.
type CalculatedField struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	DataSource  string `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember  string `json:"data_member,omitempty" yaml:"data_member,omitempty"`
	FieldType   string `json:"field_type,omitempty" yaml:"field_type,omitempty"`
	Expression  string `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// DataSource is a data source referenced by the report.
type DataSource struct {
	Name             string `json:"name" yaml:"name"`
	Provider         string `json:"provider,omitempty" yaml:"provider,omitempty"`
	ConnectionString string `json:"connection_string,omitempty" yaml:"connection_string,omitempty"`
}

// Report is the root section with page settings and report-wide
// collections.
type Report struct {
	Section

	PaperKind        string            `json:"paper_kind,omitempty" yaml:"paper_kind,omitempty"`
	PageWidth        float64           `json:"page_width" yaml:"page_width"`
	PageHeight       float64           `json:"page_height" yaml:"page_height"`
	Landscape        bool              `json:"landscape,omitempty" yaml:"landscape,omitempty"`
	Margins          Margins           `json:"margins" yaml:"margins"`
	Parameters       []Parameter       `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	CalculatedFields []CalculatedField `json:"calculated_fields,omitempty" yaml:"calculated_fields,omitempty"`
	DataSources      []DataSource      `json:"data_sources,omitempty" yaml:"data_sources,omitempty"`
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Root returns the root section.
func (r *Report) Root() *Section {
	return &r.Section
}

// CalculatedField returns the calculated field with the given display name.
func (r *Report) CalculatedField(displayName string) *CalculatedField {
	for i := range r.CalculatedFields {
		if r.CalculatedFields[i].DisplayName == displayName {
			return &r.CalculatedFields[i]
		}
	}
	return nil
}

// AddCalculatedField appends f unless a field with the same display name
// exists.
func (r *Report) AddCalculatedField(f CalculatedField) bool {
	if r.CalculatedField(f.DisplayName) != nil {
		return false
	}
	r.CalculatedFields = append(r.CalculatedFields, f)
	return true
}

// AddDataSource records ds unless a source with the same name exists.
func (r *Report) AddDataSource(ds DataSource) bool {
	for _, cur := range r.DataSources {
		if cur.Name == ds.Name {
			return false
		}
	}
	r.DataSources = append(r.DataSources, ds)
	return true
}
