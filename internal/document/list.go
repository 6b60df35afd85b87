package document

// SortOrder is the direction of a sort or group key.
type SortOrder string

const (
	SortNone       SortOrder = "none"
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// SortKey orders or groups list rows by a data field.
type SortKey struct {
	FieldName string    `json:"field" yaml:"field"`
	Order     SortOrder `json:"order,omitempty" yaml:"order,omitempty"`
}

// ListGroup is one grouping level of a repeating list.
type ListGroup struct {
	Header *Document `json:"header,omitempty" yaml:"header,omitempty"`
	Footer *Document `json:"footer,omitempty" yaml:"footer,omitempty"`
	Fields []SortKey `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// ListEntity is a repeating region bound to a data member. Templates are
// independent sub-documents with their own layout.
type ListEntity struct {
	Name           string      `json:"name,omitempty" yaml:"name,omitempty"`
	DataSourceName string      `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember     string      `json:"data_member,omitempty" yaml:"data_member,omitempty"`
	Header         *Document   `json:"header,omitempty" yaml:"header,omitempty"`
	RowTemplate    *Document   `json:"row_template,omitempty" yaml:"row_template,omitempty"`
	Footer         *Document   `json:"footer,omitempty" yaml:"footer,omitempty"`
	Groups         []ListGroup `json:"groups,omitempty" yaml:"groups,omitempty"`
	Filters        []string    `json:"filters,omitempty" yaml:"filters,omitempty"`
	Sorting        []SortKey   `json:"sorting,omitempty" yaml:"sorting,omitempty"`
}
