// Package document defines the source document model: flowed paragraphs, inline
// fields, tables and the derived page layout that the converter walks.
//
// A Document is immutable input for a conversion. Sub-documents (list
// templates, headers, footers) are processed through Clone so that any
// preparation step never touches the caller's copy.
package document

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Document represents a laid-out word-processing document.
type Document struct {
	Version     string        `json:"version" yaml:"version"`
	Metadata    Metadata      `json:"metadata" yaml:"metadata"`
	Sections    []*Section    `json:"sections,omitempty" yaml:"sections,omitempty"`
	Paragraphs  []*Paragraph  `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Fields      []*Field      `json:"fields,omitempty" yaml:"fields,omitempty"`
	Tables      []*Table      `json:"tables,omitempty" yaml:"tables,omitempty"`
	DataSources []*DataSource `json:"data_sources,omitempty" yaml:"data_sources,omitempty"`
	Parameters  []Parameter   `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	MailMerge   MailMerge     `json:"mail_merge,omitempty" yaml:"mail_merge,omitempty"`
	Layout      *Layout       `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// Metadata contains document metadata.
type Metadata struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Created string `json:"created,omitempty" yaml:"created,omitempty"`
}

// Section holds page settings and header/footer sub-documents.
type Section struct {
	Page    PageSettings    `json:"page" yaml:"page"`
	Margins Margins         `json:"margins" yaml:"margins"`
	Headers []*HeaderFooter `json:"headers,omitempty" yaml:"headers,omitempty"`
	Footers []*HeaderFooter `json:"footers,omitempty" yaml:"footers,omitempty"`
}

// PageSettings are expressed in document units (1/300 inch).
type PageSettings struct {
	PaperKind string `json:"paper_kind,omitempty" yaml:"paper_kind,omitempty"`
	Width     int    `json:"width" yaml:"width"`
	Height    int    `json:"height" yaml:"height"`
	Landscape bool   `json:"landscape,omitempty" yaml:"landscape,omitempty"`
}

// Margins are expressed in document units (1/300 inch).
type Margins struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

// HeaderFooterType distinguishes header/footer variants.
type HeaderFooterType string

const (
	HeaderFooterPrimary HeaderFooterType = "primary"
	HeaderFooterFirst   HeaderFooterType = "first"
	HeaderFooterEven    HeaderFooterType = "even"
	HeaderFooterOdd     HeaderFooterType = "odd"
)

// HeaderFooter is a header or footer sub-document of a section.
type HeaderFooter struct {
	Type    HeaderFooterType `json:"type" yaml:"type"`
	Content *Document        `json:"content" yaml:"content"`
}

// Parameter is a document-level report parameter.
type Parameter struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// MailMerge holds the document-level data binding.
type MailMerge struct {
	DataSource string `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember string `json:"data_member,omitempty" yaml:"data_member,omitempty"`
}

// DataSource is a data source registered in the document.
type DataSource struct {
	Name             string            `json:"name" yaml:"name"`
	Provider         string            `json:"provider,omitempty" yaml:"provider,omitempty"`
	ConnectionString string            `json:"connection_string,omitempty" yaml:"connection_string,omitempty"`
	CalculatedFields []CalculatedField `json:"calculated_fields,omitempty" yaml:"calculated_fields,omitempty"`
}

// CalculatedField is an expression-backed field defined on a data source.
type CalculatedField struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	DataSource  string `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember  string `json:"data_member,omitempty" yaml:"data_member,omitempty"`
	FieldType   string `json:"field_type,omitempty" yaml:"field_type,omitempty"`
	Expression  string `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// NewDocument creates an empty document with the current version.
func NewDocument() *Document {
	return &Document{
		Version: "1.0",
		Layout:  &Layout{},
	}
}

// Range returns the character range covered by the document content.
func (d *Document) Range() Range {
	if len(d.Paragraphs) == 0 {
		return Range{}
	}
	first := d.Paragraphs[0].Range
	last := d.Paragraphs[len(d.Paragraphs)-1].Range
	return Range{Start: first.Start, Length: last.End() - first.Start}
}

// IsEmpty reports whether the document holds nothing but a final paragraph mark.
func (d *Document) IsEmpty() bool {
	return d == nil || d.Range().Length <= 1
}

// Clone returns a deep, independent copy of the document.
func (d *Document) Clone() (*Document, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot document: %w", err)
	}
	var cp Document
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("failed to restore document snapshot: %w", err)
	}
	if cp.Layout == nil {
		cp.Layout = &Layout{}
	}
	return &cp, nil
}

// UnlinkFields converts every field to its static text.
func (d *Document) UnlinkFields() {
	d.Fields = nil
}

// DataSource returns the registered data source with the given name.
func (d *Document) DataSource(name string) *DataSource {
	if name == "" {
		return nil
	}
	for _, ds := range d.DataSources {
		if ds.Name == name {
			return ds
		}
	}
	return nil
}

// AddDataSource registers ds unless a source with the same name exists.
func (d *Document) AddDataSource(ds *DataSource) bool {
	if ds == nil || d.DataSource(ds.Name) != nil {
		return false
	}
	d.DataSources = append(d.DataSources, ds)
	return true
}

// ParagraphsIn returns paragraphs intersecting r in document order.
func (d *Document) ParagraphsIn(r Range) []*Paragraph {
	var out []*Paragraph
	for _, p := range d.Paragraphs {
		if p.Range.Intersects(r) {
			out = append(out, p)
		}
	}
	return out
}

// FieldsIn returns the fields starting inside r in document order.
func (d *Document) FieldsIn(r Range) []*Field {
	var out []*Field
	for _, f := range d.Fields {
		if r.Contains(f.Range.Start) {
			out = append(out, f)
		}
	}
	return out
}

// FieldByID returns the field with the given identifier.
func (d *Document) FieldByID(id string) *Field {
	if id == "" {
		return nil
	}
	for _, f := range d.Fields {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// TopLevelField walks parent links up to the outermost field.
func (d *Document) TopLevelField(f *Field) *Field {
	seen := make(map[*Field]bool)
	for f != nil && !seen[f] {
		seen[f] = true
		parent := d.FieldByID(f.Parent)
		if parent == nil {
			return f
		}
		f = parent
	}
	return f
}

// TopLevelLists returns the outermost List fields ordered by range start.
// The field collection may hold lists in reverse document order.
func (d *Document) TopLevelLists() []*Field {
	var lists []*Field
	seen := make(map[int]bool)
	for _, f := range d.Fields {
		top := d.TopLevelField(f)
		if seen[top.Range.Start] {
			continue
		}
		if d.ParseField(top).Kind == EntityList {
			seen[top.Range.Start] = true
			lists = append(lists, top)
		}
	}
	sort.SliceStable(lists, func(i, j int) bool {
		return lists[i].Range.Start < lists[j].Range.Start
	})
	return lists
}

// Table returns the model table with the given index.
func (d *Document) Table(index int) *Table {
	if index < 0 || index >= len(d.Tables) {
		return nil
	}
	return d.Tables[index]
}

// PrimaryHeader returns the primary header of the first section.
func (d *Document) PrimaryHeader() *Document {
	if len(d.Sections) == 0 {
		return nil
	}
	return findHeaderFooter(d.Sections[0].Headers, HeaderFooterPrimary)
}

// PrimaryFooter returns the primary footer of the first section.
func (d *Document) PrimaryFooter() *Document {
	if len(d.Sections) == 0 {
		return nil
	}
	return findHeaderFooter(d.Sections[0].Footers, HeaderFooterPrimary)
}

func findHeaderFooter(items []*HeaderFooter, t HeaderFooterType) *Document {
	for _, hf := range items {
		if hf.Type == t && hf.Content != nil {
			return hf.Content
		}
	}
	return nil
}
