package report

// BandKind is the closed set of band kinds.
type BandKind int

const (
	TopMargin BandKind = iota
	PageHeader
	ReportHeader
	GroupHeader
	Detail
	DetailReport
	GroupFooter
	ReportFooter
	PageFooter
	BottomMargin
)

var bandKindNames = map[BandKind]string{
	TopMargin:    "TopMargin",
	PageHeader:   "PageHeader",
	ReportHeader: "ReportHeader",
	GroupHeader:  "GroupHeader",
	Detail:       "Detail",
	DetailReport: "DetailReport",
	GroupFooter:  "GroupFooter",
	ReportFooter: "ReportFooter",
	PageFooter:   "PageFooter",
	BottomMargin: "BottomMargin",
}

// String returns the band kind name.
func (k BandKind) String() string {
	if name, ok := bandKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Retained reports whether a band of this kind survives cleanup without
// controls.
func (k BandKind) Retained() bool {
	switch k {
	case TopMargin, BottomMargin, Detail, GroupHeader:
		return true
	default:
		return false
	}
}

// Band is a horizontal report section. Height is 0 when the band auto-sizes
// to its content. A DetailReport band carries a nested Section instead of
// controls.
type Band struct {
	Kind        BandKind     `json:"kind" yaml:"kind"`
	Level       int          `json:"level,omitempty" yaml:"level,omitempty"`
	Height      float64      `json:"height" yaml:"height"`
	Controls    []Control    `json:"-" yaml:"-"`
	GroupFields []GroupField `json:"group_fields,omitempty" yaml:"group_fields,omitempty"`
	SortFields  []GroupField `json:"sort_fields,omitempty" yaml:"sort_fields,omitempty"`
	Report      *Section     `json:"-" yaml:"-"`
}

// Children implements Container.
func (b *Band) Children() []Control { return b.Controls }

// Add implements Container.
func (b *Band) Add(c Control) { b.Controls = append(b.Controls, c) }

// PaddingInfo implements Container. Bands carry no padding.
func (b *Band) PaddingInfo() Padding { return Padding{} }

// Section is a band-owning report: the root report or a nested detail
// report bound to a data member.
type Section struct {
	Name         string  `json:"name,omitempty" yaml:"name,omitempty"`
	DataSource   string  `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataMember   string  `json:"data_member,omitempty" yaml:"data_member,omitempty"`
	FilterString string  `json:"filter,omitempty" yaml:"filter,omitempty"`
	Bands        []*Band `json:"-" yaml:"-"`

	parent *Section
}

// Parent returns the enclosing section, or nil for the root.
func (s *Section) Parent() *Section { return s.parent }

// Band returns the first band of the given kind.
func (s *Section) Band(kind BandKind) *Band {
	for _, b := range s.Bands {
		if b.Kind == kind {
			return b
		}
	}
	return nil
}

// BandsOf returns every band of the given kind in insertion order.
func (s *Section) BandsOf(kind BandKind) []*Band {
	var out []*Band
	for _, b := range s.Bands {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// CreateBand appends a new band of the given kind with zero height. The
// Detail band is a singleton: an existing one is returned instead. Group
// bands get the next free level of their kind.
func (s *Section) CreateBand(kind BandKind) *Band {
	if kind == Detail {
		if b := s.Band(Detail); b != nil {
			return b
		}
	}
	b := &Band{Kind: kind}
	if kind == GroupHeader || kind == GroupFooter {
		b.Level = len(s.BandsOf(kind))
	}
	s.Bands = append(s.Bands, b)
	return b
}

// AddDetailReport appends a DetailReport band holding a new nested section.
func (s *Section) AddDetailReport(name string) *Section {
	child := &Section{Name: name, parent: s}
	b := &Band{Kind: DetailReport, Report: child}
	s.Bands = append(s.Bands, b)
	return child
}

// RemoveBand removes b from the section.
func (s *Section) RemoveBand(b *Band) {
	for i, cur := range s.Bands {
		if cur == b {
			s.Bands = append(s.Bands[:i], s.Bands[i+1:]...)
			return
		}
	}
}

// IsEmpty reports whether the band holds no controls and no nested section.
func (b *Band) IsEmpty() bool {
	return len(b.Controls) == 0 && b.Report == nil
}
