package document

// Field is an inline anchor over a character range. Its code occupies
// CodeRange; the whole field, code and result, occupies Range.
type Field struct {
	ID        string  `json:"id,omitempty" yaml:"id,omitempty"`
	Parent    string  `json:"parent,omitempty" yaml:"parent,omitempty"`
	Range     Range   `json:"range" yaml:"range"`
	CodeRange Range   `json:"code_range" yaml:"code_range"`
	Entity    *Entity `json:"entity,omitempty" yaml:"entity,omitempty"`
}

// EntityKind enumerates the entity variants a field can parse into.
type EntityKind string

const (
	EntityUnknown   EntityKind = ""
	EntityList      EntityKind = "list"
	EntityText      EntityKind = "text"
	EntityChart     EntityKind = "chart"
	EntityParameter EntityKind = "parameter"
)

// Entity is the parsed form of a field. Exactly one payload matches Kind.
type Entity struct {
	Kind  EntityKind   `json:"kind" yaml:"kind"`
	Text  *TextEntity  `json:"text,omitempty" yaml:"text,omitempty"`
	List  *ListEntity  `json:"list,omitempty" yaml:"list,omitempty"`
	Chart *ChartEntity `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// IsSingleValue reports whether the entity binds one value inline (a data
// field or a parameter).
func (e Entity) IsSingleValue() bool {
	return (e.Kind == EntityText || e.Kind == EntityParameter) && e.Text != nil
}

// SummaryFunc is an aggregate applied to a bound data field.
type SummaryFunc string

const (
	SummaryNone    SummaryFunc = ""
	SummarySum     SummaryFunc = "sum"
	SummaryAverage SummaryFunc = "average"
	SummaryCount   SummaryFunc = "count"
	SummaryMin     SummaryFunc = "min"
	SummaryMax     SummaryFunc = "max"
	SummaryCustom  SummaryFunc = "custom"
)

// SummaryRunning is the scope an aggregate is calculated over.
type SummaryRunning string

const (
	RunningNone   SummaryRunning = ""
	RunningGroup  SummaryRunning = "group"
	RunningReport SummaryRunning = "report"
)

// TextEntity binds a data field or parameter inline.
type TextEntity struct {
	DataFieldName  string         `json:"data_field" yaml:"data_field"`
	FormatString   string         `json:"format,omitempty" yaml:"format,omitempty"`
	IsParameter    bool           `json:"is_parameter,omitempty" yaml:"is_parameter,omitempty"`
	SummaryFunc    SummaryFunc    `json:"summary_func,omitempty" yaml:"summary_func,omitempty"`
	SummaryRunning SummaryRunning `json:"summary_running,omitempty" yaml:"summary_running,omitempty"`
}

// HasSummary reports whether both an aggregate and its scope are set.
func (t *TextEntity) HasSummary() bool {
	return t != nil && t.SummaryFunc != SummaryNone && t.SummaryRunning != RunningNone
}

// ParseField resolves a field into its entity. Payload-less or unrecognized
// entities parse as EntityUnknown.
func (d *Document) ParseField(f *Field) Entity {
	if f == nil || f.Entity == nil {
		return Entity{Kind: EntityUnknown}
	}
	e := *f.Entity
	switch e.Kind {
	case EntityList:
		if e.List == nil {
			return Entity{Kind: EntityUnknown}
		}
		return Entity{Kind: EntityList, List: e.List}
	case EntityText:
		if e.Text == nil {
			return Entity{Kind: EntityUnknown}
		}
		if e.Text.IsParameter {
			return Entity{Kind: EntityParameter, Text: e.Text}
		}
		return Entity{Kind: EntityText, Text: e.Text}
	case EntityParameter:
		if e.Text == nil {
			return Entity{Kind: EntityUnknown}
		}
		t := *e.Text
		t.IsParameter = true
		return Entity{Kind: EntityParameter, Text: &t}
	case EntityChart:
		if e.Chart == nil {
			return Entity{Kind: EntityUnknown}
		}
		return Entity{Kind: EntityChart, Chart: e.Chart}
	default:
		return Entity{Kind: EntityUnknown}
	}
}

// SingleValueFieldAt returns the first field whose [start, code end] covers
// pos and that binds a single value.
func (d *Document) SingleValueFieldAt(pos int) (*Field, Entity) {
	for _, f := range d.Fields {
		if f.Range.Start <= pos && f.CodeRange.End() >= pos {
			if e := d.ParseField(f); e.IsSingleValue() {
				return f, e
			}
		}
	}
	return nil, Entity{}
}

// SummaryRunningIn returns the scope of the first aggregate field in r.
func (d *Document) SummaryRunningIn(r Range) SummaryRunning {
	for _, f := range d.FieldsIn(r) {
		e := d.ParseField(f)
		if e.IsSingleValue() && e.Text.HasSummary() {
			return e.Text.SummaryRunning
		}
	}
	return RunningNone
}

// ChartIn returns the first chart whose field starts inside r.
func (d *Document) ChartIn(r Range) *ChartEntity {
	for _, f := range d.FieldsIn(r) {
		if e := d.ParseField(f); e.Kind == EntityChart {
			return e.Chart
		}
	}
	return nil
}
