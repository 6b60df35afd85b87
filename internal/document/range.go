package document

// Range is a span of character positions.
type Range struct {
	Start  int `json:"start" yaml:"start"`
	Length int `json:"length" yaml:"length"`
}

// End returns the first position after the range.
func (r Range) End() int {
	return r.Start + r.Length
}

// Contains reports whether pos lies in [Start, End).
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End()
}

// Covers reports whether pos lies in [Start, End].
func (r Range) Covers(pos int) bool {
	return pos >= r.Start && pos <= r.End()
}

// Intersects reports whether the two ranges share at least one position.
func (r Range) Intersects(o Range) bool {
	return r.Start < o.End() && o.Start < r.End()
}
