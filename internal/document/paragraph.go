package document

import (
	"strings"
	"unicode/utf8"
)

// Alignment is a paragraph alignment.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Color is an HTML color (#RRGGBB). The empty value means "no color".
type Color string

// IsEmpty reports whether the color is unset.
func (c Color) IsEmpty() bool {
	return c == ""
}

// HTML returns the normalized #RRGGBB representation.
func (c Color) HTML() string {
	if c.IsEmpty() {
		return ""
	}
	s := strings.ToUpper(string(c))
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// Paragraph is a run of styled text ending with a paragraph mark.
// The mark occupies the last position of Range.
type Paragraph struct {
	Range         Range     `json:"range" yaml:"range"`
	Alignment     Alignment `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	SpacingBefore int       `json:"spacing_before,omitempty" yaml:"spacing_before,omitempty"` // document units
	SpacingAfter  int       `json:"spacing_after,omitempty" yaml:"spacing_after,omitempty"`   // document units
	Runs          []Run     `json:"runs,omitempty" yaml:"runs,omitempty"`
}

// Run is a styled text span within a paragraph.
type Run struct {
	Start     int       `json:"start" yaml:"start"`
	Text      string    `json:"text" yaml:"text"`
	Style     TextStyle `json:"style" yaml:"style"`
	Hyperlink string    `json:"hyperlink,omitempty" yaml:"hyperlink,omitempty"`
}

// Range returns the positions covered by the run text.
func (r Run) Range() Range {
	return Range{Start: r.Start, Length: utf8.RuneCountInString(r.Text)}
}

// TextStyle contains character-level formatting.
type TextStyle struct {
	FontName       string  `json:"font_name,omitempty" yaml:"font_name,omitempty"`
	FontSize       float64 `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	ForeColor      Color   `json:"fore_color,omitempty" yaml:"fore_color,omitempty"`
	HighlightColor Color   `json:"highlight_color,omitempty" yaml:"highlight_color,omitempty"`
	Bold           bool    `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic         bool    `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline      bool    `json:"underline,omitempty" yaml:"underline,omitempty"`
	Strikeout      bool    `json:"strikeout,omitempty" yaml:"strikeout,omitempty"`
}

// NewParagraph creates a paragraph from plain runs laid out from start.
// The paragraph mark is appended after the last run.
func NewParagraph(start int, align Alignment, runs ...Run) *Paragraph {
	p := &Paragraph{Alignment: align}
	pos := start
	for _, r := range runs {
		r.Start = pos
		pos += utf8.RuneCountInString(r.Text)
		p.Runs = append(p.Runs, r)
	}
	p.Range = Range{Start: start, Length: pos - start + 1}
	return p
}

// Text returns the plain text of the paragraph without the mark.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
