package convert

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roboco-io/doc2report/internal/document"
)

const (
	lastLowSpecial   = 0x1F
	firstHighSpecial = 0xFFFF
)

type encoding int

const (
	encodeMarkup encoding = iota
	encodeExpression
)

// MarkupGenerator renders the styled text and inline fields of a document
// range. In markup mode it produces tagged text with [Field] placeholders;
// in expression mode it produces a string concatenation expression in which
// fields may carry aggregate functions.
//
// Each field is emitted at most once per generator.
type MarkupGenerator struct {
	doc     *document.Document
	enc     encoding
	buf     strings.Builder
	emitted map[*document.Field]bool
}

// NewMarkupGenerator creates a generator in markup mode.
func NewMarkupGenerator(doc *document.Document) *MarkupGenerator {
	return &MarkupGenerator{doc: doc, enc: encodeMarkup, emitted: make(map[*document.Field]bool)}
}

// NewExpressionGenerator creates a generator in expression mode.
func NewExpressionGenerator(doc *document.Document) *MarkupGenerator {
	g := NewMarkupGenerator(doc)
	g.enc = encodeExpression
	return g
}

// IsExpression reports whether the generator produces an expression.
func (g *MarkupGenerator) IsExpression() bool {
	return g.enc == encodeExpression
}

// Text returns the generated text. The trailing paragraph is always closed.
func (g *MarkupGenerator) Text() string {
	text := g.buf.String() + "</p>"
	if g.enc == encodeExpression {
		return "'" + text + "'"
	}
	return text
}

// VisitParagraphStart implements document.Visitor.
func (g *MarkupGenerator) VisitParagraphStart(p *document.Paragraph) {
	g.literal("<p " + alignAttr(p.Alignment) + ">")
}

// VisitParagraphEnd implements document.Visitor.
func (g *MarkupGenerator) VisitParagraphEnd(*document.Paragraph) {
	g.literal("</p>")
}

// VisitHyperlinkStart implements document.Visitor.
func (g *MarkupGenerator) VisitHyperlinkStart(uri string) {
	g.literal("<href value=" + uri + ">")
}

// VisitHyperlinkEnd implements document.Visitor.
func (g *MarkupGenerator) VisitHyperlinkEnd() {
	g.literal("</href>")
}

// VisitText implements document.Visitor. The span is split where a
// single-value field starts or ends so that field code never leaks as text.
func (g *MarkupGenerator) VisitText(span document.TextSpan) {
	var (
		seg     strings.Builder
		field   *document.Field
		started bool
	)
	pos := span.Position
	for _, r := range span.Text {
		f, _ := g.doc.SingleValueFieldAt(pos)
		if started && f != field {
			g.segment(field, seg.String(), span.Style)
			seg.Reset()
		}
		field, started = f, true
		if f == nil {
			seg.WriteRune(r)
		}
		pos++
	}
	if started {
		g.segment(field, seg.String(), span.Style)
	}
}

func (g *MarkupGenerator) segment(f *document.Field, text string, style document.TextStyle) {
	tags := styleTags(style)
	for _, t := range tags {
		g.literal(t.open())
	}
	if f != nil {
		if !g.emitted[f] {
			g.emitted[f] = true
			g.field(g.doc.ParseField(f))
		}
	} else {
		g.literal(filterText(text))
	}
	for i := len(tags) - 1; i >= 0; i-- {
		g.literal(tags[i].close())
	}
}

func (g *MarkupGenerator) field(e document.Entity) {
	t := e.Text
	if g.enc == encodeMarkup {
		g.buf.WriteByte('[')
		if e.Kind == document.EntityParameter {
			g.buf.WriteByte('?')
		}
		g.buf.WriteString(t.DataFieldName)
		if t.FormatString != "" {
			g.buf.WriteString("!" + t.FormatString)
		}
		g.buf.WriteByte(']')
		return
	}

	var expr string
	switch {
	case e.Kind == document.EntityParameter:
		expr = "?" + t.DataFieldName
	case summaryFunc(t.SummaryFunc) != "":
		expr = summaryFunc(t.SummaryFunc) + "([" + t.DataFieldName + "])"
	default:
		expr = "[" + t.DataFieldName + "]"
	}
	if t.FormatString != "" {
		expr = "FormatString('{0:" + quote(t.FormatString) + "}', " + expr + ")"
	}
	g.buf.WriteString("' + " + expr + " + '")
}

// literal writes text that ends up inside a quoted string in expression
// mode.
func (g *MarkupGenerator) literal(s string) {
	if g.enc == encodeExpression {
		s = quote(s)
	}
	g.buf.WriteString(s)
}

func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// filterText drops control characters other than tab, LF and CR, and
// characters at or above U+FFFF.
func filterText(s string) string {
	s = norm.NFC.String(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if (r > lastLowSpecial && r < firstHighSpecial) || r == '\t' || r == '\n' || r == '\r' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

type markupTag struct {
	name  string
	attrs string
}

func (t markupTag) open() string  { return "<" + t.name + t.attrs + ">" }
func (t markupTag) close() string { return "</" + t.name + ">" }

func styleTags(s document.TextStyle) []markupTag {
	color := s.ForeColor.HTML()
	if color == "" {
		color = "#000000"
	}
	font := "='" + s.FontName + "'" +
		" size=" + strconv.FormatFloat(s.FontSize, 'f', 1, 64) +
		" color=" + color
	if !s.HighlightColor.IsEmpty() {
		font += " backcolor=" + s.HighlightColor.HTML()
	}
	tags := []markupTag{{name: "font", attrs: font}}
	if s.Bold {
		tags = append(tags, markupTag{name: "b"})
	}
	if s.Italic {
		tags = append(tags, markupTag{name: "i"})
	}
	if s.Underline {
		tags = append(tags, markupTag{name: "u"})
	}
	if s.Strikeout {
		tags = append(tags, markupTag{name: "s"})
	}
	return tags
}
