package convert

import (
	"fmt"
	"unicode/utf8"

	"github.com/roboco-io/doc2report/internal/document"
)

// Rows are laid out 1440 twips (100 hundredths) wide and 288 twips
// (20 hundredths) high.
const (
	rowWidth  = 1440
	rowHeight = 288
)

var arial = document.TextStyle{FontName: "Arial", FontSize: 10}

func text(s string) document.Run {
	return document.Run{Text: s, Style: arial}
}

func bold(s string) document.Run {
	st := arial
	st.Bold = true
	return document.Run{Text: s, Style: st}
}

// docBuilder builds a single-column document, one layout row per paragraph.
type docBuilder struct {
	doc *document.Document
	col *document.Column
	pos int
	y   int
}

func newDocBuilder() *docBuilder {
	doc := document.NewDocument()
	col := &document.Column{Bounds: document.Rect{Width: 14400, Height: 20000}}
	doc.Layout.Pages = []*document.Page{{Areas: []*document.PageArea{{Columns: []*document.Column{col}}}}}
	return &docBuilder{doc: doc, col: col}
}

func (b *docBuilder) para(runs ...document.Run) *document.Paragraph {
	p := b.paragraph(runs...)
	b.col.Rows = append(b.col.Rows, &document.Row{
		Range:  p.Range,
		Bounds: document.Rect{Y: b.y, Width: rowWidth, Height: rowHeight},
	})
	b.y += rowHeight
	return p
}

// paragraph appends a paragraph to the flow without laying it out.
func (b *docBuilder) paragraph(runs ...document.Run) *document.Paragraph {
	p := document.NewParagraph(b.pos, document.AlignLeft, runs...)
	b.doc.Paragraphs = append(b.doc.Paragraphs, p)
	b.pos = p.Range.End()
	return p
}

// fieldOver registers a field whose braces enclose the run text.
func (b *docBuilder) fieldOver(run document.Run, e *document.Entity) *document.Field {
	n := utf8.RuneCountInString(run.Text)
	f := &document.Field{
		ID:        fmt.Sprintf("f%d", len(b.doc.Fields)+1),
		Range:     document.Range{Start: run.Start, Length: n},
		CodeRange: document.Range{Start: run.Start + 1, Length: n - 2},
		Entity:    e,
	}
	b.doc.Fields = append(b.doc.Fields, f)
	return f
}

// textField adds a paragraph made of prefix and a {name} field.
func (b *docBuilder) textField(prefix string, t document.TextEntity) (*document.Paragraph, *document.Field) {
	var p *document.Paragraph
	if prefix == "" {
		p = b.para(text("{" + t.DataFieldName + "}"))
	} else {
		p = b.para(text(prefix), text("{"+t.DataFieldName+"}"))
	}
	te := t
	f := b.fieldOver(p.Runs[len(p.Runs)-1], &document.Entity{Kind: document.EntityText, Text: &te})
	return p, f
}

// list adds a paragraph holding a list field; the paragraph mark stays
// outside the field.
func (b *docBuilder) list(l *document.ListEntity) *document.Field {
	p := b.para(text("{LIST}"))
	return b.fieldOver(p.Runs[0], &document.Entity{Kind: document.EntityList, List: l})
}

type cellSpec struct {
	text   string
	width  int
	merge  document.MergeState
	noCell bool
}

// table lays out a table. Continued cells get no layout cell of their own.
func (b *docBuilder) table(rows [][]cellSpec) (*document.Table, *document.LayoutTable) {
	model := &document.Table{}
	lt := &document.LayoutTable{Table: len(b.doc.Tables), ParentWidth: 14400}
	start := b.pos
	y := 0
	maxWidth := 0
	for _, specs := range rows {
		mrow := &document.TableRow{}
		lrow := &document.LayoutTableRow{Bounds: document.Rect{Y: y, Height: rowHeight}}
		x := 0
		for _, s := range specs {
			p := b.paragraph(text(s.text))
			mrow.Cells = append(mrow.Cells, &document.TableCell{ContentRange: p.Range, VerticalMerge: s.merge})
			w := s.width
			if w == 0 {
				w = rowWidth
			}
			if s.merge != document.MergeContinue && !s.noCell {
				lrow.Cells = append(lrow.Cells, &document.LayoutTableCell{
					Range:  p.Range,
					Bounds: document.Rect{X: x, Width: w, Height: rowHeight},
					Rows:   []*document.Row{{Range: p.Range, Bounds: document.Rect{Width: w, Height: rowHeight}}},
				})
			}
			x += w
		}
		maxWidth = max(maxWidth, x)
		model.Rows = append(model.Rows, mrow)
		lt.Rows = append(lt.Rows, lrow)
		y += rowHeight
	}
	model.Range = document.Range{Start: start, Length: b.pos - start}
	lt.Range = model.Range
	lt.Bounds = document.Rect{Y: b.y, Width: maxWidth, Height: y}
	b.doc.Tables = append(b.doc.Tables, model)
	b.col.Tables = append(b.col.Tables, lt)
	b.y += y
	return model, lt
}

// cellRange returns the content range of a model cell.
func cellRange(t *document.Table, row, col int) document.Range {
	return t.Rows[row].Cells[col].ContentRange
}
