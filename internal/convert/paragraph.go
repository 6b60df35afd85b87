package convert

import (
	"math"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/report"
)

type contentHolder interface {
	SetContent(text string, running report.SummaryRunning)
}

// flushParagraphs renders a run of text rows. Inside a table cell the text
// becomes the cell content, otherwise a label is placed below the existing
// controls of the band.
func (w *LayoutWalker) flushParagraphs(rows []*document.Row) {
	first, last := rows[0], rows[len(rows)-1]
	r := document.Range{Start: first.Range.Start, Length: last.Range.End() - 1 - first.Range.Start}

	running := summaryRunning(w.doc.SummaryRunningIn(r))
	gen := NewMarkupGenerator(w.doc)
	if running != report.RunningNone {
		gen = NewExpressionGenerator(w.doc)
	}
	w.doc.Iterate(r, gen)

	var target contentHolder
	if ctrl := w.ctx.Control(); ctrl != nil {
		holder, ok := ctrl.(contentHolder)
		if !ok {
			w.ctx.logger.Warn("current control cannot hold text", "start", r.Start)
			return
		}
		target = holder
	} else {
		band := w.ctx.Band()
		label := report.NewLabel()
		label.CanShrink = true
		label.Padding = spacingPadding(w.doc, r)
		label.SetBounds(paragraphBounds(rows, band))
		band.Add(label)
		target = label
	}
	w.ctx.logger.Debug("paragraphs flushed", "start", r.Start, "rows", len(rows), "expression", gen.IsExpression())
	target.SetContent(gen.Text(), running)
}

func paragraphBounds(rows []*document.Row, parent report.Container) report.Rect {
	width, height := rows[0].Bounds.Width, 0
	for _, row := range rows {
		width = max(width, row.Bounds.Width)
		height += row.Bounds.Height
	}
	b := report.Rect{
		X:      report.FromTwips(max(rows[0].Bounds.X, 0)),
		Width:  report.FromTwips(width),
		Height: report.FromTwips(height),
	}
	return b.Offset(-parent.PaddingInfo().Left, report.VerticalOffset(parent))
}

// spacingPadding returns the paragraph spacing of r as top/bottom padding.
// Spacing that differs between paragraphs is ignored.
func spacingPadding(doc *document.Document, r document.Range) report.Padding {
	paras := doc.ParagraphsIn(r)
	if len(paras) == 0 {
		return report.Padding{}
	}
	before, after := paras[0].SpacingBefore, paras[0].SpacingAfter
	for _, p := range paras[1:] {
		if p.SpacingBefore != before {
			before = 0
		}
		if p.SpacingAfter != after {
			after = 0
		}
	}
	return report.Padding{
		Top:    math.Trunc(report.FromDocument(before)),
		Bottom: math.Trunc(report.FromDocument(after)),
	}
}
