package convert

import (
	"math"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/report"
)

type cellContentFunc func(rows []*document.Row, tables []*document.LayoutTable) error

// tableProcessor converts one model table into report table controls. The
// table is split in two when a list inside a cell moves the cursor to
// another band.
type tableProcessor struct {
	ctx     *Context
	doc     *document.Document
	layout  *document.LayoutTable
	model   *document.Table
	content cellContentFunc

	table *report.Table
	row   *report.TableRow
	merge map[*report.TableCell]document.MergeState
}

func newTableProcessor(ctx *Context, doc *document.Document, lt *document.LayoutTable, model *document.Table, content cellContentFunc) *tableProcessor {
	return &tableProcessor{
		ctx:     ctx,
		doc:     doc,
		layout:  lt,
		model:   model,
		content: content,
		merge:   make(map[*report.TableCell]document.MergeState),
	}
}

func (p *tableProcessor) process() error {
	prev := p.ctx.save()
	parent := p.ctx.Parent()

	lb := p.layout.Bounds
	width := lb.Width
	if pw := p.layout.ParentWidth; pw > 0 && width > pw {
		width = pw
	}
	bounds := report.Rect{
		X:      report.FromTwips(max(lb.X, 0)),
		Y:      report.VerticalOffset(parent),
		Width:  report.FromTwips(width),
		Height: report.FromTwips(lb.Height),
	}
	p.table = report.NewTable(p.ctx.Band())
	parent.Add(p.table)
	p.table.SetBounds(bounds)

	if err := p.processRows(); err != nil {
		return err
	}
	p.postProcess()

	if p.ctx.Section() == prev.section && p.ctx.Band() == prev.band {
		p.ctx.SetControl(prev.control)
	} else {
		p.ctx.SetControl(nil)
	}
	return nil
}

func (p *tableProcessor) processRows() error {
	for ri, mrow := range p.model.Rows {
		p.row = p.table.AddRow(0)
		if lrow := p.layoutRow(mrow); lrow != nil {
			p.row.Height = report.FromTwips(lrow.Bounds.Height)
		} else {
			p.ctx.logger.Debug("no layout row for table row", "table", p.layout.Table, "row", ri)
		}
		if err := p.processCells(ri, mrow); err != nil {
			return err
		}
	}
	return nil
}

// layoutRow resolves the layout row through any of the row's cells; the
// first cell may be a merge continuation without geometry.
func (p *tableProcessor) layoutRow(row *document.TableRow) *document.LayoutTableRow {
	for _, c := range row.Cells {
		if lr := p.doc.Layout.RowAt(p.layout.Table, c.ContentRange.Start); lr != nil {
			return lr
		}
	}
	return nil
}

func (p *tableProcessor) processCells(ri int, mrow *document.TableRow) error {
	for ci, cell := range mrow.Cells {
		rc := p.row.AddCell()
		p.applyCell(cell, rc)

		band := p.ctx.Band()
		p.ctx.SetControl(rc)
		if lc := p.doc.Layout.CellAt(p.layout.Table, cell.ContentRange.Start); lc != nil {
			if err := p.content(lc.Rows, lc.Tables); err != nil {
				return err
			}
		}
		if p.ctx.Control() == rc {
			continue
		}
		if p.ctx.Band() == band {
			p.ctx.SetControl(rc)
			continue
		}
		p.split(rc, ci < len(mrow.Cells)-1, !p.model.IsLastRow(ri))
	}
	return nil
}

// split finishes the current table after a cell moved the cursor to a new
// band and continues the remaining cells in a new table placed there.
func (p *tableProcessor) split(rc *report.TableCell, moreCells, moreRows bool) {
	row := p.row
	rowHeight := row.Height
	if rc.IsEmpty() {
		row.RemoveCell(rc)
		delete(p.merge, rc)
	}
	if len(row.Cells) == 0 {
		t := row.Table()
		t.RemoveRow(row)
		b := t.Bounds()
		b.Height -= rowHeight
		t.SetBounds(b)
		if band := t.Band(); band != nil {
			band.Height = 0
		}
	}
	if !moreCells && !moreRows {
		return
	}

	bounds := p.table.Bounds()
	total := p.table.RowsHeight()
	finished := bounds
	finished.Height = total
	p.table.SetBounds(finished)
	p.postProcess()

	band := p.ctx.Band()
	offset := report.VerticalOffset(band)
	p.table = report.NewTable(band)
	band.Add(p.table)
	p.table.SetBounds(report.Rect{
		X:      bounds.X,
		Y:      offset,
		Width:  bounds.Width,
		Height: max(bounds.Height-total, 0),
	})
	p.ctx.logger.Debug("table split by list", "table", p.layout.Table, "band", band.Kind.String())
	if moreCells {
		p.row = p.table.AddRow(rowHeight)
	}
}

func (p *tableProcessor) applyCell(cell *document.TableCell, rc *report.TableCell) {
	p.merge[rc] = cell.VerticalMerge
	rc.Width = p.cellWidth(cell, rc)
	rc.CanShrink = true
	rc.AllowMarkup = true
	rc.BackColor = cell.BackgroundColor.HTML()
	copyBorders(cell.Borders, rc)
	rc.WordWrap = cell.WordWrap
	rc.TextAlignment = textAlignment(cell.VerticalAlignment)
	rc.Padding = cellPadding(p.doc, cell)
}

// cellWidth takes the width of a continued cell from the cell above it in
// the same column; other cells use their own layout geometry.
func (p *tableProcessor) cellWidth(cell *document.TableCell, rc *report.TableCell) float64 {
	if cell.VerticalMerge == document.MergeContinue {
		column := p.table.ColumnCells(rc, p.ctx.tolerance)
		for i, c := range column {
			if c == rc && i > 0 {
				return column[i-1].Width
			}
		}
		p.ctx.logger.Debug("continued cell without a cell above", "start", cell.ContentRange.Start)
	}
	if lc := p.doc.Layout.CellAt(p.layout.Table, cell.ContentRange.Start); lc != nil {
		return report.FromTwips(lc.Bounds.Width)
	}
	p.ctx.logger.Warn("no layout cell for table cell", "start", cell.ContentRange.Start)
	return 0
}

func copyBorders(b document.CellBorders, rc *report.TableCell) {
	rc.Borders = report.BorderNone
	sides := []struct {
		border document.Border
		side   report.BorderSide
	}{
		{b.Top, report.BorderTop},
		{b.Left, report.BorderLeft},
		{b.Right, report.BorderRight},
		{b.Bottom, report.BorderBottom},
	}
	for _, s := range sides {
		if !s.border.Visible() {
			continue
		}
		rc.Borders |= s.side
		rc.BorderColor = s.border.Color.HTML()
		rc.BorderDashStyle = dashStyle(s.border.Style)
	}
}

func cellPadding(doc *document.Document, cell *document.TableCell) report.Padding {
	spacing := spacingPadding(doc, cell.ContentRange)
	pad := cell.Padding
	return report.Padding{
		Left:   math.Trunc(report.FromDocument(pad.Left)),
		Right:  math.Trunc(report.FromDocument(pad.Right)),
		Top:    max(math.Trunc(report.FromDocument(pad.Top)), spacing.Top),
		Bottom: max(math.Trunc(report.FromDocument(pad.Bottom)), spacing.Bottom),
	}
}

func (p *tableProcessor) postProcess() {
	p.applyMerging()
	p.correctTable()
}

// applyMerging turns restart/continue chains into a row span on the
// restart cell and removes the continued cells.
func (p *tableProcessor) applyMerging() {
	var removed []*report.TableCell
	spanned := make(map[*report.TableCell]bool)
	for _, row := range p.table.Rows {
		for _, cell := range row.Cells {
			if spanned[cell] || p.merge[cell] != document.MergeRestart {
				continue
			}
			column := p.table.ColumnCells(cell, p.ctx.tolerance)
			start := 0
			for i, c := range column {
				if c == cell {
					start = i
					break
				}
			}
			span := 1
			for _, next := range column[start+1:] {
				if p.merge[next] != document.MergeContinue {
					break
				}
				next.Width = cell.Width
				spanned[next] = true
				removed = append(removed, next)
				span++
			}
			cell.RowSpan = span
		}
	}
	for _, c := range removed {
		if row := c.Row(); row != nil {
			row.RemoveCell(c)
		}
		delete(p.merge, c)
	}
}

func (p *tableProcessor) correctTable() {
	for _, row := range p.table.Rows {
		for _, cell := range row.Cells {
			if len(row.Cells) == 1 {
				cell.CanShrink = false
			}
			if len(cell.Controls) == 1 {
				cell.FitControl(cell.Controls[0])
			}
		}
	}
}
