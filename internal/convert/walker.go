package convert

import (
	"sort"

	"github.com/roboco-io/doc2report/internal/document"
)

// LayoutWalker traverses the layout of one document in range order and
// dispatches its elements: repeating lists, tables, chart rows and runs of
// plain paragraph rows.
type LayoutWalker struct {
	ctx    *Context
	doc    *document.Document
	lists  []*document.Field
	done   map[int]bool
	tables map[int]bool
}

// NewLayoutWalker creates a walker writing into ctx.
func NewLayoutWalker(ctx *Context, doc *document.Document) *LayoutWalker {
	return &LayoutWalker{
		ctx:    ctx,
		doc:    doc,
		lists:  doc.TopLevelLists(),
		done:   make(map[int]bool),
		tables: make(map[int]bool),
	}
}

// Walk processes every column of every page. Multi-column areas are
// flattened into a single column.
func (w *LayoutWalker) Walk() error {
	if w.doc.Layout.HasMultiColumnAreas() {
		w.ctx.logger.Warn("multi-column layout collapsed to a single column")
	}
	for _, col := range w.doc.Layout.Columns() {
		if err := w.processElements(col.Rows, col.Tables); err != nil {
			return err
		}
	}
	return nil
}

func (w *LayoutWalker) processElements(rows []*document.Row, tables []*document.LayoutTable) error {
	elements := make([]document.Element, 0, len(rows)+len(tables))
	for _, r := range rows {
		elements = append(elements, r)
	}
	for _, t := range tables {
		elements = append(elements, t)
	}
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].ElementRange().Start < elements[j].ElementRange().Start
	})

	var pending []*document.Row
	for i, el := range elements {
		if list := w.listAt(el.ElementRange().Start); list != nil {
			if w.done[list.Range.Start] {
				continue
			}
			if err := w.processList(list); err != nil {
				return err
			}
			continue
		}
		switch el := el.(type) {
		case *document.LayoutTable:
			if err := w.processTable(el); err != nil {
				return err
			}
		case *document.Row:
			pending = w.processRow(elements, i, el, pending)
		}
	}
	return nil
}

// listAt returns the top-level list whose range, end inclusive, holds pos.
func (w *LayoutWalker) listAt(pos int) *document.Field {
	for _, f := range w.lists {
		if f.Range.Covers(pos) {
			return f
		}
	}
	return nil
}

func (w *LayoutWalker) processList(f *document.Field) error {
	entity := w.doc.ParseField(f)
	w.ctx.logger.Debug("processing list", "start", f.Range.Start, "data_member", entity.List.DataMember)

	prev := w.ctx.Section()
	lp := &listProcessor{ctx: w.ctx, doc: w.doc, list: entity.List}
	if err := lp.process(); err != nil {
		return err
	}
	w.done[f.Range.Start] = true

	// Follow the band the list left current while keeping the enclosing
	// section, so sibling content lands after the list.
	band, ctrl := w.ctx.Band(), w.ctx.Control()
	w.ctx.SetSection(prev)
	w.ctx.SetBand(band)
	w.ctx.SetControl(ctrl)
	return nil
}

func (w *LayoutWalker) processTable(lt *document.LayoutTable) error {
	if w.tables[lt.Table] {
		w.ctx.logger.Debug("table continuation skipped", "table", lt.Table, "start", lt.Range.Start)
		return nil
	}
	w.tables[lt.Table] = true
	model := w.doc.Table(lt.Table)
	if model == nil {
		w.ctx.logger.Warn("layout table without model table", "table", lt.Table)
		return nil
	}
	w.ctx.logger.Debug("processing table", "table", lt.Table, "rows", len(model.Rows))
	tp := newTableProcessor(w.ctx, w.doc, lt, model, w.processElements)
	return tp.process()
}

func (w *LayoutWalker) processRow(elements []document.Element, i int, row *document.Row, pending []*document.Row) []*document.Row {
	chart := w.doc.ChartIn(row.Range)
	if chart == nil {
		pending = append(pending, row)
	}

	flush := chart != nil || i == len(elements)-1
	if !flush {
		next := elements[i+1]
		_, isRow := next.(*document.Row)
		flush = !isRow || w.listAt(next.ElementRange().Start) != nil
	}
	if flush {
		if rows := trimEmptyRows(pending); len(rows) > 0 {
			w.flushParagraphs(rows)
		}
		pending = nil
	}

	if chart != nil {
		w.emitChart(chart)
	}
	return pending
}

// trimEmptyRows drops leading and trailing rows holding only a paragraph
// mark.
func trimEmptyRows(rows []*document.Row) []*document.Row {
	for len(rows) > 0 && rows[0].IsEmpty() {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1].IsEmpty() {
		rows = rows[:len(rows)-1]
	}
	return rows
}
