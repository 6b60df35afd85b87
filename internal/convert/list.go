package convert

import (
	"fmt"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/report"
)

// listProcessor converts one repeating list into a nested detail report:
// header, row template, groups and footer, followed by data shaping.
type listProcessor struct {
	ctx  *Context
	doc  *document.Document
	list *document.ListEntity
}

func (p *listProcessor) process() error {
	section := p.ctx.Section().AddDetailReport(p.list.Name)
	p.ctx.SetSection(section)
	p.copyDataSettings(section)

	if _, err := p.renderTemplate(p.list.Header, report.ReportHeader); err != nil {
		return fmt.Errorf("list header: %w", err)
	}
	if _, err := p.renderTemplate(p.list.RowTemplate, report.Detail); err != nil {
		return fmt.Errorf("list row template: %w", err)
	}
	for i, g := range p.list.Groups {
		if err := p.processGroup(g); err != nil {
			return fmt.Errorf("list group %d: %w", i, err)
		}
	}
	if _, err := p.renderTemplate(p.list.Footer, report.ReportFooter); err != nil {
		return fmt.Errorf("list footer: %w", err)
	}
	p.copyDataShaping(section)

	footer := section.Band(report.ReportFooter)
	if footer == nil {
		footer = section.CreateBand(report.ReportFooter)
	}
	p.ctx.SetBand(footer)
	return nil
}

// copyDataSettings binds the section to the list's data source. A list
// without a registered source is relative to the enclosing section.
func (p *listProcessor) copyDataSettings(section *report.Section) {
	section.DataMember = p.list.DataMember
	ds := p.doc.DataSource(p.list.DataSourceName)
	if ds == nil {
		if parent := section.Parent(); parent != nil && parent.DataMember != "" {
			section.DataSource = parent.DataSource
			section.DataMember = parent.DataMember + "." + p.list.DataMember
		}
		return
	}
	section.DataSource = ds.Name
	p.ctx.useDataSource(ds)

	rep := p.ctx.Report()
	for _, cf := range ds.CalculatedFields {
		added := rep.AddCalculatedField(report.CalculatedField{
			Name:        cf.Name,
			DisplayName: cf.DisplayName,
			DataSource:  cf.DataSource,
			DataMember:  cf.DataMember,
			FieldType:   cf.FieldType,
			Expression:  cf.Expression,
		})
		if !added {
			p.ctx.logger.Debug("calculated field already present", "display_name", cf.DisplayName)
		}
	}
}

func (p *listProcessor) processGroup(g document.ListGroup) error {
	header := p.ctx.CreateBand(report.GroupHeader)
	p.ctx.SetBand(header)
	if !g.Header.IsEmpty() {
		if err := p.walkTemplate(g.Header); err != nil {
			return err
		}
		p.ctx.SetBand(header)
	}
	header.Height = 0
	header.GroupFields = append(header.GroupFields, groupFields(g.Fields)...)

	footer, err := p.renderTemplate(g.Footer, report.GroupFooter)
	if err != nil {
		return err
	}
	if footer != nil {
		footer.Level = header.Level
	}
	return nil
}

// copyDataShaping applies the first filter and the sort keys. Only one
// filter string is representable.
func (p *listProcessor) copyDataShaping(section *report.Section) {
	if len(p.list.Filters) > 0 {
		section.FilterString = p.list.Filters[0]
		if len(p.list.Filters) > 1 {
			p.ctx.logger.Warn("list filters dropped", "kept", p.list.Filters[0], "dropped", len(p.list.Filters)-1)
		}
	}
	detail := section.CreateBand(report.Detail)
	detail.SortFields = append(detail.SortFields, groupFields(p.list.Sorting)...)
}

// renderTemplate walks a non-empty template into a new band of the given
// kind and leaves that band current.
func (p *listProcessor) renderTemplate(tpl *document.Document, kind report.BandKind) (*report.Band, error) {
	if tpl.IsEmpty() {
		return nil, nil
	}
	band := p.ctx.CreateBand(kind)
	p.ctx.SetBand(band)
	if err := p.walkTemplate(tpl); err != nil {
		return nil, err
	}
	p.ctx.SetBand(band)
	band.Height = 0
	return band, nil
}

// walkTemplate walks an isolated copy of tpl that also knows the data
// sources of the enclosing document.
func (p *listProcessor) walkTemplate(tpl *document.Document) error {
	sub, err := tpl.Clone()
	if err != nil {
		return err
	}
	for _, ds := range p.doc.DataSources {
		sub.AddDataSource(ds)
	}
	return NewLayoutWalker(p.ctx, sub).Walk()
}
