// Package convert re-projects a laid-out document onto a banded report
// definition.
//
// A LayoutWalker visits the layout of a document in range order. Runs of
// text rows become labels rendered by a MarkupGenerator, tables are handed
// to a table processor that calls back into the walker for every cell, and
// repeating lists become nested detail reports whose templates are walked
// recursively. All processors share one Context cursor.
package convert

import (
	"fmt"
	"log/slog"

	"github.com/roboco-io/doc2report/internal/datasource"
	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/report"
)

// Options configures a Converter.
type Options struct {
	// Logger receives progress and degradation messages. Nil discards them.
	Logger *slog.Logger
	// Configurer, when set, is called for every data source before the
	// conversion starts.
	Configurer datasource.Configurer
	// MergeTolerance is the tolerance used to match cells of one column,
	// in hundredths of an inch. Zero selects report.FloatTolerance.
	MergeTolerance float64
	// SkipHeadersFooters disables page header and footer conversion.
	SkipHeadersFooters bool
}

// Converter turns documents into reports.
type Converter struct {
	opts   Options
	logger *slog.Logger
}

// New creates a converter.
func New(opts Options) *Converter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{opts: opts, logger: logger}
}

// Convert converts doc. The input is never modified. On failure no report
// is returned and the error is a *ConversionError.
func (c *Converter) Convert(doc *document.Document) (rep *report.Report, err error) {
	stage := "prepare"
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("conversion aborted", "stage", stage, "panic", r)
			rep = nil
			err = &ConversionError{Stage: stage, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	fail := func(cause error) (*report.Report, error) {
		return nil, &ConversionError{Stage: stage, Cause: cause}
	}

	if doc == nil {
		return fail(ErrNilDocument)
	}
	work, err := doc.Clone()
	if err != nil {
		return fail(err)
	}

	stage = "configure"
	if err := c.configure(work); err != nil {
		return fail(err)
	}

	stage = "setup"
	ctx := NewContext(report.New(), c.logger)
	if c.opts.MergeTolerance > 0 {
		ctx.tolerance = c.opts.MergeTolerance
	}
	c.setup(ctx, work)

	stage = "layout"
	if err := NewLayoutWalker(ctx, work).Walk(); err != nil {
		return fail(err)
	}

	stage = "headers"
	if !c.opts.SkipHeadersFooters {
		if err := c.processHeadersFooters(ctx, work); err != nil {
			return fail(err)
		}
	}

	stage = "cleanup"
	ctx.CleanEmptyBands()
	c.logger.Info("conversion finished", "bands", len(ctx.Report().Bands), "data_sources", len(ctx.Report().DataSources))
	return ctx.Report(), nil
}

func (c *Converter) configure(doc *document.Document) error {
	if c.opts.Configurer == nil {
		return nil
	}
	for _, ds := range doc.DataSources {
		conn := datasource.Connection{
			Name:             ds.Name,
			Provider:         ds.Provider,
			ConnectionString: ds.ConnectionString,
		}
		if ds.Name == doc.MailMerge.DataSource {
			conn.DataMember = doc.MailMerge.DataMember
		}
		if err := c.opts.Configurer.ConfigureConnection(&conn); err != nil {
			return fmt.Errorf("data source %q: %w", ds.Name, err)
		}
		ds.Provider = conn.Provider
		ds.ConnectionString = conn.ConnectionString
		if ds.Name == doc.MailMerge.DataSource && doc.MailMerge.DataMember == "" {
			doc.MailMerge.DataMember = conn.DataMember
		}
		c.logger.Debug("data connection configured", "name", ds.Name, "provider", ds.Provider)
	}
	return nil
}

// setup creates the mandatory bands and copies data binding, page settings
// and parameters, then positions the cursor on the Detail band.
func (c *Converter) setup(ctx *Context, doc *document.Document) {
	rep := ctx.Report()
	root := rep.Root()
	root.CreateBand(report.TopMargin)
	detail := root.CreateBand(report.Detail)
	root.CreateBand(report.BottomMargin)

	root.DataSource = doc.MailMerge.DataSource
	root.DataMember = doc.MailMerge.DataMember
	if ds := doc.DataSource(doc.MailMerge.DataSource); ds != nil {
		ctx.useDataSource(ds)
	}

	if len(doc.Sections) > 0 {
		s := doc.Sections[0]
		rep.PaperKind = s.Page.PaperKind
		rep.PageWidth = report.FromDocument(s.Page.Width)
		rep.PageHeight = report.FromDocument(s.Page.Height)
		rep.Landscape = s.Page.Landscape
		rep.Margins = report.Margins{
			Left:   report.FromDocument(s.Margins.Left),
			Right:  report.FromDocument(s.Margins.Right),
			Top:    report.FromDocument(s.Margins.Top),
			Bottom: report.FromDocument(s.Margins.Bottom),
		}
		if len(doc.Sections) > 1 {
			c.logger.Debug("page settings taken from the first section", "sections", len(doc.Sections))
		}
	}

	for _, p := range doc.Parameters {
		rep.Parameters = append(rep.Parameters, report.Parameter{Name: p.Name, Type: p.Type, Value: p.Value})
	}

	for _, f := range doc.Fields {
		if doc.ParseField(f).Kind == document.EntityUnknown {
			c.logger.Warn("unsupported field ignored", "start", f.Range.Start)
		}
	}

	ctx.SetSection(root)
	ctx.SetBand(detail)
	ctx.SetControl(nil)
}

// processHeadersFooters converts the primary header and footer of the
// first section into page bands.
func (c *Converter) processHeadersFooters(ctx *Context, doc *document.Document) error {
	if len(doc.Sections) == 0 {
		return nil
	}
	s := doc.Sections[0]
	for _, hf := range append(append([]*document.HeaderFooter(nil), s.Headers...), s.Footers...) {
		if hf.Type != document.HeaderFooterPrimary {
			c.logger.Warn("header/footer variant ignored", "type", string(hf.Type))
		}
	}
	if h := doc.PrimaryHeader(); h != nil {
		if err := c.processSubDocument(ctx, h, report.PageHeader); err != nil {
			return fmt.Errorf("page header: %w", err)
		}
	}
	if f := doc.PrimaryFooter(); f != nil {
		if err := c.processSubDocument(ctx, f, report.PageFooter); err != nil {
			return fmt.Errorf("page footer: %w", err)
		}
	}
	return nil
}

func (c *Converter) processSubDocument(ctx *Context, sub *document.Document, kind report.BandKind) error {
	cp, err := sub.Clone()
	if err != nil {
		return err
	}
	cp.UnlinkFields()
	prev := ctx.save()
	defer ctx.restore(prev)
	ctx.SetSection(ctx.Report().Root())
	ctx.SetBand(ctx.CreateBand(kind))
	return NewLayoutWalker(ctx, cp).Walk()
}
