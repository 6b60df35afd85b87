package convert

import (
	"log/slog"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/report"
)

// Context is the generation cursor shared by every processor of one
// conversion: the section, band and control content is written into.
//
// Changing the section clears the band and the control, changing the band
// clears the control. Assigning the value already held is a no-op.
type Context struct {
	report  *report.Report
	section *report.Section
	band    *report.Band
	control report.Container

	logger    *slog.Logger
	tolerance float64
}

// NewContext creates a cursor positioned on the root section of r.
func NewContext(r *report.Report, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{
		report:    r,
		section:   r.Root(),
		logger:    logger,
		tolerance: report.FloatTolerance,
	}
}

// Report returns the report being built.
func (c *Context) Report() *report.Report { return c.report }

// Section returns the current section.
func (c *Context) Section() *report.Section { return c.section }

// SetSection makes s current.
func (c *Context) SetSection(s *report.Section) {
	if c.section == s {
		return
	}
	c.section = s
	c.band = nil
	c.control = nil
}

// Band returns the current band.
func (c *Context) Band() *report.Band { return c.band }

// SetBand makes b current.
func (c *Context) SetBand(b *report.Band) {
	if c.band == b {
		return
	}
	c.band = b
	c.control = nil
}

// Control returns the current container control, or nil when content goes
// straight into the band.
func (c *Context) Control() report.Container { return c.control }

// SetControl makes ctrl current.
func (c *Context) SetControl(ctrl report.Container) {
	c.control = ctrl
}

// Parent returns the container new controls are placed in.
func (c *Context) Parent() report.Container {
	if c.control != nil {
		return c.control
	}
	return c.band
}

// CreateBand creates a band of the given kind in the current section.
func (c *Context) CreateBand(kind report.BandKind) *report.Band {
	return c.section.CreateBand(kind)
}

type cursor struct {
	section *report.Section
	band    *report.Band
	control report.Container
}

func (c *Context) save() cursor {
	return cursor{section: c.section, band: c.band, control: c.control}
}

func (c *Context) restore(cur cursor) {
	c.SetSection(cur.section)
	c.SetBand(cur.band)
	c.SetControl(cur.control)
}

// CleanEmptyBands removes bands without controls from every section of the
// report, keeping margins, Detail and GroupHeader bands. Surviving bands
// auto-size to their content.
func (c *Context) CleanEmptyBands() {
	cleanSection(c.report.Root())
}

func cleanSection(s *report.Section) {
	for i := len(s.Bands) - 1; i >= 0; i-- {
		b := s.Bands[i]
		if b.Report != nil {
			cleanSection(b.Report)
			continue
		}
		if b.IsEmpty() && !b.Kind.Retained() {
			s.RemoveBand(b)
			continue
		}
		b.Height = 0
	}
}

// useDataSource records ds on the report.
func (c *Context) useDataSource(ds *document.DataSource) {
	c.report.AddDataSource(report.DataSource{
		Name:             ds.Name,
		Provider:         ds.Provider,
		ConnectionString: ds.ConnectionString,
	})
}
