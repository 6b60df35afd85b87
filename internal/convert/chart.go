package convert

import (
	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/report"
)

// emitChart places a chart below the existing content of the current
// container.
func (w *LayoutWalker) emitChart(c *document.ChartEntity) {
	parent := w.ctx.Parent()
	chart := &report.Chart{
		Name:          c.Name,
		ChartType:     c.ChartType,
		Title:         c.Title,
		DataSource:    c.DataSourceName,
		DataMember:    c.DataMember,
		LegendVisible: c.LegendVisible,
	}
	for _, s := range c.Series {
		chart.Series = append(chart.Series, report.ChartSeries{
			Name:               s.Name,
			ViewType:           s.ViewType,
			ArgumentDataMember: s.ArgumentDataMember,
			ValueDataMembers:   append([]string(nil), s.ValueDataMembers...),
		})
	}
	chart.SetBounds(report.Rect{
		Y:      report.VerticalOffset(parent),
		Width:  report.FromPixels(c.Size.Width),
		Height: report.FromPixels(c.Size.Height),
	})
	parent.Add(chart)
	w.ctx.logger.Debug("chart placed", "name", c.Name, "series", len(c.Series))
}
