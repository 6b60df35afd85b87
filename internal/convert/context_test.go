package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboco-io/doc2report/internal/report"
)

func TestContext_CursorInvalidation(t *testing.T) {
	rep := report.New()
	ctx := NewContext(rep, nil)
	detail := ctx.CreateBand(report.Detail)
	cell := &report.TableCell{}

	ctx.SetBand(detail)
	ctx.SetControl(cell)

	ctx.SetBand(detail)
	assert.Equal(t, report.Container(cell), ctx.Control(), "same band keeps control")

	ctx.SetSection(rep.Root())
	assert.Same(t, detail, ctx.Band(), "same section keeps band")

	footer := ctx.CreateBand(report.ReportFooter)
	ctx.SetBand(footer)
	assert.Nil(t, ctx.Control())

	ctx.SetControl(cell)
	nested := rep.Root().AddDetailReport("")
	ctx.SetSection(nested)
	assert.Nil(t, ctx.Band())
	assert.Nil(t, ctx.Control())
}

func TestContext_Parent(t *testing.T) {
	ctx := NewContext(report.New(), nil)
	band := ctx.CreateBand(report.Detail)
	ctx.SetBand(band)
	assert.Equal(t, report.Container(band), ctx.Parent())

	cell := &report.TableCell{}
	ctx.SetControl(cell)
	assert.Equal(t, report.Container(cell), ctx.Parent())
}

func TestContext_CreateBandDetailSingleton(t *testing.T) {
	ctx := NewContext(report.New(), nil)
	first := ctx.CreateBand(report.Detail)
	second := ctx.CreateBand(report.Detail)
	assert.Same(t, first, second)
	assert.Len(t, ctx.Section().Bands, 1)
}

func buildCleanupTree() *report.Report {
	rep := report.New()
	root := rep.Root()
	root.CreateBand(report.TopMargin)
	detail := root.CreateBand(report.Detail)
	detail.Add(report.NewLabel())
	detail.Height = 35
	root.CreateBand(report.PageHeader)
	root.CreateBand(report.BottomMargin)

	nested := root.AddDetailReport("list")
	nested.CreateBand(report.ReportHeader)
	nested.CreateBand(report.Detail)
	gh := nested.CreateBand(report.GroupHeader)
	gh.Height = 10
	nested.CreateBand(report.GroupFooter)
	footer := nested.CreateBand(report.ReportFooter)
	footer.Add(report.NewLabel())
	return rep
}

func bandKinds(s *report.Section) []report.BandKind {
	var kinds []report.BandKind
	for _, b := range s.Bands {
		kinds = append(kinds, b.Kind)
	}
	return kinds
}

func TestContext_CleanEmptyBands(t *testing.T) {
	rep := buildCleanupTree()
	ctx := NewContext(rep, nil)
	ctx.CleanEmptyBands()

	root := rep.Root()
	assert.Equal(t, []report.BandKind{report.TopMargin, report.Detail, report.BottomMargin, report.DetailReport}, bandKinds(root))
	assert.Zero(t, root.Band(report.Detail).Height)

	nested := root.Band(report.DetailReport).Report
	require.NotNil(t, nested)
	assert.Equal(t, []report.BandKind{report.Detail, report.GroupHeader, report.ReportFooter}, bandKinds(nested))
	assert.Zero(t, nested.Band(report.GroupHeader).Height)
}

func TestContext_CleanEmptyBandsIdempotent(t *testing.T) {
	once := buildCleanupTree()
	NewContext(once, nil).CleanEmptyBands()

	twice := buildCleanupTree()
	ctx := NewContext(twice, nil)
	ctx.CleanEmptyBands()
	ctx.CleanEmptyBands()

	assert.Equal(t, bandKinds(once.Root()), bandKinds(twice.Root()))
	assert.Equal(t,
		bandKinds(once.Root().Band(report.DetailReport).Report),
		bandKinds(twice.Root().Band(report.DetailReport).Report))
}
