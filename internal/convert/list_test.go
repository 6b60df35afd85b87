package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/report"
)

func template(lines ...string) *document.Document {
	b := newDocBuilder()
	for _, l := range lines {
		b.para(text(l))
	}
	return b.doc
}

func labelText(t *testing.T, c report.Control) string {
	t.Helper()
	l, ok := c.(*report.Label)
	require.True(t, ok, "control is %T", c)
	return l.Text
}

func ordersList() *document.ListEntity {
	return &document.ListEntity{
		Name:           "Orders",
		DataSourceName: "Shop",
		DataMember:     "Orders",
		Header:         template("Header"),
		RowTemplate:    template("Row"),
		Footer:         template("Footer"),
		Groups: []document.ListGroup{
			{
				Header: template("Group"),
				Footer: template("Group total"),
				Fields: []document.SortKey{{FieldName: "Category", Order: document.SortDescending}},
			},
			{
				Fields: []document.SortKey{{FieldName: "Region"}},
			},
		},
		Filters: []string{"[Amount] > 0", "[Open] = true"},
		Sorting: []document.SortKey{{FieldName: "Date", Order: document.SortAscending}},
	}
}

func shopSource() *document.DataSource {
	return &document.DataSource{
		Name:     "Shop",
		Provider: "sqlite",
		CalculatedFields: []document.CalculatedField{
			{Name: "calc1", DisplayName: "Total", Expression: "[Price] * [Qty]"},
		},
	}
}

func TestList_Structure(t *testing.T) {
	b := newDocBuilder()
	b.doc.DataSources = []*document.DataSource{shopSource()}
	b.para(text("Intro"))
	b.list(ordersList())
	b.para(text("Outro"))

	rep := convertDoc(t, b.doc)
	root := rep.Root()
	assert.Equal(t, []report.BandKind{report.TopMargin, report.Detail, report.BottomMargin, report.DetailReport}, bandKinds(root))
	detail := root.Band(report.Detail)
	require.Len(t, detail.Controls, 1)
	assert.Contains(t, labelText(t, detail.Controls[0]), ">Intro<")

	nested := root.Band(report.DetailReport).Report
	require.NotNil(t, nested)
	assert.Equal(t, "Shop", nested.DataSource)
	assert.Equal(t, "Orders", nested.DataMember)
	assert.Equal(t, "[Amount] > 0", nested.FilterString)

	assert.Len(t, nested.BandsOf(report.Detail), 1)
	nestedDetail := nested.Band(report.Detail)
	require.Len(t, nestedDetail.Controls, 1)
	assert.Contains(t, labelText(t, nestedDetail.Controls[0]), ">Row<")
	assert.Equal(t, []report.GroupField{{FieldName: "Date", SortOrder: report.SortAscending}}, nestedDetail.SortFields)

	headers := nested.BandsOf(report.GroupHeader)
	require.Len(t, headers, 2)
	assert.Equal(t, []report.GroupField{{FieldName: "Category", SortOrder: report.SortDescending}}, headers[0].GroupFields)
	assert.Equal(t, []report.GroupField{{FieldName: "Region", SortOrder: report.SortAscending}}, headers[1].GroupFields)
	assert.Empty(t, headers[1].Controls)

	footers := nested.BandsOf(report.GroupFooter)
	require.Len(t, footers, 1)
	assert.Equal(t, headers[0].Level, footers[0].Level)

	footer := nested.Band(report.ReportFooter)
	require.NotNil(t, footer)
	require.Len(t, footer.Controls, 2, "content after the list lands in its footer")
	assert.Contains(t, labelText(t, footer.Controls[0]), ">Footer<")
	assert.Contains(t, labelText(t, footer.Controls[1]), ">Outro<")
	assert.Equal(t, 20.0, footer.Controls[1].Bounds().Y)

	require.Len(t, rep.DataSources, 1)
	assert.Equal(t, "Shop", rep.DataSources[0].Name)
	require.Len(t, rep.CalculatedFields, 1)
	assert.Equal(t, "Total", rep.CalculatedFields[0].DisplayName)
}

func TestList_GroupLevelsPaired(t *testing.T) {
	l := &document.ListEntity{
		DataMember:  "Items",
		RowTemplate: template("Row"),
	}
	for range 3 {
		l.Groups = append(l.Groups, document.ListGroup{
			Header: template("H"),
			Footer: template("F"),
			Fields: []document.SortKey{{FieldName: "K"}},
		})
	}
	b := newDocBuilder()
	b.list(l)

	rep := convertDoc(t, b.doc)
	nested := rep.Root().Band(report.DetailReport).Report
	headers := nested.BandsOf(report.GroupHeader)
	footers := nested.BandsOf(report.GroupFooter)
	require.Len(t, headers, 3)
	require.Len(t, footers, 3)
	for i := range headers {
		assert.Equal(t, i, headers[i].Level)
		assert.Equal(t, headers[i].Level, footers[i].Level)
	}
	assert.Len(t, nested.BandsOf(report.Detail), 1)
}

func TestList_EmptyTemplatesSkipped(t *testing.T) {
	b := newDocBuilder()
	b.list(&document.ListEntity{
		DataMember:  "Items",
		Header:      template(""),
		RowTemplate: template("Row"),
	})

	rep := convertDoc(t, b.doc)
	nested := rep.Root().Band(report.DetailReport).Report
	assert.Nil(t, nested.Band(report.ReportHeader))
	assert.Nil(t, nested.Band(report.ReportFooter), "empty footer removed by cleanup")
	assert.NotNil(t, nested.Band(report.Detail))
}

func TestList_DataSettings(t *testing.T) {
	tests := []struct {
		name         string
		sources      []*document.DataSource
		list         document.ListEntity
		parentSource string
		parentMember string
		wantSource   string
		wantMember   string
	}{
		{
			name:       "registered source",
			sources:    []*document.DataSource{shopSource()},
			list:       document.ListEntity{DataSourceName: "Shop", DataMember: "Orders"},
			wantSource: "Shop",
			wantMember: "Orders",
		},
		{
			name:         "relative to parent",
			list:         document.ListEntity{DataMember: "Lines"},
			parentSource: "Shop",
			parentMember: "Orders",
			wantSource:   "Shop",
			wantMember:   "Orders.Lines",
		},
		{
			name:       "parent without member",
			list:       document.ListEntity{DataSourceName: "Missing", DataMember: "Lines"},
			wantSource: "",
			wantMember: "Lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.NewDocument()
			doc.DataSources = tt.sources
			ctx := NewContext(report.New(), nil)
			root := ctx.Report().Root()
			root.DataSource = tt.parentSource
			root.DataMember = tt.parentMember
			section := root.AddDetailReport("")

			list := tt.list
			p := &listProcessor{ctx: ctx, doc: doc, list: &list}
			p.copyDataSettings(section)

			assert.Equal(t, tt.wantSource, section.DataSource)
			assert.Equal(t, tt.wantMember, section.DataMember)
		})
	}
}

func TestList_CalculatedFieldsDeduplicated(t *testing.T) {
	first := shopSource()
	second := &document.DataSource{
		Name: "Archive",
		CalculatedFields: []document.CalculatedField{
			{Name: "calc2", DisplayName: "Total"},
			{Name: "calc3", DisplayName: "Margin"},
		},
	}
	b := newDocBuilder()
	b.doc.DataSources = []*document.DataSource{first, second}
	b.list(&document.ListEntity{DataSourceName: "Shop", DataMember: "Orders", RowTemplate: template("A")})
	b.list(&document.ListEntity{DataSourceName: "Archive", DataMember: "Orders", RowTemplate: template("B")})

	rep := convertDoc(t, b.doc)
	var names []string
	for _, f := range rep.CalculatedFields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"calc1", "calc3"}, names)
	assert.Len(t, rep.DataSources, 2)
}

func TestList_InsideTableCellSplitsTable(t *testing.T) {
	b := newDocBuilder()
	model, _ := b.table([][]cellSpec{
		{{text: "A"}, {text: "B"}},
		{{text: "{LIST}"}, {text: "D"}},
	})
	host := cellRange(model, 1, 0)
	b.fieldOver(document.Run{Start: host.Start, Text: "{LIST}"}, &document.Entity{
		Kind: document.EntityList,
		List: &document.ListEntity{DataMember: "Items", RowTemplate: template("Item")},
	})

	rep := convertDoc(t, b.doc)
	root := rep.Root()

	first := onlyTable(t, root.Band(report.Detail))
	require.Len(t, first.Rows, 1, "emptied row removed")
	last := first.Rows[len(first.Rows)-1]
	require.Len(t, last.Cells, 2)
	for _, c := range last.Cells {
		assert.False(t, c.IsEmpty())
	}
	assert.Equal(t, 20.0, first.Bounds().Height)

	nested := root.Band(report.DetailReport).Report
	require.NotNil(t, nested)
	assert.Contains(t, labelText(t, nested.Band(report.Detail).Controls[0]), ">Item<")

	second := onlyTable(t, nested.Band(report.ReportFooter))
	require.Len(t, second.Rows, 1)
	require.Len(t, second.Rows[0].Cells, 1)
	assert.Contains(t, second.Rows[0].Cells[0].Text, ">D<")
	assert.Equal(t, 20.0, second.Rows[0].Height)
}

func TestList_InLastCellOfRowSplitsBeforeNextRow(t *testing.T) {
	b := newDocBuilder()
	model, _ := b.table([][]cellSpec{
		{{text: "A"}, {text: "{LIST}"}},
		{{text: "C"}, {text: "D"}},
	})
	host := cellRange(model, 0, 1)
	b.fieldOver(document.Run{Start: host.Start, Text: "{LIST}"}, &document.Entity{
		Kind: document.EntityList,
		List: &document.ListEntity{DataMember: "Items", RowTemplate: template("Item")},
	})

	rep := convertDoc(t, b.doc)
	root := rep.Root()

	first := onlyTable(t, root.Band(report.Detail))
	require.Len(t, first.Rows, 1)
	require.Len(t, first.Rows[0].Cells, 1, "list cell removed, sibling kept")
	assert.Contains(t, first.Rows[0].Cells[0].Text, ">A<")
	assert.Equal(t, 20.0, first.Bounds().Height)

	nested := root.Band(report.DetailReport).Report
	require.NotNil(t, nested)
	second := onlyTable(t, nested.Band(report.ReportFooter))
	require.Len(t, second.Rows, 1, "next row lands in the new table")
	require.Len(t, second.Rows[0].Cells, 2)
	assert.Contains(t, second.Rows[0].Cells[0].Text, ">C<")
	assert.Contains(t, second.Rows[0].Cells[1].Text, ">D<")
}
