package convert

import (
	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/report"
)

func dashStyle(s document.LineStyle) report.DashStyle {
	switch s {
	case document.LineDashed:
		return report.DashDash
	case document.LineDotDash:
		return report.DashDashDot
	case document.LineDotDotDash:
		return report.DashDashDotDot
	case document.LineDotted:
		return report.DashDot
	case document.LineDouble:
		return report.DashDouble
	default:
		return report.DashSolid
	}
}

func textAlignment(a document.VerticalAlignment) report.TextAlignment {
	switch a {
	case document.VAlignCenter:
		return report.AlignMiddleLeft
	case document.VAlignBottom:
		return report.AlignBottomLeft
	default:
		return report.AlignTopLeft
	}
}

func alignAttr(a document.Alignment) string {
	switch a {
	case document.AlignJustify:
		return "align=justify"
	case document.AlignRight:
		return "align=right"
	case document.AlignCenter:
		return "align=center"
	default:
		return "align=left"
	}
}

func sortOrder(o document.SortOrder) report.SortOrder {
	switch o {
	case document.SortNone:
		return report.SortNone
	case document.SortDescending:
		return report.SortDescending
	default:
		return report.SortAscending
	}
}

// summaryFunc returns the expression function for f, or "" when f is not
// an aggregate.
func summaryFunc(f document.SummaryFunc) string {
	switch f {
	case document.SummaryAverage:
		return "sumAvg"
	case document.SummaryCount:
		return "sumCount"
	case document.SummaryMax:
		return "sumMax"
	case document.SummaryMin:
		return "sumMin"
	case document.SummarySum, document.SummaryCustom:
		return "sumSum"
	default:
		return ""
	}
}

func summaryRunning(r document.SummaryRunning) report.SummaryRunning {
	switch r {
	case document.RunningGroup:
		return report.RunningGroup
	case document.RunningReport:
		return report.RunningReport
	default:
		return report.RunningNone
	}
}

func groupFields(keys []document.SortKey) []report.GroupField {
	fields := make([]report.GroupField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, report.GroupField{FieldName: k.FieldName, SortOrder: sortOrder(k.Order)})
	}
	return fields
}
