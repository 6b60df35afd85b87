package document

import "unicode/utf8"

// TextSpan is a styled piece of text produced while iterating a range.
type TextSpan struct {
	Position int
	Text     string
	Style    TextStyle
}

// Visitor receives the content of a range in document order.
type Visitor interface {
	VisitParagraphStart(p *Paragraph)
	VisitParagraphEnd(p *Paragraph)
	VisitHyperlinkStart(uri string)
	VisitHyperlinkEnd()
	VisitText(span TextSpan)
}

// Iterate walks the paragraphs intersecting r and reports their content to v.
// Runs are clipped to r. A paragraph end is reported only when its mark lies
// inside r.
func (d *Document) Iterate(r Range, v Visitor) {
	for _, p := range d.ParagraphsIn(r) {
		v.VisitParagraphStart(p)
		link := ""
		for _, run := range p.Runs {
			span, ok := clipRun(run, r)
			if !ok {
				continue
			}
			if run.Hyperlink != link {
				if link != "" {
					v.VisitHyperlinkEnd()
				}
				if run.Hyperlink != "" {
					v.VisitHyperlinkStart(run.Hyperlink)
				}
				link = run.Hyperlink
			}
			v.VisitText(span)
		}
		if link != "" {
			v.VisitHyperlinkEnd()
		}
		if r.Contains(p.Range.End() - 1) {
			v.VisitParagraphEnd(p)
		}
	}
}

func clipRun(run Run, r Range) (TextSpan, bool) {
	rr := run.Range()
	if !rr.Intersects(r) {
		return TextSpan{}, false
	}
	start := max(rr.Start, r.Start)
	end := min(rr.End(), r.End())
	text := run.Text
	if start > rr.Start || end < rr.End() {
		text = substring(run.Text, start-rr.Start, end-rr.Start)
	}
	return TextSpan{Position: start, Text: text, Style: run.Style}, true
}

// substring returns the runes [from, to) of s.
func substring(s string, from, to int) string {
	i, begin, stop := 0, len(s), len(s)
	for off := range s {
		if i == from {
			begin = off
		}
		if i == to {
			stop = off
			break
		}
		i++
	}
	if from >= utf8.RuneCountInString(s) {
		return ""
	}
	return s[begin:stop]
}
