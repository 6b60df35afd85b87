package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roboco-io/doc2report/internal/document"
)

// Decode reads a YAML or JSON document snapshot. With strict set, unknown
// keys are rejected.
func Decode(data []byte, strict bool) (*document.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty document snapshot")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)

	var doc document.Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document snapshot")
		}
		return nil, fmt.Errorf("failed to decode document snapshot: %w", err)
	}
	if doc.Layout == nil {
		doc.Layout = &document.Layout{}
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the structural invariants the converter relies on:
// paragraphs in ascending, non-overlapping order and layout tables that
// reference existing model tables.
func Validate(doc *document.Document) error {
	end := -1
	for i, p := range doc.Paragraphs {
		if p == nil {
			return fmt.Errorf("paragraph %d is empty", i)
		}
		if p.Range.Length < 1 {
			return fmt.Errorf("paragraph %d has no paragraph mark", i)
		}
		if p.Range.Start < end {
			return fmt.Errorf("paragraph %d starts at %d inside the previous paragraph", i, p.Range.Start)
		}
		end = p.Range.End()
	}

	if err := validateLayout(doc); err != nil {
		return err
	}

	for _, f := range doc.Fields {
		if f == nil {
			return fmt.Errorf("document holds an empty field")
		}
		if f.Entity != nil && f.Entity.Kind == document.EntityList && f.Entity.List != nil {
			if err := validateList(f.Entity.List); err != nil {
				return fmt.Errorf("list at %d: %w", f.Range.Start, err)
			}
		}
	}
	return nil
}

func validateLayout(doc *document.Document) error {
	for i, page := range doc.Layout.Pages {
		if page == nil {
			return fmt.Errorf("layout page %d is empty", i)
		}
		for j, area := range page.Areas {
			if area == nil {
				return fmt.Errorf("layout page %d holds an empty area %d", i, j)
			}
			for _, col := range area.Columns {
				if col == nil {
					return fmt.Errorf("layout holds an empty column")
				}
				if err := validateRows(col.Rows); err != nil {
					return err
				}
				for _, t := range col.Tables {
					if err := validateTable(doc, t); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func validateRows(rows []*document.Row) error {
	for _, r := range rows {
		if r == nil {
			return fmt.Errorf("layout holds an empty row")
		}
	}
	return nil
}

func validateTable(doc *document.Document, t *document.LayoutTable) error {
	if t == nil {
		return fmt.Errorf("layout holds an empty table")
	}
	if doc.Table(t.Table) == nil {
		return fmt.Errorf("layout table at %d references missing table %d", t.Range.Start, t.Table)
	}
	for _, r := range t.Rows {
		if r == nil {
			return fmt.Errorf("layout table at %d holds an empty row", t.Range.Start)
		}
		for _, c := range r.Cells {
			if c == nil {
				return fmt.Errorf("layout table at %d holds an empty cell", t.Range.Start)
			}
			if err := validateRows(c.Rows); err != nil {
				return err
			}
			for _, nested := range c.Tables {
				if err := validateTable(doc, nested); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateList(l *document.ListEntity) error {
	templates := []*document.Document{l.Header, l.RowTemplate, l.Footer}
	for _, g := range l.Groups {
		templates = append(templates, g.Header, g.Footer)
	}
	for _, tpl := range templates {
		if tpl == nil {
			continue
		}
		if tpl.Layout == nil {
			tpl.Layout = &document.Layout{}
		}
		if err := Validate(tpl); err != nil {
			return err
		}
	}
	return nil
}
