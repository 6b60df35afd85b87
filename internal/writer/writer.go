// Package writer serializes converted reports.
package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roboco-io/doc2report/internal/report"
)

// Format is an output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", name)
	}
}

// Options controls serialization.
type Options struct {
	Format Format
	Pretty bool
}

// Marshal serializes r.
func Marshal(r *report.Report, opts Options) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report is nil")
	}
	tree := Build(r)

	switch opts.Format {
	case FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if opts.Pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(tree); err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return buf.Bytes(), nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// Write serializes r to w.
func Write(w io.Writer, r *report.Report, opts Options) error {
	data, err := Marshal(r, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
