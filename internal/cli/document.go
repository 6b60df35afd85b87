package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/parser"
	"github.com/roboco-io/doc2report/internal/parser/compound"
	"github.com/roboco-io/doc2report/internal/parser/snapshot"
)

// detectFormat uses the extension and falls back to magic bytes.
func detectFormat(path string) (parser.Format, error) {
	if format := parser.DetectFormat(path); format != parser.FormatUnknown {
		return format, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return parser.FormatUnknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	format, err := parser.DetectFormatFromReader(f)
	if err != nil {
		return parser.FormatUnknown, err
	}
	if format == parser.FormatUnknown {
		return format, fmt.Errorf("%w: %s", parser.ErrUnknownFormat, filepath.Ext(path))
	}
	return format, nil
}

func loadDocument(path string, opts parser.Options) (*document.Document, parser.Format, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, parser.FormatUnknown, fmt.Errorf("file not found: %s", path)
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, format, err
	}

	var p parser.Parser
	switch format {
	case parser.FormatYAML, parser.FormatJSON:
		p, err = snapshot.New(path, opts)
	case parser.FormatCompound:
		p, err = compound.New(path, opts)
	default:
		err = fmt.Errorf("%w: %s", parser.ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, format, err
	}
	defer p.Close()

	doc, err := p.Parse()
	if err != nil {
		return nil, format, err
	}
	return doc, format, nil
}
