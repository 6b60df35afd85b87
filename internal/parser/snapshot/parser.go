// Package snapshot loads document snapshots serialized as YAML or JSON.
package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/parser"
)

// Parser reads a snapshot file.
type Parser struct {
	path    string
	file    *os.File
	options parser.Options
}

// New opens the snapshot at path.
func New(path string, opts parser.Options) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	return &Parser{path: path, file: f, options: opts}, nil
}

// Parse implements the Parser interface.
func (p *Parser) Parse() (*document.Document, error) {
	data, err := io.ReadAll(p.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", p.path, err)
	}
	return Decode(data, p.options.Strict)
}

// Close releases resources.
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

var _ parser.Parser = (*Parser)(nil)
