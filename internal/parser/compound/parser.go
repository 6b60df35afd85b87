// Package compound loads document snapshots stored in an OLE compound-file
// container.
package compound

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/parser"
	"github.com/roboco-io/doc2report/internal/parser/snapshot"
)

// Parser reads the snapshot stream of a compound file.
type Parser struct {
	path    string
	file    *os.File
	doc     *mscfb.Reader
	options parser.Options
}

// New opens the compound file at path.
func New(path string, opts parser.Options) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open compound file: %w", err)
	}

	doc, err := mscfb.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read compound file: %w", err)
	}

	if opts.StreamName == "" {
		opts.StreamName = parser.DefaultStreamName
	}
	return &Parser{
		path:    path,
		file:    f,
		doc:     doc,
		options: opts,
	}, nil
}

// Parse implements the Parser interface.
func (p *Parser) Parse() (*document.Document, error) {
	data, err := p.readStream(p.options.StreamName)
	if err != nil {
		return nil, err
	}
	return snapshot.Decode(data, p.options.Strict)
}

// Streams lists the full paths of every entry in the container.
func (p *Parser) Streams() []string {
	var names []string
	for _, entry := range p.doc.File {
		names = append(names, entryPath(entry))
	}
	return names
}

// Close releases resources.
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// readStream reads a stream by name or by full path.
func (p *Parser) readStream(name string) ([]byte, error) {
	name = strings.TrimPrefix(name, "/")
	for _, entry := range p.doc.File {
		if entry.Name == name || entryPath(entry) == name {
			data, err := io.ReadAll(entry)
			if err != nil {
				return nil, fmt.Errorf("failed to read stream %s: %w", name, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", parser.ErrStreamNotFound, name)
}

func entryPath(entry *mscfb.File) string {
	return strings.Join(append(append([]string(nil), entry.Path...), entry.Name), "/")
}

var _ parser.Parser = (*Parser)(nil)
