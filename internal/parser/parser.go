// Package parser provides interfaces and implementations for loading source
// documents.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/roboco-io/doc2report/internal/document"
)

var (
	// ErrUnknownFormat is returned when a file matches no supported format.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrStreamNotFound is returned when a container lacks the document stream.
	ErrStreamNotFound = errors.New("document stream not found")
)

// Parser is the interface for document loaders.
type Parser interface {
	// Parse reads the document and its layout.
	Parse() (*document.Document, error)

	// Close releases any resources held by the parser.
	Close() error
}

// Format represents a source document format.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON
	FormatCompound // OLE compound file holding a snapshot stream
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// DetectFormat detects the document format from the file path.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".cfb", ".d2r":
		return FormatCompound
	default:
		return FormatUnknown
	}
}

// DetectFormatFromReader detects the format by reading magic bytes.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, 64)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if n < 3 {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}
	buf = buf[:n]

	// OLE/CFBF magic number
	if n >= 4 && buf[0] == 0xD0 && buf[1] == 0xCF && buf[2] == 0x11 && buf[3] == 0xE0 {
		return FormatCompound, nil
	}

	head := bytes.TrimLeft(bytes.TrimPrefix(buf, []byte("\xEF\xBB\xBF")), " \t\r\n")
	switch {
	case bytes.HasPrefix(head, []byte("{")):
		return FormatJSON, nil
	case bytes.HasPrefix(head, []byte("---")), bytes.HasPrefix(head, []byte("%YAML")),
		bytes.HasPrefix(head, []byte("version:")):
		return FormatYAML, nil
	}

	return FormatUnknown, nil
}

// Options contains parser configuration options.
type Options struct {
	// StreamName is the compound-file stream holding the snapshot.
	StreamName string
	// Strict rejects snapshots with unknown keys.
	Strict bool
}

// DefaultStreamName is the stream read from compound containers.
const DefaultStreamName = "Document"

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		StreamName: DefaultStreamName,
	}
}
