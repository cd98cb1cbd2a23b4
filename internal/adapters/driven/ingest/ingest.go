// Package ingest selects a document reader by file extension.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/ingest/pdf"
	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/ingest/xlsx"
	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
)

// Readers returns all available document readers.
func Readers() []driven.DocumentReader {
	return []driven.DocumentReader{
		xlsx.New(),
		pdf.New(),
	}
}

// ReaderFor returns the reader responsible for the given path, matched
// by extension (case-insensitive).
func ReaderFor(path string) (driven.DocumentReader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, reader := range Readers() {
		for _, supported := range reader.Extensions() {
			if ext == supported {
				return reader, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: unsupported file type %q (expected %s)",
		domain.ErrUnsupportedDocument, ext, strings.Join(SupportedExtensions(), ", "))
}

// SupportedExtensions lists every extension a reader exists for.
func SupportedExtensions() []string {
	var exts []string
	for _, reader := range Readers() {
		exts = append(exts, reader.Extensions()...)
	}
	return exts
}
