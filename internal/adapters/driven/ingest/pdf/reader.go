// Package pdf reads PDF files as opaque binary documents. The bytes are
// passed to the extraction service untouched; no local parsing happens.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
)

var _ driven.DocumentReader = (*Reader)(nil)

// Reader handles .pdf files.
type Reader struct{}

// New creates a new PDF reader.
func New() *Reader {
	return &Reader{}
}

// Extensions returns the file extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{".pdf"}
}

// Read loads the file into a binary document.
func (r *Reader) Read(path string) (domain.SourceDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}
	return &domain.BinaryDocument{
		Name:     filepath.Base(path),
		MIMEType: "application/pdf",
		Content:  content,
	}, nil
}
