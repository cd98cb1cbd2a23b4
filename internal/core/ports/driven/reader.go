package driven

import "github.com/custodia-labs/repsync-cli/internal/core/domain"

// DocumentReader reduces an input file into the typed source document
// representation. Readers are selected by file extension.
type DocumentReader interface {
	// Read loads and parses the file at path.
	Read(path string) (domain.SourceDocument, error)

	// Extensions returns the lower-case file extensions (including the
	// leading dot) this reader handles.
	Extensions() []string
}
