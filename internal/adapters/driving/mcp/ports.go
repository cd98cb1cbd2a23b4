package mcp

import (
	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driving"
)

// Ports aggregates everything the MCP server needs. This provides a
// single injection point for dependency injection.
type Ports struct {
	// Importer runs previews and exercise matching.
	Importer driving.Importer

	// LoadDocument reads a source document from a file path. The
	// composition root wires this to the ingest readers.
	LoadDocument func(path string) (domain.SourceDocument, error)
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Importer == nil {
		return ErrMissingImporter
	}
	if p.LoadDocument == nil {
		return ErrMissingLoader
	}
	return nil
}
