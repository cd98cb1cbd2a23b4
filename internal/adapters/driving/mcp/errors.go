// Package mcp provides an MCP (Model Context Protocol) server adapter for
// repsync. It lets AI assistants preview workout documents and resolve
// exercise names against the tracker's template catalog.
package mcp

import "errors"

// ErrMissingImporter is returned when the importer service is not provided.
var ErrMissingImporter = errors.New("mcp: importer service is required")

// ErrMissingLoader is returned when the document loader is not provided.
var ErrMissingLoader = errors.New("mcp: document loader is required")
