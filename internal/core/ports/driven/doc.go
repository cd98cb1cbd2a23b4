// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports). The import core calls these to reach the
// extraction service, the tracker API, configuration, document ingestion,
// and the user-facing progress/confirmation surfaces.
//
// Implementations live under internal/adapters/driven and
// internal/adapters/driving (for the interactive surfaces).
package driven
