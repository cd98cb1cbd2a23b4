package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotConfigured indicates required API credentials are missing.
	// The setup command must be run before preview/import.
	ErrNotConfigured = errors.New("not configured")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedDocument indicates the input file type has no reader.
	ErrUnsupportedDocument = errors.New("unsupported document type")

	// ErrParseFailure indicates the extraction service's response could
	// not be parsed as a workout program.
	ErrParseFailure = errors.New("failed to parse extraction result")

	// ErrExtractionTimeout indicates the asynchronous extraction job did
	// not finish within the polling ceiling.
	ErrExtractionTimeout = errors.New("extraction timed out")

	// ErrImportCancelled indicates the user declined the confirmation
	// prompt before any mutating call was made.
	ErrImportCancelled = errors.New("import cancelled")
)

// PipelineError indicates the remote extraction pipeline reported failure.
type PipelineError struct {
	// Message is the upstream failure description.
	Message string
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	return fmt.Sprintf("extraction pipeline failed: %s", e.Message)
}

// APIError is a non-success HTTP response from a remote service.
type APIError struct {
	// Service names the remote service (e.g. "hevy", "airia").
	Service string

	// StatusCode is the HTTP status code.
	StatusCode int

	// Body is the response body, for diagnostics.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Service, e.StatusCode, e.Body)
}

// UnmatchedExerciseError indicates an exercise name with no entry in the
// match table reached the assembler. This only happens for names with zero
// fuzzy-search candidates and is fatal for the run.
type UnmatchedExerciseError struct {
	// Name is the offending exercise name.
	Name string
}

// Error implements the error interface.
func (e *UnmatchedExerciseError) Error() string {
	return fmt.Sprintf("no template found for exercise: %s", e.Name)
}
