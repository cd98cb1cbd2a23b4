package driven

import (
	"context"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

// ExtractionService turns a source document into a structured workout
// program by way of a remote AI/document pipeline.
//
// Implementations may include:
//   - Airia (asynchronous pipeline execution with status polling)
//   - Anthropic (synchronous messages API)
type ExtractionService interface {
	// Extract submits the document and returns the extracted program.
	// Submission failures that look transient (overload, rate limiting,
	// upstream 502/503/529) are retried internally with backoff; all
	// other failures propagate unchanged.
	Extract(ctx context.Context, doc domain.SourceDocument) (*domain.WorkoutProgram, error)

	// Ping validates the service is reachable with a lightweight request.
	// Used by setup to verify credentials before persisting them.
	Ping(ctx context.Context) error

	// Name identifies the extraction backend (e.g. "airia").
	Name() string
}
