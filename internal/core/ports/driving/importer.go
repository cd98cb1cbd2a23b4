package driving

import (
	"context"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

// Importer runs the document-to-routines pipeline end to end.
type Importer interface {
	// Preview extracts and matches the document, then returns a summary
	// of what an import would create. No mutating endpoint is called.
	Preview(ctx context.Context, doc domain.SourceDocument) (*domain.ImportPreview, error)

	// Import extracts, matches, confirms, and creates one folder plus one
	// routine per (week, workout) pair in program order. On mid-run
	// failure the returned result still carries the count of routines
	// created before the failure.
	Import(ctx context.Context, doc domain.SourceDocument) (*domain.ImportResult, error)

	// MatchExercise resolves a single free-text exercise name against the
	// tracker's template catalog, best match first.
	MatchExercise(ctx context.Context, name string, limit int) ([]domain.ExerciseMatch, error)
}
