package driven

import (
	"context"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

// TemplateCatalog fetches the tracker's exercise template catalog.
// The catalog is fetched once at the start of a run and treated as
// immutable for the run's duration.
type TemplateCatalog interface {
	// FetchAll returns every exercise template, concatenated across the
	// tracker's pages. A failed page aborts the whole fetch; there is no
	// partial-result recovery.
	FetchAll(ctx context.Context) ([]domain.ExerciseTemplate, error)
}

// TrackerService performs the mutating calls against the destination
// fitness-tracking service.
type TrackerService interface {
	// CreateRoutineFolder creates a named folder and returns it.
	CreateRoutineFolder(ctx context.Context, title string) (*domain.RoutineFolder, error)

	// CreateRoutine creates one routine inside a folder.
	CreateRoutine(ctx context.Context, req *domain.RoutineCreateRequest) error

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error
}
