package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driving"
	"github.com/custodia-labs/repsync-cli/internal/logger"
)

// Ensure Importer implements the interface.
var _ driving.Importer = (*Importer)(nil)

// Match acceptance policy. A best match is taken outright above the
// confidence threshold; below it the first of a wider candidate list is
// accepted regardless of confidence, so a name is only left unmatched when
// the search produced no candidates at all.
const (
	acceptConfidence = 0.6
	fallbackLimit    = 3
)

// Importer sequences the import pipeline: extraction, catalog fetch,
// matching, assembly, and creation. A single logical thread of control;
// nothing here runs concurrently.
type Importer struct {
	extractor driven.ExtractionService
	catalog   driven.TemplateCatalog
	tracker   driven.TrackerService
	confirmer driven.Confirmer
	progress  driven.ProgressReporter
	assembler *RoutineAssembler
}

// NewImporter creates an importer. The confirmer may be nil, in which case
// imports proceed without asking; the progress reporter may be nil, in
// which case progress is discarded.
func NewImporter(
	extractor driven.ExtractionService,
	catalog driven.TemplateCatalog,
	tracker driven.TrackerService,
	confirmer driven.Confirmer,
	progress driven.ProgressReporter,
) *Importer {
	if progress == nil {
		progress = noopProgress{}
	}
	return &Importer{
		extractor: extractor,
		catalog:   catalog,
		tracker:   tracker,
		confirmer: confirmer,
		progress:  progress,
		assembler: NewRoutineAssembler(),
	}
}

// Preview extracts and matches the document and summarises what an import
// would create. No mutating endpoint is called in preview mode.
func (s *Importer) Preview(ctx context.Context, doc domain.SourceDocument) (*domain.ImportPreview, error) {
	program, sampled, err := s.extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	matcher, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	table, rows, unmatched := s.buildMatchTable(program, matcher)
	logger.Debug("matched %d distinct exercise names (%d unmatched)", len(table), len(unmatched))

	wasSampled := false
	if tab, ok := sampled.(*domain.TabularDocument); ok {
		wasSampled = tab.WasSampled()
	}

	return &domain.ImportPreview{
		ProgramTitle:  program.Title,
		WeekCount:     len(program.Weeks),
		WorkoutCount:  program.CountWorkouts(),
		ExerciseCount: program.CountExercises(),
		Matches:       rows,
		Unmatched:     unmatched,
		WasSampled:    wasSampled,
	}, nil
}

// Import runs the full pipeline and creates one folder plus one routine
// per (week, workout) pair, sequentially and in program order. On a
// mid-run failure the returned result carries the count of routines
// created before the failure; nothing is rolled back.
func (s *Importer) Import(ctx context.Context, doc domain.SourceDocument) (*domain.ImportResult, error) {
	program, _, err := s.extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	matcher, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	table, _, unmatched := s.buildMatchTable(program, matcher)
	logger.Debug("matched %d distinct exercise names (%d unmatched)", len(table), len(unmatched))

	if s.confirmer != nil {
		ok, err := s.confirmer.Confirm(ctx, fmt.Sprintf("Import %q to Hevy?", program.Title))
		if err != nil {
			return nil, fmt.Errorf("confirm import: %w", err)
		}
		if !ok {
			return nil, domain.ErrImportCancelled
		}
	}

	s.progress.Start("Creating routine folder")
	folder, err := s.tracker.CreateRoutineFolder(ctx, program.Title)
	if err != nil {
		s.progress.Fail("Failed to create routine folder")
		return nil, fmt.Errorf("create routine folder: %w", err)
	}
	s.progress.Succeed(fmt.Sprintf("Created folder: %s", folder.Title))

	result := &domain.ImportResult{
		ProgramTitle: program.Title,
		FolderTitle:  folder.Title,
		WeekCount:    len(program.Weeks),
	}

	s.progress.Start("Creating routines")
	for i := range program.Weeks {
		week := program.Weeks[i]
		for j := range week.Workouts {
			workout := week.Workouts[j]
			s.progress.Update(fmt.Sprintf("Creating %s - %s...", week.Title, workout.Title))

			req, err := s.assembler.Assemble(workout, week, folder.ID, table)
			if err != nil {
				s.progress.Fail(fmt.Sprintf("Import failed after %d routines", result.RoutinesCreated))
				return result, err
			}
			if err := s.tracker.CreateRoutine(ctx, req); err != nil {
				s.progress.Fail(fmt.Sprintf("Import failed after %d routines", result.RoutinesCreated))
				return result, fmt.Errorf("create routine %q: %w", req.Routine.Title, err)
			}
			result.RoutinesCreated++
		}
	}
	s.progress.Succeed(fmt.Sprintf("Created %d routines in %d weeks", result.RoutinesCreated, result.WeekCount))

	return result, nil
}

// MatchExercise resolves one free-text name against the catalog.
func (s *Importer) MatchExercise(ctx context.Context, name string, limit int) ([]domain.ExerciseMatch, error) {
	matcher, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = fallbackLimit
	}
	return matcher.TopMatches(domain.Exercise{Name: name}, limit), nil
}

// extract downsamples the document and runs the extraction service.
func (s *Importer) extract(ctx context.Context, doc domain.SourceDocument) (*domain.WorkoutProgram, domain.SourceDocument, error) {
	sampled := domain.SampleDocument(doc)

	s.progress.Start("Extracting workout data")
	program, err := s.extractor.Extract(ctx, sampled)
	if err != nil {
		s.progress.Fail("Extraction failed")
		return nil, nil, fmt.Errorf("extract workout program: %w", err)
	}
	s.progress.Succeed(fmt.Sprintf("Extracted: %s", program.Title))
	return program, sampled, nil
}

// fetchCatalog snapshots the template catalog and wraps it in a matcher.
func (s *Importer) fetchCatalog(ctx context.Context) (*ExerciseMatcher, error) {
	s.progress.Start("Fetching exercise templates")
	templates, err := s.catalog.FetchAll(ctx)
	if err != nil {
		s.progress.Fail("Failed to fetch exercise templates")
		return nil, fmt.Errorf("fetch exercise templates: %w", err)
	}
	s.progress.Succeed(fmt.Sprintf("Found %d exercise templates", len(templates)))
	return NewExerciseMatcher(templates), nil
}

// buildMatchTable resolves every distinct normalized exercise name across
// the program, in first-seen order. Later occurrences of a name reuse the
// cached match, so there is at most one matching decision per distinct
// name per run.
func (s *Importer) buildMatchTable(
	program *domain.WorkoutProgram,
	matcher *ExerciseMatcher,
) (domain.MatchTable, []domain.MatchRow, []string) {
	table := make(domain.MatchTable)
	var rows []domain.MatchRow
	var unmatched []string
	seen := make(map[string]bool)

	for i := range program.Weeks {
		for j := range program.Weeks[i].Workouts {
			for _, exercise := range program.Weeks[i].Workouts[j].Exercises {
				key := domain.NormalizeExerciseName(exercise.Name)
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true

				match, low := s.resolve(exercise, matcher)
				if match == nil {
					unmatched = append(unmatched, key)
					continue
				}

				table[key] = *match
				rows = append(rows, domain.MatchRow{
					Name:          key,
					TemplateTitle: match.Template.Title,
					TemplateID:    match.TemplateID,
					Confidence:    match.Confidence,
					LowConfidence: low,
				})
			}
		}
	}

	return table, rows, unmatched
}

// resolve applies the acceptance policy to a single exercise. The bool
// result marks matches taken through the best-effort fallback.
func (s *Importer) resolve(exercise domain.Exercise, matcher *ExerciseMatcher) (*domain.ExerciseMatch, bool) {
	if best := matcher.BestMatch(exercise); best != nil && best.Confidence > acceptConfidence {
		return best, false
	}

	// Best-effort fallback: any candidate beats dropping the name. Only
	// names with zero candidates remain unmatched.
	candidates := matcher.TopMatches(exercise, fallbackLimit)
	if len(candidates) == 0 {
		return nil, false
	}
	logger.Debug("low-confidence match for %q: %s (%.2f)",
		exercise.Name, candidates[0].Template.Title, candidates[0].Confidence)
	return &candidates[0], true
}

// noopProgress discards progress updates.
type noopProgress struct{}

func (noopProgress) Start(string)   {}
func (noopProgress) Update(string)  {}
func (noopProgress) Succeed(string) {}
func (noopProgress) Fail(string)    {}
