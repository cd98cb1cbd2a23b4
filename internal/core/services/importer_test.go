package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

// mockExtractor returns a canned program and records the submitted document.
type mockExtractor struct {
	program   *domain.WorkoutProgram
	err       error
	submitted domain.SourceDocument
}

func (m *mockExtractor) Extract(_ context.Context, doc domain.SourceDocument) (*domain.WorkoutProgram, error) {
	m.submitted = doc
	if m.err != nil {
		return nil, m.err
	}
	return m.program, nil
}

func (m *mockExtractor) Ping(context.Context) error { return nil }

func (m *mockExtractor) Name() string { return "mock" }

// mockCatalog serves a fixed template list.
type mockCatalog struct {
	templates []domain.ExerciseTemplate
	err       error
	calls     int
}

func (m *mockCatalog) FetchAll(context.Context) ([]domain.ExerciseTemplate, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.templates, nil
}

// mockTracker records mutating calls and can fail at a given routine.
type mockTracker struct {
	folderCalls int
	created     []*domain.RoutineCreateRequest
	failAt      int // 1-based index of the CreateRoutine call that fails
	failErr     error
}

func (m *mockTracker) CreateRoutineFolder(_ context.Context, title string) (*domain.RoutineFolder, error) {
	m.folderCalls++
	return &domain.RoutineFolder{ID: 7, Title: title}, nil
}

func (m *mockTracker) CreateRoutine(_ context.Context, req *domain.RoutineCreateRequest) error {
	if m.failAt > 0 && len(m.created)+1 == m.failAt {
		return m.failErr
	}
	m.created = append(m.created, req)
	return nil
}

func (m *mockTracker) Ping(context.Context) error { return nil }

// mockConfirmer answers every question the same way.
type mockConfirmer struct {
	answer    bool
	questions []string
}

func (m *mockConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	m.questions = append(m.questions, question)
	return m.answer, nil
}

func testProgram() *domain.WorkoutProgram {
	return &domain.WorkoutProgram{
		Title: "Strength Block",
		Weeks: []domain.WorkoutWeek{
			{
				WeekNumber: 1,
				Title:      "Week 1",
				Workouts: []domain.WorkoutDay{
					{Title: "Day 1", Exercises: []domain.Exercise{{Name: "Bench Press (Barbell)"}, {Name: "Squat"}}},
					{Title: "Day 2", Exercises: []domain.Exercise{{Name: "Deadlift"}}},
				},
			},
			{
				WeekNumber: 2,
				Title:      "Week 2",
				Workouts: []domain.WorkoutDay{
					{Title: "Day 1", Exercises: []domain.Exercise{{Name: "BENCH PRESS (barbell)"}}},
					{Title: "Day 2", Exercises: []domain.Exercise{{Name: "Squat"}}},
				},
			},
		},
	}
}

func TestImporter_PreviewMakesNoMutatingCalls(t *testing.T) {
	extractor := &mockExtractor{program: testProgram()}
	catalog := &mockCatalog{templates: testCatalog()}
	tracker := &mockTracker{}
	importer := NewImporter(extractor, catalog, tracker, nil, nil)

	preview, err := importer.Preview(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	require.NoError(t, err)
	assert.Zero(t, tracker.folderCalls)
	assert.Empty(t, tracker.created)

	assert.Equal(t, "Strength Block", preview.ProgramTitle)
	assert.Equal(t, 2, preview.WeekCount)
	assert.Equal(t, 4, preview.WorkoutCount)
	assert.Equal(t, 5, preview.ExerciseCount)
	assert.False(t, preview.WasSampled)

	// Three distinct normalized names across five occurrences.
	assert.Len(t, preview.Matches, 3)
	assert.Empty(t, preview.Unmatched)
}

func TestImporter_PreviewReportsSampling(t *testing.T) {
	rows := make([][]string, 250)
	for i := range rows {
		rows[i] = []string{"x"}
	}
	doc := &domain.TabularDocument{
		Name:   "big.xlsx",
		Sheets: []domain.Sheet{{Name: "Log", Rows: rows}},
	}

	extractor := &mockExtractor{program: testProgram()}
	importer := NewImporter(extractor, &mockCatalog{templates: testCatalog()}, &mockTracker{}, nil, nil)

	preview, err := importer.Preview(context.Background(), doc)

	require.NoError(t, err)
	assert.True(t, preview.WasSampled)

	// The extractor received the sampled copy, not the original.
	tab, ok := extractor.submitted.(*domain.TabularDocument)
	require.True(t, ok)
	assert.True(t, tab.WasSampled())
	assert.Len(t, doc.Sheets[0].Rows, 250)
}

func TestImporter_ImportCreatesRoutinesInProgramOrder(t *testing.T) {
	tracker := &mockTracker{}
	importer := NewImporter(
		&mockExtractor{program: testProgram()},
		&mockCatalog{templates: testCatalog()},
		tracker, nil, nil,
	)

	result, err := importer.Import(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "Strength Block", result.ProgramTitle)
	assert.Equal(t, "Strength Block", result.FolderTitle)
	assert.Equal(t, 4, result.RoutinesCreated)
	assert.Equal(t, 2, result.WeekCount)
	assert.Equal(t, 1, tracker.folderCalls)

	titles := make([]string, len(tracker.created))
	for i, req := range tracker.created {
		titles[i] = req.Routine.Title
		require.NotNil(t, req.Routine.FolderID)
		assert.Equal(t, 7, *req.Routine.FolderID)
	}
	assert.Equal(t, []string{
		"Week 1 - Day 1",
		"Week 1 - Day 2",
		"Week 2 - Day 1",
		"Week 2 - Day 2",
	}, titles)
}

func TestImporter_ImportMidRunFailureKeepsPrefix(t *testing.T) {
	tracker := &mockTracker{failAt: 3, failErr: errors.New("boom")}
	importer := NewImporter(
		&mockExtractor{program: testProgram()},
		&mockCatalog{templates: testCatalog()},
		tracker, nil, nil,
	)

	result, err := importer.Import(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.RoutinesCreated)
	assert.Len(t, tracker.created, 2)
	assert.Equal(t, "Week 1 - Day 1", tracker.created[0].Routine.Title)
	assert.Equal(t, "Week 1 - Day 2", tracker.created[1].Routine.Title)
}

func TestImporter_ImportDeclinedConfirmation(t *testing.T) {
	tracker := &mockTracker{}
	confirmer := &mockConfirmer{answer: false}
	importer := NewImporter(
		&mockExtractor{program: testProgram()},
		&mockCatalog{templates: testCatalog()},
		tracker, confirmer, nil,
	)

	result, err := importer.Import(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	require.ErrorIs(t, err, domain.ErrImportCancelled)
	assert.Nil(t, result)
	assert.Zero(t, tracker.folderCalls)
	require.Len(t, confirmer.questions, 1)
	assert.Contains(t, confirmer.questions[0], "Strength Block")
}

func TestImporter_ImportAcceptedConfirmation(t *testing.T) {
	tracker := &mockTracker{}
	importer := NewImporter(
		&mockExtractor{program: testProgram()},
		&mockCatalog{templates: testCatalog()},
		tracker, &mockConfirmer{answer: true}, nil,
	)

	result, err := importer.Import(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	require.NoError(t, err)
	assert.Equal(t, 4, result.RoutinesCreated)
}

func TestImporter_UnmatchedExerciseAbortsWorkout(t *testing.T) {
	program := &domain.WorkoutProgram{
		Title: "Odd Program",
		Weeks: []domain.WorkoutWeek{{
			WeekNumber: 1,
			Title:      "Week 1",
			Workouts: []domain.WorkoutDay{
				{Title: "Day 1", Exercises: []domain.Exercise{{Name: "zzzzzzzzzz"}}},
			},
		}},
	}
	tracker := &mockTracker{}
	importer := NewImporter(
		&mockExtractor{program: program},
		&mockCatalog{templates: testCatalog()},
		tracker, nil, nil,
	)

	result, err := importer.Import(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	var unmatched *domain.UnmatchedExerciseError
	require.ErrorAs(t, err, &unmatched)
	require.NotNil(t, result)
	assert.Zero(t, result.RoutinesCreated)
	assert.Empty(t, tracker.created)
}

func TestImporter_LowConfidenceFallbackMarked(t *testing.T) {
	program := &domain.WorkoutProgram{
		Title: "Fallback Program",
		Weeks: []domain.WorkoutWeek{{
			WeekNumber: 1,
			Title:      "Week 1",
			Workouts: []domain.WorkoutDay{
				{Title: "Day 1", Exercises: []domain.Exercise{{Name: "Squirt"}}},
			},
		}},
	}
	catalog := &mockCatalog{templates: []domain.ExerciseTemplate{
		{ID: "sq-01", Title: "Squat", PrimaryMuscleGroup: "quadriceps"},
	}}
	importer := NewImporter(&mockExtractor{program: program}, catalog, &mockTracker{}, nil, nil)

	preview, err := importer.Preview(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	require.NoError(t, err)
	require.Len(t, preview.Matches, 1)
	assert.Equal(t, "sq-01", preview.Matches[0].TemplateID)
	assert.True(t, preview.Matches[0].LowConfidence)
	assert.Less(t, preview.Matches[0].Confidence, 0.6)
}

func TestImporter_MatchTableIdempotentPerName(t *testing.T) {
	importer := NewImporter(
		&mockExtractor{program: testProgram()},
		&mockCatalog{templates: testCatalog()},
		&mockTracker{}, nil, nil,
	)

	preview, err := importer.Preview(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})
	require.NoError(t, err)

	// "Bench Press (Barbell)" appears twice with different casing but
	// resolves to a single row.
	var benchRows int
	for _, row := range preview.Matches {
		if row.Name == "bench press (barbell)" {
			benchRows++
			assert.Equal(t, "bp-01", row.TemplateID)
		}
	}
	assert.Equal(t, 1, benchRows)
}

func TestImporter_ExtractorErrorPropagates(t *testing.T) {
	wantErr := errors.New("pipeline exploded")
	importer := NewImporter(
		&mockExtractor{err: wantErr},
		&mockCatalog{templates: testCatalog()},
		&mockTracker{}, nil, nil,
	)

	_, err := importer.Preview(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	require.ErrorIs(t, err, wantErr)
}

func TestImporter_CatalogErrorPropagates(t *testing.T) {
	wantErr := errors.New("hevy down")
	importer := NewImporter(
		&mockExtractor{program: testProgram()},
		&mockCatalog{err: wantErr},
		&mockTracker{}, nil, nil,
	)

	_, err := importer.Import(context.Background(), &domain.BinaryDocument{Name: "p.pdf"})

	require.ErrorIs(t, err, wantErr)
}

func TestImporter_MatchExercise(t *testing.T) {
	importer := NewImporter(
		&mockExtractor{program: testProgram()},
		&mockCatalog{templates: testCatalog()},
		&mockTracker{}, nil, nil,
	)

	matches, err := importer.MatchExercise(context.Background(), "Squat", 3)

	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "sq-01", matches[0].TemplateID)
	assert.Equal(t, 1.0, matches[0].Confidence)
}
