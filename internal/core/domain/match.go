package domain

import "strings"

// MatchedTemplate is the subset of an ExerciseTemplate carried on a match.
type MatchedTemplate struct {
	// ID is the template identifier.
	ID string `json:"id"`

	// Title is the canonical exercise name.
	Title string `json:"title"`

	// Type is the equipment/measurement kind.
	Type string `json:"type"`
}

// ExerciseMatch links a free-text exercise to a catalog template with a
// confidence score. Confidence decreases monotonically with fuzzy-search
// distance: 1.0 is a perfect match, 0.0 the leniency floor.
type ExerciseMatch struct {
	// Exercise is the source exercise that was matched.
	Exercise Exercise `json:"exercise"`

	// TemplateID is the matched template's identifier.
	TemplateID string `json:"template_id"`

	// Confidence is the match quality in [0, 1], higher is better.
	Confidence float64 `json:"confidence"`

	// Template carries the matched template's display fields.
	Template MatchedTemplate `json:"template"`
}

// MatchTable maps normalized exercise names to their resolved match.
// It is built once per run; every occurrence of the same normalized name
// resolves to the same template.
type MatchTable map[string]ExerciseMatch

// Lookup returns the match for an exercise name, if any.
func (t MatchTable) Lookup(name string) (ExerciseMatch, bool) {
	m, ok := t[NormalizeExerciseName(name)]
	return m, ok
}

// NormalizeExerciseName lowercases and trims an exercise name. Normalized
// names are the match table's keys, so all case/whitespace variants of the
// same name share one matching decision.
func NormalizeExerciseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MatchRow is one line of an import preview's match table.
type MatchRow struct {
	// Name is the normalized source exercise name.
	Name string `json:"name"`

	// TemplateTitle is the matched template's canonical name.
	TemplateTitle string `json:"template_title"`

	// TemplateID is the matched template's identifier.
	TemplateID string `json:"template_id"`

	// Confidence is the match quality in [0, 1].
	Confidence float64 `json:"confidence"`

	// LowConfidence marks matches accepted through the best-effort
	// fallback rather than the primary confidence threshold.
	LowConfidence bool `json:"low_confidence"`
}

// ImportPreview summarises what an import would create, without having
// called any mutating endpoint.
type ImportPreview struct {
	// ProgramTitle is the extracted program's title.
	ProgramTitle string `json:"program_title"`

	// WeekCount is the number of weeks in the program.
	WeekCount int `json:"week_count"`

	// WorkoutCount is the total number of workout days.
	WorkoutCount int `json:"workout_count"`

	// ExerciseCount is the total number of exercise entries.
	ExerciseCount int `json:"exercise_count"`

	// Matches lists distinct exercise names with their resolved templates.
	Matches []MatchRow `json:"matches"`

	// Unmatched lists normalized names with zero fuzzy-search candidates.
	Unmatched []string `json:"unmatched,omitempty"`

	// WasSampled reports whether any source sheet was downsampled before
	// extraction.
	WasSampled bool `json:"was_sampled"`
}

// ImportResult reports the outcome of a completed (or aborted) import.
type ImportResult struct {
	// ProgramTitle is the imported program's title.
	ProgramTitle string `json:"program_title"`

	// FolderTitle is the created routine folder's title.
	FolderTitle string `json:"folder_title"`

	// RoutinesCreated counts routines created before completion or failure.
	// On mid-run failure this is the length of the created prefix.
	RoutinesCreated int `json:"routines_created"`

	// WeekCount is the number of weeks covered.
	WeekCount int `json:"week_count"`
}
