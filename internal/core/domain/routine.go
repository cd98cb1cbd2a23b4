package domain

// Wire types for the tracker's folder and routine creation endpoints.
// Absent measurements serialize as explicit nulls, which the API requires,
// so optional fields are pointers without omitempty.

// RoutineFolder is a named grouping of routines, one per imported program.
type RoutineFolder struct {
	ID        int    `json:"id"`
	Index     int    `json:"index"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RoutineFolderCreateRequest is the folder-create request body.
type RoutineFolderCreateRequest struct {
	RoutineFolder RoutineFolderPayload `json:"routine_folder"`
}

// RoutineFolderPayload is the folder-create inner payload.
type RoutineFolderPayload struct {
	Title string `json:"title"`
}

// RoutineCreateRequest is the routine-create request body.
type RoutineCreateRequest struct {
	Routine RoutinePayload `json:"routine"`
}

// RoutinePayload is one routine: a titled, ordered list of exercises
// placed in a folder.
type RoutinePayload struct {
	// Title is "<week title> - <workout title>".
	Title string `json:"title"`

	// FolderID places the routine in a folder; null leaves it unfiled.
	FolderID *int `json:"folder_id"`

	// Notes carries the workout description, or empty string.
	Notes string `json:"notes"`

	// Exercises holds the routine's exercises in workout order.
	Exercises []RoutineExercise `json:"exercises"`
}

// RoutineExercise is one exercise entry within a routine.
type RoutineExercise struct {
	// ExerciseTemplateID references the matched catalog template.
	ExerciseTemplateID string `json:"exercise_template_id"`

	// SupersetID is always null: superset grouping is not inferred from
	// source data.
	SupersetID *int `json:"superset_id"`

	// RestSeconds is the rest period between sets, or null.
	RestSeconds *int `json:"rest_seconds"`

	// Notes is the exercise note, or null.
	Notes *string `json:"notes"`

	// Sets holds the exercise's sets in order.
	Sets []RoutineSet `json:"sets"`
}

// RoutineSetRepRange is the wire form of a repetition range.
type RoutineSetRepRange struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

// RoutineSet is one set entry within a routine exercise.
type RoutineSet struct {
	Type            SetType             `json:"type"`
	WeightKg        *float64            `json:"weight_kg"`
	Reps            *int                `json:"reps"`
	DistanceMeters  *float64            `json:"distance_meters"`
	DurationSeconds *float64            `json:"duration_seconds"`
	CustomMetric    *float64            `json:"custom_metric"`
	RepRange        *RoutineSetRepRange `json:"rep_range"`
}
