package domain

// ExerciseTemplate is the tracker's canonical exercise definition.
// The template catalog is fetched once per run and immutable thereafter.
type ExerciseTemplate struct {
	// ID is the tracker-assigned template identifier.
	ID string `json:"id"`

	// Title is the canonical exercise name.
	Title string `json:"title"`

	// Type is the equipment/measurement kind (e.g. "barbell", "duration").
	Type string `json:"type"`

	// PrimaryMuscleGroup is the main muscle group trained.
	PrimaryMuscleGroup string `json:"primary_muscle_group"`

	// SecondaryMuscleGroups lists additional muscle groups trained.
	SecondaryMuscleGroups []string `json:"secondary_muscle_groups"`

	// IsCustom reports whether the template is user-defined.
	IsCustom bool `json:"is_custom"`
}
