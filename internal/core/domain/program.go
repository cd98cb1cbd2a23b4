package domain

// SetType classifies a single exercise set.
type SetType string

// Set types understood by both the extraction schema and the tracker API.
const (
	SetTypeWarmup  SetType = "warmup"
	SetTypeNormal  SetType = "normal"
	SetTypeFailure SetType = "failure"
	SetTypeDropset SetType = "dropset"
)

// WorkoutProgram is the root value extracted from a source document.
// It is read-only and lives for a single import run.
type WorkoutProgram struct {
	// Title is the program name, used to name the routine folder.
	Title string `json:"title"`

	// Description is optional free-text about the program.
	Description string `json:"description,omitempty"`

	// Weeks holds the program's weeks in program order.
	Weeks []WorkoutWeek `json:"weeks"`
}

// WorkoutWeek is one week of a program.
type WorkoutWeek struct {
	// WeekNumber is the 1-based position of the week.
	WeekNumber int `json:"weekNumber"`

	// Title is the human-readable week label (e.g. "Week 1").
	Title string `json:"title"`

	// Workouts holds the week's workout days in order.
	Workouts []WorkoutDay `json:"workouts"`
}

// WorkoutDay is a single trainable session within a week.
type WorkoutDay struct {
	// Title is the session label (e.g. "Day 1 - Push").
	Title string `json:"title"`

	// Description is optional free-text about the session.
	Description string `json:"description,omitempty"`

	// Exercises holds the session's exercises in order.
	Exercises []Exercise `json:"exercises"`
}

// Exercise is a free-text exercise as extracted from the document.
// The name is case- and whitespace-variable; matching resolves it to
// a canonical template.
type Exercise struct {
	// Name is the free-text exercise name from the source document.
	Name string `json:"name"`

	// Sets holds the exercise's sets in order. May be empty.
	Sets []ExerciseSet `json:"sets"`

	// Notes is optional free-text attached to the exercise.
	Notes *string `json:"notes,omitempty"`

	// RestSeconds is the optional rest period between sets.
	RestSeconds *int `json:"restSeconds,omitempty"`
}

// RepRange is an inclusive repetition range (e.g. "8-12 reps").
type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ExerciseSet is one set of an exercise. All measurements are optional;
// absent values map to null in the tracker wire format.
type ExerciseSet struct {
	// Type classifies the set. Empty defaults to SetTypeNormal downstream.
	Type SetType `json:"type"`

	// Reps is the target repetition count.
	Reps *int `json:"reps,omitempty"`

	// RepRange is the target repetition range, mutually informative with Reps.
	RepRange *RepRange `json:"repRange,omitempty"`

	// Weight is the load in kilograms.
	Weight *float64 `json:"weight,omitempty"`

	// Duration is the set duration in seconds.
	Duration *float64 `json:"duration,omitempty"`

	// Distance is the covered distance in meters.
	Distance *float64 `json:"distance,omitempty"`
}

// CountWorkouts returns the total number of workout days across all weeks.
func (p *WorkoutProgram) CountWorkouts() int {
	count := 0
	for i := range p.Weeks {
		count += len(p.Weeks[i].Workouts)
	}
	return count
}

// CountExercises returns the total number of exercise entries across the
// whole program, counting repeated names once per occurrence.
func (p *WorkoutProgram) CountExercises() int {
	count := 0
	for i := range p.Weeks {
		for j := range p.Weeks[i].Workouts {
			count += len(p.Weeks[i].Workouts[j].Exercises)
		}
	}
	return count
}
