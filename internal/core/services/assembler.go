package services

import "github.com/custodia-labs/repsync-cli/internal/core/domain"

// RoutineAssembler folds a matched workout into the tracker's
// routine-creation wire format. Assembly is deterministic: the same
// inputs always produce the same request.
type RoutineAssembler struct{}

// NewRoutineAssembler creates an assembler.
func NewRoutineAssembler() *RoutineAssembler {
	return &RoutineAssembler{}
}

// Assemble builds the routine-create request for one (week, workout) pair.
// Every exercise must have an entry in the match table; a missing entry
// yields an UnmatchedExerciseError, which is fatal for the workout rather
// than recoverable by substitution.
func (a *RoutineAssembler) Assemble(
	workout domain.WorkoutDay,
	week domain.WorkoutWeek,
	folderID int,
	table domain.MatchTable,
) (*domain.RoutineCreateRequest, error) {
	exercises := make([]domain.RoutineExercise, 0, len(workout.Exercises))

	for i := range workout.Exercises {
		ex := workout.Exercises[i]
		match, ok := table.Lookup(ex.Name)
		if !ok {
			return nil, &domain.UnmatchedExerciseError{Name: ex.Name}
		}

		sets := make([]domain.RoutineSet, 0, len(ex.Sets))
		for j := range ex.Sets {
			sets = append(sets, assembleSet(ex.Sets[j]))
		}

		exercises = append(exercises, domain.RoutineExercise{
			ExerciseTemplateID: match.TemplateID,
			SupersetID:         nil, // superset grouping is never inferred
			RestSeconds:        ex.RestSeconds,
			Notes:              ex.Notes,
			Sets:               sets,
		})
	}

	fid := folderID
	return &domain.RoutineCreateRequest{
		Routine: domain.RoutinePayload{
			Title:     week.Title + " - " + workout.Title,
			FolderID:  &fid,
			Notes:     workout.Description,
			Exercises: exercises,
		},
	}, nil
}

// assembleSet maps one extracted set onto the wire format, applying the
// defaulting rules for absent fields.
func assembleSet(set domain.ExerciseSet) domain.RoutineSet {
	setType := set.Type
	if setType == "" {
		setType = domain.SetTypeNormal
	}

	var repRange *domain.RoutineSetRepRange
	if set.RepRange != nil {
		start, end := set.RepRange.Min, set.RepRange.Max
		repRange = &domain.RoutineSetRepRange{Start: &start, End: &end}
	}

	return domain.RoutineSet{
		Type:            setType,
		WeightKg:        set.Weight,
		Reps:            set.Reps,
		DistanceMeters:  set.Distance,
		DurationSeconds: set.Duration,
		CustomMetric:    nil, // not modeled upstream
		RepRange:        repRange,
	}
}
