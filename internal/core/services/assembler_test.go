package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestRoutineAssembler_Assemble(t *testing.T) {
	assembler := NewRoutineAssembler()

	week := domain.WorkoutWeek{WeekNumber: 1, Title: "Week 1"}
	workout := domain.WorkoutDay{
		Title:       "Day 1",
		Description: "Push day",
		Exercises: []domain.Exercise{
			{
				Name:        "Bench Press",
				RestSeconds: intPtr(90),
				Sets: []domain.ExerciseSet{
					{
						Type:     domain.SetTypeNormal,
						Reps:     intPtr(8),
						RepRange: &domain.RepRange{Min: 8, Max: 12},
						Weight:   floatPtr(60),
					},
				},
			},
		},
	}
	table := domain.MatchTable{
		"bench press": {TemplateID: "bp-01"},
	}

	req, err := assembler.Assemble(workout, week, 42, table)

	require.NoError(t, err)
	assert.Equal(t, "Week 1 - Day 1", req.Routine.Title)
	require.NotNil(t, req.Routine.FolderID)
	assert.Equal(t, 42, *req.Routine.FolderID)
	assert.Equal(t, "Push day", req.Routine.Notes)

	require.Len(t, req.Routine.Exercises, 1)
	ex := req.Routine.Exercises[0]
	assert.Equal(t, "bp-01", ex.ExerciseTemplateID)
	assert.Nil(t, ex.SupersetID)
	require.NotNil(t, ex.RestSeconds)
	assert.Equal(t, 90, *ex.RestSeconds)

	require.Len(t, ex.Sets, 1)
	set := ex.Sets[0]
	assert.Equal(t, domain.SetTypeNormal, set.Type)
	assert.Equal(t, 8, *set.Reps)
	assert.Equal(t, 60.0, *set.WeightKg)
	assert.Nil(t, set.DistanceMeters)
	assert.Nil(t, set.DurationSeconds)
	assert.Nil(t, set.CustomMetric)
	require.NotNil(t, set.RepRange)
	assert.Equal(t, 8, *set.RepRange.Start)
	assert.Equal(t, 12, *set.RepRange.End)
}

func TestRoutineAssembler_DefaultsSetType(t *testing.T) {
	assembler := NewRoutineAssembler()

	workout := domain.WorkoutDay{
		Title: "Day 2",
		Exercises: []domain.Exercise{
			{Name: "Squat", Sets: []domain.ExerciseSet{{Reps: intPtr(5)}}},
		},
	}
	table := domain.MatchTable{"squat": {TemplateID: "sq-01"}}

	req, err := assembler.Assemble(workout, domain.WorkoutWeek{Title: "Week 2"}, 1, table)

	require.NoError(t, err)
	assert.Equal(t, domain.SetTypeNormal, req.Routine.Exercises[0].Sets[0].Type)
	assert.Nil(t, req.Routine.Exercises[0].Sets[0].RepRange)
}

func TestRoutineAssembler_UnmatchedExerciseFatal(t *testing.T) {
	assembler := NewRoutineAssembler()

	workout := domain.WorkoutDay{
		Title:     "Day 1",
		Exercises: []domain.Exercise{{Name: "Mystery Movement"}},
	}

	_, err := assembler.Assemble(workout, domain.WorkoutWeek{Title: "Week 1"}, 1, domain.MatchTable{})

	var unmatched *domain.UnmatchedExerciseError
	require.ErrorAs(t, err, &unmatched)
	assert.Equal(t, "Mystery Movement", unmatched.Name)
}

func TestRoutineAssembler_MatchLookupNormalizesName(t *testing.T) {
	assembler := NewRoutineAssembler()

	workout := domain.WorkoutDay{
		Title:     "Day 1",
		Exercises: []domain.Exercise{{Name: "  BENCH PRESS  "}},
	}
	table := domain.MatchTable{"bench press": {TemplateID: "bp-01"}}

	req, err := assembler.Assemble(workout, domain.WorkoutWeek{Title: "Week 1"}, 1, table)

	require.NoError(t, err)
	assert.Equal(t, "bp-01", req.Routine.Exercises[0].ExerciseTemplateID)
}
