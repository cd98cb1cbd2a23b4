package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

func testCatalog() []domain.ExerciseTemplate {
	return []domain.ExerciseTemplate{
		{
			ID:                    "bp-01",
			Title:                 "Bench Press (Barbell)",
			Type:                  "barbell",
			PrimaryMuscleGroup:    "chest",
			SecondaryMuscleGroups: []string{"triceps", "shoulders"},
		},
		{
			ID:                 "bp-02",
			Title:              "Bench Press (Dumbbell)",
			Type:               "dumbbell",
			PrimaryMuscleGroup: "chest",
		},
		{
			ID:                 "sq-01",
			Title:              "Squat",
			Type:               "barbell",
			PrimaryMuscleGroup: "quadriceps",
		},
		{
			ID:                 "dl-01",
			Title:              "Deadlift",
			Type:               "barbell",
			PrimaryMuscleGroup: "lower_back",
		},
	}
}

func TestExerciseMatcher_ExactTitleIsPerfect(t *testing.T) {
	matcher := NewExerciseMatcher(testCatalog())

	best := matcher.BestMatch(domain.Exercise{Name: "squat"})

	require.NotNil(t, best)
	assert.Equal(t, "sq-01", best.TemplateID)
	assert.Equal(t, 1.0, best.Confidence)
}

func TestExerciseMatcher_ExactTitleIgnoresCaseAndWhitespace(t *testing.T) {
	matcher := NewExerciseMatcher(testCatalog())

	best := matcher.BestMatch(domain.Exercise{Name: "  BENCH PRESS (BARBELL)  "})

	require.NotNil(t, best)
	assert.Equal(t, "bp-01", best.TemplateID)
	assert.Equal(t, 1.0, best.Confidence)
}

func TestExerciseMatcher_ConfidenceBounds(t *testing.T) {
	matcher := NewExerciseMatcher(testCatalog())

	names := []string{"bench", "squats", "dead lift", "chest press", "press bench"}
	for _, name := range names {
		for _, match := range matcher.TopMatches(domain.Exercise{Name: name}, 0) {
			assert.GreaterOrEqual(t, match.Confidence, 0.0, "name %q", name)
			assert.LessOrEqual(t, match.Confidence, 1.0, "name %q", name)
		}
	}
}

func TestExerciseMatcher_ResultsSortedByConfidence(t *testing.T) {
	matcher := NewExerciseMatcher(testCatalog())

	matches := matcher.TopMatches(domain.Exercise{Name: "bench press"}, 0)

	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
}

func TestExerciseMatcher_ReorderedTokens(t *testing.T) {
	matcher := NewExerciseMatcher(testCatalog())

	best := matcher.BestMatch(domain.Exercise{Name: "Press, Bench (Barbell)"})

	require.NotNil(t, best)
	assert.Equal(t, "bp-01", best.TemplateID)
}

func TestExerciseMatcher_NoCandidates(t *testing.T) {
	matcher := NewExerciseMatcher(testCatalog())

	assert.Nil(t, matcher.BestMatch(domain.Exercise{Name: "zzzzzzzzzz"}))
	assert.Empty(t, matcher.TopMatches(domain.Exercise{Name: "zzzzzzzzzz"}, 3))
}

func TestExerciseMatcher_EmptyQueryAndCatalog(t *testing.T) {
	assert.Nil(t, NewExerciseMatcher(testCatalog()).BestMatch(domain.Exercise{Name: "   "}))
	assert.Nil(t, NewExerciseMatcher(nil).BestMatch(domain.Exercise{Name: "squat"}))
}

func TestExerciseMatcher_LimitTruncates(t *testing.T) {
	matcher := NewExerciseMatcher(testCatalog())

	matches := matcher.TopMatches(domain.Exercise{Name: "bench press"}, 1)

	assert.Len(t, matches, 1)
}

func TestExerciseMatcher_Deterministic(t *testing.T) {
	matcher := NewExerciseMatcher(testCatalog())
	exercise := domain.Exercise{Name: "bench pres"}

	first := matcher.TopMatches(exercise, 3)
	second := matcher.TopMatches(exercise, 3)

	assert.Equal(t, first, second)
}
