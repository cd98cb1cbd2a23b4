package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExerciseName(t *testing.T) {
	assert.Equal(t, "bench press", NormalizeExerciseName("Bench Press"))
	assert.Equal(t, "bench press", NormalizeExerciseName("  BENCH PRESS  "))
	assert.Equal(t, "", NormalizeExerciseName("   "))
}

func TestMatchTable_Lookup(t *testing.T) {
	table := MatchTable{
		"bench press": {TemplateID: "tmpl-1"},
	}

	match, ok := table.Lookup("  Bench Press ")
	require.True(t, ok)
	assert.Equal(t, "tmpl-1", match.TemplateID)

	_, ok = table.Lookup("squat")
	assert.False(t, ok)
}
