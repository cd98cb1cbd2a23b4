package services

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

// Field weights for the fuzzy search. The template title dominates; muscle
// groups act as weak secondary signals so that "chest press" style names
// still find plausible candidates.
const (
	titleWeight           = 0.7
	primaryMuscleWeight   = 0.2
	secondaryMuscleWeight = 0.1

	// scoreTolerance is the leniency threshold. Fields scoring above it do
	// not count as matched; templates with no matched field are not
	// candidates at all.
	scoreTolerance = 0.4

	// maxLocation bounds how far into a field a partial match may sit
	// before it stops earning proximity credit.
	maxLocation = 100

	// epsilonScore stands in for a zero field score inside the geometric
	// combination, where a literal zero would erase the other fields.
	epsilonScore = 1e-9
)

// ExerciseMatcher fuzzy-matches free-text exercise names against the
// tracker's template catalog. The catalog is captured at construction and
// never refreshed; a matcher lives for one import run.
type ExerciseMatcher struct {
	templates []domain.ExerciseTemplate
}

// NewExerciseMatcher creates a matcher over the given catalog snapshot.
func NewExerciseMatcher(templates []domain.ExerciseTemplate) *ExerciseMatcher {
	return &ExerciseMatcher{templates: templates}
}

// Templates returns the catalog snapshot the matcher searches.
func (m *ExerciseMatcher) Templates() []domain.ExerciseTemplate {
	return m.templates
}

// BestMatch returns the highest-confidence match for the exercise, or nil
// when no template clears the leniency threshold on any field.
func (m *ExerciseMatcher) BestMatch(exercise domain.Exercise) *domain.ExerciseMatch {
	matches := m.TopMatches(exercise, 1)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// TopMatches returns up to limit candidate matches, best first. Confidence
// is 1 minus the normalized search score, so it is always within [0, 1]
// and decreases monotonically with distance.
func (m *ExerciseMatcher) TopMatches(exercise domain.Exercise, limit int) []domain.ExerciseMatch {
	query := domain.NormalizeExerciseName(exercise.Name)
	if query == "" {
		return nil
	}

	var matches []domain.ExerciseMatch
	for i := range m.templates {
		t := &m.templates[i]
		score, ok := m.scoreTemplate(query, t)
		if !ok {
			continue
		}
		matches = append(matches, domain.ExerciseMatch{
			Exercise:   exercise,
			TemplateID: t.ID,
			Confidence: 1 - score,
			Template: domain.MatchedTemplate{
				ID:    t.ID,
				Title: t.Title,
				Type:  t.Type,
			},
		})
	}

	// Stable sort keeps catalog order as the tie-break, so results are
	// deterministic across runs.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// scoreTemplate computes the weighted search score for one template.
// The bool result reports whether the template is a candidate at all.
func (m *ExerciseMatcher) scoreTemplate(query string, t *domain.ExerciseTemplate) (float64, bool) {
	titleScore := fieldScore(query, t.Title)

	// An exact title match is a perfect result regardless of how the
	// muscle-group fields score.
	if titleScore == 0 {
		return 0, true
	}

	primaryScore := fieldScore(query, t.PrimaryMuscleGroup)
	secondaryScore := 1.0
	for _, g := range t.SecondaryMuscleGroups {
		if s := fieldScore(query, g); s < secondaryScore {
			secondaryScore = s
		}
	}

	if titleScore > scoreTolerance && primaryScore > scoreTolerance && secondaryScore > scoreTolerance {
		return 1, false
	}

	// Weighted geometric combination: a strong field pulls the whole
	// score down even when the other fields are far off.
	total := math.Pow(clampScore(titleScore), titleWeight) *
		math.Pow(clampScore(primaryScore), primaryMuscleWeight) *
		math.Pow(clampScore(secondaryScore), secondaryMuscleWeight)
	if total > 1 {
		total = 1
	}
	return total, true
}

// fieldScore computes the normalized distance between the query and one
// template field. 0 is a perfect match, 1 no resemblance.
func fieldScore(query, field string) float64 {
	f := domain.NormalizeExerciseName(field)
	if f == "" {
		return 1
	}
	if query == f {
		return 0
	}

	// Literal substring: score by coverage and by how far into the field
	// the match sits, capped at maxLocation.
	if idx := strings.Index(f, query); idx >= 0 {
		loc := float64(idx)
		if loc > maxLocation {
			loc = maxLocation
		}
		coverage := float64(len(query)) / float64(len(f))
		return (1-coverage)*0.3 + (loc/maxLocation)*0.1
	}

	longer := len(query)
	if len(f) > longer {
		longer = len(f)
	}
	direct := float64(levenshtein.ComputeDistance(query, f)) / float64(longer)

	// Token reordering ("Press, Bench" vs "bench press") should cost far
	// less than the letter edits a raw distance would charge.
	reordered := float64(levenshtein.ComputeDistance(sortedTokens(query), sortedTokens(f))) / float64(longer)
	if reordered < direct {
		return reordered
	}
	return direct
}

// sortedTokens normalizes token order within a name.
func sortedTokens(s string) string {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == ',' || r == '(' || r == ')'
	})
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func clampScore(s float64) float64 {
	if s < epsilonScore {
		return epsilonScore
	}
	return s
}
