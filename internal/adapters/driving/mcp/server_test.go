package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

// mockImporter implements driving.Importer for handler tests.
type mockImporter struct {
	preview *domain.ImportPreview
	matches []domain.ExerciseMatch
	err     error

	matchName  string
	matchLimit int
}

func (m *mockImporter) Preview(context.Context, domain.SourceDocument) (*domain.ImportPreview, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.preview, nil
}

func (m *mockImporter) Import(context.Context, domain.SourceDocument) (*domain.ImportResult, error) {
	return nil, errors.New("not reachable from MCP tools")
}

func (m *mockImporter) MatchExercise(_ context.Context, name string, limit int) ([]domain.ExerciseMatch, error) {
	m.matchName = name
	m.matchLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.matches, nil
}

func newTestServer(t *testing.T, importer *mockImporter) *Server {
	t.Helper()
	server, err := NewServer(&Ports{
		Importer: importer,
		LoadDocument: func(string) (domain.SourceDocument, error) {
			return &domain.BinaryDocument{Name: "p.pdf"}, nil
		},
	})
	require.NoError(t, err)
	return server
}

func TestNewServer_ValidatesPorts(t *testing.T) {
	_, err := NewServer(&Ports{})
	require.ErrorIs(t, err, ErrMissingImporter)

	_, err = NewServer(&Ports{Importer: &mockImporter{}})
	require.ErrorIs(t, err, ErrMissingLoader)
}

func TestHandlePreview(t *testing.T) {
	importer := &mockImporter{
		preview: &domain.ImportPreview{
			ProgramTitle:  "Strength Block",
			WeekCount:     2,
			WorkoutCount:  4,
			ExerciseCount: 5,
			Matches: []domain.MatchRow{
				{Name: "bench press", TemplateTitle: "Bench Press (Barbell)", TemplateID: "bp-01", Confidence: 1.0},
				{Name: "squirt", TemplateTitle: "Squat", TemplateID: "sq-01", Confidence: 0.54, LowConfidence: true},
			},
			Unmatched:  []string{"mystery movement"},
			WasSampled: true,
		},
	}
	server := newTestServer(t, importer)

	_, output, err := server.handlePreview(context.Background(), nil, PreviewInput{Path: "p.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "Strength Block", output.ProgramTitle)
	assert.Equal(t, 4, output.WorkoutCount)
	require.Len(t, output.Matches, 2)
	assert.Equal(t, "bp-01", output.Matches[0].TemplateID)
	assert.True(t, output.Matches[1].LowConfidence)
	assert.Equal(t, []string{"mystery movement"}, output.Unmatched)
	assert.True(t, output.WasSampled)
}

func TestHandlePreview_ImporterError(t *testing.T) {
	server := newTestServer(t, &mockImporter{err: errors.New("extraction failed")})

	_, _, err := server.handlePreview(context.Background(), nil, PreviewInput{Path: "p.pdf"})

	require.Error(t, err)
}

func TestHandleMatch(t *testing.T) {
	importer := &mockImporter{
		matches: []domain.ExerciseMatch{
			{
				TemplateID: "bp-01",
				Confidence: 0.92,
				Template:   domain.MatchedTemplate{ID: "bp-01", Title: "Bench Press (Barbell)", Type: "barbell"},
			},
		},
	}
	server := newTestServer(t, importer)

	_, output, err := server.handleMatch(context.Background(), nil, MatchInput{Name: "bench press"})

	require.NoError(t, err)
	assert.Equal(t, "bench press", importer.matchName)
	assert.Equal(t, 5, importer.matchLimit, "default limit")
	require.Equal(t, 1, output.Count)
	assert.Equal(t, "Bench Press (Barbell)", output.Candidates[0].Title)
	assert.Equal(t, 0.92, output.Candidates[0].Confidence)
}

func TestHandleMatch_ExplicitLimit(t *testing.T) {
	importer := &mockImporter{}
	server := newTestServer(t, importer)

	_, _, err := server.handleMatch(context.Background(), nil, MatchInput{Name: "squat", Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, importer.matchLimit)
}
