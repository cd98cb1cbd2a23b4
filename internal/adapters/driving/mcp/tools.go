package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PreviewInput is the input schema for the preview_program tool.
type PreviewInput struct {
	Path string `json:"path" jsonschema:"path to the workout document (.xlsx, .xlsm or .pdf)"`
}

// PreviewOutput is the output schema for the preview_program tool.
type PreviewOutput struct {
	ProgramTitle  string            `json:"program_title"`
	WeekCount     int               `json:"week_count"`
	WorkoutCount  int               `json:"workout_count"`
	ExerciseCount int               `json:"exercise_count"`
	Matches       []MatchRowOutput  `json:"matches"`
	Unmatched     []string          `json:"unmatched,omitempty"`
	WasSampled    bool              `json:"was_sampled"`
}

// MatchRowOutput is one resolved exercise name in a preview.
type MatchRowOutput struct {
	Exercise      string  `json:"exercise"`
	TemplateTitle string  `json:"template_title"`
	TemplateID    string  `json:"template_id"`
	Confidence    float64 `json:"confidence"`
	LowConfidence bool    `json:"low_confidence,omitempty"`
}

// MatchInput is the input schema for the match_exercise tool.
type MatchInput struct {
	Name  string `json:"name" jsonschema:"free-text exercise name to resolve"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of candidates to return (default 5)"`
}

// MatchOutput is the output schema for the match_exercise tool.
type MatchOutput struct {
	Candidates []CandidateOutput `json:"candidates"`
	Count      int               `json:"count"`
}

// CandidateOutput represents a single template candidate.
type CandidateOutput struct {
	TemplateID string  `json:"template_id"`
	Title      string  `json:"title"`
	Type       string  `json:"type,omitempty"`
	Confidence float64 `json:"confidence"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview_program",
		Description: "Extract a workout document and preview the routines an import would create, without creating anything",
	}, s.handlePreview)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "match_exercise",
		Description: "Resolve a free-text exercise name against the tracker's exercise template catalog",
	}, s.handleMatch)
}

// handlePreview handles the preview_program tool invocation.
func (s *Server) handlePreview(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PreviewInput,
) (*mcp.CallToolResult, PreviewOutput, error) {
	doc, err := s.ports.LoadDocument(input.Path)
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	preview, err := s.ports.Importer.Preview(ctx, doc)
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	output := PreviewOutput{
		ProgramTitle:  preview.ProgramTitle,
		WeekCount:     preview.WeekCount,
		WorkoutCount:  preview.WorkoutCount,
		ExerciseCount: preview.ExerciseCount,
		Matches:       make([]MatchRowOutput, len(preview.Matches)),
		Unmatched:     preview.Unmatched,
		WasSampled:    preview.WasSampled,
	}

	for i := range preview.Matches {
		output.Matches[i] = MatchRowOutput{
			Exercise:      preview.Matches[i].Name,
			TemplateTitle: preview.Matches[i].TemplateTitle,
			TemplateID:    preview.Matches[i].TemplateID,
			Confidence:    preview.Matches[i].Confidence,
			LowConfidence: preview.Matches[i].LowConfidence,
		}
	}

	return nil, output, nil
}

// handleMatch handles the match_exercise tool invocation.
func (s *Server) handleMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MatchInput,
) (*mcp.CallToolResult, MatchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 5
	}

	matches, err := s.ports.Importer.MatchExercise(ctx, input.Name, limit)
	if err != nil {
		return nil, MatchOutput{}, err
	}

	output := MatchOutput{
		Candidates: make([]CandidateOutput, len(matches)),
		Count:      len(matches),
	}

	for i := range matches {
		output.Candidates[i] = CandidateOutput{
			TemplateID: matches[i].TemplateID,
			Title:      matches[i].Template.Title,
			Type:       matches[i].Template.Type,
			Confidence: matches[i].Confidence,
		}
	}

	return nil, output, nil
}
