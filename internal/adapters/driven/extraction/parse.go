package extraction

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

// ParseProgram parses an extraction response body into a workout program.
// Models occasionally wrap the object in a markdown code fence despite the
// instruction; fences are stripped before parsing. Anything that does not
// decode into a titled program is a parse failure.
func ParseProgram(raw string) (*domain.WorkoutProgram, error) {
	text := stripCodeFence(strings.TrimSpace(raw))

	var program domain.WorkoutProgram
	if err := json.Unmarshal([]byte(text), &program); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrParseFailure, truncate(text, 200))
	}
	if program.Title == "" {
		return nil, fmt.Errorf("%w: missing program title", domain.ErrParseFailure)
	}
	return &program, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence, if present.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
