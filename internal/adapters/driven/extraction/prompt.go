package extraction

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

// promptTemplate is the fixed instruction sent with every extraction
// request. It pins the exact target JSON schema so responses parse
// directly into domain.WorkoutProgram.
const promptTemplate = `Extract workout information from this document and return it as a structured JSON object.

The document contains a workout program. Please analyze it and extract:
1. Program title and description
2. Weekly structure
3. Each workout day with exercises
4. Sets, reps, and any other exercise details

Return the data in this exact JSON format:
{
  "title": "Program Name",
  "description": "Program description if available",
  "weeks": [
    {
      "weekNumber": 1,
      "title": "Week 1",
      "workouts": [
        {
          "title": "Day 1 - Push",
          "description": "Optional workout description",
          "exercises": [
            {
              "name": "Bench Press",
              "sets": [
                {
                  "type": "normal",
                  "reps": 8,
                  "repRange": { "min": 8, "max": 12 }
                }
              ],
              "notes": "Optional exercise notes",
              "restSeconds": 90
            }
          ]
        }
      ]
    }
  ]
}

Important notes:
- Use "normal" for set type unless specified as warmup/failure/dropset
- Include rep ranges if specified (e.g., "8-12 reps")
- Extract rest periods if mentioned
- Group exercises by workout day
- Maintain the week structure
- Be consistent with exercise names (use standard naming)

Return ONLY the JSON object, no other text.

Document data:
%s`

// tabularPayload mirrors the serialization the extraction pipelines were
// tuned on: a sheet map plus the workbook's sheet order.
type tabularPayload struct {
	Sheets     map[string]domain.Sheet `json:"sheets"`
	SheetNames []string                `json:"sheetNames"`
}

// binaryPayload carries an opaque document inline.
type binaryPayload struct {
	FileName string `json:"fileName"`
	MIMEType string `json:"mimeType"`
	Content  string `json:"content"` // base64
}

// BuildPrompt renders the instruction prompt for a (possibly sampled)
// source document. Tabular documents are re-sampled defensively; sampling
// is idempotent, so an already-sampled document passes through unchanged.
func BuildPrompt(doc domain.SourceDocument) (string, error) {
	var payload any

	switch d := domain.SampleDocument(doc).(type) {
	case *domain.TabularDocument:
		p := tabularPayload{
			Sheets:     make(map[string]domain.Sheet, len(d.Sheets)),
			SheetNames: d.SheetNames(),
		}
		for i := range d.Sheets {
			p.Sheets[d.Sheets[i].Name] = d.Sheets[i]
		}
		payload = p
	case *domain.BinaryDocument:
		payload = binaryPayload{
			FileName: d.Name,
			MIMEType: d.MIMEType,
			Content:  base64.StdEncoding.EncodeToString(d.Content),
		}
	default:
		return "", fmt.Errorf("%w: %T", domain.ErrUnsupportedDocument, doc)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}

	return fmt.Sprintf(promptTemplate, data), nil
}
