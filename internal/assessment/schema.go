package assessment

import (
	"encoding/json"

	"github.com/abhisek/careerwiz/internal/llm"
)

// QuestionsSchema defines the JSON schema for LLM question generation
// responses.
var QuestionsSchema = &llm.Schema{
	Name:        "assessment-questions",
	Description: "A short multiple-choice skill assessment tailored to a user profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": MaxQuestions,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Unique question number starting at 1",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the user",
						},
						"options": map[string]any{
							"type":        "array",
							"minItems":    2,
							"items":       map[string]any{"type": "string"},
							"description": "Answer options, exactly one of which is correct",
						},
					},
					"required":             []any{"id", "text", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// SampleResponse is the default bank encoded as a QuestionsSchema reply.
// The mock provider serves it.
func SampleResponse() json.RawMessage {
	b, _ := json.Marshal(questionsOutput{Questions: DefaultQuestions()})
	return b
}
