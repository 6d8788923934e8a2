package report

import (
	"encoding/json"

	"github.com/abhisek/careerwiz/internal/llm"
)

func percent(desc string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"minimum":     0,
		"maximum":     100,
		"description": desc,
	}
}

// ReportSchema defines the JSON schema for LLM report evaluation responses.
var ReportSchema = &llm.Schema{
	Name:        "skill-report",
	Description: "A skill proficiency and career readiness report for an assessed user",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skillProficiency": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"overall": percent("Overall proficiency percentage"),
					"breakdown": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"skill": map[string]any{"type": "string"},
								"score": percent("Proficiency in this skill"),
							},
							"required":             []any{"skill", "score"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"overall", "breakdown"},
				"additionalProperties": false,
			},
			"careerReadiness": percent("How ready the user is for their target roles"),
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentences addressed to the user",
			},
			"recommendedSkills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"learningPaths": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "integer"},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					},
					"required":             []any{"id", "title", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"skillProficiency", "careerReadiness", "summary", "recommendedSkills", "learningPaths"},
		"additionalProperties": false,
	},
}

// SampleResponse is the placeholder report encoded as a ReportSchema reply.
func SampleResponse() json.RawMessage {
	b, _ := json.Marshal(Mock())
	return b
}
