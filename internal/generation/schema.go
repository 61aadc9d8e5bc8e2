package generation

import "github.com/lshigami/studyaid/internal/llm"

// QuestionSetSchema is the shape every question generation response must take.
// Optional fields are omitted rather than null so providers that lack
// nullable types can still enforce it.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A list of study questions generated from a textbook chapter",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionText": map[string]any{
							"type":        "string",
							"description": "The question shown to the student",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The expected answer. For multiple choice, the letter (A-D) of the correct option.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for multiple choice. Omit for other types.",
						},
						"correctAnswerIndex": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option for multiple choice",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct, in one or two sentences",
						},
					},
					"required": []any{"questionText"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
