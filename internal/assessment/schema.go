package assessment

import "github.com/Harshith-vm/ai-learning-platform/internal/extract"

// mcqSetSchema validates the rich question-set shape. Content rules
// beyond structure (placeholder text, duplicates, correct-option count)
// live in the guardrail pass.
var mcqSetSchema = &extract.Schema{
	Name: "mcq-set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mcqs": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"option":     map[string]any{"type": "string"},
									"is_correct": map[string]any{"type": "boolean"},
								},
								"required": []any{"option", "is_correct"},
							},
						},
						"difficulty":  map[string]any{"type": "string"},
						"explanation": map[string]any{"type": "string"},
						"concept_tags": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"question", "options", "difficulty", "explanation", "concept_tags"},
				},
			},
		},
		"required": []any{"mcqs"},
	},
}

// quickMCQSetSchema validates the strict five-question plain shape.
var quickMCQSetSchema = &extract.Schema{
	Name: "quick-mcq-set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mcqs": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"minItems": 4,
							"maxItems": 4,
							"items":    map[string]any{"type": "string"},
						},
						"correct_index": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
						"explanation": map[string]any{"type": "string"},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
					},
					"required": []any{"question", "options", "correct_index", "explanation", "difficulty"},
				},
			},
		},
		"required": []any{"mcqs"},
	},
}
