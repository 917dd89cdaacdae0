package codelab

import "github.com/Harshith-vm/ai-learning-platform/internal/extract"

var complexitySchema = &extract.Schema{
	Name: "code-complexity",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"time_complexity":  map[string]any{"type": "string", "minLength": 1},
			"space_complexity": map[string]any{"type": "string", "minLength": 1},
			"justification":    map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"time_complexity", "space_complexity", "justification"},
	},
}

var qualitySchema = &extract.Schema{
	Name: "code-quality",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"readability":     scoreSchema(),
			"efficiency":      scoreSchema(),
			"maintainability": scoreSchema(),
			"overall":         scoreSchema(),
			"summary":         map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"readability", "efficiency", "maintainability", "overall", "summary"},
	},
}

func scoreSchema() map[string]any {
	return map[string]any{
		"type":    "integer",
		"minimum": 0,
		"maximum": 10,
	}
}
