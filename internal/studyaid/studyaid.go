// Package studyaid generates revision material from a document summary:
// question/answer flashcards and single-sentence key points.
package studyaid

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/extract"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

const generateMaxTokens = 2048

// Flashcard is one question/answer revision card.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type flashcardSet struct {
	Flashcards []Flashcard `json:"flashcards"`
}

type keyPointSet struct {
	KeyPoints []string `json:"key_points"`
}

var flashcardSchema = &extract.Schema{
	Name: "flashcard-set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flashcards": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
					},
					"required": []any{"question", "answer"},
				},
			},
		},
		"required": []any{"flashcards"},
	},
}

var keyPointsSchema = &extract.Schema{
	Name: "key-points",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"key_points": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
		},
		"required": []any{"key_points"},
	},
}

const studyaidSystemPrompt = `You are a JSON-only API that produces learning revision material. You return only valid JSON, never markdown or commentary.`

func buildFlashcardPrompt(summary string) string {
	return fmt.Sprintf(`Using the following summary, generate 5-10 high-quality flashcards.

Each flashcard must:
- Ask a meaningful conceptual question
- Have a clear, concise answer
- Avoid repetition
- Avoid trivial facts
- Be suitable for learning revision

Return strictly JSON format with no additional text:

{
  "flashcards": [
    {"question": "Question text?", "answer": "Answer text"},
    {"question": "Question text?", "answer": "Answer text"}
  ]
}

Summary:
%s

Return ONLY the JSON object. No markdown, no code blocks, no explanations.`, summary)
}

func buildKeyPointsPrompt(summary string) string {
	return fmt.Sprintf(`From the following summary, extract 5-10 clear, non-redundant key points.

Each point must:
- Be one concise sentence
- Capture a core idea
- Avoid repetition
- Avoid filler phrases

Return strictly JSON format with no additional text:

{
  "key_points": ["point1", "point2", "point3"]
}

Summary:
%s

Return ONLY the JSON object. No markdown, no code blocks, no explanations.`, summary)
}

// Generator produces flashcards and key points over the same provider.
type Generator struct {
	provider llm.Provider
	log      *zap.SugaredLogger
}

func NewGenerator(provider llm.Provider, log *zap.SugaredLogger) *Generator {
	return &Generator{provider: provider, log: log}
}

// Flashcards generates 5-10 revision cards from summary.
func (g *Generator) Flashcards(ctx context.Context, summary string) ([]Flashcard, error) {
	if summary == "" {
		return nil, apperr.Validation("summary is empty")
	}

	ctx = llm.WithPurpose(ctx, "flashcard-gen")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    studyaidSystemPrompt,
		Prompt:    buildFlashcardPrompt(summary),
		MaxTokens: generateMaxTokens,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindOracle, err, "flashcard generation failed")
	}

	var set flashcardSet
	if err := extract.DecodeObject(resp.Text, flashcardSchema, &set); err != nil {
		return nil, err
	}
	return set.Flashcards, nil
}

// KeyPoints extracts 5-10 single-sentence points from summary.
func (g *Generator) KeyPoints(ctx context.Context, summary string) ([]string, error) {
	if summary == "" {
		return nil, apperr.Validation("summary is empty")
	}

	ctx = llm.WithPurpose(ctx, "key-points")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    studyaidSystemPrompt,
		Prompt:    buildKeyPointsPrompt(summary),
		MaxTokens: generateMaxTokens,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindOracle, err, "key points extraction failed")
	}

	var set keyPointSet
	if err := extract.DecodeObject(resp.Text, keyPointsSchema, &set); err != nil {
		return nil, err
	}
	return set.KeyPoints, nil
}
