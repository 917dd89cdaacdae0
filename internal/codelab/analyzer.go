// Package codelab analyzes learner-submitted source code: explanations,
// complexity and quality reports, improvement suggestions, and a
// refactored rendition. Every operation is stateless over code + language.
package codelab

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/extract"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

const analyzeMaxTokens = 2048

// ComplexityReport is the asymptotic analysis of one code submission.
type ComplexityReport struct {
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
	Justification   string `json:"justification"`
}

// QualityScore rates a submission 0-10 on each axis.
type QualityScore struct {
	Readability     int    `json:"readability"`
	Efficiency      int    `json:"efficiency"`
	Maintainability int    `json:"maintainability"`
	Overall         int    `json:"overall"`
	Summary         string `json:"summary"`
}

// Analyzer runs code analyses over one provider.
type Analyzer struct {
	provider llm.Provider
	log      *zap.SugaredLogger
}

func NewAnalyzer(provider llm.Provider, log *zap.SugaredLogger) *Analyzer {
	return &Analyzer{provider: provider, log: log}
}

// Explain describes what the code does in structured paragraphs.
func (a *Analyzer) Explain(ctx context.Context, code, language string) (string, error) {
	return a.plainText(ctx, "code-explain", buildExplainPrompt, code, language)
}

// ExplainStepwise walks through the code step by step.
func (a *Analyzer) ExplainStepwise(ctx context.Context, code, language string) (string, error) {
	return a.plainText(ctx, "code-stepwise", buildStepwisePrompt, code, language)
}

// Improvements suggests concrete quality, performance, and readability
// changes without rewriting the code.
func (a *Analyzer) Improvements(ctx context.Context, code, language string) (string, error) {
	return a.plainText(ctx, "code-improve", buildImprovementsPrompt, code, language)
}

// Complexity reports Big-O time and space with a short justification.
func (a *Analyzer) Complexity(ctx context.Context, code, language string) (*ComplexityReport, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apperr.Validation("code is empty")
	}

	ctx = llm.WithPurpose(ctx, "code-complexity")
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    codelabSystemPrompt,
		Prompt:    buildComplexityPrompt(code, language),
		MaxTokens: analyzeMaxTokens,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindOracle, err, "complexity analysis failed")
	}

	var report ComplexityReport
	if err := extract.DecodeObject(resp.Text, complexitySchema, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Quality scores the code 0-10 on readability, efficiency,
// maintainability, and overall.
func (a *Analyzer) Quality(ctx context.Context, code, language string) (*QualityScore, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apperr.Validation("code is empty")
	}

	ctx = llm.WithPurpose(ctx, "code-quality")
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    codelabSystemPrompt,
		Prompt:    buildQualityPrompt(code, language),
		MaxTokens: analyzeMaxTokens,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindOracle, err, "quality evaluation failed")
	}

	var score QualityScore
	if err := extract.DecodeObject(resp.Text, qualitySchema, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

// Refactor returns an improved rendition of the code with the same
// behavior. Markdown fences around the oracle's output are stripped.
func (a *Analyzer) Refactor(ctx context.Context, code, language string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", apperr.Validation("code is empty")
	}

	ctx = llm.WithPurpose(ctx, "code-refactor")
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    codelabSystemPrompt,
		Prompt:    buildRefactorPrompt(code, language),
		MaxTokens: analyzeMaxTokens,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindOracle, err, "refactoring failed")
	}

	refactored := stripFences(resp.Text)
	if refactored == "" {
		return "", apperr.New(apperr.KindParse, "refactored code is empty")
	}
	return refactored, nil
}

func (a *Analyzer) plainText(ctx context.Context, purpose string, build func(string, string) string, code, language string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", apperr.Validation("code is empty")
	}

	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    codelabSystemPrompt,
		Prompt:    build(code, language),
		MaxTokens: analyzeMaxTokens,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindOracle, err, "%s failed", purpose)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", apperr.New(apperr.KindParse, "%s returned no text", purpose)
	}
	return text, nil
}

// stripFences removes a surrounding markdown code block, including a
// language tag on the opening fence.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return text
	}
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[1 : len(lines)-1]
	} else {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
