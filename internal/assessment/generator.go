package assessment

import (
	"context"

	"go.uber.org/zap"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/extract"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

const generateMaxTokens = 4096

// Generator produces guardrail-validated question sets from a summary.
// One oracle call per set, no retry: a rejected set is surfaced as a
// guardrail error and the caller decides what to do.
type Generator struct {
	provider llm.Provider
	log      *zap.SugaredLogger
}

func NewGenerator(provider llm.Provider, log *zap.SugaredLogger) *Generator {
	return &Generator{provider: provider, log: log}
}

// Generate creates a 5-10 question set from summary. When override is
// non-empty every question must carry exactly that difficulty.
func (g *Generator) Generate(ctx context.Context, summary string, override Difficulty) (*Set, error) {
	if summary == "" {
		return nil, apperr.Validation("summary is empty")
	}

	ctx = llm.WithPurpose(ctx, "mcq-gen")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    mcqSystemPrompt,
		Prompt:    buildMCQPrompt(summary, override),
		MaxTokens: generateMaxTokens,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindOracle, err, "mcq generation failed")
	}

	var set Set
	if err := extract.DecodeObject(resp.Text, mcqSetSchema, &set); err != nil {
		return nil, err
	}

	if v := validateSet(&set, override); v != nil {
		g.log.Warnw("mcq set rejected", "violation", v.Guardrail, "mcq", v.MCQ, "reason", v.Message)
		return nil, apperr.Wrap(apperr.KindGuardrail, v, "generated question set rejected")
	}
	return &set, nil
}

// QuickGenerate creates the strict five-question plain set directly from
// text. Structure is enforced entirely by schema; the only extra rule is
// trimmed question text.
func (g *Generator) QuickGenerate(ctx context.Context, text string) (*QuickSet, error) {
	if text == "" {
		return nil, apperr.Validation("text is empty")
	}

	ctx = llm.WithPurpose(ctx, "quick-mcq-gen")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    mcqSystemPrompt,
		Prompt:    buildQuickMCQPrompt(text),
		MaxTokens: generateMaxTokens,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindOracle, err, "quick mcq generation failed")
	}

	var set QuickSet
	if err := extract.DecodeObject(resp.Text, quickMCQSetSchema, &set); err != nil {
		return nil, err
	}
	return &set, nil
}
