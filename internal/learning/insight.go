package learning

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harshith-vm/ai-learning-platform/internal/assessment"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

const insightMaxTokens = 512

const insightSystemPrompt = `You are a learning coach writing short progress notes. Plain text only, no markdown.`

func buildInsightPrompt(preScore, postScore float64, perf *assessment.ConceptPerformance) string {
	weak, strong := "None identified", "None identified"
	if perf != nil {
		if len(perf.Weak) > 0 {
			weak = strings.Join(perf.Weak, ", ")
		}
		if len(perf.Strong) > 0 {
			strong = strings.Join(perf.Strong, ", ")
		}
	}

	return fmt.Sprintf(`Generate a short professional learning insight based on:

Pre-test score: %.1f%%
Post-test score: %.1f%%
Weak concepts: %s
Strong concepts: %s

Explain improvement trajectory in 3-4 sentences.
Be encouraging but honest.
No markdown.
Plain text only.`, preScore, postScore, weak, strong)
}

// learningInsight asks the oracle for a trajectory note. An oracle
// failure never fails the post-test submission: the insight degrades to
// a templated sentence keyed on the sign of the score delta.
func (e *Engine) learningInsight(ctx context.Context, preScore, postScore float64, perf *assessment.ConceptPerformance) string {
	ctx = llm.WithPurpose(ctx, "learning-insight")
	resp, err := e.provider.Generate(ctx, llm.Request{
		System:    insightSystemPrompt,
		Prompt:    buildInsightPrompt(preScore, postScore, perf),
		MaxTokens: insightMaxTokens,
	})
	if err == nil {
		if insight := strings.TrimSpace(resp.Text); insight != "" {
			return insight
		}
	} else {
		e.log.Warnw("insight generation failed, using fallback", "error", err)
	}
	return fallbackInsight(preScore, postScore)
}

func fallbackInsight(preScore, postScore float64) string {
	delta := postScore - preScore
	switch {
	case delta > 0:
		return fmt.Sprintf("You improved from %.1f%% to %.1f%%, showing %.1f%% growth. Continue focusing on your weak areas to further strengthen your understanding.", preScore, postScore, delta)
	case delta < 0:
		return fmt.Sprintf("Your score decreased from %.1f%% to %.1f%%. Review the material and focus on the concepts you found challenging.", preScore, postScore)
	default:
		return fmt.Sprintf("Your score remained at %.1f%%. Consider reviewing the material more thoroughly to improve your understanding.", preScore)
	}
}
