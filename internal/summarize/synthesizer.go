package summarize

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/extract"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

// Synthesizer combines group digests into the final structured summary.
// One oracle call, labeled output format, no retry.
type Synthesizer struct {
	provider llm.Provider
	log      *zap.SugaredLogger
}

func NewSynthesizer(provider llm.Provider, log *zap.SugaredLogger) *Synthesizer {
	return &Synthesizer{provider: provider, log: log}
}

// Synthesize issues the reduce-stage oracle call and parses the labeled
// record. Missing summary text, key points, or concept tags reject the
// whole result. Tags with scores outside [1,10] are discarded before the
// emptiness check, matching the strict-rejection extraction contract.
func (s *Synthesizer) Synthesize(ctx context.Context, groupSummaries []string) (*Summary, error) {
	if len(groupSummaries) == 0 {
		return nil, apperr.Validation("no group summaries to synthesize")
	}

	ctx = llm.WithPurpose(ctx, "final-summary")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    synthesisSystemPrompt,
		Prompt:    buildSynthesisPrompt(groupSummaries),
		MaxTokens: synthesisMaxTokens,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindOracle, err, "synthesis call failed")
	}

	rec, err := extract.ParseLabeled(resp.Text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rec.Summary) == "" {
		return nil, apperr.New(apperr.KindSchema, "summary body missing from synthesis output")
	}
	if len(rec.KeyPoints) == 0 {
		return nil, apperr.New(apperr.KindSchema, "key points missing from synthesis output")
	}

	tags := conceptTags(rec.TagsLine)
	if len(tags) == 0 {
		return nil, apperr.New(apperr.KindSchema, "concept tags missing from synthesis output")
	}

	return &Summary{
		Title:          rec.Title,
		Summary:        rec.Summary,
		KeyPoints:      rec.KeyPoints,
		ConceptTags:    tags,
		ConceptHeatmap: buildHeatmap(tags),
	}, nil
}

// conceptTags converts parsed Name|Score pairs to tags, dropping scores
// outside [1,10].
func conceptTags(line string) []ConceptTag {
	var tags []ConceptTag
	for _, pair := range extract.Pairs(line) {
		if pair.Score < 1 || pair.Score > 10 {
			continue
		}
		tags = append(tags, ConceptTag{Name: pair.Name, Importance: pair.Score})
	}
	return tags
}
