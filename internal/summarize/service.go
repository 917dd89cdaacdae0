package summarize

import (
	"context"

	"go.uber.org/zap"

	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

// Service runs the full two-stage summarization over a chunked document.
type Service struct {
	reducer     *Reducer
	synthesizer *Synthesizer
}

func NewService(provider llm.Provider, log *zap.SugaredLogger) *Service {
	return &Service{
		reducer:     NewReducer(provider, log),
		synthesizer: NewSynthesizer(provider, log),
	}
}

// Summarize condenses chunk groups, then synthesizes the structured
// summary from the surviving digests.
func (s *Service) Summarize(ctx context.Context, chunks []string) (*Summary, error) {
	groupSummaries, _, err := s.reducer.Reduce(ctx, chunks)
	if err != nil {
		return nil, err
	}
	return s.synthesizer.Synthesize(ctx, groupSummaries)
}
