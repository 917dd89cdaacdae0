package summarize

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestPartition(t *testing.T) {
	groups := partition([]string{"a", "b", "c", "d", "e"}, 4)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0]) != 4 || len(groups[1]) != 1 {
		t.Errorf("group sizes: %d, %d", len(groups[0]), len(groups[1]))
	}
}

func TestReduce_AllGroupsSucceed(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Text: "First digest."},
		llm.MockResponse{Text: "Second digest."},
	)
	r := NewReducer(provider, testLogger())
	// Serialize so FIFO responses map to groups in order.
	r.parallelism = 1

	chunks := make([]string, 8) // two groups of four
	for i := range chunks {
		chunks[i] = "chunk text"
	}

	summaries, results, err := r.Reduce(context.Background(), chunks)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0] != "First digest." || summaries[1] != "Second digest." {
		t.Errorf("order not preserved: %v", summaries)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 group results, got %d", len(results))
	}
}

func TestReduce_PartialFailureSkipsGroup(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Text: "Only survivor."},
	)
	r := NewReducer(provider, testLogger())
	r.parallelism = 1

	chunks := make([]string, 8)
	for i := range chunks {
		chunks[i] = "chunk"
	}

	summaries, results, err := r.Reduce(context.Background(), chunks)
	if err != nil {
		t.Fatalf("partial failure must not fail the reduction: %v", err)
	}
	if len(summaries) != 1 || summaries[0] != "Only survivor." {
		t.Errorf("summaries = %v", summaries)
	}
	if results[0].Err == nil {
		t.Error("first group should record its failure")
	}
}

func TestReduce_AllGroupsFailIsHardError(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	r := NewReducer(provider, testLogger())
	r.parallelism = 1

	chunks := make([]string, 8)
	for i := range chunks {
		chunks[i] = "chunk"
	}

	_, _, err := r.Reduce(context.Background(), chunks)
	if !apperr.Is(err, apperr.KindOracle) {
		t.Errorf("expected oracle error, got %v", err)
	}
}

func TestReduce_NoChunks(t *testing.T) {
	r := NewReducer(llm.NewMockProvider(), testLogger())
	_, _, err := r.Reduce(context.Background(), nil)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestReduce_GroupPromptContainsChunkText(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "Digest."})
	r := NewReducer(provider, testLogger())

	_, _, err := r.Reduce(context.Background(), []string{"unmistakable marker text"})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if !strings.Contains(provider.Calls[0].Prompt, "unmistakable marker text") {
		t.Error("group prompt missing chunk text")
	}
}
