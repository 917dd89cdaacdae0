package learning

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/assessment"
	"github.com/Harshith-vm/ai-learning-platform/internal/document"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

const labeledSummary = `TITLE: Test Document
SUMMARY: The document covers several related ideas. It explains them in order. Each idea builds on the last. Examples ground the abstractions. The conclusion ties them together. Practice cements the knowledge.
KEY_POINTS:
- Ideas build progressively
- Examples ground abstractions
- Practice cements knowledge
- Order matters
- Conclusions synthesize
CONCEPT_TAGS: Core Ideas|8, Examples|5, Practice|3`

// mcqSetJSON builds a valid n-question set at one difficulty.
func mcqSetJSON(t *testing.T, n int, difficulty string) string {
	t.Helper()
	set := assessment.Set{}
	for i := 0; i < n; i++ {
		set.MCQs = append(set.MCQs, assessment.MCQ{
			Question: fmt.Sprintf("What is the essential claim of idea number %d?", i),
			Options: []assessment.Option{
				{Option: fmt.Sprintf("The correct essential claim of idea %d", i), IsCorrect: true},
				{Option: "A plausible but incorrect claim", IsCorrect: false},
				{Option: "An unrelated distractor claim", IsCorrect: false},
				{Option: "A common misconception about the idea", IsCorrect: false},
			},
			Difficulty:  difficulty,
			Explanation: "The first option restates the idea exactly as presented.",
			ConceptTags: []string{"core ideas"},
		})
	}
	data, err := json.Marshal(set)
	require.NoError(t, err)
	return string(data)
}

func newTestEngine(responses ...llm.MockResponse) (*Engine, document.Store, *llm.MockProvider) {
	provider := llm.NewMockProvider(responses...)
	store := document.NewMemoryStore()
	return NewEngine(store, provider, zap.NewNop().Sugar()), store, provider
}

// answers builds n answers, the first correct of them choosing option 0.
func testAnswers(n, correct int) []assessment.Answer {
	var out []assessment.Answer
	for i := 0; i < n; i++ {
		selected := 1 // wrong
		if i < correct {
			selected = 0 // correct
		}
		out = append(out, assessment.Answer{QuestionIndex: i, SelectedOptionIndex: selected})
	}
	return out
}

func TestFullPrePostCycle(t *testing.T) {
	engine, store, provider := newTestEngine(
		// Pre-test: one group digest, one synthesis, one question set.
		llm.MockResponse{Text: "A three sentence digest. It covers the ideas. Nothing more."},
		llm.MockResponse{Text: labeledSummary},
		llm.MockResponse{Text: mcqSetJSON(t, 5, "medium")},
		// Post-test: summary is cached, so only the pinned-difficulty set.
		llm.MockResponse{Text: mcqSetJSON(t, 10, "easy")},
		// Insight.
		llm.MockResponse{Text: "You made solid progress on the core ideas."},
	)
	id := store.Create("doc.txt", "full text", []string{"full text"})
	ctx := context.Background()

	preSet, err := engine.GeneratePreTest(ctx, id)
	require.NoError(t, err)
	require.Len(t, preSet.MCQs, 5)

	// 2 of 5 correct: 40%.
	preEval, err := engine.SubmitPreTest(id, testAnswers(5, 2))
	require.NoError(t, err)
	assert.Equal(t, 40.0, preEval.ScorePercentage)

	// 40 < 50 pins the post-test to easy.
	postSet, err := engine.GeneratePostTest(ctx, id)
	require.NoError(t, err)
	require.Len(t, postSet.MCQs, 10)
	postPrompt := provider.Calls[len(provider.Calls)-1].Prompt
	assert.Contains(t, postPrompt, "ONLY easy difficulty")

	// 7 of 10 correct: 70%, gain is the literal delta.
	report, err := engine.SubmitPostTest(ctx, id, testAnswers(10, 7))
	require.NoError(t, err)
	assert.Equal(t, 40.0, report.PreScore)
	assert.Equal(t, 70.0, report.PostScore)
	assert.Equal(t, 30.0, report.LearningGainPercentage)
	assert.Equal(t, "You made solid progress on the core ideas.", report.LearningInsight)
	require.NotNil(t, report.ConceptPerformance)

	// Session state persisted on the document.
	doc, err := store.Get(id)
	require.NoError(t, err)
	require.NotNil(t, doc.LearningSession.PostTestScore)
	assert.Equal(t, 70.0, *doc.LearningSession.PostTestScore)
	assert.Equal(t, 30.0, *doc.LearningSession.LearningGainPercentage)
}

func TestSubmitPreTestWithoutGenerate(t *testing.T) {
	engine, store, _ := newTestEngine()
	id := store.Create("doc.txt", "text", []string{"text"})

	_, err := engine.SubmitPreTest(id, nil)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestGeneratePostTestRequiresPreTestScore(t *testing.T) {
	engine, store, _ := newTestEngine()
	id := store.Create("doc.txt", "text", []string{"text"})

	_, err := engine.GeneratePostTest(context.Background(), id)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestInsightFallbackOnOracleFailure(t *testing.T) {
	engine, store, _ := newTestEngine(
		llm.MockResponse{Text: "A digest. More digest. Done."},
		llm.MockResponse{Text: labeledSummary},
		llm.MockResponse{Text: mcqSetJSON(t, 5, "medium")},
		llm.MockResponse{Text: mcqSetJSON(t, 10, "easy")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}, // insight fails
	)
	id := store.Create("doc.txt", "text", []string{"text"})
	ctx := context.Background()

	_, err := engine.GeneratePreTest(ctx, id)
	require.NoError(t, err)
	_, err = engine.SubmitPreTest(id, testAnswers(5, 2))
	require.NoError(t, err)
	_, err = engine.GeneratePostTest(ctx, id)
	require.NoError(t, err)

	report, err := engine.SubmitPostTest(ctx, id, testAnswers(10, 7))
	require.NoError(t, err)
	assert.Contains(t, report.LearningInsight, "improved from 40.0% to 70.0%")
}

func TestSummaryCachedAcrossOperations(t *testing.T) {
	engine, store, provider := newTestEngine(
		llm.MockResponse{Text: "Digest one. Digest two. Digest three."},
		llm.MockResponse{Text: labeledSummary},
		llm.MockResponse{Text: mcqSetJSON(t, 5, "medium")},
	)
	id := store.Create("doc.txt", "text", []string{"text"})
	ctx := context.Background()

	_, err := engine.Summarize(ctx, id)
	require.NoError(t, err)
	callsAfterSummary := provider.CallCount()

	// Second summarize answers from cache.
	_, err = engine.Summarize(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, callsAfterSummary, provider.CallCount())

	// MCQ generation reuses the cached summary: exactly one more call.
	_, err = engine.MCQs(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, callsAfterSummary+1, provider.CallCount())
}

func TestFeedbackUpdatesStreakAndDifficulty(t *testing.T) {
	engine, store, _ := newTestEngine(
		llm.MockResponse{Text: "Digest. Digest. Digest."},
		llm.MockResponse{Text: labeledSummary},
		llm.MockResponse{Text: mcqSetJSON(t, 5, "medium")},
	)
	id := store.Create("doc.txt", "text", []string{"text"})
	ctx := context.Background()

	_, err := engine.MCQs(ctx, id)
	require.NoError(t, err)

	// Three correct answers raise the difficulty to hard.
	for q := 0; q < 3; q++ {
		fb, err := engine.Feedback(id, q, 0)
		require.NoError(t, err)
		assert.True(t, fb.Correct)
		assert.Equal(t, "Correct! Well done.", fb.FeedbackMessage)
	}
	d, err := engine.AdaptiveDifficulty(id)
	require.NoError(t, err)
	assert.Equal(t, assessment.Hard, d)

	// One wrong answer resets the correct streak back to medium.
	fb, err := engine.Feedback(id, 3, 1)
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	d, err = engine.AdaptiveDifficulty(id)
	require.NoError(t, err)
	assert.Equal(t, assessment.Medium, d)

	doc, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.LearningSession.CurrentStreak.Correct)
	assert.Equal(t, 1, doc.LearningSession.CurrentStreak.Wrong)
}

func TestFeedbackRequiresMCQs(t *testing.T) {
	engine, store, _ := newTestEngine()
	id := store.Create("doc.txt", "text", []string{"text"})

	_, err := engine.Feedback(id, 0, 0)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestInfoTracksArtifacts(t *testing.T) {
	engine, store, _ := newTestEngine(
		llm.MockResponse{Text: "Digest. Digest. Digest."},
		llm.MockResponse{Text: labeledSummary},
	)
	id := store.Create("doc.txt", "text", []string{"text"})

	info, err := engine.Info(id)
	require.NoError(t, err)
	assert.Equal(t, "doc.txt", info.Filename)
	assert.False(t, info.HasSummary)

	_, err = engine.Summarize(context.Background(), id)
	require.NoError(t, err)

	info, err = engine.Info(id)
	require.NoError(t, err)
	assert.True(t, info.HasSummary)
	assert.False(t, info.PreTestTaken)
}

func TestUnknownDocument(t *testing.T) {
	engine, _, _ := newTestEngine()
	_, err := engine.Summarize(context.Background(), "missing")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
