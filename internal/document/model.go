// Package document holds the in-process document model, the chunker
// that prepares text for summarization, and the session store that owns
// every Document for the life of the process.
package document

import (
	"time"

	"github.com/Harshith-vm/ai-learning-platform/internal/assessment"
	"github.com/Harshith-vm/ai-learning-platform/internal/studyaid"
	"github.com/Harshith-vm/ai-learning-platform/internal/summarize"
)

// Streak tracks consecutive answer outcomes. A correct answer zeroes
// the wrong counter and vice versa; the counters are never both nonzero.
type Streak struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// Apply advances the streak by one answered question.
func (s *Streak) Apply(correct bool) {
	if correct {
		s.Correct++
		s.Wrong = 0
	} else {
		s.Wrong++
		s.Correct = 0
	}
}

// LearningSession is the pre/post-test state embedded in a Document.
// Pointer score fields distinguish "not taken" from a zero score.
type LearningSession struct {
	PreTestMCQs            *assessment.Set                `json:"pre_test_mcqs,omitempty"`
	PreTestScore           *float64                       `json:"pre_test_score,omitempty"`
	PostTestMCQs           *assessment.Set                `json:"post_test_mcqs,omitempty"`
	PostTestScore          *float64                       `json:"post_test_score,omitempty"`
	ConceptPerformance     *assessment.ConceptPerformance `json:"concept_performance,omitempty"`
	LearningGainPercentage *float64                       `json:"learning_gain_percentage,omitempty"`
	LearningInsight        string                         `json:"learning_insight,omitempty"`
	CurrentStreak          Streak                         `json:"current_streak"`
}

// Document is one uploaded text with its chunks and every artifact
// derived from it. The store owns the canonical instance; callers
// mutate it only through Store.Update.
type Document struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Text      string    `json:"-"`
	Chunks    []string  `json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Summary    *summarize.Summary    `json:"summary,omitempty"`
	KeyPoints  []string              `json:"key_points,omitempty"`
	Flashcards []studyaid.Flashcard  `json:"flashcards,omitempty"`
	MCQs       *assessment.Set       `json:"mcqs,omitempty"`

	LearningSession LearningSession `json:"learning_session"`
}

// Info is a snapshot of which artifacts exist for a document.
type Info struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	ChunkCount    int       `json:"chunk_count"`
	CreatedAt     time.Time `json:"created_at"`
	HasSummary    bool      `json:"has_summary"`
	HasKeyPoints  bool      `json:"has_key_points"`
	HasFlashcards bool      `json:"has_flashcards"`
	HasMCQs       bool      `json:"has_mcqs"`
	PreTestTaken  bool      `json:"pre_test_taken"`
	PostTestTaken bool      `json:"post_test_taken"`
}

// Info summarizes the document's artifact state.
func (d *Document) Info() Info {
	return Info{
		ID:            d.ID,
		Filename:      d.Filename,
		ChunkCount:    len(d.Chunks),
		CreatedAt:     d.CreatedAt,
		HasSummary:    d.Summary != nil,
		HasKeyPoints:  len(d.KeyPoints) > 0,
		HasFlashcards: len(d.Flashcards) > 0,
		HasMCQs:       d.MCQs != nil,
		PreTestTaken:  d.LearningSession.PreTestScore != nil,
		PostTestTaken: d.LearningSession.PostTestScore != nil,
	}
}
