package learning

import (
	"context"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/assessment"
	"github.com/Harshith-vm/ai-learning-platform/internal/document"
)

// GainReport is the outcome of a completed pre/post-test cycle. The
// gain is the literal percentage-point delta between the two scores.
type GainReport struct {
	PreScore               float64                        `json:"pre_score"`
	PostScore              float64                        `json:"post_score"`
	LearningGainPercentage float64                        `json:"learning_gain_percentage"`
	ConceptPerformance     *assessment.ConceptPerformance `json:"concept_performance,omitempty"`
	LearningInsight        string                         `json:"learning_insight,omitempty"`
}

// GeneratePreTest creates a fresh mixed-difficulty question set and
// stores it as the session's pre-test. A repeat call replaces the
// previous pre-test.
func (e *Engine) GeneratePreTest(ctx context.Context, id string) (*assessment.Set, error) {
	var set *assessment.Set
	err := e.store.Update(id, func(doc *document.Document) error {
		summary, err := e.ensureSummary(ctx, doc)
		if err != nil {
			return err
		}
		set, err = e.assessor.Generate(ctx, summary.Summary, "")
		if err != nil {
			return err
		}
		doc.LearningSession.PreTestMCQs = set
		return nil
	})
	return set, err
}

// SubmitPreTest scores the pre-test answers, records the score, and
// computes concept performance over the pre-test set.
func (e *Engine) SubmitPreTest(id string, answers []assessment.Answer) (*assessment.Evaluation, error) {
	var eval *assessment.Evaluation
	err := e.store.Update(id, func(doc *document.Document) error {
		set := doc.LearningSession.PreTestMCQs
		if set == nil {
			return apperr.Validation("pre-test not generated, generate pre-test first")
		}

		result, err := assessment.Evaluate(set, answers)
		if err != nil {
			return err
		}
		doc.LearningSession.PreTestScore = &result.ScorePercentage
		doc.LearningSession.ConceptPerformance = assessment.AnalyzeConcepts(set, answers)
		eval = result
		return nil
	})
	return eval, err
}

// GeneratePostTest creates a fresh question set pinned to the difficulty
// the pre-test score maps to, and stores it as the session's post-test.
// Requires a completed pre-test.
func (e *Engine) GeneratePostTest(ctx context.Context, id string) (*assessment.Set, error) {
	var set *assessment.Set
	err := e.store.Update(id, func(doc *document.Document) error {
		preScore := doc.LearningSession.PreTestScore
		if preScore == nil {
			return apperr.Validation("pre-test must be completed first")
		}

		summary, err := e.ensureSummary(ctx, doc)
		if err != nil {
			return err
		}
		difficulty := assessment.PostTestDifficulty(*preScore)
		set, err = e.assessor.Generate(ctx, summary.Summary, difficulty)
		if err != nil {
			return err
		}
		doc.LearningSession.PostTestMCQs = set
		return nil
	})
	return set, err
}

// SubmitPostTest scores the post-test answers, computes the learning
// gain, and attaches the trajectory insight. The oracle-written insight
// degrades to a templated sentence when the call fails.
func (e *Engine) SubmitPostTest(ctx context.Context, id string, answers []assessment.Answer) (*GainReport, error) {
	var report *GainReport
	err := e.store.Update(id, func(doc *document.Document) error {
		session := &doc.LearningSession
		if session.PostTestMCQs == nil {
			return apperr.Validation("post-test not generated, generate post-test first")
		}
		if session.PreTestScore == nil {
			return apperr.Validation("pre-test not completed, complete pre-test first")
		}

		result, err := assessment.Evaluate(session.PostTestMCQs, answers)
		if err != nil {
			return err
		}

		preScore := *session.PreTestScore
		postScore := result.ScorePercentage
		gain := postScore - preScore

		session.PostTestScore = &postScore
		session.LearningGainPercentage = &gain
		session.LearningInsight = e.learningInsight(ctx, preScore, postScore, session.ConceptPerformance)

		report = &GainReport{
			PreScore:               preScore,
			PostScore:              postScore,
			LearningGainPercentage: gain,
			ConceptPerformance:     session.ConceptPerformance,
			LearningInsight:        session.LearningInsight,
		}
		return nil
	})
	return report, err
}

// Feedback answers one question from the document's general set and
// advances the answer streak.
func (e *Engine) Feedback(id string, questionIndex, selectedOptionIndex int) (*assessment.FeedbackResult, error) {
	var fb *assessment.FeedbackResult
	err := e.store.Update(id, func(doc *document.Document) error {
		if doc.MCQs == nil {
			return apperr.Validation("MCQs not generated for this document, generate MCQs first")
		}

		result, err := assessment.Feedback(doc.MCQs, questionIndex, selectedOptionIndex)
		if err != nil {
			return err
		}
		doc.LearningSession.CurrentStreak.Apply(result.Correct)
		fb = result
		return nil
	})
	return fb, err
}

// AdaptiveDifficulty maps the document's current streak to the
// difficulty the next question should use.
func (e *Engine) AdaptiveDifficulty(id string) (assessment.Difficulty, error) {
	doc, err := e.store.Get(id)
	if err != nil {
		return "", err
	}
	streak := doc.LearningSession.CurrentStreak
	return assessment.AdaptiveDifficulty(streak.Correct, streak.Wrong), nil
}
