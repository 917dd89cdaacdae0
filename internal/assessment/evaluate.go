package assessment

import (
	"math"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

// Evaluate scores a full answer submission against set. Index validation
// is all-or-nothing: every answer is range-checked before any scoring
// happens, so a single bad index rejects the submission without partial
// results. An empty submission scores 0.
func Evaluate(set *Set, answers []Answer) (*Evaluation, error) {
	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(set.MCQs) {
			return nil, apperr.Validation(
				"invalid question_index %d, must be between 0 and %d",
				a.QuestionIndex, len(set.MCQs)-1)
		}
		mcq := set.MCQs[a.QuestionIndex]
		if a.SelectedOptionIndex < 0 || a.SelectedOptionIndex >= len(mcq.Options) {
			return nil, apperr.Validation(
				"invalid selected_option_index %d for question %d, must be between 0 and %d",
				a.SelectedOptionIndex, a.QuestionIndex, len(mcq.Options)-1)
		}
	}

	correct := 0
	results := make([]AnswerResult, 0, len(answers))
	for _, a := range answers {
		mcq := set.MCQs[a.QuestionIndex]
		correctIdx := mcq.CorrectIndex()
		isCorrect := a.SelectedOptionIndex == correctIdx
		if isCorrect {
			correct++
		}
		results = append(results, AnswerResult{
			QuestionIndex:       a.QuestionIndex,
			SelectedOptionIndex: a.SelectedOptionIndex,
			CorrectOptionIndex:  correctIdx,
			Correct:             isCorrect,
			Difficulty:          mcq.Difficulty,
		})
	}

	score := 0.0
	if len(answers) > 0 {
		score = round2(float64(correct) / float64(len(answers)) * 100)
	}

	return &Evaluation{
		TotalQuestions:  len(answers),
		CorrectAnswers:  correct,
		ScorePercentage: score,
		DetailedResults: results,
	}, nil
}

// Feedback answers one question instantly: correctness, the correct
// index, the stored explanation, and a fixed encouragement message.
func Feedback(set *Set, questionIndex, selectedOptionIndex int) (*FeedbackResult, error) {
	if questionIndex < 0 || questionIndex >= len(set.MCQs) {
		return nil, apperr.Validation(
			"invalid question_index, must be between 0 and %d", len(set.MCQs)-1)
	}
	mcq := set.MCQs[questionIndex]
	if selectedOptionIndex < 0 || selectedOptionIndex >= len(mcq.Options) {
		return nil, apperr.Validation(
			"invalid selected_option_index, must be between 0 and %d", len(mcq.Options)-1)
	}

	correctIdx := mcq.CorrectIndex()
	isCorrect := selectedOptionIndex == correctIdx

	message := "Incorrect. Review the explanation and try again."
	if isCorrect {
		message = "Correct! Well done."
	}

	return &FeedbackResult{
		Correct:            isCorrect,
		CorrectOptionIndex: correctIdx,
		Explanation:        mcq.Explanation,
		Difficulty:         mcq.Difficulty,
		FeedbackMessage:    message,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
