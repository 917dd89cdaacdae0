// Package assessment generates multiple-choice question sets from a
// document summary, enforces content guardrails on what the oracle
// returns, and scores submitted answers.
package assessment

import "strings"

// Difficulty is the normalized difficulty label of a question or a
// whole set.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty normalizes a raw label. Returns "" when the label is
// not one of easy, medium, hard.
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case Easy:
		return Easy
	case Medium:
		return Medium
	case Hard:
		return Hard
	}
	return ""
}

// Option is one answer choice with its correctness mark.
type Option struct {
	Option    string `json:"option"`
	IsCorrect bool   `json:"is_correct"`
}

// MCQ is a single multiple-choice question. Options always hold the
// full answer text, never positional placeholders.
type MCQ struct {
	Question    string   `json:"question"`
	Options     []Option `json:"options"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
	ConceptTags []string `json:"concept_tags"`
}

// CorrectIndex returns the index of the first option marked correct,
// or -1. Guardrails guarantee exactly one on validated sets.
func (m *MCQ) CorrectIndex() int {
	for i, opt := range m.Options {
		if opt.IsCorrect {
			return i
		}
	}
	return -1
}

// Set is a guardrail-validated question set.
type Set struct {
	MCQs []MCQ `json:"mcqs"`
}

// QuickMCQ is the stricter plain shape: four option strings and a
// correct index instead of per-option marks.
type QuickMCQ struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Difficulty   string   `json:"difficulty"`
}

// QuickSet always holds exactly five questions.
type QuickSet struct {
	MCQs []QuickMCQ `json:"mcqs"`
}

// Answer is one submitted response, both indices zero-based.
type Answer struct {
	QuestionIndex       int `json:"question_index"`
	SelectedOptionIndex int `json:"selected_option_index"`
}

// AnswerResult is the per-question outcome of an evaluation.
type AnswerResult struct {
	QuestionIndex       int    `json:"question_index"`
	SelectedOptionIndex int    `json:"selected_option_index"`
	CorrectOptionIndex  int    `json:"correct_option_index"`
	Correct             bool   `json:"correct"`
	Difficulty          string `json:"difficulty"`
}

// Evaluation is the scored result of one full answer submission.
type Evaluation struct {
	TotalQuestions  int            `json:"total_questions"`
	CorrectAnswers  int            `json:"correct_answers"`
	ScorePercentage float64        `json:"score_percentage"`
	DetailedResults []AnswerResult `json:"detailed_results"`
}

// ConceptPerformance groups concepts by observed answer accuracy.
type ConceptPerformance struct {
	Weak        []string           `json:"weak"`
	Strong      []string           `json:"strong"`
	AccuracyMap map[string]float64 `json:"accuracy_map"`
}

// FeedbackResult is the instant response to a single answered question.
type FeedbackResult struct {
	Correct            bool   `json:"correct"`
	CorrectOptionIndex int    `json:"correct_option_index"`
	Explanation        string `json:"explanation"`
	Difficulty         string `json:"difficulty"`
	FeedbackMessage    string `json:"feedback_message"`
}
