package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

func TestEvaluate_Scores(t *testing.T) {
	set := validTestSet()
	answers := []Answer{
		{QuestionIndex: 0, SelectedOptionIndex: 0}, // correct
		{QuestionIndex: 1, SelectedOptionIndex: 1}, // wrong
		{QuestionIndex: 2, SelectedOptionIndex: 0}, // correct
	}

	eval, err := Evaluate(set, answers)
	require.NoError(t, err)
	assert.Equal(t, 3, eval.TotalQuestions)
	assert.Equal(t, 2, eval.CorrectAnswers)
	assert.InDelta(t, 66.67, eval.ScorePercentage, 1e-9)
	require.Len(t, eval.DetailedResults, 3)
	assert.True(t, eval.DetailedResults[0].Correct)
	assert.False(t, eval.DetailedResults[1].Correct)
	assert.Equal(t, 0, eval.DetailedResults[1].CorrectOptionIndex)
}

func TestEvaluate_EmptySubmissionScoresZero(t *testing.T) {
	eval, err := Evaluate(validTestSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, eval.TotalQuestions)
	assert.Equal(t, 0.0, eval.ScorePercentage)
}

func TestEvaluate_BadIndexRejectsWholeSubmission(t *testing.T) {
	set := validTestSet()
	answers := []Answer{
		{QuestionIndex: 0, SelectedOptionIndex: 0},
		{QuestionIndex: 99, SelectedOptionIndex: 0},
	}
	_, err := Evaluate(set, answers)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	answers = []Answer{{QuestionIndex: 0, SelectedOptionIndex: 7}}
	_, err = Evaluate(set, answers)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestFeedback_Messages(t *testing.T) {
	set := validTestSet()

	fb, err := Feedback(set, 0, 0)
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.Equal(t, "Correct! Well done.", fb.FeedbackMessage)
	assert.Equal(t, 0, fb.CorrectOptionIndex)
	assert.NotEmpty(t, fb.Explanation)

	fb, err = Feedback(set, 0, 2)
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, "Incorrect. Review the explanation and try again.", fb.FeedbackMessage)
}

func TestFeedback_BadIndices(t *testing.T) {
	set := validTestSet()
	_, err := Feedback(set, -1, 0)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = Feedback(set, 0, 4)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
