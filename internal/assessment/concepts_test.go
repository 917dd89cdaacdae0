package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeConcepts(t *testing.T) {
	set := validTestSet()
	set.MCQs[0].ConceptTags = []string{"loops"}
	set.MCQs[1].ConceptTags = []string{"loops"}
	set.MCQs[2].ConceptTags = []string{"recursion"}
	set.MCQs[3].ConceptTags = []string{"recursion"}
	set.MCQs[4].ConceptTags = []string{"arrays"}

	answers := []Answer{
		{QuestionIndex: 0, SelectedOptionIndex: 0}, // loops correct
		{QuestionIndex: 1, SelectedOptionIndex: 1}, // loops wrong -> 0.5
		{QuestionIndex: 2, SelectedOptionIndex: 0}, // recursion correct
		{QuestionIndex: 3, SelectedOptionIndex: 0}, // recursion correct -> 1.0
		{QuestionIndex: 4, SelectedOptionIndex: 2}, // arrays wrong -> 0.0
	}

	perf := AnalyzeConcepts(set, answers)
	assert.Equal(t, 0.5, perf.AccuracyMap["loops"])
	assert.Equal(t, 1.0, perf.AccuracyMap["recursion"])
	assert.Equal(t, 0.0, perf.AccuracyMap["arrays"])

	// 0.5 is neither weak (<0.5) nor strong (>0.8).
	assert.NotContains(t, perf.Weak, "loops")
	assert.NotContains(t, perf.Strong, "loops")
	assert.Contains(t, perf.Strong, "recursion")
	assert.Contains(t, perf.Weak, "arrays")
}

func TestAnalyzeConcepts_SkipsUntaggedAndOutOfRange(t *testing.T) {
	set := validTestSet()
	for i := range set.MCQs {
		set.MCQs[i].ConceptTags = nil
	}
	set.MCQs[0].ConceptTags = []string{"only"}

	answers := []Answer{
		{QuestionIndex: 0, SelectedOptionIndex: 0},
		{QuestionIndex: 1, SelectedOptionIndex: 0},  // untagged, skipped
		{QuestionIndex: 42, SelectedOptionIndex: 0}, // out of range, skipped
	}

	perf := AnalyzeConcepts(set, answers)
	assert.Len(t, perf.AccuracyMap, 1)
	assert.Equal(t, 1.0, perf.AccuracyMap["only"])
}

func TestPostTestDifficulty_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Difficulty
	}{
		{49.9, Easy},
		{50.0, Medium},
		{80.0, Medium},
		{80.1, Hard},
		{0, Easy},
		{100, Hard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PostTestDifficulty(tt.score), "score %.1f", tt.score)
	}
}

func TestAdaptiveDifficulty(t *testing.T) {
	assert.Equal(t, Medium, AdaptiveDifficulty(0, 0))
	assert.Equal(t, Medium, AdaptiveDifficulty(2, 1))
	assert.Equal(t, Hard, AdaptiveDifficulty(3, 0))
	assert.Equal(t, Easy, AdaptiveDifficulty(0, 2))
	// Wrong streak wins when both thresholds are met.
	assert.Equal(t, Easy, AdaptiveDifficulty(5, 2))
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, Easy, ParseDifficulty(" EASY "))
	assert.Equal(t, Medium, ParseDifficulty("medium"))
	assert.Equal(t, Difficulty(""), ParseDifficulty("extreme"))
}
