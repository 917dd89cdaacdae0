package assessment

// Concept accuracy thresholds. Boundary values fall in neither bucket.
const (
	weakThreshold   = 0.5
	strongThreshold = 0.8
)

// AnalyzeConcepts aggregates per-concept accuracy over a submission.
// Out-of-range answers and questions without concept tags are skipped
// silently; the analyzer reports on what it can attribute. Accuracies
// are rounded to 2 decimals before threshold comparison.
func AnalyzeConcepts(set *Set, answers []Answer) *ConceptPerformance {
	totalPerConcept := make(map[string]int)
	correctPerConcept := make(map[string]int)

	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(set.MCQs) {
			continue
		}
		mcq := set.MCQs[a.QuestionIndex]
		if len(mcq.ConceptTags) == 0 {
			continue
		}

		isCorrect := a.SelectedOptionIndex == mcq.CorrectIndex()
		for _, concept := range mcq.ConceptTags {
			totalPerConcept[concept]++
			if isCorrect {
				correctPerConcept[concept]++
			}
		}
	}

	perf := &ConceptPerformance{
		Weak:        []string{},
		Strong:      []string{},
		AccuracyMap: make(map[string]float64, len(totalPerConcept)),
	}
	for concept, total := range totalPerConcept {
		accuracy := round2(float64(correctPerConcept[concept]) / float64(total))
		perf.AccuracyMap[concept] = accuracy
		switch {
		case accuracy < weakThreshold:
			perf.Weak = append(perf.Weak, concept)
		case accuracy > strongThreshold:
			perf.Strong = append(perf.Strong, concept)
		}
	}
	return perf
}
