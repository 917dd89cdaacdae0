package assessment

import (
	"fmt"
	"strings"
)

const (
	minSetSize = 5
	maxSetSize = 10

	minQuestionLen    = 10
	minOptionLen      = 3
	minExplanationLen = 15
)

// placeholderExplanations are filler strings the oracle uses when it has
// nothing to say. Compared after lowercase/trim normalization.
var placeholderExplanations = map[string]struct{}{
	"n/a":            {},
	"none":           {},
	"not applicable": {},
	"na":             {},
	"no explanation": {},
}

// Guardrail checks one generated question for a content quality rule.
// Implementations are stateless and safe for concurrent use.
type Guardrail interface {
	// Name returns a short identifier for this guardrail, used in
	// violation messages, e.g. "options", "explanation".
	Name() string

	// Check inspects the question at the given zero-based set index and
	// returns nil if it passes.
	Check(idx int, mcq *MCQ) *Violation
}

// Violation describes why a question set was rejected. Any single
// violation rejects the whole set.
type Violation struct {
	Guardrail string
	MCQ       int // zero-based index of the offending question
	Message   string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("guardrail %q: MCQ %d: %s", v.Guardrail, v.MCQ+1, v.Message)
}

// defaultGuardrails is the chain applied to every generated set, in order.
var defaultGuardrails = []Guardrail{
	&questionGuardrail{},
	&optionsGuardrail{},
	&difficultyGuardrail{},
	&explanationGuardrail{},
	&conceptTagsGuardrail{},
}

// questionGuardrail enforces non-trivial question text.
type questionGuardrail struct{}

func (g *questionGuardrail) Name() string { return "question" }

func (g *questionGuardrail) Check(idx int, mcq *MCQ) *Violation {
	q := strings.TrimSpace(mcq.Question)
	if q == "" {
		return &Violation{Guardrail: g.Name(), MCQ: idx, Message: "empty question"}
	}
	if len(q) < minQuestionLen {
		return &Violation{Guardrail: g.Name(), MCQ: idx,
			Message: fmt.Sprintf("question too short (minimum %d characters)", minQuestionLen)}
	}
	return nil
}

// optionsGuardrail enforces exactly 4 distinct options with exactly one
// marked correct. Distinctness is case-insensitive.
type optionsGuardrail struct{}

func (g *optionsGuardrail) Name() string { return "options" }

func (g *optionsGuardrail) Check(idx int, mcq *MCQ) *Violation {
	if len(mcq.Options) != 4 {
		return &Violation{Guardrail: g.Name(), MCQ: idx,
			Message: fmt.Sprintf("has %d options, expected exactly 4", len(mcq.Options))}
	}

	correct := 0
	seen := make(map[string]struct{}, 4)
	for i, opt := range mcq.Options {
		text := strings.TrimSpace(opt.Option)
		if text == "" {
			return &Violation{Guardrail: g.Name(), MCQ: idx,
				Message: fmt.Sprintf("option %d is empty", i+1)}
		}
		if len(text) < minOptionLen {
			return &Violation{Guardrail: g.Name(), MCQ: idx,
				Message: fmt.Sprintf("option %d too short (minimum %d characters)", i+1, minOptionLen)}
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			return &Violation{Guardrail: g.Name(), MCQ: idx, Message: "duplicate option text"}
		}
		seen[key] = struct{}{}
		if opt.IsCorrect {
			correct++
		}
	}

	if correct != 1 {
		return &Violation{Guardrail: g.Name(), MCQ: idx,
			Message: fmt.Sprintf("has %d correct options, expected exactly 1", correct)}
	}
	return nil
}

// difficultyGuardrail normalizes the difficulty label in place and
// rejects anything outside easy/medium/hard.
type difficultyGuardrail struct{}

func (g *difficultyGuardrail) Name() string { return "difficulty" }

func (g *difficultyGuardrail) Check(idx int, mcq *MCQ) *Violation {
	d := ParseDifficulty(mcq.Difficulty)
	if d == "" {
		return &Violation{Guardrail: g.Name(), MCQ: idx,
			Message: fmt.Sprintf("invalid difficulty %q, must be easy, medium, or hard", mcq.Difficulty)}
	}
	mcq.Difficulty = string(d)
	return nil
}

// explanationGuardrail enforces a substantive explanation.
type explanationGuardrail struct{}

func (g *explanationGuardrail) Name() string { return "explanation" }

func (g *explanationGuardrail) Check(idx int, mcq *MCQ) *Violation {
	expl := strings.TrimSpace(mcq.Explanation)
	if expl == "" {
		return &Violation{Guardrail: g.Name(), MCQ: idx, Message: "empty explanation"}
	}
	if len(expl) < minExplanationLen {
		return &Violation{Guardrail: g.Name(), MCQ: idx,
			Message: fmt.Sprintf("explanation too short (minimum %d characters)", minExplanationLen)}
	}
	if _, ok := placeholderExplanations[strings.ToLower(expl)]; ok {
		return &Violation{Guardrail: g.Name(), MCQ: idx, Message: "placeholder explanation text"}
	}
	return nil
}

// conceptTagsGuardrail requires at least one concept tag.
type conceptTagsGuardrail struct{}

func (g *conceptTagsGuardrail) Name() string { return "concept-tags" }

func (g *conceptTagsGuardrail) Check(idx int, mcq *MCQ) *Violation {
	if len(mcq.ConceptTags) < 1 {
		return &Violation{Guardrail: g.Name(), MCQ: idx, Message: "must have at least 1 concept tag"}
	}
	return nil
}

// validateSet runs the set-level rules and the per-question guardrail
// chain. The first violation rejects the whole set; there is no pruning
// of individual bad questions. Difficulty labels are normalized as a
// side effect.
func validateSet(set *Set, override Difficulty) *Violation {
	if len(set.MCQs) < minSetSize || len(set.MCQs) > maxSetSize {
		return &Violation{Guardrail: "set-size", MCQ: 0,
			Message: fmt.Sprintf("set has %d questions, expected %d-%d", len(set.MCQs), minSetSize, maxSetSize)}
	}

	seenQuestions := make(map[string]struct{}, len(set.MCQs))
	for i := range set.MCQs {
		mcq := &set.MCQs[i]

		for _, g := range defaultGuardrails {
			if v := g.Check(i, mcq); v != nil {
				return v
			}
		}

		key := strings.ToLower(strings.TrimSpace(mcq.Question))
		if _, dup := seenQuestions[key]; dup {
			return &Violation{Guardrail: "dedup", MCQ: i, Message: "duplicate question text"}
		}
		seenQuestions[key] = struct{}{}

		if override != "" && mcq.Difficulty != string(override) {
			return &Violation{Guardrail: "difficulty-override", MCQ: i,
				Message: fmt.Sprintf("has difficulty %q but %q was requested", mcq.Difficulty, override)}
		}
	}
	return nil
}
