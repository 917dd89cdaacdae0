// Package tui drives the interactive study session: pre-test, score,
// post-test, and the final learning-gain report, over one document.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/Harshith-vm/ai-learning-platform/internal/assessment"
	"github.com/Harshith-vm/ai-learning-platform/internal/learning"
	"github.com/Harshith-vm/ai-learning-platform/internal/ui/components"
	"github.com/Harshith-vm/ai-learning-platform/internal/ui/theme"
)

type phase int

const (
	phaseLoadingPre phase = iota
	phasePreTest
	phasePreScore
	phaseLoadingPost
	phasePostTest
	phaseReport
	phaseError
)

// Async messages, one per engine call.
type (
	preTestReadyMsg struct {
		Set *assessment.Set
		Err error
	}
	preScoredMsg struct {
		Eval *assessment.Evaluation
		Err  error
	}
	postTestReadyMsg struct {
		Set *assessment.Set
		Err error
	}
	reportReadyMsg struct {
		Report *learning.GainReport
		Err    error
	}
)

// Model is the study-session state machine.
type Model struct {
	engine *learning.Engine
	docID  string

	phase   phase
	set     *assessment.Set
	qIdx    int
	choice  components.MultiChoice
	answers []assessment.Answer

	preEval *assessment.Evaluation
	report  *learning.GainReport
	err     error
}

func NewModel(engine *learning.Engine, docID string) Model {
	return Model{engine: engine, docID: docID}
}

func (m Model) Init() tea.Cmd {
	return m.loadPreTest()
}

func (m Model) loadPreTest() tea.Cmd {
	return func() tea.Msg {
		set, err := m.engine.GeneratePreTest(context.Background(), m.docID)
		return preTestReadyMsg{Set: set, Err: err}
	}
}

func (m Model) submitPreTest() tea.Cmd {
	answers := m.answers
	return func() tea.Msg {
		eval, err := m.engine.SubmitPreTest(m.docID, answers)
		return preScoredMsg{Eval: eval, Err: err}
	}
}

func (m Model) loadPostTest() tea.Cmd {
	return func() tea.Msg {
		set, err := m.engine.GeneratePostTest(context.Background(), m.docID)
		return postTestReadyMsg{Set: set, Err: err}
	}
}

func (m Model) submitPostTest() tea.Cmd {
	answers := m.answers
	return func() tea.Msg {
		report, err := m.engine.SubmitPostTest(context.Background(), m.docID, answers)
		return reportReadyMsg{Report: report, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case preTestReadyMsg:
		if msg.Err != nil {
			return m.fail(msg.Err), nil
		}
		return m.startTest(phasePreTest, msg.Set), nil

	case preScoredMsg:
		if msg.Err != nil {
			return m.fail(msg.Err), nil
		}
		m.preEval = msg.Eval
		m.phase = phasePreScore
		return m, nil

	case postTestReadyMsg:
		if msg.Err != nil {
			return m.fail(msg.Err), nil
		}
		return m.startTest(phasePostTest, msg.Set), nil

	case reportReadyMsg:
		if msg.Err != nil {
			return m.fail(msg.Err), nil
		}
		m.report = msg.Report
		m.phase = phaseReport
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	switch m.phase {
	case phasePreScore:
		if msg.String() == "enter" {
			m.phase = phaseLoadingPost
			return m, m.loadPostTest()
		}
		return m, nil

	case phaseReport, phaseError:
		if msg.String() == "q" || msg.String() == "enter" {
			return m, tea.Quit
		}
		return m, nil

	case phasePreTest, phasePostTest:
		return m.handleTestKey(msg)
	}
	return m, nil
}

// handleTestKey runs one question at a time: enter submits the choice
// and shows the colored answer; any key then advances.
func (m Model) handleTestKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.choice.Submitted {
		m.answers = append(m.answers, assessment.Answer{
			QuestionIndex:       m.qIdx,
			SelectedOptionIndex: m.choice.ChosenIndex,
		})
		m.qIdx++

		if m.qIdx >= len(m.set.MCQs) {
			if m.phase == phasePreTest {
				return m, m.submitPreTest()
			}
			return m, m.submitPostTest()
		}
		m.choice = questionChoice(m.set.MCQs[m.qIdx])
		return m, nil
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	return m, cmd
}

func (m Model) startTest(p phase, set *assessment.Set) Model {
	m.phase = p
	m.set = set
	m.qIdx = 0
	m.answers = nil
	m.choice = questionChoice(set.MCQs[0])
	return m
}

func (m Model) fail(err error) Model {
	m.phase = phaseError
	m.err = err
	return m
}

func questionChoice(mcq assessment.MCQ) components.MultiChoice {
	options := make([]string, len(mcq.Options))
	for i, opt := range mcq.Options {
		options[i] = opt.Option
	}
	return components.NewMultiChoice(mcq.Question, options, mcq.CorrectIndex())
}

func (m Model) View() string {
	var b strings.Builder

	switch m.phase {
	case phaseLoadingPre:
		b.WriteString(theme.Title.Render("Study Session"))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("Generating pre-test questions..."))

	case phaseLoadingPost:
		b.WriteString(theme.Subtitle.Render("Generating post-test questions..."))

	case phasePreTest, phasePostTest:
		label := "Pre-test"
		if m.phase == phasePostTest {
			label = "Post-test"
		}
		b.WriteString(theme.Title.Render(fmt.Sprintf("%s — question %d of %d", label, m.qIdx+1, len(m.set.MCQs))))
		b.WriteString("\n\n")
		b.WriteString(m.choice.View())
		if m.choice.Submitted {
			b.WriteString("\n")
			b.WriteString(theme.Body.Render(m.set.MCQs[m.qIdx].Explanation))
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("press any key to continue"))
		} else {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("up/down to move, enter to answer, esc to quit"))
		}

	case phasePreScore:
		b.WriteString(theme.Title.Render("Pre-test complete"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %.1f%% (%d/%d correct)",
			m.preEval.ScorePercentage, m.preEval.CorrectAnswers, m.preEval.TotalQuestions)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("press enter to start the post-test"))

	case phaseReport:
		b.WriteString(m.reportView())

	case phaseError:
		b.WriteString(theme.Incorrect.Render("Session failed"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("press q to quit"))
	}

	return theme.Card.Render(b.String())
}

func (m Model) reportView() string {
	var b strings.Builder
	r := m.report

	b.WriteString(theme.Title.Render("Learning gain report"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Pre-test:  %.1f%%", r.PreScore)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Post-test: %.1f%%", r.PostScore)))
	b.WriteString("\n")

	gainStyle := theme.Correct
	if r.LearningGainPercentage < 0 {
		gainStyle = theme.Incorrect
	}
	b.WriteString(gainStyle.Render(fmt.Sprintf("Gain:      %+.1f points", r.LearningGainPercentage)))
	b.WriteString("\n\n")

	if perf := r.ConceptPerformance; perf != nil {
		if len(perf.Weak) > 0 {
			b.WriteString(theme.Incorrect.Render("Weak:   "))
			b.WriteString(theme.Body.Render(strings.Join(perf.Weak, ", ")))
			b.WriteString("\n")
		}
		if len(perf.Strong) > 0 {
			b.WriteString(theme.Correct.Render("Strong: "))
			b.WriteString(theme.Body.Render(strings.Join(perf.Strong, ", ")))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if r.LearningInsight != "" {
		b.WriteString(theme.Subtitle.Render(r.LearningInsight))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Hint.Render("press q to quit"))
	return b.String()
}
