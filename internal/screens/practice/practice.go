// Package practice runs the question/answer loop for one save slot.
package practice

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/codequest/internal/orchestrator"
	"github.com/arjun/codequest/internal/questiongen"
	"github.com/arjun/codequest/internal/run"
	"github.com/arjun/codequest/internal/screen"
	"github.com/arjun/codequest/internal/sequencer"
	"github.com/arjun/codequest/internal/ui/components"
	"github.com/arjun/codequest/internal/ui/layout"
	"github.com/arjun/codequest/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseFeedback
)

// questionReadyMsg is sent when the next question has been generated.
type questionReadyMsg struct {
	Question *questiongen.Question
	Err      error
}

// outcomeSavedMsg is sent after an answer has been recorded and persisted.
type outcomeSavedMsg struct {
	Run     run.Run
	Outcome run.Outcome
	Err     error
}

// toggleSavedMsg is sent after a progression toggle has been persisted.
type toggleSavedMsg struct {
	Run run.Run
	Err error
}

// PracticeScreen implements screen.Screen for an active practice loop.
type PracticeScreen struct {
	orch        *orchestrator.Orchestrator
	run         run.Run
	question    *questiongen.Question
	input       components.TextInput
	mc          components.MultiChoice
	mcActive    bool
	phase       phase
	promoted    bool
	lastOutcome run.Outcome
	asked       []string
	errMsg      string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for an already started run.
func New(orch *orchestrator.Orchestrator, r run.Run) *PracticeScreen {
	return &PracticeScreen{orch: orch, run: r}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.fetchQuestion()
}

func (p *PracticeScreen) Title() string {
	return "Practice: " + p.run.SaveID
}

// Progress reports curriculum position for the header.
func (p *PracticeScreen) Progress() (done, total int) {
	return sequencer.OverallProgress(p.run)
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+A", Description: "Aggressive mode"},
			{Key: "Ctrl+R", Description: "Remediation mode"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return nil
	}
}

func (p *PracticeScreen) fetchQuestion() tea.Cmd {
	r, asked := p.run, p.asked
	return func() tea.Msg {
		q, err := p.orch.NextQuestion(context.Background(), r, asked)
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (p *PracticeScreen) recordOutcome(outcome run.Outcome) tea.Cmd {
	r := p.run
	return func() tea.Msg {
		next, err := p.orch.RecordOutcome(context.Background(), r, outcome)
		return outcomeSavedMsg{Run: next, Outcome: outcome, Err: err}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return p.handleQuestionReady(msg)
	case outcomeSavedMsg:
		return p.handleOutcomeSaved(msg)
	case toggleSavedMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.run = msg.Run
		return p, nil
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.phase == phaseAnswering && !p.mcActive {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	p.question = msg.Question
	p.asked = append(p.asked, msg.Question.Prompt)
	p.phase = phaseAnswering
	p.errMsg = ""

	if msg.Question.Format == questiongen.FormatMultipleChoice {
		p.mcActive = true
		correct := 0
		for i, c := range msg.Question.Choices {
			if c == msg.Question.Answer {
				correct = i
				break
			}
		}
		p.mc = components.NewMultiChoice(msg.Question.Prompt, msg.Question.Choices, correct)
		return p, nil
	}

	p.mcActive = false
	p.input = components.NewTextInput("Type your answer...", false, 80)
	return p, p.input.Init()
}

func (p *PracticeScreen) handleOutcomeSaved(msg outcomeSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	p.promoted = msg.Run.TopicPointer > p.run.TopicPointer
	p.lastOutcome = msg.Outcome
	p.run = msg.Run
	p.phase = phaseFeedback
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.phase {
	case phaseFeedback:
		if key == "esc" {
			return p, nil // router pops
		}
		if p.promoted {
			// New topic, new dedup window.
			p.asked = nil
		}
		p.phase = phaseLoading
		return p, p.fetchQuestion()

	case phaseAnswering:
		switch key {
		case "ctrl+a":
			return p, p.toggle(func(ctx context.Context) (run.Run, error) {
				return p.orch.SetAggressiveProgression(ctx, p.run, !p.run.AggressiveProgression)
			})
		case "ctrl+r":
			return p, p.toggle(func(ctx context.Context) (run.Run, error) {
				return p.orch.SetRemediationMode(ctx, p.run, !p.run.RemediationMode)
			})
		}

		if p.mcActive {
			var cmd tea.Cmd
			p.mc, cmd = p.mc.Update(msg)
			if p.mc.Submitted {
				outcome := run.OutcomeIncorrect
				if p.mc.IsCorrect() {
					outcome = run.OutcomeCorrect
				}
				return p, p.recordOutcome(outcome)
			}
			return p, cmd
		}

		if key == "enter" {
			answer := strings.TrimSpace(p.input.Value())
			if answer == "" {
				return p, nil
			}
			correct := questiongen.CheckAnswer(answer, p.question)
			p.input.Submit(correct)
			outcome := run.OutcomeIncorrect
			if correct {
				outcome = run.OutcomeCorrect
			}
			return p, p.recordOutcome(outcome)
		}

		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PracticeScreen) toggle(apply func(context.Context) (run.Run, error)) tea.Cmd {
	return func() tea.Msg {
		next, err := apply(context.Background())
		return toggleSavedMsg{Run: next, Err: err}
	}
}

func (p *PracticeScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().Padding(1, 4).Render(
			theme.Incorrect.Render("Error: "+p.errMsg) + "\n\n" +
				theme.Hint.Render("Press Esc to go back."))
	}
	if p.phase == phaseLoading || p.question == nil {
		return lipgloss.NewStyle().Padding(1, 4).Render(theme.Hint.Render("Generating question..."))
	}

	var b strings.Builder

	b.WriteString(p.renderTopicLine())
	b.WriteString("\n\n")

	if p.mcActive {
		b.WriteString(p.mc.View())
	} else {
		b.WriteString(theme.Body.Bold(true).Render(p.question.Prompt))
		b.WriteString("\n\n")
		b.WriteString(p.input.View())
	}
	b.WriteString("\n")

	if p.phase == phaseFeedback {
		b.WriteString("\n")
		b.WriteString(p.renderFeedback())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.renderStreakBar(width))

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (p *PracticeScreen) renderTopicLine() string {
	topic, err := sequencer.CurrentTopic(p.run)
	if err != nil {
		return ""
	}
	line := fmt.Sprintf("%s  ·  %s", topic.Name, p.question.Difficulty)
	if p.run.AggressiveProgression {
		line += "  ·  aggressive"
	}
	if p.run.RemediationMode {
		line += "  ·  remediation"
	}
	if p.run.Status == run.StatusCompleted {
		line += "  ·  free practice"
	}
	return theme.Subtitle.Align(lipgloss.Left).Render(line)
}

func (p *PracticeScreen) renderFeedback() string {
	var s string
	if p.lastOutcome == run.OutcomeCorrect {
		s = theme.Correct.Render("✓ Correct!")
		if p.promoted {
			s += " " + theme.Correct.Render("Topic cleared, moving on.")
		}
	} else {
		s = theme.Incorrect.Render("✗ Not quite.")
		if !p.mcActive {
			s += " " + theme.Body.Render("Answer: "+p.question.Answer)
		}
	}
	if p.question.Explanation != "" {
		s += "\n" + theme.Hint.Render(p.question.Explanation)
	}
	return s
}

func (p *PracticeScreen) renderStreakBar(width int) string {
	prog := sequencer.TopicProgress(p.run)
	barWidth := width - 12
	if barWidth > 40 {
		barWidth = 40
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Streak %d/%d", prog.Current, prog.Total),
		float64(prog.Percent)/100,
		false,
		barWidth,
	)
	return bar.View()
}
