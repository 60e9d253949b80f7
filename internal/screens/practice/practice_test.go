package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/codequest/internal/orchestrator"
	"github.com/arjun/codequest/internal/questiongen"
	"github.com/arjun/codequest/internal/run"
	"github.com/arjun/codequest/internal/sequencer"
	"github.com/arjun/codequest/internal/store"
)

// memRunRepo is a minimal in-memory store.RunRepo.
type memRunRepo struct {
	slots map[string]run.Run
}

func (m *memRunRepo) Load(_ context.Context, saveID string) (run.Run, error) {
	r, ok := m.slots[saveID]
	if !ok {
		return run.Run{}, store.ErrNotFound
	}
	return r, nil
}

func (m *memRunRepo) Save(_ context.Context, r *run.Run) error {
	m.slots[r.SaveID] = *r
	return nil
}

func (m *memRunRepo) List(context.Context) ([]run.Summary, error) { return nil, nil }

func (m *memRunRepo) Delete(_ context.Context, saveID string) error {
	delete(m.slots, saveID)
	return nil
}

// fixedGenerator always serves the same question.
type fixedGenerator struct {
	q questiongen.Question
}

func (g *fixedGenerator) Generate(_ context.Context, input questiongen.GenerateInput) (*questiongen.Question, error) {
	q := g.q
	q.TopicID = input.Topic.ID
	q.Difficulty = input.Difficulty
	return &q, nil
}

func shortAnswerQuestion() questiongen.Question {
	return questiongen.Question{
		Prompt:      "What is the zero value of an int?",
		Format:      questiongen.FormatShortAnswer,
		Answer:      "0",
		Explanation: "Numeric types default to zero.",
		Source:      "template",
	}
}

func multipleChoiceQuestion() questiongen.Question {
	return questiongen.Question{
		Prompt:  "Which keyword declares a constant?",
		Format:  questiongen.FormatMultipleChoice,
		Answer:  "const",
		Choices: []string{"let", "const", "static", "final"},
		Source:  "template",
	}
}

func testScreen(t *testing.T, q questiongen.Question) (*PracticeScreen, *memRunRepo) {
	t.Helper()
	repo := &memRunRepo{slots: make(map[string]run.Run)}
	orch := orchestrator.New(repo, &fixedGenerator{q: q})

	r, err := orch.StartOrResumeRun(context.Background(), "slot-1")
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	return New(orch, r), repo
}

// step runs one Update and, if a command was returned, executes it and
// feeds the resulting message back in. Returns the final screen.
func step(t *testing.T, p *PracticeScreen, msg tea.Msg) *PracticeScreen {
	t.Helper()
	updated, cmd := p.Update(msg)
	next := updated.(*PracticeScreen)
	for cmd != nil {
		out := cmd()
		if out == nil {
			break
		}
		updated, cmd = next.Update(out)
		next = updated.(*PracticeScreen)
	}
	return next
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func loadFirstQuestion(t *testing.T, p *PracticeScreen) *PracticeScreen {
	t.Helper()
	cmd := p.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	return step(t, p, cmd())
}

func TestQuestionReadyEntersAnsweringPhase(t *testing.T) {
	p, _ := testScreen(t, shortAnswerQuestion())
	p = loadFirstQuestion(t, p)

	if p.phase != phaseAnswering {
		t.Fatalf("phase = %d, want answering", p.phase)
	}
	if p.question == nil {
		t.Fatal("question not set")
	}
	if p.mcActive {
		t.Error("short answer question activated multiple choice")
	}
	if len(p.asked) != 1 {
		t.Errorf("asked = %d prompts, want 1", len(p.asked))
	}
}

func TestShortAnswerCorrectAdvancesStreak(t *testing.T) {
	p, repo := testScreen(t, shortAnswerQuestion())
	p = loadFirstQuestion(t, p)

	p = step(t, p, keyPress('0'))
	p = step(t, p, tea.KeyPressMsg{Code: tea.KeyEnter})

	if p.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", p.phase)
	}
	if p.lastOutcome != run.OutcomeCorrect {
		t.Errorf("outcome = %v, want correct", p.lastOutcome)
	}
	stored := repo.slots["slot-1"]
	if stored.Streak != 1 {
		t.Errorf("stored streak = %d, want 1", stored.Streak)
	}
	if stored.CompletedQuestions != 1 {
		t.Errorf("stored completed = %d, want 1", stored.CompletedQuestions)
	}
}

func TestShortAnswerIncorrectResetsStreak(t *testing.T) {
	p, repo := testScreen(t, shortAnswerQuestion())
	p = loadFirstQuestion(t, p)

	p = step(t, p, keyPress('7'))
	p = step(t, p, tea.KeyPressMsg{Code: tea.KeyEnter})

	if p.lastOutcome != run.OutcomeIncorrect {
		t.Errorf("outcome = %v, want incorrect", p.lastOutcome)
	}
	stored := repo.slots["slot-1"]
	if stored.Streak != 0 {
		t.Errorf("stored streak = %d, want 0", stored.Streak)
	}
	if stored.TopicPointer != 0 {
		t.Errorf("pointer = %d, want 0", stored.TopicPointer)
	}
}

func TestMultipleChoiceFlow(t *testing.T) {
	p, repo := testScreen(t, multipleChoiceQuestion())
	p = loadFirstQuestion(t, p)

	if !p.mcActive {
		t.Fatal("multiple choice not activated")
	}

	// Move from "let" to "const" and submit.
	p = step(t, p, tea.KeyPressMsg{Code: tea.KeyDown})
	p = step(t, p, tea.KeyPressMsg{Code: tea.KeyEnter})

	if p.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", p.phase)
	}
	if p.lastOutcome != run.OutcomeCorrect {
		t.Errorf("outcome = %v, want correct", p.lastOutcome)
	}
	if repo.slots["slot-1"].Streak != 1 {
		t.Errorf("stored streak = %d, want 1", repo.slots["slot-1"].Streak)
	}
}

func TestAnyKeyAfterFeedbackFetchesNextQuestion(t *testing.T) {
	p, _ := testScreen(t, shortAnswerQuestion())
	p = loadFirstQuestion(t, p)

	p = step(t, p, keyPress('0'))
	p = step(t, p, tea.KeyPressMsg{Code: tea.KeyEnter})
	p = step(t, p, keyPress(' '))

	if p.phase != phaseAnswering {
		t.Fatalf("phase = %d, want answering on next question", p.phase)
	}
	if len(p.asked) != 2 {
		t.Errorf("asked = %d prompts, want 2", len(p.asked))
	}
}

func TestPromotionResetsDedupWindow(t *testing.T) {
	p, _ := testScreen(t, shortAnswerQuestion())
	p = loadFirstQuestion(t, p)

	for i := 0; i < run.DefaultThreshold; i++ {
		p = step(t, p, keyPress('0'))
		p = step(t, p, tea.KeyPressMsg{Code: tea.KeyEnter})
		p = step(t, p, keyPress(' '))
	}

	if p.run.TopicPointer != 1 {
		t.Fatalf("pointer = %d, want 1 after promotion", p.run.TopicPointer)
	}
	// The dedup window restarted on the promoted topic: only the freshly
	// fetched question remains.
	if len(p.asked) != 1 {
		t.Errorf("asked = %d prompts, want 1 after promotion", len(p.asked))
	}
}

func TestProgressReportsCurriculumPosition(t *testing.T) {
	p, _ := testScreen(t, shortAnswerQuestion())
	done, total := p.Progress()
	if done != 0 {
		t.Errorf("done = %d, want 0", done)
	}
	if total == 0 {
		t.Error("total = 0, want curriculum length")
	}
	d, tot := sequencer.OverallProgress(p.run)
	if d != done || tot != total {
		t.Error("Progress disagrees with sequencer.OverallProgress")
	}
}
