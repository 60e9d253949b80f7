package orchestrator

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/arjun/codequest/internal/curriculum"
	"github.com/arjun/codequest/internal/questiongen"
	"github.com/arjun/codequest/internal/run"
	"github.com/arjun/codequest/internal/sequencer"
	"github.com/arjun/codequest/internal/store"
)

// memRunRepo is an in-memory store.RunRepo for façade tests.
type memRunRepo struct {
	slots   map[string]run.Run
	saveErr error
}

func newMemRunRepo() *memRunRepo {
	return &memRunRepo{slots: make(map[string]run.Run)}
}

func (m *memRunRepo) Load(_ context.Context, saveID string) (run.Run, error) {
	r, ok := m.slots[saveID]
	if !ok {
		return run.Run{}, store.ErrNotFound
	}
	return r, nil
}

func (m *memRunRepo) Save(_ context.Context, r *run.Run) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.slots[r.SaveID] = *r
	return nil
}

func (m *memRunRepo) List(_ context.Context) ([]run.Summary, error) {
	var out []run.Summary
	for _, r := range m.slots {
		out = append(out, r.Summary())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUpdatedAt.After(out[j].LastUpdatedAt)
	})
	return out, nil
}

func (m *memRunRepo) Delete(_ context.Context, saveID string) error {
	delete(m.slots, saveID)
	return nil
}

func newTestOrchestrator(repo *memRunRepo) *Orchestrator {
	return New(repo, questiongen.NewFallback(questiongen.NewTemplate()))
}

func TestStartCreatesFreshRun(t *testing.T) {
	repo := newMemRunRepo()
	o := newTestOrchestrator(repo)

	r, err := o.StartOrResumeRun(context.Background(), "slot-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if r.TopicPointer != 0 || r.Streak != 0 || r.CompletedQuestions != 0 {
		t.Errorf("fresh run not zeroed: %+v", r)
	}
	if r.Status != run.StatusActive {
		t.Errorf("status = %q, want active", r.Status)
	}
	if _, ok := repo.slots["slot-1"]; !ok {
		t.Error("fresh run was not persisted")
	}
}

func TestNewRunTogglesApplyToFreshRunsOnly(t *testing.T) {
	repo := newMemRunRepo()
	o := New(repo, questiongen.NewFallback(questiongen.NewTemplate()),
		WithNewRunToggles(true, true))
	ctx := context.Background()

	r, err := o.StartOrResumeRun(ctx, "slot-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !r.AggressiveProgression || !r.RemediationMode {
		t.Errorf("fresh run toggles = (%v, %v), want (true, true)",
			r.AggressiveProgression, r.RemediationMode)
	}
	stored := repo.slots["slot-1"]
	if !stored.AggressiveProgression || !stored.RemediationMode {
		t.Error("configured toggles were not persisted with the fresh run")
	}

	// The lowered threshold is in effect from the first question.
	for range run.AggressiveThreshold {
		r, err = o.RecordOutcome(ctx, r, run.OutcomeCorrect)
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if r.TopicPointer != 1 {
		t.Errorf("pointer = %d after %d correct, want 1", r.TopicPointer, run.AggressiveThreshold)
	}

	// An existing run keeps its stored toggles.
	r, err = o.SetAggressiveProgression(ctx, r, false)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	resumed, err := o.StartOrResumeRun(ctx, "slot-1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.AggressiveProgression {
		t.Error("resume overwrote a stored toggle with the configured default")
	}
}

func TestResumeReturnsStoredRun(t *testing.T) {
	repo := newMemRunRepo()
	o := newTestOrchestrator(repo)

	first, err := o.StartOrResumeRun(context.Background(), "slot-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	first, err = o.RecordOutcome(context.Background(), first, run.OutcomeCorrect)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	resumed, err := o.StartOrResumeRun(context.Background(), "slot-1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.ID != first.ID {
		t.Error("resume created a new run instead of loading the stored one")
	}
	if resumed.CompletedQuestions != 1 {
		t.Errorf("completed = %d, want 1", resumed.CompletedQuestions)
	}
}

func TestRecordOutcomePersistsAdvance(t *testing.T) {
	repo := newMemRunRepo()
	o := newTestOrchestrator(repo)
	ctx := context.Background()

	r, _ := o.StartOrResumeRun(ctx, "slot-1")
	for range run.DefaultThreshold {
		var err error
		r, err = o.RecordOutcome(ctx, r, run.OutcomeCorrect)
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	if r.TopicPointer != 1 {
		t.Errorf("pointer = %d, want 1 after a full streak", r.TopicPointer)
	}
	if got := repo.slots["slot-1"]; got.TopicPointer != 1 {
		t.Errorf("stored pointer = %d, want 1", got.TopicPointer)
	}
}

func TestRecordOutcomeSaveFailureSurfaces(t *testing.T) {
	repo := newMemRunRepo()
	o := newTestOrchestrator(repo)
	ctx := context.Background()

	r, _ := o.StartOrResumeRun(ctx, "slot-1")
	repo.saveErr = errors.New("disk full")

	if _, err := o.RecordOutcome(ctx, r, run.OutcomeCorrect); err == nil {
		t.Fatal("expected save failure to surface")
	}
	if got := repo.slots["slot-1"]; got.CompletedQuestions != 0 {
		t.Error("failed save mutated the stored run")
	}
}

func TestNextQuestionRequestBandsByPosition(t *testing.T) {
	o := newTestOrchestrator(newMemRunRepo())

	r := run.New("slot-1")
	req, err := o.NextQuestionRequest(r)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Difficulty != sequencer.DifficultyBeginner {
		t.Errorf("difficulty at start = %q, want beginner", req.Difficulty)
	}
	first, _ := curriculum.TopicAt(0)
	if req.Topic.ID != first.ID {
		t.Errorf("topic = %q, want first topic %q", req.Topic.ID, first.ID)
	}

	r.TopicPointer = curriculum.Len() - 1
	req, err = o.NextQuestionRequest(r)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Difficulty != sequencer.DifficultyAdvanced {
		t.Errorf("difficulty near end = %q, want advanced", req.Difficulty)
	}
}

func TestNextQuestionRequestCompletedRunStaysOnLastTopic(t *testing.T) {
	o := newTestOrchestrator(newMemRunRepo())

	r := run.New("slot-1")
	r.TopicPointer = curriculum.Len()
	r.Status = run.StatusCompleted

	req, err := o.NextQuestionRequest(r)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	last, _ := curriculum.TopicAt(curriculum.Len() - 1)
	if req.Topic.ID != last.ID {
		t.Errorf("topic = %q, want last topic %q", req.Topic.ID, last.ID)
	}
}

func TestNextQuestionRequestNegativePointer(t *testing.T) {
	o := newTestOrchestrator(newMemRunRepo())

	r := run.New("slot-1")
	r.TopicPointer = -1
	if _, err := o.NextQuestionRequest(r); !errors.Is(err, sequencer.ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestNextQuestionUsesFallbackChain(t *testing.T) {
	o := newTestOrchestrator(newMemRunRepo())

	r := run.New("slot-1")
	q, err := o.NextQuestion(context.Background(), r, nil)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	first, _ := curriculum.TopicAt(0)
	if q.TopicID != first.ID {
		t.Errorf("question topic = %q, want %q", q.TopicID, first.ID)
	}
	if q.Source != "template" {
		t.Errorf("source = %q, want template", q.Source)
	}
}

func TestBandingPolicyOverride(t *testing.T) {
	repo := newMemRunRepo()
	o := New(repo, questiongen.NewFallback(questiongen.NewTemplate()),
		WithBandingPolicy(sequencer.FixedPolicy{Level: sequencer.DifficultyAdvanced}))

	req, err := o.NextQuestionRequest(run.New("slot-1"))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Difficulty != sequencer.DifficultyAdvanced {
		t.Errorf("difficulty = %q, want advanced from fixed policy", req.Difficulty)
	}
}

func TestToggleSettersPersist(t *testing.T) {
	repo := newMemRunRepo()
	o := newTestOrchestrator(repo)
	ctx := context.Background()

	r, _ := o.StartOrResumeRun(ctx, "slot-1")

	r, err := o.SetAggressiveProgression(ctx, r, true)
	if err != nil {
		t.Fatalf("set aggressive: %v", err)
	}
	if !repo.slots["slot-1"].AggressiveProgression {
		t.Error("aggressive toggle not persisted")
	}

	r, err = o.SetRemediationMode(ctx, r, true)
	if err != nil {
		t.Fatalf("set remediation: %v", err)
	}
	if !repo.slots["slot-1"].RemediationMode {
		t.Error("remediation toggle not persisted")
	}
	if !r.AggressiveProgression {
		t.Error("remediation toggle dropped the aggressive setting")
	}
}

func TestResetSlotStartsOver(t *testing.T) {
	repo := newMemRunRepo()
	o := newTestOrchestrator(repo)
	ctx := context.Background()

	r, _ := o.StartOrResumeRun(ctx, "slot-1")
	r, _ = o.RecordOutcome(ctx, r, run.OutcomeCorrect)

	if err := o.ResetSlot(ctx, "slot-1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	fresh, err := o.StartOrResumeRun(ctx, "slot-1")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if fresh.ID == r.ID {
		t.Error("reset did not produce a new run")
	}
	if fresh.CompletedQuestions != 0 {
		t.Errorf("completed = %d, want 0 after reset", fresh.CompletedQuestions)
	}

	// Resetting a missing slot is a no-op.
	if err := o.ResetSlot(ctx, "never-existed"); err != nil {
		t.Fatalf("reset missing slot: %v", err)
	}
}

func TestListSlotsMostRecentFirst(t *testing.T) {
	repo := newMemRunRepo()
	o := newTestOrchestrator(repo)
	ctx := context.Background()

	a, _ := o.StartOrResumeRun(ctx, "slot-a")
	_, _ = o.StartOrResumeRun(ctx, "slot-b")
	// Touch slot-a last so it sorts first.
	if _, err := o.RecordOutcome(ctx, a, run.OutcomeIncorrect); err != nil {
		t.Fatalf("record: %v", err)
	}

	slots, err := o.ListSlots(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(slots))
	}
	if slots[0].SaveID != "slot-a" {
		t.Errorf("first slot = %q, want slot-a", slots[0].SaveID)
	}
}
