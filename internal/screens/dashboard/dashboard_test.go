package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/codequest/internal/orchestrator"
	"github.com/arjun/codequest/internal/questiongen"
	"github.com/arjun/codequest/internal/router"
	"github.com/arjun/codequest/internal/run"
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

func (m *memRunRepo) List(context.Context) ([]run.Summary, error) {
	out := make([]run.Summary, 0, len(m.slots))
	for _, r := range m.slots {
		out = append(out, r.Summary())
	}
	// Most recent first, matching the store's ordering contract.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].LastUpdatedAt.After(out[i].LastUpdatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (m *memRunRepo) Delete(_ context.Context, saveID string) error {
	delete(m.slots, saveID)
	return nil
}

func testDashboard(t *testing.T, stored ...run.Run) (*DashboardScreen, *memRunRepo) {
	t.Helper()
	repo := &memRunRepo{slots: make(map[string]run.Run)}
	for _, r := range stored {
		repo.slots[r.SaveID] = r
	}
	orch := orchestrator.New(repo, questiongen.NewTemplate())
	return New(orch, "default"), repo
}

// step runs one Update and, if a command was returned, executes it and
// feeds the resulting message back in. Router messages are returned
// without being fed back.
func step(t *testing.T, d *DashboardScreen, msg tea.Msg) (*DashboardScreen, tea.Msg) {
	t.Helper()
	updated, cmd := d.Update(msg)
	next := updated.(*DashboardScreen)
	for cmd != nil {
		out := cmd()
		if out == nil {
			return next, nil
		}
		if _, ok := out.(router.PushScreenMsg); ok {
			return next, out
		}
		updated, cmd = next.Update(out)
		next = updated.(*DashboardScreen)
	}
	return next, nil
}

func load(t *testing.T, d *DashboardScreen) *DashboardScreen {
	t.Helper()
	cmd := d.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	next, _ := step(t, d, cmd())
	return next
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func storedRun(saveID string, pointer int, updated time.Time) run.Run {
	r := run.New(saveID)
	r.TopicPointer = pointer
	r.LastUpdatedAt = updated
	return r
}

func TestEmptyStoreShowsOnlyFreshRow(t *testing.T) {
	d, _ := testDashboard(t)
	d = load(t, d)

	if got := len(d.menu.Items); got != 1 {
		t.Fatalf("menu rows = %d, want 1", got)
	}
	view := d.View(80, 24)
	if !strings.Contains(view, "start fresh (default)") {
		t.Fatalf("view missing fresh row:\n%s", view)
	}
}

func TestSlotsListedMostRecentFirst(t *testing.T) {
	now := time.Now()
	d, _ := testDashboard(t,
		storedRun("old", 2, now.Add(-time.Hour)),
		storedRun("recent", 5, now),
	)
	d = load(t, d)

	if len(d.slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(d.slots))
	}
	if d.slots[0].SaveID != "recent" {
		t.Fatalf("first slot = %q, want recent", d.slots[0].SaveID)
	}
}

func TestEnterOnSlotPushesPracticeScreen(t *testing.T) {
	d, repo := testDashboard(t, storedRun("slot-a", 3, time.Now()))
	d = load(t, d)

	_, out := step(t, d, tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := out.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("enter produced %T, want PushScreenMsg", out)
	}
	if push.Screen == nil {
		t.Fatal("pushed screen is nil")
	}
	// Resume, not restart: the stored run keeps its pointer.
	if repo.slots["slot-a"].TopicPointer != 3 {
		t.Fatalf("pointer = %d, want 3", repo.slots["slot-a"].TopicPointer)
	}
}

func TestEnterOnFreshRowCreatesDefaultSlot(t *testing.T) {
	d, repo := testDashboard(t)
	d = load(t, d)

	_, out := step(t, d, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := out.(router.PushScreenMsg); !ok {
		t.Fatalf("enter produced %T, want PushScreenMsg", out)
	}
	if _, ok := repo.slots["default"]; !ok {
		t.Fatal("default slot was not created")
	}
}

func TestResetDeletesSlotAndReloads(t *testing.T) {
	d, repo := testDashboard(t, storedRun("slot-a", 3, time.Now()))
	d = load(t, d)

	d, _ = step(t, d, keyPress('x'))
	if _, ok := repo.slots["slot-a"]; ok {
		t.Fatal("slot-a still stored after reset")
	}
	if len(d.slots) != 0 {
		t.Fatalf("slots = %d after reset, want 0", len(d.slots))
	}
}

func TestNavigationClampsToRows(t *testing.T) {
	d, _ := testDashboard(t, storedRun("slot-a", 1, time.Now()))
	d = load(t, d)

	// One slot plus the fresh row: selection stops at index 1.
	d, _ = step(t, d, tea.KeyPressMsg{Code: tea.KeyDown})
	d, _ = step(t, d, tea.KeyPressMsg{Code: tea.KeyDown})
	if d.menu.Selected != 1 {
		t.Fatalf("selected = %d, want 1", d.menu.Selected)
	}
	d, _ = step(t, d, keyPress('k'))
	d, _ = step(t, d, keyPress('k'))
	if d.menu.Selected != 0 {
		t.Fatalf("selected = %d, want 0", d.menu.Selected)
	}
}

func TestReloadPicksUpProgressMadeElsewhere(t *testing.T) {
	d, repo := testDashboard(t, storedRun("slot-a", 3, time.Now()))
	d = load(t, d)

	// Practice advances the run behind the dashboard's back.
	r := repo.slots["slot-a"]
	r.TopicPointer = 4
	r.CompletedQuestions = 12
	repo.slots["slot-a"] = r

	d = load(t, d)
	view := d.View(80, 24)
	if !strings.Contains(view, "topic 4/") || !strings.Contains(view, "12 questions") {
		t.Fatalf("view shows stale slot data after reload:\n%s", view)
	}
}

func TestCompletedSlotShowsCompletedLabel(t *testing.T) {
	r := storedRun("done", 24, time.Now())
	r.Status = run.StatusCompleted
	r.CompletedQuestions = 80
	d, _ := testDashboard(t, r)
	d = load(t, d)

	view := d.View(80, 24)
	if !strings.Contains(view, "completed · 80 questions") {
		t.Fatalf("view missing completed label:\n%s", view)
	}
}
