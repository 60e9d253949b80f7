package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arjun/codequest/internal/run"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLoadUnknownSlot(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()

	_, err := repo.Load(context.Background(), "never-created")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	r := run.New("slot-a")
	r.TopicPointer = 4
	r.Streak = 2
	r.CompletedQuestions = 17
	r.AggressiveProgression = true
	r.RemediationMode = true
	preSave := r.LastUpdatedAt

	if err := repo.Save(ctx, &r); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "slot-a")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.ID != r.ID {
		t.Errorf("ID = %q, want %q", got.ID, r.ID)
	}
	if got.SaveID != "slot-a" {
		t.Errorf("SaveID = %q, want slot-a", got.SaveID)
	}
	if got.TopicPointer != 4 || got.Streak != 2 || got.CompletedQuestions != 17 {
		t.Errorf("progression fields = (%d, %d, %d), want (4, 2, 17)",
			got.TopicPointer, got.Streak, got.CompletedQuestions)
	}
	if !got.AggressiveProgression || !got.RemediationMode {
		t.Error("toggles not round-tripped")
	}
	if got.Status != run.StatusActive {
		t.Errorf("status = %q, want active", got.Status)
	}
	if got.LastUpdatedAt.Before(preSave) {
		t.Errorf("LastUpdatedAt = %v, want >= pre-save %v", got.LastUpdatedAt, preSave)
	}
}

func TestSaveOverwritesLastWriteWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	r := run.New("slot-b")
	if err := repo.Save(ctx, &r); err != nil {
		t.Fatalf("first save: %v", err)
	}

	r.TopicPointer = 9
	r.CompletedQuestions = 42
	if err := repo.Save(ctx, &r); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx, "slot-b")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TopicPointer != 9 || got.CompletedQuestions != 42 {
		t.Errorf("got (%d, %d), want second write (9, 42)", got.TopicPointer, got.CompletedQuestions)
	}
}

func TestListOrderedByRecency(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	for _, id := range []string{"old", "middle", "newest"} {
		r := run.New(id)
		if err := repo.Save(ctx, &r); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
		time.Sleep(2 * time.Millisecond) // distinct updated_at stamps
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("len = %d, want 3", len(summaries))
	}

	want := []string{"newest", "middle", "old"}
	for i, w := range want {
		if summaries[i].SaveID != w {
			t.Errorf("summaries[%d] = %q, want %q", i, summaries[i].SaveID, w)
		}
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	r := run.New("slot-c")
	if err := repo.Save(ctx, &r); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(ctx, "slot-c"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, "slot-c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("load after delete: err = %v, want ErrNotFound", err)
	}

	// Deleting again (and deleting a slot that never existed) is fine.
	if err := repo.Delete(ctx, "slot-c"); err != nil {
		t.Errorf("repeat delete: %v", err)
	}
	if err := repo.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("delete unknown slot: %v", err)
	}
}

func TestCorruptedPayloadTreatedAsNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	// Write a record whose payload fails shape validation.
	_, err := s.Client().Run.Create().
		SetSaveID("corrupt").
		SetUpdatedAt(time.Now()).
		SetPayload(map[string]any{
			"version":       payloadVersion,
			"save_id":       "corrupt",
			"topic_pointer": -7,
			"status":        "active",
		}).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert corrupt record: %v", err)
	}

	if _, err := repo.Load(ctx, "corrupt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	// Corrupted slots are skipped by List, not surfaced as errors.
	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, sum := range summaries {
		if sum.SaveID == "corrupt" {
			t.Error("corrupted slot appeared in listing")
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq = %d, want %d", seq, want)
		}
	}
}

func TestEventAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "question-gen",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    20,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("events not ordered newest first")
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("len(usage) = %d, want 1", len(usage))
	}
	u := usage[0]
	if u.Purpose != "question-gen" || u.Calls != 3 || u.InputTokens != 300 || u.OutputTokens != 150 {
		t.Errorf("usage = %+v, want 3 calls, 300 in, 150 out for question-gen", u)
	}
}
