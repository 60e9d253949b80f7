package sequencer

import (
	"errors"
	"testing"

	"github.com/arjun/codequest/internal/curriculum"
	"github.com/arjun/codequest/internal/run"
)

func TestCurrentTopicAtPointer(t *testing.T) {
	r := run.New("slot")
	r.TopicPointer = 2

	got, err := CurrentTopic(r)
	if err != nil {
		t.Fatalf("current topic: %v", err)
	}
	want, _ := curriculum.TopicAt(2)
	if got.ID != want.ID {
		t.Errorf("topic = %q, want %q", got.ID, want.ID)
	}
}

func TestCurrentTopicNegativePointer(t *testing.T) {
	r := run.New("slot")
	r.TopicPointer = -1

	_, err := CurrentTopic(r)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
}

func TestCurrentTopicCompletedRunClampsToLast(t *testing.T) {
	r := run.New("slot")
	r.TopicPointer = curriculum.Len()
	r.Status = run.StatusCompleted

	got, err := CurrentTopic(r)
	if err != nil {
		t.Fatalf("current topic: %v", err)
	}
	want, _ := curriculum.TopicAt(curriculum.Len() - 1)
	if got.ID != want.ID {
		t.Errorf("topic = %q, want last topic %q", got.ID, want.ID)
	}
}

func TestNextTopic(t *testing.T) {
	r := run.New("slot")
	next, ok := NextTopic(r)
	if !ok {
		t.Fatal("expected a next topic for a fresh run")
	}
	want, _ := curriculum.TopicAt(1)
	if next.ID != want.ID {
		t.Errorf("next = %q, want %q", next.ID, want.ID)
	}
}

func TestNextTopicCompleted(t *testing.T) {
	r := run.New("slot")
	r.TopicPointer = curriculum.Len()
	r.Status = run.StatusCompleted

	if _, ok := NextTopic(r); ok {
		t.Error("expected no next topic for a completed run")
	}
}

func TestTopicProgressMatchesThreshold(t *testing.T) {
	tests := []struct {
		name        string
		streak      int
		aggressive  bool
		wantTotal   int
		wantPercent int
	}{
		{"fresh default", 0, false, 3, 0},
		{"one of three", 1, false, 3, 33},
		{"two of three", 2, false, 3, 67},
		{"fresh aggressive", 0, true, 2, 0},
		{"one of two", 1, true, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run.New("slot")
			r.Streak = tt.streak
			r.AggressiveProgression = tt.aggressive

			p := TopicProgress(r)
			if p.Current != tt.streak {
				t.Errorf("current = %d, want %d", p.Current, tt.streak)
			}
			if p.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", p.Total, tt.wantTotal)
			}
			if p.Percent != tt.wantPercent {
				t.Errorf("percent = %d, want %d", p.Percent, tt.wantPercent)
			}
		})
	}
}

func TestThirdsPolicy(t *testing.T) {
	p := ThirdsPolicy{}
	tests := []struct {
		pointer int
		total   int
		want    Difficulty
	}{
		{0, 24, DifficultyBeginner},
		{7, 24, DifficultyBeginner},
		{8, 24, DifficultyIntermediate},
		{15, 24, DifficultyIntermediate},
		{16, 24, DifficultyAdvanced},
		{23, 24, DifficultyAdvanced},
		{24, 24, DifficultyAdvanced}, // terminal pointer clamps
		{-3, 24, DifficultyBeginner}, // defensive clamp
		{0, 0, DifficultyBeginner},   // empty curriculum
	}

	for _, tt := range tests {
		if got := p.Difficulty(tt.pointer, tt.total); got != tt.want {
			t.Errorf("Difficulty(%d, %d) = %q, want %q", tt.pointer, tt.total, got, tt.want)
		}
	}
}

func TestOverallProgress(t *testing.T) {
	r := run.New("slot")
	r.TopicPointer = 5
	done, total := OverallProgress(r)
	if done != 5 || total != curriculum.Len() {
		t.Errorf("progress = %d/%d, want 5/%d", done, total, curriculum.Len())
	}

	r.TopicPointer = curriculum.Len() + 1 // should never happen; clamps anyway
	done, _ = OverallProgress(r)
	if done != curriculum.Len() {
		t.Errorf("done = %d, want clamped to %d", done, curriculum.Len())
	}
}
