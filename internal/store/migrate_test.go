package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMigrateV1Payload(t *testing.T) {
	v1 := map[string]any{
		"version":                1,
		"run_id":                 "abc",
		"save_id":                "legacy",
		"topic_index":            6, // renamed to topic_pointer in v2
		"streak":                 1,
		"completed_questions":    30,
		"aggressive_progression": true,
		"last_updated_at":        int64(1700000000000),
		"status":                 "active",
	}

	p, err := decodePayload(v1)
	if err != nil {
		t.Fatalf("decode v1 payload: %v", err)
	}

	if p.Version != payloadVersion {
		t.Errorf("version = %d, want %d", p.Version, payloadVersion)
	}
	if p.TopicPointer != 6 {
		t.Errorf("topicPointer = %d, want 6 (from topic_index)", p.TopicPointer)
	}
	if p.RemediationMode {
		t.Error("remediationMode should default to false for v1 records")
	}
	if !p.AggressiveProgression {
		t.Error("aggressiveProgression lost in migration")
	}
}

func TestMigrateV1RecordLoadsFromStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().Run.Create().
		SetSaveID("legacy").
		SetUpdatedAt(time.Now()).
		SetPayload(map[string]any{
			"version":             1,
			"run_id":              "abc",
			"save_id":             "legacy",
			"topic_index":         3,
			"streak":              0,
			"completed_questions": 12,
			"last_updated_at":     int64(1700000000000),
			"status":              "active",
		}).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert legacy record: %v", err)
	}

	got, err := s.RunRepo().Load(ctx, "legacy")
	if err != nil {
		t.Fatalf("load legacy: %v", err)
	}
	if got.TopicPointer != 3 {
		t.Errorf("topicPointer = %d, want 3", got.TopicPointer)
	}
	if got.RemediationMode {
		t.Error("remediationMode should be false after migration")
	}
}

func TestUnknownVersionIsRejected(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing version", map[string]any{"save_id": "x", "status": "active"}},
		{"zero version", map[string]any{"version": 0, "save_id": "x", "status": "active"}},
		{"future version", map[string]any{"version": payloadVersion + 1, "save_id": "x", "status": "active"}},
		{"non-numeric version", map[string]any{"version": "two", "save_id": "x", "status": "active"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := migratePayload(tt.payload); err == nil {
				t.Error("expected migration error")
			}
		})
	}
}

func TestUnknownVersionLoadsAsNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().Run.Create().
		SetSaveID("future").
		SetUpdatedAt(time.Now()).
		SetPayload(map[string]any{"version": 99, "save_id": "future", "status": "active"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert future record: %v", err)
	}

	if _, err := s.RunRepo().Load(ctx, "future"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMigrationPreservesFloatVersions(t *testing.T) {
	// JSON round-tripping turns ints into float64; version detection must
	// tolerate that.
	m := map[string]any{
		"version":             float64(1),
		"run_id":              "abc",
		"save_id":             "float",
		"topic_index":         float64(2),
		"streak":              float64(1),
		"completed_questions": float64(5),
		"last_updated_at":     float64(1700000000000),
		"status":              "active",
	}

	p, err := decodePayload(m)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.TopicPointer != 2 || p.Streak != 1 || p.CompletedQuestions != 5 {
		t.Errorf("fields = (%d, %d, %d), want (2, 1, 5)", p.TopicPointer, p.Streak, p.CompletedQuestions)
	}
}
