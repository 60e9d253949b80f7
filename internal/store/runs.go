package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arjun/codequest/ent"
	entrun "github.com/arjun/codequest/ent/run"
	"github.com/arjun/codequest/internal/run"
)

// runRepo implements RunRepo using the ent client.
type runRepo struct {
	client *ent.Client
}

// runPayload is the persisted run document. Version-stamped so older
// records can be migrated forward at load time (see migrate.go).
type runPayload struct {
	Version               int    `json:"version"`
	RunID                 string `json:"run_id"`
	SaveID                string `json:"save_id"`
	TopicPointer          int    `json:"topic_pointer"`
	Streak                int    `json:"streak"`
	CompletedQuestions    int    `json:"completed_questions"`
	AggressiveProgression bool   `json:"aggressive_progression"`
	RemediationMode       bool   `json:"remediation_mode"`
	LastUpdatedAt         int64  `json:"last_updated_at"` // unix milliseconds
	Status                string `json:"status"`
}

func (r *runRepo) Load(ctx context.Context, saveID string) (run.Run, error) {
	rec, err := r.client.Run.Query().
		Where(entrun.SaveIDEQ(saveID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return run.Run{}, ErrNotFound
		}
		return run.Run{}, fmt.Errorf("query run %q: %w", saveID, err)
	}

	p, err := decodePayload(rec.Payload)
	if err != nil {
		// Corrupted or unrecognized record: the caller starts fresh. The
		// stale bytes are discarded by the next Save.
		return run.Run{}, ErrNotFound
	}
	return payloadToRun(p), nil
}

func (r *runRepo) Save(ctx context.Context, rn *run.Run) error {
	now := time.Now()
	rn.LastUpdatedAt = now

	m, err := encodePayload(runToPayload(*rn))
	if err != nil {
		return fmt.Errorf("encode run payload: %w", err)
	}

	existing, err := r.client.Run.Query().
		Where(entrun.SaveIDEQ(rn.SaveID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetUpdatedAt(now).
			SetPayload(m).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.Run.Create().
			SetSaveID(rn.SaveID).
			SetUpdatedAt(now).
			SetPayload(m).
			Save(ctx)
	default:
		return fmt.Errorf("query run %q: %w", rn.SaveID, err)
	}
	if err != nil {
		return fmt.Errorf("save run %q: %w", rn.SaveID, err)
	}
	return nil
}

func (r *runRepo) List(ctx context.Context) ([]run.Summary, error) {
	recs, err := r.client.Run.Query().
		Order(ent.Desc(entrun.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	summaries := make([]run.Summary, 0, len(recs))
	for _, rec := range recs {
		p, err := decodePayload(rec.Payload)
		if err != nil {
			continue // corrupted slot; invisible until overwritten
		}
		summaries = append(summaries, payloadToRun(p).Summary())
	}
	return summaries, nil
}

func (r *runRepo) Delete(ctx context.Context, saveID string) error {
	_, err := r.client.Run.Delete().
		Where(entrun.SaveIDEQ(saveID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete run %q: %w", saveID, err)
	}
	return nil
}

// encodePayload converts a runPayload to map[string]any for ent JSON storage.
func encodePayload(p runPayload) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// decodePayload migrates a stored document to the current version and
// validates its shape. Any failure means the record is unusable.
func decodePayload(m map[string]any) (runPayload, error) {
	migrated, err := migratePayload(m)
	if err != nil {
		return runPayload{}, err
	}

	b, err := json.Marshal(migrated)
	if err != nil {
		return runPayload{}, fmt.Errorf("marshal stored payload: %w", err)
	}
	var p runPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return runPayload{}, fmt.Errorf("unmarshal run payload: %w", err)
	}

	if err := validatePayload(p); err != nil {
		return runPayload{}, err
	}
	return p, nil
}

// validatePayload rejects records that violate run invariants.
func validatePayload(p runPayload) error {
	switch {
	case p.SaveID == "":
		return fmt.Errorf("run payload: missing save_id")
	case p.TopicPointer < 0:
		return fmt.Errorf("run payload: negative topic pointer %d", p.TopicPointer)
	case p.Streak < 0:
		return fmt.Errorf("run payload: negative streak %d", p.Streak)
	case p.CompletedQuestions < 0:
		return fmt.Errorf("run payload: negative completed questions %d", p.CompletedQuestions)
	case p.Status != string(run.StatusActive) && p.Status != string(run.StatusCompleted):
		return fmt.Errorf("run payload: unknown status %q", p.Status)
	}
	return nil
}

func runToPayload(r run.Run) runPayload {
	return runPayload{
		Version:               payloadVersion,
		RunID:                 r.ID,
		SaveID:                r.SaveID,
		TopicPointer:          r.TopicPointer,
		Streak:                r.Streak,
		CompletedQuestions:    r.CompletedQuestions,
		AggressiveProgression: r.AggressiveProgression,
		RemediationMode:       r.RemediationMode,
		LastUpdatedAt:         r.LastUpdatedAt.UnixMilli(),
		Status:                string(r.Status),
	}
}

func payloadToRun(p runPayload) run.Run {
	return run.Run{
		ID:                    p.RunID,
		SaveID:                p.SaveID,
		TopicPointer:          p.TopicPointer,
		Streak:                p.Streak,
		CompletedQuestions:    p.CompletedQuestions,
		AggressiveProgression: p.AggressiveProgression,
		RemediationMode:       p.RemediationMode,
		LastUpdatedAt:         time.UnixMilli(p.LastUpdatedAt),
		Status:                run.Status(p.Status),
	}
}
