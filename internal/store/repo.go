package store

import (
	"context"
	"errors"
	"time"

	"github.com/arjun/codequest/internal/run"
)

// ErrNotFound indicates the requested save slot has no stored run. A
// corrupted or unrecognized stored record reports the same error: the
// contract is a full reset, never a partial fix-up.
var ErrNotFound = errors.New("save slot not found")

// RunRepo is the durable mapping from save slot to run.
//
// Writes are last-write-wins per slot. Single-writer-at-a-time per slot is
// caller discipline, not enforced here; concurrent writers to the same slot
// lose updates, visibly via the LastUpdatedAt stamp.
type RunRepo interface {
	// Load returns the run stored for the slot. ErrNotFound when the slot
	// was never created, was deleted, or its record fails shape validation.
	Load(ctx context.Context, saveID string) (run.Run, error)

	// Save overwrites the slot unconditionally, stamping LastUpdatedAt at
	// write time on both the stored record and the passed run.
	Save(ctx context.Context, r *run.Run) error

	// List returns slot summaries ordered by LastUpdatedAt descending.
	// Corrupted records are skipped.
	List(ctx context.Context) ([]run.Summary, error)

	// Delete removes the slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, saveID string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates token usage for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMEvents returns the most recent events, newest first.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
