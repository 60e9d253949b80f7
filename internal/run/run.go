package run

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a run.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Outcome is the result of a single practice question. Modeled as an enum
// rather than a bool so future variants (skipped, timed-out) can be added
// without changing the Advance signature.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
)

// String returns the persistence/display label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Run is one learner's progress through the curriculum sequence,
// persisted under a save slot. Exactly one Run exists per slot.
//
// Runs are mutated only by Advance and the toggle setters; callers treat
// them as values and persist results through the orchestrator.
type Run struct {
	// ID identifies this run across events and logs.
	ID string

	// SaveID is the save slot this run belongs to.
	SaveID string

	// TopicPointer indexes into the flattened curriculum sequence. It is
	// always a valid index, or equal to the sequence length once the run
	// is completed.
	TopicPointer int

	// Streak counts consecutive correct answers on the current topic.
	// Reset to zero on any incorrect answer and on promotion.
	Streak int

	// CompletedQuestions is the lifetime question count for this run.
	// It never decreases, including after completion (free practice).
	CompletedQuestions int

	// AggressiveProgression lowers the promotion threshold from 3 to 2.
	AggressiveProgression bool

	// RemediationMode guarantees extra same-topic repetition after a
	// mistake: the streak reset means the learner cannot promote on the
	// very next correct answer.
	RemediationMode bool

	// LastUpdatedAt is stamped on every mutation; the store re-stamps it
	// at write time. Drives most-recent-first slot listing and
	// last-write-wins conflict visibility.
	LastUpdatedAt time.Time

	// Status is active until TopicPointer passes the last curriculum index.
	Status Status
}

// Summary is the slot-list projection of a run.
type Summary struct {
	SaveID             string
	TopicPointer       int
	CompletedQuestions int
	Status             Status
	LastUpdatedAt      time.Time
}

// New creates a fresh run for a save slot: pointer at the first topic,
// zero streak, zero completed questions, default toggles.
func New(saveID string) Run {
	return Run{
		ID:            uuid.NewString(),
		SaveID:        saveID,
		Status:        StatusActive,
		LastUpdatedAt: time.Now(),
	}
}

// Summary returns the slot-list projection of the run.
func (r Run) Summary() Summary {
	return Summary{
		SaveID:             r.SaveID,
		TopicPointer:       r.TopicPointer,
		CompletedQuestions: r.CompletedQuestions,
		Status:             r.Status,
		LastUpdatedAt:      r.LastUpdatedAt,
	}
}
