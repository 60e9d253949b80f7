package run

import "time"

// Promotion thresholds: consecutive correct answers required on the
// current topic before advancing to the next one.
const (
	DefaultThreshold    = 3
	AggressiveThreshold = 2
)

// Threshold returns the promotion threshold in effect for the run.
// This is the single source of the rule; the sequencer's progress
// display derives from it so the two can never disagree.
func Threshold(r Run) int {
	if r.AggressiveProgression {
		return AggressiveThreshold
	}
	return DefaultThreshold
}

// Advance computes the run state after one recorded outcome. Pure: no I/O,
// the receiver is not mutated. curriculumLen is the length of the flattened
// curriculum sequence; a pointer equal to it is the terminal state.
//
// Completed runs keep counting questions (free practice) but the pointer
// stays frozen at the terminal index.
func Advance(r Run, o Outcome, curriculumLen int) Run {
	next := r
	next.CompletedQuestions++
	next.LastUpdatedAt = time.Now()

	if next.Status == StatusCompleted {
		return next
	}

	switch o {
	case OutcomeCorrect:
		next.Streak++
		if next.Streak >= Threshold(next) {
			next.TopicPointer++
			next.Streak = 0
		}
	default:
		// Incorrect (and any future non-correct variant): reset the
		// streak, never move the pointer. With remediation mode on, the
		// reset alone guarantees at least one more repetition on this
		// topic before a promotion check can pass.
		next.Streak = 0
	}

	if next.TopicPointer >= curriculumLen {
		next.TopicPointer = curriculumLen
		next.Status = StatusCompleted
	}

	return next
}

// WithAggressiveProgression returns the run with the aggressive-progression
// toggle set. All other progression fields pass through unchanged.
func WithAggressiveProgression(r Run, enabled bool) Run {
	r.AggressiveProgression = enabled
	r.LastUpdatedAt = time.Now()
	return r
}

// WithRemediationMode returns the run with the remediation toggle set.
func WithRemediationMode(r Run, enabled bool) Run {
	r.RemediationMode = enabled
	r.LastUpdatedAt = time.Now()
	return r
}
