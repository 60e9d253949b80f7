// Package sequencer translates a run's topic pointer into user-facing
// progress information over the immutable curriculum catalog.
package sequencer

import (
	"errors"
	"math"

	"github.com/arjun/codequest/internal/curriculum"
	"github.com/arjun/codequest/internal/run"
)

// ErrOutOfRange indicates a negative topic pointer. That is an invariant
// violation upstream, surfaced as fatal for the call rather than retried.
var ErrOutOfRange = errors.New("topic pointer out of range")

// Progress is the display projection of streak progress toward promotion.
type Progress struct {
	Current int // streak so far on the current topic
	Total   int // threshold in effect (2 aggressive, 3 default)
	Percent int // round(100 * Current / Total)
}

// CurrentTopic returns the topic the run is currently serving. For a
// completed run this is the last curriculum topic (free practice stays
// there). Fails only on a negative pointer.
func CurrentTopic(r run.Run) (curriculum.Topic, error) {
	if r.TopicPointer < 0 {
		return curriculum.Topic{}, ErrOutOfRange
	}

	idx := r.TopicPointer
	if idx >= curriculum.Len() {
		idx = curriculum.Len() - 1
	}

	t, ok := curriculum.TopicAt(idx)
	if !ok {
		return curriculum.Topic{}, ErrOutOfRange
	}
	return t, nil
}

// NextTopic returns the topic after the current one, or false when the run
// is completed or already on the last topic.
func NextTopic(r run.Run) (curriculum.Topic, bool) {
	if r.Status == run.StatusCompleted {
		return curriculum.Topic{}, false
	}
	return curriculum.TopicAt(r.TopicPointer + 1)
}

// TopicProgress projects the run's streak onto the promotion threshold in
// effect. It derives from run.Threshold, so the percentage shown can never
// contradict the actual promotion rule.
func TopicProgress(r run.Run) Progress {
	total := run.Threshold(r)
	current := r.Streak
	percent := int(math.Round(100 * float64(current) / float64(total)))
	return Progress{Current: current, Total: total, Percent: percent}
}

// OverallProgress returns how far through the curriculum the run is,
// as completed topics out of total. Used by the dashboard.
func OverallProgress(r run.Run) (done, total int) {
	total = curriculum.Len()
	done = r.TopicPointer
	if done > total {
		done = total
	}
	return done, total
}
