// Package orchestrator is the façade the UI and CLI talk to. It owns the
// load-mutate-save cycle around the progression engine and hides the
// store, sequencer, and question generator behind one surface.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/arjun/codequest/internal/curriculum"
	"github.com/arjun/codequest/internal/questiongen"
	"github.com/arjun/codequest/internal/run"
	"github.com/arjun/codequest/internal/sequencer"
	"github.com/arjun/codequest/internal/store"
)

// QuestionRequest is what the orchestrator asks the generator for: the
// run's current topic plus the difficulty band derived from its position.
type QuestionRequest struct {
	Topic      curriculum.Topic
	Difficulty sequencer.Difficulty
}

// Orchestrator coordinates one question/answer cycle at a time. It is not
// safe for concurrent use against the same save slot; the store's
// last-write-wins semantics make concurrent writers lose updates.
type Orchestrator struct {
	runs    store.RunRepo
	gen     questiongen.Generator
	banding sequencer.BandingPolicy

	newRunAggressive  bool
	newRunRemediation bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithBandingPolicy overrides the default thirds-based difficulty banding.
func WithBandingPolicy(p sequencer.BandingPolicy) Option {
	return func(o *Orchestrator) { o.banding = p }
}

// WithNewRunToggles sets the progression toggles applied to freshly
// created runs. Existing runs keep their stored toggles.
func WithNewRunToggles(aggressive, remediation bool) Option {
	return func(o *Orchestrator) {
		o.newRunAggressive = aggressive
		o.newRunRemediation = remediation
	}
}

// New creates an Orchestrator. The generator is expected to be a fallback
// chain that never errors; a bare generator works but its failures
// propagate to NextQuestion callers.
func New(runs store.RunRepo, gen questiongen.Generator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		runs:    runs,
		gen:     gen,
		banding: sequencer.ThirdsPolicy{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// StartOrResumeRun loads the run for a save slot, creating and persisting
// a fresh one when the slot is empty. A corrupted stored record behaves
// like an empty slot: the run starts over from the first topic.
func (o *Orchestrator) StartOrResumeRun(ctx context.Context, saveID string) (run.Run, error) {
	r, err := o.runs.Load(ctx, saveID)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return run.Run{}, fmt.Errorf("load save slot %q: %w", saveID, err)
	}

	r = run.New(saveID)
	r = run.WithAggressiveProgression(r, o.newRunAggressive)
	r = run.WithRemediationMode(r, o.newRunRemediation)
	if err := o.runs.Save(ctx, &r); err != nil {
		return run.Run{}, fmt.Errorf("create save slot %q: %w", saveID, err)
	}
	return r, nil
}

// NextQuestionRequest resolves the run's current topic and difficulty
// band. Completed runs keep practicing the last topic.
func (o *Orchestrator) NextQuestionRequest(r run.Run) (QuestionRequest, error) {
	topic, err := sequencer.CurrentTopic(r)
	if err != nil {
		return QuestionRequest{}, err
	}
	return QuestionRequest{
		Topic:      topic,
		Difficulty: o.banding.Difficulty(r.TopicPointer, curriculum.Len()),
	}, nil
}

// NextQuestion produces the next question for the run. priorQuestions are
// the prompts already served this session, for dedup.
func (o *Orchestrator) NextQuestion(ctx context.Context, r run.Run, priorQuestions []string) (*questiongen.Question, error) {
	req, err := o.NextQuestionRequest(r)
	if err != nil {
		return nil, err
	}
	return o.gen.Generate(ctx, questiongen.GenerateInput{
		Topic:          req.Topic,
		Difficulty:     req.Difficulty,
		PriorQuestions: priorQuestions,
	})
}

// RecordOutcome advances the run by one answered question and persists
// the result. The returned run is the new persisted state.
func (o *Orchestrator) RecordOutcome(ctx context.Context, r run.Run, outcome run.Outcome) (run.Run, error) {
	next := run.Advance(r, outcome, curriculum.Len())
	if err := o.runs.Save(ctx, &next); err != nil {
		return run.Run{}, fmt.Errorf("persist outcome for slot %q: %w", r.SaveID, err)
	}
	return next, nil
}

// SetAggressiveProgression flips the aggressive-progression toggle and
// persists it. The lowered threshold applies from the next answer; an
// in-flight streak is kept.
func (o *Orchestrator) SetAggressiveProgression(ctx context.Context, r run.Run, enabled bool) (run.Run, error) {
	next := run.WithAggressiveProgression(r, enabled)
	if err := o.runs.Save(ctx, &next); err != nil {
		return run.Run{}, fmt.Errorf("persist toggle for slot %q: %w", r.SaveID, err)
	}
	return next, nil
}

// SetRemediationMode flips the remediation toggle and persists it.
func (o *Orchestrator) SetRemediationMode(ctx context.Context, r run.Run, enabled bool) (run.Run, error) {
	next := run.WithRemediationMode(r, enabled)
	if err := o.runs.Save(ctx, &next); err != nil {
		return run.Run{}, fmt.Errorf("persist toggle for slot %q: %w", r.SaveID, err)
	}
	return next, nil
}

// ListSlots returns slot summaries, most recently updated first.
func (o *Orchestrator) ListSlots(ctx context.Context) ([]run.Summary, error) {
	return o.runs.List(ctx)
}

// ResetSlot deletes the slot's stored run. The next StartOrResumeRun for
// the slot begins a fresh run. Resetting a missing slot is a no-op.
func (o *Orchestrator) ResetSlot(ctx context.Context, saveID string) error {
	return o.runs.Delete(ctx, saveID)
}
