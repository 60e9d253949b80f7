package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/arjun/codequest/internal/store"
)

// capturingEventRepo collects appended events in memory.
type capturingEventRepo struct {
	events    []store.LLMRequestEventData
	appendErr error
}

func (r *capturingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.events = append(r.events, data)
	return nil
}

func (r *capturingEventRepo) RecentLLMEvents(context.Context, int) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *capturingEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	repo := &capturingEventRepo{}
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "question-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("event not marked successful")
	}
	if ev.Purpose != "question-gen" {
		t.Errorf("purpose = %q, want question-gen", ev.Purpose)
	}
	if ev.Provider != "mock" {
		t.Errorf("provider = %q, want mock", ev.Provider)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider() // empty queue fails
	repo := &capturingEventRepo{}
	p := WithLogging(mock, "mock", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("failed request marked successful")
	}
	if ev.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", ev.Purpose)
	}
}

func TestLoggingFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	repo := &capturingEventRepo{appendErr: errors.New("disk full")}
	p := WithLogging(mock, "mock", repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure leaked into request: %v", err)
	}
}
