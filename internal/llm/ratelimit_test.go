package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestRateLimitAllowsBurst(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRateLimit(mock, RateLimitConfig{RequestsPerMinute: 60, Burst: 3})

	start := time.Now()
	for range 3 {
		if _, err := p.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("burst of 3 took %s, expected no throttling", elapsed)
	}
}

func TestRateLimitBlocksOverBudget(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	// 1 request per second sustained, burst of 1.
	p := WithRateLimit(mock, RateLimitConfig{RequestsPerMinute: 60, Burst: 1})

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected the second request to block past the deadline")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1 (second request never reached provider)", mock.CallCount())
	}
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	mock := NewMockProvider()
	p := WithRateLimit(mock, RateLimitConfig{RequestsPerMinute: 0})
	if p != Provider(mock) {
		t.Fatal("zero rate should return the provider unwrapped")
	}
}

func TestRateLimitModelIDDelegates(t *testing.T) {
	p := WithRateLimit(NewMockProvider(), RateLimitConfig{RequestsPerMinute: 60, Burst: 1})
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q, want mock", p.ModelID())
	}
}
