package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/arjun/codequest/internal/curriculum"
	"github.com/arjun/codequest/internal/llm"
	"github.com/arjun/codequest/internal/sequencer"
)

func testInput(t *testing.T) GenerateInput {
	t.Helper()
	topic, ok := curriculum.TopicAt(0)
	if !ok {
		t.Fatal("no curriculum topics")
	}
	return GenerateInput{
		Topic:      topic,
		Difficulty: sequencer.DifficultyBeginner,
	}
}

func validLLMResponse() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "What is the zero value of a bool?",
		"format": "short_answer",
		"answer": "false",
		"choices": [],
		"explanation": "Booleans default to false when declared without an initializer."
	}`)
}

func TestLLMGeneratorHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLLMResponse()})
	g := NewLLM(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Format != FormatShortAnswer {
		t.Errorf("format = %q, want short_answer", q.Format)
	}
	if q.Answer != "false" {
		t.Errorf("answer = %q, want false", q.Answer)
	}
	if q.TopicID == "" {
		t.Error("topic ID not stamped on question")
	}
	if q.Source != "llm" {
		t.Errorf("source = %q, want llm", q.Source)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestLLMGeneratorRejectsInvalidStructure(t *testing.T) {
	// Multiple choice with a wrong number of options fails the
	// structural validator.
	bad := json.RawMessage(`{
		"prompt": "Pick one",
		"format": "multiple_choice",
		"answer": "a",
		"choices": ["a", "b"],
		"explanation": "Two options is not enough."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	g := NewLLM(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput(t))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestLLMGeneratorPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider error
	g := NewLLM(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput(t)); err == nil {
		t.Fatal("expected error from failed provider")
	}
}

func TestTemplateGeneratorIsDeterministic(t *testing.T) {
	g := NewTemplate()
	input := testInput(t)

	a, err := g.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := g.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a.Prompt != b.Prompt {
		t.Error("same input produced different template questions")
	}
	if a.Source != "template" {
		t.Errorf("source = %q, want template", a.Source)
	}
}

func TestTemplateGeneratorCyclesVariants(t *testing.T) {
	g := NewTemplate()
	input := testInput(t)

	first, _ := g.Generate(context.Background(), input)
	input.PriorQuestions = []string{first.Prompt}
	second, _ := g.Generate(context.Background(), input)

	if len(templates[input.Topic.ID]) > 1 && first.Prompt == second.Prompt {
		t.Error("expected a different variant after one question served")
	}
}

func TestTemplateGeneratorCoversEveryTopic(t *testing.T) {
	g := NewTemplate()
	for _, topic := range curriculum.Sequence() {
		q, err := g.Generate(context.Background(), GenerateInput{
			Topic:      topic,
			Difficulty: sequencer.DifficultyBeginner,
		})
		if err != nil {
			t.Fatalf("topic %q: %v", topic.ID, err)
		}
		if verr := (&StructuralValidator{}).Validate(q, GenerateInput{Topic: topic}); verr != nil {
			t.Errorf("topic %q template invalid: %v", topic.ID, verr)
		}
	}
}

func TestFallbackPrefersFirstGenerator(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLLMResponse()})
	g := NewFallback(NewLLM(mock, DefaultConfig()), NewTemplate())

	q, err := g.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Source != "llm" {
		t.Errorf("source = %q, want llm", q.Source)
	}
}

func TestFallbackFallsThroughToTemplate(t *testing.T) {
	mock := llm.NewMockProvider() // always fails
	g := NewFallback(NewLLM(mock, DefaultConfig()), NewTemplate())

	q, err := g.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Source != "template" {
		t.Errorf("source = %q, want template", q.Source)
	}
}

func TestFallbackNeverErrors(t *testing.T) {
	g := NewFallback(nil) // empty chain
	q, err := g.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("fallback returned error: %v", err)
	}
	if q.Source != "placeholder" {
		t.Errorf("source = %q, want placeholder", q.Source)
	}
	if verr := (&StructuralValidator{}).Validate(q, testInput(t)); verr != nil {
		t.Errorf("placeholder fails validation: %v", verr)
	}
}

func TestCheckAnswer(t *testing.T) {
	q := &Question{Answer: "false"}
	tests := []struct {
		in   string
		want bool
	}{
		{"false", true},
		{" FALSE ", true},
		{"False", true},
		{"true", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.in, q); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
