package questiongen

import (
	"context"
	"fmt"
	"os"
)

// FallbackGenerator chains generators and guarantees a usable question:
// each generator is tried in order, and if all fail a deterministic
// placeholder is returned. Generate never returns an error; the
// orchestrator relies on that contract.
type FallbackGenerator struct {
	chain []Generator
}

// NewFallback creates a FallbackGenerator trying the given generators in
// order. A nil generator in the list is skipped, so callers can pass an
// unconfigured LLM generator slot without special-casing.
func NewFallback(chain ...Generator) *FallbackGenerator {
	var compact []Generator
	for _, g := range chain {
		if g != nil {
			compact = append(compact, g)
		}
	}
	return &FallbackGenerator{chain: compact}
}

// Generate returns the first successful question from the chain, or a
// placeholder. The error return exists to satisfy Generator; it is always nil.
func (g *FallbackGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	for _, gen := range g.chain {
		q, err := gen.Generate(ctx, input)
		if err == nil {
			return q, nil
		}
		fmt.Fprintf(os.Stderr, "warning: question generation fell through: %v\n", err)
	}
	return placeholder(input), nil
}

// placeholder is the question of last resort. Deterministic and always
// answerable so a broken generation path never stalls a session.
func placeholder(input GenerateInput) *Question {
	return &Question{
		Prompt: fmt.Sprintf("Review time: in one word, is %q part of this curriculum? (yes/no)", input.Topic.Name),
		Format: FormatShortAnswer,
		Answer: "yes",
		Explanation: fmt.Sprintf("%s is the current topic. Question generation was unavailable, so this is a placeholder.",
			input.Topic.Name),
		TopicID:    input.Topic.ID,
		Difficulty: input.Difficulty,
		Source:     "placeholder",
	}
}

// CheckAnswer reports whether a learner's answer matches the question's
// canonical answer. Comparison is case-insensitive with surrounding
// whitespace ignored; multiple choice compares the selected option text.
func CheckAnswer(learnerAnswer string, q *Question) bool {
	return normalize(learnerAnswer) == normalize(q.Answer)
}

func normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
