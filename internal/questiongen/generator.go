package questiongen

import "context"

// Generator produces practice questions for a topic and difficulty.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Returns a validated Question or an error.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
