package questiongen

import "fmt"

// Validator checks a generated question before it reaches the learner.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes the check.
	Validate(q *Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	if q.Prompt == "" {
		return fail("prompt is empty")
	}
	if len(q.Prompt) > 800 {
		return fail("prompt exceeds 800 characters")
	}
	if q.Answer == "" {
		return fail("answer is empty")
	}
	if q.Explanation == "" {
		return fail("explanation is empty")
	}
	if len(q.Explanation) > 1200 {
		return fail("explanation exceeds 1200 characters")
	}
	if q.Format != FormatShortAnswer && q.Format != FormatMultipleChoice {
		return fail(`format must be "short_answer" or "multiple_choice"`)
	}

	if q.Format == FormatMultipleChoice {
		if len(q.Choices) != 4 {
			return fail(fmt.Sprintf("multiple choice needs 4 options, got %d", len(q.Choices)))
		}
		found := false
		for _, c := range q.Choices {
			if c == q.Answer {
				found = true
				break
			}
		}
		if !found {
			return fail("answer does not match any choice")
		}
	} else if len(q.Choices) != 0 {
		return fail("short answer questions must not carry choices")
	}

	return nil
}
