package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a programming tutor creating short practice questions for self-taught learners.

Rules:
- Generate a single question for the given topic and difficulty band.
- Use plain ASCII text. Code fragments use standard Go syntax, no markdown fences.
- The question must be answerable in under a minute: predict an output, spot a bug, pick the correct idiom, or name a result.
- The answer must be unambiguous and exactly checkable as a string.
- Choose "short_answer" when the learner should type a value or output line.
- Choose "multiple_choice" for conceptual or identification questions. Provide exactly 4 options where exactly one is correct; distractors should reflect common mistakes.
- The explanation should state why the answer is correct in two or three sentences.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Summary: %s\n", input.Topic.Summary)
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(input.Topic.Keywords, ", "))
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nAlready asked this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
