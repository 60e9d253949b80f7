package questiongen

import (
	"context"
	"fmt"
)

// TemplateGenerator serves deterministic canned questions per topic. It is
// the offline path: no API key required, and the fallback when the LLM
// generator fails.
type TemplateGenerator struct{}

// NewTemplate creates a TemplateGenerator.
func NewTemplate() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate picks the next template variant for the topic, cycling through
// variants based on how many questions were already served this session.
func (g *TemplateGenerator) Generate(_ context.Context, input GenerateInput) (*Question, error) {
	variants := templates[input.Topic.ID]
	if len(variants) == 0 {
		variants = genericVariants(input)
	}

	q := variants[len(input.PriorQuestions)%len(variants)]
	q.TopicID = input.Topic.ID
	q.Difficulty = input.Difficulty
	q.Source = "template"
	return &q, nil
}

// genericVariants covers topics without a dedicated template set.
func genericVariants(input GenerateInput) []Question {
	t := input.Topic
	return []Question{
		{
			Prompt: fmt.Sprintf("Which statement about %s is correct?", t.Name),
			Format: FormatMultipleChoice,
			Answer: fmt.Sprintf("%s: %s", t.Name, t.Summary),
			Choices: []string{
				fmt.Sprintf("%s: %s", t.Name, t.Summary),
				fmt.Sprintf("%s is only relevant in other languages, not Go", t.Name),
				fmt.Sprintf("%s always requires the reflect package", t.Name),
				fmt.Sprintf("%s cannot be unit tested", t.Name),
			},
			Explanation: fmt.Sprintf("The topic covers: %s.", t.Summary),
		},
	}
}

// templates holds hand-written variants for the topics that benefit most
// from the offline path. Remaining topics use genericVariants.
var templates = map[string][]Question{
	"variable-declaration": {
		{
			Prompt:      `What is the value of n after: var n int`,
			Format:      FormatShortAnswer,
			Answer:      "0",
			Explanation: "A declared-but-uninitialized variable takes its type's zero value; for int that is 0.",
		},
		{
			Prompt: "Which declaration is invalid at package level?",
			Format: FormatMultipleChoice,
			Answer: "n := 5",
			Choices: []string{
				"n := 5",
				"var n = 5",
				"var n int = 5",
				"var n int",
			},
			Explanation: "Short variable declarations (:=) are only allowed inside functions.",
		},
	},
	"loops": {
		{
			Prompt:      "How many times does this loop body run?\n\nfor i := 0; i < 5; i += 2 { }",
			Format:      FormatShortAnswer,
			Answer:      "3",
			Explanation: "i takes the values 0, 2, and 4; at 6 the condition i < 5 fails.",
		},
		{
			Prompt:      "What does this print?\n\nfor i := 3; i > 0; i-- {\n\tfmt.Print(i)\n}",
			Format:      FormatShortAnswer,
			Answer:      "321",
			Explanation: "The loop counts down from 3, printing each value with no separator.",
		},
	},
	"slice-operations": {
		{
			Prompt:      "What is len(s) after:\n\ns := make([]int, 2, 8)\ns = append(s, 1)",
			Format:      FormatShortAnswer,
			Answer:      "3",
			Explanation: "make([]int, 2, 8) creates a slice of length 2; append grows the length to 3 (capacity stays 8).",
		},
		{
			Prompt: "Which expression copies a slice's contents rather than aliasing it?",
			Format: FormatMultipleChoice,
			Answer: "b := make([]int, len(a)); copy(b, a)",
			Choices: []string{
				"b := make([]int, len(a)); copy(b, a)",
				"b := a",
				"b := a[:]",
				"var b []int = a",
			},
			Explanation: "Plain assignment and reslicing share the backing array; copy into a fresh slice duplicates the elements.",
		},
	},
	"map-lookup": {
		{
			Prompt:      "What does ok hold after:\n\nm := map[string]int{\"a\": 1}\nv, ok := m[\"b\"]",
			Format:      FormatShortAnswer,
			Answer:      "false",
			Explanation: "The comma-ok form reports whether the key is present; \"b\" is not, so ok is false and v is 0.",
		},
	},
	"channel-send-receive": {
		{
			Prompt: "What happens when you send on an unbuffered channel with no ready receiver?",
			Format: FormatMultipleChoice,
			Answer: "The sending goroutine blocks until a receiver is ready",
			Choices: []string{
				"The sending goroutine blocks until a receiver is ready",
				"The value is dropped",
				"The runtime panics immediately",
				"The value is queued without limit",
			},
			Explanation: "Unbuffered channels synchronize sender and receiver; the send blocks until another goroutine receives.",
		},
	},
}
