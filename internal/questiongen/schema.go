package questiongen

import "github.com/arjun/codequest/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "practice-question",
	Description: "A single coding practice question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question shown to the learner, in plain ASCII text. Code fragments use standard Go syntax.",
			},
			"format": map[string]any{
				"type":        "string",
				"enum":        []any{"short_answer", "multiple_choice"},
				"description": "How the learner answers: type a short answer or pick from choices",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For multiple choice: the text of the correct option.",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple_choice format. Empty array for short_answer format.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief worked explanation of why the answer is correct",
			},
		},
		"required":             []any{"prompt", "format", "answer", "choices", "explanation"},
		"additionalProperties": false,
	},
}
