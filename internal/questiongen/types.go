package questiongen

import (
	"github.com/arjun/codequest/internal/curriculum"
	"github.com/arjun/codequest/internal/sequencer"
)

// Question is generated practice content ready for display.
type Question struct {
	// Prompt is the question text shown to the learner. Plain ASCII; code
	// fragments are inline or fenced with indentation, never markdown.
	Prompt string

	// Format indicates how the learner answers.
	Format AnswerFormat

	// Answer is the canonical correct answer. For multiple choice it is
	// the text of the correct option.
	Answer string

	// Choices is populated only for FormatMultipleChoice: exactly 4
	// options, one matching Answer.
	Choices []string

	// Explanation is a brief worked solution shown after answering.
	Explanation string

	// TopicID is the curriculum topic this question was generated for.
	TopicID string

	// Difficulty is the requested difficulty band.
	Difficulty sequencer.Difficulty

	// Source records which generator produced the question: "llm",
	// "template", or "placeholder". Display-only.
	Source string
}

// AnswerFormat describes how the learner provides their answer.
type AnswerFormat string

const (
	// FormatShortAnswer means the learner types a short free-form answer
	// (an expression result, an output line, a single identifier).
	FormatShortAnswer AnswerFormat = "short_answer"

	// FormatMultipleChoice means the learner picks from 4 choices.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Topic is the curriculum topic to generate for.
	Topic curriculum.Topic

	// Difficulty is the band requested by the orchestrator.
	Difficulty sequencer.Difficulty

	// PriorQuestions contains prompts already served this session for
	// this topic, for deduplication in the LLM prompt.
	PriorQuestions []string
}
