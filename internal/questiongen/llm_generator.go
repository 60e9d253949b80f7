package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arjun/codequest/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLM creates an LLMGenerator with the given provider and config.
func NewLLM(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Prompt      string   `json:"prompt"`
	Format      string   `json:"format"`
	Answer      string   `json:"answer"`
	Choices     []string `json:"choices"`
	Explanation string   `json:"explanation"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	q := &Question{
		Prompt:      raw.Prompt,
		Format:      AnswerFormat(raw.Format),
		Answer:      raw.Answer,
		Choices:     raw.Choices,
		Explanation: raw.Explanation,
		TopicID:     input.Topic.ID,
		Difficulty:  input.Difficulty,
		Source:      "llm",
	}
	if q.Format == FormatShortAnswer {
		q.Choices = nil
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}
