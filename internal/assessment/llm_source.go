package assessment

import (
	"context"
	"fmt"

	"github.com/abhisek/careerwiz/internal/llm"
	"github.com/abhisek/careerwiz/internal/profile"
)

// LLMConfig controls LLMSource requests.
type LLMConfig struct {
	// Count is the number of questions requested.
	Count int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultLLMConfig returns the recommended LLMSource settings.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Count:       5,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// LLMSource generates questions tailored to the profile with an LLM.
type LLMSource struct {
	provider llm.Provider
	config   LLMConfig
}

// NewLLMSource creates an LLMSource backed by provider. A zero Count means
// the default; larger than MaxQuestions is capped.
func NewLLMSource(provider llm.Provider, cfg LLMConfig) *LLMSource {
	switch {
	case cfg.Count < 1:
		cfg.Count = DefaultLLMConfig().Count
	case cfg.Count > MaxQuestions:
		cfg.Count = MaxQuestions
	}
	return &LLMSource{provider: provider, config: cfg}
}

type questionsOutput struct {
	Questions []Question `json:"questions"`
}

func (s *LLMSource) Questions(ctx context.Context, p profile.UserProfile) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(p, s.config.Count)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	var out questionsOutput
	if err := llm.GenerateJSON(ctx, s.provider, req, &out); err != nil {
		return nil, fmt.Errorf("LLM question generation failed: %w", err)
	}
	if err := ValidateQuestions(out.Questions); err != nil {
		return nil, err
	}
	return out.Questions, nil
}
