package report

import (
	"context"
	"fmt"

	"github.com/abhisek/careerwiz/internal/llm"
)

// LLMEvaluator asks an LLM to grade the answers and write the report.
type LLMEvaluator struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewLLMEvaluator creates an LLMEvaluator backed by provider.
func NewLLMEvaluator(provider llm.Provider) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, maxTokens: 2048, temperature: 0.2}
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, in EvaluationInput) (*ReportData, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeReportEval)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      ReportSchema,
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
	}

	var r ReportData
	if err := llm.GenerateJSON(ctx, e.provider, req, &r); err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
