package store

import (
	"context"
	"testing"
)

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Purpose: "question-gen", Model: "gpt-4o-mini", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Purpose: "question-gen", Model: "gpt-4o-mini", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Purpose: "report-eval", Model: "claude-haiku", InputTokens: 500, OutputTokens: 250, LatencyMs: 900, Success: true},
		{Purpose: "report-eval", Model: "claude-haiku", LatencyMs: 100, Success: false},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	want := []PurposeUsage{
		{Purpose: "question-gen", Calls: 2, InputTokens: 400, OutputTokens: 200, AvgLatencyMs: 300},
		{Purpose: "report-eval", Calls: 2, InputTokens: 500, OutputTokens: 250, AvgLatencyMs: 500},
	}
	if len(byPurpose) != len(want) {
		t.Fatalf("got %d purposes, want %d", len(byPurpose), len(want))
	}
	for i := range want {
		if byPurpose[i] != want[i] {
			t.Errorf("purpose %d = %+v, want %+v", i, byPurpose[i], want[i])
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
	// Failed requests are not billed.
	if byModel[0].Model != "claude-haiku" || byModel[0].Calls != 1 {
		t.Errorf("model 0 = %+v", byModel[0])
	}
	if byModel[1].Model != "gpt-4o-mini" || byModel[1].InputTokens != 400 {
		t.Errorf("model 1 = %+v", byModel[1])
	}
}

func TestLLMUsageEmpty(t *testing.T) {
	s := openTestStore(t)
	usage, err := s.EventRepo().LLMUsageByPurpose(context.Background())
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 0 {
		t.Errorf("usage = %v, want empty", usage)
	}
}
