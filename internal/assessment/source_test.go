package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/careerwiz/internal/llm"
	"github.com/abhisek/careerwiz/internal/profile"
)

type stubSource struct {
	qs  []Question
	err error
}

func (s stubSource) Questions(context.Context, profile.UserProfile) ([]Question, error) {
	return s.qs, s.err
}

func sampleProfile() profile.UserProfile {
	return profile.UserProfile{
		Qualification: "bachelors",
		KnownSkills:   "Python",
		SkillsToLearn: "Go",
		JobStatus:     "student",
	}
}

func TestStaticSource(t *testing.T) {
	qs, err := StaticSource{}.Questions(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, DefaultQuestions(), qs)
}

func TestFallback_UsesPrimary(t *testing.T) {
	primary := stubSource{qs: []Question{{ID: 7, Text: "Q?", Options: []string{"a", "b"}}}}
	src := WithFallback(primary, StaticSource{}, nil)

	qs, err := src.Questions(context.Background(), sampleProfile())
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, 7, qs[0].ID)
}

func TestFallback_OnError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := WithFallback(stubSource{err: errors.New("boom")}, StaticSource{}, zap.New(core))

	qs, err := src.Questions(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.Len(t, qs, 3)
	assert.Equal(t, 1, logs.FilterMessage("question source failed, using fallback").Len())
}

func TestFallback_OnInvalidQuestions(t *testing.T) {
	primary := stubSource{qs: []Question{{ID: 1, Text: "Q?", Options: []string{"only"}}}}
	src := WithFallback(primary, StaticSource{}, nil)

	qs, err := src.Questions(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, DefaultQuestions(), qs)
}

func TestFallback_BothFail(t *testing.T) {
	src := WithFallback(stubSource{err: errors.New("a")}, stubSource{err: errors.New("b")}, nil)
	_, err := src.Questions(context.Background(), sampleProfile())
	assert.ErrorContains(t, err, "fallback question source")
}

func TestValidateQuestions(t *testing.T) {
	ok := Question{ID: 1, Text: "Q?", Options: []string{"a", "b"}}
	many := make([]Question, MaxQuestions+1)
	for i := range many {
		many[i] = Question{ID: i + 1, Text: "Q?", Options: []string{"a", "b"}}
	}

	tests := []struct {
		name    string
		qs      []Question
		wantErr string
	}{
		{"default bank", DefaultQuestions(), ""},
		{"single", []Question{ok}, ""},
		{"empty", nil, "no questions"},
		{"too many", many, "at most 10"},
		{"duplicate id", []Question{ok, ok}, "duplicate question id 1"},
		{"blank text", []Question{{ID: 1, Text: " ", Options: []string{"a", "b"}}}, "no text"},
		{"one option", []Question{{ID: 1, Text: "Q?", Options: []string{"a"}}}, "at least 2 options"},
		{"empty option", []Question{{ID: 1, Text: "Q?", Options: []string{"a", ""}}}, "empty option"},
		{"repeated option", []Question{{ID: 1, Text: "Q?", Options: []string{"a", "a"}}}, `repeats option "a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestions(tt.qs)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidQuestions)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLLMSource_Questions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"questions": [
			{"id": 1, "text": "What does a goroutine share with its parent?", "options": ["Stack", "Heap", "Registers", "Nothing"]},
			{"id": 2, "text": "Which keyword starts a goroutine?", "options": ["go", "async", "spawn", "thread"]}
		]
	}`)})
	src := NewLLMSource(mock, DefaultLLMConfig())

	qs, err := src.Questions(context.Background(), sampleProfile())
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "go", qs[1].Options[0])

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, QuestionsSchema, req.Schema)
	assert.Equal(t, 2048, req.MaxTokens)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Number of questions: 5")
	assert.Contains(t, msg, "Highest Qualification: Bachelor's Degree")
	assert.Contains(t, msg, "Work Experience: Not provided")
	assert.Contains(t, msg, "known skills at least once where the count allows: Python")
}

func TestBuildUserMessage_NormalizesSkills(t *testing.T) {
	p := sampleProfile()
	p.KnownSkills = " SQL ,, Go,"
	msg := buildUserMessage(p, 3)

	assert.Contains(t, msg, "- Known Skills (comma-separated): SQL, Go\n")
	assert.True(t, strings.HasSuffix(msg, "where the count allows: SQL, Go"), msg)

	p.KnownSkills = " , "
	assert.NotContains(t, buildUserMessage(p, 3), "Cover each")
}

func TestLLMSource_RejectsInvalidSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})
	_, err := NewLLMSource(mock, DefaultLLMConfig()).Questions(context.Background(), sampleProfile())
	assert.ErrorIs(t, err, ErrInvalidQuestions)
}

func TestLLMSource_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := NewLLMSource(mock, DefaultLLMConfig()).Questions(context.Background(), sampleProfile())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "LLM question generation failed"))
}

func TestLLMSource_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	_, err := NewLLMSource(mock, DefaultLLMConfig()).Questions(context.Background(), sampleProfile())
	var inv *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestNewLLMSource_ClampsCount(t *testing.T) {
	src := NewLLMSource(llm.NewMockProvider(), LLMConfig{Count: 50})
	assert.Equal(t, MaxQuestions, src.config.Count)

	src = NewLLMSource(llm.NewMockProvider(), LLMConfig{})
	assert.Equal(t, DefaultLLMConfig().Count, src.config.Count)
}
