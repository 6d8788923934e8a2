package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/llm"
	"github.com/abhisek/careerwiz/internal/profile"
)

func sampleInput() EvaluationInput {
	return EvaluationInput{
		Profile: profile.UserProfile{
			Qualification: "bachelors",
			KnownSkills:   "Python",
			SkillsToLearn: "Go",
			JobStatus:     "student",
		},
		Questions: assessment.DefaultQuestions(),
		Answers:   assessment.AnswerMap{1: "To manage state in functional components"},
	}
}

func TestMock_IsValidAndIndependent(t *testing.T) {
	a := Mock()
	require.NoError(t, a.Validate())

	a.SkillProficiency.Breakdown[0].Score = 1
	a.RecommendedSkills[0] = "changed"

	b := Mock()
	assert.Equal(t, 80, b.SkillProficiency.Breakdown[0].Score)
	assert.Equal(t, "Advanced TypeScript", b.RecommendedSkills[0])
}

func TestMock_JSONShape(t *testing.T) {
	raw, err := json.Marshal(Mock())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, k := range []string{"skillProficiency", "careerReadiness", "summary", "recommendedSkills", "learningPaths"} {
		assert.Contains(t, m, k)
	}
	sp := m["skillProficiency"].(map[string]any)
	assert.Contains(t, sp, "overall")
	assert.Contains(t, sp, "breakdown")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *ReportData)
		wantErr string
	}{
		{"valid", func(*ReportData) {}, ""},
		{"overall too high", func(r *ReportData) { r.SkillProficiency.Overall = 101 }, "overall score 101"},
		{"negative readiness", func(r *ReportData) { r.CareerReadiness = -1 }, "career readiness score -1"},
		{"bad breakdown", func(r *ReportData) { r.SkillProficiency.Breakdown[1].Score = 200 }, "TypeScript score 200"},
		{"blank summary", func(r *ReportData) { r.Summary = "  " }, "empty summary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Mock()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidReport)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	var nilReport *ReportData
	assert.ErrorIs(t, nilReport.Validate(), ErrInvalidReport)
}

func TestStaticEvaluator_IgnoresAnswers(t *testing.T) {
	in := sampleInput()
	r1, err := StaticEvaluator{}.Evaluate(context.Background(), in)
	require.NoError(t, err)

	in.Answers = assessment.AnswerMap{}
	r2, err := StaticEvaluator{}.Evaluate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, Mock(), r1)
	assert.Equal(t, r1, r2)
}

type stubEvaluator struct {
	r   *ReportData
	err error
}

func (s stubEvaluator) Evaluate(context.Context, EvaluationInput) (*ReportData, error) {
	return s.r, s.err
}

func TestFallback(t *testing.T) {
	custom := Mock()
	custom.Summary = "custom"

	t.Run("primary ok", func(t *testing.T) {
		r, err := WithFallback(stubEvaluator{r: custom}, StaticEvaluator{}, nil).Evaluate(context.Background(), sampleInput())
		require.NoError(t, err)
		assert.Equal(t, "custom", r.Summary)
	})

	t.Run("primary error", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		ev := WithFallback(stubEvaluator{err: errors.New("boom")}, StaticEvaluator{}, zap.New(core))
		r, err := ev.Evaluate(context.Background(), sampleInput())
		require.NoError(t, err)
		assert.Equal(t, Mock(), r)
		assert.Equal(t, 1, logs.FilterMessage("evaluator failed, using fallback").Len())
	})

	t.Run("primary invalid", func(t *testing.T) {
		bad := Mock()
		bad.CareerReadiness = 150
		r, err := WithFallback(stubEvaluator{r: bad}, StaticEvaluator{}, nil).Evaluate(context.Background(), sampleInput())
		require.NoError(t, err)
		assert.Equal(t, 68, r.CareerReadiness)
	})

	t.Run("primary nil report", func(t *testing.T) {
		r, err := WithFallback(stubEvaluator{}, StaticEvaluator{}, nil).Evaluate(context.Background(), sampleInput())
		require.NoError(t, err)
		assert.NotNil(t, r)
	})

	t.Run("both fail", func(t *testing.T) {
		_, err := WithFallback(stubEvaluator{err: errors.New("a")}, stubEvaluator{err: errors.New("b")}, nil).Evaluate(context.Background(), sampleInput())
		assert.ErrorContains(t, err, "fallback evaluator")
	})
}

func TestLLMEvaluator_SendsAnswers(t *testing.T) {
	body, err := json.Marshal(Mock())
	require.NoError(t, err)
	mock := llm.NewMockProvider(llm.MockResponse{Content: body})

	r, err := NewLLMEvaluator(mock).Evaluate(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, Mock(), r)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, ReportSchema, req.Schema)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Highest Qualification: Bachelor's Degree")
	assert.Contains(t, msg, "1. What is the primary purpose of the `useState` hook in React?")
	assert.Contains(t, msg, "Answer: To manage state in functional components")
	assert.Contains(t, msg, "Answer: (skipped)")
}

func TestLLMEvaluator_RejectsOutOfRange(t *testing.T) {
	bad := Mock()
	bad.SkillProficiency.Overall = 140
	body, _ := json.Marshal(bad)
	mock := llm.NewMockProvider(llm.MockResponse{Content: body})

	_, err := NewLLMEvaluator(mock).Evaluate(context.Background(), sampleInput())
	assert.ErrorIs(t, err, ErrInvalidReport)
}

func TestLLMEvaluator_ProviderError(t *testing.T) {
	_, err := NewLLMEvaluator(llm.NewMockProvider()).Evaluate(context.Background(), sampleInput())
	assert.ErrorContains(t, err, "LLM evaluation failed")
}
