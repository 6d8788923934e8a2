package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/profile"
)

// EvaluationInput is everything an Evaluator may use to build a report.
type EvaluationInput struct {
	Profile   profile.UserProfile
	Questions []assessment.Question
	Answers   assessment.AnswerMap
}

// Evaluator turns a completed assessment into a report.
type Evaluator interface {
	Evaluate(ctx context.Context, in EvaluationInput) (*ReportData, error)
}

// StaticEvaluator returns the placeholder report regardless of answers.
type StaticEvaluator struct{}

func (StaticEvaluator) Evaluate(context.Context, EvaluationInput) (*ReportData, error) {
	return Mock(), nil
}

// FallbackEvaluator tries a primary Evaluator and falls back to another on
// error or an invalid report.
type FallbackEvaluator struct {
	primary  Evaluator
	fallback Evaluator
	log      *zap.Logger
}

// WithFallback returns an Evaluator that uses fallback whenever primary
// fails. log may be nil.
func WithFallback(primary, fallback Evaluator, log *zap.Logger) *FallbackEvaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackEvaluator{primary: primary, fallback: fallback, log: log}
}

func (f *FallbackEvaluator) Evaluate(ctx context.Context, in EvaluationInput) (*ReportData, error) {
	r, err := f.primary.Evaluate(ctx, in)
	if err == nil {
		err = r.Validate()
	}
	if err == nil {
		return r, nil
	}

	f.log.Warn("evaluator failed, using fallback", zap.Error(err))
	r, ferr := f.fallback.Evaluate(ctx, in)
	if ferr != nil {
		return nil, fmt.Errorf("fallback evaluator: %w", ferr)
	}
	return r, nil
}
