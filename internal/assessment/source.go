package assessment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/careerwiz/internal/profile"
)

// Source supplies the questions for a user's assessment.
type Source interface {
	// Questions returns the questions to ask the given user. The returned
	// slice must pass ValidateQuestions.
	Questions(ctx context.Context, p profile.UserProfile) ([]Question, error)
}

// StaticSource always returns the built-in question bank.
type StaticSource struct{}

func (StaticSource) Questions(context.Context, profile.UserProfile) ([]Question, error) {
	return DefaultQuestions(), nil
}

// FallbackSource tries a primary Source and falls back to another on error.
type FallbackSource struct {
	primary  Source
	fallback Source
	log      *zap.Logger
}

// WithFallback returns a Source that uses fallback whenever primary fails or
// returns an invalid question set. log may be nil.
func WithFallback(primary, fallback Source, log *zap.Logger) *FallbackSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackSource{primary: primary, fallback: fallback, log: log}
}

func (f *FallbackSource) Questions(ctx context.Context, p profile.UserProfile) ([]Question, error) {
	qs, err := f.primary.Questions(ctx, p)
	if err == nil {
		err = ValidateQuestions(qs)
	}
	if err == nil {
		return qs, nil
	}

	f.log.Warn("question source failed, using fallback", zap.Error(err))
	qs, ferr := f.fallback.Questions(ctx, p)
	if ferr != nil {
		return nil, fmt.Errorf("fallback question source: %w", ferr)
	}
	return qs, nil
}
