package assessment

import (
	"errors"
	"fmt"
	"strings"
)

// MaxQuestions bounds the size of a generated question set.
const MaxQuestions = 10

// ErrInvalidQuestions wraps every ValidateQuestions failure.
var ErrInvalidQuestions = errors.New("invalid question set")

// ValidateQuestions checks a question set before it is shown: between 1 and
// MaxQuestions items, unique IDs, non-empty text, and at least two distinct
// non-empty options per question.
func ValidateQuestions(qs []Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQuestions, ErrNoQuestions)
	}
	if len(qs) > MaxQuestions {
		return fmt.Errorf("%w: %d questions, at most %d allowed", ErrInvalidQuestions, len(qs), MaxQuestions)
	}

	ids := make(map[int]bool, len(qs))
	for i, q := range qs {
		if ids[q.ID] {
			return fmt.Errorf("%w: duplicate question id %d", ErrInvalidQuestions, q.ID)
		}
		ids[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("%w: question %d has no text", ErrInvalidQuestions, i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %d needs at least 2 options, has %d", ErrInvalidQuestions, i+1, len(q.Options))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if strings.TrimSpace(o) == "" {
				return fmt.Errorf("%w: question %d has an empty option", ErrInvalidQuestions, i+1)
			}
			if seen[o] {
				return fmt.Errorf("%w: question %d repeats option %q", ErrInvalidQuestions, i+1, o)
			}
			seen[o] = true
		}
	}
	return nil
}
