package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrNoQuestions      = errors.New("assessment has no questions")
	ErrUnknownOption    = errors.New("option is not offered by the current question")
	ErrNotLastQuestion  = errors.New("assessment can only be submitted from the last question")
	ErrAlreadySubmitted = errors.New("assessment already submitted")
)

// Stepper walks a fixed list of questions one at a time and records one
// selected option per question.
type Stepper struct {
	questions []Question
	index     int
	answers   AnswerMap
	submitted bool
}

// NewStepper creates a stepper positioned at the first question.
func NewStepper(questions []Question) (*Stepper, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Stepper{
		questions: cloneQuestions(questions),
		answers:   make(AnswerMap),
	}, nil
}

// Index returns the zero-based position of the current question.
func (s *Stepper) Index() int { return s.index }

// Len returns the number of questions.
func (s *Stepper) Len() int { return len(s.questions) }

// Current returns the question at the current index.
func (s *Stepper) Current() Question { return s.questions[s.index] }

// Questions returns a copy of the question list.
func (s *Stepper) Questions() []Question { return cloneQuestions(s.questions) }

// CanPrevious reports whether Previous would move.
func (s *Stepper) CanPrevious() bool { return !s.submitted && s.index > 0 }

// CanNext reports whether Next would move.
func (s *Stepper) CanNext() bool { return !s.submitted && s.index < len(s.questions)-1 }

// IsLast reports whether the current question is the final one. Submit is
// only offered here.
func (s *Stepper) IsLast() bool { return s.index == len(s.questions)-1 }

// Submitted reports whether Submit has succeeded.
func (s *Stepper) Submitted() bool { return s.submitted }

// Previous moves back one question. It is a no-op at the first question.
func (s *Stepper) Previous() bool {
	if !s.CanPrevious() {
		return false
	}
	s.index--
	return true
}

// Next moves forward one question. It is a no-op at the last question.
func (s *Stepper) Next() bool {
	if !s.CanNext() {
		return false
	}
	s.index++
	return true
}

// Select records option as the answer to the current question, replacing
// any earlier choice. It does not advance.
func (s *Stepper) Select(option string) error {
	if s.submitted {
		return ErrAlreadySubmitted
	}
	q := s.Current()
	if !q.HasOption(option) {
		return fmt.Errorf("%w: question %d: %q", ErrUnknownOption, q.ID, option)
	}
	s.answers[q.ID] = option
	return nil
}

// SelectIndex selects the i-th option of the current question.
func (s *Stepper) SelectIndex(i int) error {
	q := s.Current()
	if i < 0 || i >= len(q.Options) {
		return fmt.Errorf("%w: question %d: index %d", ErrUnknownOption, q.ID, i)
	}
	return s.Select(q.Options[i])
}

// Selected returns the recorded answer for question id.
func (s *Stepper) Selected(id int) (string, bool) {
	v, ok := s.answers[id]
	return v, ok
}

// Answers returns a copy of the recorded answers.
func (s *Stepper) Answers() AnswerMap {
	return s.answers.Clone()
}

// Answered returns how many questions have a recorded answer.
func (s *Stepper) Answered() int {
	return len(s.answers)
}

// Progress returns the completion percentage for the current position,
// (index+1)/N*100.
func (s *Stepper) Progress() float64 {
	return float64(s.index+1) / float64(len(s.questions)) * 100
}

// Submit finalizes the assessment and returns the recorded answers. Answers
// need not cover every question.
func (s *Stepper) Submit() (AnswerMap, error) {
	if s.submitted {
		return nil, ErrAlreadySubmitted
	}
	if !s.IsLast() {
		return nil, ErrNotLastQuestion
	}
	s.submitted = true
	return s.answers.Clone(), nil
}
