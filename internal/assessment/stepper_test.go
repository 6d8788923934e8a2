package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultStepper(t *testing.T) *Stepper {
	t.Helper()
	s, err := NewStepper(DefaultQuestions())
	require.NoError(t, err)
	return s
}

func TestNewStepper_Empty(t *testing.T) {
	_, err := NewStepper(nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestStepper_StartsAtFirstQuestion(t *testing.T) {
	s := newDefaultStepper(t)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Current().ID)
	assert.False(t, s.CanPrevious())
	assert.True(t, s.CanNext())
	assert.False(t, s.IsLast())
	assert.Empty(t, s.Answers())
}

func TestStepper_NavigationBounds(t *testing.T) {
	s := newDefaultStepper(t)

	assert.False(t, s.Previous(), "previous at first question must be a no-op")
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.Equal(t, 2, s.Index())
	assert.True(t, s.IsLast())

	assert.False(t, s.Next(), "next at last question must be a no-op")
	assert.Equal(t, 2, s.Index())

	assert.True(t, s.Previous())
	assert.Equal(t, 1, s.Index())
}

func TestStepper_Progress(t *testing.T) {
	s := newDefaultStepper(t)
	want := []float64{100.0 / 3, 200.0 / 3, 100}
	for i, w := range want {
		assert.InDelta(t, w, s.Progress(), 0.001, "index %d", i)
		s.Next()
	}
}

func TestStepper_SelectOverwrites(t *testing.T) {
	s := newDefaultStepper(t)

	require.NoError(t, s.Select("To fetch data"))
	require.NoError(t, s.Select("To manage state in functional components"))

	got, ok := s.Selected(1)
	require.True(t, ok)
	assert.Equal(t, "To manage state in functional components", got)
	assert.Equal(t, 1, s.Answered())
	assert.Equal(t, 0, s.Index(), "selection must not auto-advance")
}

func TestStepper_SelectUnknownOption(t *testing.T) {
	s := newDefaultStepper(t)
	err := s.Select("Union Type")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Zero(t, s.Answered())

	assert.ErrorIs(t, s.SelectIndex(4), ErrUnknownOption)
	assert.ErrorIs(t, s.SelectIndex(-1), ErrUnknownOption)
}

func TestStepper_SelectIndex(t *testing.T) {
	s := newDefaultStepper(t)
	s.Next()
	require.NoError(t, s.SelectIndex(2))

	got, _ := s.Selected(2)
	assert.Equal(t, "Union Type", got)
}

func TestStepper_AnswersIsCopy(t *testing.T) {
	s := newDefaultStepper(t)
	require.NoError(t, s.SelectIndex(0))

	a := s.Answers()
	a[1] = "tampered"
	a[99] = "extra"

	got, _ := s.Selected(1)
	assert.Equal(t, "To manage side effects", got)
	assert.Equal(t, 1, s.Answered())
}

func TestStepper_SubmitOnlyAtLast(t *testing.T) {
	s := newDefaultStepper(t)
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrNotLastQuestion)
	assert.False(t, s.Submitted())
}

func TestStepper_SubmitWithPartialAnswers(t *testing.T) {
	s := newDefaultStepper(t)
	require.NoError(t, s.SelectIndex(1))
	s.Next()
	s.Next()

	answers, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, AnswerMap{1: "To manage state in functional components"}, answers)
	assert.True(t, s.Submitted())

	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.ErrorIs(t, s.SelectIndex(0), ErrAlreadySubmitted)
	assert.False(t, s.Previous())
}

func TestStepper_DoesNotAliasInput(t *testing.T) {
	qs := DefaultQuestions()
	s, err := NewStepper(qs)
	require.NoError(t, err)

	qs[0].Options[0] = "changed"
	assert.Equal(t, "To manage side effects", s.Current().Options[0])
}

func TestDefaultQuestions_IsCopy(t *testing.T) {
	a := DefaultQuestions()
	a[0].Text = "changed"
	a[0].Options[1] = "changed"

	b := DefaultQuestions()
	assert.NotEqual(t, "changed", b[0].Text)
	assert.Equal(t, "To manage state in functional components", b[0].Options[1])
}
