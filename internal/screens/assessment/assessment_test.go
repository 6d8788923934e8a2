package assessment

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	assess "github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/wizard"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newScreen(t *testing.T) *AssessmentScreen {
	t.Helper()
	s, err := New(assess.DefaultQuestions())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, assess.ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestViewShowsFirstQuestion(t *testing.T) {
	s := newScreen(t)
	view := s.View(100, 30)
	for _, want := range []string{"Question 1 of 3", "33%", "useState", "To manage side effects", "Previous", "Next"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Submit Test") {
		t.Error("Submit Test should only show on the last question")
	}
}

func TestSelectionDoesNotAdvance(t *testing.T) {
	s := newScreen(t)
	s.Update(keyPress('2'))
	if s.stepper.Index() != 0 {
		t.Errorf("index = %d, want 0", s.stepper.Index())
	}
	if got, _ := s.stepper.Selected(1); got != "To manage state in functional components" {
		t.Errorf("selected = %q", got)
	}
}

func TestCursorAndEnterSelect(t *testing.T) {
	s := newScreen(t)
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if _, ok := s.stepper.Selected(1); ok {
		t.Fatal("moving the cursor should not select")
	}
	s.Update(specialKey(tea.KeyEnter))
	if got, _ := s.stepper.Selected(1); got != "To fetch data" {
		t.Errorf("selected = %q, want To fetch data", got)
	}
}

func TestReselectOverwrites(t *testing.T) {
	s := newScreen(t)
	s.Update(keyPress('1'))
	s.Update(keyPress('4'))
	if got, _ := s.stepper.Selected(1); got != "To create context" {
		t.Errorf("selected = %q", got)
	}
	if s.stepper.Answered() != 1 {
		t.Errorf("answered = %d, want 1", s.stepper.Answered())
	}
}

func TestViewCountsAnswered(t *testing.T) {
	s := newScreen(t)
	if !strings.Contains(s.View(100, 30), "0 answered") {
		t.Error("expected nothing answered yet")
	}
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	if view := s.View(100, 30); !strings.Contains(view, "Question 3 of 3 · 1 answered") {
		t.Errorf("expected one answer counted on the last question:\n%s", view)
	}
}

func TestNavigationBounds(t *testing.T) {
	s := newScreen(t)
	s.Update(specialKey(tea.KeyLeft))
	if s.stepper.Index() != 0 {
		t.Errorf("previous at first question moved to %d", s.stepper.Index())
	}

	s.Update(specialKey(tea.KeyRight))
	if !strings.Contains(s.View(100, 30), "Question 2 of 3") {
		t.Error("expected question 2")
	}
	s.Update(specialKey(tea.KeyRight))
	view := s.View(100, 30)
	if !strings.Contains(view, "Question 3 of 3") || !strings.Contains(view, "Submit Test") {
		t.Errorf("expected last question with submit:\n%s", view)
	}
}

func TestPreviousRestoresSelection(t *testing.T) {
	s := newScreen(t)
	s.Update(keyPress('3'))
	s.Update(specialKey(tea.KeyRight))
	if s.choices.Chosen != -1 {
		t.Errorf("question 2 should start unanswered, chosen = %d", s.choices.Chosen)
	}
	s.Update(specialKey(tea.KeyLeft))
	if s.choices.Chosen != 2 {
		t.Errorf("chosen = %d, want 2", s.choices.Chosen)
	}
}

func TestCtrlSOnlyOnLastQuestion(t *testing.T) {
	s := newScreen(t)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}); cmd != nil {
		t.Error("ctrl+s should do nothing before the last question")
	}
}

func TestSubmitWithPartialAnswers(t *testing.T) {
	s := newScreen(t)
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))

	_, cmd := s.Update(specialKey(tea.KeyRight))
	if cmd == nil {
		t.Fatal("→ on the last question should submit")
	}
	msg, ok := cmd().(wizard.AnswersSubmittedMsg)
	if !ok {
		t.Fatalf("expected AnswersSubmittedMsg, got %T", cmd())
	}
	if len(msg.Answers) != 1 || msg.Answers[1] != "To manage state in functional components" {
		t.Errorf("answers = %v", msg.Answers)
	}

	if _, cmd := s.Update(specialKey(tea.KeyRight)); cmd != nil {
		t.Error("keys after submission should be ignored")
	}
}

func TestKeyHintsOnLastQuestion(t *testing.T) {
	s := newScreen(t)
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	found := false
	for _, h := range s.KeyHints() {
		if h.Description == "Submit Test" {
			found = true
		}
	}
	if !found {
		t.Error("last question should hint Submit Test")
	}
}
