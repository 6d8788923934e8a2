package assessment

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	assess "github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/screen"
	"github.com/abhisek/careerwiz/internal/ui/components"
	"github.com/abhisek/careerwiz/internal/ui/layout"
	"github.com/abhisek/careerwiz/internal/ui/theme"
	"github.com/abhisek/careerwiz/internal/wizard"
)

// AssessmentScreen is the second wizard step. It walks the questions one at
// a time on top of an assess.Stepper.
type AssessmentScreen struct {
	stepper *assess.Stepper
	choices components.ChoiceList
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates an assessment screen for qs. It fails when qs is empty.
func New(qs []assess.Question) (*AssessmentScreen, error) {
	st, err := assess.NewStepper(qs)
	if err != nil {
		return nil, err
	}
	s := &AssessmentScreen{stepper: st}
	s.syncChoices()
	return s, nil
}

// Stepper exposes the underlying navigation state.
func (s *AssessmentScreen) Stepper() *assess.Stepper {
	return s.stepper
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Skill Assessment"
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
	if s.stepper.CanPrevious() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	if s.stepper.IsLast() {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Submit Test"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	return hints
}

// syncChoices rebuilds the option list for the current question, restoring
// a previous selection.
func (s *AssessmentScreen) syncChoices() {
	q := s.stepper.Current()
	chosen := -1
	if sel, ok := s.stepper.Selected(q.ID); ok {
		for i, o := range q.Options {
			if o == sel {
				chosen = i
				break
			}
		}
	}
	s.choices = components.NewChoiceList(q.Options, chosen)
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.stepper.Submitted() {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.stepper.Previous() {
			s.syncChoices()
		}
		return s, nil
	case "right", "l":
		if s.stepper.IsLast() {
			return s, s.submit()
		}
		if s.stepper.Next() {
			s.syncChoices()
		}
		return s, nil
	case "ctrl+s":
		if s.stepper.IsLast() {
			return s, s.submit()
		}
		return s, nil
	}

	var chose bool
	s.choices, chose = s.choices.Update(kmsg)
	if chose {
		_ = s.stepper.SelectIndex(s.choices.Chosen)
	}
	return s, nil
}

func (s *AssessmentScreen) submit() tea.Cmd {
	answers, err := s.stepper.Submit()
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return wizard.AnswersSubmittedMsg{Answers: answers}
	}
}

func (s *AssessmentScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	q := s.stepper.Current()

	var b strings.Builder

	bar := components.NewProgressBar("", s.stepper.Progress(), true, cw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d · %d answered",
		s.stepper.Index()+1, s.stepper.Len(), s.stepper.Answered())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View())
	b.WriteString("\n\n")

	prev := components.NewButton("Previous", false, !s.stepper.CanPrevious())
	var next components.Button
	if s.stepper.IsLast() {
		next = components.NewButton("Submit Test", true, false)
	} else {
		next = components.NewButton("Next", true, false)
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, prev.View(), "  ", next.View())
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Right, nav))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
