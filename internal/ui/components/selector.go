package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerwiz/internal/ui/theme"
)

// Selector picks one value from a fixed list by cycling with ←/→.
type Selector struct {
	Values      []string
	Labels      []string
	Index       int // -1 until a value is picked
	Placeholder string
	Focused     bool
}

// NewSelector creates a selector with nothing picked.
func NewSelector(values, labels []string, placeholder string) Selector {
	return Selector{Values: values, Labels: labels, Index: -1, Placeholder: placeholder}
}

// Value returns the picked value, or "" when nothing is picked.
func (s Selector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Values) {
		return ""
	}
	return s.Values[s.Index]
}

// Update cycles the selection on left/right and reports whether the value
// changed.
func (s Selector) Update(msg tea.Msg) (Selector, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(s.Values) == 0 {
		return s, false
	}
	n := len(s.Values)
	switch kmsg.String() {
	case "right", "l", "space", " ":
		s.Index = (s.Index + 1) % n
		return s, true
	case "left", "h":
		if s.Index <= 0 {
			s.Index = n - 1
		} else {
			s.Index--
		}
		return s, true
	}
	return s, false
}

// View renders the current choice between arrows.
func (s Selector) View() string {
	text := s.Placeholder
	style := theme.Hint
	if s.Index >= 0 && s.Index < len(s.Labels) {
		text = s.Labels[s.Index]
		style = theme.Body
	}
	if s.Focused {
		return theme.Selected.Render("◂ ") + style.Render(text) + theme.Selected.Render(" ▸")
	}
	return "  " + style.Render(text) + "  "
}
