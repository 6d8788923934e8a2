package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerwiz/internal/ui/layout"
)

// QuitHint is shown on every screen; ctrl+c is handled by the app model.
var QuitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

// Screen is one wizard step, or the splash in front of it. The app draws it
// between the step header and the key hint footer.
type Screen interface {
	Init() tea.Cmd

	// Update handles messages. Steps report completion with a wizard message
	// instead of navigating themselves.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area only. height is what is left after the
	// header and footer and can be well below the terminal height.
	View(width, height int) string

	// Title names the step in the header. An empty title hides the step
	// indicator.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Hints returns the footer hints for s, ending with QuitHint.
func Hints(s Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if hp, ok := s.(KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}
	return append(hints, QuitHint)
}
