package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for card sections so
// stacked boxes align.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// Section renders a heading over a card, both centered within width.
func Section(heading, content string, cw, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, theme.Heading.Render(heading), Card(content, cw)))
}
