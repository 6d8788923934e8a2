package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerwiz/internal/ui/theme"
)

// ChoiceList is a single-select option list with a cursor. Moving the
// cursor does not change the chosen option.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing is chosen
}

// NewChoiceList creates a list with the cursor on chosen, or on the first
// option when chosen is -1.
func NewChoiceList(options []string, chosen int) ChoiceList {
	if chosen < -1 || chosen >= len(options) {
		chosen = -1
	}
	return ChoiceList{
		Options: options,
		Cursor:  max(chosen, 0),
		Chosen:  chosen,
	}
}

// Update handles cursor movement and selection. It reports whether an
// option was chosen by this message.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Options) == 0 {
		return c, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", "space", " ":
		c.Chosen = c.Cursor
		return c, true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(c.Options) {
				c.Cursor = i
				c.Chosen = i
				return c, true
			}
		}
	}
	return c, false
}

// View renders the options with a cursor marker and radio indicators.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		radio := "○"
		if i == c.Chosen {
			radio = "●"
		}
		line := fmt.Sprintf("%s%s %d) %s", prefix, radio, i+1, opt)

		switch {
		case i == c.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		if i < len(c.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
