package pending

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwiz/internal/screen"
	"github.com/abhisek/careerwiz/internal/ui/theme"
)

// PendingScreen holds a wizard step while a collaborator call is in flight.
type PendingScreen struct {
	title   string
	message string
	spinner spinner.Model
}

var _ screen.Screen = (*PendingScreen)(nil)

// New creates a PendingScreen showing message under the given title.
func New(title, message string) *PendingScreen {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return &PendingScreen{title: title, message: message, spinner: s}
}

func (p *PendingScreen) Init() tea.Cmd {
	return p.spinner.Tick
}

func (p *PendingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PendingScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(p.spinner.View() + " " + p.message)
}

func (p *PendingScreen) Title() string {
	return p.title
}
