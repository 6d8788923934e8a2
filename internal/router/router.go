package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerwiz/internal/screen"
)

// ReplaceScreenMsg requests the router to swap the current screen for another.
// Wizard steps only move forward, so there is no way back to a replaced screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router holds the screen currently shown between the header and footer.
type Router struct {
	current screen.Screen
}

// New creates a new Router showing initial.
func New(initial screen.Screen) *Router {
	return &Router{current: initial}
}

// Replace swaps the current screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.current = s
	return s.Init()
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.current
}

// Update forwards a message to the current screen and handles ReplaceScreenMsg.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ReplaceScreenMsg); ok {
		return r.Replace(msg.Screen)
	}
	if r.current == nil {
		return nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return cmd
}

// View renders the current screen.
func (r *Router) View(width, height int) string {
	if r.current == nil {
		return ""
	}
	return r.current.View(width, height)
}
