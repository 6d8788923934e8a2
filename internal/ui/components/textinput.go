package components

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for single-line form fields.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput creates an unfocused single-line input.
func NewTextInput(placeholder string, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	if width > 0 {
		ti.SetWidth(width)
	}
	return TextInput{Model: ti}
}

func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }
func (t *TextInput) Blur()          { t.Model.Blur() }
func (t TextInput) Value() string   { return t.Model.Value() }
func (t TextInput) View() string    { return t.Model.View() }
func (t *TextInput) SetWidth(w int) { t.Model.SetWidth(w) }

// Update forwards msg to the underlying input.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// TextArea wraps bubbles/textarea for multi-line form fields.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates an unfocused multi-line input.
func NewTextArea(placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	if width > 0 {
		ta.SetWidth(width)
	}
	if height > 0 {
		ta.SetHeight(height)
	}
	return TextArea{Model: ta}
}

func (t *TextArea) Focus() tea.Cmd { return t.Model.Focus() }
func (t *TextArea) Blur()          { t.Model.Blur() }
func (t TextArea) Value() string   { return t.Model.Value() }
func (t TextArea) View() string    { return t.Model.View() }
func (t *TextArea) SetWidth(w int) { t.Model.SetWidth(w) }

// Update forwards msg to the underlying textarea.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}
