package profile

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	prof "github.com/abhisek/careerwiz/internal/profile"
	"github.com/abhisek/careerwiz/internal/screen"
	"github.com/abhisek/careerwiz/internal/ui/components"
	"github.com/abhisek/careerwiz/internal/ui/layout"
	"github.com/abhisek/careerwiz/internal/ui/theme"
	"github.com/abhisek/careerwiz/internal/wizard"
)

const (
	fieldWidth    = 48
	textareaLines = 3

	// minFormLines fits the tallest field: label, textarea, error and gap.
	minFormLines = textareaLines + 3
)

// ProfileScreen is the first wizard step: a six-field form plus a Next
// button. Every edit is mirrored into the draft.
type ProfileScreen struct {
	draft  *prof.Draft
	fields []prof.Field
	focus  int // len(fields) is the Next button

	selects   map[prof.Field]components.Selector
	inputs    map[prof.Field]components.TextInput
	textareas map[prof.Field]components.TextArea

	errs      map[prof.Field]string
	submitted bool

	offset int // first visible form line
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a profile form with every field empty and focus on the
// first field.
func New() *ProfileScreen {
	p := &ProfileScreen{
		draft:     prof.NewDraft(),
		fields:    prof.Fields(),
		selects:   make(map[prof.Field]components.Selector),
		inputs:    make(map[prof.Field]components.TextInput),
		textareas: make(map[prof.Field]components.TextArea),
		errs:      make(map[prof.Field]string),
	}

	for _, f := range p.fields {
		switch kindOf(f) {
		case kindSelect:
			opts := prof.OptionsFor(f)
			values := make([]string, len(opts))
			labels := make([]string, len(opts))
			for i, o := range opts {
				values[i] = o.Value
				labels[i] = o.Label
			}
			p.selects[f] = components.NewSelector(values, labels, prof.Placeholder(f))
		case kindText:
			p.inputs[f] = components.NewTextInput(prof.Placeholder(f), fieldWidth)
		case kindTextArea:
			p.textareas[f] = components.NewTextArea(prof.Placeholder(f), fieldWidth, textareaLines)
		}
	}
	p.setFocus(0)
	return p
}

type fieldKind int

const (
	kindSelect fieldKind = iota
	kindText
	kindTextArea
)

func kindOf(f prof.Field) fieldKind {
	switch f {
	case prof.FieldWorkExperience, prof.FieldHobbies:
		return kindTextArea
	}
	if prof.OptionsFor(f) != nil {
		return kindSelect
	}
	return kindText
}

// Draft exposes the form state.
func (p *ProfileScreen) Draft() *prof.Draft {
	return p.draft
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Shift+Tab", Description: "Previous"},
	}
	if f, ok := p.focusedField(); ok && kindOf(f) == kindSelect {
		hints = append(hints, layout.KeyHint{Key: "←/→", Description: "Choose"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Next step"})
}

func (p *ProfileScreen) focusedField() (prof.Field, bool) {
	if p.focus < len(p.fields) {
		return p.fields[p.focus], true
	}
	return "", false
}

func (p *ProfileScreen) onButton() bool {
	return p.focus == len(p.fields)
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, p.forward(msg)
	}
	if p.submitted {
		return p, nil
	}

	f, onField := p.focusedField()
	inTextArea := onField && kindOf(f) == kindTextArea

	switch kmsg.String() {
	case "ctrl+s":
		return p, p.submit()
	case "tab":
		return p, p.setFocus(p.focus + 1)
	case "shift+tab":
		return p, p.setFocus(p.focus - 1)
	case "down":
		if !inTextArea {
			return p, p.setFocus(p.focus + 1)
		}
	case "up":
		if !inTextArea {
			return p, p.setFocus(p.focus - 1)
		}
	case "enter":
		if p.onButton() {
			return p, p.submit()
		}
		if !inTextArea {
			return p, p.setFocus(p.focus + 1)
		}
	}

	return p, p.forward(kmsg)
}

// forward hands msg to the focused field and mirrors its value into the
// draft.
func (p *ProfileScreen) forward(msg tea.Msg) tea.Cmd {
	f, ok := p.focusedField()
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	var value string
	switch kindOf(f) {
	case kindSelect:
		sel, changed := p.selects[f].Update(msg)
		p.selects[f] = sel
		if !changed {
			return nil
		}
		value = sel.Value()
	case kindText:
		in := p.inputs[f]
		in, cmd = in.Update(msg)
		p.inputs[f] = in
		value = in.Value()
	case kindTextArea:
		ta := p.textareas[f]
		ta, cmd = ta.Update(msg)
		p.textareas[f] = ta
		value = ta.Value()
	}

	if value != p.draft.Get(f) {
		_ = p.draft.Set(f, value)
		delete(p.errs, f)
	}
	return cmd
}

// setFocus moves focus to index i, clamped to the fields plus the button.
func (p *ProfileScreen) setFocus(i int) tea.Cmd {
	i = max(0, min(i, len(p.fields)))

	for _, f := range p.fields {
		switch kindOf(f) {
		case kindSelect:
			s := p.selects[f]
			s.Focused = false
			p.selects[f] = s
		case kindText:
			in := p.inputs[f]
			in.Blur()
			p.inputs[f] = in
		case kindTextArea:
			ta := p.textareas[f]
			ta.Blur()
			p.textareas[f] = ta
		}
	}

	p.focus = i
	f, ok := p.focusedField()
	if !ok {
		return nil
	}
	switch kindOf(f) {
	case kindSelect:
		s := p.selects[f]
		s.Focused = true
		p.selects[f] = s
	case kindText:
		in := p.inputs[f]
		cmd := in.Focus()
		p.inputs[f] = in
		return cmd
	case kindTextArea:
		ta := p.textareas[f]
		cmd := ta.Focus()
		p.textareas[f] = ta
		return cmd
	}
	return nil
}

// submit validates the draft. Failures are shown inline and focus jumps to
// the first bad field.
func (p *ProfileScreen) submit() tea.Cmd {
	up := p.draft.Profile()
	if err := prof.Validate(up); err != nil {
		p.errs = make(map[prof.Field]string)
		first := len(p.fields)
		for _, fe := range prof.FieldErrors(err) {
			p.errs[fe.Field] = fe.Message
			for i, f := range p.fields {
				if f == fe.Field && i < first {
					first = i
				}
			}
		}
		return p.setFocus(first)
	}

	p.submitted = true
	return func() tea.Msg {
		return wizard.ProfileSubmittedMsg{Profile: up}
	}
}

func (p *ProfileScreen) View(width, height int) string {
	head := []string{theme.Title.Width(width).Render("Complete Your Profile")}
	subtitle := theme.Subtitle.Width(width).Render(
		"Tell us a bit about yourself to get personalized career recommendations.")

	rows := make([]string, 0, len(p.fields)+1)
	for i, f := range p.fields {
		rows = append(rows, p.renderField(f, i == p.focus))
	}
	rows = append(rows, components.NewButton("Next", p.onButton(), false).View())

	// Line span of the focused row within the form.
	start := 0
	for _, r := range rows[:p.focus] {
		start += lipgloss.Height(r)
	}
	end := start + lipgloss.Height(rows[p.focus])

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	lines := strings.Split(lipgloss.PlaceHorizontal(width, lipgloss.Center, form), "\n")

	// The subtitle goes first when space runs out.
	if height <= 0 || height-lipgloss.Height(subtitle)-2 >= minFormLines {
		head = append(head, subtitle, "")
	} else {
		head = append(head, "")
	}

	avail := height - lipgloss.Height(strings.Join(head, "\n"))
	if height > 0 && len(lines) > avail {
		avail = max(avail, 1)
		if start < p.offset {
			p.offset = start
		}
		if end > p.offset+avail {
			p.offset = end - avail
		}
		p.offset = max(0, min(p.offset, len(lines)-avail))
		lines = lines[p.offset : p.offset+avail]
	} else {
		p.offset = 0
	}

	return strings.Join(head, "\n") + "\n" + strings.Join(lines, "\n")
}

func (p *ProfileScreen) renderField(f prof.Field, focused bool) string {
	label := f.Label()
	if f.Required() {
		label += " *"
	}
	labelStyle := theme.Label
	if focused {
		labelStyle = labelStyle.Foreground(theme.Primary)
	}

	var control string
	switch kindOf(f) {
	case kindSelect:
		control = p.selects[f].View()
	case kindText:
		control = p.inputs[f].View()
	case kindTextArea:
		control = p.textareas[f].View()
	}

	lines := []string{labelStyle.Render(label), control}
	if msg, ok := p.errs[f]; ok {
		lines = append(lines, theme.ErrorText.Render("  "+f.Label()+" "+msg))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
