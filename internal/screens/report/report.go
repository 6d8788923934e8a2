package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	rpt "github.com/abhisek/careerwiz/internal/report"
	"github.com/abhisek/careerwiz/internal/screen"
	"github.com/abhisek/careerwiz/internal/ui/components"
	"github.com/abhisek/careerwiz/internal/ui/layout"
	"github.com/abhisek/careerwiz/internal/ui/theme"
)

// ReportScreen renders the final skill report. A nil report shows a
// placeholder until evaluation finishes.
type ReportScreen struct {
	report *rpt.ReportData
	offset int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen for r, which may be nil.
func New(r *rpt.ReportData) *ReportScreen {
	return &ReportScreen{report: r}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	if s.report == nil {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.report == nil {
		return s, nil
	}
	switch kmsg.String() {
	case "q", "esc":
		return s, tea.Quit
	case "down", "j":
		s.offset++
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	if s.report == nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Generating report...")
	}

	lines := strings.Split(s.render(width), "\n")
	if height > 0 && len(lines) > height {
		s.offset = min(s.offset, len(lines)-height)
		lines = lines[s.offset : s.offset+height]
	} else {
		s.offset = 0
	}
	return strings.Join(lines, "\n")
}

func (s *ReportScreen) render(width int) string {
	r := s.report
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Your Skill Report"))
	b.WriteString("\n\n")

	// Headline scores.
	scores := fmt.Sprintf("Overall proficiency: %s        Career readiness: %s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(components.FormatPercent(float64(r.SkillProficiency.Overall))),
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(components.FormatPercent(float64(r.CareerReadiness))))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(scores)))
	b.WriteString("\n\n")

	if len(r.SkillProficiency.Breakdown) > 0 {
		labelWidth := 0
		for _, sc := range r.SkillProficiency.Breakdown {
			labelWidth = max(labelWidth, lipgloss.Width(sc.Skill))
		}
		var rows []string
		for _, sc := range r.SkillProficiency.Breakdown {
			label := sc.Skill + strings.Repeat(" ", labelWidth-lipgloss.Width(sc.Skill))
			rows = append(rows, components.NewProgressBar(label, float64(sc.Score), true, cw-4).View())
		}
		b.WriteString(components.Section("Skill Breakdown", strings.Join(rows, "\n"), cw, width))
		b.WriteString("\n\n")
	}

	b.WriteString(components.Section("Summary", theme.Body.Render(r.Summary), cw, width))
	b.WriteString("\n\n")

	if len(r.RecommendedSkills) > 0 {
		var items []string
		for _, sk := range r.RecommendedSkills {
			items = append(items, "• "+sk)
		}
		b.WriteString(components.Section("Recommended Skills", theme.Body.Render(strings.Join(items, "\n")), cw, width))
		b.WriteString("\n\n")
	}

	if len(r.LearningPaths) > 0 {
		var items []string
		for _, lp := range r.LearningPaths {
			items = append(items, theme.Label.Render(lp.Title)+"\n"+theme.Hint.Render(lp.Description))
		}
		b.WriteString(components.Section("Learning Paths", strings.Join(items, "\n\n"), cw, width))
	}

	return b.String()
}
