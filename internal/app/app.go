package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/llm"
	"github.com/abhisek/careerwiz/internal/profile"
	"github.com/abhisek/careerwiz/internal/report"
	"github.com/abhisek/careerwiz/internal/router"
	"github.com/abhisek/careerwiz/internal/screen"
	assessscreen "github.com/abhisek/careerwiz/internal/screens/assessment"
	"github.com/abhisek/careerwiz/internal/screens/pending"
	profilescreen "github.com/abhisek/careerwiz/internal/screens/profile"
	reportscreen "github.com/abhisek/careerwiz/internal/screens/report"
	"github.com/abhisek/careerwiz/internal/screens/welcome"
	"github.com/abhisek/careerwiz/internal/ui/layout"
	"github.com/abhisek/careerwiz/internal/wizard"
)

// DefaultTimeout bounds a single collaborator call when Options.Timeout is
// unset.
const DefaultTimeout = 45 * time.Second

// Options configures the wizard application.
type Options struct {
	Source    assessment.Source // defaults to the built-in question bank
	Evaluator report.Evaluator  // defaults to the static report
	Logger    *zap.Logger
	Timeout   time.Duration
	Splash    bool   // show the welcome screen before the profile step
	RunID     string // generated when empty
}

// AppModel is the root Bubble Tea model. It owns the wizard coordinator and
// swaps step screens as the coordinator advances.
type AppModel struct {
	router    *router.Router
	wizard    *wizard.Coordinator
	source    assessment.Source
	evaluator report.Evaluator
	log       *zap.Logger
	ctx       context.Context
	timeout   time.Duration
	runID     string
	width     int
	height    int
}

// newAppModel creates an AppModel on the profile step.
func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.Source == nil {
		opts.Source = assessment.StaticSource{}
	}
	if opts.Evaluator == nil {
		opts.Evaluator = report.StaticEvaluator{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RunID == "" {
		opts.RunID = uuid.New().String()
	}

	var first screen.Screen = profilescreen.New()
	if opts.Splash {
		first = welcome.New(func() screen.Screen { return profilescreen.New() })
	}

	return AppModel{
		router:    router.New(first),
		wizard:    wizard.New(),
		source:    opts.Source,
		evaluator: opts.Evaluator,
		log:       opts.Logger.With(zap.String("run_id", opts.RunID)),
		ctx:       llm.WithRunID(ctx, opts.RunID),
		timeout:   opts.Timeout,
		runID:     opts.RunID,
	}
}

func (m AppModel) Init() tea.Cmd {
	m.log.Info("wizard started", zap.Stringer("step", m.wizard.Step()))
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.log.Info("wizard quit", zap.Stringer("step", m.wizard.Step()))
			return m, tea.Quit
		}

	case wizard.ProfileSubmittedMsg:
		return m, m.handleProfileSubmitted(msg)

	case wizard.QuestionsLoadedMsg:
		return m, m.handleQuestionsLoaded(msg)

	case wizard.AnswersSubmittedMsg:
		return m, m.handleAnswersSubmitted(msg)

	case wizard.ReportReadyMsg:
		return m, m.handleReportReady(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) handleProfileSubmitted(msg wizard.ProfileSubmittedMsg) tea.Cmd {
	p := msg.Profile
	if err := m.wizard.SubmitProfile(p); err != nil {
		m.log.Error("profile submission rejected", zap.Error(err))
		return nil
	}
	m.log.Info("profile submitted",
		zap.String("qualification", p.Qualification),
		zap.Strings("known_skills", profile.SkillList(p.KnownSkills)),
		zap.Strings("skills_to_learn", profile.SkillList(p.SkillsToLearn)),
		zap.String("work_experience", p.WorkExperience),
		zap.String("hobbies", p.Hobbies),
		zap.String("job_status", p.JobStatus),
	)

	return tea.Batch(
		m.router.Replace(pending.New(wizard.StepAssessment.Title(), "Preparing your assessment...")),
		m.loadQuestions(),
	)
}

func (m AppModel) loadQuestions() tea.Cmd {
	p, _ := m.wizard.Profile()
	source := m.source
	ctx, timeout := m.ctx, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		qs, err := source.Questions(ctx, p)
		return wizard.QuestionsLoadedMsg{Questions: qs, Err: err}
	}
}

func (m AppModel) handleQuestionsLoaded(msg wizard.QuestionsLoadedMsg) tea.Cmd {
	qs := msg.Questions
	if msg.Err != nil {
		m.log.Warn("loading questions failed, using default questions", zap.Error(msg.Err))
		qs = assessment.DefaultQuestions()
	}

	s, err := assessscreen.New(qs)
	if err != nil {
		m.log.Warn("question set rejected, using default questions", zap.Error(err))
		qs = assessment.DefaultQuestions()
		s, _ = assessscreen.New(qs)
	}

	if err := m.wizard.SetQuestions(qs); err != nil {
		m.log.Error("questions arrived out of step", zap.Error(err))
		return nil
	}
	m.log.Debug("questions loaded", zap.Int("count", len(qs)))
	return m.router.Replace(s)
}

func (m AppModel) handleAnswersSubmitted(msg wizard.AnswersSubmittedMsg) tea.Cmd {
	if err := m.wizard.SubmitAnswers(msg.Answers); err != nil {
		m.log.Error("answer submission rejected", zap.Error(err))
		return nil
	}
	m.log.Info("final answers",
		zap.Any("answers", msg.Answers),
		zap.Int("answered", len(msg.Answers)),
		zap.Int("questions", len(m.wizard.Questions())),
	)

	return tea.Batch(
		m.router.Replace(reportscreen.New(nil)),
		m.evaluate(),
	)
}

func (m AppModel) evaluate() tea.Cmd {
	in := m.wizard.EvaluationInput()
	evaluator := m.evaluator
	ctx, timeout := m.ctx, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		r, err := evaluator.Evaluate(ctx, in)
		return wizard.ReportReadyMsg{Report: r, Err: err}
	}
}

func (m AppModel) handleReportReady(msg wizard.ReportReadyMsg) tea.Cmd {
	r := msg.Report
	switch {
	case msg.Err != nil:
		m.log.Error("evaluation failed, showing placeholder report", zap.Error(msg.Err))
		r = report.Mock()
	case r == nil:
		m.log.Error("evaluator returned no report, showing placeholder report")
		r = report.Mock()
	}

	if err := m.wizard.SetReport(r); err != nil {
		m.log.Error("report arrived out of step", zap.Error(err))
		return nil
	}
	m.log.Info("report ready",
		zap.Int("overall", r.SkillProficiency.Overall),
		zap.Int("career_readiness", r.CareerReadiness),
	)
	return m.router.Replace(reportscreen.New(m.wizard.Report()))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame: header with the step indicator, the active
// step screen and the key hint footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, step := "", 0
	if active != nil && active.Title() != "" {
		title = active.Title()
		step = int(m.wizard.Step())
	}

	header := layout.RenderHeader(title, step, wizard.StepCount, m.width)

	footer := layout.RenderFooter(screen.Hints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the wizard and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
