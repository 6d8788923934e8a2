// Package wizard holds the three-step state machine that drives the
// profile, assessment and report screens.
package wizard

import (
	"errors"
	"fmt"

	"github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/profile"
	"github.com/abhisek/careerwiz/internal/report"
)

// Step is one of the three top-level wizard phases.
type Step int

const (
	StepProfile Step = iota + 1
	StepAssessment
	StepReport
)

// StepCount is the number of wizard steps.
const StepCount = 3

func (s Step) String() string {
	switch s {
	case StepProfile:
		return "profile"
	case StepAssessment:
		return "assessment"
	case StepReport:
		return "report"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Title returns the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepProfile:
		return "Profile"
	case StepAssessment:
		return "Skill Assessment"
	case StepReport:
		return "Report"
	}
	return ""
}

// ErrNilReport is returned by SetReport when given a nil report.
var ErrNilReport = errors.New("report is nil")

// TransitionError is returned when an event is not valid in the current step.
type TransitionError struct {
	Step  Step
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("wizard: cannot %s during %s step", e.Event, e.Step)
}

// Coordinator tracks the active step and the data each step produced. It
// only moves forward.
type Coordinator struct {
	step      Step
	profile   *profile.UserProfile
	questions []assessment.Question
	answers   assessment.AnswerMap
	report    *report.ReportData
}

// New returns a Coordinator at the profile step.
func New() *Coordinator {
	return &Coordinator{step: StepProfile}
}

func (c *Coordinator) guard(want Step, event string) error {
	if c.step != want {
		return &TransitionError{Step: c.step, Event: event}
	}
	return nil
}

// SubmitProfile stores the profile and advances to the assessment.
func (c *Coordinator) SubmitProfile(p profile.UserProfile) error {
	if err := c.guard(StepProfile, "submit profile"); err != nil {
		return err
	}
	c.profile = &p
	c.step = StepAssessment
	return nil
}

// SetQuestions records the question set the user is answering.
func (c *Coordinator) SetQuestions(qs []assessment.Question) error {
	if err := c.guard(StepAssessment, "set questions"); err != nil {
		return err
	}
	c.questions = cloneQuestions(qs)
	return nil
}

// SubmitAnswers stores the answers and advances to the report step. The
// report itself arrives later through SetReport.
func (c *Coordinator) SubmitAnswers(a assessment.AnswerMap) error {
	if err := c.guard(StepAssessment, "submit answers"); err != nil {
		return err
	}
	if a == nil {
		a = assessment.AnswerMap{}
	}
	c.answers = a.Clone()
	c.step = StepReport
	return nil
}

// SetReport populates the report shown on the final step.
func (c *Coordinator) SetReport(r *report.ReportData) error {
	if err := c.guard(StepReport, "set report"); err != nil {
		return err
	}
	if r == nil {
		return ErrNilReport
	}
	c.report = r.Clone()
	return nil
}

// Step returns the active step.
func (c *Coordinator) Step() Step { return c.step }

// Profile returns the submitted profile, if any.
func (c *Coordinator) Profile() (profile.UserProfile, bool) {
	if c.profile == nil {
		return profile.UserProfile{}, false
	}
	return *c.profile, true
}

// Questions returns a copy of the recorded question set.
func (c *Coordinator) Questions() []assessment.Question { return cloneQuestions(c.questions) }

// Answers returns a copy of the submitted answers, or nil before submission.
func (c *Coordinator) Answers() assessment.AnswerMap {
	if c.answers == nil {
		return nil
	}
	return c.answers.Clone()
}

// Report returns the populated report, or nil while it is still being
// generated.
func (c *Coordinator) Report() *report.ReportData { return c.report.Clone() }

// EvaluationInput bundles what an evaluator needs from the finished steps.
func (c *Coordinator) EvaluationInput() report.EvaluationInput {
	p, _ := c.Profile()
	return report.EvaluationInput{
		Profile:   p,
		Questions: c.Questions(),
		Answers:   c.Answers(),
	}
}

func cloneQuestions(qs []assessment.Question) []assessment.Question {
	if qs == nil {
		return nil
	}
	out := make([]assessment.Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
