package wizard

import (
	"github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/profile"
	"github.com/abhisek/careerwiz/internal/report"
)

// ProfileSubmittedMsg is sent by the profile screen when a valid profile is
// submitted.
type ProfileSubmittedMsg struct {
	Profile profile.UserProfile
}

// AnswersSubmittedMsg is sent by the assessment screen on Submit Test.
type AnswersSubmittedMsg struct {
	Answers assessment.AnswerMap
}

// QuestionsLoadedMsg carries the questions fetched for the assessment.
type QuestionsLoadedMsg struct {
	Questions []assessment.Question
	Err       error
}

// ReportReadyMsg carries the evaluated report.
type ReportReadyMsg struct {
	Report *report.ReportData
	Err    error
}
