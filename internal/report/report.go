package report

import (
	"errors"
	"fmt"
	"strings"
)

// SkillScore is one entry of the proficiency breakdown.
type SkillScore struct {
	Skill string `json:"skill"`
	Score int    `json:"score"` // percent, e.g. 85 for 85%
}

// LearningPath is a suggested course of study.
type LearningPath struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SkillProficiency holds the overall score and its per-skill breakdown.
type SkillProficiency struct {
	Overall   int          `json:"overall"`
	Breakdown []SkillScore `json:"breakdown"`
}

// ReportData is the read-only result shown on the final step.
type ReportData struct {
	SkillProficiency  SkillProficiency `json:"skillProficiency"`
	CareerReadiness   int              `json:"careerReadiness"`
	Summary           string           `json:"summary"`
	RecommendedSkills []string         `json:"recommendedSkills"`
	LearningPaths     []LearningPath   `json:"learningPaths"`
}

// ErrInvalidReport wraps every Validate failure.
var ErrInvalidReport = errors.New("invalid report")

// Validate checks that every score is a percentage and the summary is set.
func (r *ReportData) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil report", ErrInvalidReport)
	}
	var errs []error
	check := func(name string, v int) {
		if v < 0 || v > 100 {
			errs = append(errs, fmt.Errorf("%w: %s score %d outside [0,100]", ErrInvalidReport, name, v))
		}
	}
	check("overall", r.SkillProficiency.Overall)
	check("career readiness", r.CareerReadiness)
	for _, s := range r.SkillProficiency.Breakdown {
		check(s.Skill, s.Score)
	}
	if strings.TrimSpace(r.Summary) == "" {
		errs = append(errs, fmt.Errorf("%w: empty summary", ErrInvalidReport))
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of r.
func (r *ReportData) Clone() *ReportData {
	if r == nil {
		return nil
	}
	out := *r
	out.SkillProficiency.Breakdown = append([]SkillScore(nil), r.SkillProficiency.Breakdown...)
	out.RecommendedSkills = append([]string(nil), r.RecommendedSkills...)
	out.LearningPaths = append([]LearningPath(nil), r.LearningPaths...)
	return &out
}

var mockReport = ReportData{
	SkillProficiency: SkillProficiency{
		Overall: 72,
		Breakdown: []SkillScore{
			{Skill: "React", Score: 80},
			{Skill: "TypeScript", Score: 65},
			{Skill: "Git", Score: 70},
		},
	},
	CareerReadiness: 68,
	Summary: "You have a solid foundation in front-end development. Strengthening your " +
		"TypeScript skills and gaining hands-on experience with version control workflows " +
		"will make you job-ready for junior developer roles.",
	RecommendedSkills: []string{"Advanced TypeScript", "Testing with Jest", "CI/CD Basics", "REST API Design"},
	LearningPaths: []LearningPath{
		{ID: 1, Title: "Front-End Developer Track", Description: "Deepen your React and TypeScript knowledge with real-world projects."},
		{ID: 2, Title: "Full-Stack Fundamentals", Description: "Learn Node.js, databases and API design to broaden your profile."},
	},
}

// Mock returns a copy of the static placeholder report.
func Mock() *ReportData {
	return mockReport.Clone()
}
