package profile

import (
	"errors"
	"fmt"
	"strings"
)

// Field identifies one of the six profile fields.
type Field string

const (
	FieldQualification  Field = "qualification"
	FieldKnownSkills    Field = "knownSkills"
	FieldSkillsToLearn  Field = "skillsToLearn"
	FieldWorkExperience Field = "workExperience"
	FieldHobbies        Field = "hobbies"
	FieldJobStatus      Field = "jobStatus"
)

// Fields returns all profile fields in form order.
func Fields() []Field {
	return []Field{
		FieldQualification,
		FieldKnownSkills,
		FieldSkillsToLearn,
		FieldWorkExperience,
		FieldHobbies,
		FieldJobStatus,
	}
}

// Label returns the form label for the field.
func (f Field) Label() string {
	switch f {
	case FieldQualification:
		return "Highest Qualification"
	case FieldKnownSkills:
		return "Known Skills (comma-separated)"
	case FieldSkillsToLearn:
		return "Skills to Learn (comma-separated)"
	case FieldWorkExperience:
		return "Work Experience"
	case FieldHobbies:
		return "Hobbies/Interests"
	case FieldJobStatus:
		return "Current Job Status"
	default:
		return string(f)
	}
}

// Required reports whether the field must be non-empty on submission.
func (f Field) Required() bool {
	switch f {
	case FieldQualification, FieldKnownSkills, FieldSkillsToLearn, FieldJobStatus:
		return true
	}
	return false
}

// UserProfile describes the user's background. It is entered once.
type UserProfile struct {
	Qualification  string `json:"qualification"`
	KnownSkills    string `json:"knownSkills"`
	SkillsToLearn  string `json:"skillsToLearn"`
	WorkExperience string `json:"workExperience"`
	Hobbies        string `json:"hobbies"`
	JobStatus      string `json:"jobStatus"`
}

// Value returns the value stored for f.
func (p UserProfile) Value(f Field) (string, error) {
	switch f {
	case FieldQualification:
		return p.Qualification, nil
	case FieldKnownSkills:
		return p.KnownSkills, nil
	case FieldSkillsToLearn:
		return p.SkillsToLearn, nil
	case FieldWorkExperience:
		return p.WorkExperience, nil
	case FieldHobbies:
		return p.Hobbies, nil
	case FieldJobStatus:
		return p.JobStatus, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// SkillList splits a comma-separated skill field into trimmed, non-empty names.
func SkillList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Describe lists the profile one field per line as "- Label: value" for
// model prompts. Skill lists are normalized and empty fields read
// "Not provided".
func (p UserProfile) Describe() string {
	lines := make([]string, 0, len(Fields()))
	for _, f := range Fields() {
		v, _ := p.Value(f)
		switch f {
		case FieldKnownSkills, FieldSkillsToLearn:
			v = strings.Join(SkillList(v), ", ")
		default:
			v = strings.TrimSpace(LabelFor(f, v))
		}
		if v == "" {
			v = "Not provided"
		}
		lines = append(lines, "- "+f.Label()+": "+v)
	}
	return strings.Join(lines, "\n")
}

// ErrUnknownField is returned when a field name is not one of the six
// profile fields.
var ErrUnknownField = errors.New("unknown profile field")

// Draft is the mutable form state behind the profile screen.
type Draft struct {
	profile UserProfile
}

// NewDraft returns a draft with all six fields empty.
func NewDraft() *Draft {
	return &Draft{}
}

// Set merges a single field into the draft. Later writes win.
func (d *Draft) Set(f Field, value string) error {
	switch f {
	case FieldQualification:
		d.profile.Qualification = value
	case FieldKnownSkills:
		d.profile.KnownSkills = value
	case FieldSkillsToLearn:
		d.profile.SkillsToLearn = value
	case FieldWorkExperience:
		d.profile.WorkExperience = value
	case FieldHobbies:
		d.profile.Hobbies = value
	case FieldJobStatus:
		d.profile.JobStatus = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

// Get returns the current draft value for f.
func (d *Draft) Get(f Field) string {
	v, _ := d.profile.Value(f)
	return v
}

// Profile returns a copy of the draft as a UserProfile.
func (d *Draft) Profile() UserProfile {
	return d.profile
}
