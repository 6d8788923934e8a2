package profile

// Option is one choice of an enumerated profile field.
type Option struct {
	Value string
	Label string
}

// QualificationOptions lists the accepted qualification values.
var QualificationOptions = []Option{
	{Value: "highschool", Label: "High School"},
	{Value: "bachelors", Label: "Bachelor's Degree"},
	{Value: "masters", Label: "Master's Degree"},
	{Value: "phd", Label: "PhD"},
}

// JobStatusOptions lists the accepted job status values.
var JobStatusOptions = []Option{
	{Value: "student", Label: "Student"},
	{Value: "fresher", Label: "Fresher"},
	{Value: "employed", Label: "Employed"},
}

// OptionsFor returns the enumerated options for f, or nil for free-text fields.
func OptionsFor(f Field) []Option {
	switch f {
	case FieldQualification:
		return QualificationOptions
	case FieldJobStatus:
		return JobStatusOptions
	}
	return nil
}

// Placeholder returns the prompt shown in an empty field.
func Placeholder(f Field) string {
	switch f {
	case FieldQualification:
		return "Select your highest qualification"
	case FieldKnownSkills:
		return "e.g., JavaScript, Python, Data Analysis"
	case FieldSkillsToLearn:
		return "e.g., Machine Learning, Cloud Computing"
	case FieldWorkExperience:
		return "Describe your work experience"
	case FieldHobbies:
		return "List your hobbies and interests"
	case FieldJobStatus:
		return "Select your current status"
	}
	return ""
}

// LabelFor returns the display label for an enumerated value, or the value
// itself when it is not enumerated.
func LabelFor(f Field, value string) string {
	for _, o := range OptionsFor(f) {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func isOption(f Field, value string) bool {
	for _, o := range OptionsFor(f) {
		if o.Value == value {
			return true
		}
	}
	return false
}
