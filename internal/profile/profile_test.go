package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftIsEmpty(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, UserProfile{}, d.Profile())
	for _, f := range Fields() {
		assert.Empty(t, d.Get(f), "field %s", f)
	}
}

func TestDraftLastWriteWins(t *testing.T) {
	d := NewDraft()
	for _, f := range Fields() {
		require.NoError(t, d.Set(f, "first-"+string(f)))
	}
	// Second pass in reverse order; every field must hold its last value.
	fields := Fields()
	for i := len(fields) - 1; i >= 0; i-- {
		require.NoError(t, d.Set(fields[i], "last-"+string(fields[i])))
	}

	p := d.Profile()
	for _, f := range fields {
		v, err := p.Value(f)
		require.NoError(t, err)
		assert.Equal(t, "last-"+string(f), v)
	}
}

func TestDraftSetLeavesOtherFields(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.Set(FieldQualification, "bachelors"))
	require.NoError(t, d.Set(FieldKnownSkills, "Python"))

	assert.Equal(t, UserProfile{
		Qualification: "bachelors",
		KnownSkills:   "Python",
	}, d.Profile())
}

func TestDraftUnknownField(t *testing.T) {
	d := NewDraft()
	err := d.Set(Field("salary"), "lots")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestProfileIsCopy(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.Set(FieldHobbies, "chess"))
	p := d.Profile()
	require.NoError(t, d.Set(FieldHobbies, "go"))
	assert.Equal(t, "chess", p.Hobbies)
}

func TestValidate(t *testing.T) {
	valid := UserProfile{
		Qualification: "bachelors",
		KnownSkills:   "Python",
		SkillsToLearn: "Go",
		JobStatus:     "student",
	}

	tests := []struct {
		name       string
		mutate     func(p *UserProfile)
		wantFields []Field
	}{
		{"valid with optional fields empty", func(p *UserProfile) {}, nil},
		{"missing qualification", func(p *UserProfile) { p.Qualification = "" }, []Field{FieldQualification}},
		{"blank known skills", func(p *UserProfile) { p.KnownSkills = "   " }, []Field{FieldKnownSkills}},
		{"bad job status", func(p *UserProfile) { p.JobStatus = "retired" }, []Field{FieldJobStatus}},
		{"everything missing", func(p *UserProfile) { *p = UserProfile{} }, []Field{
			FieldQualification, FieldKnownSkills, FieldSkillsToLearn, FieldJobStatus,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := Validate(p)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var got []Field
			for _, fe := range FieldErrors(err) {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestFieldErrorsSingle(t *testing.T) {
	err := &FieldError{Field: FieldHobbies, Message: "bad"}
	got := FieldErrors(err)
	require.Len(t, got, 1)
	assert.True(t, errors.Is(error(got[0]), err))
}

func TestSkillList(t *testing.T) {
	assert.Equal(t, []string{"Go", "Python", "SQL"}, SkillList(" Go, Python ,,SQL "))
	assert.Nil(t, SkillList("  "))
}

func TestDescribe(t *testing.T) {
	p := UserProfile{
		Qualification: "masters",
		KnownSkills:   "Go,  SQL ,",
		JobStatus:     "employed",
	}
	want := "- Highest Qualification: Master's Degree\n" +
		"- Known Skills (comma-separated): Go, SQL\n" +
		"- Skills to Learn (comma-separated): Not provided\n" +
		"- Work Experience: Not provided\n" +
		"- Hobbies/Interests: Not provided\n" +
		"- Current Job Status: Employed"
	assert.Equal(t, want, p.Describe())
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Bachelor's Degree", LabelFor(FieldQualification, "bachelors"))
	assert.Equal(t, "Employed", LabelFor(FieldJobStatus, "employed"))
	assert.Equal(t, "Python", LabelFor(FieldKnownSkills, "Python"))
}
