package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukesour/school-positioning/internal/profile"
)

func filledForm() *FormState {
	f := NewFormState()
	f.University = "Nanjing University"
	f.Major = "Software Engineering"
	f.GPA = 88.5
	f.GPAScale = profile.Scale100
	f.GraduationYear = 2026
	f.TargetCountries = []string{"US", "CA"}
	f.TargetMajors = []string{"Computer Science"}
	f.TargetDegreeType = profile.DegreeMaster
	return f
}

func TestSubmit_MinimalValidProfile(t *testing.T) {
	p, err := filledForm().Submit()
	require.NoError(t, err)

	assert.Equal(t, "Nanjing University", p.UndergraduateUniversity)
	assert.Nil(t, p.Language)
	assert.Nil(t, p.GRE)
	assert.Nil(t, p.GMAT)
	assert.Empty(t, p.ResearchExperiences)
}

func TestSubmit_CollectsEveryMissingRequiredField(t *testing.T) {
	_, err := NewFormState().Submit()
	require.Error(t, err)

	verr, ok := err.(*profile.ValidationError)
	require.True(t, ok, "expected *profile.ValidationError, got %T", err)
	assert.True(t, verr.Has("undergraduate_university"))
	assert.True(t, verr.Has("undergraduate_major"))
	assert.True(t, verr.Has("gpa"))
	assert.True(t, verr.Has("target_countries"))
	assert.True(t, verr.Has("target_degree_type"))
}

func TestSubmit_ToggledOnBlockIncluded(t *testing.T) {
	f := filledForm()
	f.IncludeLanguage = true
	f.Scores.LanguageTestType = profile.TestIELTS
	f.Scores.LanguageTotal = 7
	f.Scores.LanguageReading = 8

	p, err := f.Submit()
	require.NoError(t, err)
	require.NotNil(t, p.Language)
	assert.Equal(t, profile.TestIELTS, p.Language.TestType)
	assert.Equal(t, 8, p.Language.Reading)
}

func TestSubmit_ToggledOffBlockNeverLeaksStaleValues(t *testing.T) {
	f := filledForm()

	// Fill the language inputs, then toggle the block off. The stale
	// values must not reach the assembled profile.
	f.IncludeLanguage = true
	f.Scores.LanguageTestType = profile.TestTOEFL
	f.Scores.LanguageTotal = 110
	f.IncludeLanguage = false

	f.IncludeGRE = true
	f.Scores.GRETotal = 330
	f.IncludeGRE = false

	p, err := f.Submit()
	require.NoError(t, err)
	assert.Nil(t, p.Language)
	assert.Nil(t, p.GRE)
}

func TestSubmit_ActiveButEmptyBlockOmitted(t *testing.T) {
	f := filledForm()

	// Toggle on, but leave the trigger fields empty/zero.
	f.IncludeLanguage = true
	f.IncludeGRE = true
	f.IncludeGMAT = true

	p, err := f.Submit()
	require.NoError(t, err)
	assert.Nil(t, p.Language)
	assert.Nil(t, p.GRE)
	assert.Nil(t, p.GMAT)
}

func TestSubmit_LanguageBlockRequiresTestTypeTrigger(t *testing.T) {
	f := filledForm()
	f.IncludeLanguage = true
	f.Scores.LanguageTotal = 100
	// Test type left empty: the block is active-but-empty and is omitted.

	p, err := f.Submit()
	require.NoError(t, err)
	assert.Nil(t, p.Language)
}

func TestSubmit_ExperienceIdentitiesStripped(t *testing.T) {
	f := filledForm()
	id := f.Research.Add()
	entry := f.Research.Get(id)
	entry.Name = "NLP lab"
	entry.Role = "Research assistant"
	entry.Description = "Built evaluation harness"

	internID := f.Internships.Add()
	intern := f.Internships.Get(internID)
	intern.Name = "ByteDance"
	intern.Role = "Backend intern"
	intern.Description = "Feed service work"

	p, err := f.Submit()
	require.NoError(t, err)

	require.Len(t, p.ResearchExperiences, 1)
	assert.Equal(t, "NLP lab", p.ResearchExperiences[0].Name)

	require.Len(t, p.InternshipExperiences, 1)
	assert.Equal(t, "ByteDance", p.InternshipExperiences[0].Company)
	assert.Equal(t, "Backend intern", p.InternshipExperiences[0].Position)
}

func TestReset_ClearsEverything(t *testing.T) {
	f := filledForm()
	f.IncludeGMAT = true
	f.Scores.GMATTotal = 720
	f.Other.Add()

	f.Reset()

	assert.Empty(t, f.University)
	assert.False(t, f.IncludeGMAT)
	assert.Zero(t, f.Scores.GMATTotal)
	assert.Equal(t, 0, f.Other.Len())

	_, err := f.Submit()
	require.Error(t, err, "a reset form must fail validation again")
}
