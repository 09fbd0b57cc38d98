package intake

import "github.com/lukesour/school-positioning/internal/profile"

// ScoreInputs is the shared field storage behind the optional score block
// toggles. Values persist while a block is toggled off so the user can
// toggle it back on without retyping, but a toggled-off block never
// reaches the assembled profile.
type ScoreInputs struct {
	LanguageTestType  profile.LanguageTestType
	LanguageTotal     int
	LanguageReading   int
	LanguageListening int
	LanguageSpeaking  int
	LanguageWriting   int

	GRETotal        int
	GREVerbal       int
	GREQuantitative int
	GREWriting      float64

	GMATTotal int
}

// FormState holds the full intake surface for one session. It is
// constructed fresh per session and mutated only by the surface; it never
// touches the network.
type FormState struct {
	// Academic background
	University     string
	Major          string
	GPA            float64
	GPAScale       profile.GPAScale
	GraduationYear int

	// Application intentions
	TargetCountries  []string
	TargetMajors     []string
	TargetDegreeType profile.DegreeType

	// Optional score blocks: independent toggles over shared inputs
	IncludeLanguage bool
	IncludeGRE      bool
	IncludeGMAT     bool
	Scores          ScoreInputs

	Research    *ExperienceList
	Internships *ExperienceList
	Other       *ExperienceList
}

// NewFormState creates an empty intake form.
func NewFormState() *FormState {
	return &FormState{
		Research:    NewExperienceList(KindResearch),
		Internships: NewExperienceList(KindInternship),
		Other:       NewExperienceList(KindOther),
	}
}

// Reset clears the form to a fresh session.
func (f *FormState) Reset() {
	*f = *NewFormState()
}

// Submit assembles and validates the profile. Optional score blocks are
// constructed explicitly from the inputs only when their toggle is on and
// their trigger field (total score, and test type for language) is
// non-empty; stale values behind a toggled-off or empty block can never
// leak into the profile. Returns a *profile.ValidationError naming every
// missing required field, or the immutable profile.
func (f *FormState) Submit() (*profile.Profile, error) {
	p := &profile.Profile{
		UndergraduateUniversity: f.University,
		UndergraduateMajor:      f.Major,
		GPA:                     f.GPA,
		GPAScale:                f.GPAScale,
		GraduationYear:          f.GraduationYear,
		TargetCountries:         f.TargetCountries,
		TargetMajors:            f.TargetMajors,
		TargetDegreeType:        f.TargetDegreeType,
	}

	if f.IncludeLanguage && f.Scores.LanguageTotal > 0 && f.Scores.LanguageTestType != "" {
		p.Language = &profile.LanguageTest{
			TestType:  f.Scores.LanguageTestType,
			Total:     f.Scores.LanguageTotal,
			Reading:   f.Scores.LanguageReading,
			Listening: f.Scores.LanguageListening,
			Speaking:  f.Scores.LanguageSpeaking,
			Writing:   f.Scores.LanguageWriting,
		}
	}
	if f.IncludeGRE && f.Scores.GRETotal > 0 {
		p.GRE = &profile.GRE{
			Total:        f.Scores.GRETotal,
			Verbal:       f.Scores.GREVerbal,
			Quantitative: f.Scores.GREQuantitative,
			Writing:      f.Scores.GREWriting,
		}
	}
	if f.IncludeGMAT && f.Scores.GMATTotal > 0 {
		p.GMAT = &profile.GMAT{Total: f.Scores.GMATTotal}
	}

	p.ResearchExperiences = assembleResearch(f.Research)
	p.InternshipExperiences = assembleInternships(f.Internships)
	p.OtherExperiences = assembleOther(f.Other)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// The assemble helpers map each list to a plain ordered sequence with
// identities stripped.

func assembleResearch(l *ExperienceList) []profile.ResearchExperience {
	out := make([]profile.ResearchExperience, 0, l.Len())
	for _, entry := range l.Entries() {
		out = append(out, profile.ResearchExperience{
			Name:        entry.Name,
			Role:        entry.Role,
			Description: entry.Description,
		})
	}
	return out
}

func assembleInternships(l *ExperienceList) []profile.InternshipExperience {
	out := make([]profile.InternshipExperience, 0, l.Len())
	for _, entry := range l.Entries() {
		out = append(out, profile.InternshipExperience{
			Company:     entry.Name,
			Position:    entry.Role,
			Description: entry.Description,
		})
	}
	return out
}

func assembleOther(l *ExperienceList) []profile.OtherExperience {
	out := make([]profile.OtherExperience, 0, l.Len())
	for _, entry := range l.Entries() {
		out = append(out, profile.OtherExperience{
			Name:        entry.Name,
			Description: entry.Description,
		})
	}
	return out
}
