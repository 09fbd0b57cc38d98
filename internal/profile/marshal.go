package profile

import "encoding/json"

// wireProfile is the flattened JSON shape the analysis service accepts.
// Optional score fields are pointers so absent blocks are omitted from the
// payload entirely rather than serialized as zeroes.
type wireProfile struct {
	UndergraduateUniversity string   `json:"undergraduate_university"`
	UndergraduateMajor      string   `json:"undergraduate_major"`
	GPA                     float64  `json:"gpa"`
	GPAScale                GPAScale `json:"gpa_scale"`
	GraduationYear          int      `json:"graduation_year"`

	LanguageTestType  *LanguageTestType `json:"language_test_type,omitempty"`
	LanguageTotal     *int              `json:"language_total_score,omitempty"`
	LanguageReading   *int              `json:"language_reading,omitempty"`
	LanguageListening *int              `json:"language_listening,omitempty"`
	LanguageSpeaking  *int              `json:"language_speaking,omitempty"`
	LanguageWriting   *int              `json:"language_writing,omitempty"`

	GRETotal        *int     `json:"gre_total,omitempty"`
	GREVerbal       *int     `json:"gre_verbal,omitempty"`
	GREQuantitative *int     `json:"gre_quantitative,omitempty"`
	GREWriting      *float64 `json:"gre_writing,omitempty"`
	GMATTotal       *int     `json:"gmat_total,omitempty"`

	TargetCountries  []string   `json:"target_countries"`
	TargetMajors     []string   `json:"target_majors"`
	TargetDegreeType DegreeType `json:"target_degree_type"`

	ResearchExperiences   []ResearchExperience   `json:"research_experiences"`
	InternshipExperiences []InternshipExperience `json:"internship_experiences"`
	OtherExperiences      []OtherExperience      `json:"other_experiences"`
}

// MarshalJSON flattens the tagged-union score blocks into the wire shape.
// A nil block contributes no fields to the payload.
func (p *Profile) MarshalJSON() ([]byte, error) {
	w := wireProfile{
		UndergraduateUniversity: p.UndergraduateUniversity,
		UndergraduateMajor:      p.UndergraduateMajor,
		GPA:                     p.GPA,
		GPAScale:                p.GPAScale,
		GraduationYear:          p.GraduationYear,
		TargetCountries:         p.TargetCountries,
		TargetMajors:            p.TargetMajors,
		TargetDegreeType:        p.TargetDegreeType,
		ResearchExperiences:     emptyIfNil(p.ResearchExperiences),
		InternshipExperiences:   emptyIfNil(p.InternshipExperiences),
		OtherExperiences:        emptyIfNil(p.OtherExperiences),
	}

	if lang := p.Language; lang != nil {
		w.LanguageTestType = &lang.TestType
		w.LanguageTotal = &lang.Total
		w.LanguageReading = &lang.Reading
		w.LanguageListening = &lang.Listening
		w.LanguageSpeaking = &lang.Speaking
		w.LanguageWriting = &lang.Writing
	}
	if gre := p.GRE; gre != nil {
		w.GRETotal = &gre.Total
		w.GREVerbal = &gre.Verbal
		w.GREQuantitative = &gre.Quantitative
		w.GREWriting = &gre.Writing
	}
	if gmat := p.GMAT; gmat != nil {
		w.GMATTotal = &gmat.Total
	}

	return json.Marshal(w)
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
