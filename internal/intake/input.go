package intake

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lukesour/school-positioning/internal/profile"
)

// Input is the JSON document the run command accepts as the applicant's
// raw intake. It mirrors the form surface, toggles included, so a saved
// input round-trips through the same submit path as interactive entry.
type Input struct {
	UndergraduateUniversity string           `json:"undergraduate_university"`
	UndergraduateMajor      string           `json:"undergraduate_major"`
	GPA                     float64          `json:"gpa"`
	GPAScale                profile.GPAScale `json:"gpa_scale"`
	GraduationYear          int              `json:"graduation_year"`

	TargetCountries  []string           `json:"target_countries"`
	TargetMajors     []string           `json:"target_majors"`
	TargetDegreeType profile.DegreeType `json:"target_degree_type"`

	IncludeLanguage   bool                     `json:"include_language"`
	LanguageTestType  profile.LanguageTestType `json:"language_test_type,omitempty"`
	LanguageTotal     int                      `json:"language_total_score,omitempty"`
	LanguageReading   int                      `json:"language_reading,omitempty"`
	LanguageListening int                      `json:"language_listening,omitempty"`
	LanguageSpeaking  int                      `json:"language_speaking,omitempty"`
	LanguageWriting   int                      `json:"language_writing,omitempty"`

	IncludeGRE      bool    `json:"include_gre"`
	GRETotal        int     `json:"gre_total,omitempty"`
	GREVerbal       int     `json:"gre_verbal,omitempty"`
	GREQuantitative int     `json:"gre_quantitative,omitempty"`
	GREWriting      float64 `json:"gre_writing,omitempty"`

	IncludeGMAT bool `json:"include_gmat"`
	GMATTotal   int  `json:"gmat_total,omitempty"`

	ResearchExperiences   []InputExperience `json:"research_experiences,omitempty"`
	InternshipExperiences []InputExperience `json:"internship_experiences,omitempty"`
	OtherExperiences      []InputExperience `json:"other_experiences,omitempty"`
}

// InputExperience is one experience row in the input document. Either
// name or company may be used for the primary field depending on the list.
type InputExperience struct {
	Name        string `json:"name,omitempty"`
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	Position    string `json:"position,omitempty"`
	Description string `json:"description,omitempty"`
}

// LoadInput reads an intake input document from a JSON file.
func LoadInput(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intake input %s: %w", path, err)
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse intake input JSON: %w", err)
	}
	return &in, nil
}

// Apply populates a form from the input document. Experience rows go
// through the list Add path so every row gets a stable identity.
func (in *Input) Apply(f *FormState) {
	f.University = in.UndergraduateUniversity
	f.Major = in.UndergraduateMajor
	f.GPA = in.GPA
	f.GPAScale = in.GPAScale
	f.GraduationYear = in.GraduationYear
	f.TargetCountries = in.TargetCountries
	f.TargetMajors = in.TargetMajors
	f.TargetDegreeType = in.TargetDegreeType

	f.IncludeLanguage = in.IncludeLanguage
	f.Scores.LanguageTestType = in.LanguageTestType
	f.Scores.LanguageTotal = in.LanguageTotal
	f.Scores.LanguageReading = in.LanguageReading
	f.Scores.LanguageListening = in.LanguageListening
	f.Scores.LanguageSpeaking = in.LanguageSpeaking
	f.Scores.LanguageWriting = in.LanguageWriting

	f.IncludeGRE = in.IncludeGRE
	f.Scores.GRETotal = in.GRETotal
	f.Scores.GREVerbal = in.GREVerbal
	f.Scores.GREQuantitative = in.GREQuantitative
	f.Scores.GREWriting = in.GREWriting

	f.IncludeGMAT = in.IncludeGMAT
	f.Scores.GMATTotal = in.GMATTotal

	fillList(f.Research, in.ResearchExperiences)
	fillList(f.Internships, in.InternshipExperiences)
	fillList(f.Other, in.OtherExperiences)
}

func fillList(l *ExperienceList, rows []InputExperience) {
	for _, row := range rows {
		entry := l.Get(l.Add())
		entry.Name = row.Name
		if entry.Name == "" {
			entry.Name = row.Company
		}
		entry.Role = row.Role
		if entry.Role == "" {
			entry.Role = row.Position
		}
		entry.Description = row.Description
	}
}
