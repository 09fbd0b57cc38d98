// Package profile defines the applicant background submitted for analysis.
//
// The three standardized-test blocks are modeled as tagged unions: a nil
// pointer means the block is absent from the profile, a non-nil pointer
// means the whole block is present. There is no partially-present block.
package profile

// GPAScale identifies the grading scale the GPA value is expressed in.
type GPAScale string

const (
	Scale4   GPAScale = "4.0"
	Scale5   GPAScale = "5.0"
	Scale100 GPAScale = "100"
)

// DegreeType is the credential level the applicant is targeting.
type DegreeType string

const (
	DegreeMaster DegreeType = "Master"
	DegreePhD    DegreeType = "PhD"
)

// LanguageTestType identifies the language proficiency test family.
type LanguageTestType string

const (
	TestTOEFL LanguageTestType = "TOEFL"
	TestIELTS LanguageTestType = "IELTS"
)

// LanguageTest holds a complete language proficiency score block.
type LanguageTest struct {
	TestType  LanguageTestType
	Total     int
	Reading   int
	Listening int
	Speaking  int
	Writing   int
}

// GRE holds a complete GRE score block.
type GRE struct {
	Total        int
	Verbal       int
	Quantitative int
	Writing      float64
}

// GMAT holds a GMAT composite score block.
type GMAT struct {
	Total int
}

// ResearchExperience is a single research entry. Role may be empty.
type ResearchExperience struct {
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description"`
}

// InternshipExperience is a single internship entry.
type InternshipExperience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

// OtherExperience is a single extracurricular or miscellaneous entry.
type OtherExperience struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Profile is the full applicant background. It is assembled by the intake
// aggregator and treated as immutable once handed to the analysis client.
type Profile struct {
	// Academic background (required)
	UndergraduateUniversity string   `validate:"required"`
	UndergraduateMajor      string   `validate:"required"`
	GPA                     float64  `validate:"required,gt=0"`
	GPAScale                GPAScale `validate:"required,oneof=4.0 5.0 100"`
	GraduationYear          int      `validate:"required,gte=1950,lte=2100"`

	// Application intentions (required)
	TargetCountries  []string   `validate:"required,min=1,dive,required"`
	TargetMajors     []string   `validate:"required,min=1,dive,required"`
	TargetDegreeType DegreeType `validate:"required,oneof=Master PhD"`

	// Optional score blocks; nil means absent
	Language *LanguageTest
	GRE      *GRE
	GMAT     *GMAT

	// Experience lists; order is insertion order and is preserved on the wire
	ResearchExperiences   []ResearchExperience
	InternshipExperiences []InternshipExperience
	OtherExperiences      []OtherExperience
}
