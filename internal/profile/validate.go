package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// wireNames maps Go struct field names to the wire field names used by the
// analysis service, so validation errors are reported in wire terms.
var wireNames = map[string]string{
	"UndergraduateUniversity": "undergraduate_university",
	"UndergraduateMajor":      "undergraduate_major",
	"GPA":                     "gpa",
	"GPAScale":                "gpa_scale",
	"GraduationYear":          "graduation_year",
	"TargetCountries":         "target_countries",
	"TargetMajors":            "target_majors",
	"TargetDegreeType":        "target_degree_type",
}

// Validate checks the profile against the required-field and enum
// constraints, collecting every violation. It returns a *ValidationError
// naming each failing field, or nil if the profile is valid.
func (p *Profile) Validate() error {
	verr := &ValidationError{}

	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("profile validation: %w", err)
		}
		for _, fe := range fieldErrs {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   wireName(fe.StructField()),
				Message: messageFor(fe),
			})
		}
	}

	// Block-level invariant: a present language block must carry its test
	// family whenever a total score is recorded.
	if p.Language != nil && p.Language.Total > 0 && p.Language.TestType == "" {
		verr.Fields = append(verr.Fields, FieldError{
			Field:   "language_test_type",
			Message: "test type is required when a total score is present",
		})
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func wireName(structField string) string {
	if name, ok := wireNames[structField]; ok {
		return name
	}
	return structField
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return "must not be empty"
	case "gt":
		return "must be greater than 0"
	case "gte", "lte":
		return "is out of range"
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}
