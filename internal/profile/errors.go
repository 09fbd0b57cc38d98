// Package profile defines the applicant background submitted for analysis.
package profile

import (
	"fmt"
	"strings"
)

// FieldError reports a single validation failure scoped to a wire field name.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every validation failure found on a profile.
// All violations are gathered in one pass rather than short-circuiting on
// the first, so the intake surface can report any or all of them.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "profile validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "profile validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the error includes a failure for the given wire field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
