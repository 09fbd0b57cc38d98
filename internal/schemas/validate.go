// Package schemas provides JSON Schema validation for the payloads
// exchanged with the analysis service. Schemas are embedded at compile
// time and compiled once on first use.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchemaJSON []byte

//go:embed report.schema.json
var reportSchemaJSON []byte

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("%s schema validation failed: %s", e.Schema, strings.Join(parts, "; "))
}

// SchemaLoadError represents errors compiling the schema itself.
type SchemaLoadError struct {
	Schema string
	Cause  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Schema, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	compileOnce   sync.Once
	profileSchema *gojsonschema.Schema
	reportSchema  *gojsonschema.Schema
	compileErr    error
)

func compile() {
	profileSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(profileSchemaJSON))
	if compileErr != nil {
		compileErr = &SchemaLoadError{Schema: "profile", Cause: compileErr}
		return
	}
	reportSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(reportSchemaJSON))
	if compileErr != nil {
		compileErr = &SchemaLoadError{Schema: "report", Cause: compileErr}
	}
}

// ValidateProfile checks a serialized profile against the UserBackground schema.
func ValidateProfile(document []byte) error {
	return validateWith("profile", document)
}

// ValidateReport checks a serialized report against the AnalysisReport schema.
func ValidateReport(document []byte) error {
	return validateWith("report", document)
}

func validateWith(name string, document []byte) error {
	compileOnce.Do(compile)
	if compileErr != nil {
		return compileErr
	}

	schema := profileSchema
	if name == "report" {
		schema = reportSchema
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{Schema: name, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
