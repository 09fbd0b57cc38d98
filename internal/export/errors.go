// Package export captures the rendered report surface and slices it into
// fixed-size document pages.
package export

import "fmt"

// Error represents an export failure, tagged with the stage it occurred
// in. Export errors are caught at the exporter boundary: the report view
// is unaffected and no partial document is left behind.
type Error struct {
	Stage   string // "capture", "paginate" or "encode"
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error (%s): %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("export error (%s): %s", e.Stage, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
