// Package analysis provides the client for the remote positioning
// analysis service.
package analysis

import "fmt"

// FallbackMessage is the last-resort user-visible message when neither a
// remote detail nor a usable transport error is available.
const FallbackMessage = "Analysis failed. Please try again later."

// TransportMessage is the user-visible message for network-level failures
// where no response was received.
const TransportMessage = "Unable to reach the analysis service. Please check your connection and try again."

// TransportError indicates the request never produced a usable response:
// connection refused, timeout, or a malformed body.
type TransportError struct {
	URL     string
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error for %s: %s", e.URL, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// RemoteError indicates the service responded with an error payload. Detail
// carries the service-provided explanation when one was present.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("analysis service error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("analysis service error (status %d)", e.StatusCode)
}

// UserMessage derives the single user-visible message for a failed call.
// Precedence: remote-provided detail, then a generic transport message,
// then the static fallback. The result is never empty.
func UserMessage(err error) string {
	switch e := err.(type) {
	case *RemoteError:
		if e.Detail != "" {
			return e.Detail
		}
		return FallbackMessage
	case *TransportError:
		return TransportMessage
	}
	return FallbackMessage
}
