package orchestrator

import (
	"context"
	"log"
	"sync"

	"github.com/lukesour/school-positioning/internal/analysis"
	"github.com/lukesour/school-positioning/internal/intake"
	"github.com/lukesour/school-positioning/internal/profile"
	"github.com/lukesour/school-positioning/internal/report"
)

// State is the session's position in the form -> submitting -> report flow.
type State string

const (
	StateForm       State = "form"
	StateSubmitting State = "submitting"
	StateReport     State = "report"
)

// Analyzer is the slice of the analysis client the session depends on.
type Analyzer interface {
	Analyze(ctx context.Context, p *profile.Profile) (*report.Report, error)
}

// Session is the long-lived state machine for one applicant session. It
// owns the intake form while in the form state and the report while in the
// report state; the pending-submission slot is the only shared resource
// and is mutated only here.
type Session struct {
	mu       sync.Mutex
	state    State
	form     *intake.FormState
	report   *report.Report
	analyzer Analyzer
	lastMsg  string
	verbose  bool
}

// NewSession starts a session in the form state with a fresh intake form.
func NewSession(analyzer Analyzer, verbose bool) *Session {
	return &Session{
		state:    StateForm,
		form:     intake.NewFormState(),
		analyzer: analyzer,
		verbose:  verbose,
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Form returns the intake form for editing.
func (s *Session) Form() *intake.FormState {
	return s.form
}

// Report returns the current report, or nil outside the report state.
func (s *Session) Report() *report.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// LastMessage returns the user-visible message from the most recent failed
// submission, if any.
func (s *Session) LastMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMsg
}

// Submit assembles the profile from the intake form and runs the analysis.
// While a submission is in flight the session is in the submitting state
// and further submits are rejected as no-ops. Validation failures never
// leave the form state and never reach the network. On analysis failure
// the session reverts to the form state with the input preserved for
// correction; on success it transitions to the report state.
func (s *Session) Submit(ctx context.Context) (*report.Report, error) {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting:
		s.mu.Unlock()
		return nil, &ErrSubmissionPending{}
	case StateReport:
		s.mu.Unlock()
		return nil, &ErrWrongState{Op: "submit", State: StateReport}
	}

	p, err := s.form.Submit()
	if err != nil {
		// Stays in the form state; the validation error is field-scoped
		// and resolved entirely within the intake surface.
		s.mu.Unlock()
		return nil, err
	}

	s.state = StateSubmitting
	s.lastMsg = ""
	s.mu.Unlock()

	if s.verbose {
		log.Printf("[SESSION] Submitting profile for %s", p.UndergraduateUniversity)
	}

	r, err := s.analyzer.Analyze(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateForm
		s.lastMsg = analysis.UserMessage(err)
		if s.verbose {
			log.Printf("[SESSION] Analysis failed: %v", err)
		}
		return nil, err
	}

	s.state = StateReport
	s.report = r
	return r, nil
}

// Back leaves the report view: the report is discarded and the intake is
// reset for a fresh session.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReport {
		return &ErrWrongState{Op: "back", State: s.state}
	}
	s.report = nil
	s.form.Reset()
	s.state = StateForm
	return nil
}

// SnapshotForExport returns the immutable report for the exporter. Export
// may run only while the session is in the report state; the snapshot
// stays valid for an in-flight export even if the user navigates back,
// since the report itself is never mutated.
func (s *Session) SnapshotForExport() (*report.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReport {
		return nil, &ErrWrongState{Op: "export", State: s.state}
	}
	return s.report, nil
}
