package orchestrator

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukesour/school-positioning/internal/analysis"
	"github.com/lukesour/school-positioning/internal/intake"
	"github.com/lukesour/school-positioning/internal/profile"
	"github.com/lukesour/school-positioning/internal/report"
)

// fakeAnalyzer records calls and optionally blocks until released.
type fakeAnalyzer struct {
	mu       sync.Mutex
	calls    int
	profiles []*profile.Profile
	report   *report.Report
	err      error
	block    chan struct{}
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, p *profile.Profile) (*report.Report, error) {
	f.mu.Lock()
	f.calls++
	f.profiles = append(f.profiles, p)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func minimalReport() *report.Report {
	return &report.Report{
		Competitiveness: report.Competitiveness{Summary: "ok"},
	}
}

func fillForm(f *intake.FormState) {
	f.University = "Sun Yat-sen University"
	f.Major = "Computer Science"
	f.GPA = 3.6
	f.GPAScale = profile.Scale4
	f.GraduationYear = 2025
	f.TargetCountries = []string{"US"}
	f.TargetMajors = []string{"Computer Science"}
	f.TargetDegreeType = profile.DegreeMaster
}

func TestSession_InitialState(t *testing.T) {
	s := NewSession(&fakeAnalyzer{}, false)
	assert.Equal(t, StateForm, s.State())
	assert.Nil(t, s.Report())
}

func TestSession_ValidationFailureStaysInFormWithoutNetworkCall(t *testing.T) {
	analyzer := &fakeAnalyzer{report: minimalReport()}
	s := NewSession(analyzer, false)

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.IsType(t, &profile.ValidationError{}, err)
	assert.Equal(t, StateForm, s.State())
	assert.Equal(t, 0, analyzer.calls, "validation errors must never reach the network")
}

func TestSession_EndToEndMinimalProfile(t *testing.T) {
	analyzer := &fakeAnalyzer{report: minimalReport()}
	s := NewSession(analyzer, false)

	fillForm(s.Form())
	id := s.Form().Research.Add()
	s.Form().Research.Get(id).Name = "Graphics lab"

	r, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, StateReport, s.State())

	// Called exactly once, with exactly the assembled profile.
	require.Equal(t, 1, analyzer.calls)
	sent := analyzer.profiles[0]
	assert.Equal(t, "Sun Yat-sen University", sent.UndergraduateUniversity)
	require.Len(t, sent.ResearchExperiences, 1)
	assert.Equal(t, "Graphics lab", sent.ResearchExperiences[0].Name)

	// Optional blocks are absent from the serialized payload.
	payload, err := json.Marshal(sent)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(payload, &m))
	for _, key := range []string{"language_test_type", "gre_total", "gmat_total"} {
		_, present := m[key]
		assert.False(t, present, "unexpected key %s", key)
	}

	// Back-navigation discards the report and clears the intake.
	require.NoError(t, s.Back())
	assert.Equal(t, StateForm, s.State())
	assert.Nil(t, s.Report())
	assert.Empty(t, s.Form().University)
	assert.Equal(t, 0, s.Form().Research.Len())
}

func TestSession_FailureRevertsToFormPreservingInput(t *testing.T) {
	analyzer := &fakeAnalyzer{err: &analysis.RemoteError{StatusCode: 429, Detail: "quota exceeded"}}
	s := NewSession(analyzer, false)
	fillForm(s.Form())

	_, err := s.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateForm, s.State())
	assert.Equal(t, "quota exceeded", s.LastMessage())
	// Input preserved for correction
	assert.Equal(t, "Sun Yat-sen University", s.Form().University)
}

func TestSession_TransportFailureMessageNeverEmpty(t *testing.T) {
	analyzer := &fakeAnalyzer{err: &analysis.TransportError{Message: "timeout"}}
	s := NewSession(analyzer, false)
	fillForm(s.Form())

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, analysis.TransportMessage, s.LastMessage())
	assert.NotEmpty(t, s.LastMessage())
}

func TestSession_ConcurrentSubmitIsNoOp(t *testing.T) {
	analyzer := &fakeAnalyzer{report: minimalReport(), block: make(chan struct{})}
	s := NewSession(analyzer, false)
	fillForm(s.Form())

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()

	// Wait until the first submit is in flight.
	require.Eventually(t, func() bool { return s.State() == StateSubmitting },
		time.Second, time.Millisecond)

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.IsType(t, &ErrSubmissionPending{}, err)

	close(analyzer.block)
	require.NoError(t, <-done)
	assert.Equal(t, StateReport, s.State())
	assert.Equal(t, 1, analyzer.calls, "second submit must not produce a call")
}

func TestSession_SubmitRejectedInReportState(t *testing.T) {
	analyzer := &fakeAnalyzer{report: minimalReport()}
	s := NewSession(analyzer, false)
	fillForm(s.Form())

	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	_, err = s.Submit(context.Background())
	require.Error(t, err)
	assert.IsType(t, &ErrWrongState{}, err)
}

func TestSession_BackOnlyFromReport(t *testing.T) {
	s := NewSession(&fakeAnalyzer{}, false)
	err := s.Back()
	require.Error(t, err)
	assert.IsType(t, &ErrWrongState{}, err)
}

func TestSession_SnapshotForExportGatedOnReportState(t *testing.T) {
	analyzer := &fakeAnalyzer{report: minimalReport()}
	s := NewSession(analyzer, false)

	_, err := s.SnapshotForExport()
	require.Error(t, err)

	fillForm(s.Form())
	_, err = s.Submit(context.Background())
	require.NoError(t, err)

	snapshot, err := s.SnapshotForExport()
	require.NoError(t, err)
	assert.Equal(t, "ok", snapshot.Competitiveness.Summary)

	// Snapshot stays usable after back-navigation; the report value is
	// immutable even though the session has discarded it.
	require.NoError(t, s.Back())
	assert.Equal(t, "ok", snapshot.Competitiveness.Summary)
}
