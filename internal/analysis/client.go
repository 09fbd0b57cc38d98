package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lukesour/school-positioning/internal/profile"
	"github.com/lukesour/school-positioning/internal/report"
	"github.com/lukesour/school-positioning/internal/schemas"
)

// DefaultTimeout bounds the short reference-data and health calls.
const DefaultTimeout = 30 * time.Second

// AnalyzeTimeout bounds the analyze call. The service runs a full
// similarity match plus generation pass, so this is minutes, not seconds.
const AnalyzeTimeout = 5 * time.Minute

// Options configures the client.
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	AnalyzeTimeout time.Duration
	Verbose        bool
}

// DefaultOptions returns sensible defaults for a local service.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:        "http://localhost:8000",
		Timeout:        DefaultTimeout,
		AnalyzeTimeout: AnalyzeTimeout,
	}
}

// Client talks to the positioning analysis service. Each call is a single
// attempt; there is no automatic retry anywhere in the client. The user
// re-triggers a failed analysis by resubmitting the form.
type Client struct {
	baseURL string
	short   *http.Client
	long    *http.Client
	verbose bool
}

// NewClient creates a client for the service at opts.BaseURL.
func NewClient(opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(opts.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &TransportError{URL: opts.BaseURL, Message: "invalid service URL", Cause: err}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	analyzeTimeout := opts.AnalyzeTimeout
	if analyzeTimeout <= 0 {
		analyzeTimeout = AnalyzeTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		short:   &http.Client{Timeout: timeout},
		long:    &http.Client{Timeout: analyzeTimeout},
		verbose: opts.Verbose,
	}, nil
}

// HealthStatus is the service liveness payload.
type HealthStatus struct {
	Status string `json:"status"`
}

// Stats summarizes the case corpus behind the service.
type Stats struct {
	TotalCases   int            `json:"total_cases"`
	Countries    map[string]int `json:"countries"`
	Universities map[string]int `json:"universities"`
	Majors       map[string]int `json:"majors"`
}

// CaseDetail is the full record for a single comparable case.
type CaseDetail struct {
	ID                      int    `json:"id"`
	AdmittedUniversity      string `json:"admitted_university"`
	AdmittedProgram         string `json:"admitted_program"`
	UndergraduateUniversity string `json:"undergraduate_university"`
	UndergraduateMajor      string `json:"undergraduate_major"`
	GPA                     string `json:"gpa"`
	LanguageScore           string `json:"language_score"`
	KeyExperience           string `json:"key_experience"`
	BasicBackground         string `json:"basic_background"`
}

// Health probes the service liveness endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.get(ctx, "/health", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Stats fetches corpus statistics.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/api/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Universities fetches the known university names for intake pick lists.
func (c *Client) Universities(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.get(ctx, "/api/universities", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Majors fetches the known major names for intake pick lists.
func (c *Client) Majors(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.get(ctx, "/api/majors", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CaseDetail fetches the full record for one comparable case.
func (c *Client) CaseDetail(ctx context.Context, id int) (*CaseDetail, error) {
	var detail CaseDetail
	if err := c.get(ctx, fmt.Sprintf("/api/cases/%d", id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// RefreshData asks the service to reload its similarity-matching corpus.
func (c *Client) RefreshData(ctx context.Context) error {
	return c.post(ctx, "/api/refresh-data", nil, nil, c.short)
}

// Analyze submits the profile and returns the structured report. The
// response payload is checked against the report schema before it is
// accepted; a payload the schema rejects surfaces as a TransportError
// rather than a half-populated report.
func (c *Client) Analyze(ctx context.Context, p *profile.Profile) (*report.Report, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, &TransportError{URL: c.baseURL + "/api/analyze", Message: "failed to encode profile", Cause: err}
	}

	if c.verbose {
		log.Printf("[ANALYZE] Submitting profile (%d bytes) to %s", len(body), c.baseURL)
	}

	var raw json.RawMessage
	if err := c.post(ctx, "/api/analyze", body, &raw, c.long); err != nil {
		return nil, err
	}

	if err := schemas.ValidateReport(raw); err != nil {
		return nil, &TransportError{
			URL:     c.baseURL + "/api/analyze",
			Message: "service returned a malformed report",
			Cause:   err,
		}
	}

	var r report.Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, &TransportError{
			URL:     c.baseURL + "/api/analyze",
			Message: "failed to decode report",
			Cause:   err,
		}
	}

	if c.verbose {
		log.Printf("[ANALYZE] Received report with %d comparable cases", len(r.SimilarCases))
	}
	return &r, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &TransportError{URL: c.baseURL + path, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out, c.short)
}

func (c *Client) post(ctx context.Context, path string, body []byte, out any, client *http.Client) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{URL: c.baseURL + path, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, out, client)
}

// errorPayload is the service's error body shape: {"detail": "..."}.
type errorPayload struct {
	Detail string `json:"detail"`
}

func (c *Client) do(req *http.Request, out any, client *http.Client) error {
	resp, err := client.Do(req)
	if err != nil {
		return &TransportError{URL: req.URL.String(), Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: req.URL.String(), Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload errorPayload
		_ = json.Unmarshal(data, &payload)
		return &RemoteError{StatusCode: resp.StatusCode, Detail: payload.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{URL: req.URL.String(), Message: "failed to decode response", Cause: err}
	}
	return nil
}
