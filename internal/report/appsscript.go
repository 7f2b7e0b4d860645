package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultTimeout bounds one delivery attempt. The grade is already computed
// by the time a report goes out, so this is the longest a student waits for
// the "logged" indicator.
const DefaultTimeout = 8 * time.Second

// StatusError reports a non-success response from the logging endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("logging endpoint returned %d: %s", e.Code, e.Body)
}

// AppsScriptOptions configures the Google Apps Script web-app reporter.
type AppsScriptOptions struct {
	// URL is the deployed web-app endpoint.
	URL string

	// Secret, when set, is sent as the "secret" payload field so the script
	// can drop requests that did not come from the checker.
	Secret string

	// Routes remaps logical sheet names to destination tabs. Sheets without
	// a route keep their logical name.
	Routes map[Sheet]string

	// Timeout bounds each delivery. Zero means DefaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// AppsScriptReporter posts submission rows to a Google Apps Script web app
// that appends them to the course spreadsheet. The script creates columns it
// has not seen before, so payload keys are the sheet's headers.
type AppsScriptReporter struct {
	url     string
	secret  string
	routes  map[Sheet]string
	timeout time.Duration
	client  *http.Client
}

// NewAppsScript returns a reporter for the given endpoint.
func NewAppsScript(opts AppsScriptOptions) (*AppsScriptReporter, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("reporter URL is required")
	}
	r := &AppsScriptReporter{
		url:     opts.URL,
		secret:  opts.Secret,
		routes:  opts.Routes,
		timeout: opts.Timeout,
		client:  opts.HTTPClient,
	}
	if r.timeout <= 0 {
		r.timeout = DefaultTimeout
	}
	if r.client == nil {
		r.client = &http.Client{}
	}
	return r, nil
}

// Report delivers one record, bounded by the configured timeout.
func (r *AppsScriptReporter) Report(ctx context.Context, rec Record) error {
	body, err := json.Marshal(r.payload(rec))
	if err != nil {
		return fmt.Errorf("encode submission %s: %w", rec.SubmissionID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request for submission %s: %w", rec.SubmissionID, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post submission %s: %w", rec.SubmissionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// payload flattens a record into the row object the script expects. Keys
// must match the spreadsheet's existing headers; new keys become new columns.
func (r *AppsScriptReporter) payload(rec Record) map[string]any {
	sheet := string(rec.Sheet)
	if dest, ok := r.routes[rec.Sheet]; ok {
		sheet = dest
	}

	p := map[string]any{
		"sheet":         sheet,
		"Time Stamp":    rec.Timestamp.Format("2006-01-02 15:04:05"),
		"Name":          rec.StudentName,
		"Comment":       rec.Comment,
		"Set #":         strconv.Itoa(rec.SetID),
		"Submission ID": rec.SubmissionID,
	}
	if r.secret != "" {
		p["secret"] = r.secret
	}

	if e := rec.Equations; e != nil {
		submitted, _ := json.Marshal(e.Submitted)
		p["Student Eqs (JSON)"] = string(submitted)
		p["Result (eqs)"] = e.Result
		p["Eq Detail"] = e.Detail
		p["Independent"] = strconv.FormatBool(e.Independent)
	}

	if c := rec.Currents; c != nil {
		p["I1 (mA)"] = c.I1
		p["I2 (mA)"] = c.I2
		p["I3 (mA)"] = c.I3
		p["I1_exp (mA)"] = c.ExpectedI1
		p["I2_exp (mA)"] = c.ExpectedI2
		p["I3_exp (mA)"] = c.ExpectedI3
		p["Tolerance_mA"] = c.ToleranceMilliamps
		p["Result"] = c.Result
	}
	return p
}
