package domain

import "time"

// Check statuses. Skipped kinds stay in the report so the output keeps one
// line per artifact kind.
const (
	StatusPass = "pass"
	StatusFail = "fail"
	StatusSkip = "skip"
)

// CheckResult records one validation outcome. Immutable once produced.
type CheckResult struct {
	Kind     ArtifactKind `json:"kind"`
	Status   string       `json:"status"`
	Expected string       `json:"expected"`
	Actual   string       `json:"actual,omitempty"`
	Ident    string       `json:"ident,omitempty"`
	Message  string       `json:"message,omitempty"`
}

// Passed reports whether the result is a pass.
func (r CheckResult) Passed() bool { return r.Status == StatusPass }

// Failed reports whether the result is a failure.
func (r CheckResult) Failed() bool { return r.Status == StatusFail }

// Report aggregates the results of one lint run in checklist order.
type Report struct {
	Component  string        `json:"component"`
	Model      string        `json:"model"`
	Results    []CheckResult `json:"results"`
	Passed     int           `json:"passed"`
	Failed     int           `json:"failed"`
	Skipped    int           `json:"skipped"`
	Status     string        `json:"status"`
	Timestamp  time.Time     `json:"timestamp"`
	CommitHash string        `json:"commit_hash,omitempty"`
}

// NewReport builds a report from ordered results, computing the aggregate
// counters and overall status.
func NewReport(component, model string, results []CheckResult) *Report {
	rep := &Report{
		Component: component,
		Model:     model,
		Results:   results,
		Status:    StatusPass,
		Timestamp: time.Now().UTC(),
	}
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			rep.Passed++
		case StatusFail:
			rep.Failed++
		default:
			rep.Skipped++
		}
	}
	if rep.Failed > 0 {
		rep.Status = StatusFail
	}
	return rep
}

// Ok reports whether the run produced no failures.
func (r *Report) Ok() bool { return r.Failed == 0 }

// RunEntry is one recorded lint run in the history file.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Component  string `json:"component"`
	Model      string `json:"model"`
	Passed     int    `json:"passed"`
	Failed     int    `json:"failed"`
	Skipped    int    `json:"skipped"`
	Status     string `json:"status"`
}
