package domain

import (
	"encoding/json"
	"fmt"
)

// TestRunResult is the JSON document written by the Playwright JSON reporter
type TestRunResult struct {
	Suites []Suite   `json:"suites"`
	Stats  *RunStats `json:"stats,omitempty"`
}

// RunStats holds the run-level statistics the reporter writes next to the suites
type RunStats struct {
	StartTime string  `json:"startTime"`
	Duration  float64 `json:"duration"` // Wall clock time of the run in milliseconds
}

// Suite groups specs, usually one per test file or describe block
type Suite struct {
	Title  string  `json:"title"`
	File   string  `json:"file,omitempty"`
	Specs  []Spec  `json:"specs,omitempty"`
	Suites []Suite `json:"suites,omitempty"` // Nested describe blocks
}

// Result is the outcome of one execution attempt
type Result struct {
	Outcome       string      `json:"status"`   // Status text exactly as the runner wrote it
	Status        Status      `json:"-"`        // Classified from Outcome by the parser
	BooleanStatus bool        `json:"-"`        // The runner wrote true/false instead of a status text
	Duration      float64     `json:"duration"` // Milliseconds
	Errors        []TestError `json:"errors,omitempty"`
}

// UnmarshalJSON accepts a boolean status from older reporters: true reads as passed, false as failed.
func (r *Result) UnmarshalJSON(data []byte) error {
	type plain Result
	var raw struct {
		plain
		RawStatus json.RawMessage `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Result(raw.plain)

	if len(raw.RawStatus) == 0 || string(raw.RawStatus) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw.RawStatus, &r.Outcome); err == nil {
		return nil
	}

	var passed bool
	if err := json.Unmarshal(raw.RawStatus, &passed); err != nil {
		return fmt.Errorf("unsupported status %s", raw.RawStatus)
	}
	r.BooleanStatus = true
	r.Outcome = "failed"
	if passed {
		r.Outcome = "passed"
	}
	return nil
}
