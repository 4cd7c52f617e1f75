package domain

import "strings"

// Status is the classified outcome of a result
type Status int

const (
	StatusUnknown Status = iota
	StatusPassed
	StatusFailed
	StatusSkipped
)

// ParseStatus classifies the status text written by the runner.
// Anything other than passed, failed or skipped (timedOut, interrupted, empty) is unknown.
func ParseStatus(s string) Status {
	switch s {
	case "passed":
		return StatusPassed
	case "failed":
		return StatusFailed
	case "skipped":
		return StatusSkipped
	default:
		return StatusUnknown
	}
}

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Label returns the upper-cased status text shown in reports.
// The raw outcome is preferred so that e.g. timedOut reads TIMEDOUT rather than UNKNOWN.
func (s Status) Label(outcome string) string {
	if outcome != "" {
		return strings.ToUpper(outcome)
	}
	return strings.ToUpper(s.String())
}
