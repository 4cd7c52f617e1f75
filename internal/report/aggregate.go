// Package report turns a parsed results document into a summary and renders it as HTML.
package report

import (
	"pwreport/internal/domain"
)

// Aggregate flattens every spec of the run into a TestSummary.
//
// The first result of the first test is authoritative for a spec's status, duration and
// error. Later results (retries) only feed flaky detection. The input is not modified.
func Aggregate(run domain.TestRunResult) domain.TestSummary {
	summary := domain.TestSummary{
		Scores:  []int{},
		Details: []domain.TestDetail{},
	}
	for _, suite := range run.Suites {
		summary = aggregateSuite(summary, suite, "")
	}
	return summary
}

// aggregateSuite visits the suite's own specs before its nested suites.
// inheritedFile is the closest enclosing suite file, used when neither spec nor suite has one.
func aggregateSuite(summary domain.TestSummary, suite domain.Suite, inheritedFile string) domain.TestSummary {
	suiteFile := suite.File
	if suiteFile == "" {
		suiteFile = inheritedFile
	}

	for _, spec := range suite.Specs {
		summary = addSpec(summary, suite.Title, suiteFile, spec)
	}
	for _, child := range suite.Suites {
		summary = aggregateSuite(summary, child, suiteFile)
	}
	return summary
}

func addSpec(summary domain.TestSummary, suiteTitle, suiteFile string, spec domain.Spec) domain.TestSummary {
	summary.Total++

	detail := domain.TestDetail{
		Title:     spec.Title,
		FullTitle: suiteTitle + " › " + spec.Title,
		File:      spec.File,
		Status:    domain.StatusUnknown,
		Attempts:  spec.Attempts(),
	}
	if detail.File == "" {
		detail.File = suiteFile
	}

	if result, ok := spec.FirstResult(); ok {
		detail.Status = result.Status
		detail.Outcome = result.Outcome
		detail.Duration = result.Duration
		if len(result.Errors) > 0 {
			first := result.Errors[0]
			detail.Error = &first
		}
	}

	switch detail.Status {
	case domain.StatusPassed:
		summary.Passed++
		detail.Score = 1
	case domain.StatusFailed:
		summary.Failed++
	case domain.StatusSkipped:
		summary.Skipped++
	}

	if isFlaky(spec) {
		detail.Flaky = true
		summary.Flaky++
	}

	summary.Scores = append(summary.Scores, detail.Score)
	summary.Details = append(summary.Details, detail)
	return summary
}

// isFlaky reports whether the results recorded for a spec disagree in status.
func isFlaky(spec domain.Spec) bool {
	seen := make(map[domain.Status]struct{})
	for _, t := range spec.Tests {
		for _, r := range t.Results {
			seen[r.Status] = struct{}{}
		}
	}
	return len(seen) > 1
}
