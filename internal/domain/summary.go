package domain

// TestSummary is the aggregate of one results document
type TestSummary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Flaky   int

	Scores  []int
	Details []TestDetail
}

// TestDetail is the per-spec record rendered in reports
type TestDetail struct {
	Title     string
	FullTitle string
	File      string
	Status    Status
	Outcome   string
	Duration  float64
	Error     *TestError
	Score     int
	Flaky     bool
	Attempts  int
}

// FailedDetails returns the failed records in aggregation order.
func (s TestSummary) FailedDetails() []TestDetail {
	var failed []TestDetail
	for _, d := range s.Details {
		if d.Status == StatusFailed {
			failed = append(failed, d)
		}
	}
	return failed
}
