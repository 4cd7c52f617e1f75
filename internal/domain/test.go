package domain

// Spec represents a single named test case within a suite
type Spec struct {
	Title string `json:"title"`
	File  string `json:"file,omitempty"`
	Tests []Test `json:"tests,omitempty"` // One per project/retry configuration
}

// Test represents one execution record for a spec; Results holds the original run plus retries
type Test struct {
	Results []Result `json:"results,omitempty"`
}

// FirstResult returns the first result of the first test, if any.
func (s Spec) FirstResult() (Result, bool) {
	if len(s.Tests) == 0 || len(s.Tests[0].Results) == 0 {
		return Result{}, false
	}
	return s.Tests[0].Results[0], true
}

// Attempts returns the number of results recorded across all tests of the spec.
func (s Spec) Attempts() int {
	n := 0
	for _, t := range s.Tests {
		n += len(t.Results)
	}
	return n
}
