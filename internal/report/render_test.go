package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwreport/internal/domain"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func TestRender_PassingSpec(t *testing.T) {
	run := domain.TestRunResult{Suites: []domain.Suite{
		{Title: "Login", Specs: []domain.Spec{spec("succeeds", result("passed", 120))}},
	}}
	summary := Aggregate(run)
	score := OverallScore(summary)
	require.Equal(t, 100, score)

	html, err := newTestRenderer(t).Render(summary, score)
	require.NoError(t, err)

	assert.Contains(t, html, "Login › succeeds")
	assert.Contains(t, html, "Score: 1/1")
	assert.Contains(t, html, "120ms")
	assert.Contains(t, html, `<span class="badge bg-success">PASSED</span>`)
	assert.Contains(t, html, `text-success">100%`)
	assert.Contains(t, html, "width: 100%")
	assert.NotContains(t, html, "error-details\"")
}

func TestRender_FailingSpecShowsEscapedError(t *testing.T) {
	run := domain.TestRunResult{Suites: []domain.Suite{
		{Title: "Login", Specs: []domain.Spec{
			spec("succeeds", result("failed", 50, domain.TestError{Message: "Timeout", Stack: "Error: <div> not found\n    at login.spec.ts:7"})),
		}},
	}}
	summary := Aggregate(run)
	score := OverallScore(summary)
	require.Equal(t, 0, score)

	html, err := newTestRenderer(t).Render(summary, score)
	require.NoError(t, err)

	assert.Contains(t, html, "<div class=\"error-details\">\n          <pre>Timeout</pre>")
	assert.Contains(t, html, `<pre class="error-stack">Error: &lt;div&gt; not found`)
	assert.Contains(t, html, `<span class="badge bg-danger">FAILED</span>`)
	assert.Contains(t, html, `text-danger">0%`)
}

func TestRender_ErrorWithoutStack(t *testing.T) {
	summary := domain.TestSummary{
		Total: 1, Failed: 1, Scores: []int{0},
		Details: []domain.TestDetail{{
			FullTitle: "S › a", Status: domain.StatusFailed, Outcome: "failed",
			Error: &domain.TestError{Message: `expected "a" & 'b'`},
		}},
	}

	html, err := newTestRenderer(t).Render(summary, 0)
	require.NoError(t, err)

	assert.Contains(t, html, "<pre>expected &quot;a&quot; &amp; &#039;b&#039;</pre>")
	assert.NotContains(t, html, `<pre class="error-stack">`)
}

func TestRender_FailedFirstStable(t *testing.T) {
	summary := domain.TestSummary{
		Total: 4, Passed: 2, Failed: 2, Scores: []int{0, 1, 0, 1},
		Details: []domain.TestDetail{
			{FullTitle: "S › A", Status: domain.StatusFailed, Outcome: "failed"},
			{FullTitle: "S › B", Status: domain.StatusPassed, Outcome: "passed", Score: 1},
			{FullTitle: "S › C", Status: domain.StatusFailed, Outcome: "failed"},
			{FullTitle: "S › D", Status: domain.StatusPassed, Outcome: "passed", Score: 1},
		},
	}

	html, err := newTestRenderer(t).Render(summary, OverallScore(summary))
	require.NoError(t, err)

	positions := make([]int, 0, 4)
	for _, title := range []string{"S › A", "S › C", "S › B", "S › D"} {
		idx := strings.Index(html, title)
		require.NotEqual(t, -1, idx, "missing %s", title)
		positions = append(positions, idx)
	}
	for i := 1; i < len(positions); i++ {
		assert.Less(t, positions[i-1], positions[i], "details out of order")
	}

	// the caller's slice keeps aggregation order
	assert.Equal(t, "S › B", summary.Details[1].FullTitle)
}

func TestOrderDetails(t *testing.T) {
	details := []domain.TestDetail{
		{Title: "A", Status: domain.StatusFailed},
		{Title: "B", Status: domain.StatusPassed},
		{Title: "C", Status: domain.StatusUnknown},
		{Title: "D", Status: domain.StatusFailed},
		{Title: "E", Status: domain.StatusSkipped},
	}

	var titles []string
	for _, d := range OrderDetails(details) {
		titles = append(titles, d.Title)
	}
	assert.Equal(t, []string{"A", "D", "B", "C", "E"}, titles)
}

func TestRender_Idempotent(t *testing.T) {
	run := domain.TestRunResult{Suites: []domain.Suite{
		{Title: "Kanban", Specs: []domain.Spec{
			spec("a", result("passed", 1)),
			spec("b", result("failed", 2, domain.TestError{Message: "boom"})),
			spec("c", result("skipped", 0)),
		}},
	}}
	summary := Aggregate(run)
	r := newTestRenderer(t)

	first, err := r.Render(summary, OverallScore(summary))
	require.NoError(t, err)
	second, err := r.Render(summary, OverallScore(summary))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_LabelsAndWidths(t *testing.T) {
	summary := domain.TestSummary{
		Total: 3, Passed: 1, Failed: 1, Scores: []int{1, 0, 0},
		Details: []domain.TestDetail{
			{FullTitle: "S › a", Status: domain.StatusPassed, Outcome: "passed", Score: 1, Duration: 12.5},
			{FullTitle: "S › b", Status: domain.StatusFailed, Outcome: "failed"},
			{FullTitle: "S › c", Status: domain.StatusUnknown, Outcome: "timedOut"},
		},
	}

	html, err := newTestRenderer(t).Render(summary, OverallScore(summary))
	require.NoError(t, err)

	assert.Contains(t, html, `<span class="badge bg-warning">TIMEDOUT</span>`)
	assert.Contains(t, html, "12.5ms")
	assert.Contains(t, html, "width: 33.33333333333333%")
	assert.Contains(t, html, `text-danger">33%`)
}

func TestRender_EmptySummary(t *testing.T) {
	html, err := newTestRenderer(t).Render(domain.TestSummary{}, 0)
	require.NoError(t, err)

	assert.Contains(t, html, "width: 0%")
	assert.NotContains(t, html, "test-card ")
}

func TestRender_FlakyBadge(t *testing.T) {
	summary := domain.TestSummary{
		Total: 1, Failed: 1, Flaky: 1, Scores: []int{0},
		Details: []domain.TestDetail{
			{FullTitle: "S › a", Status: domain.StatusFailed, Outcome: "failed", Flaky: true, Attempts: 2},
		},
	}

	html, err := newTestRenderer(t).Render(summary, 0)
	require.NoError(t, err)

	assert.Contains(t, html, "FLAKY (2 attempts)")
}

func TestRender_BooleanStatusKeepsLabel(t *testing.T) {
	run := domain.TestRunResult{Suites: []domain.Suite{
		{Title: "Legacy", Specs: []domain.Spec{{
			Title: "old reporter",
			Tests: []domain.Test{{Results: []domain.Result{
				{Outcome: "passed", BooleanStatus: true, Status: domain.StatusUnknown, Duration: 7},
			}}},
		}}},
	}}
	summary := Aggregate(run)
	require.Equal(t, 1, summary.Total)
	assert.Equal(t, 0, summary.Passed+summary.Failed+summary.Skipped)

	html, err := newTestRenderer(t).Render(summary, OverallScore(summary))
	require.NoError(t, err)

	assert.Contains(t, html, `<span class="badge bg-warning">PASSED</span>`)
	assert.Contains(t, html, "Score: 0/1")
}
