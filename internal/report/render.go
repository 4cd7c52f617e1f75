package report

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"

	"github.com/flosch/pongo2/v6"

	"pwreport/internal/domain"
)

//go:embed templates/report.html.pongo2
var reportTemplate string

// Renderer renders a TestSummary into a self-contained HTML document
type Renderer struct {
	tpl *pongo2.Template
}

// detailView holds the pre-escaped, pre-formatted fields of one detail block
type detailView struct {
	FullTitle string
	File      string
	Class     string
	Label     string
	Duration  string
	Score     int
	Flaky     bool
	Attempts  int
	HasError  bool
	Message   string
	HasStack  bool
	Stack     string
}

// NewRenderer compiles the embedded report template
func NewRenderer() (*Renderer, error) {
	tpl, err := pongo2.FromString(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("compile report template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render returns the HTML report for summary. Failed specs are listed first; the
// order within failed and non-failed specs is the aggregation order.
func (r *Renderer) Render(summary domain.TestSummary, overallScore int) (string, error) {
	details := OrderDetails(summary.Details)

	views := make([]detailView, 0, len(details))
	for _, d := range details {
		views = append(views, newDetailView(d))
	}

	ctx := pongo2.Context{
		"score":          overallScore,
		"score_class":    ScoreClass(overallScore),
		"total":          summary.Total,
		"passed":         summary.Passed,
		"failed":         summary.Failed,
		"skipped":        summary.Skipped,
		"flaky":          summary.Flaky,
		"passed_width":   formatNumber(ratio(summary.Passed, summary.Total)),
		"failed_width":   formatNumber(ratio(summary.Failed, summary.Total)),
		"passed_percent": percent(summary.Passed, summary.Total),
		"failed_percent": percent(summary.Failed, summary.Total),
		"details":        views,
	}

	out, err := r.tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}

// OrderDetails returns a copy of details with failed records moved to the front.
// The sort is stable so records keep their relative order inside each group.
func OrderDetails(details []domain.TestDetail) []domain.TestDetail {
	ordered := make([]domain.TestDetail, len(details))
	copy(ordered, details)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Status == domain.StatusFailed && ordered[j].Status != domain.StatusFailed
	})
	return ordered
}

// StatusClass maps a status to its colour class.
func StatusClass(status domain.Status) string {
	switch status {
	case domain.StatusPassed:
		return "success"
	case domain.StatusFailed:
		return "danger"
	default:
		return "warning"
	}
}

func newDetailView(d domain.TestDetail) detailView {
	v := detailView{
		FullTitle: EscapeHTML(d.FullTitle),
		File:      EscapeHTML(d.File),
		Class:     StatusClass(d.Status),
		Label:     EscapeHTML(d.Status.Label(d.Outcome)),
		Duration:  formatNumber(d.Duration),
		Score:     d.Score,
		Flaky:     d.Flaky,
		Attempts:  d.Attempts,
	}
	if d.Error != nil {
		v.HasError = true
		v.Message = EscapeHTML(d.Error.Message)
		v.HasStack = d.Error.Stack != ""
		v.Stack = EscapeHTML(d.Error.Stack)
	}
	return v
}

// formatNumber prints whole numbers without a fractional part and others in shortest form.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
