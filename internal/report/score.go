package report

import (
	"math"

	"pwreport/internal/domain"
)

// OverallScore returns the passed percentage rounded to the nearest integer, or 0 for an empty run.
func OverallScore(summary domain.TestSummary) int {
	return percent(summary.Passed, summary.Total)
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(ratio(part, total)))
}

func ratio(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// ScoreClass maps an overall score to its colour class.
func ScoreClass(score int) string {
	switch {
	case score >= 70:
		return "success"
	case score >= 40:
		return "warning"
	default:
		return "danger"
	}
}
