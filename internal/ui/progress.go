package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"pwreport/internal/domain"
)

// ShowRatio renders a one-off bar filled to the passed share of the run.
func ShowRatio(summary domain.TestSummary) {
	bar := progressbar.NewOptions(summary.Total,
		progressbar.OptionSetDescription(ratioDescription(summary)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.GreenString("█"),
			SaucerHead:    color.GreenString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
	)
	_ = bar.Set(summary.Passed)
	fmt.Fprint(os.Stderr, "\n")
}

func ratioDescription(summary domain.TestSummary) string {
	return color.CyanString("Passed: ") +
		color.GreenString("[passed: %d", summary.Passed) +
		" | " +
		color.RedString("failed: %d", summary.Failed) +
		" | " +
		color.YellowString("other: %d]", summary.Total-summary.Passed-summary.Failed)
}
