package commands

import (
	"pwreport/internal/config"
	"pwreport/internal/discovery"
	"pwreport/internal/report"
	"pwreport/internal/ui"

	"github.com/spf13/cobra"
)

// SummaryCommand prints the run statistics without writing a report
type SummaryCommand struct {
	config    *config.Config
	loader    *resultsLoader
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(cfg *config.Config, loader *resultsLoader, filter *discovery.Filter, formatter *ui.Formatter) *SummaryCommand {
	return &SummaryCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *SummaryCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, stats, err := sc.loader.Load()
	if err != nil {
		return err
	}

	overallScore := report.OverallScore(summary)
	// counters describe the whole run; the filter only narrows the listed specs
	summary.Details = sc.filter.FilterByTitle(summary.Details, sc.config.Flags.TitleFilter)

	sc.formatter.PrintSummary(summary, overallScore, stats)
	return nil
}
