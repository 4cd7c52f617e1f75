package commands

import (
	"errors"
	"fmt"

	"pwreport/internal/config"
	"pwreport/internal/report"
	"pwreport/internal/storage"
	"pwreport/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// GenerateCommand turns the runner's JSON results into the HTML report
type GenerateCommand struct {
	config    *config.Config
	loader    *resultsLoader
	storage   storage.Storage
	renderer  *report.Renderer
	formatter *ui.Formatter
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(
	cfg *config.Config,
	loader *resultsLoader,
	st storage.Storage,
	renderer *report.Renderer,
	formatter *ui.Formatter,
) *GenerateCommand {
	return &GenerateCommand{
		config:    cfg,
		loader:    loader,
		storage:   st,
		renderer:  renderer,
		formatter: formatter,
	}
}

// Execute runs the command. It never fails: problems are reported on the console.
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	gc.Generate()
	return nil
}

// Generate builds and writes the report, reporting any failure instead of returning it.
func (gc *GenerateCommand) Generate() {
	if _, err := gc.generate(); err != nil {
		if errors.Is(err, storage.ErrInputNotFound) {
			fmt.Fprintln(color.Error, color.RedString("Test results JSON file not found. Run tests first."))
			return
		}
		fmt.Fprintln(color.Error, color.RedString("Error generating enhanced report: %v", err))
	}
}

func (gc *GenerateCommand) generate() (string, error) {
	summary, _, err := gc.loader.Load()
	if err != nil {
		return "", err
	}

	overallScore := report.OverallScore(summary)

	html, err := gc.renderer.Render(summary, overallScore)
	if err != nil {
		return "", err
	}

	reportPath, err := gc.storage.SaveReport(html)
	if err != nil {
		return "", err
	}

	gc.formatter.PrintReportGenerated(reportPath, overallScore, summary)
	return reportPath, nil
}
