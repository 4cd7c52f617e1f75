package commands

import (
	"pwreport/internal/cli"
	"pwreport/internal/config"
	"pwreport/internal/discovery"
	"pwreport/internal/parser"
	"pwreport/internal/report"
	"pwreport/internal/storage"
	"pwreport/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	Summary  *SummaryCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) (*Commands, error) {
	playwrightParser, err := parser.NewPlaywrightParser()
	if err != nil {
		return nil, err
	}
	renderer, err := report.NewRenderer()
	if err != nil {
		return nil, err
	}
	fileStorage := storage.NewFileStorage(cfg)
	loader := newResultsLoader(fileStorage, playwrightParser)
	filter := discovery.NewFilter()
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer()

	return &Commands{
		Generate: NewGenerateCommand(cfg, loader, fileStorage, renderer, formatter),
		Summary:  NewSummaryCommand(cfg, loader, filter, formatter),
		Failures: NewFailuresCommand(cfg, loader, filter, errorViewer),
	}, nil
}

// Register wires the commands into rootCmd. Running rootCmd without arguments generates the report.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.Generate.Execute

	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// Summary command
	summaryCmd := &cobra.Command{
		Use:     "summary",
		Short:   "Print run statistics to the console",
		Long:    "Read the last test results and print statistics and the failing specs without writing a report",
		Args:    cobra.NoArgs,
		RunE:    c.Summary.Execute,
		PreRunE: applyFlags,
	}
	summaryCmd.Flags().StringVarP(&flags.TitleFilter, "filter", "f", "", "Only list failing specs whose title matches the pattern (supports wildcards, e.g. 'Login*' or '*column*')")
	rootCmd.AddCommand(summaryCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View failed specs interactively",
		Long:    "Display the failed specs of the last test run in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	failuresCmd.Flags().StringVarP(&flags.TitleFilter, "filter", "f", "", "Only show failing specs whose title matches the pattern (supports wildcards, e.g. 'Login*' or '*column*')")
	rootCmd.AddCommand(failuresCmd)
}
