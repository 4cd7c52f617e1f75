package commands

import (
	"pwreport/internal/config"
	"pwreport/internal/discovery"
	"pwreport/internal/ui"

	"github.com/spf13/cobra"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config *config.Config
	loader *resultsLoader
	filter *discovery.Filter
	viewer ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, loader *resultsLoader, filter *discovery.Filter, viewer ui.Viewer) *FailuresCommand {
	return &FailuresCommand{
		config: cfg,
		loader: loader,
		filter: filter,
		viewer: viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, _, err := fc.loader.Load()
	if err != nil {
		return err
	}

	failures := fc.filter.FilterByTitle(summary.FailedDetails(), fc.config.Flags.TitleFilter)
	return fc.viewer.View(failures)
}
