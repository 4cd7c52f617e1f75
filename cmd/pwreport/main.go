package main

import (
	"fmt"
	"os"

	"pwreport/internal/cli"
	"pwreport/internal/cli/commands"
	"pwreport/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "pwreport",
		Short: "Playwright results report generator",
		Long: `Turns the JSON results of a Playwright run (test-results/test-results.json) into a
self-contained HTML report (enhanced-report/enhanced-report.html) and a console summary.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds, err := commands.NewCommands(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
