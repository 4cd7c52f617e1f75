package config

import (
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Input settings
	ResultsDir  string
	ResultsFile string

	// Output settings
	ReportDir  string
	ReportFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TitleFilter string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath: DefaultProjectPath,
		ResultsDir:  DefaultResultsDir,
		ResultsFile: DefaultResultsFile,
		ReportDir:   DefaultReportDir,
		ReportFile:  DefaultReportFile,
	}
}

// GetInputPath returns the path of the JSON results document written by the test runner.
func (c *Config) GetInputPath() string {
	return absolute(filepath.Join(c.ProjectPath, c.ResultsDir, c.ResultsFile))
}

// GetReportDir returns the directory the HTML report is written to.
func (c *Config) GetReportDir() string {
	return absolute(filepath.Join(c.ProjectPath, c.ReportDir))
}

// GetReportPath returns the full path of the HTML report.
// Resolves to an absolute path so the printed location is usable regardless of cwd.
func (c *Config) GetReportPath() string {
	return filepath.Join(c.GetReportDir(), c.ReportFile)
}

func absolute(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
