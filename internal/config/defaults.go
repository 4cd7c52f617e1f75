package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultResultsDir is the directory the test runner writes its JSON results to
	DefaultResultsDir = "test-results"
	// DefaultResultsFile is the JSON results file name
	DefaultResultsFile = "test-results.json"
	// DefaultReportDir is the directory the HTML report is written to
	DefaultReportDir = "enhanced-report"
	// DefaultReportFile is the HTML report file name
	DefaultReportFile = "enhanced-report.html"
)
