package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"pwreport/internal/config"
	"pwreport/internal/domain"
)

// Formatter formats and displays console output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintReportGenerated prints the lines announcing a freshly written report.
func (f *Formatter) PrintReportGenerated(reportPath string, overallScore int, summary domain.TestSummary) {
	fmt.Printf("Enhanced test report generated at: %s\n", reportPath)
	fmt.Printf("Overall Test Score: %d%%\n", overallScore)
	fmt.Printf("Tests: %d, Passed: %d, Failed: %d, Skipped: %d\n", summary.Total, summary.Passed, summary.Failed, summary.Skipped)
}

// PrintSummary displays the statistics table, a pass ratio bar and the failing specs tree.
func (f *Formatter) PrintSummary(summary domain.TestSummary, overallScore int, stats *domain.RunStats) {
	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Test Run Statistics                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")
	color.White("Results: %s\n", f.config.GetInputPath())

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", summary.Total)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", summary.Passed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", summary.Failed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped")
	color.Yellow("%-27d │\n", summary.Skipped)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Flaky")
	color.Magenta("%-27d │\n", summary.Flaky)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Overall Score")
	scoreColor(overallScore).Printf("%-27s │\n", fmt.Sprintf("%d%%", overallScore))

	if stats != nil {
		fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		fmt.Printf("│ %-31s │ ", "Duration")
		d := time.Duration(stats.Duration * float64(time.Millisecond))
		color.White("%-27s │\n", fmt.Sprintf("%.2fs", d.Seconds()))
		if stats.StartTime != "" {
			fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
			fmt.Printf("│ %-31s │ ", "Started")
			color.White("%-27s │\n", stats.StartTime)
		}
	}

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	if summary.Total > 0 {
		fmt.Println()
		ShowRatio(summary)
	}

	// Print summary line
	fmt.Println()
	failed := summary.FailedDetails()
	if len(failed) == 0 {
		color.Green("✓ No failed tests!")
		return
	}
	color.Red("✗ %d test(s) failed", len(failed))
	fmt.Println()
	f.printFailedTestsTree(failed)
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 70:
		return color.New(color.FgGreen)
	case score >= 40:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// TreeNode represents a node in the file tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.TestDetail
	IsFile   bool
}

// buildFailureTree groups failed specs under their source file path
func buildFailureTree(failures []domain.TestDetail) *TreeNode {
	root := &TreeNode{
		Children: make(map[string]*TreeNode),
	}

	for _, failure := range failures {
		file := failure.File
		if file == "" {
			file = "(unknown file)"
		}
		parts := strings.Split(strings.TrimPrefix(filepath.ToSlash(file), "./"), "/")
		current := root

		for i, part := range parts {
			if part == "" {
				continue
			}

			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]

			if i == len(parts)-1 {
				current.Failures = append(current.Failures, failure)
			}
		}
	}
	return root
}

// printFailedTestsTree prints a tree structure of failed specs
func (f *Formatter) printFailedTestsTree(failures []domain.TestDetail) {
	if len(failures) == 0 {
		return
	}
	f.printTreeNode(buildFailureTree(failures), "", true)
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, isRoot bool) {
	// Sort children for consistent output
	keys := make([]string, 0, len(node.Children))
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLastChild := i == len(keys)-1

		var connector string
		switch {
		case isRoot:
			connector = ""
		case isLastChild:
			connector = prefix + "└── "
		default:
			connector = prefix + "├── "
		}

		if child.IsFile {
			color.Yellow("%s%s", connector, child.Name)
		} else {
			color.Cyan("%s%s", connector, child.Name)
		}

		var newPrefix string
		switch {
		case isRoot:
			newPrefix = ""
		case isLastChild:
			newPrefix = prefix + "    "
		default:
			newPrefix = prefix + "│   "
		}

		for j, failure := range child.Failures {
			branch := "├── "
			if j == len(child.Failures)-1 && len(child.Children) == 0 {
				branch = "└── "
			}
			color.Red("%s%s%s", newPrefix, branch, failure.Title)
		}

		f.printTreeNode(child, newPrefix, false)
	}
}
