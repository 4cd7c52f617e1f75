package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pwreport/internal/domain"
)

// stackLinesShown caps how much of a stack trace the details pane prints
const stackLinesShown = 10

// ErrorViewer displays failed specs in an interactive TUI
type ErrorViewer struct{}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer() *ErrorViewer {
	return &ErrorViewer{}
}

// View displays failed specs: the list on the left, error message and stack on the right.
// Marking a spec as resolved is kept in memory only; the results file belongs to the test runner.
func (ev *ErrorViewer) View(failures []domain.TestDetail) error {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	resolved := make(map[int]bool)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		title := failures[index].FullTitle
		if title == "" {
			title = fmt.Sprintf("Test %d", index+1)
		}
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, tview.Escape(title))
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(title))
	}

	for i := range failures {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// list takes 1/3, details 2/3
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := 0
		for i := range failures {
			if !resolved[i] {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(failures), unresolved))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			statsView.SetText(formatFailureStats(failures[index], index+1))
			detailsView.SetText(formatFailureDetails(failures[index])).ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failures) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, getListItemText(index), "")
					updateHeader()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats a failed spec using tview color tags. Runner text is escaped
// so that brackets in messages are not read as tags.
func formatFailureDetails(failure domain.TestDetail) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Test: %s[white]\n\n", tview.Escape(failure.FullTitle))
	fmt.Fprintf(&builder, "[cyan]File: %s[white]\n", tview.Escape(failure.File))
	fmt.Fprintf(&builder, "[cyan]Status: %s | Duration: %vms | Attempts: %d[white]\n", failure.Status.Label(failure.Outcome), failure.Duration, failure.Attempts)
	if failure.Flaky {
		fmt.Fprintf(&builder, "[magenta]Flaky: results disagree across attempts[white]\n")
	}
	builder.WriteString("\n")

	if failure.Error == nil {
		builder.WriteString("[gray]No error recorded[white]\n")
		return builder.String()
	}

	if failure.Error.Message != "" {
		fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n\n", tview.Escape(failure.Error.Message))
	}

	if failure.Error.Stack != "" {
		lines := strings.Split(strings.TrimRight(failure.Error.Stack, "\n"), "\n")
		builder.WriteString("[yellow]Stack Trace:[white]\n")
		for i, line := range lines {
			if i == stackLinesShown {
				break
			}
			fmt.Fprintf(&builder, "  %s\n", tview.Escape(line))
		}
		if len(lines) > stackLinesShown {
			fmt.Fprintf(&builder, "  [gray]... and %d more lines[white]\n", len(lines)-stackLinesShown)
		}
	}

	return builder.String()
}

// formatFailureStats formats the header line above the details pane
func formatFailureStats(failure domain.TestDetail, number int) string {
	path := failure.File
	if path == "" {
		path = "Unknown path"
	}

	title := failure.Title
	if title == "" {
		title = fmt.Sprintf("Test %d", number)
	}

	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]::[yellow]%s[white]\n", tview.Escape(path), tview.Escape(title))
}
