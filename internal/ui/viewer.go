package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"skipctl/internal/config"
	"skipctl/internal/domain"
	"skipctl/internal/storage"
)

// ScenarioViewer displays failing scenarios in an interactive TUI
type ScenarioViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewScenarioViewer creates a new ScenarioViewer
func NewScenarioViewer(cfg *config.Config, st storage.Storage) *ScenarioViewer {
	return &ScenarioViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the last run's failing scenarios in an interactive TUI
func (sv *ScenarioViewer) View(results *domain.SkipRunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No failing scenarios found!")
		return nil
	}

	// Track resolved scenarios (by index) - loaded from the stored run
	resolved := make(map[int]bool)
	for i, detail := range results.Details {
		if detail.Resolved {
			resolved[i] = true
		}
	}

	saveResolvedStatus := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}
		return sv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		detail := results.Details[index]
		name := detail.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", index+1)
		}

		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range results.Details {
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

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := countUnresolved()
		headerText := fmt.Sprintf(" Failing Scenarios (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(results.Details), unresolved)
		headerView.SetText(headerText)
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			detail := results.Details[index]
			statsView.SetText(sv.formatScenarioStats(detail, index+1))
			detailsView.SetText(sv.formatScenarioDetails(detail))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
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

// formatScenarioDetails formats a failing scenario for display using tview color tags ([red], [cyan], etc.)
func (sv *ScenarioViewer) formatScenarioDetails(detail domain.SkipDetail) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Scenario: %s[white]\n\n", detail.Name)
	fmt.Fprintf(&builder, "[cyan]Feature: %s[white]\n", detail.URI)
	if detail.Line > 0 {
		fmt.Fprintf(&builder, "[yellow]Reported line: %d[white]\n", detail.Line)
	}
	fmt.Fprintf(&builder, "\n")

	if detail.Error != "" {
		fmt.Fprintf(&builder, "[yellow]Error:[white]\n%s\n\n", detail.Error)
	}

	switch {
	case detail.Annotated:
		fmt.Fprintf(&builder, "[green]Annotated with @skip this run[white]\n")
	case detail.Skipped:
		fmt.Fprintf(&builder, "[gray]Already annotated before this run[white]\n")
	case detail.Missing:
		fmt.Fprintf(&builder, "[red]Could not be located in its feature file[white]\n")
	}

	return builder.String()
}

// formatScenarioStats formats the stats header for a failing scenario
func (sv *ScenarioViewer) formatScenarioStats(detail domain.SkipDetail, number int) string {
	uri := detail.URI
	if uri == "" {
		uri = "Unknown feature"
	}

	name := detail.Name
	if name == "" {
		name = fmt.Sprintf("Scenario %d", number)
	}

	return fmt.Sprintf("[cyan]scenario:[white] [yellow]%s[white] ([yellow]%s[white])\n", name, uri)
}
