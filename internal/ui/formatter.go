package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"skipctl/internal/config"
	"skipctl/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunStats displays the meta statistics of an annotation run
func (f *Formatter) PrintRunStats(output *domain.SkipRunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                  Skip Annotation Statistics                   ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")
	f.printRow("Reports read", fmt.Sprintf("%d", meta.Reports))
	f.printRow("Failed scenarios", fmt.Sprintf("%d", meta.FailedScenarios))
	f.printRow("Newly annotated", color.GreenString("%d", meta.Annotated))
	f.printRow("Already skipped", fmt.Sprintf("%d", meta.AlreadySkipped))
	if meta.Unlocatable > 0 {
		f.printRow("Unlocatable", color.RedString("%d", meta.Unlocatable))
	} else {
		f.printRow("Unlocatable", "0")
	}
	f.printRow("Duration", meta.Duration)
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")
}

// PrintFailureList displays the failing scenarios of the last run as a table
func (f *Formatter) PrintFailureList(output *domain.SkipRunOutput) {
	if len(output.Details) == 0 {
		color.Green("✓ No failing scenarios recorded")
		return
	}

	color.Cyan("\nFailing scenarios (%d):\n", len(output.Details))

	for i, d := range output.Details {
		status := statusLabel(d)
		fmt.Printf("  %s %s %s\n",
			color.YellowString("%d.", i+1),
			d.Name,
			status,
		)
		fmt.Printf("     %s\n", color.CyanString("%s:%d", d.URI, d.Line))
		if d.Error != "" {
			fmt.Printf("     %s\n", truncateForDisplay(d.Error, 120))
		}
	}
	fmt.Println()
}

func statusLabel(d domain.SkipDetail) string {
	switch {
	case d.Annotated:
		return color.GreenString("[annotated]")
	case d.Skipped:
		return color.WhiteString("[already skipped]")
	case d.Missing:
		return color.RedString("[not located]")
	default:
		return ""
	}
}

func (f *Formatter) printRow(label, value string) {
	// Pad against the visible width; color codes do not count
	visible := stripColorLen(value)
	padding := 28 - visible
	if padding < 0 {
		padding = 0
	}
	fmt.Printf("│ %-31s │ %s%s│\n", label, value, strings.Repeat(" ", padding))
}

func stripColorLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		n++
	}
	return n
}

func truncateForDisplay(s string, max int) string {
	if runes := []rune(s); len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	return s
}
