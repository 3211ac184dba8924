package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"skipctl/internal/annotate"
	"skipctl/internal/config"
	"skipctl/internal/report"
	"skipctl/internal/storage"
	"skipctl/internal/ui"
)

// SkipCommand handles the default annotation mode
type SkipCommand struct {
	config     *config.Config
	aggregator *report.Aggregator
	writer     *annotate.Writer
	storage    storage.Storage
	formatter  *ui.Formatter
}

// NewSkipCommand creates a new SkipCommand
func NewSkipCommand(
	cfg *config.Config,
	aggregator *report.Aggregator,
	writer *annotate.Writer,
	st storage.Storage,
	formatter *ui.Formatter,
) *SkipCommand {
	return &SkipCommand{
		config:     cfg,
		aggregator: aggregator,
		writer:     writer,
		storage:    st,
		formatter:  formatter,
	}
}

// Execute runs the command
func (sc *SkipCommand) Execute(cmd *cobra.Command, args []string) error {
	color.Cyan("Analyzing failing tests from CI reports...")
	start := time.Now()

	failures, reports, err := sc.aggregator.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect reports: %w", err)
	}

	if len(failures) == 0 {
		color.Green("No failing tests found.")
		return nil
	}

	fmt.Printf("Found %d failing scenarios.\n", len(failures))

	details := sc.writer.Apply(failures)
	duration := time.Since(start)

	if err := sc.storage.Save(details, reports, duration); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	output, err := sc.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to read back run results: %w", err)
	}
	sc.formatter.PrintRunStats(output)

	return nil
}
