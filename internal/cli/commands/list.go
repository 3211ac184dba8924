package commands

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"skipctl/internal/config"
	"skipctl/internal/domain"
	"skipctl/internal/report"
	"skipctl/internal/storage"
	"skipctl/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config     *config.Config
	aggregator *report.Aggregator
	storage    storage.Storage
	formatter  *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	aggregator *report.Aggregator,
	st storage.Storage,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:     cfg,
		aggregator: aggregator,
		storage:    st,
		formatter:  formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := lc.storage.Load()
	if err != nil {
		// No stored run yet; aggregate directly from the reports
		color.Yellow("No stored run found, reading CI reports...")
		failures, reports, err := lc.aggregator.Collect()
		if err != nil {
			return err
		}

		details := make([]domain.SkipDetail, 0, len(failures))
		for _, f := range failures {
			details = append(details, domain.SkipDetail{
				URI:   f.URI,
				Line:  f.Line,
				Name:  f.Name,
				ID:    f.ID,
				Error: f.Error,
			})
		}
		output = &domain.SkipRunOutput{
			Meta: domain.SkipRunMeta{
				Reports:         reports,
				FailedScenarios: len(details),
				Timestamp:       time.Now().Format(time.RFC3339),
			},
			Details: details,
		}
	}

	lc.formatter.PrintFailureList(output)
	return nil
}
