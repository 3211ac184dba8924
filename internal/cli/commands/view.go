package commands

import (
	"github.com/spf13/cobra"

	"skipctl/internal/config"
	"skipctl/internal/storage"
	"skipctl/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.ScenarioViewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, viewer *ui.ScenarioViewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := vc.storage.Load()
	if err != nil {
		return err
	}

	return vc.viewer.View(results)
}
