package commands

import (
	"skipctl/internal/annotate"
	"skipctl/internal/cli"
	"skipctl/internal/config"
	"skipctl/internal/discovery"
	"skipctl/internal/report"
	"skipctl/internal/storage"
	"skipctl/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Skip    *SkipCommand
	Cleanup *CleanupCommand
	List    *ListCommand
	View    *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	aggregator := report.NewAggregator(cfg)
	writer := annotate.NewWriter(cfg)
	scanner := discovery.NewScanner(cfg.FeatureGlob)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewScenarioViewer(cfg, jsonStorage)

	return &Commands{
		Skip:    NewSkipCommand(cfg, aggregator, writer, jsonStorage, formatter),
		Cleanup: NewCleanupCommand(cfg, scanner),
		List:    NewListCommand(cfg, aggregator, jsonStorage, formatter),
		View:    NewViewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Default mode annotates failing scenarios; --cleanup normalizes
	// existing annotations instead.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		if cfg.Flags.Cleanup {
			return c.Cleanup.Execute(cmd, args)
		}
		return c.Skip.Execute(cmd, args)
	}
	rootCmd.Flags().BoolVar(&flags.Cleanup, "cleanup", false, "Remove duplicate @skip tags and fix inline comment format")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List failing scenarios",
		Long:  "Print the failing scenarios recorded by the last annotation run",
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "View failing scenarios interactively",
		Long:  "Display the failing scenarios from the last annotation run in an interactive viewer",
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
