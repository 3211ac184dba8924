package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"skipctl/internal/annotate"
	"skipctl/internal/config"
	"skipctl/internal/discovery"
	"skipctl/internal/ui"
)

// CleanupCommand handles the cleanup mode
type CleanupCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
}

// NewCleanupCommand creates a new CleanupCommand
func NewCleanupCommand(cfg *config.Config, scanner *discovery.Scanner) *CleanupCommand {
	return &CleanupCommand{
		config:  cfg,
		scanner: scanner,
	}
}

// Execute runs the command
func (cc *CleanupCommand) Execute(cmd *cobra.Command, args []string) error {
	color.Cyan("Cleaning up skip annotations...")

	files, err := cc.scanner.Scan(cc.config.GetFeaturesDir())
	if err != nil {
		return err
	}

	if len(files) == 0 {
		color.Yellow("No feature files found under %s", cc.config.GetFeaturesDir())
		return nil
	}

	progressBar := ui.NewProgressBar(len(files))

	cleaned := 0
	var cleanedFiles []string
	for i, path := range files {
		if changed, err := cc.cleanupFile(path); err != nil {
			color.Yellow("Error processing %s: %v", path, err)
		} else if changed {
			cleaned++
			cleanedFiles = append(cleanedFiles, path)
		}
		progressBar.Update(i+1, cleaned)
	}
	progressBar.Finish()

	for _, path := range cleanedFiles {
		fmt.Printf("  Cleaned up %s\n", path)
	}
	if cleaned == 0 {
		color.Green("All annotations already canonical.")
	}

	return nil
}

// cleanupFile normalizes a single feature file, rewriting it only if the
// normalizer changed anything.
func (cc *CleanupCommand) cleanupFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	lines, changed := annotate.Normalize(strings.Split(string(data), "\n"))
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return false, err
	}
	return true, nil
}
