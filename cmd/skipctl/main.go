package main

import (
	"fmt"
	"os"

	"skipctl/internal/cli"
	"skipctl/internal/cli/commands"
	"skipctl/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "skipctl",
		Short:   "Skip failing E2E scenarios based on CI reports",
		Long:    `Post-processes behavior-driven test suites after a CI run: reads the sharded cucumber JSON reports, finds failed scenarios, and annotates the matching feature files with a skip tag and the failure reason so later runs bypass known-broken scenarios.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
