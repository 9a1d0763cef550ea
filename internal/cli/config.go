package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdejongh/treediff/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify treediff configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Move Detection: %t\n", cfg.Diff.DetectMoves)
			fmt.Printf("Move Threshold: %.2f\n", cfg.Diff.MoveThreshold)
			fmt.Printf("Sort By: %s\n", cfg.Diff.SortBy)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Human Sizes: %t\n", cfg.Output.HumanSizes)
			fmt.Printf("Include Hidden: %t\n", cfg.Snapshot.IncludeHidden)
			fmt.Printf("Exclude Patterns: %v\n", cfg.Exclude)
			fmt.Printf("Logging Enabled: %t\n", cfg.Logging.Enabled)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}
