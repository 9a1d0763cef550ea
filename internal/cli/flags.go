package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
	NoColor    bool
}

var globalFlags GlobalFlags

// DiffFlags holds flag values for the diff command
type DiffFlags struct {
	Root          string
	MaxDepth      int
	IgnoreMoves   bool
	NoDetectMoves bool
	MoveThreshold float64
	ShowUnchanged bool
	ShowOnly      []string
	StatsOnly     bool
	SortBy        string
	Output        string
	Report        string
	ReportFormat  string
	Exclude       []string
	IncludeHidden bool
}

var diffFlags DiffFlags

// SnapshotFlags holds flag values for the snapshot command
type SnapshotFlags struct {
	Root          string
	Output        string
	Label         string
	MaxDepth      int
	Exclude       []string
	IncludeHidden bool
}

var snapshotFlags SnapshotFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/treediff/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
	cmd.PersistentFlags().BoolVar(
		&globalFlags.NoColor,
		"no-color",
		false,
		"disable colored output",
	)
}

// GetGlobalFlags returns the global flags
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}
