package cli

import (
	"context"
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/sdejongh/treediff/pkg/snapshot"
)

// NewSnapshotCommand creates the snapshot command
func NewSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture a directory tree snapshot",
		Long: `Walk a directory tree and write a snapshot file describing every
entry found: path, kind, size and modification time. Snapshot files are
the inputs to the diff command.`,
		RunE: runSnapshot,
	}

	cmd.Flags().StringVarP(&snapshotFlags.Root, "root", "r", ".", "directory to capture")
	cmd.Flags().StringVarP(&snapshotFlags.Output, "output", "o", "snapshot.json", "snapshot file to write")
	cmd.Flags().StringVarP(&snapshotFlags.Label, "label", "l", "", "label stored in the snapshot")
	cmd.Flags().IntVar(&snapshotFlags.MaxDepth, "max-depth", 0, "limit capture depth (0 = unlimited)")
	cmd.Flags().StringSliceVar(&snapshotFlags.Exclude, "exclude", []string{}, "glob patterns to exclude")
	cmd.Flags().BoolVar(&snapshotFlags.IncludeHidden, "include-hidden", false, "include hidden files and directories")

	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateSnapshotFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	exclude := cfg.Exclude
	if len(snapshotFlags.Exclude) > 0 {
		exclude = snapshotFlags.Exclude
	}
	includeHidden := cfg.Snapshot.IncludeHidden || snapshotFlags.IncludeHidden

	walkOpts := snapshot.WalkOptions{
		MaxDepth:      snapshotFlags.MaxDepth,
		IncludeHidden: includeHidden,
		Exclude:       exclude,
	}

	if cfg.Snapshot.Progress && !globalFlags.Quiet {
		total, err := snapshot.Count(ctx, snapshotFlags.Root, walkOpts)
		if err != nil {
			return err
		}
		bar := pb.StartNew(total)
		walkOpts.Progress = func(string) { bar.Increment() }
		defer bar.Finish()
	}

	entries, err := snapshot.Walk(ctx, snapshotFlags.Root, walkOpts)
	if err != nil {
		return fmt.Errorf("failed to capture %s: %w", snapshotFlags.Root, err)
	}

	snap := snapshot.New(snapshotFlags.Root, snapshotFlags.Label, walkOpts.FilterDescriptions(), entries)
	if err := snapshot.Save(snap, snapshotFlags.Output); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if !globalFlags.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Captured %d entries from %s into %s\n",
			len(entries), snapshotFlags.Root, snapshotFlags.Output)
	}
	return nil
}
