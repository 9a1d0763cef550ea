package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sdejongh/treediff/pkg/config"
	"github.com/sdejongh/treediff/pkg/diff"
	"github.com/sdejongh/treediff/pkg/logging"
	"github.com/sdejongh/treediff/pkg/models"
	"github.com/sdejongh/treediff/pkg/output"
	"github.com/sdejongh/treediff/pkg/snapshot"
)

// NewDiffCommand creates the diff command
func NewDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff OLD_SNAPSHOT [NEW_SNAPSHOT]",
		Short: "Compare directory tree snapshots",
		Long: `Compare two snapshot files, or a snapshot file against the live
directory tree under --root, and report every added, removed, modified,
moved and type-changed entry.

Exit code is 0 when the snapshots match, 1 when differences were found,
and 2 on error.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runDiff,
	}

	cmd.Flags().StringVarP(&diffFlags.Root, "root", "r", ".", "directory to capture when comparing against the live tree")
	cmd.Flags().IntVar(&diffFlags.MaxDepth, "max-depth", 0, "limit comparison depth (0 = unlimited)")
	cmd.Flags().BoolVar(&diffFlags.IgnoreMoves, "ignore-moves", false, "don't detect file moves/renames")
	cmd.Flags().BoolVar(&diffFlags.NoDetectMoves, "no-detect-moves", false, "disable move detection entirely")
	cmd.Flags().Float64Var(&diffFlags.MoveThreshold, "move-threshold", 0.8, "similarity threshold for move detection (0.0-1.0)")
	cmd.Flags().BoolVar(&diffFlags.ShowUnchanged, "show-unchanged", false, "include unchanged entries in output")
	cmd.Flags().StringSliceVar(&diffFlags.ShowOnly, "show-only", []string{}, "show only specific change types (comma-separated)")
	cmd.Flags().BoolVar(&diffFlags.StatsOnly, "stats-only", false, "show only summary statistics")
	cmd.Flags().StringVar(&diffFlags.SortBy, "sort", "", "sort key: path, name, size, mtime")
	cmd.Flags().StringVarP(&diffFlags.Output, "output", "o", "", "output format: human, json, markdown, html")
	cmd.Flags().StringVar(&diffFlags.Report, "report", "", "write report to file")
	cmd.Flags().StringVar(&diffFlags.ReportFormat, "report-format", "", "report format (defaults to --output)")
	cmd.Flags().StringSliceVar(&diffFlags.Exclude, "exclude", []string{}, "glob patterns to exclude when capturing the live tree")
	cmd.Flags().BoolVar(&diffFlags.IncludeHidden, "include-hidden", false, "include hidden files when capturing the live tree")

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateDiffFlags(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyDiffFlagsToConfig(cmd, cfg)

	opts := cfg.Diff
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid diff options: %w", err)
	}

	// Load the previous snapshot; any load failure stops the run before
	// the engine is invoked.
	previous, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	current, currentLabel, filters, err := currentSide(ctx, args, cfg)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	metadata := models.DiffMetadata{
		RunID:          uuid.New().String(),
		GeneratedAt:    time.Now().UTC(),
		PreviousLabel:  snapshotLabel(previous, args[0]),
		CurrentLabel:   currentLabel,
		ComparisonRoot: comparisonRoot(previous, args),
		FiltersApplied: filters,
	}

	logger.Info(ctx, "diff started", logging.Fields{
		"run_id":   metadata.RunID,
		"previous": metadata.PreviousLabel,
		"current":  metadata.CurrentLabel,
	})

	engine := diff.NewEngine(opts)
	result := engine.Compare(previous.Entries, current, metadata)

	logger.Info(ctx, "diff completed", logging.Fields{
		"run_id":        metadata.RunID,
		"total_changes": result.Summary.TotalChanges(),
		"added":         result.Summary.Added,
		"removed":       result.Summary.Removed,
		"moved":         result.Summary.Moved,
		"size_change":   result.Summary.SizeChange,
	})

	showOnly, err := parseChangeTypes(diffFlags.ShowOnly)
	if err != nil {
		return err
	}
	formatOpts := output.Options{
		Color:      cfg.Output.Color && !globalFlags.NoColor,
		HumanSizes: cfg.Output.HumanSizes,
		StatsOnly:  diffFlags.StatsOnly,
		ShowOnly:   showOnly,
	}

	if !cfg.Output.Quiet {
		formatter, err := output.NewFormatter(cfg.Output.Format, formatOpts)
		if err != nil {
			return err
		}
		rendered, err := formatter.Format(&result)
		if err != nil {
			return fmt.Errorf("failed to format diff result: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
	}

	if diffFlags.Report != "" {
		format := diffFlags.ReportFormat
		if format == "" {
			format = cfg.Output.Format
		}
		if err := writeReport(&result, format, formatOpts); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	logger.Close()
	os.Exit(result.ExitCode())
	return nil
}

// currentSide supplies the "current" entries: a second snapshot file when
// given, otherwise a live capture of the root directory.
func currentSide(ctx context.Context, args []string, cfg *config.Config) (entries []models.Entry, label string, filters []string, err error) {
	if len(args) == 2 {
		snap, err := snapshot.Load(args[1])
		if err != nil {
			return nil, "", nil, err
		}
		return snap.Entries, snapshotLabel(snap, args[1]), snap.Filters, nil
	}

	walkOpts := snapshot.WalkOptions{
		MaxDepth:      cfg.Diff.MaxDepth,
		IncludeHidden: cfg.Snapshot.IncludeHidden,
		Exclude:       cfg.Exclude,
	}

	if cfg.Snapshot.Progress && !cfg.Output.Quiet {
		total, err := snapshot.Count(ctx, diffFlags.Root, walkOpts)
		if err != nil {
			return nil, "", nil, err
		}
		bar := pb.StartNew(total)
		walkOpts.Progress = func(string) { bar.Increment() }
		defer bar.Finish()
	}

	entries, err = snapshot.Walk(ctx, diffFlags.Root, walkOpts)
	if err != nil {
		return nil, "", nil, err
	}
	return entries, fmt.Sprintf("live:%s", diffFlags.Root), walkOpts.FilterDescriptions(), nil
}

// applyDiffFlagsToConfig overrides config values with command-line flags
func applyDiffFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("max-depth") {
		cfg.Diff.MaxDepth = diffFlags.MaxDepth
	}
	if cmd.Flags().Changed("ignore-moves") {
		cfg.Diff.IgnoreMoves = diffFlags.IgnoreMoves
	}
	if cmd.Flags().Changed("no-detect-moves") {
		cfg.Diff.DetectMoves = !diffFlags.NoDetectMoves
	}
	if cmd.Flags().Changed("move-threshold") {
		cfg.Diff.MoveThreshold = diffFlags.MoveThreshold
	}
	if cmd.Flags().Changed("show-unchanged") {
		cfg.Diff.ShowUnchanged = diffFlags.ShowUnchanged
	}
	if diffFlags.SortBy != "" {
		cfg.Diff.SortBy = models.SortKey(diffFlags.SortBy)
	}
	if diffFlags.Output != "" {
		cfg.Output.Format = diffFlags.Output
	}
	if len(diffFlags.Exclude) > 0 {
		cfg.Exclude = diffFlags.Exclude
	}
	if cmd.Flags().Changed("include-hidden") {
		cfg.Snapshot.IncludeHidden = diffFlags.IncludeHidden
	}
	if globalFlags.Quiet {
		cfg.Output.Quiet = true
		cfg.Snapshot.Progress = false
	}
}

// writeReport renders the result in the report format and writes it to
// the report file
func writeReport(result *models.DiffResult, format string, formatOpts output.Options) error {
	// Reports are files; never colorize them
	formatOpts.Color = false
	formatter, err := output.NewFormatter(format, formatOpts)
	if err != nil {
		return err
	}

	rendered, err := formatter.Format(result)
	if err != nil {
		return err
	}

	return os.WriteFile(diffFlags.Report, []byte(rendered), 0644)
}

// newLogger builds the run logger from configuration
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}
	level := logging.ParseLevel(cfg.Logging.Level)
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}
	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})
}

// snapshotLabel returns the snapshot's own label, or its file path
func snapshotLabel(snap *snapshot.File, path string) string {
	if snap.Label != "" {
		return snap.Label
	}
	return path
}

// comparisonRoot picks the root reported in metadata: the live root when
// comparing against the filesystem, otherwise the previous snapshot's root
func comparisonRoot(previous *snapshot.File, args []string) string {
	if len(args) == 1 {
		return diffFlags.Root
	}
	if previous.Root != "" {
		return previous.Root
	}
	return "."
}
