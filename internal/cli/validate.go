package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sdejongh/treediff/internal/platform"
	"github.com/sdejongh/treediff/pkg/config"
	"github.com/sdejongh/treediff/pkg/models"
)

// validateDiffFlags validates the diff command flags before any work starts
func validateDiffFlags(snapshotArgs []string) error {
	for _, path := range snapshotArgs {
		if err := platform.ValidatePath(path); err != nil {
			return err
		}
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return fmt.Errorf("snapshot file does not exist: %s", path)
		} else if err != nil {
			return fmt.Errorf("failed to access snapshot file: %w", err)
		} else if info.IsDir() {
			return fmt.Errorf("snapshot path is a directory, not a file: %s", path)
		}
	}

	if len(snapshotArgs) == 1 {
		if err := platform.ValidatePath(diffFlags.Root); err != nil {
			return err
		}
		diffFlags.Root = platform.NormalizePath(diffFlags.Root)
		info, err := os.Stat(diffFlags.Root)
		if os.IsNotExist(err) {
			return fmt.Errorf("root path does not exist: %s", diffFlags.Root)
		} else if err != nil {
			return fmt.Errorf("failed to access root path: %w", err)
		} else if !info.IsDir() {
			return fmt.Errorf("root path is not a directory: %s", diffFlags.Root)
		}
	}

	if diffFlags.MoveThreshold < 0.0 || diffFlags.MoveThreshold > 1.0 {
		return fmt.Errorf("move threshold must be between 0.0 and 1.0, got %g", diffFlags.MoveThreshold)
	}

	validFormats := map[string]bool{"": true, "human": true, "text": true, "json": true, "markdown": true, "md": true, "html": true}
	if !validFormats[diffFlags.Output] {
		return fmt.Errorf("invalid output format: %s (valid: human, json, markdown, html)", diffFlags.Output)
	}
	if !validFormats[diffFlags.ReportFormat] {
		return fmt.Errorf("invalid report format: %s (valid: human, json, markdown, html)", diffFlags.ReportFormat)
	}

	if diffFlags.SortBy != "" && !models.SortKey(diffFlags.SortBy).Valid() {
		return fmt.Errorf("invalid sort key: %s (valid: path, name, size, mtime)", diffFlags.SortBy)
	}

	if _, err := parseChangeTypes(diffFlags.ShowOnly); err != nil {
		return err
	}

	return nil
}

// validateSnapshotFlags validates the snapshot command flags
func validateSnapshotFlags() error {
	if err := platform.ValidatePath(snapshotFlags.Root); err != nil {
		return err
	}
	if err := platform.ValidatePath(snapshotFlags.Output); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	snapshotFlags.Root = platform.NormalizePath(snapshotFlags.Root)
	info, err := os.Stat(snapshotFlags.Root)
	if os.IsNotExist(err) {
		return fmt.Errorf("root path does not exist: %s", snapshotFlags.Root)
	} else if err != nil {
		return fmt.Errorf("failed to access root path: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", snapshotFlags.Root)
	}

	if snapshotFlags.Output == "" {
		return fmt.Errorf("output file is required")
	}

	return nil
}

// parseChangeTypes maps --show-only values (with their short aliases) to
// change types
func parseChangeTypes(names []string) ([]models.ChangeType, error) {
	var types []models.ChangeType
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
			continue
		case "added", "add", "+":
			types = append(types, models.ChangeAdded)
		case "removed", "remove", "rm", "-":
			types = append(types, models.ChangeRemoved)
		case "modified", "modify", "mod", "m":
			types = append(types, models.ChangeModified)
		case "moved", "move", "mv", "~":
			types = append(types, models.ChangeMoved)
		case "type_changed", "type-changed", "typechanged", "t":
			types = append(types, models.ChangeTypeChanged)
		case "unchanged", "same":
			types = append(types, models.ChangeUnchanged)
		default:
			return nil, fmt.Errorf("invalid change type: %q (valid: added, removed, modified, moved, type_changed, unchanged)", name)
		}
	}
	return types, nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}
