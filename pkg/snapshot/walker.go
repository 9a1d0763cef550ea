// Package snapshot captures directory trees into flat entry collections
// and persists them as versioned JSON snapshot files.
package snapshot

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdejongh/treediff/pkg/models"
)

// WalkOptions configures a snapshot capture
type WalkOptions struct {
	// MaxDepth limits the capture to entries at most this many levels
	// below the root (0 = unlimited)
	MaxDepth int

	// IncludeHidden includes dot-prefixed files and directories
	IncludeHidden bool

	// Exclude holds glob patterns for paths to skip
	Exclude []string

	// Progress, if set, is called once per captured entry
	Progress func(path string)
}

// FilterDescriptions returns human-readable descriptions of the filters
// these options apply, for snapshot and diff metadata.
func (o *WalkOptions) FilterDescriptions() []string {
	var filters []string
	if !o.IncludeHidden {
		filters = append(filters, "hidden files excluded")
	}
	for _, pattern := range o.Exclude {
		filters = append(filters, fmt.Sprintf("exclude: %s", pattern))
	}
	if o.MaxDepth > 0 {
		filters = append(filters, fmt.Sprintf("max depth: %d", o.MaxDepth))
	}
	return filters
}

// Walk captures the directory tree rooted at root into a flat entry
// collection. Symbolic links are recorded as symlink entries and never
// followed. The root itself is not recorded.
func Walk(ctx context.Context, root string, opts WalkOptions) ([]models.Entry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absRoot)
	}

	var entries []models.Entry

	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p == absRoot {
			return nil
		}

		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)
		depth := strings.Count(relSlash, "/") + 1

		if skip, skipDir := shouldSkip(relSlash, d, opts, depth); skip {
			if skipDir {
				return fs.SkipDir
			}
			return nil
		}

		entry := models.Entry{
			Name:  d.Name(),
			Path:  relSlash,
			Kind:  entryKind(d),
			Depth: depth,
		}

		if fi, err := d.Info(); err == nil {
			mtime := fi.ModTime()
			entry.ModTime = &mtime
			if entry.Kind == models.KindFile {
				size := fi.Size()
				entry.Size = &size
			}
		}

		entries = append(entries, entry)
		if opts.Progress != nil {
			opts.Progress(relSlash)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return entries, nil
}

// Count returns the number of entries a Walk with the same options would
// capture. Used to size progress reporting before the real pass.
func Count(ctx context.Context, root string, opts WalkOptions) (int, error) {
	countOpts := opts
	countOpts.Progress = nil
	entries, err := Walk(ctx, root, countOpts)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// shouldSkip decides whether an entry is filtered out; skipDir additionally
// prunes the walk below a filtered directory.
func shouldSkip(relSlash string, d fs.DirEntry, opts WalkOptions, depth int) (skip, skipDir bool) {
	if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
		return true, d.IsDir()
	}
	if shouldExclude(relSlash, opts.Exclude) {
		return true, d.IsDir()
	}
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return true, d.IsDir()
	}
	return false, false
}

// entryKind maps a directory entry to its snapshot kind. Symlinks are
// detected from the entry type bits so they are never stat-followed.
func entryKind(d fs.DirEntry) models.EntryKind {
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		return models.KindSymlink
	case d.IsDir():
		return models.KindDirectory
	default:
		return models.KindFile
	}
}
