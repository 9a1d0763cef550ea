package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sdejongh/treediff/pkg/models"
)

// FormatVersion is the current snapshot file format version
const FormatVersion = 1

// File is the persisted form of a snapshot: a small header plus the flat
// entry array the diff engine consumes.
type File struct {
	// FormatVersion identifies the file layout
	FormatVersion int `json:"format_version"`

	// Label is a human-readable identifier for the snapshot
	Label string `json:"label,omitempty"`

	// Root is the directory the snapshot was captured from
	Root string `json:"root"`

	// CreatedAt is when the snapshot was captured
	CreatedAt time.Time `json:"created_at"`

	// Filters lists the filter descriptions applied during capture
	Filters []string `json:"filters,omitempty"`

	// Entries is the flat record array, one element per entity
	Entries []models.Entry `json:"entries"`
}

// New creates a snapshot file value for the given entries
func New(root, label string, filters []string, entries []models.Entry) *File {
	return &File{
		FormatVersion: FormatVersion,
		Label:         label,
		Root:          root,
		CreatedAt:     time.Now().UTC(),
		Filters:       filters,
		Entries:       entries,
	}
}

// Save writes the snapshot to a JSON file, creating parent directories
// as needed
func Save(snap *File, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return nil
}

// Load reads and validates a snapshot file. A malformed snapshot fails
// here, before any comparison is attempted.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap File
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot file %s: %w", path, err)
	}

	return &snap, nil
}

// Validate checks the structural integrity of a loaded snapshot
func (f *File) Validate() error {
	if f.FormatVersion != FormatVersion {
		return fmt.Errorf("unsupported format version %d (expected %d)", f.FormatVersion, FormatVersion)
	}
	for i := range f.Entries {
		e := &f.Entries[i]
		if e.Path == "" {
			return fmt.Errorf("entry %d: missing path", i)
		}
		if !e.Kind.Valid() {
			return fmt.Errorf("entry %d (%s): unknown kind %q", i, e.Path, e.Kind)
		}
	}
	return nil
}
