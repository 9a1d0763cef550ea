package models

import "fmt"

// SortKey selects the ordering applied to the change list
type SortKey string

const (
	// SortByPath orders changes by identity path (default)
	SortByPath SortKey = "path"
	// SortByName orders changes by display name
	SortByName SortKey = "name"
	// SortBySize orders changes by current size, largest first
	SortBySize SortKey = "size"
	// SortByMTime orders changes by current modification time, newest first
	SortByMTime SortKey = "mtime"
)

// Valid reports whether the sort key is known
func (k SortKey) Valid() bool {
	switch k {
	case SortByPath, SortByName, SortBySize, SortByMTime:
		return true
	}
	return false
}

// DiffOptions configures a diff run. The options value is read-only for
// the duration of a comparison and may be reused across runs.
type DiffOptions struct {
	// MaxDepth limits comparison to identities at most this many path
	// components deep (0 = unlimited)
	MaxDepth int `json:"max_depth,omitempty" yaml:"max_depth"`

	// ShowUnchanged includes unchanged entries in the change list.
	// Unchanged entries are counted in the summary either way.
	ShowUnchanged bool `json:"show_unchanged" yaml:"show_unchanged"`

	// DetectMoves enables move/rename detection
	DetectMoves bool `json:"detect_moves" yaml:"detect_moves"`

	// IgnoreMoves forces add+remove classification even when move
	// detection is enabled
	IgnoreMoves bool `json:"ignore_moves" yaml:"ignore_moves"`

	// MoveThreshold is the minimum similarity score for a move, in [0,1]
	MoveThreshold float64 `json:"move_threshold" yaml:"move_threshold"`

	// SortBy overrides the default path ordering of the change list
	SortBy SortKey `json:"sort_by,omitempty" yaml:"sort_by"`
}

// DefaultDiffOptions returns the default diff options
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{
		DetectMoves:   true,
		MoveThreshold: 0.8,
		SortBy:        SortByPath,
	}
}

// Validate checks if the options are valid
func (o *DiffOptions) Validate() error {
	if o.MoveThreshold < 0.0 || o.MoveThreshold > 1.0 {
		return &ValidationError{Field: "move_threshold", Message: "must be between 0.0 and 1.0"}
	}
	if o.MaxDepth < 0 {
		return &ValidationError{Field: "max_depth", Message: "must not be negative"}
	}
	if o.SortBy != "" && !o.SortBy.Valid() {
		return &ValidationError{
			Field:   "sort_by",
			Message: fmt.Sprintf("unknown sort key %q (use: path, name, size, mtime)", o.SortBy),
		}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
