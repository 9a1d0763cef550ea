package models

import "time"

// DiffMetadata describes the inputs and options of a diff run
type DiffMetadata struct {
	// RunID uniquely identifies this diff run
	RunID string `json:"run_id"`

	// GeneratedAt is when the diff was produced
	GeneratedAt time.Time `json:"generated_at"`

	// PreviousLabel identifies the previous snapshot (e.g. its file path)
	PreviousLabel string `json:"previous_label,omitempty"`

	// CurrentLabel identifies the current snapshot
	CurrentLabel string `json:"current_label,omitempty"`

	// ComparisonRoot is the root path the snapshots describe
	ComparisonRoot string `json:"comparison_root"`

	// FiltersApplied lists filter descriptions applied upstream
	// (informational, not interpreted by the engine)
	FiltersApplied []string `json:"filters_applied,omitempty"`

	// Options echoes the diff options used
	Options DiffOptions `json:"options"`
}

// DiffResult is the complete, immutable outcome of a diff run
type DiffResult struct {
	// Changes is the change list, sorted by identity path unless the
	// options select a different sort key
	Changes []Change `json:"changes"`

	// Summary holds aggregate counts and the total size delta
	Summary DiffSummary `json:"summary"`

	// Metadata describes the run itself
	Metadata DiffMetadata `json:"metadata"`
}

// HasChanges reports whether any non-unchanged entries were detected
func (r *DiffResult) HasChanges() bool {
	return r.Summary.TotalChanges() > 0
}

// ExitCode returns the process exit code for this result:
// 0 when the snapshots match, 1 when differences were found
func (r *DiffResult) ExitCode() int {
	if r.HasChanges() {
		return 1
	}
	return 0
}
