package models

// ChangeType categorizes a detected change between two snapshots.
// Every Change carries exactly one of these tags.
type ChangeType string

const (
	// ChangeAdded indicates the entity exists only in the current snapshot
	ChangeAdded ChangeType = "added"
	// ChangeRemoved indicates the entity exists only in the previous snapshot
	ChangeRemoved ChangeType = "removed"
	// ChangeModified indicates changed attributes, or changed contents for
	// a directory
	ChangeModified ChangeType = "modified"
	// ChangeMoved indicates the entity was moved or renamed
	ChangeMoved ChangeType = "moved"
	// ChangeTypeChanged indicates the entity kind changed at the same path
	ChangeTypeChanged ChangeType = "type_changed"
	// ChangeUnchanged indicates no detectable difference
	ChangeUnchanged ChangeType = "unchanged"
)

// Change represents a single detected difference between two snapshots.
//
// Path is always the identity path reported in output; for moved entities
// it is the current path and MovedFrom carries the previous one. Children
// are populated only on modified directories.
type Change struct {
	// Path is the identity path of the change
	Path string `json:"path"`

	// Kind is the entity kind (for type changes, the current kind)
	Kind EntryKind `json:"kind"`

	// Type is the change classification
	Type ChangeType `json:"type"`

	// Current is the entry in the current snapshot (nil for removed)
	Current *Entry `json:"current,omitempty"`

	// Previous is the entry in the previous snapshot (nil for added)
	Previous *Entry `json:"previous,omitempty"`

	// MovedFrom is the previous identity path (moved changes only)
	MovedFrom string `json:"moved_from,omitempty"`

	// Similarity is the move similarity score in [0,1] (moved changes only)
	Similarity float64 `json:"similarity,omitempty"`

	// FromKind and ToKind describe a kind transition (type changes only)
	FromKind EntryKind `json:"from_kind,omitempty"`
	ToKind   EntryKind `json:"to_kind,omitempty"`

	// Children holds nested changes for modified directories
	Children []Change `json:"children,omitempty"`
}

// IsDirectory reports whether the change concerns a directory
func (c *Change) IsDirectory() bool {
	return c.Kind == KindDirectory
}

// AddChild appends a nested change (modified directories only)
func (c *Change) AddChild(child Change) {
	c.Children = append(c.Children, child)
}

// SizeChange returns the signed size delta for this change alone:
// current size minus previous size, with absent sizes counting as zero.
// Added entities contribute their full size, removed ones its negation.
func (c *Change) SizeChange() int64 {
	return c.Current.SizeOrZero() - c.Previous.SizeOrZero()
}
