package models

import (
	"path"
	"time"
)

// EntryKind identifies the kind of filesystem entity an Entry describes
type EntryKind string

const (
	// KindFile is a regular file
	KindFile EntryKind = "file"
	// KindDirectory is a directory
	KindDirectory EntryKind = "directory"
	// KindSymlink is a symbolic link (never followed)
	KindSymlink EntryKind = "symlink"
)

// Valid reports whether the kind is one of the known entry kinds
func (k EntryKind) Valid() bool {
	switch k {
	case KindFile, KindDirectory, KindSymlink:
		return true
	}
	return false
}

// Entry represents a single filesystem entity in a snapshot.
// Entries are produced by the snapshot walker or loaded from a persisted
// snapshot file and are consumed read-only by the diff engine.
type Entry struct {
	// Name is the display name (usually the base name of Path)
	Name string `json:"name"`

	// Path is the identity path relative to the snapshot root
	Path string `json:"path"`

	// Kind is the entity kind
	Kind EntryKind `json:"kind"`

	// Size in bytes, if known (directories carry no size)
	Size *int64 `json:"size,omitempty"`

	// ModTime is the last modification time, if known
	ModTime *time.Time `json:"mtime,omitempty"`

	// ChangeTime is the last status change time, if known
	ChangeTime *time.Time `json:"ctime,omitempty"`

	// CreateTime is the creation time, if known
	CreateTime *time.Time `json:"btime,omitempty"`

	// Depth is the nesting depth below the snapshot root (informational)
	Depth int `json:"depth"`
}

// IsDir reports whether the entry describes a directory
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// DisplayName returns Name, falling back to the base of Path
func (e *Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return path.Base(e.Path)
}

// SizeOrZero returns the entry size, or 0 when no size is recorded
func (e *Entry) SizeOrZero() int64 {
	if e == nil || e.Size == nil {
		return 0
	}
	return *e.Size
}
