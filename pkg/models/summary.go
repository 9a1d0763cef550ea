package models

// DiffSummary holds aggregate statistics for a diff run
type DiffSummary struct {
	Added       int `json:"added"`
	Removed     int `json:"removed"`
	Modified    int `json:"modified"`
	Moved       int `json:"moved"`
	TypeChanged int `json:"type_changed"`
	Unchanged   int `json:"unchanged"`

	// SizeChange is the signed sum of per-entity size deltas in bytes
	SizeChange int64 `json:"size_change"`

	// Breakdown by entity kind (symlinks count as files)
	FilesAdded         int `json:"files_added"`
	DirectoriesAdded   int `json:"directories_added"`
	FilesRemoved       int `json:"files_removed"`
	DirectoriesRemoved int `json:"directories_removed"`
	FilesMoved         int `json:"files_moved"`
	DirectoriesMoved   int `json:"directories_moved"`
}

// Record folds a change into the summary, recursing into the children
// of modified directories so that nested changes are counted exactly once.
func (s *DiffSummary) Record(c *Change) {
	isDir := c.IsDirectory()

	switch c.Type {
	case ChangeAdded:
		s.Added++
		if isDir {
			s.DirectoriesAdded++
		} else {
			s.FilesAdded++
		}
	case ChangeRemoved:
		s.Removed++
		if isDir {
			s.DirectoriesRemoved++
		} else {
			s.FilesRemoved++
		}
	case ChangeModified:
		s.Modified++
	case ChangeMoved:
		s.Moved++
		if isDir {
			s.DirectoriesMoved++
		} else {
			s.FilesMoved++
		}
	case ChangeTypeChanged:
		s.TypeChanged++
	case ChangeUnchanged:
		s.Unchanged++
	}

	s.SizeChange += c.SizeChange()

	if c.Type == ChangeModified {
		for i := range c.Children {
			s.Record(&c.Children[i])
		}
	}
}

// TotalChanges returns the number of changes excluding unchanged entries
func (s *DiffSummary) TotalChanges() int {
	return s.Added + s.Removed + s.Modified + s.Moved + s.TypeChanged
}
