package diff

import (
	"sort"
	"time"

	"github.com/sdejongh/treediff/pkg/models"
)

// rollup upgrades in-both directories to Modified when anything beneath
// them changed. The walk operates on the fixed identity-key set only: for
// every non-unchanged change it climbs the parent chain, marking each
// identity it passes, and stops as soon as it reaches one that a previous
// climb already marked. Every climb strictly shortens the key, so
// duplicate or self-referential identity strings cannot cause unbounded
// recursion.
func rollup(changes []models.Change) {
	byPath := make(map[string]int, len(changes))
	for i := range changes {
		byPath[changes[i].Path] = i
	}

	marked := make(map[string]bool)
	for i := range changes {
		if changes[i].Type == models.ChangeUnchanged {
			continue
		}
		for parent := parentIdentity(changes[i].Path); parent != ""; parent = parentIdentity(parent) {
			if marked[parent] {
				break
			}
			marked[parent] = true
			if j, ok := byPath[parent]; ok && wrappable(&changes[j]) {
				changes[j].Type = models.ChangeModified
			}
		}
	}
}

// wrappable reports whether a change may carry nested children: a
// directory present in both snapshots with an unchanged kind.
func wrappable(c *models.Change) bool {
	if !c.IsDirectory() {
		return false
	}
	if c.Type != models.ChangeUnchanged && c.Type != models.ChangeModified {
		return false
	}
	return c.Current != nil && c.Previous != nil
}

// buildTree converts the flat, rolled-up change set into the output
// sequence: every change nests under its nearest modified-directory
// ancestor, unchanged entries are suppressed unless requested, and both
// the top level and every children slice are ordered by the configured
// sort key. A visited set guarantees each identity contributes exactly
// one change to the tree even if the input carries duplicates.
func buildTree(changes []models.Change, opts models.DiffOptions) []models.Change {
	byPath := make(map[string]*models.Change, len(changes))
	for i := range changes {
		byPath[changes[i].Path] = &changes[i]
	}

	visited := make(map[string]bool, len(changes))
	childrenOf := make(map[string][]*models.Change)
	var topLevel []*models.Change

	for i := range changes {
		c := &changes[i]
		if visited[c.Path] {
			continue
		}
		visited[c.Path] = true

		if owner := owningDirectory(c.Path, byPath); owner != nil {
			childrenOf[owner.Path] = append(childrenOf[owner.Path], c)
		} else {
			topLevel = append(topLevel, c)
		}
	}

	result := make([]models.Change, 0, len(topLevel))
	for _, c := range topLevel {
		if c.Type == models.ChangeUnchanged && !opts.ShowUnchanged {
			continue
		}
		result = append(result, materialize(c, childrenOf, opts))
	}
	sortChanges(result, opts.SortBy)
	return result
}

// materialize produces the output value for a change, recursively
// attaching and ordering its children.
func materialize(c *models.Change, childrenOf map[string][]*models.Change, opts models.DiffOptions) models.Change {
	out := *c
	out.Children = nil

	for _, child := range childrenOf[c.Path] {
		if child.Type == models.ChangeUnchanged && !opts.ShowUnchanged {
			continue
		}
		out.AddChild(materialize(child, childrenOf, opts))
	}
	sortChanges(out.Children, opts.SortBy)
	return out
}

// owningDirectory finds the nearest ancestor change eligible to hold this
// change as a child: a directory upgraded to Modified by the rollup.
func owningDirectory(identity string, byPath map[string]*models.Change) *models.Change {
	for parent := parentIdentity(identity); parent != ""; parent = parentIdentity(parent) {
		c, ok := byPath[parent]
		if !ok {
			continue
		}
		if c.IsDirectory() && c.Type == models.ChangeModified && c.Current != nil && c.Previous != nil {
			return c
		}
	}
	return nil
}

// sortChanges orders a change slice by the given key. Every non-path key
// falls back to the identity path as the final tie-breaker so that equal
// inputs always produce identical output.
func sortChanges(changes []models.Change, key models.SortKey) {
	sort.SliceStable(changes, func(i, j int) bool {
		a, b := &changes[i], &changes[j]
		switch key {
		case models.SortByName:
			an, bn := displayName(a), displayName(b)
			if an != bn {
				return an < bn
			}
		case models.SortBySize:
			as, bs := currentSize(a), currentSize(b)
			if as != bs {
				return as > bs
			}
		case models.SortByMTime:
			am, bm := currentMTime(a), currentMTime(b)
			if !am.Equal(bm) {
				return am.After(bm)
			}
		}
		return a.Path < b.Path
	})
}

func displayName(c *models.Change) string {
	if c.Current != nil {
		return c.Current.DisplayName()
	}
	if c.Previous != nil {
		return c.Previous.DisplayName()
	}
	return c.Path
}

func currentSize(c *models.Change) int64 {
	if c.Current != nil {
		return c.Current.SizeOrZero()
	}
	return c.Previous.SizeOrZero()
}

func currentMTime(c *models.Change) time.Time {
	e := c.Current
	if e == nil {
		e = c.Previous
	}
	if e == nil || e.ModTime == nil {
		return time.Time{}
	}
	return *e.ModTime
}
