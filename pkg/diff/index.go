package diff

import (
	"sort"

	"github.com/sdejongh/treediff/pkg/models"
)

// snapshotIndex is an identity-keyed view over one snapshot
type snapshotIndex struct {
	entries map[string]*models.Entry
	keys    []string // sorted identity keys
}

// buildIndex normalizes every entry path into an identity key and builds
// the lookup structure. When two entries normalize to the same identity
// the later one wins, so duplicate identities cannot inflate the key set.
// Entries deeper than maxDepth components are ignored (0 = unlimited).
func buildIndex(entries []models.Entry, maxDepth int) *snapshotIndex {
	idx := &snapshotIndex{entries: make(map[string]*models.Entry, len(entries))}

	for i := range entries {
		key := NormalizeIdentity(entries[i].Path)
		if key == "" {
			continue
		}
		if maxDepth > 0 && identityDepth(key) > maxDepth {
			continue
		}
		if _, seen := idx.entries[key]; !seen {
			idx.keys = append(idx.keys, key)
		}
		idx.entries[key] = &entries[i]
	}

	sort.Strings(idx.keys)
	return idx
}

// get returns the entry for an identity key, or nil
func (idx *snapshotIndex) get(key string) *models.Entry {
	return idx.entries[key]
}

// has reports whether the identity key exists in this snapshot
func (idx *snapshotIndex) has(key string) bool {
	_, ok := idx.entries[key]
	return ok
}

// pathSets computes the three disjoint identity sets of a comparison:
// identities only in the previous snapshot, only in the current one, and
// present in both. Each returned slice is sorted ascending.
func pathSets(previous, current *snapshotIndex) (onlyPrevious, onlyCurrent, inBoth []string) {
	for _, key := range previous.keys {
		if current.has(key) {
			inBoth = append(inBoth, key)
		} else {
			onlyPrevious = append(onlyPrevious, key)
		}
	}
	for _, key := range current.keys {
		if !previous.has(key) {
			onlyCurrent = append(onlyCurrent, key)
		}
	}
	return onlyPrevious, onlyCurrent, inBoth
}
