package diff

import (
	"github.com/sdejongh/treediff/pkg/models"
)

// classify walks the three identity sets and produces one provisional
// change per identity. Only-previous identities become Removed, only-current
// ones Added; in-both identities compare by kind first and attributes
// second. Directories in both snapshots start out Unchanged here, the
// aggregator upgrades them later when something beneath them changed.
func classify(previous, current *snapshotIndex, onlyPrevious, onlyCurrent, inBoth []string) []models.Change {
	changes := make([]models.Change, 0, len(onlyPrevious)+len(onlyCurrent)+len(inBoth))

	for _, key := range onlyPrevious {
		prev := identityEntry(previous.get(key), key)
		changes = append(changes, models.Change{
			Path:     key,
			Kind:     prev.Kind,
			Type:     models.ChangeRemoved,
			Previous: prev,
		})
	}

	for _, key := range onlyCurrent {
		curr := identityEntry(current.get(key), key)
		changes = append(changes, models.Change{
			Path:    key,
			Kind:    curr.Kind,
			Type:    models.ChangeAdded,
			Current: curr,
		})
	}

	for _, key := range inBoth {
		prev := identityEntry(previous.get(key), key)
		curr := identityEntry(current.get(key), key)

		if prev.Kind != curr.Kind {
			changes = append(changes, models.Change{
				Path:     key,
				Kind:     curr.Kind,
				Type:     models.ChangeTypeChanged,
				Current:  curr,
				Previous: prev,
				FromKind: prev.Kind,
				ToKind:   curr.Kind,
			})
			continue
		}

		changeType := models.ChangeUnchanged
		if !curr.IsDir() && attributesDiffer(prev, curr) {
			changeType = models.ChangeModified
		}
		changes = append(changes, models.Change{
			Path:     key,
			Kind:     curr.Kind,
			Type:     changeType,
			Current:  curr,
			Previous: prev,
		})
	}

	return changes
}

// attributesDiffer compares the attributes of two same-kind, file-like
// entries. Size drives the decision when both snapshots recorded one;
// timestamps are carried through to output but stay informational.
func attributesDiffer(prev, curr *models.Entry) bool {
	if prev.Size != nil && curr.Size != nil && *prev.Size != *curr.Size {
		return true
	}
	return false
}

// identityEntry returns a copy of the entry keyed by its normalized
// identity path, so output never leaks raw path spellings.
func identityEntry(e *models.Entry, key string) *models.Entry {
	if e == nil {
		return nil
	}
	normalized := *e
	normalized.Path = key
	return &normalized
}
