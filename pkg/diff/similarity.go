package diff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sdejongh/treediff/pkg/models"
)

// entrySimilarity scores how likely prev and curr describe the same moved
// entity, in [0,1]. The score combines name similarity with a size signal:
// identical sizes raise confidence, diverging sizes lower it. When either
// side lacks a size (directories, sparse snapshots) the name carries the
// whole score. Both weights are equal, which keeps the combination
// monotonic in each signal.
func entrySimilarity(prev, curr *models.Entry) float64 {
	name := nameSimilarity(prev.DisplayName(), curr.DisplayName())
	if prev.Size == nil || curr.Size == nil {
		return name
	}
	return 0.5*name + 0.5*sizeSimilarity(*prev.Size, *curr.Size)
}

// nameSimilarity measures how much of two display names survives a
// character-level edit script: 1 − levenshtein/maxLen. Names sharing
// more characters in order score higher.
func nameSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}

	// DiffMain's edit script can differ depending on argument order.
	// Diff in a canonical order so the score never depends on which
	// snapshot a name came from.
	if b < a {
		a, b = b, a
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	if distance >= maxLen {
		return 0.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// sizeSimilarity is 1.0 for equal sizes, otherwise the ratio of the
// smaller to the larger size
func sizeSimilarity(prev, curr int64) float64 {
	if prev == curr {
		return 1.0
	}
	if prev <= 0 || curr <= 0 {
		return 0.0
	}
	if prev > curr {
		return float64(curr) / float64(prev)
	}
	return float64(prev) / float64(curr)
}
