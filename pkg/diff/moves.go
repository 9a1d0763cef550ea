package diff

import (
	"sort"

	"github.com/sdejongh/treediff/pkg/models"
)

// movePair is a scored removed/added candidate pairing
type movePair struct {
	removed    string
	added      string
	similarity float64
}

// detectMoves promotes qualifying Added/Removed pairs in the provisional
// change set to Moved. Candidates pair only with candidates of the same
// entity kind. All qualifying pairs are scored in one pass over the
// cross-product, then claimed greedily in descending score order so each
// candidate participates in at most one move; score ties break on the
// ascending identity path of the removed candidate. The pass is bounded
// by the candidate-set product and terminates unconditionally.
func detectMoves(changes []models.Change, threshold float64) []models.Change {
	var removed, added []*models.Change
	for i := range changes {
		switch changes[i].Type {
		case models.ChangeRemoved:
			removed = append(removed, &changes[i])
		case models.ChangeAdded:
			added = append(added, &changes[i])
		}
	}
	if len(removed) == 0 || len(added) == 0 {
		return changes
	}

	var pairs []movePair
	for _, r := range removed {
		for _, a := range added {
			if r.Kind != a.Kind {
				continue
			}
			score := entrySimilarity(r.Previous, a.Current)
			if score >= threshold {
				pairs = append(pairs, movePair{removed: r.Path, added: a.Path, similarity: score})
			}
		}
	}
	if len(pairs) == 0 {
		return changes
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].similarity != pairs[j].similarity {
			return pairs[i].similarity > pairs[j].similarity
		}
		if pairs[i].removed != pairs[j].removed {
			return pairs[i].removed < pairs[j].removed
		}
		return pairs[i].added < pairs[j].added
	})

	claimedRemoved := make(map[string]bool, len(pairs))
	claimedAdded := make(map[string]bool, len(pairs))
	moves := make(map[string]movePair) // added path -> claimed pair
	for _, p := range pairs {
		if claimedRemoved[p.removed] || claimedAdded[p.added] {
			continue
		}
		claimedRemoved[p.removed] = true
		claimedAdded[p.added] = true
		moves[p.added] = p
	}

	previousOf := make(map[string]*models.Entry, len(moves))
	for _, r := range removed {
		if claimedRemoved[r.Path] {
			previousOf[r.Path] = r.Previous
		}
	}

	// Rebuild the change set: claimed candidates collapse into a single
	// Moved change keyed by the current path.
	result := changes[:0]
	for i := range changes {
		c := changes[i]
		switch c.Type {
		case models.ChangeRemoved:
			if claimedRemoved[c.Path] {
				continue
			}
		case models.ChangeAdded:
			if p, ok := moves[c.Path]; ok {
				c.Type = models.ChangeMoved
				c.Previous = previousOf[p.removed]
				c.MovedFrom = p.removed
				c.Similarity = p.similarity
			}
		}
		result = append(result, c)
	}
	return result
}
