// Package diff implements the snapshot comparison engine: it classifies
// every identity path of two snapshots into exactly one change category,
// detects moves via similarity scoring, rolls nested changes up into
// directory modification signals and produces a deterministic result with
// aggregate statistics. The engine performs no I/O and holds no state
// beyond its immutable options; a single Engine value may be shared
// read-only across goroutines.
package diff

import (
	"github.com/sdejongh/treediff/pkg/models"
)

// Engine compares two snapshots according to a fixed set of options
type Engine struct {
	opts models.DiffOptions
}

// NewEngine creates a diff engine with the given options
func NewEngine(opts models.DiffOptions) *Engine {
	return &Engine{opts: opts}
}

// Options returns the options the engine was created with
func (e *Engine) Options() models.DiffOptions {
	return e.opts
}

// Compare classifies every identity path present in either snapshot and
// returns the complete diff result. The computation is total: given two
// record collections it always produces a well-formed result, degenerate
// inputs included. The passed metadata is echoed on the result with the
// engine options filled in.
func (e *Engine) Compare(previous, current []models.Entry, metadata models.DiffMetadata) models.DiffResult {
	prevIdx := buildIndex(previous, e.opts.MaxDepth)
	currIdx := buildIndex(current, e.opts.MaxDepth)

	onlyPrevious, onlyCurrent, inBoth := pathSets(prevIdx, currIdx)
	changes := classify(prevIdx, currIdx, onlyPrevious, onlyCurrent, inBoth)

	if e.opts.DetectMoves && !e.opts.IgnoreMoves {
		changes = detectMoves(changes, e.opts.MoveThreshold)
	}

	rollup(changes)

	// The summary folds over the flat change set, where every identity
	// appears exactly once; nesting below only rearranges the same
	// changes for output.
	var summary models.DiffSummary
	for i := range changes {
		summary.Record(&changes[i])
	}

	metadata.Options = e.opts

	return models.DiffResult{
		Changes:  buildTree(changes, e.opts),
		Summary:  summary,
		Metadata: metadata,
	}
}
