// Package search implements negamax with alpha-beta pruning, quiescence search, and a
// transposition table, per spec.md §4.6-4.7. A Search owns its own TranspositionTable
// and works against a forked board.Position value; it never touches shared state other
// than the cancellation context it is given.
package search

import (
	"context"
	"errors"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/eval"
)

// ErrHalted is returned when a search is cancelled via its context before completing.
var ErrHalted = errors.New("search halted")

// Search computes the best line from pos to the given remaining depth.
type Search interface {
	// Search returns the node count, score (from the side-to-move's perspective), and
	// principal variation for a full-width search of pos to depth. Returns ErrHalted if
	// ctx is cancelled before the search completes; the caller discards the partial
	// result rather than storing it.
	Search(ctx context.Context, sctx *Context, pos *board.Position, depth int) (uint64, eval.Score, []board.Move, error)
}

// Context carries the state threaded through one search call's recursion: the
// transposition table it probes and stores into, and the alpha-beta window at the root.
// Evaluation noise, if wanted, is configured once on the leaf evaluator (eval.Weighted)
// rather than threaded per call.
type Context struct {
	Alpha, Beta eval.Score
	TT          *TranspositionTable
}

// isDone reports whether ctx has been cancelled.
func isDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
