package search

import (
	"context"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/eval"
)

// Naive is an unpruned full-width negamax search: it explores every legal move at
// every node rather than cutting off on an alpha-beta bound. It exists to cross-check
// AlphaBeta's fail-soft result at small fixed depths (spec.md §8), not for production
// play — its node count grows far faster with depth.
type Naive struct {
	Eval eval.Evaluator
}

func (n Naive) Search(ctx context.Context, sctx *Context, pos *board.Position, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runNaive{eval: n.Eval}
	score, pv := run.search(ctx, pos, depth)
	if isDone(ctx) {
		return run.nodes, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runNaive struct {
	eval  eval.Evaluator
	nodes uint64
}

func (r *runNaive) search(ctx context.Context, pos *board.Position, depth int) (eval.Score, []board.Move) {
	if isDone(ctx) {
		return eval.InvalidScore, nil
	}
	if depth == 0 {
		r.nodes++
		return r.eval.Evaluate(pos), nil
	}

	moves := pos.LegalMoves(pos.Turn())
	if len(moves) == 0 {
		r.nodes++
		if pos.InCheck(pos.Turn()) {
			return eval.Mated(0), nil
		}
		return eval.ZeroScore, nil
	}

	best := eval.NegInfScore
	var pv []board.Move

	for _, m := range moves {
		u, err := pos.Apply(m)
		if err != nil {
			continue
		}
		score, line := r.search(ctx, pos, depth-1)
		pos.Undo(u)

		score = score.IncrementMateDistance().Negate()
		if score > best {
			best = score
			pv = append([]board.Move{m}, line...)
		}
	}
	return best, pv
}
