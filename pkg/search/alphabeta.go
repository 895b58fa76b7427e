package search

import (
	"context"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/eval"
)

// QuietSearch resolves a depth-0 node. Quiescence search is the usual implementation:
// a single static evaluation at a node mid capture-exchange can badly misjudge the
// position, so the horizon is extended along capturing lines until it stabilizes.
type QuietSearch interface {
	QuietSearch(ctx context.Context, pos *board.Position, alpha, beta eval.Score) (uint64, eval.Score)
}

// AlphaBeta is a full-width negamax search with alpha-beta pruning and a transposition
// table, per spec.md §4.7.
type AlphaBeta struct {
	Eval QuietSearch
}

func (ab AlphaBeta) Search(ctx context.Context, sctx *Context, pos *board.Position, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runAlphaBeta{eval: ab.Eval, tt: sctx.TT}
	score, pv := run.search(ctx, pos, depth, sctx.Alpha, sctx.Beta)
	if isDone(ctx) {
		return run.nodes, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runAlphaBeta struct {
	eval  QuietSearch
	tt    *TranspositionTable
	nodes uint64
}

// search returns the score for pos's side to move under the window [alpha, beta],
// expressed from that side's own perspective (negamax convention: child windows are
// negated and swapped).
func (r *runAlphaBeta) search(ctx context.Context, pos *board.Position, depth int, alpha, beta eval.Score) (eval.Score, []board.Move) {
	if isDone(ctx) {
		return eval.InvalidScore, nil
	}

	alphaOrig := alpha
	fp := pos.Fingerprint()

	var ttMove board.Move
	if r.tt != nil {
		if e, ok := r.tt.Probe(fp); ok {
			ttMove = e.Move
			if e.Depth >= depth {
				switch e.Bound {
				case ExactBound:
					return e.Score, firstOrNone(e.Move)
				case LowerBound:
					alpha = eval.Max(alpha, e.Score)
				case UpperBound:
					beta = eval.Min(beta, e.Score)
				}
				if alpha >= beta {
					return e.Score, firstOrNone(e.Move)
				}
			}
		}
	}

	if depth == 0 {
		nodes, score := r.eval.QuietSearch(ctx, pos, alpha, beta)
		r.nodes += nodes
		return score, nil
	}

	r.nodes++

	moves := pos.LegalMoves(pos.Turn())
	if len(moves) == 0 {
		if pos.InCheck(pos.Turn()) {
			return eval.Mated(0), nil
		}
		return eval.ZeroScore, nil
	}

	ordered := board.NewMoveList(moves, board.First(ttMove, MVVLVA(pos)))

	bestScore := eval.NegInfScore
	var best []board.Move

	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}

		u, err := pos.Apply(m)
		if err != nil {
			continue
		}
		score, line := r.search(ctx, pos, depth-1, -beta, -alpha)
		pos.Undo(u)

		if isDone(ctx) {
			return eval.InvalidScore, nil
		}
		score = score.IncrementMateDistance().Negate()

		if score > bestScore {
			bestScore = score
			best = append([]board.Move{m}, line...)
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break // beta cutoff: fail-high
		}
	}

	if r.tt != nil {
		bound := ExactBound
		switch {
		case bestScore <= alphaOrig:
			bound = UpperBound
		case bestScore >= beta:
			bound = LowerBound
		}
		var bm board.Move
		if len(best) > 0 {
			bm = best[0]
		}
		r.tt.Store(fp, bound, depth, bestScore, bm)
	}

	return bestScore, best
}

// firstOrNone wraps m in a single-element slice, or returns nil if m is the zero move.
func firstOrNone(m board.Move) []board.Move {
	if m.IsZero() {
		return nil
	}
	return []board.Move{m}
}
