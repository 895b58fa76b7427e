package search

import (
	"context"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/eval"
)

// Quiescence extends search along capturing lines past the full-width horizon, per
// spec.md §4.7: a position should not be judged by a static evaluation taken mid
// capture-exchange.
type Quiescence struct {
	Eval eval.Evaluator
}

func (q Quiescence) QuietSearch(ctx context.Context, pos *board.Position, alpha, beta eval.Score) (uint64, eval.Score) {
	run := &runQuiescence{eval: q.Eval}
	score := run.search(ctx, pos, alpha, beta)
	return run.nodes, score
}

type runQuiescence struct {
	eval  eval.Evaluator
	nodes uint64
}

// search returns the stand-pat-bounded score for pos's side to move under [alpha, beta].
func (r *runQuiescence) search(ctx context.Context, pos *board.Position, alpha, beta eval.Score) eval.Score {
	if isDone(ctx) {
		return eval.InvalidScore
	}
	r.nodes++

	standPat := r.eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := capturesOf(pos.LegalMoves(pos.Turn()), pos)
	ordered := board.NewMoveList(captures, MVVLVA(pos))

	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}

		u, err := pos.Apply(m)
		if err != nil {
			continue
		}
		score := r.search(ctx, pos, -beta, -alpha)
		pos.Undo(u)

		if isDone(ctx) {
			return eval.InvalidScore
		}
		score = score.IncrementMateDistance().Negate()

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return alpha
}

// capturesOf filters moves down to captures, including en passant.
func capturesOf(moves []board.Move, pos *board.Position) []board.Move {
	out := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.Kind() == board.EnPassantMove {
			out = append(out, m)
			continue
		}
		if _, _, ok := pos.Square(m.To()); ok {
			out = append(out, m)
		}
	}
	return out
}
