// Package eval contains the static position evaluator: a weighted sum of material,
// piece-square, pawn-structure, king-safety, and mobility terms.
package eval

import "github.com/ParkBlake/zugzwang/pkg/board"

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns from the side-to-move's
	// perspective: positive means the side to move stands better.
	Evaluate(pos *board.Position) Score
}

// Weights, expressed as the fixed fractions spec.md §4.5 gives, pre-scaled to
// fixed-point integer arithmetic (x1000) to keep the evaluator free of floats.
const (
	materialWeight   = 1000
	pstWeight        = 200
	pawnWeight       = 150
	kingSafetyWeight = 150
	mobilityWeight   = 100
)

// Weighted is the canonical evaluator: each term is computed from White's
// perspective, combined by the spec's fixed weights, rounded to a whole centipawn,
// then signed by the side to move.
type Weighted struct {
	Noise Random
}

func (w Weighted) Evaluate(pos *board.Position) Score {
	sum := materialWeight*int64(Material(pos)) +
		pstWeight*int64(PST(pos)) +
		pawnWeight*int64(PawnStructure(pos)) +
		kingSafetyWeight*int64(KingSafety(pos)) +
		mobilityWeight*int64(Mobility(pos))

	score := Score(round(sum, 1000)) + w.Noise.Noise()
	return Crop(score * Score(pos.Turn().Unit()))
}

// round divides n by scale, rounding half away from zero.
func round(n, scale int64) int64 {
	if n >= 0 {
		return (n + scale/2) / scale
	}
	return -((-n + scale/2) / scale)
}
