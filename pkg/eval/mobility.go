package eval

import "github.com/ParkBlake/zugzwang/pkg/board"

// Mobility returns the difference in pseudo-legal move counts between White and
// Black, per spec.md §4.5.
func Mobility(pos *board.Position) Score {
	white := len(pos.PseudoLegalMoves(board.White))
	black := len(pos.PseudoLegalMoves(board.Black))
	return Score(white - black)
}
