package eval

import "github.com/ParkBlake/zugzwang/pkg/board"

// Material returns White's material balance: the sum of each piece kind's nominal
// centipawn value times White's population minus Black's, per spec.md §4.5. Positive
// favors White.
func Material(pos *board.Position) Score {
	var sum int32
	for pc := board.ZeroPiece; pc < board.NumPieces; pc++ {
		diff := pos.Piece(board.White, pc).PopCount() - pos.Piece(board.Black, pc).PopCount()
		sum += int32(diff) * pc.Value()
	}
	return Score(sum)
}

// NominalValueGain is the material swing (in centipawns) of playing m, used by search
// move ordering (MVV-LVA) rather than by the static evaluator itself.
func NominalValueGain(pos *board.Position, m board.Move) Score {
	switch m.Kind() {
	case board.EnPassantMove:
		return Score(board.Pawn.Value())
	case board.PromotionMove:
		promo, _ := m.Promotion()
		gain := Score(promo.Value() - board.Pawn.Value())
		if _, captured, ok := pos.Square(m.To()); ok {
			gain += Score(captured.Value())
		}
		return gain
	default:
		if _, captured, ok := pos.Square(m.To()); ok {
			return Score(captured.Value())
		}
		return 0
	}
}
