package eval

import "github.com/ParkBlake/zugzwang/pkg/board"

// pst holds, per piece kind, a 64-entry table of centipawn bonuses from White's
// perspective, indexed by square (rank*8+file). Built once at init() from a small
// per-kind shape function rather than transcribed by hand, to avoid silently
// mistyping any of the 384 entries.
var pst [board.NumPieces][board.NumSquares]Score

func init() {
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		f, r := int(sq.File()), int(sq.Rank())
		centerFile := centerDistance(f)
		centerRank := centerDistance(r)

		pst[board.Pawn][sq] = Score(4 * r * (7 - centerFile))
		pst[board.Knight][sq] = Score(10 * (3 - centerFile - centerRank))
		pst[board.Bishop][sq] = Score(5 * (3 - centerFile - centerRank))
		pst[board.Rook][sq] = Score(3*(3-centerFile) + rookRankBonus(r))
		pst[board.Queen][sq] = Score(2 * (3 - centerFile - centerRank))
		pst[board.King][sq] = Score(8 * (centerFile + centerRank) - 6*r)
	}
}

// centerDistance is a square's file or rank distance from the nearer of the board's
// two central indices (3 or 4), 0 at the center, 3 at the edge.
func centerDistance(v int) int {
	d3, d4 := abs(v-3), abs(v-4)
	if d3 < d4 {
		return d3
	}
	return d4
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rookRankBonus rewards rooks on the seventh rank (White's perspective), a classic
// positional bonus for restricting the enemy king and attacking undefended pawns.
func rookRankBonus(rank int) int {
	if rank == int(board.Rank7) {
		return 15
	}
	return 0
}

// PST returns White's piece-square-table balance: for each occupied square, the
// table entry for that square and kind, signed by color (White's own table value
// added, Black's table value — looked up on the vertically mirrored square —
// subtracted), per spec.md §4.5.
func PST(pos *board.Position) Score {
	var sum Score
	for pc := board.ZeroPiece; pc < board.NumPieces; pc++ {
		bb := pos.Piece(board.White, pc)
		for bb != board.EmptyBitboard {
			var sq board.Square
			sq, bb = bb.PopLSB()
			sum += pst[pc][sq]
		}

		bb = pos.Piece(board.Black, pc)
		for bb != board.EmptyBitboard {
			var sq board.Square
			sq, bb = bb.PopLSB()
			sum -= pst[pc][sq.Mirror()]
		}
	}
	return sum
}
