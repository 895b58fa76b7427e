package eval

import "github.com/ParkBlake/zugzwang/pkg/board"

const (
	doubledPenalty  Score = -15
	isolatedPenalty Score = -10
	passedBase      Score = 10
	passedPerRank   Score = 5
)

// PawnStructure returns White's pawn-structure balance: doubled/isolated/passed
// bonuses and penalties applied per color and netted, per spec.md §4.5.
func PawnStructure(pos *board.Position) Score {
	return pawnStructureFor(pos, board.White) - pawnStructureFor(pos, board.Black)
}

func pawnStructureFor(pos *board.Position, c board.Color) Score {
	own := pos.Piece(c, board.Pawn)
	enemy := pos.Piece(c.Opponent(), board.Pawn)

	var sum Score
	bb := own
	for bb != board.EmptyBitboard {
		var sq board.Square
		sq, bb = bb.PopLSB()
		f, r := sq.File(), sq.Rank()

		if (own & board.BitFile(f)).PopCount() > 1 {
			sum += doubledPenalty
		}
		if !hasPawnOnAdjacentFile(own, f) {
			sum += isolatedPenalty
		}
		if isPassed(enemy, c, f, r) {
			sum += passedBase + passedPerRank*Score(advancement(c, r))
		}
	}
	return sum
}

func hasPawnOnAdjacentFile(pawns board.Bitboard, f board.File) bool {
	if f > board.FileA && (pawns&board.BitFile(f-1)) != board.EmptyBitboard {
		return true
	}
	if f < board.FileH && (pawns&board.BitFile(f+1)) != board.EmptyBitboard {
		return true
	}
	return false
}

// isPassed reports whether a pawn of color c on (f, r) faces no enemy pawn on its own
// file or either adjacent file, anywhere ahead of it in c's direction of advance.
func isPassed(enemy board.Bitboard, c board.Color, f board.File, r board.Rank) bool {
	var files board.Bitboard
	files = board.BitFile(f)
	if f > board.FileA {
		files |= board.BitFile(f - 1)
	}
	if f < board.FileH {
		files |= board.BitFile(f + 1)
	}

	var ahead board.Bitboard
	if c == board.White {
		for rr := r + 1; rr <= board.Rank8; rr++ {
			ahead |= board.BitRank(rr)
		}
	} else {
		for rr := r; rr > board.ZeroRank; rr-- {
			ahead |= board.BitRank(rr - 1)
		}
	}

	return enemy&files&ahead == board.EmptyBitboard
}

// advancement is the rank distance from the starting rank in the direction of
// promotion: 0 for a pawn still on its home rank, up to 5 just short of promoting.
func advancement(c board.Color, r board.Rank) int {
	if c == board.White {
		return int(r) - int(board.Rank2)
	}
	return int(board.Rank7) - int(r)
}
