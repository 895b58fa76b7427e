package eval

import "github.com/ParkBlake/zugzwang/pkg/board"

const (
	shieldPerPawn   Score = 6
	openFilePenalty Score = -20
	semiOpenPenalty Score = -10
)

// KingSafety returns White's king-safety balance: pawn shield bonus plus open/
// semi-open file penalties on the king's own file and its two neighbors, per
// spec.md §4.5.
func KingSafety(pos *board.Position) Score {
	return kingSafetyFor(pos, board.White) - kingSafetyFor(pos, board.Black)
}

func kingSafetyFor(pos *board.Position, c board.Color) Score {
	kingSq := pos.KingSquare(c)
	f := kingSq.File()

	var sum Score
	sum += pawnShield(pos, c, kingSq)

	var anyOpen, anySemiOpen bool
	for _, ff := range kingFiles(f) {
		own := pos.Piece(c, board.Pawn) & board.BitFile(ff)
		enemy := pos.Piece(c.Opponent(), board.Pawn) & board.BitFile(ff)

		if enemy == board.EmptyBitboard {
			anyOpen = true
		} else if own == board.EmptyBitboard {
			anySemiOpen = true
		}
	}
	if anyOpen {
		sum += openFilePenalty
	}
	if anySemiOpen {
		sum += semiOpenPenalty
	}
	return sum
}

// kingFiles returns f and its in-bounds file neighbors.
func kingFiles(f board.File) []board.File {
	files := []board.File{f}
	if f > board.FileA {
		files = append(files, f-1)
	}
	if f < board.FileH {
		files = append(files, f+1)
	}
	return files
}

// pawnShield rewards own pawns on the king's file and its neighbors within two ranks
// ahead, weighted by rank distance (closer is worth more) and file distance (the
// king's own file is worth more than a neighbor's).
func pawnShield(pos *board.Position, c board.Color, kingSq board.Square) Score {
	own := pos.Piece(c, board.Pawn)
	kf, kr := int(kingSq.File()), int(kingSq.Rank())

	var sum Score
	bb := own
	for bb != board.EmptyBitboard {
		var sq board.Square
		sq, bb = bb.PopLSB()
		f, r := int(sq.File()), int(sq.Rank())

		fileDist := abs(f - kf)
		if fileDist > 1 {
			continue
		}

		// forward is the pawn's rank distance ahead of the king in c's promotion
		// direction; a shield pawn sits strictly ahead, within two ranks.
		forward := r - kr
		if c == board.Black {
			forward = kr - r
		}
		if forward < 1 || forward > 2 {
			continue
		}
		rankDist := forward

		weight := Score(3 - rankDist)
		if fileDist == 0 {
			weight *= 2
		}
		sum += shieldPerPawn * weight / 3
	}
	return sum
}
