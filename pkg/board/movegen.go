package board

// PseudoLegalMoves enumerates every pseudo-legal move for the given color: moves
// that respect piece movement rules and do not capture the mover's own pieces, but
// may leave the mover's own king attacked. Ordering is unspecified; the result is a
// set (no duplicates).
func (p *Position) PseudoLegalMoves(c Color) []Move {
	var moves []Move
	own, occ := p.OccupiedBy(c), p.Occupied()
	notOwn := ^own

	moves = p.genPawnMoves(c, moves)

	addTargets := func(from Square, targets Bitboard) {
		for targets != EmptyBitboard {
			var to Square
			to, targets = targets.PopLSB()
			moves = append(moves, NewMove(from, to))
		}
	}

	knights := p.pieces[c][Knight]
	for knights != EmptyBitboard {
		var from Square
		from, knights = knights.PopLSB()
		addTargets(from, KnightAttackboard(from)&notOwn)
	}

	bishops := p.pieces[c][Bishop]
	for bishops != EmptyBitboard {
		var from Square
		from, bishops = bishops.PopLSB()
		addTargets(from, BishopAttackboard(occ, from)&notOwn)
	}

	rooks := p.pieces[c][Rook]
	for rooks != EmptyBitboard {
		var from Square
		from, rooks = rooks.PopLSB()
		addTargets(from, RookAttackboard(occ, from)&notOwn)
	}

	queens := p.pieces[c][Queen]
	for queens != EmptyBitboard {
		var from Square
		from, queens = queens.PopLSB()
		addTargets(from, QueenAttackboard(occ, from)&notOwn)
	}

	kingFrom := p.KingSquare(c)
	addTargets(kingFrom, KingAttackboard(kingFrom)&notOwn)
	moves = p.genCastlingMoves(c, moves)

	return moves
}

var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func (p *Position) genPawnMoves(c Color, moves []Move) []Move {
	pawns := p.pieces[c][Pawn]
	occ := p.Occupied()
	enemy := p.OccupiedBy(c.Opponent())
	promoRank := PawnPromotionRank(c)

	emitTo := func(from, to Square) {
		if BitMask(to)&promoRank != 0 {
			for _, promo := range promotionPieces {
				moves = append(moves, NewPromotionMove(from, to, promo))
			}
		} else {
			moves = append(moves, NewMove(from, to))
		}
	}

	rem := pawns
	for rem != EmptyBitboard {
		var from Square
		from, rem = rem.PopLSB()
		single := BitMask(from)

		step := PawnMoveboard(occ, c, single)
		if step != EmptyBitboard {
			to, _ := step.PopLSB()
			emitTo(from, to)

			if single&PawnStartRank(c) != 0 {
				jump := PawnMoveboard(occ, c, step) & PawnJumpRank(c)
				if jump != EmptyBitboard {
					to, _ := jump.PopLSB()
					moves = append(moves, NewMove(from, to))
				}
			}
		}

		captures := PawnCaptureboard(c, single) & enemy
		for captures != EmptyBitboard {
			var to Square
			to, captures = captures.PopLSB()
			emitTo(from, to)
		}

		if ep, ok := p.EnPassant(); ok {
			if PawnCaptureboard(c, single)&BitMask(ep) != 0 {
				moves = append(moves, NewEnPassantMove(from, ep))
			}
		}
	}
	return moves
}

func (p *Position) genCastlingMoves(c Color, moves []Move) []Move {
	occ := p.Occupied()
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	kingFrom := NewSquare(FileE, rank)

	kingside, queenside := WhiteKingSideCastle, WhiteQueenSideCastle
	if c == Black {
		kingside, queenside = BlackKingSideCastle, BlackQueenSideCastle
	}

	if p.castling.IsAllowed(kingside) {
		f, g := NewSquare(FileF, rank), NewSquare(FileG, rank)
		if !occ.IsSet(f) && !occ.IsSet(g) {
			moves = append(moves, NewCastlingMove(kingFrom, g))
		}
	}
	if p.castling.IsAllowed(queenside) {
		b, cc, d := NewSquare(FileB, rank), NewSquare(FileC, rank), NewSquare(FileD, rank)
		if !occ.IsSet(b) && !occ.IsSet(cc) && !occ.IsSet(d) {
			moves = append(moves, NewCastlingMove(kingFrom, cc))
		}
	}
	return moves
}
