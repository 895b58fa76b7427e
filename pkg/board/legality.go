package board

// IsAttacked returns true iff sq is attacked by any piece of color by, under the
// position's current occupancy.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.Occupied()

	if PawnAttackboard(by.Opponent(), sq)&p.pieces[by][Pawn] != 0 {
		return true
	}
	if KnightAttackboard(sq)&p.pieces[by][Knight] != 0 {
		return true
	}
	if KingAttackboard(sq)&p.pieces[by][King] != 0 {
		return true
	}
	if bishops := p.pieces[by][Bishop] | p.pieces[by][Queen]; bishops != 0 && BishopAttackboard(occ, sq)&bishops != 0 {
		return true
	}
	if rooks := p.pieces[by][Rook] | p.pieces[by][Queen]; rooks != 0 && RookAttackboard(occ, sq)&rooks != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Opponent())
}

// LegalMoves filters PseudoLegalMoves(c) down to moves that do not leave the
// mover's king attacked, and additionally enforces castling's path-safety
// constraint: the king must be unattacked on its origin, transit, and destination
// squares before the move is made.
func (p *Position) LegalMoves(c Color) []Move {
	pseudo := p.PseudoLegalMoves(c)
	legal := make([]Move, 0, len(pseudo))

	for _, m := range pseudo {
		if m.Kind() == CastlingMove && !p.isCastlingPathSafe(c, m) {
			continue
		}

		u, err := p.Apply(m)
		if err != nil {
			continue
		}
		safe := !p.InCheck(c)
		p.Undo(u)

		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

// Reconcile resolves a context-free candidate move — as produced by ParseMove from a
// protocol move token, which carries no en-passant/castling kind tag — against p's
// legal moves. ok is false if candidate names no legal move in p.
func (p *Position) Reconcile(candidate Move) (Move, bool) {
	promo, isPromo := candidate.Promotion()
	for _, m := range p.LegalMoves(p.Turn()) {
		if m.From() != candidate.From() || m.To() != candidate.To() {
			continue
		}
		mp, mIsPromo := m.Promotion()
		if isPromo != mIsPromo {
			continue
		}
		if isPromo && mp != promo {
			continue
		}
		return m, true
	}
	return NoMove, false
}

// isCastlingPathSafe reports whether the king's origin, transit, and destination
// squares are all unattacked before the castling move is made.
func (p *Position) isCastlingPathSafe(c Color, m Move) bool {
	from, to := m.From(), m.To()
	transit := Square((int(from) + int(to)) / 2)

	enemy := c.Opponent()
	return !p.IsAttacked(from, enemy) && !p.IsAttacked(transit, enemy) && !p.IsAttacked(to, enemy)
}

// IsCheckmate reports whether c's king is attacked and c has no legal move.
func (p *Position) IsCheckmate(c Color) bool {
	return p.InCheck(c) && len(p.LegalMoves(c)) == 0
}

// IsStalemate reports whether c's king is not attacked but c has no legal move.
func (p *Position) IsStalemate(c Color) bool {
	return !p.InCheck(c) && len(p.LegalMoves(c)) == 0
}
