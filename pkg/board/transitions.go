package board

import "fmt"

// castlingClearMask maps a square to the castling rights that are permanently lost
// when a king or rook departs from or is captured on that square.
func castlingClearMask(sq Square) Castling {
	if right, ok := RookCorner(sq); ok {
		return right
	}
	switch sq {
	case E1:
		return KingRights(White)
	case E8:
		return KingRights(Black)
	default:
		return 0
	}
}

// Apply mutates the position by playing m, which must be pseudo-legal (see
// PseudoLegalMoves), and returns an Undo sufficient to reverse the transition.
// It fails only on internal inconsistency (no piece of the mover's color at the
// origin square) — callers are expected to have generated m from this position.
func (p *Position) Apply(m Move) (Undo, error) {
	from, to := m.From(), m.To()
	turn := p.turn

	c, piece, ok := p.Square(from)
	if !ok || c != turn {
		return Undo{}, fmt.Errorf("apply %v: no %v piece at %v", m, turn, from)
	}

	u := Undo{
		Move:              m,
		CapturedPiece:     NoPiece,
		CastlingBefore:    p.castling,
		EnPassantBefore:   p.ep,
		EnPassantBeforeOK: p.epOK,
		HalfmoveBefore:    p.halfmove,
		FingerprintBefore: p.fingerprint,
	}

	resultPiece := piece
	isCapture := false
	isPawnMove := piece == Pawn

	switch m.Kind() {
	case EnPassantMove:
		capSq := NewSquare(to.File(), from.Rank())
		u.CapturedPiece = Pawn
		isCapture = true

		p.clear(turn.Opponent(), Pawn, capSq)
		p.fingerprint ^= pieceKey(turn.Opponent(), Pawn, capSq)

	case CastlingMove:
		rookFrom, rookTo := castlingRookSquares(turn, to)
		p.clear(turn, Rook, rookFrom)
		p.set(turn, Rook, rookTo)
		p.fingerprint ^= pieceKey(turn, Rook, rookFrom) ^ pieceKey(turn, Rook, rookTo)

	default:
		if oc, op, ok := p.Square(to); ok {
			u.CapturedPiece = op
			isCapture = true
			p.clear(oc, op, to)
			p.fingerprint ^= pieceKey(oc, op, to)
		}
		if promo, ok := m.Promotion(); ok {
			resultPiece = promo
		}
	}

	p.clear(turn, piece, from)
	p.set(turn, resultPiece, to)
	p.fingerprint ^= pieceKey(turn, piece, from) ^ pieceKey(turn, resultPiece, to)

	// Castling rights: intersect away any right tied to the origin, destination,
	// or a rook corner captured on.
	newCastling := p.castling &^ (castlingClearMask(from) | castlingClearMask(to))
	p.fingerprint ^= castlingKey(p.castling) ^ castlingKey(newCastling)
	p.castling = newCastling

	// En-passant target: set iff this move was a pawn double push.
	newEP, newEPOK := ZeroSquare, false
	if isPawnMove && absRankDiff(from, to) == 2 {
		newEP, newEPOK = Square((int(from)+int(to))/2), true
	}
	if p.epOK {
		p.fingerprint ^= enPassantKey(p.ep.File())
	}
	if newEPOK {
		p.fingerprint ^= enPassantKey(newEP.File())
	}
	p.ep, p.epOK = newEP, newEPOK

	if isPawnMove || isCapture {
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	if turn == Black {
		p.fullmove++
	}

	p.turn = turn.Opponent()
	p.fingerprint ^= zobrist.blackToMove

	return u, nil
}

// Undo reverses a prior Apply, given the Undo it produced. The resulting position
// is bit-identical, including the fingerprint, to the position before Apply.
func (p *Position) Undo(u Undo) {
	m := u.Move
	from, to := m.From(), m.To()
	turn := p.turn.Opponent() // the color that made the move being undone

	_, resultPiece, _ := p.Square(to)
	originalPiece := resultPiece
	if _, ok := m.Promotion(); ok {
		originalPiece = Pawn
	}

	p.clear(turn, resultPiece, to)
	p.set(turn, originalPiece, from)

	switch m.Kind() {
	case EnPassantMove:
		capSq := NewSquare(to.File(), from.Rank())
		p.set(turn.Opponent(), Pawn, capSq)

	case CastlingMove:
		rookFrom, rookTo := castlingRookSquares(turn, to)
		p.clear(turn, Rook, rookTo)
		p.set(turn, Rook, rookFrom)

	default:
		if u.CapturedPiece != NoPiece {
			p.set(turn.Opponent(), u.CapturedPiece, to)
		}
	}

	p.castling = u.CastlingBefore
	p.ep, p.epOK = u.EnPassantBefore, u.EnPassantBeforeOK
	p.halfmove = u.HalfmoveBefore
	if turn == Black {
		p.fullmove--
	}
	p.turn = turn
	p.fingerprint = u.FingerprintBefore
}

// castlingRookSquares returns the rook's from/to squares for a castling move by
// color c landing the king on kingTo.
func castlingRookSquares(c Color, kingTo Square) (from, to Square) {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	if kingTo.File() == FileG {
		return NewSquare(FileH, rank), NewSquare(FileF, rank)
	}
	return NewSquare(FileA, rank), NewSquare(FileD, rank)
}

func absRankDiff(a, b Square) int {
	d := int(a.Rank()) - int(b.Rank())
	if d < 0 {
		return -d
	}
	return d
}
