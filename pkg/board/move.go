package board

import "fmt"

// MoveKind tags the four move shapes that need special apply/undo handling. 2 bits.
type MoveKind uint8

const (
	Normal MoveKind = iota
	PromotionMove
	EnPassantMove
	CastlingMove
)

// promotion piece encoding within a Move's 2 promotion bits.
const (
	promoKnight uint16 = iota
	promoBishop
	promoRook
	promoQueen
)

func promoToPiece(p uint16) Piece {
	switch p {
	case promoKnight:
		return Knight
	case promoBishop:
		return Bishop
	case promoRook:
		return Rook
	default:
		return Queen
	}
}

func pieceToPromo(p Piece) uint16 {
	switch p {
	case Knight:
		return promoKnight
	case Bishop:
		return promoBishop
	case Rook:
		return promoRook
	default:
		return promoQueen
	}
}

const (
	fromShift  = 0
	toShift    = 6
	kindShift  = 12
	promoShift = 14

	squareMask = 0x3f
	kindMask   = 0x3
	promoMask  = 0x3
)

// Move is a compact 16-bit encoding of a (not necessarily legal) chess move: a 6-bit
// origin square, a 6-bit destination square, a 2-bit kind tag, and a 2-bit promotion
// piece meaningful only when the kind tag is PromotionMove. Equality is bitwise.
type Move uint16

// NoMove is the zero value, used as a "no move" sentinel (e.g., an empty TT slot).
// It aliases a1a1, which is never a legal move, so it cannot be confused with one.
const NoMove Move = 0

// NewMove constructs a normal (non-promotion, non-en-passant, non-castling) move.
func NewMove(from, to Square) Move {
	return encode(from, to, Normal, 0)
}

// NewPromotionMove constructs a promotion move to the given piece (one of Knight,
// Bishop, Rook, Queen).
func NewPromotionMove(from, to Square, promo Piece) Move {
	return encode(from, to, PromotionMove, pieceToPromo(promo))
}

// NewEnPassantMove constructs an en-passant capture move.
func NewEnPassantMove(from, to Square) Move {
	return encode(from, to, EnPassantMove, 0)
}

// NewCastlingMove constructs a castling move, encoded as the king's own from/to
// squares (e.g., e1g1 for White kingside).
func NewCastlingMove(from, to Square) Move {
	return encode(from, to, CastlingMove, 0)
}

func encode(from, to Square, kind MoveKind, promo uint16) Move {
	return Move(uint16(from)<<fromShift | uint16(to)<<toShift | uint16(kind)<<kindShift | promo<<promoShift)
}

func (m Move) From() Square {
	return Square(uint16(m) >> fromShift & squareMask)
}

func (m Move) To() Square {
	return Square(uint16(m) >> toShift & squareMask)
}

func (m Move) Kind() MoveKind {
	return MoveKind(uint16(m) >> kindShift & kindMask)
}

// Promotion returns the promotion piece and whether this move is a promotion.
func (m Move) Promotion() (Piece, bool) {
	if m.Kind() != PromotionMove {
		return NoPiece, false
	}
	return promoToPiece(uint16(m) >> promoShift & promoMask), true
}

func (m Move) IsZero() bool {
	return m == NoMove
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or
// "a7a8q". The parsed move carries no contextual information (en passant or
// castling); callers reconcile that against a Position with Position.Reconcile.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return NoMove, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q: bad from: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q: bad to: %w", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return NoMove, fmt.Errorf("invalid move %q: bad promotion", str)
		}
		return NewPromotionMove(from, to, promo), nil
	}
	return NewMove(from, to), nil
}

func (m Move) String() string {
	if promo, ok := m.Promotion(); ok {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), promo)
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}

// Undo captures exactly the information needed to reverse Position.Apply: the
// captured piece kind (if any), and the position's irreversible fields as they
// stood before the move. It is a plain value, never a pointer, so that the search's
// per-node recursion stack pays only stack-allocation cost.
type Undo struct {
	Move              Move
	CapturedPiece     Piece // NoPiece if the move was not a capture.
	CastlingBefore    Castling
	EnPassantBefore   Square // meaningful only if EnPassantBeforeOK.
	EnPassantBeforeOK bool
	HalfmoveBefore    int
	FingerprintBefore Fingerprint
}
