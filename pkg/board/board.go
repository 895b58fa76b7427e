// Package board contains chess board representation and move machinery: bitboard
// primitives, magic-hashed sliding-piece attacks, Zobrist fingerprints, pseudo-legal
// and legal move generation, apply/undo transitions, and FEN parsing.
package board

import "fmt"

// Board is a thin mutable wrapper around the single root Position owned by the
// protocol driver for the life of the process. It exists only to give the driver a
// convenient place to apply the moves listed on a `position ... moves` line; the
// search worker never touches a Board — it works directly against a forked
// Position value with Position.Apply/Position.Undo, keeping the per-node cost at
// the value-typed Undo record.
type Board struct {
	pos Position
}

// NewBoard wraps the given position.
func NewBoard(pos Position) *Board {
	return &Board{pos: pos}
}

// Position returns a pointer to the wrapped position, for read-only inspection.
func (b *Board) Position() *Position {
	return &b.pos
}

func (b *Board) Turn() Color {
	return b.pos.turn
}

// Fork returns an independent copy of the current position, suitable for handing
// to a search worker. Position contains no pointers, so this is a plain value copy.
func (b *Board) Fork() Position {
	return b.pos
}

// PushMove applies m permanently to the wrapped position. Returns an error if m is
// not legal in the current position.
func (b *Board) PushMove(m Move) error {
	legal := false
	for _, lm := range b.pos.LegalMoves(b.pos.turn) {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("illegal move: %v", m)
	}
	_, err := b.pos.Apply(m)
	return err
}

func (b *Board) String() string {
	return b.pos.String()
}
