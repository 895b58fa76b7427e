package board_test

import (
	"testing"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		bb       board.Bitboard
		expected int
	}{
		{board.EmptyBitboard, 0},
		{board.BitMask(board.G4), 1},
		{board.BitMask(board.G3) | board.BitMask(board.G4), 2},
		{board.FullBitboard, 64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.bb.PopCount())
	}
}

func TestBitboardPopLSB(t *testing.T) {
	bb := board.BitMask(board.C2) | board.BitMask(board.G4)

	sq, rest := bb.PopLSB()
	assert.Equal(t, board.C2, sq)
	assert.Equal(t, board.BitMask(board.G4), rest)

	sq, rest = rest.PopLSB()
	assert.Equal(t, board.G4, sq)
	assert.Equal(t, board.EmptyBitboard, rest)
}

func TestBitboardString(t *testing.T) {
	tests := []struct {
		bb       board.Bitboard
		expected string
	}{
		{board.EmptyBitboard, "--------/--------/--------/--------/--------/--------/--------/--------"},
		{board.BitMask(board.A1), "--------/--------/--------/--------/--------/--------/--------/X-------"},
		{board.BitMask(board.H8), "-------X/--------/--------/--------/--------/--------/--------/--------"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.bb.String())
	}
}

func TestKingAttackboard(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected []board.Square
	}{
		{board.A1, []board.Square{board.A2, board.B2, board.B1}},
		{board.H1, []board.Square{board.H2, board.G2, board.G1}},
		{board.D4, []board.Square{board.C3, board.D3, board.E3, board.C4, board.E4, board.C5, board.D5, board.E5}},
	}
	for _, tt := range tests {
		actual := board.KingAttackboard(tt.sq)
		assert.Equal(t, len(tt.expected), actual.PopCount(), "sq=%v", tt.sq)
		for _, sq := range tt.expected {
			assert.True(t, actual.IsSet(sq), "expected %v attacked from %v", sq, tt.sq)
		}
	}
}

func TestKnightAttackboard(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected []board.Square
	}{
		{board.A1, []board.Square{board.B3, board.C2}},
		{board.D4, []board.Square{board.B3, board.B5, board.C2, board.C6, board.E2, board.E6, board.F3, board.F5}},
	}
	for _, tt := range tests {
		actual := board.KnightAttackboard(tt.sq)
		assert.Equal(t, len(tt.expected), actual.PopCount(), "sq=%v", tt.sq)
		for _, sq := range tt.expected {
			assert.True(t, actual.IsSet(sq), "expected %v attacked from %v", sq, tt.sq)
		}
	}
}

func TestRookAttackboardOpenFile(t *testing.T) {
	actual := board.RookAttackboard(board.EmptyBitboard, board.A1)
	assert.Equal(t, 14, actual.PopCount())
	for f := board.FileB; f <= board.FileH; f++ {
		assert.True(t, actual.IsSet(board.NewSquare(f, board.Rank1)))
	}
	for r := board.Rank2; r <= board.Rank8; r++ {
		assert.True(t, actual.IsSet(board.NewSquare(board.FileA, r)))
	}
}

func TestRookAttackboardBlocked(t *testing.T) {
	occ := board.BitMask(board.A3)
	actual := board.RookAttackboard(occ, board.A1)

	assert.True(t, actual.IsSet(board.A2))
	assert.True(t, actual.IsSet(board.A3)) // the blocker itself is a valid target (capture).
	assert.False(t, actual.IsSet(board.A4))
	assert.False(t, actual.IsSet(board.A5))
}

func TestBishopAttackboard(t *testing.T) {
	actual := board.BishopAttackboard(board.EmptyBitboard, board.D4)
	expected := []board.Square{board.A1, board.B2, board.C3, board.E5, board.F6, board.G7, board.H8, board.A7, board.B6, board.C5, board.E3, board.F2, board.G1}
	assert.Equal(t, len(expected), actual.PopCount())
	for _, sq := range expected {
		assert.True(t, actual.IsSet(sq))
	}
}

func TestQueenAttackboardIsUnionOfRookAndBishop(t *testing.T) {
	occ := board.BitMask(board.D6) | board.BitMask(board.B4)
	expected := board.RookAttackboard(occ, board.D4) | board.BishopAttackboard(occ, board.D4)
	assert.Equal(t, expected, board.QueenAttackboard(occ, board.D4))
}

func TestPawnAttackboard(t *testing.T) {
	white := board.PawnAttackboard(board.White, board.E4)
	assert.True(t, white.IsSet(board.D5))
	assert.True(t, white.IsSet(board.F5))
	assert.Equal(t, 2, white.PopCount())

	black := board.PawnAttackboard(board.Black, board.E4)
	assert.True(t, black.IsSet(board.D3))
	assert.True(t, black.IsSet(board.F3))
	assert.Equal(t, 2, black.PopCount())
}
