package board_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPositionPseudoLegalMoveCount(t *testing.T) {
	pos := board.NewInitialPosition()
	moves := pos.PseudoLegalMoves(board.White)
	assert.Equal(t, 20, len(moves))
}

func TestPseudoLegalPawnMoves(t *testing.T) {
	t.Run("push and jump", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.E8, Color: board.Black, Piece: board.King},
			{Square: board.E2, Color: board.White, Piece: board.Pawn},
		}, board.White, 0, board.ZeroSquare, false, 0, 1)
		require.NoError(t, err)

		moves := pos.PseudoLegalMoves(board.White)
		assert.Contains(t, printMoves(moves), "e2e3")
		assert.Contains(t, printMoves(moves), "e2e4")
	})

	t.Run("blocked jump", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.E8, Color: board.Black, Piece: board.King},
			{Square: board.E2, Color: board.White, Piece: board.Pawn},
			{Square: board.E3, Color: board.Black, Piece: board.Knight},
		}, board.White, 0, board.ZeroSquare, false, 0, 1)
		require.NoError(t, err)

		moves := printMoves(pos.PseudoLegalMoves(board.White))
		assert.NotContains(t, moves, "e2e3")
		assert.NotContains(t, moves, "e2e4")
	})

	t.Run("capture", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.E8, Color: board.Black, Piece: board.King},
			{Square: board.E4, Color: board.White, Piece: board.Pawn},
			{Square: board.D5, Color: board.Black, Piece: board.Knight},
		}, board.White, 0, board.ZeroSquare, false, 0, 1)
		require.NoError(t, err)

		assert.Contains(t, printMoves(pos.PseudoLegalMoves(board.White)), "e4d5")
	})

	t.Run("promotion", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.E8, Color: board.Black, Piece: board.King},
			{Square: board.D7, Color: board.White, Piece: board.Pawn},
		}, board.White, 0, board.ZeroSquare, false, 0, 1)
		require.NoError(t, err)

		moves := printMoves(pos.PseudoLegalMoves(board.White))
		for _, want := range []string{"d7d8q", "d7d8r", "d7d8b", "d7d8n"} {
			assert.Contains(t, moves, want)
		}
	})

	t.Run("en passant", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.E8, Color: board.Black, Piece: board.King},
			{Square: board.C4, Color: board.Black, Piece: board.Pawn},
			{Square: board.D4, Color: board.White, Piece: board.Pawn},
		}, board.Black, 0, board.D3, true, 0, 1)
		require.NoError(t, err)

		assert.Contains(t, printMoves(pos.PseudoLegalMoves(board.Black)), "c4d3")
	})
}

func TestPseudoLegalCastling(t *testing.T) {
	t.Run("full rights, clear path", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.H1, Color: board.White, Piece: board.Rook},
			{Square: board.A1, Color: board.White, Piece: board.Rook},
			{Square: board.E8, Color: board.Black, Piece: board.King},
		}, board.White, board.FullCastlingRights, board.ZeroSquare, false, 0, 1)
		require.NoError(t, err)

		moves := printMoves(pos.PseudoLegalMoves(board.White))
		assert.Contains(t, moves, "e1g1")
		assert.Contains(t, moves, "e1c1")
	})

	t.Run("obstructed path disables kingside only", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E8, Color: board.Black, Piece: board.King},
			{Square: board.H8, Color: board.Black, Piece: board.Rook},
			{Square: board.G8, Color: board.White, Piece: board.Bishop},
			{Square: board.A8, Color: board.Black, Piece: board.Rook},
			{Square: board.E1, Color: board.White, Piece: board.King},
		}, board.Black, board.FullCastlingRights, board.ZeroSquare, false, 0, 1)
		require.NoError(t, err)

		moves := printMoves(pos.PseudoLegalMoves(board.Black))
		assert.NotContains(t, moves, "e8g8")
		assert.Contains(t, moves, "e8c8")
	})

	t.Run("no rights means no castling move", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.H1, Color: board.White, Piece: board.Rook},
			{Square: board.A1, Color: board.White, Piece: board.Rook},
			{Square: board.E8, Color: board.Black, Piece: board.King},
		}, board.White, 0, board.ZeroSquare, false, 0, 1)
		require.NoError(t, err)

		moves := printMoves(pos.PseudoLegalMoves(board.White))
		assert.NotContains(t, moves, "e1g1")
		assert.NotContains(t, moves, "e1c1")
	})
}

func TestApplyUndoRoundTrip(t *testing.T) {
	pos := board.NewInitialPosition()
	before := pos

	for _, str := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		m, err := board.ParseMove(str)
		require.NoError(t, err)

		u, err := pos.Apply(m)
		require.NoError(t, err)
		pos.Undo(u)
		assert.Equal(t, before, pos, "apply/undo of %v must round-trip exactly", str)

		_, err = pos.Apply(m)
		require.NoError(t, err)
		before = pos
	}
}

func TestApplyFingerprintDiffersAfterMove(t *testing.T) {
	pos := board.NewInitialPosition()
	fp0 := pos.Fingerprint()

	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	_, err = pos.Apply(m)
	require.NoError(t, err)

	assert.NotEqual(t, fp0, pos.Fingerprint())
}

func TestPerftPly1(t *testing.T) {
	// FEN: http://www.talkchess.com/forum3/viewtopic.php?t=48616.
	pos, err := fen.Decode("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/1PB1P1b1/P1NP1N2/2P1QPPP/R4RK1 b - b3 0 10")
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves(pos.Turn())
	assert.Equal(t, 45, len(moves))
}

func printMoves(ms []board.Move) string {
	list := make([]string, 0, len(ms))
	for _, m := range ms {
		list = append(list, m.String())
	}
	sort.Strings(list)
	return strings.Join(list, " ")
}
