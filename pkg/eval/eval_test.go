package eval_test

import (
	"testing"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/board/fen"
	"github.com/ParkBlake/zugzwang/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialInitialPositionIsBalanced(t *testing.T) {
	pos := board.NewInitialPosition()
	assert.Equal(t, eval.ZeroScore, eval.Material(&pos))
}

func TestMaterialFavorsExtraQueen(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D1, Color: board.White, Piece: board.Queen},
	}, board.White, 0, board.ZeroSquare, false, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, eval.Score(board.Queen.Value()), eval.Material(&pos))
}

func TestPSTSymmetricInitialPosition(t *testing.T) {
	pos := board.NewInitialPosition()
	assert.Equal(t, eval.ZeroScore, eval.PST(&pos))
}

func TestPawnStructureDoubledIsolated(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.A2, Color: board.White, Piece: board.Pawn},
		{Square: board.A3, Color: board.White, Piece: board.Pawn},
	}, board.White, 0, board.ZeroSquare, false, 0, 1)
	require.NoError(t, err)

	// Both pawns are doubled and isolated (no pawn on file B).
	assert.Less(t, eval.PawnStructure(&pos), eval.ZeroScore)
}

func TestPawnStructurePassedPawnAdvantage(t *testing.T) {
	withPasser, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.A6, Color: board.White, Piece: board.Pawn},
	}, board.White, 0, board.ZeroSquare, false, 0, 1)
	require.NoError(t, err)

	blocked, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.A6, Color: board.White, Piece: board.Pawn},
		{Square: board.A7, Color: board.Black, Piece: board.Pawn},
	}, board.White, 0, board.ZeroSquare, false, 0, 1)
	require.NoError(t, err)

	assert.Greater(t, eval.PawnStructure(&withPasser), eval.PawnStructure(&blocked))
}

func TestMobilityInitialPositionIsBalanced(t *testing.T) {
	pos := board.NewInitialPosition()
	assert.Equal(t, eval.ZeroScore, eval.Mobility(&pos))
}

func TestWeightedEvaluateSignedBySideToMove(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D1, Color: board.White, Piece: board.Queen},
	}, board.White, 0, board.ZeroSquare, false, 0, 1)
	require.NoError(t, err)

	w := eval.Weighted{}
	whiteToMove := w.Evaluate(&pos)

	flipped, err := board.NewPosition([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D1, Color: board.White, Piece: board.Queen},
	}, board.Black, 0, board.ZeroSquare, false, 0, 1)
	require.NoError(t, err)
	blackToMove := w.Evaluate(&flipped)

	assert.Positive(t, whiteToMove)
	assert.Equal(t, whiteToMove, -blackToMove)
}

func TestWeightedEvaluateInitialPositionNearZero(t *testing.T) {
	pos := board.NewInitialPosition()
	w := eval.Weighted{}
	assert.Equal(t, eval.ZeroScore, w.Evaluate(&pos))
}

func TestScoreMateDistance(t *testing.T) {
	s := eval.Mate(3)
	d, mated, ok := s.MateDistance()
	require.True(t, ok)
	assert.False(t, mated)
	assert.Equal(t, 3, d)

	s = eval.Mated(2)
	d, mated, ok = s.MateDistance()
	require.True(t, ok)
	assert.True(t, mated)
	assert.Equal(t, 2, d)

	_, _, ok = eval.Score(500).MateDistance()
	assert.False(t, ok)
}

func TestScoreIncrementMateDistance(t *testing.T) {
	s := eval.Mate(0)
	assert.Equal(t, eval.Mate(1), s.IncrementMateDistance())

	nonMate := eval.Score(42)
	assert.Equal(t, nonMate, nonMate.IncrementMateDistance())
}

func TestMaterialBalancedForDecodedInitialFEN(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, eval.ZeroScore, eval.Material(&pos))
}
