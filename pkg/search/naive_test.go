package search_test

import (
	"context"
	"testing"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/eval"
	"github.com/ParkBlake/zugzwang/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaiveFindsMateInOne(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.G8, Color: board.Black, Piece: board.King},
		{Square: board.F7, Color: board.Black, Piece: board.Pawn},
		{Square: board.G7, Color: board.Black, Piece: board.Pawn},
		{Square: board.H7, Color: board.Black, Piece: board.Pawn},
		{Square: board.F2, Color: board.White, Piece: board.Pawn},
		{Square: board.G2, Color: board.White, Piece: board.Pawn},
		{Square: board.H2, Color: board.White, Piece: board.Pawn},
		{Square: board.A1, Color: board.White, Piece: board.Rook},
		{Square: board.G1, Color: board.White, Piece: board.King},
	}, board.White, 0, board.ZeroSquare, false, 0, 1)
	require.NoError(t, err)

	n := search.Naive{Eval: eval.Weighted{}}
	sctx := &search.Context{}
	_, score, pv, err := n.Search(context.Background(), sctx, &pos, 2)
	require.NoError(t, err)
	require.NotEmpty(t, pv)

	d, mated, ok := score.MateDistance()
	require.True(t, ok)
	assert.False(t, mated)
	assert.Equal(t, 1, d)
}

func TestNaiveVisitsEveryLegalMoveAtDepth1(t *testing.T) {
	pos := board.NewInitialPosition()

	n := search.Naive{Eval: eval.Weighted{}}
	nodes, _, _, err := n.Search(context.Background(), &search.Context{}, &pos, 1)
	require.NoError(t, err)

	assert.Equal(t, uint64(len(pos.LegalMoves(pos.Turn()))), nodes)
}
