package board_test

import (
	"testing"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank3.IsValid())
	assert.True(t, board.Rank8.IsValid())
	assert.False(t, board.Rank(8).IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "7", board.Rank7.String())
	assert.Equal(t, "5", board.Rank(4).String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.True(t, board.FileB.IsValid())
	assert.True(t, board.FileH.IsValid())
	assert.False(t, board.File(8).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "g", board.FileG.String())
	assert.Equal(t, "d", board.File(3).String())
}

func TestSquare(t *testing.T) {
	assert.Equal(t, board.C2, board.NewSquare(board.FileC, board.Rank2))
	assert.Equal(t, board.G5, board.NewSquare(board.FileG, board.Rank5))

	assert.True(t, board.H1.IsValid())
	assert.True(t, board.D4.IsValid())
	assert.True(t, board.A8.IsValid())
	assert.False(t, board.Square(64).IsValid())

	assert.Equal(t, "h1", board.H1.String())
	assert.Equal(t, "a1", board.A1.String())
	assert.Equal(t, board.Square(0), board.A1)

	assert.Equal(t, board.Rank1, board.A1.Rank())
	assert.Equal(t, board.FileA, board.A1.File())
	assert.Equal(t, board.Rank8, board.H8.Rank())
	assert.Equal(t, board.FileH, board.H8.File())
}

func TestSquareMirror(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected board.Square
	}{
		{board.A1, board.A8},
		{board.H1, board.H8},
		{board.E2, board.E7},
		{board.D4, board.D5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.sq.Mirror())
		assert.Equal(t, tt.sq, tt.expected.Mirror())
	}
}

func TestParseSquareStr(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	assert.NoError(t, err)
	assert.Equal(t, board.E4, sq)

	_, err = board.ParseSquareStr("e9")
	assert.Error(t, err)

	_, err = board.ParseSquareStr("z4")
	assert.Error(t, err)

	_, err = board.ParseSquareStr("e")
	assert.Error(t, err)
}
