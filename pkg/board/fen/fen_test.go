package fen_test

import (
	"testing"

	"github.com/ParkBlake/zugzwang/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		"8/8/8/8/8/8/8/4k2K b - - 40 123",
	}

	for _, tt := range tests {
		p, err := fen.Decode(tt)
		require.NoError(t, err, tt)
		assert.Equal(t, tt, fen.Encode(&p), tt)
	}
}

func TestDecodeDefaultsHalfmoveFullmove(t *testing.T) {
	p, err := fen.Decode("8/8/8/8/8/8/8/4k2K b -")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Halfmove())
	assert.Equal(t, 1, p.Fullmove())
}

func TestDecodeRejectsMissingKing(t *testing.T) {
	_, err := fen.Decode("8/8/8/8/8/8/8/7K w - - 0 1")
	assert.Error(t, err)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
	for _, tt := range tests {
		_, err := fen.Decode(tt)
		assert.Error(t, err, tt)
	}
}
