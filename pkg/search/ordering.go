package search

import (
	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/eval"
)

// MVVLVA orders moves by "most valuable victim, least valuable attacker": captures and
// promotions that gain the most material sort first, and among equal gains the move of
// the cheapest attacking piece sorts first.
func MVVLVA(pos *board.Position) board.MovePriorityFn {
	return func(m board.Move) board.MovePriority {
		gain := eval.NominalValueGain(pos, m)
		if gain <= 0 {
			return 0
		}

		// Gains are multiples of 10 centipawns and piece ordinals (Pawn..King) run 0..5
		// in value order, so 10*gain ranks by victim first and attacker second while the
		// largest gain (1700) still fits in MovePriority's int16.
		var attacker int32
		if _, pc, ok := pos.Square(m.From()); ok {
			attacker = int32(pc)
		}
		return board.MovePriority(10*int32(gain) - attacker)
	}
}
