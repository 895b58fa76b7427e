package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/eval"
)

// PV is the principal variation found at a completed search depth.
type PV struct {
	Depth int
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
	Hash  float64 // transposition table utilization, [0;1]
}

// Best returns the PV's first move, if any.
func (p PV) Best() (board.Move, bool) {
	if len(p.Moves) == 0 {
		return board.NoMove, false
	}
	return p.Moves[0], true
}

func (p PV) String() string {
	var sb strings.Builder
	for i, m := range p.Moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%.1f%% pv=%v", p.Depth, p.Score, p.Nodes, p.Time, 100*p.Hash, sb.String())
}
