package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/eval"
	"github.com/ParkBlake/zugzwang/pkg/search"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Iterative is a Launcher that deepens a search.Search one ply at a time with a full
// [-inf,+inf] window at each depth, per spec.md §4.7. It stops on the first of: a
// configured depth limit, a spent node budget, a forced mate found within the
// full-width search, or the time manager's stopping rule.
type Iterative struct {
	Root     search.Search
	MaxDepth int // ply ceiling beyond which deepening never continues; 0 means none
}

func (it Iterative) Launch(ctx context.Context, pos board.Position, tt *search.TranspositionTable, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.run(ctx, it, pos, tt, opt, out)
	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	mu sync.Mutex
	pv search.PV
}

func (h *handle) run(ctx context.Context, it Iterative, pos board.Position, tt *search.TranspositionTable, opt Options, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	fallback := fallbackPV(&pos)

	var tm TimeManager
	haveTimer := false
	if tc, ok := opt.TimeControl.V(); ok {
		tm = NewTimeManager(tc)
		haveTimer = true
		time.AfterFunc(tm.Emergency(), func() { h.Halt() })
	}

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	ceiling := it.MaxDepth
	if v, ok := opt.DepthLimit.V(); ok {
		if ceiling == 0 || int(v) < ceiling {
			ceiling = int(v)
		}
	}

	nodeLimit, haveNodeLimit := opt.NodeLimit.V()

	start := time.Now()
	depth := 1
	var totalNodes uint64
	for !h.quit.IsClosed() {
		iterStart := time.Now()

		sctx := &search.Context{Alpha: eval.NegInfScore, Beta: eval.InfScore, TT: tt}
		nodes, score, moves, err := it.Root.Search(wctx, sctx, &pos, depth)
		if err != nil {
			if err == search.ErrHalted {
				return // Halt was called; the last published PV stands.
			}
			logw.Errorf(ctx, "search failed at depth=%v: %v", depth, err)
			return
		}

		totalNodes += nodes
		pv := search.PV{Depth: depth, Nodes: totalNodes, Score: score, Moves: moves, Time: time.Since(iterStart)}
		if tt != nil {
			pv.Hash = tt.Used()
		}
		if len(pv.Moves) == 0 {
			pv.Moves = fallback
		}

		logw.Debugf(ctx, "searched depth=%v: %v", depth, pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv
		h.init.Close()

		if ceiling > 0 && depth >= ceiling {
			return // halt: reached the depth ceiling
		}
		if haveNodeLimit && totalNodes >= nodeLimit {
			return // halt: node budget exhausted
		}
		if md, mated, ok := score.MateDistance(); ok && !mated && md <= depth {
			return // halt: forced mate found within full-width search, exact result
		}
		if haveTimer {
			elapsed := time.Since(start)
			if tm.ShouldStop(elapsed) {
				return
			}
			estimate := 4 * time.Since(iterStart) // coarse exponential branching-factor model
			if estimate > (tm.RemainingTime(elapsed)*8)/10 {
				return // halt: next depth would likely blow the time budget
			}
		}
		depth++
	}
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

// fallbackPV returns the position's first legal move, per spec.md §4.7: the defensive
// result when depth 1 could not complete before cancellation. Never empty unless pos
// itself has no legal move, which the caller must not search in the first place.
func fallbackPV(pos *board.Position) []board.Move {
	if moves := pos.LegalMoves(pos.Turn()); len(moves) > 0 {
		return moves[:1]
	}
	return nil
}
