package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/ParkBlake/zugzwang/pkg/board"
	"github.com/ParkBlake/zugzwang/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold the dynamic parameters of a single `go` command.
type Options struct {
	// DepthLimit, if set, stops iterative deepening once this ply depth completes.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, bounds the search by wall-clock time.
	TimeControl lang.Optional[TimeControl]
	// NodeLimit, if set, stops iterative deepening once cumulative node count across
	// all completed depths reaches this budget (UCI `go nodes N`).
	NodeLimit lang.Optional[uint64]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.DepthLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		ret = append(ret, fmt.Sprintf("time=%v", v))
	}
	if v, ok := o.NodeLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("nodes=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Launcher starts iterative-deepening searches from a root position.
type Launcher interface {
	// Launch starts a new search from pos, which the launcher owns exclusively for the
	// life of the search (the caller must fork it first if it needs the original
	// afterwards). It returns a PV channel fed with one entry per completed depth,
	// closed once the search is exhausted, and a Handle to stop it early.
	Launch(ctx context.Context, pos board.Position, tt *search.TranspositionTable, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the caller stop an in-flight search and retrieve its latest result.
type Handle interface {
	// Halt stops the search, if running, and returns the best PV found so far.
	// Idempotent: safe to call more than once, and safe to call before any result has
	// been produced (it then blocks until at least depth 1 completes).
	Halt() search.PV
}
