// Package searchctl drives iterative deepening and time management around a
// search.Search: it is the harness the protocol driver starts and stops, as distinct
// from the single fixed-depth call package search itself implements.
package searchctl

import (
	"fmt"
	"time"
)

// TimeControl describes one color's remaining clock, per spec.md §4.7/§6: wall-clock
// time remaining, an optional per-move increment, and an optional moves-to-go count (0
// means "rest of the game", defaulting to 40 remaining moves).
type TimeControl struct {
	Remaining time.Duration
	Increment time.Duration
	MovesToGo int

	// MoveTime, if positive, fixes the allocation for exactly one move, ignoring
	// Remaining/Increment/MovesToGo (UCI's "movetime").
	MoveTime time.Duration
	// Infinite disables the time manager; the search runs until explicitly stopped.
	Infinite bool
}

// infiniteAllocation is the fallback duration used for "go infinite", comfortably
// longer than any single move should ever take.
const infiniteAllocation = time.Hour

// defaultMovesToGo is assumed when the time control does not specify moves-to-go.
const defaultMovesToGo = 40

// Allocated computes the "allocated" duration for one move, per spec.md §4.7:
//
//	allocated = remaining/moves_to_go + 0.75*increment  (moves_to_go defaults to 40)
func (t TimeControl) Allocated() time.Duration {
	switch {
	case t.Infinite:
		return infiniteAllocation
	case t.MoveTime > 0:
		return t.MoveTime
	}

	movesToGo := t.MovesToGo
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}

	allocated := t.Remaining/time.Duration(movesToGo) + (t.Increment*3)/4
	if allocated < 0 {
		allocated = 0
	}
	return allocated
}

func (t TimeControl) String() string {
	if t.Infinite {
		return "infinite"
	}
	if t.MoveTime > 0 {
		return fmt.Sprintf("movetime=%v", t.MoveTime)
	}
	return fmt.Sprintf("remaining=%v inc=%v movestogo=%v", t.Remaining, t.Increment, t.MovesToGo)
}

// TimeManager paces a single search against its computed allocation, per spec.md §4.7.
type TimeManager struct {
	Allocated time.Duration
}

// NewTimeManager derives a manager from a time control's computed allocation.
func NewTimeManager(tc TimeControl) TimeManager {
	return TimeManager{Allocated: tc.Allocated()}
}

// HardLimit is the elapsed-time point past which iterative deepening must not start a
// new depth: 0.9 * allocated.
func (m TimeManager) HardLimit() time.Duration {
	return (m.Allocated * 9) / 10
}

// Emergency is the absolute elapsed-time ceiling past which an in-flight search must
// be cut off outright: 5 * allocated.
func (m TimeManager) Emergency() time.Duration {
	return m.Allocated * 5
}

// ShouldStop reports whether elapsed has crossed the hard limit or the emergency
// ceiling.
func (m TimeManager) ShouldStop(elapsed time.Duration) bool {
	return elapsed >= m.HardLimit() || elapsed >= m.Emergency()
}

// RemainingTime returns the time left before the hard limit, for pacing decisions. Zero
// once the hard limit has passed.
func (m TimeManager) RemainingTime(elapsed time.Duration) time.Duration {
	if r := m.HardLimit() - elapsed; r > 0 {
		return r
	}
	return 0
}
