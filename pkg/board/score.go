package board

import "fmt"

// Score is a signed centi-pawn unit used by board-level helpers (e.g., Color.Unit).
// Move ordering gain estimates and the search engine use eval.Score, which additionally
// tracks mate distance and invalid/infinite sentinels, lives in package eval.
type Score int32

const (
	MinScore Score = -30000
	MaxScore Score = 30000
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}
