package eval

import "fmt"

// Score is a signed centipawn value. The individual evaluation terms (Material, PST,
// ...) are from White's perspective; Evaluator results and search scores are from the
// side to move's perspective. It is an integer fixed-point encoding (1 pawn = 100) rather than a float, per the
// spec's explicit permission to pre-scale weights to avoid floating point in the
// search hot path.
type Score int32

const (
	MinScore Score = -1_000_000
	MaxScore Score = 1_000_000

	NegInfScore Score = MinScore - 1
	InfScore    Score = MaxScore + 1

	ZeroScore Score = 0

	// InvalidScore marks a result that was never computed — an empty transposition
	// slot, or a search node cancelled before producing any score. Distinct from
	// NegInfScore/InfScore, which are legitimate window bounds.
	InvalidScore Score = MinScore - 2
)

// MateValue is the base magnitude of a forced-mate score. Mate scores are reported as
// MateValue minus the number of plies to the mate, so a mate found sooner always
// outscores one found deeper, and both stay comfortably inside [MinScore, MaxScore].
const MateValue Score = 900_000

// MateThreshold is the magnitude above which a score is interpreted as a forced mate
// rather than a material/positional evaluation.
const MateThreshold Score = MateValue - 1000

func (s Score) String() string {
	if d, mated, ok := s.MateDistance(); ok {
		if mated {
			return fmt.Sprintf("mate -%d", d)
		}
		return fmt.Sprintf("mate %d", d)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Negate flips perspective: Negate(s) is s from the other side's point of view.
func (s Score) Negate() Score {
	return -s
}

// IsInvalid reports whether s is the InvalidScore sentinel.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// IsMate reports whether s encodes a forced mate (for either side).
func (s Score) IsMate() bool {
	return s > MateThreshold || s < -MateThreshold
}

// MateDistance decodes a mate score into a ply count and whether the side to move is
// the one being mated. ok is false if s does not encode a mate.
func (s Score) MateDistance() (plies int, mated bool, ok bool) {
	switch {
	case s > MateThreshold:
		return int(MateValue - s), false, true
	case s < -MateThreshold:
		return int(MateValue + s), true, true
	default:
		return 0, false, false
	}
}

// Mate returns the score for delivering mate in the given number of plies from the
// current node (0 means mate is delivered by the move just made).
func Mate(ply int) Score {
	return MateValue - Score(ply)
}

// Mated returns the score for being mated in the given number of plies.
func Mated(ply int) Score {
	return -Mate(ply)
}

// IncrementMateDistance adjusts a mate score by one ply as it propagates up the
// search tree (a mate one ply further away is worth slightly less); non-mate scores
// pass through unchanged.
func (s Score) IncrementMateDistance() Score {
	switch {
	case s > MateThreshold:
		return s - 1
	case s < -MateThreshold:
		return s + 1
	default:
		return s
	}
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Less reports whether s sorts strictly below o, with invalid scores sorting as the
// most pessimistic possible value regardless of sign.
func (s Score) Less(o Score) bool {
	return s < o
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
