package eval

import "math/rand"

// Random adds a small amount of noise to an evaluation, useful for avoiding
// repeated play against a deterministic opponent. limit bounds the noise, in
// centipawns, to the range [-limit/2, limit/2]. The zero value always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

// NewRandom returns a noise generator bounded by limit centipawns, seeded
// deterministically from seed.
func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Noise returns the next noise sample, or zero if no limit was configured.
func (n Random) Noise() Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
