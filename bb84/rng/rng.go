// Package rng provides the deterministic pseudo-random stream that drives a
// BB84 simulation. It is a tiny linear-congruential generator: not remotely
// cryptographic, but fully reproducible, which is the property the simulator
// actually needs. A protocol run seeded with the same value replays the same
// bits, the same eavesdropping decisions and the same channel noise forever.
package rng

// The classic small-modulus parameter triple. It satisfies the Hull-Dobell
// conditions, so the generator has full period 233280.
const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// An LCG is a seeded linear-congruential generator emitting uniform values in
// [0,1). The zero value is a valid generator with seed 0; instances are not
// safe for concurrent use.
type LCG struct {
	seed int64
}

// New returns a generator whose state is seed, normalized via Normalize.
func New(seed int64) *LCG {
	return &LCG{seed: Normalize(seed)}
}

// Normalize maps an arbitrary integer onto the generator's state space
// [0, 233280) by Euclidean modulo. Out-of-range seeds are folded rather than
// rejected, so every integer is a usable seed.
func Normalize(seed int64) int64 {
	seed %= modulus
	if seed < 0 {
		seed += modulus
	}
	return seed
}

// Next advances the state and returns the next value in [0,1). It is the
// single source of randomness for a protocol run; every derived draw consumes
// exactly one Next per value so that call order pins the whole stream.
func (g *LCG) Next() float64 {
	g.seed = (g.seed*multiplier + increment) % modulus
	return float64(g.seed) / modulus
}

// Intn returns an integer in [0,n) as floor(Next()*n), consuming one draw.
// Non-positive n returns 0 without consuming a draw.
func (g *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Next() * float64(n))
}
