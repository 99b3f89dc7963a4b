package photon

import (
	"github.com/thotasravyavardhani/qkd-explorer/bb84/bitstring"
	"github.com/thotasravyavardhani/qkd-explorer/bb84/rng"
)

// Simulated is an in-memory Channel driven by a deterministic generator.
// Two Simulated channels wrapping identically-seeded generators produce
// identical measurement outcomes for identical inputs.
type Simulated struct {
	// Rand supplies every stochastic decision the channel makes. Must be
	// non-nil.
	Rand *rng.LCG

	// Errors, if non-nil, marks positions whose measured bits are flipped
	// after all probabilistic effects have been applied. The flips consume
	// no randomness, so they can force a known error pattern into a run
	// without perturbing the rest of it.
	Errors bitstring.Bits
}

// Transmit implements Channel. An intercepted qubit is measured in a basis
// the interceptor picks uniformly at random and re-sent in that basis; when
// the pick is wrong, the re-sent qubit decodes to the original bit only
// half the time. The interception and noise decisions each consume one
// draw per qubit even when the corresponding probability is zero.
func (s *Simulated) Transmit(bits, sendBases, recvBases bitstring.Bits, eveProb, noiseProb float64) bitstring.Bits {
	out := bits.Clone()
	for i := range out {
		if s.Rand.Next() < eveProb {
			eveBasis := bitstring.Bit(s.Rand.Intn(2))
			if eveBasis != sendBases.Get(i) && s.Rand.Next() < 0.5 {
				out.Flip(i)
			}
		}
		if s.Rand.Next() < noiseProb {
			out.Flip(i)
		}
		if recvBases.Get(i) != sendBases.Get(i) {
			out[i] = bitstring.Bit(s.Rand.Intn(2))
		}
	}
	for i, e := range s.Errors {
		if e == bitstring.One && i < len(out) {
			out.Flip(i)
		}
	}
	return out
}
