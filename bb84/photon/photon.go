// Package photon models the quantum channel linking the two ends of a BB84
// exchange. All of the protocol's non-classical behavior lives here: an
// interceptor must commit to a measurement basis before knowing the right
// one, measuring in the wrong basis yields a uniformly random bit, and
// physical noise flips bits independently of either. Everything downstream
// of a Transmit call is classical post-processing.
package photon

import (
	"github.com/thotasravyavardhani/qkd-explorer/bb84/bitstring"
)

// A Channel carries qubits encoded as linearly-polarized photons from a
// sender to a receiver, subject to interception and physical noise.
type Channel interface {
	// Transmit sends bits, with bits[i] encoded in basis sendBases[i], and
	// measures each arriving qubit in basis recvBases[i]. It returns the
	// measured bit values, one per input bit.
	//
	// Each qubit is independently intercepted with probability eveProb and
	// disturbed by channel noise with probability noiseProb. Measuring a
	// qubit in a basis other than its encoding basis yields a uniformly
	// random bit.
	Transmit(bits, sendBases, recvBases bitstring.Bits, eveProb, noiseProb float64) bitstring.Bits
}
