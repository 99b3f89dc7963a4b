package bb84

import (
	"github.com/thotasravyavardhani/qkd-explorer/bb84/bitstring"
	"github.com/thotasravyavardhani/qkd-explorer/bb84/rng"
)

// A Cascade reconciles two sifted keys with a single pass of block parity
// comparison, after the scheme of Brassard and Salvail
// (https://doi.org/10.1007/3-540-48285-7_35), heavily abbreviated: a
// mismatched block is answered by flipping one randomly chosen bit inside
// it, with no recursive search to localize the true error. A correction
// can therefore miss, or introduce a fresh error; whatever disagreement
// survives is exposed by the post-correction error rate.
type Cascade struct {
	// BlockSize is the number of bits per parity block. Defaults to
	// DefaultBlockSize.
	BlockSize int

	// Rand supplies the flip position for each mismatched block. Must be
	// non-nil.
	Rand *rng.LCG
}

// Reconcile runs one parity pass over two equal-length keys and returns
// corrected copies of both, along with the number of queries the public
// discussion cost: one per block for the parity exchange, plus one per
// mismatched block for the correction. The inputs are never mutated, and
// only bob's copy ever receives corrections.
func (c *Cascade) Reconcile(alice, bob bitstring.Bits) (aliceOut, bobOut bitstring.Bits, queries int) {
	aliceOut = alice.Clone()
	bobOut = bob.Clone()
	size := c.BlockSize
	if size <= 0 {
		size = DefaultBlockSize
	}
	for start := 0; start < len(bobOut); start += size {
		end := start + size
		if end > len(bobOut) {
			end = len(bobOut)
		}
		queries++
		if aliceOut[start:end].Parity() == bobOut[start:end].Parity() {
			continue
		}
		bobOut.Flip(start + c.Rand.Intn(end-start))
		queries++
	}
	return aliceOut, bobOut, queries
}

// reconcile implements the reconciler interface.
func (c *Cascade) reconcile(alice, bob bitstring.Bits) reconcileResult {
	a, b, q := c.Reconcile(alice, bob)
	return reconcileResult{alice: a, bob: b, queries: q}
}
