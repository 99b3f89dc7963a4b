package bb84

import (
	"github.com/thotasravyavardhani/qkd-explorer/bb84/bitstring"
)

// Amplify compresses key into exactly targetLength output bits. Every
// input bit is XOR-folded into a 32-bit accumulator at position i mod 32,
// and output bit j is bit j of the accumulator, zero for j >= 32. Input
// positions 32 apart alias into the same accumulator bit, which makes
// this a demonstration hash rather than a cryptographic extractor. An
// empty key amplifies to all zeros; a non-positive targetLength yields an
// empty output.
func Amplify(key bitstring.Bits, targetLength int) bitstring.Bits {
	if targetLength <= 0 {
		return bitstring.Bits{}
	}
	var hash uint32
	for i, b := range key {
		hash ^= uint32(b&1) << (i % 32)
	}
	out := make(bitstring.Bits, targetLength)
	for j := range out {
		out[j] = bitstring.Bit((hash >> j) & 1)
	}
	return out
}

// DefaultAmplifiedLength returns the amplified size used when no explicit
// target is given for a key of the given length: half of it, but never
// fewer than 32 bits.
func DefaultAmplifiedLength(keyLength int) int {
	if l := keyLength / 2; l > 32 {
		return l
	}
	return 32
}
