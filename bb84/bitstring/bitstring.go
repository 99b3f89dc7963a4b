// Package bitstring provides utilities for operating on ordered sequences of
// classical bit values. Sequences are deliberately unpacked, one byte per bit:
// a BB84 simulation ties Alice's bit, Alice's basis, Bob's basis and Bob's
// result together by index, and the per-index bookkeeping dominates any win
// from packing.
package bitstring

import "fmt"

// A Bit is a classical bit value, 0 or 1. Bases reuse the same representation:
// 0 for rectilinear, 1 for diagonal.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Bits is an ordered bit sequence. Index order is significant everywhere in
// the protocol, so operations preserve it.
type Bits []Bit

// FromString converts a string of '1's and '0's to a Bits. Spaces are ignored,
// which keeps long literals in tests readable.
func FromString(s string) (Bits, error) {
	b := Bits{}
	for _, c := range s {
		switch c {
		case '1':
			b = append(b, One)
		case '0':
			b = append(b, Zero)
		case ' ':
			continue
		default:
			return nil, fmt.Errorf("invalid bitstring rep: %s", s)
		}
	}
	return b, nil
}

// String renders b as a contiguous run of '0' and '1' characters.
func (b Bits) String() string {
	buf := make([]byte, len(b))
	for i, v := range b {
		buf[i] = '0' + byte(v&1)
	}
	return string(buf)
}

// Get returns the bit at i, with implicit trailing zeros beyond the length.
func (b Bits) Get(i int) Bit {
	if i < 0 || i >= len(b) {
		return Zero
	}
	return b[i]
}

// Clone returns an owned copy of b.
func (b Bits) Clone() Bits {
	if b == nil {
		return nil
	}
	out := make(Bits, len(b))
	copy(out, b)
	return out
}

// Flip inverts the bit at i.
func (b Bits) Flip(i int) {
	b[i] ^= 1
}

// CountOnes returns the total number of set bits in b.
func (b Bits) CountOnes() int {
	var sum int
	for _, v := range b {
		sum += int(v & 1)
	}
	return sum
}

// Parity returns the XOR of every bit in b. The empty sequence has parity
// Zero.
func (b Bits) Parity() Bit {
	var p Bit
	for _, v := range b {
		p ^= v & 1
	}
	return p
}

// Bytes packs b into bytes, least-significant bit first within each byte.
// Trailing positions of the final byte are zero.
func (b Bits) Bytes() []byte {
	out := make([]byte, (len(b)+7)/8)
	for i, v := range b {
		if v&1 == 1 {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}
