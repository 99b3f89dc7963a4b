package bitstring

// XOr returns the bitwise XOR of two sequences. If one is shorter than the
// other, trailing zeros are implicitly added to make the lengths match.
func XOr(a, b Bits) Bits {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	r := make(Bits, n)
	for i := range r {
		r[i] = a.Get(i) ^ b.Get(i)
	}
	return r
}

// XNor returns the bitwise equality of two sequences: One where a and b
// agree, Zero where they differ. Shorter inputs are padded with trailing
// zeros.
func XNor(a, b Bits) Bits {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	r := make(Bits, n)
	for i := range r {
		r[i] = 1 ^ a.Get(i) ^ b.Get(i)
	}
	return r
}

// Select selects a subset of bits from data, in order, according to which
// bits are set in mask.
func Select(data, mask Bits) Bits {
	r := Bits{}
	for i := range data {
		if mask.Get(i) == One {
			r = append(r, data[i])
		}
	}
	return r
}

// Equal returns true iff a and b have the same length and contents.
func Equal(a, b Bits) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
