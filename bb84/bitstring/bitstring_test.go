package bitstring

import (
	"bytes"
	"testing"
)

func mustBits(t *testing.T, s string) Bits {
	t.Helper()
	b, err := FromString(s)
	if err != nil {
		t.Fatalf("bugged test setup: %v", err)
	}
	return b
}

func TestFromString(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		eout Bits
		eErr bool
	}{
		{"empty", "", Bits{}, false},
		{"simple", "101", Bits{1, 0, 1}, false},
		{"spaces", "10 01 1", Bits{1, 0, 0, 1, 1}, false},
		{"invalid rune", "10x1", nil, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, err := FromString(tc.in)
			if tc.eErr != (err != nil) {
				t.Fatalf("FromString(%q) err == %v, want err=%v", tc.in, err, tc.eErr)
			}
			if err == nil && !Equal(out, tc.eout) {
				t.Errorf("FromString(%q) == %v, want %v", tc.in, out, tc.eout)
			}
		})
	}
}

func TestString(t *testing.T) {
	tcs := []struct {
		name string
		in   Bits
		eout string
	}{
		{"empty", Bits{}, ""},
		{"nil", nil, ""},
		{"mixed", Bits{1, 0, 1, 1, 0}, "10110"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.eout {
				t.Errorf("String() == %q, want %q", got, tc.eout)
			}
		})
	}
}

func TestGet(t *testing.T) {
	b := mustBits(t, "101")
	tcs := []struct {
		name string
		idx  int
		eout Bit
	}{
		{"first", 0, One},
		{"middle", 1, Zero},
		{"last", 2, One},
		{"past end", 3, Zero},
		{"far past end", 1000, Zero},
		{"negative", -1, Zero},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Get(tc.idx); got != tc.eout {
				t.Errorf("Get(%d) == %d, want %d", tc.idx, got, tc.eout)
			}
		})
	}
}

func TestCloneOwnership(t *testing.T) {
	orig := mustBits(t, "1010")
	cp := orig.Clone()
	cp.Flip(0)
	if Equal(orig, cp) {
		t.Error("flipping a clone mutated the original")
	}
	if got := orig.String(); got != "1010" {
		t.Errorf("original == %q after clone flip, want 1010", got)
	}
}

func TestCountOnes(t *testing.T) {
	tcs := []struct {
		name string
		in   Bits
		eout int
	}{
		{"empty", Bits{}, 0},
		{"zeros", mustBits(t, "0000"), 0},
		{"ones", mustBits(t, "1111"), 4},
		{"mixed", mustBits(t, "1010 0110"), 4},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.CountOnes(); got != tc.eout {
				t.Errorf("CountOnes() == %d, want %d", got, tc.eout)
			}
		})
	}
}

func TestParity(t *testing.T) {
	tcs := []struct {
		name string
		in   Bits
		eout Bit
	}{
		{"empty", Bits{}, Zero},
		{"odd ones", mustBits(t, "1010 0110 1"), One},
		{"even ones", mustBits(t, "101"), Zero},
		{"single one", mustBits(t, "1"), One},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Parity(); got != tc.eout {
				t.Errorf("Parity() == %d, want %d", got, tc.eout)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	tcs := []struct {
		name string
		in   Bits
		eout []byte
	}{
		{"empty", Bits{}, []byte{}},
		{"one byte", mustBits(t, "10110000"), []byte{0b00001101}},
		{"partial byte", mustBits(t, "101"), []byte{0b101}},
		{"multibyte", mustBits(t, "10000000 11"), []byte{0b00000001, 0b11}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Bytes(); !bytes.Equal(got, tc.eout) {
				t.Errorf("Bytes() == %08b, want %08b", got, tc.eout)
			}
		})
	}
}
