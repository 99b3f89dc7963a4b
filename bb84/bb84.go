// Package bb84 provides a deterministic simulation of BB84 quantum key
// negotiation, from qubit exchange through sifting, error estimation,
// reconciliation, and privacy amplification.
package bb84

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/thotasravyavardhani/qkd-explorer/bb84/bitstring"
	"github.com/thotasravyavardhani/qkd-explorer/bb84/photon"
	"github.com/thotasravyavardhani/qkd-explorer/bb84/rng"
)

const (
	// QBERThreshold is the highest post-correction error rate at which a
	// negotiated key is still declared secure. Intercept-resend attacks on
	// the full qubit stream disturb roughly a quarter of the sifted bits,
	// so rates above this bound cannot be explained by channel noise alone.
	QBERThreshold = 0.11

	// BackgroundNoiseRate is the per-qubit flip probability of an otherwise
	// quiet channel.
	BackgroundNoiseRate = 0.001

	// NoisyChannelRate is the per-qubit flip probability of a channel with
	// degraded transmission conditions.
	NoisyChannelRate = 0.02
)

// DefaultBlockSize is the parity block length used for error correction
// when none is specified.
var DefaultBlockSize = 16

// An Options packages together the arguments necessary to construct a new
// Protocol. The zero value is usable: it seeds from the operating system's
// entropy pool and simulates its own quantum channel.
type Options struct {
	// Seed fixes the pseudorandom stream driving all runs. A Protocol
	// repeats the same seed for every run, so two protocols built with the
	// same Seed produce identical results for identical configurations. If
	// nil, a seed is drawn from the entropy pool at construction time and
	// can be recovered afterwards via Seed.
	Seed *int64

	// Channel carries qubits from the sending side to the receiving side.
	// If nil, each run simulates its own channel, driven by the run's
	// generator. Runs over a custom Channel are only as repeatable as the
	// Channel itself.
	Channel photon.Channel

	// BlockSize is the parity block length used during error correction.
	// Defaults to DefaultBlockSize.
	BlockSize int
}

// A Protocol simulates both legitimate participants in a BB84 key
// exchange, along with the quantum channel between them and any
// eavesdropper on it.
type Protocol struct {
	seed      int64
	channel   photon.Channel
	blockSize int
}

// New returns a new Protocol, configured in accordance with opts, or an
// error if the options are nonsensical.
func New(opts Options) (*Protocol, error) {
	if opts.BlockSize < 0 {
		return nil, errors.New("block size must be non-negative")
	}
	bs := opts.BlockSize
	if bs == 0 {
		bs = DefaultBlockSize
	}
	var seed int64
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, fmt.Errorf("seeding from entropy pool: %w", err)
		}
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return &Protocol{
		seed:      rng.Normalize(seed),
		channel:   opts.Channel,
		blockSize: bs,
	}, nil
}

// Seed returns the seed driving this protocol's runs, reduced to the
// generator's state space. Constructing a new Protocol with this value
// reproduces the same runs.
func (p *Protocol) Seed() int64 {
	return p.seed
}

type reconcileResult struct {
	alice, bob bitstring.Bits
	queries    int
}

type reconciler interface {
	// reconcile performs error correction on bob's key so that it matches
	// alice's with high probability, returning the corrected keys and the
	// number of parity queries exchanged. Note that the reconciler
	// interface does not guarantee which side's bits are modified.
	reconcile(alice, bob bitstring.Bits) reconcileResult
}
