package bb84

import (
	"github.com/thotasravyavardhani/qkd-explorer/bb84/bitstring"
	"github.com/thotasravyavardhani/qkd-explorer/bb84/photon"
	"github.com/thotasravyavardhani/qkd-explorer/bb84/rng"
)

// A RunConfig describes one key negotiation: how many qubits to exchange,
// the conditions on the channel, and which post-processing stages to
// apply. The zero value is a degenerate but legal configuration producing
// an empty, insecure run.
type RunConfig struct {
	// NQubits is the number of qubits the sending side transmits.
	// Non-positive values degrade to an empty run rather than failing.
	NQubits int `json:"nQubits"`

	// EveProbability is the per-qubit probability, in [0,1], that an
	// eavesdropper intercepts and re-sends the qubit.
	EveProbability float64 `json:"eveProbability"`

	// Noise selects degraded channel conditions (NoisyChannelRate) over
	// the quiet baseline (BackgroundNoiseRate). The channel is never
	// entirely noiseless.
	Noise bool `json:"noiseEnabled"`

	// ErrorCorrection enables the block-parity reconciliation pass on the
	// sifted keys.
	ErrorCorrection bool `json:"errorCorrectionEnabled"`

	// PrivacyAmplification enables hash-based compression of the final
	// key.
	PrivacyAmplification bool `json:"privacyAmplificationEnabled"`
}

// A Transcript records the intermediate bit sequences of a single run,
// one field group per pipeline stage. Fields belonging to stages that did
// not run are nil. The sequences may share storage with each other; treat
// them as read-only snapshots.
type Transcript struct {
	AliceBits  bitstring.Bits
	AliceBases bitstring.Bits
	BobBases   bitstring.Bits
	BobBits    bitstring.Bits

	AliceSifted bitstring.Bits
	BobSifted   bitstring.Bits

	AliceCorrected bitstring.Bits
	BobCorrected   bitstring.Bits

	FinalKey bitstring.Bits
}

// Run performs one BB84 negotiation under cfg. Every call replays the
// protocol's pseudorandom stream from its seed, so repeated runs with
// equal configurations return equal Results, in whatever order and from
// however many goroutines they are invoked.
func (p *Protocol) Run(cfg RunConfig) Result {
	return p.run(cfg, nil)
}

// RunTranscript is Run, except that it also reports the intermediate
// sequences of every stage that executed.
func (p *Protocol) RunTranscript(cfg RunConfig) (Result, *Transcript) {
	tr := new(Transcript)
	return p.run(cfg, tr), tr
}

func (p *Protocol) run(cfg RunConfig, tr *Transcript) Result {
	g := rng.New(p.seed)
	ch := p.channel
	if ch == nil {
		ch = &photon.Simulated{Rand: g}
	}

	aliceBits := RandomBits(g, cfg.NQubits)
	aliceBases := RandomBits(g, cfg.NQubits)
	bobBases := RandomBits(g, cfg.NQubits)

	noiseProb := BackgroundNoiseRate
	if cfg.Noise {
		noiseProb = NoisyChannelRate
	}
	bobBits := ch.Transmit(aliceBits, aliceBases, bobBases, cfg.EveProbability, noiseProb)

	aliceKey, bobKey := Sift(aliceBits, aliceBases, bobBits, bobBases)
	res := Result{
		NQubits:         cfg.NQubits,
		EveProbability:  cfg.EveProbability,
		SiftedKeyLength: len(aliceKey),
		QBERSifted:      QBER(aliceKey, bobKey),
	}
	if tr != nil {
		tr.AliceBits = aliceBits
		tr.AliceBases = aliceBases
		tr.BobBases = bobBases
		tr.BobBits = bobBits
		tr.AliceSifted = aliceKey
		tr.BobSifted = bobKey
	}

	res.QBERFinal = res.QBERSifted
	if cfg.ErrorCorrection && len(aliceKey) > 0 {
		var rec reconciler = &Cascade{BlockSize: p.blockSize, Rand: g}
		rr := rec.reconcile(aliceKey, bobKey)
		aliceKey, bobKey = rr.alice, rr.bob
		res.ECQueries = rr.queries
		res.QBERFinal = QBER(aliceKey, bobKey)
		if tr != nil {
			tr.AliceCorrected = aliceKey
			tr.BobCorrected = bobKey
		}
	}

	key := aliceKey
	if cfg.PrivacyAmplification && len(key) > 0 {
		key = Amplify(key, DefaultAmplifiedLength(len(key)))
	}
	res.FinalKeyLength = len(key)
	if tr != nil {
		tr.FinalKey = key
	}

	res.Secure = Secure(res.QBERFinal)
	return res
}

// RandomBits draws n uniformly random bits from g, in order. Non-positive
// n yields nil without consuming any draws.
func RandomBits(g *rng.LCG, n int) bitstring.Bits {
	if n <= 0 {
		return nil
	}
	b := make(bitstring.Bits, n)
	for i := range b {
		b[i] = bitstring.Bit(g.Intn(2))
	}
	return b
}

// Sift drops every position the two sides measured in different bases,
// preserving the relative order of the survivors.
func Sift(aliceBits, aliceBases, bobBits, bobBases bitstring.Bits) (aliceSifted, bobSifted bitstring.Bits) {
	mask := bitstring.XNor(aliceBases, bobBases)
	return bitstring.Select(aliceBits, mask), bitstring.Select(bobBits, mask)
}

// QBER returns the quantum bit error rate between two keys: the fraction
// of positions at which they disagree. Comparing empty keys yields 1, the
// conservative reading of an undefined rate.
func QBER(a, b bitstring.Bits) float64 {
	d := bitstring.XOr(a, b)
	if len(d) == 0 {
		return 1
	}
	return float64(d.CountOnes()) / float64(len(d))
}

// Secure reports whether a key whose post-correction error rate is qber
// may be used. Rates above QBERThreshold indicate disturbance beyond what
// channel noise accounts for.
func Secure(qber float64) bool {
	return qber <= QBERThreshold
}
