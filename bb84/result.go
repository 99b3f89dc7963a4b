package bb84

import (
	"encoding/hex"

	"github.com/thotasravyavardhani/qkd-explorer/bb84/bitstring"
	"golang.org/x/crypto/sha3"
)

// A Result packages together the externally visible outcome of one key
// negotiation. It echoes the configuration that produced it alongside the
// measured rates and lengths. ECQueries is zero, and omitted from
// serialized form, whenever error correction did not run; every other
// field is always populated.
type Result struct {
	NQubits         int     `json:"nQubits"`
	EveProbability  float64 `json:"eveProbability"`
	SiftedKeyLength int     `json:"siftedKeyLength"`
	QBERSifted      float64 `json:"qberSifted"`
	QBERFinal       float64 `json:"qberFinal"`
	FinalKeyLength  int     `json:"finalKeyLength"`
	ECQueries       int     `json:"ecQueries,omitempty"`
	Secure          bool    `json:"secure"`
}

// KeyFingerprint returns a short hex digest identifying a negotiated key,
// for display and for comparing keys across runs without printing them.
// The empty key has the empty fingerprint.
func KeyFingerprint(key bitstring.Bits) string {
	if len(key) == 0 {
		return ""
	}
	sum := sha3.Sum256(key.Bytes())
	return hex.EncodeToString(sum[:8])
}
