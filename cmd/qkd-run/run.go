// run.go executes a single BB84 key negotiation and emits a JSON report of
// the outcome: the run configuration, the result record, a fingerprint of
// the negotiated key, and optionally the per-stage transcript of bit
// sequences. Defaults may be supplied through QKD_* environment variables,
// including from a .env file in the working directory.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"github.com/thotasravyavardhani/qkd-explorer/bb84"
)

var (
	qubits = flag.IntP("qubits", "n", 256, "The number of qubits to exchange.")
	eve    = flag.Float64("eve", 0,
		"The per-qubit probability, in [0,1], of eavesdropper interception.")
	noise = flag.Bool("noise", false,
		"Whether the channel suffers degraded transmission conditions.")
	errorCorrection = flag.Bool("error-correction", false,
		"Whether to reconcile the sifted keys with a block parity pass.")
	privacyAmplification = flag.Bool("privacy-amplification", false,
		"Whether to compress the final key by hashing.")
	blockSize = flag.Int("block-size", bb84.DefaultBlockSize,
		"The parity block length used during error correction.")
	seed = flag.Int64("seed", 0,
		"The generator seed. If unset, one is drawn from the entropy pool and reported.")
	transcript = flag.Bool("transcript", false,
		"Whether to include the per-stage bit sequences in the report.")
	output = flag.StringP("output", "o", "",
		"The file to write the report to. Defaults to stdout.")
)

// envFlags maps environment variables to the flags they provide defaults
// for. Explicit flags always win.
var envFlags = map[string]string{
	"QKD_QUBITS": "qubits",
	"QKD_EVE":    "eve",
	"QKD_NOISE":  "noise",
	"QKD_EC":     "error-correction",
	"QKD_PA":     "privacy-amplification",
	"QKD_SEED":   "seed",
	"QKD_OUTPUT": "output",
}

// An export is the serialized form of a completed run.
type export struct {
	RunID          string            `json:"runId"`
	GeneratedAt    string            `json:"generatedAt"`
	Seed           int64             `json:"seed"`
	Config         bb84.RunConfig    `json:"config"`
	Result         bb84.Result       `json:"result"`
	KeyFingerprint string            `json:"keyFingerprint,omitempty"`
	Transcript     *transcriptExport `json:"transcript,omitempty"`
}

// A transcriptExport renders the intermediate bit sequences of a run as
// strings of '0' and '1' characters. Stages that did not run are omitted.
type transcriptExport struct {
	AliceBits      string `json:"aliceBits"`
	AliceBases     string `json:"aliceBases"`
	BobBases       string `json:"bobBases"`
	BobBits        string `json:"bobBits"`
	AliceSifted    string `json:"aliceSifted"`
	BobSifted      string `json:"bobSifted"`
	AliceCorrected string `json:"aliceCorrected,omitempty"`
	BobCorrected   string `json:"bobCorrected,omitempty"`
	FinalKey       string `json:"finalKey"`
}

func main() {
	godotenv.Load()
	flag.Parse()
	if err := applyEnvDefaults(); err != nil {
		log.Fatalf("Applying environment defaults: %v", err)
	}

	opts := bb84.Options{BlockSize: *blockSize}
	if flag.CommandLine.Changed("seed") {
		opts.Seed = seed
	}
	p, err := bb84.New(opts)
	if err != nil {
		log.Fatalf("Building protocol: %v", err)
	}

	cfg := bb84.RunConfig{
		NQubits:              *qubits,
		EveProbability:       *eve,
		Noise:                *noise,
		ErrorCorrection:      *errorCorrection,
		PrivacyAmplification: *privacyAmplification,
	}
	res, tr := p.RunTranscript(cfg)

	exp := buildExport(p.Seed(), cfg, res, tr, *transcript)
	exp.RunID = uuid.NewString()
	exp.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	raw, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		log.Fatalf("Serializing report: %v", err)
	}

	if *output == "" {
		fmt.Println(string(raw))
		return
	}
	if err := os.WriteFile(*output, append(raw, '\n'), 0644); err != nil {
		log.Fatalf("Writing report: %v", err)
	}
	log.Printf("Wrote %s", *output)
}

// applyEnvDefaults fills in flags the user did not set explicitly from
// their corresponding environment variables.
func applyEnvDefaults() error {
	for env, name := range envFlags {
		if flag.CommandLine.Changed(name) {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if err := flag.CommandLine.Set(name, v); err != nil {
			return fmt.Errorf("%s=%q: %w", env, v, err)
		}
	}
	return nil
}

func buildExport(seed int64, cfg bb84.RunConfig, res bb84.Result, tr *bb84.Transcript, withTranscript bool) export {
	exp := export{
		Seed:           seed,
		Config:         cfg,
		Result:         res,
		KeyFingerprint: bb84.KeyFingerprint(tr.FinalKey),
	}
	if withTranscript {
		exp.Transcript = &transcriptExport{
			AliceBits:      tr.AliceBits.String(),
			AliceBases:     tr.AliceBases.String(),
			BobBases:       tr.BobBases.String(),
			BobBits:        tr.BobBits.String(),
			AliceSifted:    tr.AliceSifted.String(),
			BobSifted:      tr.BobSifted.String(),
			AliceCorrected: tr.AliceCorrected.String(),
			BobCorrected:   tr.BobCorrected.String(),
			FinalKey:       tr.FinalKey.String(),
		}
	}
	return exp
}
