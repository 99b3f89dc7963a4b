package main

import (
	"encoding/json"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/thotasravyavardhani/qkd-explorer/bb84"
)

func mustRunTranscript(t *testing.T, seed int64, cfg bb84.RunConfig) (int64, bb84.Result, *bb84.Transcript) {
	t.Helper()
	p, err := bb84.New(bb84.Options{Seed: &seed})
	if err != nil {
		t.Fatalf("building protocol: %v", err)
	}
	res, tr := p.RunTranscript(cfg)
	return p.Seed(), res, tr
}

func TestBuildExport(t *testing.T) {
	cfg := bb84.RunConfig{NQubits: 12}
	seed, res, tr := mustRunTranscript(t, 42, cfg)
	exp := buildExport(seed, cfg, res, tr, true)
	if exp.Seed != 42 {
		t.Errorf("Seed == %d, want 42", exp.Seed)
	}
	if exp.Config != cfg || exp.Result != res {
		t.Errorf("export echoes (%+v, %+v), want (%+v, %+v)", exp.Config, exp.Result, cfg, res)
	}
	if exp.KeyFingerprint == "" {
		t.Error("empty fingerprint for a non-empty key")
	}
	if exp.Transcript == nil {
		t.Fatal("transcript requested but absent")
	}
	if exp.Transcript.AliceBits != "111111101110" {
		t.Errorf("AliceBits == %q, want 111111101110", exp.Transcript.AliceBits)
	}
	if exp.Transcript.FinalKey != "11110110" {
		t.Errorf("FinalKey == %q, want 11110110", exp.Transcript.FinalKey)
	}
	if exp.Transcript.AliceCorrected != "" {
		t.Errorf("AliceCorrected == %q on an uncorrected run, want empty", exp.Transcript.AliceCorrected)
	}
}

func TestBuildExportWithoutTranscript(t *testing.T) {
	cfg := bb84.RunConfig{NQubits: 12}
	seed, res, tr := mustRunTranscript(t, 42, cfg)
	exp := buildExport(seed, cfg, res, tr, false)
	if exp.Transcript != nil {
		t.Errorf("transcript present without being requested: %+v", exp.Transcript)
	}
	if exp.KeyFingerprint == "" {
		t.Error("empty fingerprint for a non-empty key")
	}
}

func TestExportSerialization(t *testing.T) {
	cfg := bb84.RunConfig{NQubits: 12}
	seed, res, tr := mustRunTranscript(t, 42, cfg)

	raw, err := json.Marshal(buildExport(seed, cfg, res, tr, true))
	if err != nil {
		t.Fatalf("marshaling export: %v", err)
	}
	if s := string(raw); !strings.Contains(s, `"aliceSifted"`) || strings.Contains(s, `"aliceCorrected"`) {
		t.Errorf("transcript serialization does not track executed stages: %s", s)
	}

	raw, err = json.Marshal(buildExport(seed, cfg, res, tr, false))
	if err != nil {
		t.Fatalf("marshaling export: %v", err)
	}
	if s := string(raw); strings.Contains(s, `"transcript"`) {
		t.Errorf("transcript serialized without being requested: %s", s)
	}
}

func TestApplyEnvDefaults(t *testing.T) {
	t.Setenv("QKD_EVE", "0.4")
	if err := applyEnvDefaults(); err != nil {
		t.Fatalf("applying env defaults: %v", err)
	}
	if *eve != 0.4 {
		t.Errorf("eve == %v after QKD_EVE=0.4, want 0.4", *eve)
	}

	// An explicitly set flag outranks its environment variable.
	if err := flag.CommandLine.Set("qubits", "128"); err != nil {
		t.Fatalf("setting qubits flag: %v", err)
	}
	t.Setenv("QKD_QUBITS", "64")
	if err := applyEnvDefaults(); err != nil {
		t.Fatalf("applying env defaults: %v", err)
	}
	if *qubits != 128 {
		t.Errorf("qubits == %d with an explicit flag, want 128", *qubits)
	}

	t.Setenv("QKD_SEED", "not-a-number")
	if err := applyEnvDefaults(); err == nil {
		t.Error("malformed QKD_SEED accepted")
	}
}
