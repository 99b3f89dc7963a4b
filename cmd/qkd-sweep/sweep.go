// sweep.go negotiates keys for each entry in the cartesian product of
// qubit counts and interception probabilities, repeating each combination
// over a span of consecutive seeds, and outputs a CSV of aggregate
// statistics per combination, e.g. mean error rate and secure-verdict
// fraction.
package main

import (
	"fmt"
	"log"
	"os"
	"text/template"

	flag "github.com/spf13/pflag"
	"github.com/thotasravyavardhani/qkd-explorer/bb84"
	"gonum.org/v1/gonum/stat"
)

var (
	qubits = flag.IntSlice("qubits", []int{256},
		"The qubit counts to sweep.")
	eves = flag.Float64Slice("eves", []float64{0, 0.5, 1},
		"The interception probabilities to sweep.")
	runs = flag.Int("runs", 20,
		"The number of negotiations to aggregate per parameterization.")
	seedBase = flag.Int64("seed-base", 1,
		"The seed of the first run in each cell; later runs use consecutive seeds.")
	noise = flag.Bool("noise", false,
		"Whether the channel suffers degraded transmission conditions.")
	errorCorrection = flag.Bool("error-correction", true,
		"Whether to reconcile the sifted keys with a block parity pass.")
	privacyAmplification = flag.Bool("privacy-amplification", true,
		"Whether to compress the final key by hashing.")
)

const (
	header   = "NQubits, EveProb, Runs, MeanSiftedBits, MeanQBER, StdDevQBER, MeanFinalBits, MeanECQueries, SecureFraction"
	lineTmpl = "{{.NQubits}}, {{.EveProb}}, {{.Runs}}, {{.MeanSiftedBits}}, {{.MeanQBER}}, {{.StdDevQBER}}, {{.MeanFinalBits}}, {{.MeanECQueries}}, {{.SecureFraction}}\n"
)

// An Experiment packages together the aggregated outcome of sweeping a
// single parameterization for easy formatting.
type Experiment struct {
	NQubits        int
	EveProb        float64
	Runs           int
	MeanSiftedBits float64
	MeanQBER       float64
	StdDevQBER     float64
	MeanFinalBits  float64
	MeanECQueries  float64
	SecureFraction float64
}

func main() {
	flag.Parse()
	fmt.Println(header)
	tmpl := template.Must(template.New("line").Parse(lineTmpl))
	for _, n := range *qubits {
		for _, eve := range *eves {
			results, err := sweepCell(n, eve)
			if err != nil {
				log.Fatalf("Sweeping (qubits: %d, eve: %f): %v", n, eve, err)
			}
			if err := tmpl.Execute(os.Stdout, summarize(n, eve, results)); err != nil {
				log.Fatalf("BUG: could not fill in line template: %v", err)
			}
		}
	}
}

// sweepCell negotiates one key per seed at a single parameterization.
func sweepCell(nQubits int, eveProb float64) ([]bb84.Result, error) {
	cfg := bb84.RunConfig{
		NQubits:              nQubits,
		EveProbability:       eveProb,
		Noise:                *noise,
		ErrorCorrection:      *errorCorrection,
		PrivacyAmplification: *privacyAmplification,
	}
	results := make([]bb84.Result, 0, *runs)
	for i := 0; i < *runs; i++ {
		seed := *seedBase + int64(i)
		p, err := bb84.New(bb84.Options{Seed: &seed})
		if err != nil {
			return nil, err
		}
		results = append(results, p.Run(cfg))
	}
	return results, nil
}

// summarize reduces one cell's results to the statistics reported per CSV
// line. The standard deviation of a single run is reported as zero.
func summarize(nQubits int, eveProb float64, results []bb84.Result) Experiment {
	exp := Experiment{NQubits: nQubits, EveProb: eveProb, Runs: len(results)}
	if len(results) == 0 {
		return exp
	}
	sifted := make([]float64, len(results))
	qbers := make([]float64, len(results))
	finals := make([]float64, len(results))
	queries := make([]float64, len(results))
	var secure int
	for i, r := range results {
		sifted[i] = float64(r.SiftedKeyLength)
		qbers[i] = r.QBERSifted
		finals[i] = float64(r.FinalKeyLength)
		queries[i] = float64(r.ECQueries)
		if r.Secure {
			secure++
		}
	}
	exp.MeanSiftedBits = stat.Mean(sifted, nil)
	exp.MeanQBER = stat.Mean(qbers, nil)
	if len(qbers) > 1 {
		exp.StdDevQBER = stat.StdDev(qbers, nil)
	}
	exp.MeanFinalBits = stat.Mean(finals, nil)
	exp.MeanECQueries = stat.Mean(queries, nil)
	exp.SecureFraction = float64(secure) / float64(len(results))
	return exp
}
