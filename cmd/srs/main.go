// Command srs computes a shock response spectrum from an acceleration
// time history.
//
// Usage:
//
//	srs [flags] [input-file]
//
// The input is line-oriented text with one acceleration sample per line.
// Without an input file, samples are read from stdin. Blank lines are
// skipped; unparsable lines are dropped with a warning.
//
// Examples:
//
//	srs -rate 2000 shock.txt
//	srs -rate 2000 -start 10 -damping 0.05 -octave 3 shock.txt
//	cat shock.txt | srs -rate 2000
//	srs shock.txt            (prompts for the sampling rate)
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-srs/internal/textio"
	"github.com/cwbudde/algo-srs/srs"
)

func main() {
	rate := flag.Float64("rate", 0, "sampling rate in Hz (prompted for when omitted and input is a file)")
	start := flag.Float64("start", 10, "starting analysis frequency in Hz")
	damping := flag.Float64("damping", 0.05, "SDOF damping ratio")
	octave := flag.Int("octave", srs.OctaveSixth, "octave-band divisor code: 1=1/3, 2=1/6, 3=1/12, 4=1/24")
	workers := flag.Int("workers", 0, "goroutines across filter channels (<=1 = sequential)")
	spectral := flag.Bool("spectral", false, "warn when dominant input content exceeds the analysis ceiling")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: srs [flags] [input-file]\n\n")
		fmt.Fprintf(os.Stderr, "Computes a shock response spectrum from one acceleration sample per line.\n")
		fmt.Fprintf(os.Stderr, "Without an input file, samples are read from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  srs -rate 2000 shock.txt\n")
		fmt.Fprintf(os.Stderr, "  srs -rate 2000 -start 10 -octave 3 shock.txt\n")
		fmt.Fprintf(os.Stderr, "  cat shock.txt | srs -rate 2000\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "error: at most one input file\n")
		os.Exit(2)
	}

	signal, fromFile, err := loadSignal(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sampleRate := *rate
	if sampleRate <= 0 {
		if !fromFile {
			fmt.Fprintf(os.Stderr, "error: -rate is required when reading samples from stdin\n")
			os.Exit(2)
		}

		sampleRate, err = promptRate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := []srs.Option{
		srs.WithSampleRate(sampleRate),
		srs.WithStartFrequency(*start),
		srs.WithDampingRatio(*damping),
		srs.WithOctaveCode(*octave),
		srs.WithWorkers(*workers),
	}
	if *spectral {
		opts = append(opts, srs.WithSpectralCheck())
	}

	began := time.Now()

	res, err := srs.Compute(signal, opts...)

	elapsed := time.Since(began)

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d.Message)
	}

	printSpectrum(res)

	fmt.Fprintf(os.Stderr, "computed %d frequencies over %d samples in %v\n",
		len(res.Frequencies), len(signal), elapsed)
}

// loadSignal reads samples from path, or from stdin when path is empty.
// Loader warnings go to stderr; only read failures are fatal.
func loadSignal(path string) (signal []float64, fromFile bool, err error) {
	in := os.Stdin

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, false, err
		}
		defer f.Close()

		in = f
		fromFile = true
	}

	signal, warnings, err := textio.Load(in)
	if err != nil {
		return nil, fromFile, err
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	return signal, fromFile, nil
}

func promptRate() (float64, error) {
	fmt.Fprint(os.Stderr, "sampling rate (Hz): ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("read sampling rate: %w", err)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("parse sampling rate: %w", err)
	}

	return rate, nil
}

func printSpectrum(res srs.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Frequency (Hz)\tPeak\t\n")

	for i, f := range res.Frequencies {
		fmt.Fprintf(w, "%.4f\t%.6g\t\n", f, res.Peaks[i])
	}

	w.Flush()
}
