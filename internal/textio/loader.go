// Package textio loads acceleration time histories from line-oriented
// text: one floating-point sample per line.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line. Sample lines are short; a
// longer line is almost certainly not sample data.
const maxLineBytes = 1 << 16

// Load reads samples from r, one per line. Blank lines are skipped.
// Unparsable lines are dropped with a per-line warning rather than
// failing the load; only reader errors are fatal.
func Load(r io.Reader) ([]float64, []string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		samples  []float64
		warnings []string
	)

	line := 0
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: cannot parse %q as a sample", line, text))
			continue
		}

		samples = append(samples, v)
	}

	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("textio: read input: %w", err)
	}

	return samples, warnings, nil
}
