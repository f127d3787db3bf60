// Package genkit is the shared runtime of the test-data generators:
// deterministic, seeded parallel generation and tab-separated output.
package genkit

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/fp237"
)

// A Config drives one generation run.
type Config struct {
	Count    int       // number of test cases to generate
	Seed     uint64    // base RNG seed
	Workers  int       // parallel workers; values < 1 mean one
	Compress bool      // gzip-compress the output
	Out      io.Writer // destination; nil means os.Stdout
}

// Generate calls gen Count times, fanned out over Workers goroutines,
// and writes the emitted records as tab-separated lines. Worker i draws
// from its own PCG stream seeded with (Seed, i) and buffers its share
// of the output, which is then written in worker order: a corpus is a
// pure function of (Seed, Workers, Count), independent of scheduling.
func (c *Config) Generate(gen func(rng *rand.Rand, emit func(cols ...string))) error {
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > c.Count && c.Count > 0 {
		workers = c.Count
	}
	bufs := make([]bytes.Buffer, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		share := c.Count / workers
		if i < c.Count%workers {
			share++
		}
		buf := &bufs[i]
		seq := uint64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(c.Seed, seq))
			emit := func(cols ...string) {
				buf.WriteString(strings.Join(cols, "\t"))
				buf.WriteByte('\n')
			}
			for n := 0; n < share; n++ {
				gen(rng, emit)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	bw := bufio.NewWriter(out)
	var dst io.Writer = bw
	var zw *gzip.Writer
	if c.Compress {
		zw = gzip.NewWriter(bw)
		dst = zw
	}
	for i := range bufs {
		if _, err := dst.Write(bufs[i].Bytes()); err != nil {
			return fmt.Errorf("genkit: writing output: %w", err)
		}
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("genkit: closing gzip stream: %w", err)
		}
	}
	return bw.Flush()
}

// TripleCols returns the four decimal output columns of a decoded
// triple: sign, exponent, and the two 128-bit significand halves.
func TripleCols(t fp237.Triple) []string {
	return []string{
		strconv.Itoa(t.Sign),
		strconv.FormatInt(int64(t.Exp), 10),
		t.Hi.String(),
		t.Lo.String(),
	}
}

// TripleColsHex is TripleCols with hexadecimal significand halves, the
// layout used by the circular-function corpora.
func TripleColsHex(t fp237.Triple) []string {
	return []string{
		strconv.Itoa(t.Sign),
		strconv.FormatInt(int64(t.Exp), 10),
		t.Hi.Hex(),
		t.Lo.Hex(),
	}
}

// RandInt returns a uniformly distributed integer in [lo, hi].
func RandInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
