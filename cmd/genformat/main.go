// Command genformat generates test cases for scientific-notation
// formatting: a random value, a random display precision, and the
// literal the value formats to at that precision.
package main

import (
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/pborman/getopt/v2"

	"github.com/db47h/fp237"
	"github.com/db47h/fp237/internal/genkit"
)

const fractionBits = fp237.Prec - 1

// Leading bit exponent ranges per value class.
var classes = map[string]struct{ lo, hi int }{
	"N": {-fractionBits, -1},                         // small fractions
	"I": {0, 512 - fp237.Prec},                       // small integers
	"F": {fp237.Emin, -fractionBits - 1},             // values with huge fractional parts
	"X": {512 - fp237.Prec + 1, fp237.Emax - fractionBits}, // large integers
	"S": {fp237.MinExpSubnormal, fp237.Emin - 1},
}

func main() {
	typ := getopt.StringLong("type", 't', "N", "value class: N I F S X")
	count := getopt.IntLong("count", 'n', 10, "number of test cases")
	seed := getopt.Uint64Long("seed", 's', 1, "random seed")
	workers := getopt.IntLong("workers", 'w', 1, "parallel workers")
	compress := getopt.BoolLong("gzip", 'z', "gzip-compress the output")
	debug := getopt.BoolLong("debug", 'd', "log debug information")
	getopt.Parse()

	log := genkit.NewLogger(*debug)
	c, ok := classes[*typ]
	if !ok {
		log.Error("unknown value class", "type", *typ)
		getopt.Usage()
		os.Exit(2)
	}
	cfg := &genkit.Config{Count: *count, Seed: *seed, Workers: *workers, Compress: *compress}
	err := cfg.Generate(func(rng *rand.Rand, emit func(cols ...string)) {
		f := fp237.Random(rng, c.lo, c.hi)
		p := rng.IntN(76)
		s := f.Text(p)
		out := genkit.TripleCols(f.Decode(false))
		out = append(out, strconv.Itoa(p), `"`+s+`"`)
		emit(out...)
	})
	if err != nil {
		log.Error("generating test data", "err", err)
		os.Exit(1)
	}
}
