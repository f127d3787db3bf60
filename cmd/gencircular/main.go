// Command gencircular generates test cases for the circular functions.
// Arguments are drawn from one of four magnitude bands and rejected
// until they fall inside the band; argument and result are decoded with
// hexadecimal significands.
package main

import (
	"math/big"
	"math/rand/v2"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/db47h/fp237"
	"github.com/db47h/fp237/fpmath"
	"github.com/db47h/fp237/internal/genkit"
)

var funcs = map[string]func(z, x *fp237.Float) *fp237.Float{
	"sin":  (*fp237.Float).Sin,
	"cos":  (*fp237.Float).Cos,
	"tan":  (*fp237.Float).Tan,
	"asin": (*fp237.Float).Asin,
	"acos": (*fp237.Float).Acos,
	"atan": (*fp237.Float).Atan,
}

// tau returns 2π rounded to the working precision.
func tau() *fp237.Float {
	w := new(big.Float).SetPrec(fp237.Prec + 1)
	fpmath.Pi(w)
	w.SetMantExp(w, 1)
	return fp237.New(w)
}

// A band is a half-open magnitude interval [lo, hi) together with the
// leading bit exponents bounding the values it contains.
type band struct {
	lo, hi       *fp237.Float
	expLo, expHi int
}

func bands() map[string]band {
	t := tau()
	lower := fp237.Exp2(-120)
	one := fp237.Exp2(0)
	fast := fp237.Exp2(240)
	return map[string]band{
		"1": {lower, one, -120, 0},
		"C": {lower, t, -120, 2},
		"S": {t, fast, 2, 240},
		"L": {fast, nil, 240, fp237.Emax}, // open-ended: up to the largest finite value
	}
}

func main() {
	fn := getopt.StringLong("func", 'f', "sin", "circular function: sin cos tan asin acos atan")
	rng := getopt.StringLong("range", 'r', "C",
		"argument band: 1 = (0,1) C = (0,2π) S = (2π,2^240) L = large (asin/acos need 1)")
	count := getopt.IntLong("count", 'n', 25, "number of test cases")
	seed := getopt.Uint64Long("seed", 's', 1, "random seed")
	workers := getopt.IntLong("workers", 'w', 1, "parallel workers")
	compress := getopt.BoolLong("gzip", 'z', "gzip-compress the output")
	debug := getopt.BoolLong("debug", 'd', "log debug information")
	getopt.Parse()

	log := genkit.NewLogger(*debug)
	f, ok := funcs[*fn]
	if !ok {
		log.Error("unknown function", "func", *fn)
		getopt.Usage()
		os.Exit(2)
	}
	b, ok := bands()[*rng]
	if !ok {
		log.Error("unknown argument band", "range", *rng)
		getopt.Usage()
		os.Exit(2)
	}
	cfg := &genkit.Config{Count: *count, Seed: *seed, Workers: *workers, Compress: *compress}
	err := cfg.Generate(func(rnd *rand.Rand, emit func(cols ...string)) {
		// Signed comparison against the band ends also rejects the
		// negative samples, so all arguments come out positive.
		for {
			a := fp237.Random(rnd, b.expLo, b.expHi)
			if a.Cmp(b.lo) < 0 || b.hi != nil && a.Cmp(b.hi) >= 0 {
				continue
			}
			z := f(new(fp237.Float), a)
			out := genkit.TripleColsHex(a.Decode(false))
			out = append(out, genkit.TripleColsHex(z.Decode(false))...)
			emit(out...)
			return
		}
	})
	if err != nil {
		log.Error("generating test data", "err", err)
		os.Exit(1)
	}
}
