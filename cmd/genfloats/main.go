// Command genfloats generates decimal literals together with their
// decoded binary representation. Each output line holds the quoted
// literal followed by the sign, exponent and significand halves of the
// value it parses to.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/pborman/getopt/v2"

	"github.com/db47h/fp237"
	"github.com/db47h/fp237/internal/genkit"
)

// Decimal exponent limits of the binary256 range.
const (
	e10Max = 78913
	e10Min = 1 - e10Max
)

const (
	maxDigits          = 77
	fastExactMaxDigits = 71
	slowMaxDigits      = 80
	extremeMaxDigits   = 183470
)

// A class bounds the decimal exponent and digit count of the generated
// literals.
type class struct {
	expLo, expHi int
	maxDigits    int
}

var classes = map[string]class{
	"E": {-102, 102, fastExactMaxDigits}, // exactly representable fast path
	"A": {-512, 512, maxDigits},          // approximate fast path
	"N": {-1024, 1024, slowMaxDigits},
	"X": {e10Min, e10Max, extremeMaxDigits},
	"S": {e10Min - maxDigits, e10Min, slowMaxDigits}, // subnormal results
}

var signs = [3]string{"+", "-", ""}

// literal builds a random decimal literal whose exponent and number of
// digits are bounded by c. The literal always carries at least one
// non-zero digit.
func literal(rng *rand.Rand, c class) string {
	var b strings.Builder
	b.WriteString(signs[rng.IntN(3)])
	nDigits := genkit.RandInt(rng, 1, c.maxDigits)
	nFract := rng.IntN(nDigits)
	nInt := nDigits - nFract
	signif := false
	digits := func(n int) string {
		var d strings.Builder
		for i := 0; i < n; i++ {
			c := byte(rng.IntN(10))
			if c > 0 {
				signif = true
			}
			d.WriteByte('0' + c)
		}
		return d.String()
	}
	intPart := digits(nInt)
	fract := digits(nFract)
	if !signif {
		fract += "7"
		nFract++
	}
	exp := genkit.RandInt(rng, c.expLo, c.expHi) + nFract
	if exp == 0 {
		fmt.Fprintf(&b, "%s.%s", intPart, fract)
		return b.String()
	}
	if nFract == 0 {
		fract = "0"
	}
	fmt.Fprintf(&b, "%s.%se%d", intPart, fract, exp)
	return b.String()
}

func main() {
	typ := getopt.StringLong("type", 't', "E", "number class: E A N S X")
	count := getopt.IntLong("count", 'n', 10, "number of test cases")
	seed := getopt.Uint64Long("seed", 's', 1, "random seed")
	workers := getopt.IntLong("workers", 'w', 1, "parallel workers")
	compress := getopt.BoolLong("gzip", 'z', "gzip-compress the output")
	debug := getopt.BoolLong("debug", 'd', "log debug information")
	getopt.Parse()

	log := genkit.NewLogger(*debug)
	c, ok := classes[*typ]
	if !ok {
		log.Error("unknown number class", "type", *typ)
		getopt.Usage()
		os.Exit(2)
	}
	cfg := &genkit.Config{Count: *count, Seed: *seed, Workers: *workers, Compress: *compress}
	err := cfg.Generate(func(rng *rand.Rand, emit func(cols ...string)) {
		s := literal(rng, c)
		f, err := fp237.Parse(s)
		if err != nil {
			log.Error("parsing generated literal", "literal", s, "err", err)
			os.Exit(1)
		}
		emit(append([]string{`"` + s + `"`}, genkit.TripleCols(f.Decode(true))...)...)
	})
	if err != nil {
		log.Error("generating test data", "err", err)
		os.Exit(1)
	}
}
