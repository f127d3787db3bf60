// Command genarith generates test cases for the arithmetic operations:
// random operands drawn from exponent ranges tuned per operation, with
// operands and result decoded on one tab-separated line.
package main

import (
	"math"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/pborman/getopt/v2"

	"github.com/db47h/fp237"
	"github.com/db47h/fp237/internal/genkit"
)

const pm1 = fp237.Prec - 1

// random draws a value whose leading bit exponent lies in [lo, hi],
// clamped to the representable range.
func random(rng *rand.Rand, lo, hi int) *fp237.Float {
	lo = max(lo, fp237.MinExpSubnormal)
	hi = min(hi, fp237.Emax)
	return fp237.Random(rng, lo, hi)
}

// scaleExp returns the exponent of x scaled as an integer times a power
// of two, keeping trailing zeros of the significand.
func scaleExp(x *fp237.Float) int {
	return int(x.Decode(false).Exp)
}

func cols(fs ...*fp237.Float) []string {
	var out []string
	for _, f := range fs {
		out = append(out, genkit.TripleCols(f.Decode(true))...)
	}
	return out
}

// genAdd also covers subtraction: operand signs are random, so about
// half of the sums are effective differences. One case in 20 pairs a
// borderline-subnormal x with a subnormal y.
func genAdd(rng *rand.Rand, emit func(cols ...string)) {
	var x, y *fp237.Float
	if rng.IntN(20) == 0 {
		x = random(rng, fp237.MinExpSubnormal, fp237.Emin+2)
		y = random(rng, fp237.MinExpSubnormal, fp237.Emin-1)
	} else {
		x = random(rng, fp237.Emin, fp237.Emax)
		e := scaleExp(x)
		y = random(rng, e-fp237.Prec, e+fp237.Prec)
	}
	z := new(fp237.Float).Add(x, y)
	emit(cols(x, y, z)...)
}

// genMul bounds y's lead exponent so that the product's lead exponent
// stays at or below Emax even when the significand product carries.
func genMul(rng *rand.Rand, emit func(cols ...string)) {
	x := random(rng, fp237.Emin, fp237.Emax)
	lx := scaleExp(x) + pm1
	y := random(rng, fp237.MinExpSubnormal-lx+pm1, fp237.Emax-lx-1)
	z := new(fp237.Float).Mul(x, y)
	emit(cols(x, y, z)...)
}

func genDiv(rng *rand.Rand, emit func(cols ...string)) {
	x := random(rng, fp237.Emin, fp237.Emax)
	lx := scaleExp(x) + pm1
	y := random(rng, lx-fp237.Emax+1, lx-fp237.MinExpSubnormal-1)
	z := new(fp237.Float).Quo(x, y)
	emit(cols(x, y, z)...)
}

// genRem keeps the quotient x/y away from overflow and underflow by
// bounding y's exponent relative to x's. One case in 50 involves a
// subnormal divisor, half of those a subnormal dividend as well.
func genRem(rng *rand.Rand, emit func(cols ...string)) {
	var x, y *fp237.Float
	switch rng.IntN(100) {
	case 0:
		x = random(rng, fp237.Emin, fp237.Emax)
		y = random(rng, fp237.MinExpSubnormal+1, fp237.Emin-1)
	case 1:
		x = random(rng, fp237.MinExpSubnormal+1, fp237.Emin-1)
		y = random(rng, fp237.MinExpSubnormal+1, fp237.Emin-1)
	default:
		x = random(rng, fp237.Emin, fp237.Emax)
		e := scaleExp(x)
		lo := max(fp237.Emin-pm1, e-pm1-fp237.Emax+2)
		hi := min(fp237.Emax-pm1, e-pm1-fp237.Emin-2)
		y = random(rng, lo, hi)
	}
	z := new(fp237.Float).Rem(x, y)
	emit(cols(x, y, z)...)
}

// genSqrt draws one case in 100 from the subnormal range.
func genSqrt(rng *rand.Rand, emit func(cols ...string)) {
	var x *fp237.Float
	if rng.IntN(100) == 0 {
		x = random(rng, fp237.MinExpSubnormal, fp237.Emin-1)
	} else {
		x = random(rng, fp237.Emin, fp237.Emax-pm1)
	}
	x.Abs(x)
	z := new(fp237.Float).Sqrt(x)
	emit(cols(x, z)...)
}

// genFMA bounds y so that x·y stays in range, and emits a case only
// when the fused result differs from multiply-then-add: the others
// would not exercise the fused rounding at all.
func genFMA(rng *rand.Rand, emit func(cols ...string)) {
	x := random(rng, fp237.MinExpSubnormal, fp237.Emax)
	e := scaleExp(x)
	lo := max(fp237.Emin-pm1, fp237.Emin-pm1-e)
	hi := min(fp237.Emax-pm1, fp237.Emax-pm1-e)
	y := random(rng, lo, hi)
	a := random(rng, fp237.MinExpSubnormal, fp237.Emax)
	z := new(fp237.Float).FMA(x, y, a)
	t := new(fp237.Float).Mul(x, y)
	t.Add(t, a)
	if z.Decode(true) != t.Decode(true) {
		emit(cols(x, y, a, z)...)
	}
}

func genSos(rng *rand.Rand, emit func(cols ...string)) {
	x := random(rng, fp237.Emin/4-1, fp237.Emax/4+1)
	y := random(rng, fp237.Emin/4-1, fp237.Emax/4+1)
	z := new(fp237.Float).Sos(x, y)
	emit(cols(x, y, z)...)
}

// genPowi bounds the integer exponent so that x^n stays in range.
func genPowi(rng *rand.Rand, emit func(cols ...string)) {
	x := random(rng, -275, 275)
	e := scaleExp(x)
	upper := fp237.Emax
	if e != 0 {
		if e < 0 {
			e = -e
		}
		upper = int(math.Sqrt(float64(fp237.Emax / e)))
	}
	n := genkit.RandInt(rng, 2, upper)
	z := new(fp237.Float).PowInt(x, n)
	out := cols(x)
	out = append(out, strconv.Itoa(n))
	out = append(out, cols(z)...)
	emit(out...)
}

var ops = map[string]func(*rand.Rand, func(...string)){
	"add":  genAdd,
	"mul":  genMul,
	"div":  genDiv,
	"rem":  genRem,
	"sqrt": genSqrt,
	"fma":  genFMA,
	"sos":  genSos,
	"powi": genPowi,
}

func main() {
	op := getopt.StringLong("op", 'o', "add", "operation: add mul div rem sqrt fma sos powi")
	count := getopt.IntLong("count", 'n', 25, "number of test cases")
	seed := getopt.Uint64Long("seed", 's', 1, "random seed")
	workers := getopt.IntLong("workers", 'w', 1, "parallel workers")
	compress := getopt.BoolLong("gzip", 'z', "gzip-compress the output")
	debug := getopt.BoolLong("debug", 'd', "log debug information")
	getopt.Parse()

	log := genkit.NewLogger(*debug)
	gen, ok := ops[*op]
	if !ok {
		log.Error("unknown operation", "op", *op)
		getopt.Usage()
		os.Exit(2)
	}
	cfg := &genkit.Config{Count: *count, Seed: *seed, Workers: *workers, Compress: *compress}
	if err := cfg.Generate(gen); err != nil {
		log.Error("generating test data", "err", err)
		os.Exit(1)
	}
}
