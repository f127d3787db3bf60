// Command calctables computes the constant tables used by fixed-point
// implementations of the circular functions: π and π/2 at 249 bits, the
// CORDIC arc tangent table, and the CORDIC gain and its reciprocal at
// 255 bits. The tables are emitted as Go source text.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/db47h/fp237"
	"github.com/db47h/fp237/fpmath"
	"github.com/db47h/fp237/internal/genkit"
)

const (
	atanPrec   = 249
	cordicPrec = 255
)

// intExp returns m and e such that f = m·2^e with m holding all of f's
// precision bits.
func intExp(f *big.Float) (*big.Int, int) {
	prec := int(f.Prec())
	mant := new(big.Float)
	exp := f.MantExp(mant)
	mant.SetMantExp(mant, prec)
	m, _ := mant.Int(nil)
	return m, exp - prec
}

func pow2(e int) *big.Float {
	f := new(big.Float).SetPrec(1).SetInt64(1)
	return f.SetMantExp(f, e)
}

// signif splits m into its high and low 128-bit halves.
func signif(m *big.Int) (hi, lo fp237.Uint128) {
	return fp237.U128FromBig(new(big.Int).Rsh(m, 128)), fp237.U128FromBig(m)
}

func calcPi() error {
	pi := new(big.Float).SetPrec(atanPrec + 1)
	fpmath.Pi(pi)
	m, e := intExp(pi)
	if e != -(atanPrec - 1) {
		return fmt.Errorf("unexpected π scale: 2^%d", e)
	}
	hi, lo := signif(m)
	fmt.Printf("// %s\n", pi.Text('e', 76))
	fmt.Printf("var pi248 = fp248{sign: 0, signif: u256{%s, %s}}\n\n", hi.Hex(), lo.Hex())

	t := new(big.Float).SetPrec(atanPrec + 1).Set(pi)
	t.SetMantExp(t, -1)
	halfPi := new(big.Float).SetPrec(atanPrec).Set(t)
	m, e = intExp(halfPi)
	if e != -(atanPrec - 1) {
		return fmt.Errorf("unexpected π/2 scale: 2^%d", e)
	}
	hi, lo = signif(m)
	fmt.Printf("// %s\n", halfPi.Text('e', 76))
	fmt.Printf("var halfPi248 = fp248{sign: 0, signif: u256{%s, %s}}\n", hi.Hex(), lo.Hex())
	return nil
}

// calcAtans prints atan(2^-i) for i = 0..248, all aligned to the fixed
// scale 2^-248.
func calcAtans() error {
	fmt.Printf("var atans = [%d]fp248{\n", atanPrec)
	for i := 0; i < atanPrec; i++ {
		a := new(big.Float).SetPrec(atanPrec)
		fpmath.Atan(a, pow2(-i))
		m, e := intExp(a)
		shift := -atanPrec - e + 1
		if shift < 0 {
			return fmt.Errorf("atan(2^-%d): unexpected scale 2^%d", i, e)
		}
		m.Rsh(m, uint(shift))
		hi, lo := signif(m)
		fmt.Printf("\t// %s\n", a.Text('e', 76))
		fmt.Printf("\t{sign: 0, signif: u256{%s, %s}},\n", hi.Hex(), lo.Hex())
	}
	fmt.Println("}")
	return nil
}

// calcCordic prints the CORDIC gain K = ∏ √(1+2^-2i) and its
// reciprocal.
func calcCordic() error {
	one := new(big.Float).SetPrec(cordicPrec).SetInt64(1)
	k := new(big.Float).SetPrec(cordicPrec).SetInt64(1)
	t := new(big.Float).SetPrec(cordicPrec)
	for i := 0; i <= cordicPrec; i++ {
		t.Add(one, pow2(-2*i))
		t.Sqrt(t)
		k.Mul(k, t)
	}
	dump := func(name string, f *big.Float) {
		m, e := intExp(f)
		e += cordicPrec - 1
		hi, lo := signif(m)
		fmt.Printf("// ≈%s\n", f.Text('e', 78))
		fmt.Printf("var %s = fp255{sign: 0, exp: %d, signif: u256{%s, %s}}\n", name, e, hi.Hex(), lo.Hex())
	}
	dump("cordicK", k)
	p := new(big.Float).SetPrec(cordicPrec).Quo(one, k)
	dump("cordicP", p)
	return nil
}

var tables = map[string]func() error{
	"pi":     calcPi,
	"atans":  calcAtans,
	"cordic": calcCordic,
}

func main() {
	table := getopt.StringLong("table", 't', "pi", "table to compute: pi atans cordic")
	debug := getopt.BoolLong("debug", 'd', "log debug information")
	getopt.Parse()

	log := genkit.NewLogger(*debug)
	calc, ok := tables[*table]
	if !ok {
		log.Error("unknown table", "table", *table)
		getopt.Usage()
		os.Exit(2)
	}
	if err := calc(); err != nil {
		log.Error("computing table", "err", err)
		os.Exit(1)
	}
}
