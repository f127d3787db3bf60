package fp237

import (
	"fmt"
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	f := parseFloat(t, "17.625")
	if f.Acc() != big.Exact {
		t.Errorf("accuracy = %v, want Exact", f.Acc())
	}
	if _, err := Parse("foo"); err == nil {
		t.Error("Parse(foo) did not fail")
	}
	// decimal exponent beyond any binary range
	if _, err := Parse("1e100000000000"); err == nil {
		t.Error("Parse(1e100000000000) did not fail")
	}
}

// scaledLiteral returns the decimal literal of k × 2^-e for e > 0.
func scaledLiteral(k *big.Int, e int) string {
	m := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(e)), nil)
	m.Mul(m, k)
	return fmt.Sprintf("%se-%d", m, e)
}

func TestParseExactWitness(t *testing.T) {
	// 5^120 × 10^-120 is exactly 2^-120, even though the integer 5^120
	// needs more than Prec bits; the witness must come out Exact.
	f := parseFloat(t, scaledLiteral(big.NewInt(1), 120))
	if f.Cmp(Exp2(-120)) != 0 {
		t.Fatalf("got %v, want 2^-120", f.Decode(true))
	}
	if f.Acc() != big.Exact {
		t.Errorf("accuracy = %v, want Exact", f.Acc())
	}
}

func TestParseSubnormalTies(t *testing.T) {
	// Literals sitting exactly on half-quantum multiples round half to
	// even on the subnormal grid.
	for _, test := range []struct {
		k    int64
		want Triple
		acc  big.Accuracy
	}{
		{3, Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 2)}, big.Above},
		{5, Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 2)}, big.Below},
		{7, Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 4)}, big.Above},
		{-5, Triple{1, MinExpSubnormal, U128(0, 0), U128(0, 2)}, big.Above},
	} {
		f := parseFloat(t, scaledLiteral(big.NewInt(test.k), -MinExpSubnormal+1))
		if got := f.Decode(false); got != test.want {
			t.Errorf("%d×2^%d: Decode = %v, want %v", test.k, MinExpSubnormal-1, got, test.want)
		}
		if f.Acc() != test.acc {
			t.Errorf("%d×2^%d: accuracy = %v, want %v", test.k, MinExpSubnormal-1, f.Acc(), test.acc)
		}
	}
}

func TestParseTieWitness(t *testing.T) {
	// 5×2^-262379 ± 2^-262700 rounds onto the tie at the working
	// precision; the recorded rounding direction then decides the
	// apparent tie instead of the even-significand rule.
	k := new(big.Int).Lsh(big.NewInt(5), 321)
	f := parseFloat(t, scaledLiteral(new(big.Int).Add(k, big.NewInt(1)), 262700))
	want := Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 3)}
	if got := f.Decode(false); got != want {
		t.Errorf("above tie: Decode = %v, want %v", got, want)
	}

	f = parseFloat(t, scaledLiteral(new(big.Int).Sub(k, big.NewInt(1)), 262700))
	want = Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 2)}
	if got := f.Decode(false); got != want {
		t.Errorf("below tie: Decode = %v, want %v", got, want)
	}
}

func TestSetString(t *testing.T) {
	z := new(Float)
	if _, ok := z.SetString("-1.5e-10"); !ok {
		t.Fatal("SetString(-1.5e-10) failed")
	}
	if z.Sign() != -1 {
		t.Errorf("sign = %d, want -1", z.Sign())
	}
	if _, ok := new(Float).SetString("12..5"); ok {
		t.Error("SetString(12..5) did not fail")
	}
}

func TestExp2(t *testing.T) {
	want := Triple{0, 3, U128(0, 0), U128(0, 1)}
	if got := Exp2(3).Decode(true); got != want {
		t.Errorf("Exp2(3) = %v, want %v", got, want)
	}
	if acc := Exp2(-5).Acc(); acc != big.Exact {
		t.Errorf("Exp2(-5) accuracy = %v, want Exact", acc)
	}
}

func TestPi(t *testing.T) {
	pi := Pi()
	want := Triple{0, -235,
		u128("509752552063449262552108942585883"),
		u128("174929234171320688473765933587459524450")}
	if got := pi.Decode(false); got != want {
		t.Errorf("Pi = %v, want %v", got, want)
	}
	if pi.Acc() != big.Below {
		t.Errorf("Pi accuracy = %v, want Below", pi.Acc())
	}
}

func TestLog2(t *testing.T) {
	want := Triple{0, -237,
		u128("449878241015459621692550931480702"),
		u128("126058098762831240896900834817458532725")}
	if got := Log2().Decode(true); got != want {
		t.Errorf("Log2 = %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		f    *Float
		want string
	}{
		{parseFloat(t, "123"), "123"},
		{parseFloat(t, "-17.625"), "-17.625"},
		// 2^250 has 76 digits; String rounds integral values half-even
		// onto 72 significant digits.
		{Exp2(250), "1809251394333065553493296640760748560207343510400633813116524750123642650000"},
	} {
		if got := test.f.String(); got != test.want {
			t.Errorf("String = %q, want %q", got, test.want)
		}
	}
}

func TestText(t *testing.T) {
	f := parseFloat(t, "17.625")
	if got := f.Text(3); got != "1.762e+01" {
		t.Errorf("Text(3) = %q, want %q", got, "1.762e+01")
	}
	if got := f.Text(0); got != "2e+01" {
		t.Errorf("Text(0) = %q, want %q", got, "2e+01")
	}
}

func TestNegAbsSet(t *testing.T) {
	x := new(Float).Add(New(oneFloat), Exp2(-300)) // rounds down, acc Below
	n := new(Float).Neg(x)
	if n.Sign() != -1 || n.Acc() != big.Above {
		t.Errorf("Neg: sign %d acc %v, want -1 Above", n.Sign(), n.Acc())
	}
	a := new(Float).Abs(n)
	if a.Sign() != 1 || a.Acc() != big.Below {
		t.Errorf("Abs: sign %d acc %v, want 1 Below", a.Sign(), a.Acc())
	}
	s := new(Float).Set(n)
	if s.Cmp(n) != 0 || s.Acc() != n.Acc() {
		t.Error("Set did not preserve value and accuracy")
	}
}

func TestZeroValue(t *testing.T) {
	var z Float
	if z.Sign() != 0 || z.Acc() != big.Exact {
		t.Errorf("zero value: sign %d acc %v", z.Sign(), z.Acc())
	}
	if got := z.Decode(true); got != (Triple{}) {
		t.Errorf("zero value decodes to %v", got)
	}
	// operating on the zero value must not mutate the shared backing
	w := new(Float).Add(&z, New(oneFloat))
	if w.Sign() != 1 || z.Sign() != 0 {
		t.Error("Add with zero value operand misbehaved")
	}
}
