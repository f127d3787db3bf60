package fp237

import (
	"math/big"
	"testing"
)

// u128 parses a decimal significand half. Inputs are test constants, a
// parse failure is a broken test.
func u128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

func parseFloat(t *testing.T, s string) *Float {
	t.Helper()
	f, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return f
}

// scaled returns c × 2^e rounded to the working precision, with c
// treated as an exact integer.
func scaled(t *testing.T, c string, e int) *Float {
	t.Helper()
	m, ok := new(big.Int).SetString(c, 10)
	if !ok {
		t.Fatalf("invalid integer literal %q", c)
	}
	f := new(big.Float).SetPrec(uint(max(m.BitLen(), 1))).SetInt(m)
	f.SetMantExp(f, e)
	return New(f)
}

func TestDecodeFromString(t *testing.T) {
	for _, test := range []struct {
		lit  string
		want Triple
	}{
		{"17.625", Triple{0, -3, U128(0, 0), U128(0, 141)}},
		{"-0.9818036132127703363504450836394764653184121e-78913", Triple{1, -262378,
			u128("128347527004149295075436743924545"),
			u128("200698461692417807477600193256349332369")}},
		{"-21.75e-78985", Triple{1, -262378, U128(0, 0), U128(0, 1)}},
		{"320.1000009", Triple{0, -228,
			u128("405774958273941771624501157387890"),
			u128("164981958326160731124041003267846608813")}},
	} {
		f := parseFloat(t, test.lit)
		if got := f.Decode(true); got != test.want {
			t.Errorf("Decode(%q) = %v, want %v", test.lit, got, test.want)
		}
	}
}

func TestDecodeFullWidth(t *testing.T) {
	// 17.625 = 141 × 2^-3; the stored significand keeps its trailing
	// zeros, so the unreduced form is 141·2^229 × 2^-232.
	f := parseFloat(t, "17.625")
	want := Triple{0, -232, U128(141 << 37, 0), U128(0, 0)}
	if got := f.Decode(false); got != want {
		t.Errorf("Decode(false) = %v, want %v", got, want)
	}
}

func TestDecodeMinSubnormal(t *testing.T) {
	f := Exp2(MinExpSubnormal)
	want := Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 1)}
	if got := f.Decode(true); got != want {
		t.Errorf("Decode(2^%d) = %v, want %v", MinExpSubnormal, got, want)
	}
}

func TestDecodeMaxFinite(t *testing.T) {
	// (2^237 - 1) × 2^(Emax-Prec+1) is the largest finite value.
	f := scaled(t, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Prec), big.NewInt(1)).String(), Emax-pm1)
	want := Triple{0, Emax - pm1, U128(1<<45-1, ^uint64(0)), U128(^uint64(0), ^uint64(0))}
	if got := f.Decode(true); got != want {
		t.Errorf("Decode(max) = %v, want %v", got, want)
	}
}

func TestDecodeZero(t *testing.T) {
	if got := new(Float).Decode(true); got != (Triple{}) {
		t.Errorf("Decode(0) = %v, want zero triple", got)
	}
	f := parseFloat(t, "-0.0")
	if got := f.Decode(false); got != (Triple{Sign: 1}) {
		t.Errorf("Decode(-0) = %v, want (1, 0, (0, 0))", got)
	}
}

func TestDecodeOverflow(t *testing.T) {
	f := Exp2(Emax + 7) // representable as a big.Float, beyond the format
	want := Triple{0, Emax + 1, U128(0, 0), U128(0, 0)}
	if got := f.Decode(false); got != want {
		t.Errorf("Decode(2^%d) = %v, want %v", Emax+7, got, want)
	}

	// 2^Emax is finite; its full-width decomposition sits exactly on the
	// overflow bound.
	f = Exp2(Emax)
	want = Triple{0, Emax - pm1, U128(1 << 44, 0), U128(0, 0)}
	if got := f.Decode(false); got != want {
		t.Errorf("Decode(2^%d) = %v, want %v", Emax, got, want)
	}
	// Reducing 2^Emax to significand 1 pushes the scale exponent past
	// the bound and yields the sentinel.
	want = Triple{0, Emax + 1, U128(0, 0), U128(0, 0)}
	if got := f.Decode(true); got != want {
		t.Errorf("Decode(2^%d) reduced = %v, want %v", Emax, got, want)
	}
}

func TestDecodeSubnormalRounding(t *testing.T) {
	// 2^-262379 is half a quantum: an exact tie rounds up.
	z := new(Float).Mul(Exp2(-131190), Exp2(-131189))
	want := Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 1)}
	if got := z.Decode(false); got != want {
		t.Errorf("Decode(2^-262379) = %v, want %v", got, want)
	}

	// 5 × 2^-262379 ties between 2 and 3 quanta; an exact tie rounds up
	// even onto an odd significand.
	z = new(Float).Mul(scaled(t, "5", -131190), Exp2(-131189))
	want = Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 3)}
	if got := z.Decode(false); got != want {
		t.Errorf("Decode(5×2^-262379) = %v, want %v", got, want)
	}
}

func TestDecodeTieWitness(t *testing.T) {
	// 2^-262377 + (2^-262379 - 2^-262615) rounds up to exactly two and a
	// half quanta (witness Above). The decode tie must then keep the even
	// neighbor instead of rounding up a second time.
	y := new(Float).Sub(Exp2(-262379), Exp2(-262615))
	if y.Acc() != big.Exact {
		t.Fatalf("tie operand accuracy = %v, want Exact", y.Acc())
	}
	z := new(Float).Add(Exp2(-262377), y)
	if z.Acc() != big.Above {
		t.Fatalf("sum accuracy = %v, want Above", z.Acc())
	}
	want := Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 2)}
	if got := z.Decode(false); got != want {
		t.Errorf("Decode = %v, want %v", got, want)
	}

	// With the small term on the other side the sum rounds down to the
	// same two and a half quanta (witness Below), and the apparent tie
	// rounds up.
	y = new(Float).Add(Exp2(-262379), Exp2(-262615))
	if y.Acc() != big.Exact {
		t.Fatalf("tie operand accuracy = %v, want Exact", y.Acc())
	}
	z = new(Float).Add(Exp2(-262377), y)
	if z.Acc() != big.Below {
		t.Fatalf("sum accuracy = %v, want Below", z.Acc())
	}
	want = Triple{0, MinExpSubnormal, U128(0, 0), U128(0, 3)}
	if got := z.Decode(false); got != want {
		t.Errorf("Decode = %v, want %v", got, want)
	}
}

func TestDecodeNonFinite(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Decode of non-finite value did not panic")
		}
	}()
	f := new(big.Float).SetInf(false)
	New(f).Decode(false)
}
