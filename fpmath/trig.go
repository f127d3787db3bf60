package fpmath

import "math/big"

// floorInt returns ⌊x⌋ as a big.Int.
func floorInt(x *big.Float) *big.Int {
	i, acc := x.Int(nil)
	if acc == big.Above {
		// Int truncates toward zero, which rounds negative values up.
		i.Sub(i, big.NewInt(1))
	}
	return i
}

// reduce returns r and a quadrant q such that x = n·(π/2) + r with
// n ≡ q (mod 4) and |r| ≤ π/4, computed so that r keeps a relative
// accuracy of roughly 2^(-wp). The working precision grows with the
// argument's exponent, and again when x lies close to a multiple of π/2
// and the subtraction cancels.
func reduce(x *big.Float, wp uint) (r *big.Float, quad int) {
	ex := x.MantExp(nil)
	pp := wp + 32
	if ex > 0 {
		pp += uint(ex)
	}
	half := pow2(-1)
	for {
		halfPi := newF(pp)
		Pi(halfPi)
		halfPi.SetMantExp(halfPi, -1)
		t := newF(pp).Quo(x, halfPi)
		n := floorInt(t.Add(t, half)) // nearest integer multiple
		if n.Sign() == 0 {
			// |x| ≤ π/4 and exact: no reduction needed
			return newF(wp + 32).Set(x), 0
		}
		m := newF(pp).SetInt(n)
		m.Mul(m, halfPi)
		r = newF(wp + 32).Sub(x, m)
		// The absolute error of n·π/2 is about 2^(ex-pp). The series
		// needs r with relative error 2^(-wp), so cancellation in the
		// subtraction must be paid for with extra π bits.
		if r.Sign() != 0 {
			er := r.MantExp(nil)
			if need := ex - er + int(wp) + 32; int(pp) >= need {
				quad = int(new(big.Int).Mod(n, big.NewInt(4)).Int64())
				return r, quad
			} else if need > int(pp) {
				pp = uint(need) + 32
				continue
			}
		}
		pp += pp / 2
	}
}

// sinCosSeries evaluates the Maclaurin series of sine and cosine at r,
// |r| ≤ π/4, to about wp bits.
func sinCosSeries(r *big.Float, wp uint) (sn, cs *big.Float) {
	pp := wp + 16
	r2 := newF(pp).Mul(r, r)
	sn = newF(pp).Set(r)
	cs = newF(pp).SetInt64(1)
	ts := newF(pp).Set(r)
	tc := newF(pp).SetInt64(1)
	d := newF(pp)
	cut := -int(pp) + 2
	for k := int64(1); ; k++ {
		tc.Mul(tc, r2)
		tc.Quo(tc, d.SetInt64((2*k-1)*(2*k)))
		tc.Neg(tc)
		cs.Add(cs, tc)
		ts.Mul(ts, r2)
		ts.Quo(ts, d.SetInt64((2*k)*(2*k+1)))
		ts.Neg(ts)
		sn.Add(sn, ts)
		if tc.MantExp(nil) < cut && ts.MantExp(nil) < cut {
			return sn, cs
		}
	}
}

// Sin sets z to sin x computed to z's precision and returns z.
func Sin(z *big.Float, x *big.Float) *big.Float {
	wp := workPrec(z)
	r, q := reduce(x, wp)
	sn, cs := sinCosSeries(r, wp)
	switch q {
	case 0:
		return z.Set(sn)
	case 1:
		return z.Set(cs)
	case 2:
		return z.Set(sn.Neg(sn))
	default:
		return z.Set(cs.Neg(cs))
	}
}

// Cos sets z to cos x computed to z's precision and returns z.
func Cos(z *big.Float, x *big.Float) *big.Float {
	wp := workPrec(z)
	r, q := reduce(x, wp)
	sn, cs := sinCosSeries(r, wp)
	switch q {
	case 0:
		return z.Set(cs)
	case 1:
		return z.Set(sn.Neg(sn))
	case 2:
		return z.Set(cs.Neg(cs))
	default:
		return z.Set(sn)
	}
}

// Tan sets z to tan x computed to z's precision and returns z.
func Tan(z *big.Float, x *big.Float) *big.Float {
	wp := workPrec(z)
	r, q := reduce(x, wp)
	sn, cs := sinCosSeries(r, wp)
	t := newF(wp + 16)
	if q%2 == 0 {
		t.Quo(sn, cs)
	} else {
		t.Quo(cs, sn)
		t.Neg(t)
	}
	return z.Set(t)
}

func workPrec(z *big.Float) uint {
	prec := z.Prec()
	if prec == 0 {
		prec = 64
		z.SetPrec(prec)
	}
	return prec + 16
}
