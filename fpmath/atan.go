package fpmath

import "math/big"

// atanSeries evaluates the Maclaurin series of the arc tangent at a,
// |a| ≤ 2^-8, to about wp bits.
func atanSeries(a *big.Float, wp uint) *big.Float {
	pp := wp + 16
	sum := newF(pp).Set(a)
	if a.Sign() == 0 {
		return sum
	}
	a2 := newF(pp).Mul(a, a)
	pw := newF(pp).Set(a)
	t := newF(pp)
	d := newF(pp)
	cut := a.MantExp(nil) - int(wp) - 8
	for k := int64(1); ; k++ {
		pw.Mul(pw, a2)
		pw.Neg(pw)
		t.Quo(pw, d.SetInt64(2*k+1))
		sum.Add(sum, t)
		if t.MantExp(nil) < cut {
			return sum
		}
	}
}

// Atan sets z to the arc tangent of x computed to z's precision and
// returns z. Arguments above 1 in magnitude go through
// atan(x) = π/2 - atan(1/x); the remainder is brought below 2^-8 with
// the half-angle identity atan(a) = 2·atan(a/(1+√(1+a²))) before the
// series is applied.
func Atan(z *big.Float, x *big.Float) *big.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = 64
		z.SetPrec(prec)
	}
	wp := prec + 32
	a := newF(wp).Abs(x)
	neg := x.Signbit()
	large := a.Cmp(onef) > 0
	if large {
		a.Quo(onef, a)
	}
	halvings := 0
	t := newF(wp)
	for a.Sign() != 0 && a.MantExp(nil) > -8 {
		t.Mul(a, a)
		t.Add(t, onef)
		t.Sqrt(t)
		t.Add(t, onef)
		a.Quo(a, t)
		halvings++
	}
	sum := atanSeries(a, wp)
	if halvings > 0 {
		sum.SetMantExp(sum, halvings)
	}
	if large {
		p := newF(wp)
		Pi(p)
		p.SetMantExp(p, -1)
		sum.Sub(p, sum)
	}
	if neg {
		sum.Neg(sum)
	}
	return z.Set(sum)
}

// Asin sets z to the arc sine of x, |x| ≤ 1, computed to z's precision
// and returns z.
func Asin(z *big.Float, x *big.Float) *big.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = 64
		z.SetPrec(prec)
	}
	wp := prec + 32
	a := newF(wp).Abs(x)
	if c := a.Cmp(onef); c >= 0 {
		if c > 0 {
			panic("fpmath: arc sine argument out of range")
		}
		p := newF(wp)
		Pi(p)
		p.SetMantExp(p, -1)
		if x.Signbit() {
			p.Neg(p)
		}
		return z.Set(p)
	}
	// asin(x) = atan(x / √((1-x)(1+x))); 1-x is exact by Sterbenz when
	// x is close to 1, so the square root loses no accuracy there.
	u := newF(wp).Sub(onef, a)
	v := newF(wp).Add(onef, a)
	u.Mul(u, v)
	u.Sqrt(u)
	v.Quo(a, u)
	t := newF(wp)
	Atan(t, v)
	if x.Signbit() {
		t.Neg(t)
	}
	return z.Set(t)
}

// Acos sets z to the arc cosine of x, |x| ≤ 1, computed to z's
// precision and returns z.
func Acos(z *big.Float, x *big.Float) *big.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = 64
		z.SetPrec(prec)
	}
	wp := prec + 32
	if x.Sign() == 0 {
		p := newF(wp)
		Pi(p)
		p.SetMantExp(p, -1)
		return z.Set(p)
	}
	a := newF(wp).Abs(x)
	if c := a.Cmp(onef); c > 0 {
		panic("fpmath: arc cosine argument out of range")
	}
	// acos(x) = atan(√((1-x)(1+x)) / x), shifted by π for x < 0; this
	// form avoids the cancellation of π/2 - asin(x) near |x| = 1.
	u := newF(wp).Sub(onef, a)
	v := newF(wp).Add(onef, a)
	u.Mul(u, v)
	u.Sqrt(u)
	t := newF(wp)
	if u.Sign() == 0 {
		// x = ±1
		t.SetInt64(0)
	} else {
		v.Quo(u, x)
		Atan(t, v)
	}
	if x.Signbit() {
		p := newF(wp)
		Pi(p)
		t.Add(t, p)
	}
	return z.Set(t)
}
