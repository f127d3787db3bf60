package fp237

import "math/big"

// Add sets z to the rounded value of x+y and returns z. Like all
// operators, the exact result is computed first and rounded once to the
// working precision; the direction of that rounding is recorded as z's
// accuracy.
func (z *Float) Add(x, y *Float) *Float {
	f := z.init()
	f.Add(x.val(), y.val())
	z.acc = f.Acc()
	return z
}

// Sub sets z to the rounded value of x-y and returns z.
func (z *Float) Sub(x, y *Float) *Float {
	f := z.init()
	f.Sub(x.val(), y.val())
	z.acc = f.Acc()
	return z
}

// Mul sets z to the rounded value of x*y and returns z.
func (z *Float) Mul(x, y *Float) *Float {
	f := z.init()
	f.Mul(x.val(), y.val())
	z.acc = f.Acc()
	return z
}

// Quo sets z to the rounded value of x/y and returns z.
func (z *Float) Quo(x, y *Float) *Float {
	f := z.init()
	f.Quo(x.val(), y.val())
	z.acc = f.Acc()
	return z
}

// Sqrt sets z to the rounded square root of x and returns z. Sqrt
// panics with ErrNonFinite if x is negative.
func (z *Float) Sqrt(x *Float) *Float {
	if x.Sign() < 0 {
		panic(ErrNonFinite{"fp237: square root of negative value"})
	}
	f := z.init()
	f.Sqrt(x.val())
	z.acc = f.Acc()
	return z
}

// stripIntExp removes trailing zero bits from m, adjusting e, so that
// subsequent exponent alignments shift as little as possible.
func stripIntExp(m *big.Int, e int) int {
	if m.Sign() == 0 {
		return e
	}
	if tz := m.TrailingZeroBits(); tz > 0 {
		m.Rsh(m, tz)
		e += int(tz)
	}
	return e
}

// setIntExp sets z to the rounded value of m × 2^e, with m treated as
// exact, and records the accuracy of the rounding.
func (z *Float) setIntExp(m *big.Int, e int) *Float {
	f := z.init()
	if m.Sign() == 0 {
		f.SetInt64(0)
		z.acc = big.Exact
		return z
	}
	t := new(big.Float).SetPrec(uint(m.BitLen())).SetInt(m)
	t.SetMantExp(t, e)
	f.Set(t)
	z.acc = f.Acc()
	return z
}

// Rem sets z to the remainder x - q*y, q = trunc(x/y), and returns z.
// The remainder is computed exactly on the integer decompositions; it
// always fits in the working precision, so z's accuracy is Exact. Rem
// panics with ErrNonFinite if y is zero.
func (z *Float) Rem(x, y *Float) *Float {
	if y.Sign() == 0 {
		panic(ErrNonFinite{"fp237: remainder by zero"})
	}
	if x.Sign() == 0 {
		return z.Set(x)
	}
	mx, ex := x.intExp()
	my, ey := y.intExp()
	neg := mx.Sign() < 0
	mx.Abs(mx)
	my.Abs(my)
	ex = stripIntExp(mx, ex)
	ey = stripIntExp(my, ey)
	e := min(ex, ey)
	mx.Lsh(mx, uint(ex-e))
	my.Lsh(my, uint(ey-e))
	mx.Mod(mx, my)
	if neg {
		mx.Neg(mx)
	}
	return z.setIntExp(mx, e)
}

// FMA sets z to x*y + u with a single rounding step and returns z. This
// is the fused multiply-add: the product is never rounded on its own,
// so the result may differ from Add(Mul(x, y), u) by one unit in the
// last place.
func (z *Float) FMA(x, y, u *Float) *Float {
	mx, ex := x.intExp()
	my, ey := y.intExp()
	p := new(big.Int).Mul(mx, my)
	ep := stripIntExp(p, ex+ey)
	if u.Sign() == 0 {
		return z.setIntExp(p, ep)
	}
	mu, eu := u.intExp()
	eu = stripIntExp(mu, eu)
	if p.Sign() == 0 {
		return z.setIntExp(mu, eu)
	}
	e := min(ep, eu)
	p.Lsh(p, uint(ep-e))
	mu.Lsh(mu, uint(eu-e))
	p.Add(p, mu)
	return z.setIntExp(p, e)
}

// Sos sets z to the sum of squares x² + y² with a single rounding step
// and returns z.
func (z *Float) Sos(x, y *Float) *Float {
	mx, ex := x.intExp()
	my, ey := y.intExp()
	a := new(big.Int).Mul(mx, mx)
	b := new(big.Int).Mul(my, my)
	ea := stripIntExp(a, 2*ex)
	eb := stripIntExp(b, 2*ey)
	if a.Sign() == 0 {
		return z.setIntExp(b, eb)
	}
	if b.Sign() == 0 {
		return z.setIntExp(a, ea)
	}
	e := min(ea, eb)
	a.Lsh(a, uint(ea-e))
	b.Lsh(b, uint(eb-e))
	a.Add(a, b)
	return z.setIntExp(a, e)
}

// PowInt sets z to x^n for n ≥ 0 with a single rounding step and
// returns z. Negative exponents would require a reciprocal and a second
// rounding; PowInt panics on them.
func (z *Float) PowInt(x *Float, n int) *Float {
	if n < 0 {
		panic(ErrNonFinite{"fp237: negative integer power"})
	}
	if n == 0 {
		f := z.init()
		f.SetInt64(1)
		z.acc = big.Exact
		return z
	}
	m, e := x.intExp()
	e = stripIntExp(m, e)
	neg := m.Sign() < 0 && n%2 == 1
	m.Abs(m)
	m.Exp(m, big.NewInt(int64(n)), nil)
	if neg {
		m.Neg(m)
	}
	return z.setIntExp(m, e*n)
}
