package fpmath

import "math/big"

// Log2 sets z to the natural logarithm of 2 computed to z's precision
// and returns z, using ln 2 = 2·atanh(1/3) with the hyperbolic
// arc tangent series. Each term contributes log2(9) ≈ 3.17 bits.
func Log2(z *big.Float) *big.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = 64
		z.SetPrec(prec)
	}
	wp := prec + 32
	third := newF(wp).Quo(onef, newF(wp).SetInt64(3))
	ninth := newF(wp).Mul(third, third)
	sum := newF(wp).Set(third)
	pw := newF(wp).Set(third)
	t := newF(wp)
	d := newF(wp)
	cut := -int(wp) - 8
	for k := int64(1); ; k++ {
		pw.Mul(pw, ninth)
		t.Quo(pw, d.SetInt64(2*k+1))
		sum.Add(sum, t)
		if t.MantExp(nil) < cut {
			break
		}
	}
	sum.Add(sum, sum)
	return z.Set(sum)
}
