package fp237

import (
	"math/big"

	"github.com/db47h/fp237/fpmath"
)

// The circular functions have no closed-form exact result at the
// working precision, so they are evaluated with Ziv's strategy: compute
// an approximation with a growing number of guard bits until rounding
// it to the working precision is provably the rounding of the true
// value, which also pins down the accuracy.

// zivErrSlack bounds the approximation error of the fpmath evaluators:
// |w - true| < 2^(exp(w) - prec(w) + zivErrSlack).
const zivErrSlack = 8

// zivMaxGuard caps the guard growth. Reaching it means the true result
// sits exactly on (or immeasurably close to) a representable value or a
// tie; the current rounding is accepted as is.
const zivMaxGuard = 1 << 16

func pow2(e int) *big.Float {
	f := new(big.Float).SetPrec(1).SetInt64(1)
	return f.SetMantExp(f, e)
}

func (z *Float) ziv(compute func(w *big.Float)) *Float {
	for guard := uint(64); ; guard *= 2 {
		wp := uint(Prec) + guard
		w := new(big.Float).SetPrec(wp)
		compute(w)
		if w.Sign() == 0 {
			f := z.init()
			f.Set(w)
			z.acc = big.Exact
			return z
		}
		r := new(big.Float).SetPrec(Prec).SetMode(big.ToNearestEven).Set(w)
		acc := r.Acc()
		last := guard >= zivMaxGuard
		if acc == big.Exact {
			if last {
				z.init().Set(r)
				z.acc = big.Exact
				return z
			}
			continue
		}
		d := new(big.Float).SetPrec(wp + 2).Sub(w, r)
		ew := w.MantExp(nil)
		bound := pow2(ew - int(wp) + zivErrSlack)
		ad := new(big.Float).SetPrec(wp + 2).Abs(d)
		if !last {
			if ad.Cmp(bound) <= 0 {
				// w may straddle a representable value
				continue
			}
			half := pow2(ew - Prec - 1)
			if new(big.Float).SetPrec(wp+2).Sub(half, ad).Cmp(bound) <= 0 {
				// w may straddle a rounding tie
				continue
			}
		}
		z.init().Set(r)
		if d.Sign() > 0 {
			z.acc = big.Below
		} else {
			z.acc = big.Above
		}
		return z
	}
}

func (z *Float) mathConst(fn func(*big.Float) *big.Float) *Float {
	return z.ziv(func(w *big.Float) { fn(w) })
}

// setZero sets z to a zero carrying x's sign.
func (z *Float) setZero(x *Float) *Float {
	f := z.init()
	f.SetInt64(0)
	if x.Signbit() {
		f.Neg(f)
	}
	z.acc = big.Exact
	return z
}

// Sin sets z to the correctly rounded sine of x and returns z.
func (z *Float) Sin(x *Float) *Float {
	if x.Sign() == 0 {
		return z.setZero(x)
	}
	v := x.val()
	return z.ziv(func(w *big.Float) { fpmath.Sin(w, v) })
}

// Cos sets z to the correctly rounded cosine of x and returns z.
func (z *Float) Cos(x *Float) *Float {
	if x.Sign() == 0 {
		f := z.init()
		f.SetInt64(1)
		z.acc = big.Exact
		return z
	}
	v := x.val()
	return z.ziv(func(w *big.Float) { fpmath.Cos(w, v) })
}

// Tan sets z to the correctly rounded tangent of x and returns z.
func (z *Float) Tan(x *Float) *Float {
	if x.Sign() == 0 {
		return z.setZero(x)
	}
	v := x.val()
	return z.ziv(func(w *big.Float) { fpmath.Tan(w, v) })
}

var oneFloat = new(big.Float).SetInt64(1)

// Asin sets z to the correctly rounded arc sine of x and returns z.
// Asin panics with ErrNonFinite if |x| > 1.
func (z *Float) Asin(x *Float) *Float {
	if new(big.Float).Abs(x.val()).Cmp(oneFloat) > 0 {
		panic(ErrNonFinite{"fp237: arc sine argument out of range"})
	}
	if x.Sign() == 0 {
		return z.setZero(x)
	}
	v := x.val()
	return z.ziv(func(w *big.Float) { fpmath.Asin(w, v) })
}

// Acos sets z to the correctly rounded arc cosine of x and returns z.
// Acos panics with ErrNonFinite if |x| > 1.
func (z *Float) Acos(x *Float) *Float {
	if new(big.Float).Abs(x.val()).Cmp(oneFloat) > 0 {
		panic(ErrNonFinite{"fp237: arc cosine argument out of range"})
	}
	if x.val().Cmp(oneFloat) == 0 {
		f := z.init()
		f.SetInt64(0)
		z.acc = big.Exact
		return z
	}
	v := x.val()
	return z.ziv(func(w *big.Float) { fpmath.Acos(w, v) })
}

// Atan sets z to the correctly rounded arc tangent of x and returns z.
func (z *Float) Atan(x *Float) *Float {
	if x.Sign() == 0 {
		return z.setZero(x)
	}
	v := x.val()
	return z.ziv(func(w *big.Float) { fpmath.Atan(w, v) })
}
