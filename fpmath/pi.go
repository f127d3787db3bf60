// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpmath provides the elementary functions on big.Float that
// the standard library lacks: π, log 2, and the circular functions and
// their inverses.
//
// Every evaluator computes into its receiver-like first argument z at
// z's precision, with an absolute error below a few units in the last
// place of the result. Callers needing a correctly rounded result at a
// smaller target precision should evaluate with guard bits and retry on
// ambiguity (see the fp237 package).
package fpmath

import (
	"math/big"
	"sync"
)

var (
	onef = new(big.Float).SetInt64(1)
	twof = new(big.Float).SetInt64(2)
)

func newF(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

func pow2(e int) *big.Float {
	f := new(big.Float).SetPrec(1).SetInt64(1)
	return f.SetMantExp(f, e)
}

var piCache struct {
	mu sync.Mutex
	pi *big.Float
}

// Pi sets z to π computed to z's precision and returns z. The computed
// value is cached and only re-derived when a higher precision is
// requested.
func Pi(z *big.Float) *big.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = 64
		z.SetPrec(prec)
	}
	piCache.mu.Lock()
	defer piCache.mu.Unlock()
	if piCache.pi == nil || piCache.pi.Prec() < prec+8 {
		piCache.pi = gaussLegendre(prec + 32)
	}
	return z.Set(piCache.pi)
}

// gaussLegendre computes π to prec bits with the Gauss-Legendre
// algorithm. The iteration doubles the number of correct bits each
// round, so it stops once a and b agree to the working precision.
func gaussLegendre(prec uint) *big.Float {
	wp := prec + 32
	a := newF(wp).SetInt64(1)
	b := newF(wp).Sqrt(twof)
	b.Quo(onef, b)
	t := newF(wp).SetFloat64(0.25)
	p := newF(wp).SetInt64(1)
	u := newF(wp)
	v := newF(wp)
	eps := pow2(-int(prec) - 16)
	for {
		u.Set(a) // a_n
		a.Add(a, b)
		a.Quo(a, twof) // a_n+1
		b.Mul(u, b)
		b.Sqrt(b) // b_n+1
		v.Sub(u, a)
		v.Mul(v, v)
		v.Mul(v, p)
		t.Sub(t, v) // t_n+1 = t_n - p×(a_n - a_n+1)²
		v.Sub(a, b)
		if v.Abs(v).Cmp(eps) <= 0 {
			break
		}
		p.Add(p, p)
	}
	u.Add(a, b)
	u.Mul(u, u)
	v.Add(t, t)
	v.Add(v, v)
	return u.Quo(u, v)
}
