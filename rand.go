package fp237

import (
	"math/big"
	"math/rand/v2"
)

// Random returns a Float drawn from rng with a uniform sign and a lead
// exponent uniform in [lo, hi]. The significand is uniform over the bit
// width the target format allows at the drawn exponent: the full
// working precision with the hidden bit forced for normal exponents,
// or the reduced width dictated by the subnormal grid below Emin. The
// value is exact by construction and Decode round-trips it bit for bit.
//
// The generator is passed in explicitly: seed it (for instance with
// rand.NewPCG) to obtain reproducible corpora. Random panics if the
// range is empty or extends beyond the format's exponent range.
func Random(rng *rand.Rand, lo, hi int) *Float {
	if lo > hi || lo < MinExpSubnormal || hi > Emax {
		panic("fp237: invalid lead exponent range")
	}
	t := lo + rng.IntN(hi-lo+1)
	neg := rng.IntN(2) == 1
	bits := Prec
	e := t - pm1
	if t < Emin {
		bits = t - MinExpSubnormal + 1
		e = MinExpSubnormal
	}
	m := randBits(rng, uint(bits-1))
	m.SetBit(m, bits-1, 1)
	z := new(Float)
	f := z.init().SetInt(m)
	f.SetMantExp(f, e)
	if neg {
		f.Neg(f)
	}
	z.acc = big.Exact
	return z
}

// randBits returns a uniformly distributed integer of at most n bits.
func randBits(rng *rand.Rand, n uint) *big.Int {
	i := new(big.Int)
	var w big.Int
	for ; n >= 64; n -= 64 {
		i.Lsh(i, 64)
		i.Or(i, w.SetUint64(rng.Uint64()))
	}
	if n > 0 {
		i.Lsh(i, n)
		i.Or(i, w.SetUint64(rng.Uint64()>>(64-n)))
	}
	return i
}
