package fp237

import (
	"fmt"
	"math/big"
)

// A Triple is the bit pattern a value stores in the target format.
//
//   - Exp == Emax+1 with a zero significand marks overflow (the
//     format's infinity boundary).
//   - Exp == 0 with a zero significand is an exact zero; Sign is still
//     meaningful.
//   - Exp == MinExpSubnormal with a significand below 2^Prec is a
//     subnormal.
//   - Exp in [Emin-Prec+1, Emax-Prec+1] with the significand's bit
//     Prec-1 set is a normal value.
type Triple struct {
	Sign int
	Exp  int32
	Hi   Uint128
	Lo   Uint128
}

func (t Triple) String() string {
	return fmt.Sprintf("(%d, %d, (%v, %v))", t.Sign, t.Exp, t.Hi, t.Lo)
}

var oneInt = big.NewInt(1)

// Decode converts x into the triple the target format stores. With
// reduce set, the significand is first shrunk to its shortest odd form
// (canonical for round-trip checks); otherwise it keeps the oracle's
// full stored width so arithmetic-result bit patterns are reproduced
// exactly.
//
// Values whose scale exponent exceeds the format's range decode to the
// overflow sentinel; values under-running the subnormal quantum are
// rounded onto the subnormal grid using the recorded accuracy to
// suppress double rounding: when the input was already rounded up
// (accuracy Above), an exact tie here must not round up a second time.
//
// Decode panics with ErrNonFinite when x is not finite.
func (x *Float) Decode(reduce bool) Triple {
	f := x.val()
	if f.IsInf() {
		panic(ErrNonFinite{"fp237: decode of non-finite value"})
	}
	sign := 0
	if f.Signbit() {
		sign = 1
	}
	if f.Sign() == 0 {
		return Triple{Sign: sign}
	}
	m, e := x.intExp()
	m.Abs(m)
	if reduce {
		if tz := m.TrailingZeroBits(); tz > 0 {
			m.Rsh(m, tz)
			e += int(tz)
		}
	}
	if e > Emax-pm1 {
		return Triple{Sign: sign, Exp: Emax + 1}
	}
	if e < MinExpSubnormal {
		shift := uint(MinExpSubnormal - e)
		mask := new(big.Int).Sub(new(big.Int).Lsh(oneInt, shift), oneInt)
		tie := new(big.Int).Lsh(oneInt, shift-1)
		rem := new(big.Int).And(m, mask)
		m.Rsh(m, shift)
		if c := rem.Cmp(tie); c > 0 || c == 0 && (x.acc != big.Above || m.Bit(0) == 1) {
			m.Add(m, oneInt)
		}
		e = MinExpSubnormal
	}
	if m.Sign() == 0 {
		return Triple{Sign: sign}
	}
	lo := U128FromBig(m)
	hi := U128FromBig(new(big.Int).Rsh(m, 128))
	return Triple{Sign: sign, Exp: int32(e), Hi: hi, Lo: lo}
}
