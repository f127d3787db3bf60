package fp237

import (
	"fmt"
	"math/big"
	"math/bits"
)

// A Uint128 is an unsigned 128-bit integer held as two 64-bit halves.
// It is one half of the 256-bit significand of a decoded triple.
type Uint128 struct {
	Hi, Lo uint64
}

// U128 returns the Uint128 with the given halves.
func U128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// U128FromBig returns the low 128 bits of |i|.
func U128FromBig(i *big.Int) Uint128 {
	var u Uint128
	w := i.Bits()
	switch bits.UintSize {
	case 64:
		if len(w) > 0 {
			u.Lo = uint64(w[0])
		}
		if len(w) > 1 {
			u.Hi = uint64(w[1])
		}
	default:
		for k := 0; k < len(w) && k < 4; k++ {
			if k < 2 {
				u.Lo |= uint64(w[k]) << (32 * uint(k))
			} else {
				u.Hi |= uint64(w[k]) << (32 * uint(k-2))
			}
		}
	}
	return u
}

// ParseUint128 parses a decimal string into a Uint128.
func ParseUint128(s string) (Uint128, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok || i.Sign() < 0 || i.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("fp237: invalid 128-bit integer %q", s)
	}
	return U128FromBig(i), nil
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	i := new(big.Int).SetUint64(u.Hi)
	i.Lsh(i, 64)
	return i.Or(i, new(big.Int).SetUint64(u.Lo))
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%d", u.Lo)
	}
	return u.Big().String()
}

// Hex returns u as a 0x-prefixed, zero-padded 32-digit hexadecimal
// string, the layout used by the circular-function test corpora.
func (u Uint128) Hex() string {
	return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo)
}
