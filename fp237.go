package fp237

import (
	"fmt"
	"math/big"

	"github.com/db47h/fp237/fpmath"
)

// Parameters of the target format. Prec includes the hidden bit of
// normal values.
const (
	Prec            = 237                 // significand width in bits
	Emax            = 262143              // largest normal lead exponent
	Emin            = 1 - Emax            // smallest normal lead exponent
	MinExpSubnormal = Emin - (Prec - 1)   // exponent of the subnormal quantum
)

const pm1 = Prec - 1

// An ErrNonFinite panic value is raised when a non-finite value reaches
// an operation defined only on finite values. Such inputs indicate a
// bug in the caller, not a recoverable condition.
type ErrNonFinite struct {
	msg string
}

func (err ErrNonFinite) Error() string {
	return err.msg
}

// A Float is a finite binary floating-point value at the working
// precision Prec, paired with the big.Accuracy of the last rounding
// operation that produced it. The accuracy is Exact for values built
// from exact integers; Below/Above mean the stored value was rounded
// down/up from the true result.
//
// The zero value for a Float represents 0 with accuracy Exact.
type Float struct {
	f   *big.Float
	acc big.Accuracy
}

var floatZero big.Float

func (z *Float) init() *big.Float {
	if z.f == nil {
		z.f = new(big.Float).SetPrec(Prec).SetMode(big.ToNearestEven)
	}
	return z.f
}

func (x *Float) val() *big.Float {
	if x.f == nil {
		return &floatZero
	}
	return x.f
}

// New returns a Float set to the value of f rounded to the working
// precision. f itself is treated as exact, so the recorded accuracy
// reflects this rounding only.
func New(f *big.Float) *Float {
	z := new(Float)
	z.init().Set(f)
	z.acc = z.f.Acc()
	return z
}

// Exp2 returns 2^e as an exact Float.
func Exp2(e int) *Float {
	z := new(Float)
	f := z.init().SetUint64(1)
	f.SetMantExp(f, e)
	z.acc = big.Exact
	return z
}

// Parse returns the value of the decimal literal s rounded to the
// working precision and subnormalized onto the format's subnormal grid.
// A malformed literal is reported as an error.
func Parse(s string) (*Float, error) {
	z := new(Float)
	if _, ok := z.SetString(s); !ok {
		return nil, fmt.Errorf("fp237: invalid decimal literal %q", s)
	}
	return z, nil
}

// SetString sets z to the value of the decimal literal s, rounded to
// the working precision and subnormalized, and returns z and a boolean
// indicating success. If the operation failed, the value of z is
// undefined but the returned value is nil.
func (z *Float) SetString(s string) (*Float, bool) {
	f := z.init()
	if _, _, err := f.Parse(s, 10); err != nil || f.IsInf() {
		return nil, false
	}
	z.acc = f.Acc()
	// Parse's accuracy is not a reliable rounding witness: an exactly
	// representable literal can come back with a directed accuracy,
	// which would corrupt tie handling in subnormalize. Within the
	// format's range, redo the conversion from the exact rational,
	// whose accuracy is trustworthy. Outside that range the witness
	// cannot reach a tie and the rational could be arbitrarily large.
	if exp := f.MantExp(nil); f.Sign() != 0 && exp >= MinExpSubnormal-1 && exp <= Emax+1 {
		if r, ok := new(big.Rat).SetString(s); ok {
			f.SetRat(r)
			z.acc = f.Acc()
		}
	}
	z.subnormalize()
	return z, true
}

// Acc returns the accuracy of x produced by the most recent operation:
// the direction the last rounding step moved x relative to its true
// mathematical value.
func (x *Float) Acc() big.Accuracy {
	return x.acc
}

// Sign returns -1, 0 or +1 depending on whether x < 0, x == 0, or x > 0.
func (x *Float) Sign() int {
	return x.val().Sign()
}

// Signbit reports whether x is negative or negative zero.
func (x *Float) Signbit() bool {
	return x.val().Signbit()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Float) Cmp(y *Float) int {
	return x.val().Cmp(y.val())
}

// Neg sets z to x with its sign negated and returns z. The accuracy is
// mirrored along with the sign.
func (z *Float) Neg(x *Float) *Float {
	acc := -x.acc
	z.init().Neg(x.val())
	z.acc = acc
	return z
}

// Abs sets z to |x| and returns z, mirroring the accuracy when x is
// negative.
func (z *Float) Abs(x *Float) *Float {
	if x.Signbit() {
		return z.Neg(x)
	}
	acc := x.acc
	z.init().Set(x.val())
	z.acc = acc
	return z
}

// Set sets z to the value of x, keeping x's accuracy, and returns z.
func (z *Float) Set(x *Float) *Float {
	acc := x.acc
	z.init().Set(x.val())
	z.acc = acc
	return z
}

// Pi returns π rounded to the working precision.
func Pi() *Float {
	return new(Float).mathConst(fpmath.Pi)
}

// Log2 returns the natural logarithm of 2 rounded to the working
// precision.
func Log2() *Float {
	return new(Float).mathConst(fpmath.Log2)
}

// intExp returns m and e such that x = m × 2^e. m carries x's full
// stored significand width, trailing zeros included, so that Decode can
// reproduce the oracle's bit pattern exactly.
func (x *Float) intExp() (*big.Int, int) {
	f := x.val()
	m := new(big.Float)
	exp := f.MantExp(m)
	prec := int(f.Prec())
	m.SetMantExp(m, prec)
	i, _ := m.Int(nil)
	return i, exp - prec
}

// subnormalize rounds z onto the fixed grid 2^MinExpSubnormal when its
// magnitude under-runs the smallest normal value. An exact tie rounds
// half-to-even, unless the previous rounding already moved the value up
// (accuracy Above), in which case the tie must not round up again.
func (z *Float) subnormalize() *Float {
	f := z.val()
	if f.Sign() == 0 || f.IsInf() {
		return z
	}
	if f.MantExp(nil)-1 >= Emin {
		return z
	}
	m, e := z.intExp()
	if e >= MinExpSubnormal {
		// already a multiple of the quantum
		return z
	}
	neg := m.Sign() < 0
	m.Abs(m)
	shift := uint(MinExpSubnormal - e)
	var rem, tie big.Int
	if shift <= uint(m.BitLen()) {
		rem.And(m, tie.Sub(tie.Lsh(big.NewInt(1), shift), big.NewInt(1)))
	} else {
		rem.Set(m)
	}
	tie.Lsh(big.NewInt(1), shift-1)
	m.Rsh(m, shift)
	switch c := rem.Cmp(&tie); {
	// On an apparent tie the witness acts as a sticky bit: a previous
	// rounding away from zero means the true value sits below the tie, a
	// rounding toward zero means above it. Only a genuine tie is broken
	// to even.
	case c > 0 || c == 0 && (z.acc == below(neg) || z.acc == big.Exact && m.Bit(0) == 1):
		m.Add(m, big.NewInt(1))
		z.acc = above(neg)
	case rem.Sign() != 0:
		z.acc = below(neg)
	default:
		// rem == 0: the value was already on the grid, the witness of
		// the previous rounding still holds.
		return z
	}
	if neg {
		m.Neg(m)
	}
	if m.Sign() == 0 {
		f.SetInt64(0)
		if neg {
			f.Neg(f)
		}
		return z
	}
	t := new(big.Float).SetPrec(uint(max(m.BitLen(), 1))).SetInt(m)
	t.SetMantExp(t, MinExpSubnormal)
	f.Set(t) // exact: the rounded mantissa fits in Prec bits
	return z
}

// above returns the accuracy of a value whose magnitude was rounded up.
func above(neg bool) big.Accuracy {
	if neg {
		return big.Below
	}
	return big.Above
}

// below returns the accuracy of a value whose magnitude was rounded
// down.
func below(neg bool) big.Accuracy {
	if neg {
		return big.Above
	}
	return big.Below
}

// Text returns x in scientific notation with prec digits after the
// decimal point. The decimal conversion is big.Float's, rounded to
// nearest.
func (x *Float) Text(prec int) string {
	return x.val().Text('e', prec)
}

// maxStringDigits is the largest number of significant digits String
// prints for integral values; longer integers are rounded half-to-even
// onto that many digits.
const maxStringDigits = 72

func (x *Float) String() string {
	f := x.val()
	if f.IsInf() || !f.IsInt() {
		return f.Text('g', maxStringDigits)
	}
	i, _ := f.Int(nil)
	s := i.String()
	n := len(s)
	if i.Sign() < 0 {
		n--
	}
	if n <= maxStringDigits {
		return s
	}
	neg := i.Sign() < 0
	i.Abs(i)
	d := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n-maxStringDigits)), nil)
	t := new(big.Int).Rsh(d, 1)
	q, r := new(big.Int).QuoRem(i, d, new(big.Int))
	if c := r.Cmp(t); c > 0 || c == 0 && q.Bit(0) == 1 {
		q.Add(q, big.NewInt(1))
	}
	i.Mul(q, d)
	if neg {
		i.Neg(i)
	}
	return i.String()
}
