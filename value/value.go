package value

import (
	"fmt"
	"math/big"

	"github.com/calebcase/abf/round"
)

// GuardBits is the number of least significant mantissa bits held below
// guaranteed precision. It is a compile-time constant rather than a
// per-instance setting to keep the arithmetic simple.
const GuardBits = 32

// Value is an arbitrary-precision binary floating point number,
// mantissa * 2^scale, with the mantissa's bit length cached. Construct
// Values through FromParts and friends; the zero struct is not meaningful.
type Value struct {
	mant  *big.Int
	scale int
	size  int
}

// FromParts builds a Value from a raw mantissa and scale. When guarded is
// false the mantissa gains GuardBits zero bits at the bottom and the scale
// drops by the same amount, preserving the numeric value. The provided
// mantissa is copied, never aliased.
func FromParts(mant *big.Int, scale int, guarded bool) Value {
	m := new(big.Int).Set(mant)
	if !guarded {
		m.Lsh(m, GuardBits)
		scale -= GuardBits
	}

	return Value{mant: m, scale: scale, size: m.BitLen()}
}

// FromInt64 returns the Value exactly representing v.
func FromInt64(v int64) Value {
	return FromParts(big.NewInt(v), 0, false)
}

// FromBigInt returns the Value exactly representing v.
func FromBigInt(v *big.Int) Value {
	return FromParts(v, 0, false)
}

// Zero returns the strict zero: a literally zero mantissa carrying no
// precision at all.
func Zero() Value {
	return Value{mant: new(big.Int)}
}

// Mantissa returns a copy of the stored mantissa, guard bits included.
func (v Value) Mantissa() *big.Int {
	return new(big.Int).Set(v.mant)
}

// Scale returns the power-of-two exponent applied to the mantissa.
func (v Value) Scale() int {
	return v.scale
}

// Size returns the bit length of the mantissa's magnitude.
func (v Value) Size() int {
	return v.size
}

// Precision returns the number of meaningful mantissa bits: everything
// above the guard region.
func (v Value) Precision() int {
	return v.size - GuardBits
}

// Accuracy returns the number of meaningful bits below the radix point.
// It may be negative.
func (v Value) Accuracy() int {
	return v.Precision() - v.scale
}

// Exponent returns the binary exponent: the magnitude lies in
// [2^(Exponent-1), 2^Exponent).
func (v Value) Exponent() int {
	return v.size + v.scale
}

// Sign returns -1, 0, or +1. Any Value classified as Zero reports 0, even
// when residual guard noise keeps the mantissa formally non-zero.
func (v Value) Sign() int {
	if v.IsZero() {
		return 0
	}

	return v.mant.Sign()
}

// IsZero reports whether the value is indistinguishable from zero: the
// mantissa is literally zero, or it sits entirely inside the guard region
// with a magnitude below the guard threshold.
func (v Value) IsZero() bool {
	return v.size == 0 || (v.size < GuardBits && v.size+v.scale < GuardBits)
}

// IsStrictZero reports whether the mantissa is literally zero, the only
// representation that is bit-equal to zero.
func (v Value) IsStrictZero() bool {
	return v.size == 0
}

// OutOfPrecision reports whether no mantissa bit lies above the guard
// region, i.e. the value carries no meaningful bits.
func (v Value) OutOfPrecision() bool {
	return v.size <= GuardBits
}

// String renders a debug form: hex mantissa and binary scale. It is not
// part of the (external) formatting layer.
func (v Value) String() string {
	return fmt.Sprintf("%#xp%+d", v.mant, v.scale)
}

// norm shrinks m to at most target bits, rounding through the kernel and
// renormalizing once more when the rounding carries into a new top bit. It
// returns the mantissa, the adjusted scale, and the final size.
func norm(m *big.Int, scale, target int) (*big.Int, int, int) {
	size := m.BitLen()
	if size <= target {
		return m, scale, size
	}

	sh := uint(size - target)
	m, carried := round.ShiftRightReportCarry(m, sh, size)
	scale += int(sh)
	if carried {
		m.Rsh(m, 1)
		scale++
	}

	return m, scale, target
}

// align left-shifts both mantissas onto the smaller of the two scales and
// returns fresh copies along with the common scale. Left shifts are exact,
// so alignment never loses bits.
func align(v, o Value) (a, b *big.Int, c int) {
	c = v.scale
	if o.scale < c {
		c = o.scale
	}

	a = new(big.Int).Lsh(v.mant, uint(v.scale-c))
	b = new(big.Int).Lsh(o.mant, uint(o.scale-c))

	return a, b, c
}
