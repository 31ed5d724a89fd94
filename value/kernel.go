package value

import (
	"math"
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/abf/newton"
)

// Sqrt returns the square root at the operand's own precision. A negative
// operand is a domain error; a Zero operand yields Zero.
func (v Value) Sqrt() (_ Value, err error) {
	defer Error.WrapP(&err)

	if v.IsZero() {
		return Zero(), nil
	}
	if v.mant.Sign() < 0 {
		return Zero(), oops.Trace(newton.ErrNegativeSqrt)
	}

	// Upshift so the root fills the operand's own size. The shifted
	// scale must stay even to halve into the result's scale.
	up := v.size
	if (v.scale-up)&1 != 0 {
		up++
	}

	r, err := newton.Sqrt(new(big.Int).Lsh(v.mant, uint(up)))
	if err != nil {
		return Zero(), err
	}

	m, scale, size := norm(r, (v.scale-up)/2, v.size)

	return Value{mant: m, scale: scale, size: size}, nil
}

// Inverse returns 1 / v at the operand's own precision through the
// reciprocal kernel. A Zero operand is a domain error.
func (v Value) Inverse() (_ Value, err error) {
	defer Error.WrapP(&err)

	if v.IsZero() {
		return Zero(), oops.Trace(newton.ErrZeroInverse)
	}

	k := uint(v.size + 2)

	r, err := newton.Inverse(v.mant, k)
	if err != nil {
		return Zero(), err
	}

	m, scale, size := norm(r, -v.scale-v.size-int(k), v.size)

	return Value{mant: m, scale: scale, size: size}, nil
}

// Pow returns v^n at the operand's own precision, through the power
// kernel's rounded binary exponentiation. Negative exponents invert the
// positive power, so 0^n with n < 0 is a domain error.
func (v Value) Pow(n int64) (_ Value, err error) {
	defer Error.WrapP(&err)

	if n < 0 {
		if n == math.MinInt64 {
			return Zero(), oops.Trace(ErrOverflow)
		}

		p, err := v.Pow(-n)
		if err != nil {
			return Zero(), err
		}

		return p.Inverse()
	}
	if n == 0 {
		return FromInt64(1), nil
	}
	if v.IsZero() {
		return Zero(), nil
	}

	top, shift := newton.PowTopBits(v.mant, uint64(n), uint(v.size))
	if v.mant.Sign() < 0 && n&1 == 1 {
		top.Neg(top)
	}

	m, scale, size := norm(top, int(n*int64(v.scale))+shift, v.size)

	return Value{mant: m, scale: scale, size: size}, nil
}
