package value

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/abf/newton"
	"github.com/calebcase/abf/round"
)

// newtonDivBits is the operand width past which division runs through the
// reciprocal kernel instead of long division.
const newtonDivBits = 4096

// Add returns v + o. The finer-scaled operand is rounded onto the coarser
// scale first: bits below the coarser operand's guard region cannot
// survive the sum. A classified-Zero operand is an exact additive
// identity, so its guard noise is never folded into the result.
func (v Value) Add(o Value) Value {
	if o.IsZero() {
		return v
	}
	if v.IsZero() {
		return o
	}

	s := v.scale
	if o.scale > s {
		s = o.scale
	}

	a := round.ShiftRight(v.mant, uint(s-v.scale))
	b := round.ShiftRight(o.mant, uint(s-o.scale))
	a.Add(a, b)

	return Value{mant: a, scale: s, size: a.BitLen()}
}

// Sub returns v - o. Subtracting two values that agree within precision
// leaves a result that is Zero under Cmp but not necessarily StrictZero.
func (v Value) Sub(o Value) Value {
	return v.Add(o.Neg())
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{mant: new(big.Int).Neg(v.mant), scale: v.scale, size: v.size}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{mant: new(big.Int).Abs(v.mant), scale: v.scale, size: v.size}
}

// Mul returns v * o. The raw product of an N-bit and an M-bit mantissa is
// N+M bits wide, but only the top min(N,M)+GuardBits carry information;
// the rest is rounded away so chained products do not accumulate
// meaningless width. A carry out of the rounding renormalizes by one more
// exact shift.
func (v Value) Mul(o Value) Value {
	if v.IsZero() || o.IsZero() {
		return Zero()
	}

	p := new(big.Int).Mul(v.mant, o.mant)

	target := v.size
	if o.size < target {
		target = o.size
	}
	target += GuardBits

	m, scale, size := norm(p, v.scale+o.scale, target)

	return Value{mant: m, scale: scale, size: size}
}

// Div returns v / o. The dividend is upshifted to fill the target
// precision before the integer division and the quotient is rounded once
// afterwards. Operands wide enough that Newton iteration beats long
// division go through the reciprocal kernel. A divisor indistinguishable
// from zero fails with ErrDivisionByZero.
func (v Value) Div(o Value) (_ Value, err error) {
	defer Error.WrapP(&err)

	if o.IsZero() {
		return Zero(), oops.Trace(ErrDivisionByZero)
	}
	if v.IsZero() {
		return Zero(), nil
	}

	target := v.size
	if o.size < target {
		target = o.size
	}

	if v.size >= newtonDivBits && o.size >= newtonDivBits {
		return v.divNewton(o, target), nil
	}

	up := target - v.size + o.size + 2
	if up < 0 {
		up = 0
	}

	q := new(big.Int).Lsh(v.mant, uint(up))
	q.Quo(q, o.mant)

	m, scale, size := norm(q, v.scale-o.scale-up, target)

	return Value{mant: m, scale: scale, size: size}, nil
}

// divNewton multiplies by the divisor's fixed-point reciprocal. The
// reciprocal is within one unit at target+2 bits, keeping the quotient
// error below the rounding step's own half unit.
func (v Value) divNewton(o Value, target int) Value {
	k := uint(target + 2)

	inv, err := newton.Inverse(o.mant, k)
	if err != nil {
		// The divisor was checked against Zero already.
		panic("value: reciprocal of non-zero divisor failed")
	}

	q := new(big.Int).Mul(v.mant, inv)

	m, scale, size := norm(q, v.scale-o.scale-o.size-int(k), target)

	return Value{mant: m, scale: scale, size: size}
}

// Rem returns the remainder of v / o, carrying the dividend's sign,
// computed on the mantissas at the aligned scale. The operation is exact
// in the aligned domain, though the result may still classify as Zero.
func (v Value) Rem(o Value) (_ Value, err error) {
	defer Error.WrapP(&err)

	if o.IsZero() {
		return Zero(), oops.Trace(ErrDivisionByZero)
	}
	if v.IsZero() {
		return Zero(), nil
	}

	a, b, c := align(v, o)
	a.Rem(a, b)

	return Value{mant: a, scale: c, size: a.BitLen()}, nil
}

// Mod returns the remainder adjusted toward the divisor's sign: when the
// remainder is non-zero and disagrees in sign with the divisor, one
// divisor is added. Mod(-7, 5) is 3 where Rem(-7, 5) is -2.
func (v Value) Mod(o Value) (_ Value, err error) {
	defer Error.WrapP(&err)

	r, err := v.Rem(o)
	if err != nil {
		return Zero(), err
	}

	if r.mant.Sign() == 0 || r.mant.Sign() == o.mant.Sign() {
		return r, nil
	}

	// Add the divisor at the remainder's scale; the shift is exact
	// because the remainder sits at the aligned (smaller) scale.
	m := new(big.Int).Lsh(o.mant, uint(o.scale-r.scale))
	m.Add(m, r.mant)

	return Value{mant: m, scale: r.scale, size: m.BitLen()}, nil
}

// Inc returns v + 1, with 1 carried at construction precision. On a value
// coarse enough that 1 lies inside its guard region the result is
// numerically unchanged; that is the documented behavior of adding below
// precision, not something Inc corrects for.
func (v Value) Inc() Value {
	return v.Add(FromInt64(1))
}

// Dec returns v - 1. The same sub-precision caveat as Inc applies.
func (v Value) Dec() Value {
	return v.Sub(FromInt64(1))
}
