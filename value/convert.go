package value

import (
	"math"
	"math/big"

	"github.com/calebcase/oops"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/abf/round"
)

// Int narrows v to a fixed-width signed integer type, rounding to the
// nearest integer first. A value the type cannot hold fails with
// ErrOverflow; precision already lost inside the guard region is not an
// error.
func Int[T constraints.Signed](v Value) (_ T, err error) {
	defer Error.WrapP(&err)

	i := v.roundInt()
	if !i.IsInt64() {
		return 0, oops.Trace(ErrOverflow)
	}

	n := i.Int64()
	if int64(T(n)) != n {
		return 0, oops.Trace(ErrOverflow)
	}

	return T(n), nil
}

// Int64 narrows to int64, failing with ErrOverflow outside the range.
func (v Value) Int64() (int64, error) {
	return Int[int64](v)
}

// Float64 converts to the nearest float64. An exponent beyond the double
// range fails with ErrOverflow; a magnitude below it collapses to zero.
func (v Value) Float64() (_ float64, err error) {
	defer Error.WrapP(&err)

	if v.IsZero() {
		return 0, nil
	}

	m := v.mant
	scale := v.scale
	if v.size > 53 {
		m = round.ShiftRight(m, uint(v.size-53))
		scale += v.size - 53
	}

	f := math.Ldexp(float64(m.Int64()), scale)
	if math.IsInf(f, 0) {
		return 0, oops.Trace(ErrOverflow)
	}

	return f, nil
}

// roundInt returns the nearest integer to v.
func (v Value) roundInt() *big.Int {
	if v.IsZero() {
		return new(big.Int)
	}
	if v.scale >= 0 {
		return new(big.Int).Lsh(v.mant, uint(v.scale))
	}

	return round.ShiftRight(v.mant, uint(-v.scale))
}
