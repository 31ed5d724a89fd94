// Package round provides the rounding kernel: removing least significant
// bits from an arbitrary-precision integer while rounding to nearest.
//
// Exact ties round away from zero rather than to even. With the guard-bit
// margin the callers carry, ties are statistically negligible and the
// simpler tie break suffices.
package round

import "math/big"

var one = big.NewInt(1)

// ShiftRight returns x with the given number of least significant bits
// removed, rounded to nearest. Negative inputs round by magnitude, keeping
// the operation symmetric around zero. The input is never mutated.
//
// The result satisfies |result - x/2^bits| <= 1/2 for all x and bits.
func ShiftRight(x *big.Int, bits uint) *big.Int {
	if bits == 0 {
		return new(big.Int).Set(x)
	}

	r := new(big.Int).Abs(x)
	up := r.Bit(int(bits) - 1)
	r.Rsh(r, bits)
	if up == 1 {
		r.Add(r, one)
	}

	if x.Sign() < 0 {
		r.Neg(r)
	}

	return r
}

// ShiftRightReportCarry rounds like ShiftRight and additionally reports
// whether rounding up carried into a new most significant bit: when the
// removed top bits are all ones, the rounded result is one bit longer than
// knownSize - bits. Callers that cache bit lengths use the report instead
// of rescanning the result.
//
// knownSize must be the bit length of |x|.
func ShiftRightReportCarry(x *big.Int, bits uint, knownSize int) (*big.Int, bool) {
	r := ShiftRight(x, bits)

	want := knownSize - int(bits)
	if want < 0 {
		want = 0
	}

	return r, r.BitLen() > want
}
