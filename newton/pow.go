package newton

import "math/big"

// powSlack is the extra working width carried through the squaring chain.
// Every rounded trim can add one unit in the last working bit and a 64-bit
// exponent costs at most ~128 trims, so the accumulated excess stays far
// below half a unit of the requested width.
const powSlack = 96

// PowTopBits returns the top wanted bits of |x|^exp together with the
// number of bits they were shifted down by, without ever materializing the
// full power: every squaring of the binary exponentiation immediately
// rounds back to a bounded working width.
//
// The result is never below the exact top bits and at most one above:
// exactTop <= result <= exactTop+1, with exactTop = floor(|x|^exp / 2^shift).
// The intermediate trims round up, preserving the one-sided bound, and the
// final trim floors.
func PowTopBits(x *big.Int, exp uint64, wanted uint) (*big.Int, int) {
	if wanted == 0 {
		wanted = 1
	}
	if exp == 0 {
		return big.NewInt(1), 0
	}

	base := new(big.Int).Abs(x)
	if base.Sign() == 0 {
		return new(big.Int), 0
	}

	w := wanted + powSlack

	acc := big.NewInt(1)
	accShift := 0
	baseShift := 0
	for e := exp; ; {
		if e&1 == 1 {
			acc.Mul(acc, base)
			accShift += baseShift
			accShift += trimCeil(acc, w)
		}
		e >>= 1
		if e == 0 {
			break
		}
		base.Mul(base, base)
		baseShift *= 2
		baseShift += trimCeil(base, w)
	}

	if t := acc.BitLen() - int(wanted); t > 0 {
		acc.Rsh(acc, uint(t))
		accShift += t
	}

	return acc, accShift
}

// trimCeil shifts v down to at most width bits in place, rounding up, and
// returns the number of bits removed.
func trimCeil(v *big.Int, width uint) int {
	d := v.BitLen() - int(width)
	if d <= 0 {
		return 0
	}

	t := new(big.Int).Rsh(v, uint(d))
	u := new(big.Int).Lsh(t, uint(d))
	if u.Cmp(v) != 0 {
		t.Add(t, one)
	}
	v.Set(t)

	// Rounding up to exactly 2^width grows a bit; that shift is exact.
	if v.BitLen() > int(width) {
		v.Rsh(v, 1)
		d++
	}

	return d
}
