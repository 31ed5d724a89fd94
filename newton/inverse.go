package newton

import (
	"math"
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/abf/round"
)

// invSeedValid is the number of valid result bits delivered by the
// hardware seed.
const invSeedValid = 30

// Inverse returns the fixed-point reciprocal r of x at the requested
// width: r approximates 2^(n+bits) / x for n = BitLen(|x|), with
// |r*x - 2^(n+bits)| <= |x|. A zero operand is a domain error.
//
// The refinement is the division-free r' = r*(2 - x*r) step in fixed
// point: the valid width roughly doubles every round and each round works
// only on the bits valid so far.
func Inverse(x *big.Int, bits uint) (r *big.Int, err error) {
	defer Error.WrapP(&err)

	if x.Sign() == 0 {
		return nil, oops.Trace(ErrZeroInverse)
	}

	r = inverse(new(big.Int).Abs(x), bits)
	if x.Sign() < 0 {
		r.Neg(r)
	}

	return r, nil
}

func inverse(m *big.Int, bits uint) *big.Int {
	n := uint(m.BitLen())

	// Seed from the hardware reciprocal of the top bits.
	k := n
	if k > seedBits {
		k = seedBits
	}
	f := float64(new(big.Int).Rsh(m, n-k).Uint64())
	r := big.NewInt(int64(math.Ldexp(1, int(k+invSeedValid)) / f))
	v := uint(invSeedValid)

	// Each round widens the valid window to 2v-3, keeping the error
	// within a few units of the window's last bit.
	for v < bits+3 {
		vn := 2*v - 3
		if vn > bits+3 {
			vn = bits + 3
		}

		// r' = 2r*2^(vn-v) - m*r^2 / 2^(n+2v-vn)
		t := new(big.Int).Mul(r, r)
		t.Mul(t, m)
		t.Rsh(t, n+2*v-vn)
		r.Lsh(r, vn-v+1)
		r.Sub(r, t)

		v = vn
	}

	r = round.ShiftRight(r, v-bits)

	// Land exactly within one unit: |r*m - 2^(n+bits)| <= m.
	res := new(big.Int).Mul(r, m)
	res.Sub(res, new(big.Int).Lsh(one, n+bits))
	for i := 0; res.CmpAbs(m) > 0; i++ {
		if i > maxFixup {
			panic("newton: inverse fixup did not converge")
		}
		if res.Sign() > 0 {
			r.Sub(r, one)
			res.Sub(res, m)
		} else {
			r.Add(r, one)
			res.Add(res, m)
		}
	}

	return r
}
