// Package newton provides Newton-Raphson kernels over plain
// arbitrary-precision integers: integer square root, fixed-point
// reciprocal, and the top bits of a huge power.
//
// Each kernel seeds from a hardware double approximation and refines it
// with Newton steps that double the number of correct bits per round,
// operating only on the currently valid bit window. The kernels keep no
// shared scratch state, so they are safe to call concurrently.
package newton

import (
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

var one = big.NewInt(1)

// seedBits is how many operand bits the hardware seed consumes: a float64
// mantissa holds 52 bits, so operands at or below that width convert
// without loss.
const seedBits = 52

// maxFixup bounds the post-iteration correction walks. A seeded Newton
// iteration lands within a few units of the exact answer; walking further
// means the kernel is broken, not that the input is hard.
const maxFixup = 64

// Sqrt returns floor(sqrt(x)), so that r*r <= x < (r+1)*(r+1). Negative
// operands are a domain error; zero yields zero.
func Sqrt(x *big.Int) (r *big.Int, err error) {
	defer Error.WrapP(&err)

	if x.Sign() < 0 {
		return nil, oops.Trace(ErrNegativeSqrt)
	}
	if x.Sign() == 0 {
		return new(big.Int), nil
	}

	return isqrt(x), nil
}

// isqrt recurses on the operand's top half so that every division runs at
// its own level's width: the valid bits of the partial root double on the
// way back up, seeded by the hardware root of the top bits.
func isqrt(x *big.Int) *big.Int {
	b := x.BitLen()
	if b <= seedBits {
		r := big.NewInt(int64(math.Sqrt(float64(x.Uint64()))))
		return fixup(r, x)
	}

	// The shift stays even so the partial root scales by a whole power
	// of two.
	s := uint(b/2) &^ 1

	r := isqrt(new(big.Int).Rsh(x, s))
	r.Lsh(r, s/2)

	// One Newton step: r' = (r + x/r) / 2.
	q := new(big.Int).Quo(x, r)
	r.Add(r, q)
	r.Rsh(r, 1)

	return fixup(r, x)
}

// fixup walks r onto the exact floor root. The walk is a handful of steps
// at most; exceeding maxFixup is a kernel bug.
func fixup(r, x *big.Int) *big.Int {
	t := new(big.Int)

	for i := 0; ; i++ {
		if i > maxFixup {
			panic("newton: sqrt fixup did not converge")
		}
		t.Mul(r, r)
		if t.Cmp(x) <= 0 {
			break
		}
		r.Sub(r, one)
	}

	for i := 0; ; i++ {
		if i > maxFixup {
			panic("newton: sqrt fixup did not converge")
		}
		t.Add(r, one)
		t.Mul(t, t)
		if t.Cmp(x) > 0 {
			break
		}
		r.Add(r, one)
	}

	return r
}
