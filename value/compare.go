package value

import "github.com/calebcase/abf/round"

// Cmp is the precision-aware comparison and the type's native ordering:
// it judges equality only within the operands' precision windows, after
// rounding guard bits away. Two Values differing only in guard noise
// compare equal. Cmp need not be transitive; see CmpExact for the
// transitive tier.
func (v Value) Cmp(o Value) int {
	return v.cmp(o, GuardBits)
}

// Equal reports whether Cmp considers the two values equal.
func (v Value) Equal(o Value) bool {
	return v.Cmp(o) == 0
}

// CmpBits compares like Cmp but with a caller-chosen tolerance of n least
// significant bits in place of the fixed guard width.
func (v Value) CmpBits(o Value, n uint) int {
	return v.cmp(o, int(n))
}

// cmp decides by sign when either operand classifies as Zero, by binary
// exponent when the exponents are more than one apart, and otherwise by
// the sign of the rounded difference of the aligned mantissas. The
// one-apart case must go through the subtraction: the smaller-exponent
// operand may round up to exactly the larger's magnitude.
func (v Value) cmp(o Value, tol int) int {
	vs, os := v.Sign(), o.Sign()
	if vs == 0 || os == 0 || vs != os {
		switch {
		case vs < os:
			return -1
		case vs > os:
			return 1
		}

		return 0
	}

	d := v.Exponent() - o.Exponent()
	switch {
	case d > 1:
		return vs
	case d < -1:
		return -vs
	}

	a, b, c := align(v, o)
	diff := a.Sub(a, b)

	t := v.scale
	if o.scale > t {
		t = o.scale
	}

	return round.ShiftRight(diff, uint(t-c+tol)).Sign()
}

// CmpExact compares the full stored mantissas, guard bits included, after
// exact scale alignment. Values that Cmp considers equal may still differ
// here.
func (v Value) CmpExact(o Value) int {
	a, b, _ := align(v, o)

	return a.Cmp(b)
}

// MatchingBits counts how many leading bits of the aligned mantissas
// agree. Operands of opposite sign share no bits; identical operands match
// over the full aligned width.
func (v Value) MatchingBits(o Value) int {
	return v.matching(o, 0)
}

// MatchingBitsRounded counts agreeing leading bits after the difference is
// rounded by the guard width, so guard noise does not end the run early.
// Newton-style iterations use this to measure convergence.
func (v Value) MatchingBitsRounded(o Value) int {
	return v.matching(o, GuardBits)
}

func (v Value) matching(o Value, tol uint) int {
	if v.mant.Sign() != o.mant.Sign() {
		return 0
	}

	a, b, _ := align(v, o)

	size := a.BitLen()
	if bl := b.BitLen(); bl > size {
		size = bl
	}

	diff := a.Sub(a, b)
	diff.Abs(diff)

	n := diff.BitLen()
	if tol > 0 {
		diff = round.ShiftRight(diff, tol)
		if diff.Sign() == 0 {
			if m := size - int(tol); m > 0 {
				return m
			}

			return 0
		}

		n = diff.BitLen() + int(tol)
	} else if n == 0 {
		return size
	}

	if m := size - n; m > 0 {
		return m
	}

	return 0
}
