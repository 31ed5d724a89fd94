package round_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/abf/round"
)

func TestShiftRight(t *testing.T) {
	type TC struct {
		name string
		x    int64
		bits uint
		want int64
		mark error
	}

	tcs := []TC{
		{
			name: "zero",
			x:    0,
			bits: 5,
			want: 0,
			mark: oops.New("unexpected"),
		},
		{
			name: "no shift",
			x:    11,
			bits: 0,
			want: 11,
			mark: oops.New("unexpected"),
		},
		{
			name: "round down",
			x:    0b1001,
			bits: 2,
			want: 0b10,
			mark: oops.New("unexpected"),
		},
		{
			name: "round up",
			x:    0b1011,
			bits: 2,
			want: 0b11,
			mark: oops.New("unexpected"),
		},
		{
			name: "tie away from zero",
			x:    0b101,
			bits: 1,
			want: 0b11,
			mark: oops.New("unexpected"),
		},
		{
			name: "tie away from zero negative",
			x:    -0b101,
			bits: 1,
			want: -0b11,
			mark: oops.New("unexpected"),
		},
		{
			name: "negative rounds by magnitude",
			x:    -0b1001,
			bits: 2,
			want: -0b10,
			mark: oops.New("unexpected"),
		},
		{
			name: "carry into new bit",
			x:    0b1111,
			bits: 1,
			want: 0b1000,
			mark: oops.New("unexpected"),
		},
		{
			name: "all bits removed tie",
			x:    0b1000,
			bits: 4,
			want: 1,
			mark: oops.New("unexpected"),
		},
		{
			name: "beyond width",
			x:    3,
			bits: 10,
			want: 0,
			mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := big.NewInt(tc.x)

			r := round.ShiftRight(x, tc.bits)
			require.Equal(t, tc.want, r.Int64(), tc.mark)

			// The input must never be mutated.
			require.Equal(t, tc.x, x.Int64(), tc.mark)
		})
	}
}

// TestShiftRightBound checks |result - x/2^bits| <= 1/2, i.e.
// |result*2^bits - x| <= 2^(bits-1), over random operands.
func TestShiftRightBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	limit := new(big.Int).Lsh(big.NewInt(1), 300)

	for i := 0; i < 2000; i++ {
		x := new(big.Int).Rand(rng, limit)
		if i%2 == 1 {
			x.Neg(x)
		}
		bits := uint(rng.Intn(280) + 1)

		r := round.ShiftRight(x, bits)

		d := new(big.Int).Lsh(r, bits)
		d.Sub(d, x)
		d.Abs(d)

		half := new(big.Int).Lsh(big.NewInt(1), bits-1)
		require.LessOrEqual(t, d.Cmp(half), 0, spew.Sdump(x, bits))
	}
}

// TestShiftRightRoundTrip checks that shifting back up restores the
// original exactly when no set bits were removed.
func TestShiftRightRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	limit := new(big.Int).Lsh(big.NewInt(1), 200)

	for i := 0; i < 500; i++ {
		bits := uint(rng.Intn(100) + 1)

		x := new(big.Int).Rand(rng, limit)
		x.Lsh(x, bits)

		r := round.ShiftRight(x, bits)
		r.Lsh(r, bits)
		require.Zero(t, r.Cmp(x), spew.Sdump(x, bits))
	}
}

func TestShiftRightReportCarry(t *testing.T) {
	type TC struct {
		name    string
		x       *big.Int
		bits    uint
		want    int64
		carried bool
		mark    error
	}

	allOnes := func(n uint) *big.Int {
		v := new(big.Int).Lsh(big.NewInt(1), n)

		return v.Sub(v, big.NewInt(1))
	}

	tcs := []TC{
		{
			name:    "no carry",
			x:       big.NewInt(0b1001),
			bits:    2,
			want:    0b10,
			carried: false,
			mark:    oops.New("unexpected"),
		},
		{
			name:    "all ones carries",
			x:       allOnes(4),
			bits:    2,
			want:    0b100,
			carried: true,
			mark:    oops.New("unexpected"),
		},
		{
			name:    "all ones wide",
			x:       allOnes(100),
			bits:    40,
			want:    1 << 60,
			carried: true,
			mark:    oops.New("unexpected"),
		},
		{
			name:    "top ones only",
			x:       big.NewInt(0b111010),
			bits:    3,
			want:    0b111,
			carried: false,
			mark:    oops.New("unexpected"),
		},
		{
			name:    "negative carries by magnitude",
			x:       new(big.Int).Neg(allOnes(4)),
			bits:    2,
			want:    -0b100,
			carried: true,
			mark:    oops.New("unexpected"),
		},
		{
			name:    "whole width removed",
			x:       big.NewInt(0b100),
			bits:    3,
			want:    1,
			carried: true,
			mark:    oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			r, carried := round.ShiftRightReportCarry(tc.x, tc.bits, tc.x.BitLen())
			require.Equal(t, tc.want, r.Int64(), tc.mark)
			require.Equal(t, tc.carried, carried, tc.mark)
		})
	}
}

// TestShiftRightReportCarryAgrees checks the carry report against a
// rescan of the result, over random all-ones-suffixed operands that make
// carries likely.
func TestShiftRightReportCarryAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	limit := new(big.Int).Lsh(big.NewInt(1), 120)

	for i := 0; i < 1000; i++ {
		x := new(big.Int).Rand(rng, limit)
		ones := uint(rng.Intn(60))
		x.Lsh(x, ones)
		for b := uint(0); b < ones; b++ {
			x.SetBit(x, int(b), 1)
		}
		if x.Sign() == 0 {
			continue
		}

		bits := uint(rng.Intn(x.BitLen()) + 1)

		size := x.BitLen()
		r, carried := round.ShiftRightReportCarry(x, bits, size)

		want := size - int(bits)
		if want < 0 {
			want = 0
		}
		require.Equal(t, r.BitLen() > want, carried, spew.Sdump(x, bits))
	}
}
