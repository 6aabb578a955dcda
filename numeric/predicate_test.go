package numeric_test

import (
	"testing"

	"github.com/scanline-geo/ytess/numeric"
	"github.com/stretchr/testify/assert"
)

func TestPerpDotSignBasicTurns(t *testing.T) {
	// A=(0,0)-(1,0), B=(0,0)-(0,1): A x B should be strictly positive (counterclockwise).
	assert.Greater(t, numeric.PerpDotSign(0, 0, 1, 0, 0, 0, 0, 1), 0.0)
	// Reverse B: should flip sign.
	assert.Less(t, numeric.PerpDotSign(0, 0, 1, 0, 0, 1, 0, 0), 0.0)
}

func TestPerpDotSignCollinearIsZero(t *testing.T) {
	got := numeric.PerpDotSign(0, 0, 2, 2, 0, 0, 4, 4)
	assert.Equal(t, 0.0, got)
}

func TestPerpDotSignNearDegenerateMatchesExactSign(t *testing.T) {
	// Constructed so the naive float64 cross product is at the edge of rounding error; the
	// adaptive filter must still agree with the exact expansion's sign.
	// B's x difference 1-2^-60 rounds to 1, so the naive product difference is exactly 0 while the
	// true determinant is 2^-60.
	ax1, ay1, ax2, ay2 := 0.0, 0.0, 1.0, 1.0
	bx1, by1, bx2, by2 := 0x1p-60, 1.0, 1.0, 2.0

	got := numeric.PerpDotSign(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
	exact := numeric.PerpDotExact(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
	assert.Equal(t, numeric.ExpansionSign(exact), sign(got))
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func TestTwoSumExact(t *testing.T) {
	a, b := 1.0, 1e-20
	hi, lo := numeric.TwoSum(a, b)
	assert.Equal(t, a, hi)
	assert.Equal(t, b, lo)
}

func TestTwoProductExact(t *testing.T) {
	a, b := 3.0, 5.0
	hi, lo := numeric.TwoProduct(a, b)
	assert.Equal(t, 15.0, hi)
	assert.Equal(t, 0.0, lo)
}

func TestBigSumTotalsBothExpansions(t *testing.T) {
	e := []float64{1.0}
	f := []float64{2.0, 4.0}
	got := numeric.BigSum(e, f)
	assert.InDelta(t, 7.0, numeric.Estimate(got), 1e-9)
}

func TestExpansionSignEmpty(t *testing.T) {
	assert.Equal(t, 0, numeric.ExpansionSign(nil))
	assert.Equal(t, 0, numeric.ExpansionSign([]float64{0, 0}))
}
