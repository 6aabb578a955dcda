package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaFromLiteralVsLiteralOrdersByYThenX(t *testing.T) {
	a := FromPoint(New(1, 2))
	b := FromPoint(New(1, 5))
	assert.Negative(t, a.DeltaFrom(b))
	assert.Positive(t, b.DeltaFrom(a))

	c := FromPoint(New(1, 2))
	d := FromPoint(New(4, 2))
	assert.Negative(t, c.DeltaFrom(d))
	assert.Positive(t, d.DeltaFrom(c))

	e := FromPoint(New(3, 3))
	assert.Zero(t, e.DeltaFrom(FromPoint(New(3, 3))))
}

// TestDeltaFromTrueVsLiteralTreatsLiteralDenominatorAsOne is the regression test for the
// maintainer-reported DeltaFrom fast-path bug: a literal point's W==0 must be read as an implied
// denominator of 1 (matching exactOrLiteral), not as the raw stored zero.
func TestDeltaFromTrueVsLiteralTreatsLiteralDenominatorAsOne(t *testing.T) {
	// r is a true intersection at y = 10/2 = 5.
	r := RationalPoint{Y: 10, W: 2}
	// key is a literal vertex at y = 3.
	key := RationalPoint{Y: 3, W: 0}

	// r's y (5) is greater than key's y (3), so r must sort after key.
	assert.Positive(t, r.DeltaFrom(key))
	assert.Negative(t, key.DeltaFrom(r))
}

func TestDeltaFromTrueVsLiteralOrdersByActualYValue(t *testing.T) {
	// r is a true intersection at y = 6/3 = 2.
	r := RationalPoint{Y: 6, W: 3}
	// key is a literal vertex at y = 5, strictly later than r in sweep order.
	key := RationalPoint{Y: 5, W: 0}

	assert.Negative(t, r.DeltaFrom(key))
	assert.Positive(t, key.DeltaFrom(r))
}

func TestDeltaFromTrueVsTrueOrdersByRationalValue(t *testing.T) {
	// a = 3/1 = 3, b = 10/4 = 2.5: a sorts after b.
	a := RationalPoint{Y: 3, W: 1}
	b := RationalPoint{Y: 10, W: 4}

	assert.Positive(t, a.DeltaFrom(b))
	assert.Negative(t, b.DeltaFrom(a))
}

func TestDeltaFromTrueVsTrueEqualValueFallsBackToXViaExactExpansions(t *testing.T) {
	// Same y (2 == 2) but different x once divided through (4/2=2 vs 3/2=1.5): a sorts after b.
	a := RationalPoint{X: 4, Y: 2, W: 2}
	b := RationalPoint{X: 3, Y: 2, W: 2}

	assert.Positive(t, a.DeltaFrom(b))
	assert.Negative(t, b.DeltaFrom(a))
}

func TestExactMaterializesOnceAndMemoizesResult(t *testing.T) {
	r := RationalPoint{}
	require.False(t, r.HasExact())

	ax1, ay1, ax2, ay2 := 0.0, 0.0, 2.0, 0.0
	bx1, by1, bx2, by2 := 1.0, -1.0, 1.0, 1.0

	xExact, yExact, wExact := r.Exact(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
	require.True(t, r.HasExact())
	require.NotEmpty(t, wExact)

	// A second call with entirely different segment endpoints must not alter the already
	// materialized expansions (P6 idempotence: makeExact applied twice yields identical
	// expansions, and here the memoized Exact must not even attempt to recompute).
	xExact2, yExact2, wExact2 := r.Exact(100, 100, -100, -100, 50, 50, -50, -50)
	assert.Equal(t, xExact, xExact2)
	assert.Equal(t, yExact, yExact2)
	assert.Equal(t, wExact, wExact2)
}

func TestIsLiteralAndPointProjection(t *testing.T) {
	lit := FromPoint(New(2, 3))
	assert.True(t, lit.IsLiteral())
	assert.Equal(t, New(2, 3), lit.Point())

	trueInt := RationalPoint{X: 4, Y: 6, W: 2}
	assert.False(t, trueInt.IsLiteral())
	assert.Equal(t, New(2, 3), trueInt.Point())
}
