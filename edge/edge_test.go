package edge_test

import (
	"testing"

	"github.com/scanline-geo/ytess/edge"
	"github.com/scanline-geo/ytess/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesDownwardOrRightward(t *testing.T) {
	a := point.New(1, 1)
	b := point.New(0, 0)

	e := edge.New(0, 0, 1, 1, a, b)
	assert.Equal(t, b, e.Start)
	assert.Equal(t, a, e.End)
}

func TestNewKeepsOrderWhenAlreadyNormalized(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(1, 1)

	e := edge.New(0, 0, 1, 1, a, b)
	assert.Equal(t, a, e.Start)
	assert.Equal(t, b, e.End)
}

func TestBundleInsertExtendsCanonicalGeometry(t *testing.T) {
	pool := edge.NewPool()
	line := edge.Line{Start: point.New(0, 0), End: point.New(1, 1)}
	b := pool.Get(line)

	e1 := edge.New(0, 0, 1, 1, point.New(0, 0), point.New(1, 1))
	b.Insert(e1)
	require.Equal(t, 1, b.Count())
	assert.Equal(t, 1.0, b.X2)
	assert.Equal(t, 1.0, b.Y2)

	e2 := edge.New(0, 0, 2, 1, point.New(0, 0), point.New(2, 2))
	b.Insert(e2)
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, 2.0, b.X2)
	assert.Equal(t, 2.0, b.Y2)
}

func TestBundleRemoveDecrementsCountWithoutShrinkingGeometry(t *testing.T) {
	pool := edge.NewPool()
	line := edge.Line{Start: point.New(0, 0), End: point.New(2, 2)}
	b := pool.Get(line)

	e1 := edge.New(0, 0, 1, 1, point.New(0, 0), point.New(2, 2))
	b.Insert(e1)
	require.Equal(t, 1, b.Count())

	b.Remove(e1)
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, 2.0, b.X2, "geometry is not shrunk on removal")
}

func TestBundleDeltaFromZeroOnSupportingLine(t *testing.T) {
	pool := edge.NewPool()
	line := edge.Line{Start: point.New(0, 0), End: point.New(2, 2)}
	b := pool.Get(line)

	onLine := edge.Line{Start: point.New(1, 1), End: point.New(3, 3)}
	assert.Equal(t, 0.0, b.DeltaFrom(onLine))

	left := edge.Line{Start: point.New(0, 1), End: point.New(1, 2)}
	right := edge.Line{Start: point.New(1, 0), End: point.New(2, 1)}
	assert.NotEqual(t, 0.0, b.DeltaFrom(left))
	assert.NotEqual(t, 0.0, b.DeltaFrom(right))
	assert.NotEqual(t, b.DeltaFrom(left) > 0, b.DeltaFrom(right) > 0, "left/right of the supporting line should have opposite signs")
}

func TestAngleDeltaFromSharedEndpoint(t *testing.T) {
	apex := point.New(0, 0)
	e1 := edge.New(0, 0, 1, 1, apex, point.New(1, 0))
	e2 := edge.New(0, 0, 2, 1, apex, point.New(0, 1))

	assert.NotEqual(t, 0.0, e1.AngleDeltaFrom(e2))
}

func TestPoolRecyclesBundles(t *testing.T) {
	pool := edge.NewPool()
	line := edge.Line{Start: point.New(0, 0), End: point.New(1, 1)}
	b1 := pool.Get(line)
	id1 := b1.ID()
	pool.Put(b1)

	b2 := pool.Get(line)
	assert.Same(t, b1, b2, "recycled bundle should be the same object")
	assert.NotEqual(t, id1, b2.ID(), "bundle ids are never reused even across recycling")
	assert.Equal(t, 0, b2.Count())
}
