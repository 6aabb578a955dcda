package event_test

import (
	"testing"

	"github.com/scanline-geo/ytess/event"
	"github.com/scanline-geo/ytess/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueInsertAndPopOrdersByPoint(t *testing.T) {
	pool := event.NewPool()
	q := event.NewQueue(pool)

	q.InsertPoint(point.FromPoint(point.New(1, 5)))
	q.InsertPoint(point.FromPoint(point.New(0, 1)))
	q.InsertPoint(point.FromPoint(point.New(0, 3)))

	var ys []float64
	for !q.IsEmpty() {
		e := q.Pop()
		ys = append(ys, e.Point.Y)
		q.Free(e)
	}
	assert.Equal(t, []float64{1, 3, 5}, ys)
}

func TestInsertPointDeduplicatesSamePoint(t *testing.T) {
	pool := event.NewPool()
	q := event.NewQueue(pool)

	p := point.FromPoint(point.New(2, 2))
	e1 := q.InsertPoint(p)
	e1.Bend = append(e1.Bend, nil)
	e2 := q.InsertPoint(p)

	assert.Same(t, e1, e2)
	assert.Len(t, e2.Bend, 1)
}

func TestPoolRecyclesEvents(t *testing.T) {
	pool := event.NewPool()
	q := event.NewQueue(pool)

	e := q.InsertPoint(point.FromPoint(point.New(0, 0)))
	e.Bend = append(e.Bend, nil)
	q.Free(e)

	e2 := q.InsertPoint(point.FromPoint(point.New(9, 9)))
	require.Same(t, e, e2, "recycled event should be the same object")
	assert.Empty(t, e2.Bend, "recycled event must have its buckets cleared")
}

func TestCrossingsMemoTestAndSet(t *testing.T) {
	m := event.NewCrossingsMemo()

	assert.False(t, m.TestAndSet(3, 7))
	assert.True(t, m.TestAndSet(3, 7), "second test of the same pair should already be memoized")
	assert.True(t, m.TestAndSet(7, 3), "pair key must be order-independent")

	m.Remove(3, 7)
	assert.False(t, m.TestAndSet(7, 3), "removed pair should be re-testable")
}
