// Package event implements the sweep driver's event queue: a splay tree of SweepEvents keyed by
// rational sweep point, plus the pairwise-crossing memoization the driver consults before
// scheduling an intersection test.
package event

import (
	"github.com/scanline-geo/ytess/edge"
	"github.com/scanline-geo/ytess/point"
	"github.com/scanline-geo/ytess/splay"
)

// StartEntry is a pending ring entry-point activation: the ring and position the driver should
// spawn two new downward edges from once this event is processed (spec §4.6 step 6).
type StartEntry struct {
	Ring int
	Pos  int
}

// CrossEntry records a bundle pair already known to cross at this event, along with the
// canonical pair-key so it can be evicted from the crossings memo once consumed.
type CrossEntry struct {
	A, B *edge.Bundle
	Key  uint64
}

// Event is a single sweep-line event: a point in the plane (expressed as a rational point so
// computed intersections compare exactly against literal input vertices) together with the four
// buckets spec §3 describes.
type Event struct {
	Point point.RationalPoint

	// Start holds ring entry points to activate here (spec §4.5/§4.6 step 6).
	Start []StartEntry
	// Bend holds edges ending here, to be followed into handleConnectedEdges (step 5).
	Bend []*edge.Edge
	// Cross holds bundle pairs already known to cross here, from a prior handleNeighbors call.
	Cross []CrossEntry

	// Before and After are the pre-event neighbor bundles captured by updateNeighbors (step 2):
	// the only bundles whose intersection pair with this event's bundles still matters once the
	// event has been processed.
	Before, After *edge.Bundle

	node *splay.Node[point.RationalPoint, *Event]
}

// DeltaFrom compares e against key via e.Point.DeltaFrom, satisfying [splay.Item].
func (e *Event) DeltaFrom(key point.RationalPoint) float64 {
	return e.Point.DeltaFrom(key)
}

// SetNode records the event-tree node that owns this event.
func (e *Event) SetNode(n *splay.Node[point.RationalPoint, *Event]) { e.node = n }

// Node returns the event-tree node that owns this event, or nil if it has not been inserted.
func (e *Event) Node() *splay.Node[point.RationalPoint, *Event] { return e.node }

// reset clears an Event's fields so it can be handed out again by a Pool.
func (e *Event) reset(p point.RationalPoint) {
	e.Point = p
	e.Start = e.Start[:0]
	e.Bend = e.Bend[:0]
	e.Cross = e.Cross[:0]
	e.Before, e.After = nil, nil
	e.node = nil
}

// Pool is a private free list of Events, reused across a sweep rather than allocated fresh at
// every insertion and freed at every processed event. A Pool is a field of Tessellation, never
// package-level state.
type Pool struct {
	free []*Event
}

// NewPool constructs an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

// Get returns an Event seeded with p, either recycled from the free list or freshly allocated.
func (pl *Pool) Get(p point.RationalPoint) *Event {
	if n := len(pl.free); n > 0 {
		e := pl.free[n-1]
		pl.free = pl.free[:n-1]
		e.reset(p)
		return e
	}
	return &Event{Point: p}
}

// Put returns an Event to the free list once the driver has fully processed it (spec §4.6 step
// 13). Callers must not retain any reference to e after calling Put.
func (pl *Pool) Put(e *Event) {
	pl.free = append(pl.free, e)
}

// Queue is the sweep driver's event queue: a splay tree of Events keyed by RationalPoint.
type Queue struct {
	tree *splay.Tree[point.RationalPoint, *Event]
	pool *Pool
}

// NewQueue constructs an empty Queue backed by pool for its Event allocations.
func NewQueue(pool *Pool) *Queue {
	return &Queue{tree: splay.New[point.RationalPoint, *Event](), pool: pool}
}

// IsEmpty reports whether the queue currently holds no events.
func (q *Queue) IsEmpty() bool {
	return q.tree.Len() == 0
}

// InsertPoint inserts (or finds the existing event at) p, returning the event so the caller can
// append to its start/bend/cross buckets. The tree is splayed on a genuine insertion (a lookup
// miss), matching the "splay after a lookup miss, not after a direct-pointer hit" policy spec
// §4.2 describes.
func (q *Queue) InsertPoint(p point.RationalPoint) *Event {
	delta, node := q.tree.Insert(p, func(key point.RationalPoint) *Event {
		e := q.pool.Get(key)
		return e
	})
	node.Value.SetNode(node)
	if delta != 0 {
		q.tree.Splay(node)
	}
	return node.Value
}

// Pop removes and returns the minimum (earliest in sweep order) event, or nil if the queue is
// empty.
func (q *Queue) Pop() *Event {
	n := q.tree.First()
	if n == nil {
		return nil
	}
	e := n.Value
	q.tree.Remove(n)
	return e
}

// Free returns e to the queue's pool once the driver has finished processing it.
func (q *Queue) Free(e *Event) {
	q.pool.Put(e)
}
