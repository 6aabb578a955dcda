// Package edge defines the Edge, Bundle and Node types the sweep driver splices in and out of
// the status tree, and the free lists that keep their allocation cheap across a long sweep.
//
// An Edge is one side of an input ring, normalized so it always points downward-or-rightward
// along the sweep direction. A Bundle collects every Edge currently collinear with a single
// supporting line — the sweep line never tracks individual edges once they overlap, only the
// bundle they belong to. A Node owns exactly one Bundle and lives in the status tree, threaded by
// [splay.Node]'s prev/next so its immediate left/right neighbors along the sweep are an O(1) walk.
package edge

import "github.com/scanline-geo/ytess/point"

// Edge references one side of an input ring: ring index and the two positions (not necessarily
// consecutive — duplicate points are skipped upstream) that it spans. Dir records which
// direction around the ring the edge was discovered in (+1 forward, -1 backward), which
// handleConnectedEdges needs to find the next vertex along the ring once this edge is consumed.
//
// Start and End are normalized at construction so the edge always points downward-or-rightward:
// Start.Y() < End.Y(), or Start.Y() == End.Y() and Start.X() < End.X().
type Edge struct {
	Ring int
	Pos  int
	Pos2 int
	Dir  int

	Start, End point.Point

	bundle *Bundle
}

// New constructs an Edge from ring, its two positions, direction and endpoints, normalizing so
// the edge always points downward-or-rightward.
func New(ring, pos, pos2, dir int, a, b point.Point) *Edge {
	e := &Edge{Ring: ring, Pos: pos, Pos2: pos2, Dir: dir}
	if a.Y() < b.Y() || (a.Y() == b.Y() && a.X() < b.X()) {
		e.Start, e.End = a, b
	} else {
		e.Start, e.End = b, a
	}
	return e
}

// Bundle returns the Bundle this edge currently belongs to, or nil if it has not been inserted
// into one yet.
func (e *Edge) Bundle() *Bundle { return e.bundle }

// AngleDeltaFrom returns the sign of the turn from e to other, assuming both share the endpoint
// they are being sorted around (per spec §4.6 step 7, edges produced at the same event are
// totally ordered by angle since they share that endpoint). It delegates to
// [numeric.PerpDotSign] over both segments' full extents, so the sign reflects a true
// counterclockwise/clockwise turn rather than an epsilon-scaled approximation.
func (e *Edge) AngleDeltaFrom(other *Edge) float64 {
	return perpDotSignPoints(e.Start, e.End, other.Start, other.End)
}
