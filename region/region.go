// Package region assembles the sweep driver's transition events into y-monotone output
// polygons. A Region is opened at a start or split vertex, extended one vertex at a time as the
// sweep crosses left- and right-chain transitions, and closed at an end or merge vertex.
package region

import "github.com/scanline-geo/ytess/point"

// Vertex is one point of an emitted MonotoneRegion's boundary, tagged with which chain it
// belongs to. A region's vertices, read in emission order, are the left chain (isLeft==true)
// followed by the right chain (isLeft==false); reversing the right chain and appending it to the
// left chain yields the region's simple closed boundary.
type Vertex struct {
	X, Y   float64
	IsLeft bool
}

// Region is an in-progress or completed y-monotone output polygon.
type Region struct {
	Vertices []Vertex

	// LatestVertex is the most recently emitted vertex, consulted when a split vertex needs to
	// seed a new region with the helper's current position.
	LatestVertex Vertex

	// LatestBundle is an opaque handle (an *edge.Bundle in practice) to the status-tree bundle
	// this region is currently bound to. It is stored as any, not *edge.Bundle, to avoid package
	// edge and package region importing one another — see spec §9's cycle-breaking note.
	LatestBundle any

	// LatestIsMerge records whether the vertex that most recently extended this region was a
	// merge vertex; a later split or end vertex consults this to decide whether closing this
	// region should also be deferred until a reconnecting split arrives.
	LatestIsMerge bool

	// Closed is set once the region's final vertex (a true end, not a merge awaiting
	// reconnection) has been emitted.
	Closed bool

	// HasError marks a region whose output may deviate by up to one ULP because of a numeric
	// degeneracy (spec §7). The driver in package tessellate does not detect such degeneracies and
	// never sets this flag, so it is always false in a Tessellation's output.
	HasError bool
}

// New creates an empty, open Region.
func New() *Region {
	return &Region{}
}

// Seed opens a newly-created region by seeding it with a helper vertex carried over from the
// bundle that spawned it (per spec §4.7, "helper seed if present" on a start/split transition).
func (r *Region) Seed(v Vertex) {
	r.Vertices = append(r.Vertices, v)
	r.LatestVertex = v
}

// Append adds a vertex to the region's boundary and records it as the latest vertex.
func (r *Region) Append(x, y float64, isLeft bool) {
	v := Vertex{X: x, Y: y, IsLeft: isLeft}
	r.Vertices = append(r.Vertices, v)
	r.LatestVertex = v
	r.LatestIsMerge = false
}

// AppendPoint is a convenience wrapper over Append taking a point.Point.
func (r *Region) AppendPoint(p point.Point, isLeft bool) {
	r.Append(p.X(), p.Y(), isLeft)
}

// MarkMerge records that the vertex just appended was a merge vertex, deferring this region's
// closure until a later split reconnects it.
func (r *Region) MarkMerge() {
	r.LatestIsMerge = true
}

// Close marks the region complete. A region may only be closed once its enclosing transition is
// a true end (in/out with no pending merge) rather than a merge awaiting reconnection.
func (r *Region) Close() {
	r.Closed = true
}
