package edge

import "github.com/scanline-geo/ytess/point"

// Line is the key type the status tree compares its Bundles against: the supporting segment of
// a newly-produced edge being inserted, or of a lookup the driver is performing mid-step. It
// carries only the two endpoints a comparison needs, never a full Edge, so the tree's Insert can
// be called before an Edge has even decided which Bundle it will join.
type Line struct {
	Start, End point.Point
}

// IDSource hands out monotonically increasing Bundle identities, used to key the pairwise
// intersection memo in package event via the canonical (min id << 26) + max id combination.
// It lives inside a [Pool], which is a field of Tessellation (see package tessellate), not a
// package-level counter — package-level mutable state would alias two concurrently-used tessellations.
type IDSource struct {
	next uint32
}

// Next returns the next unused bundle identity.
func (s *IDSource) Next() uint32 {
	s.next++
	return s.next
}

// Bundle collects every Edge currently collinear with a common supporting line. The status tree
// never tracks individual edges once more than one of them overlaps; it tracks the bundle.
type Bundle struct {
	id uint32

	// X, Y, X2, Y2 is the canonical segment chosen from the bundle's members: the topmost-leftmost
	// member endpoint through to whichever endpoint among all members reaches furthest down/right.
	X, Y, X2, Y2 float64

	// XErrBound bounds the rounding error accumulated choosing the canonical segment's x at the
	// current sweep y, for use in checkIntersection's bounding-box prefilter.
	XErrBound float64

	// AfterIsInside records whether the region immediately to the right of this bundle (in
	// status-tree order) is inside the even-odd interior, as of the most recent updateStatusAfter.
	AfterIsInside bool

	// Seen is a transient marker updateNeighbors sets on every bundle incident at the event
	// currently being processed, cleared again once that event's neighbor walk is done.
	Seen bool

	// Region is the MonotoneRegion this bundle currently feeds, or nil if it has not yet been
	// assigned one (e.g. immediately after creation, before updateStatusAfter runs).
	Region any

	count int
	edges map[*Edge]struct{}

	node *Node
}

// newBundle creates a Bundle seeded from line, owning no edges yet. Its id is assigned by the
// caller-supplied source so identities stay unique per Tessellation instance.
func newBundle(line Line, ids *IDSource) *Bundle {
	x, y := line.Start.Coordinates()
	x2, y2 := line.End.Coordinates()
	return &Bundle{
		id:    ids.Next(),
		X:     x,
		Y:     y,
		X2:    x2,
		Y2:    y2,
		edges: make(map[*Edge]struct{}),
	}
}

// ID returns the bundle's monotonically-assigned identity, satisfying [point.BundleRef].
func (b *Bundle) ID() uint32 { return b.id }

// Count returns the number of edges currently contributing to this bundle. A bundle with
// Count()==0 is logically absent from the status tree and must be skipped during traversal.
func (b *Bundle) Count() int { return b.count }

// SetNode records the status-tree Node that owns this bundle. The driver calls this immediately
// after inserting (or re-homing) the bundle into the tree.
func (b *Bundle) SetNode(n *Node) { b.node = n }

// Node returns the status-tree Node that owns this bundle, or nil if it has not been inserted.
func (b *Bundle) Node() *Node { return b.node }

// Insert adds e to the bundle (idempotent — inserting the same edge twice has no additional
// effect), increments the member count, and extends (X2, Y2) to whichever endpoint among the
// bundle's members reaches furthest along the sweep direction (greater Y, ties broken by X).
func (b *Bundle) Insert(e *Edge) {
	if _, ok := b.edges[e]; ok {
		return
	}
	b.edges[e] = struct{}{}
	b.count++
	e.bundle = b

	if e.End.Y() > b.Y2 || (e.End.Y() == b.Y2 && e.End.X() > b.X2) {
		b.X2, b.Y2 = e.End.X(), e.End.Y()
	}
	if e.Start.Y() < b.Y || (e.Start.Y() == b.Y && e.Start.X() < b.X) {
		b.X, b.Y = e.Start.X(), e.Start.Y()
	}
}

// Remove decrements the bundle's member count without shrinking its canonical geometry — the
// bundle may still be referenced elsewhere, and its geometry is never queried again once its
// count reaches 0. The caller is responsible for pooling a bundle once Count()==0.
func (b *Bundle) Remove(e *Edge) {
	if _, ok := b.edges[e]; !ok {
		return
	}
	delete(b.edges, e)
	b.count--
	if e.bundle == b {
		e.bundle = nil
	}
}

// Edges returns the bundle's current member edges. Callers must not retain the returned map
// beyond the current step, since it is the bundle's live backing storage.
func (b *Bundle) Edges() map[*Edge]struct{} { return b.edges }

// DeltaFrom returns the sign of [numeric.PerpDotSign] of the bundle's canonical segment against
// line's start point — zero iff line's start lies exactly on the bundle's supporting line. This
// is the comparator the status tree uses to keep bundles ordered left-to-right across the sweep.
func (b *Bundle) DeltaFrom(line Line) float64 {
	origin := point.New(b.X, b.Y)
	return perpDotSignPoints(
		origin, point.New(b.X2, b.Y2),
		origin, line.Start,
	)
}
