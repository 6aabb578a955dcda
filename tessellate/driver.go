package tessellate

import (
	"slices"

	"github.com/scanline-geo/ytess/edge"
	"github.com/scanline-geo/ytess/event"
	"github.com/scanline-geo/ytess/numeric"
	"github.com/scanline-geo/ytess/options"
	"github.com/scanline-geo/ytess/point"
	"github.com/scanline-geo/ytess/region"
)

// processEvent runs the full per-event algorithm spec §4.6 describes: neighbor discovery,
// transition handling, connected-edge propagation, start replenishment, new-edge merging, and
// neighbor intersection scheduling.
//
// Steps 8-10 (mergeEdgesIntoNodes / syncNodesIntoTree) are implemented here as a single simpler
// pass that reuses a bundle in place when a new edge is exactly collinear with it and otherwise
// allocates a fresh node, rather than the node-identity-preserving splice the source algorithm
// performs; see DESIGN.md's note on this simplification. The tree's final contents and the
// region bookkeeping built on top of it are unaffected by which EdgeNode object happens to carry
// a given bundle.
func (t *Tessellation) processEvent(ev *event.Event) {
	hasBend := len(ev.Bend) > 0
	hasCross := len(ev.Cross) > 0

	var before, after *edge.Node
	if hasBend || hasCross {
		before, after = t.updateNeighbors(ev)
		ev.Before, ev.After = valueOrNil(before), valueOrNil(after)
		t.updateStatusBefore(ev, before, after)
	}

	for _, c := range ev.Cross {
		t.crossings.Remove(c.A.ID(), c.B.ID())
	}

	newEdges := t.handleConnectedEdges(ev)

	if len(ev.Start) > 0 {
		t.replenishStarts()
		newEdges = append(newEdges, t.spawnStartEdges(ev)...)
	}

	evX, evY := ev.Point.Point().Coordinates()

	if len(newEdges) == 0 {
		if before == nil {
			return
		}
		t.reclaimEmptyNodes(before, after)
		t.updateStatusAfter(before, after, evX, evY)
		t.handleNeighbors(before, after)
		t.auditAlternation()
		return
	}

	slices.SortFunc(newEdges, func(a, b *edge.Edge) int {
		return sign(a.AngleDeltaFrom(b))
	})

	if before == nil {
		// No pre-existing bundles were involved (spec §4.6 step 8): locate the slot via a direct
		// tree insert of the first new edge.
		line := edge.Line{Start: newEdges[0].Start, End: newEdges[0].End}
		delta, node := t.status.Insert(line, func(l edge.Line) *edge.Bundle {
			b := t.edgePool.Get(l)
			return b
		})
		node.Value.SetNode(node)
		if delta != 0 {
			t.status.Splay(node)
		} else {
			node.Value.Insert(newEdges[0])
		}
		before, after = node.Prev(), node.Next()
		if before == nil {
			before = t.sentinelLo
		}
		if after == nil {
			after = t.sentinelHi
		}
	}

	t.mergeEdgesIntoNodes(before, after, newEdges)
	t.updateStatusAfter(before, after, evX, evY)
	t.handleNeighbors(before, after)
	t.auditAlternation()
}

func valueOrNil(n *edge.Node) *edge.Bundle {
	if n == nil {
		return nil
	}
	return n.Value
}

// updateNeighbors marks every bundle incident at ev as seen, then walks outward from any one of
// them to find the first non-seen bundle on each side — the before/after neighbors whose
// intersection pair with ev's bundles still matters once the event is processed (spec §4.6
// step 2).
func (t *Tessellation) updateNeighbors(ev *event.Event) (before, after *edge.Node) {
	var anchor *edge.Node
	mark := func(b *edge.Bundle) {
		if b == nil {
			return
		}
		b.Seen = true
		if anchor == nil && b.Node() != nil {
			anchor = b.Node()
		}
	}
	for _, e := range ev.Bend {
		mark(e.Bundle())
	}
	for _, c := range ev.Cross {
		mark(c.A)
		mark(c.B)
	}
	defer func() {
		for _, e := range ev.Bend {
			if b := e.Bundle(); b != nil {
				b.Seen = false
			}
		}
		for _, c := range ev.Cross {
			c.A.Seen = false
			c.B.Seen = false
		}
	}()

	if anchor == nil {
		return nil, nil
	}

	before = anchor
	for before.Prev() != nil && before.Prev().Value.Seen {
		before = before.Prev()
	}
	before = before.Prev()

	after = anchor
	for after.Value.Seen {
		next := after.Next()
		if next == nil {
			break
		}
		after = next
	}
	if after.Value.Seen {
		after = after.Next()
	}

	return before, after
}

// updateStatusBefore scans the nodes strictly between before and after that are about to be
// consumed by this event, closing out regions whose bundle is ending or merging here, before the
// new edge set replaces them (spec §4.6 step 3).
func (t *Tessellation) updateStatusBefore(ev *event.Event, before, after *edge.Node) {
	if before == nil || after == nil {
		return
	}
	x, y := ev.Point.Point().Coordinates()
	for n := before.Next(); n != nil && n != after; n = n.Next() {
		b := n.Value
		if b.Count() == 0 {
			continue
		}
		if r, ok := b.Region.(*region.Region); ok && r != nil {
			pendingMerge := r.LatestIsMerge
			r.Append(x, y, r.LatestVertex.IsLeft)
			if pendingMerge {
				r.Close()
			}
		}
	}
}

// handleConnectedEdges detaches each ending edge from its bundle and, unless the ring has ended,
// extends the ring into a new downward edge toward its follower vertex (spec §4.6 step 5).
func (t *Tessellation) handleConnectedEdges(ev *event.Event) []*edge.Edge {
	var newEdges []*edge.Edge
	evX, evY := ev.Point.Point().Coordinates()

	for _, e := range ev.Bend {
		if b := e.Bundle(); b != nil {
			b.Remove(e)
		}

		ring := t.rings[e.Ring]
		n := len(ring)
		if n == 0 {
			continue
		}
		followerPos := (e.Pos2 + e.Dir + n) % n
		follower := ring[followerPos]

		for follower.Eq(ring[e.Pos2], options.WithEpsilon(t.opts.Epsilon)) && followerPos != e.Pos2 {
			followerPos = (followerPos + e.Dir + n) % n
			follower = ring[followerPos]
		}

		fx, fy := follower.Coordinates()
		if fy > evY || (fy == evY && fx > evX) {
			ne := edge.New(e.Ring, e.Pos2, followerPos, e.Dir, ev.Point.Point(), follower)
			newEdges = append(newEdges, ne)
			followerEv := t.queue.InsertPoint(point.FromPoint(follower))
			followerEv.Bend = append(followerEv.Bend, ne)
		}
	}
	return newEdges
}

// replenishStarts pre-inserts the next ring entry point's event, so the queue can find it before
// the driver needs it (spec §4.6 step 6).
func (t *Tessellation) replenishStarts() {
	if t.nextStart >= len(t.starts) {
		return
	}
	e := t.starts[t.nextStart]
	ev := t.queue.InsertPoint(point.FromPoint(e.Pt))
	ev.Start = append(ev.Start, event.StartEntry{Ring: e.Ring, Pos: e.Pos})
	t.nextStart++
}

// spawnStartEdges creates the two new downward edges a ring entry point introduces: one toward
// each ring neighbor, skipping exact-duplicate consecutive points.
func (t *Tessellation) spawnStartEdges(ev *event.Event) []*edge.Edge {
	var newEdges []*edge.Edge
	for _, s := range ev.Start {
		ring := t.rings[s.Ring]
		n := len(ring)
		if n == 0 {
			continue
		}
		for _, dir := range [2]int{1, -1} {
			pos2 := (s.Pos + dir + n) % n
			neighbor := ring[pos2]
			for neighbor.Eq(ring[s.Pos], options.WithEpsilon(t.opts.Epsilon)) && pos2 != s.Pos {
				pos2 = (pos2 + dir + n) % n
				neighbor = ring[pos2]
			}
			if pos2 == s.Pos {
				continue
			}
			ne := edge.New(s.Ring, s.Pos, pos2, dir, ev.Point.Point(), neighbor)
			newEdges = append(newEdges, ne)
			neighborEv := t.queue.InsertPoint(point.FromPoint(neighbor))
			neighborEv.Bend = append(neighborEv.Bend, ne)
		}
	}
	return newEdges
}

// reclaimEmptyNodes removes and pools every zero-count bundle strictly between before and after,
// without touching any bundle that still has members. Used both by mergeEdgesIntoNodes ahead of
// inserting new edges, and directly by processEvent's no-new-edges path (a ring-end vertex with no
// replacement edge), so a bundle that just lost its last member is never left dangling in the tree.
func (t *Tessellation) reclaimEmptyNodes(before, after *edge.Node) {
	for n := before.Next(); n != nil && n != after; {
		next := n.Next()
		if n.Value.Count() == 0 {
			t.status.Remove(n)
			t.edgePool.Put(n.Value)
		}
		n = next
	}
}

// mergeEdgesIntoNodes folds the sorted newEdges into the status tree slot between before and
// after: an edge exactly collinear with an existing bundle joins it, otherwise a fresh bundle (and
// node) is created. See processEvent's doc comment for how this simplifies spec §4.6 steps 9-10.
func (t *Tessellation) mergeEdgesIntoNodes(before, after *edge.Node, newEdges []*edge.Edge) {
	t.reclaimEmptyNodes(before, after)

	for _, ne := range newEdges {
		line := edge.Line{Start: ne.Start, End: ne.End}
		delta, node := t.status.Insert(line, func(l edge.Line) *edge.Bundle {
			return t.edgePool.Get(l)
		})
		node.Value.SetNode(node)
		node.Value.Insert(ne)
		if delta != 0 {
			t.status.Splay(node)
		}
	}
}

// updateStatusAfter re-walks the (new) transitions between before and after, updating each
// bundle's AfterIsInside, assigning it a MonotoneRegion, and emitting the corresponding vertex
// (spec §4.6 step 11). Every vertex appended here is the current event's own point (evX, evY):
// by the time this runs, mergeEdgesIntoNodes may already have extended an affected bundle's
// canonical geometry (X, Y, X2, Y2) past the event toward whatever point its new edge reaches
// next, so bundle geometry is never a substitute for the event's own coordinates.
func (t *Tessellation) updateStatusAfter(before, after *edge.Node, evX, evY float64) {
	if before == nil || after == nil {
		return
	}
	inside := before.Value.AfterIsInside

	// pending holds the region a StartOrSplit transition just opened, so that a freshly-created
	// bundle immediately to its right — one with no Region of its own yet — can be recognized as
	// that same region's other bounding chain, rather than silently dropping the EndOrMerge
	// transition a brand-new local minimum produces on its second edge.
	var pending *region.Region

	for n := before.Next(); n != nil && n != after; n = n.Next() {
		b := n.Value
		if b.Count() == 0 {
			continue
		}
		wasInside := inside
		nowInside := !wasInside
		b.AfterIsInside = nowInside
		inside = nowInside

		kind := region.Transition(wasInside, nowInside)
		x, y := evX, evY

		switch kind {
		case region.StartOrSplit:
			r := region.New()
			r.Seed(region.Vertex{X: x, Y: y, IsLeft: true})
			b.Region = r
			t.regions = append(t.regions, r)
			pending = r
		case region.EndOrMerge:
			r, ok := b.Region.(*region.Region)
			if !ok || r == nil {
				r = pending
			}
			if r != nil {
				r.Append(x, y, false)
				r.MarkMerge()
				b.Region = r
			}
			pending = nil
		case region.RightChainPass:
			if r, ok := b.Region.(*region.Region); ok && r != nil {
				r.Append(x, y, false)
			}
			pending = nil
		case region.LeftChainPass:
			if r, ok := b.Region.(*region.Region); ok && r != nil {
				r.Append(x, y, true)
			}
			pending = nil
		}
	}
}

// handleNeighbors tests the two bundle pairs that became (or remained) neighbors across this
// event for a future crossing, skipping any pair already memoized (spec §4.6 step 12).
func (t *Tessellation) handleNeighbors(before, after *edge.Node) {
	if before == nil || after == nil {
		return
	}
	if n := before.Next(); n != nil {
		t.tryIntersection(before.Value, n.Value)
	}
	if p := after.Prev(); p != nil {
		t.tryIntersection(p.Value, after.Value)
	}
}

func (t *Tessellation) tryIntersection(a, b *edge.Bundle) {
	if a == nil || b == nil || a.Count() == 0 || b.Count() == 0 {
		return
	}
	if t.crossings.TestAndSet(a.ID(), b.ID()) {
		return
	}
	p, ok := t.checkIntersection(a, b)
	if !ok {
		return
	}
	ev := t.queue.InsertPoint(p)
	ev.Cross = append(ev.Cross, event.CrossEntry{A: a, B: b})
}

// checkIntersection implements spec §4.6's checkIntersection(a, b): a bounding-box prefilter,
// the perpDotSign orientation test, and the rational-intersection construction with derived
// error bounds.
func (t *Tessellation) checkIntersection(a, b *edge.Bundle) (point.RationalPoint, bool) {
	adx := a.X2 - a.X
	bdx := b.X2 - b.X
	if (a.X+adx/2)-(b.X+bdx/2) > (numeric.Abs(adx)+numeric.Abs(bdx))*(1+2*numeric.Epsilon)+2*(a.XErrBound+b.XErrBound) {
		return point.RationalPoint{}, false
	}

	det := numeric.PerpDotSign(a.X, a.Y, a.X2, a.Y2, b.X, b.Y, b.X2, b.Y2)
	if det <= 0 {
		return point.RationalPoint{}, false
	}

	a2 := numeric.PerpDotSign(a.X2, a.Y2, b.X, b.Y, a.X2, a.Y2, b.X2, b.Y2)
	b2 := numeric.PerpDotSign(b.X2, b.Y2, a.X, a.Y, b.X2, b.Y2, a.X2, a.Y2)
	if !(a2 <= 0 && b2 >= 0) {
		return point.RationalPoint{}, false
	}

	if a2 == 0 || b2 == 0 {
		var endpoint point.Point
		var keep point.BundleRef
		if a2 == 0 {
			endpoint = point.New(a.X2, a.Y2)
			keep = b
		} else {
			endpoint = point.New(b.X2, b.Y2)
			keep = a
		}
		return point.RationalPoint{X: endpoint.X(), Y: endpoint.Y(), W: 0, A: keep}, true
	}

	x := a.X2*det + (a.X2-a.X)*a2
	y := a.Y2*det + (a.Y2-a.Y)*a2
	w := det

	errBound := (numeric.Abs(x) + numeric.Abs(y) + numeric.Abs(w)) * 16 * numeric.Epsilon

	rp := point.RationalPoint{
		X: x, Y: y, W: w,
		XErr: errBound, YErr: errBound, WErr: errBound,
		A: a, B: b,
	}

	t.recordIntersection(rp.Point())
	return rp, true
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
