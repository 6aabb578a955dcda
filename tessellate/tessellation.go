// Package tessellate implements the sweep driver: Tessellation is the public facade over the
// event queue (package event), the status structure (a splay tree of package edge's Bundle,
// keyed by edge.Line), and the region assembler (package region). driver.go holds the Step
// algorithm itself; this file holds construction and the three public accessors.
package tessellate

import (
	"math"

	"github.com/scanline-geo/ytess/edge"
	"github.com/scanline-geo/ytess/event"
	"github.com/scanline-geo/ytess/options"
	"github.com/scanline-geo/ytess/point"
	"github.com/scanline-geo/ytess/region"
	"github.com/scanline-geo/ytess/splay"
	"github.com/scanline-geo/ytess/startpoint"
)

// limit is the largest double whose double of itself still compares finite, used to place the
// two sentinel edges that bracket the status tree (spec §4.6: "Sentinels").
const limit = math.MaxFloat64 / 2

// Tessellation owns every heap entity a sweep produces: events, bundles, nodes and regions are
// all reachable only through this struct's fields, never through package-level state, so that
// two Tessellations never alias each other's pools (spec §9's "global state" note).
type Tessellation struct {
	rings [][]point.Point
	opts  options.GeometryOptions

	eventPool *event.Pool
	queue     *event.Queue
	edgePool  *edge.Pool
	status    *splay.Tree[edge.Line, *edge.Bundle]
	crossings *event.CrossingsMemo

	starts    []startpoint.Entry
	nextStart int

	regions       []*region.Region
	intersections []point.Point
	seenInter     map[[2]float64]struct{}

	sentinelLo, sentinelHi *edge.Node

	done bool
}

// New constructs a Tessellation over rings, ready for Step to be called. rings is borrowed: the
// Tessellation never mutates it and the caller remains free to discard it after tessellation
// completes.
func New(rings [][]point.Point, opts ...options.GeometryOptionsFunc) *Tessellation {
	t := &Tessellation{
		rings:     rings,
		opts:      options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...),
		eventPool: event.NewPool(),
		edgePool:  edge.NewPool(),
		crossings: event.NewCrossingsMemo(),
		seenInter: make(map[[2]float64]struct{}),
		status:    splay.New[edge.Line, *edge.Bundle](),
	}
	t.queue = event.NewQueue(t.eventPool)
	t.starts = startpoint.Scan(rings)
	t.installSentinels()
	t.seedFirstStart()
	return t
}

// installSentinels inserts the two fabricated vertical sentinel edges at x = ±limit that
// bracket the status tree, so prev/next walks never fall off an end.
func (t *Tessellation) installSentinels() {
	lo := edge.Line{Start: point.New(-limit, -limit), End: point.New(-limit, limit)}
	hi := edge.Line{Start: point.New(limit, -limit), End: point.New(limit, limit)}

	_, loNode := t.status.Insert(lo, func(l edge.Line) *edge.Bundle {
		b := t.edgePool.Get(l)
		b.AfterIsInside = false
		return b
	})
	loNode.Value.SetNode(loNode)

	_, hiNode := t.status.Insert(hi, func(l edge.Line) *edge.Bundle {
		b := t.edgePool.Get(l)
		b.AfterIsInside = true
		return b
	})
	hiNode.Value.SetNode(hiNode)

	t.sentinelLo, t.sentinelHi = loNode, hiNode
}

// seedFirstStart pre-inserts an event for the first ring entry point so the queue is non-empty
// at the first call to Step, matching the "next start is pre-inserted" replenishment spec §4.6
// step 6 describes.
func (t *Tessellation) seedFirstStart() {
	if len(t.starts) == 0 {
		return
	}
	e := t.starts[0]
	ev := t.queue.InsertPoint(point.FromPoint(e.Pt))
	ev.Start = append(ev.Start, event.StartEntry{Ring: e.Ring, Pos: e.Pos})
	t.nextStart = 1
}

// Step advances the sweep by one event. It returns false once the event queue is empty, at
// which point MonotoneRegions and IntersectionPoints hold the final result.
func (t *Tessellation) Step() bool {
	if t.done {
		return false
	}
	ev := t.queue.Pop()
	if ev == nil {
		t.done = true
		return false
	}
	t.processEvent(ev)
	t.queue.Free(ev)
	return true
}

// MonotoneRegions returns every region assembled so far. Before Step has returned false, the
// result is indeterminate (spec §5) and should be treated as informational only.
func (t *Tessellation) MonotoneRegions() []*region.Region {
	return t.regions
}

// IntersectionPoints returns every distinct proper self-intersection discovered so far, each
// rounded to float64 at the moment it was emitted.
func (t *Tessellation) IntersectionPoints() []point.Point {
	return t.intersections
}

// recordIntersection appends p to the intersection list the first time it is seen, deduplicating
// by its rounded coordinates (spec P4: "deduplicated after rounding").
func (t *Tessellation) recordIntersection(p point.Point) {
	key := [2]float64{p.X(), p.Y()}
	if _, ok := t.seenInter[key]; ok {
		return
	}
	t.seenInter[key] = struct{}{}
	t.intersections = append(t.intersections, p)
}
