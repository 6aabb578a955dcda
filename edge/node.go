package edge

import "github.com/scanline-geo/ytess/splay"

// Node is the status tree's node type: a [splay.Node] keyed by Line and carrying a *Bundle
// payload. It is defined as an alias so callers outside this package never need to spell out the
// splay package's generic instantiation.
type Node = splay.Node[Line, *Bundle]

// Pool is a private free list of Bundles, reused across a sweep instead of allocated fresh at
// every event. The teacher repo has no object-pooling precedent of its own beyond scratch numeric
// buffers; this generalizes that same "reuse instead of reallocate" discipline to bundles, which
// the driver creates and discards at very high frequency. Status-tree Nodes are not pooled: each
// one is allocated by [splay.Tree.Insert].
//
// A Pool is a field of Tessellation, never package-level state, so two tessellations never
// contend over the same free list.
type Pool struct {
	bundles []*Bundle
	ids     IDSource
}

// NewPool constructs an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

// Get returns a Bundle seeded from line, either recycled from the free list or freshly allocated.
// Recycled bundles are given a fresh id — ids are never reused, since a freed bundle's id may
// still be referenced by a stale entry in the crossings memo.
func (p *Pool) Get(line Line) *Bundle {
	if n := len(p.bundles); n > 0 {
		b := p.bundles[n-1]
		p.bundles = p.bundles[:n-1]
		b.id = p.ids.Next()
		x, y := line.Start.Coordinates()
		x2, y2 := line.End.Coordinates()
		b.X, b.Y, b.X2, b.Y2 = x, y, x2, y2
		b.XErrBound = 0
		b.AfterIsInside = false
		b.Seen = false
		b.Region = nil
		b.count = 0
		for e := range b.edges {
			delete(b.edges, e)
		}
		b.node = nil
		return b
	}
	return newBundle(line, &p.ids)
}

// Put returns a Bundle to the free list once its Count() has reached 0 and it has been removed
// from the status tree. Callers must not retain any reference to b after calling Put.
func (p *Pool) Put(b *Bundle) {
	b.node = nil
	p.bundles = append(p.bundles, b)
}
