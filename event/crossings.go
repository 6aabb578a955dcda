package event

import "github.com/emirpasic/gods/sets/hashset"

// pairKey canonically combines two bundle identities into the single key spec §4.6 step 12
// describes: (min id << 26) + max id. 26 bits comfortably covers any bundle count a single
// tessellation could plausibly produce while keeping the combined key inside a uint64.
func pairKey(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return (uint64(a) << 26) + uint64(b)
}

// CrossingsMemo tracks which bundle pairs have already been tested for an intersection since the
// last time they became (or stopped being) status-tree neighbors, so handleNeighbors never tests
// the same pair twice between consecutive reorderings (spec P7). Backed by
// [github.com/emirpasic/gods/sets/hashset], the one unordered membership structure the driver
// needs — the splay tree in package splay already covers every ordered-container concern.
type CrossingsMemo struct {
	set *hashset.Set
}

// NewCrossingsMemo constructs an empty memo.
func NewCrossingsMemo() *CrossingsMemo {
	return &CrossingsMemo{set: hashset.New()}
}

// TestAndSet reports whether the pair (a, b) was already memoized, and if not, adds it. The
// driver should call this before testing a candidate pair for intersection, and skip the test
// entirely if TestAndSet returns true.
func (m *CrossingsMemo) TestAndSet(a, b uint32) bool {
	key := pairKey(a, b)
	if m.set.Contains(key) {
		return true
	}
	m.set.Add(key)
	return false
}

// Remove evicts the pair (a, b) from the memo, called once the event that carried their
// candidate crossing has been consumed (spec §4.6 step 4), allowing the same pair to be
// re-tested if it becomes neighbors again after a later reordering.
func (m *CrossingsMemo) Remove(a, b uint32) {
	m.set.Remove(pairKey(a, b))
}
