// Package splay implements a bottom-up splay binary search tree whose nodes are also threaded
// into a doubly-linked in-order list (prev/next), so a caller holding a node reference can walk
// its immediate neighbors without touching the tree shape at all, and can remove it in O(1)
// amortized time without a fresh descent.
//
// Both the sweep line's event queue and its status structure are instances of this tree,
// parameterized over different key and item types — see package event and package edge. Neither
// instantiation needs a generic ordered-map: both need direct node handles, caller-controlled
// splay timing (a lookup miss splays, a direct-reference hit does not), and O(1) removal given a
// node, none of which an off-the-shelf balanced tree exposes.
package splay

// Item is the capability a tree's payload must provide: the ability to compare itself against a
// key of type K, in the same direction as cmp.Compare (negative if the item sorts before key,
// zero if they match, positive if it sorts after).
type Item[K any] interface {
	DeltaFrom(key K) float64
}

// Node is a single tree node. Left, Right and Parent implement the binary search tree shape.
// Prev and Next thread the node into the in-order neighbor list, maintained incrementally so a
// caller never has to re-derive it by walking the tree.
type Node[K any, V Item[K]] struct {
	Value V

	left, right, parent *Node[K, V]
	prev, next          *Node[K, V]
}

// Prev returns the node's in-order predecessor, or nil if it is the first node in the tree.
func (n *Node[K, V]) Prev() *Node[K, V] { return n.prev }

// Next returns the node's in-order successor, or nil if it is the last node in the tree.
func (n *Node[K, V]) Next() *Node[K, V] { return n.next }

// Tree is a splay tree over items of type V, keyed by comparisons against a key of type K via
// Item.DeltaFrom. The zero value is not usable; construct with New.
type Tree[K any, V Item[K]] struct {
	root *Node[K, V]
	size int
}

// New constructs an empty tree.
func New[K any, V Item[K]]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Root returns the tree's current root, or nil if the tree is empty.
func (t *Tree[K, V]) Root() *Node[K, V] { return t.root }

// Len returns the number of nodes in the tree.
func (t *Tree[K, V]) Len() int { return t.size }

// First returns the minimum (leftmost) node in in-order, or nil if the tree is empty.
func (t *Tree[K, V]) First() *Node[K, V] {
	n := t.root
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Last returns the maximum (rightmost) node in in-order, or nil if the tree is empty.
func (t *Tree[K, V]) Last() *Node[K, V] {
	n := t.root
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Insert descends the tree comparing key against each node's value via DeltaFrom. If it finds a
// node whose value compares equal (delta==0) to key, it returns that node's delta (zero) and the
// existing node without creating anything new. Otherwise it builds a new node via factory(key),
// splices it into the tree at the correct position and into the prev/next chain, and returns the
// delta that led to its placement (negative if it became a left child, positive if a right
// child) along with the new node. Inserting into an empty tree also returns a delta of zero,
// together with the new root node.
//
// Insert does not splay. Callers that want amortized balance should call Splay on the returned
// node after a lookup miss; a direct-reference hit (the caller already held the node) typically
// should not splay, per the tree's usage contract.
func (t *Tree[K, V]) Insert(key K, factory func(K) V) (delta float64, node *Node[K, V]) {
	if t.root == nil {
		n := &Node[K, V]{Value: factory(key)}
		t.root = n
		t.size = 1
		return 0, n
	}

	cur := t.root
	for {
		d := cur.Value.DeltaFrom(key)
		switch {
		case d == 0:
			return 0, cur
		case d > 0:
			if cur.left == nil {
				n := &Node[K, V]{Value: factory(key), parent: cur}
				cur.left = n
				n.prev = cur.prev
				n.next = cur
				if n.prev != nil {
					n.prev.next = n
				}
				cur.prev = n
				t.size++
				return -d, n
			}
			cur = cur.left
		default:
			if cur.right == nil {
				n := &Node[K, V]{Value: factory(key), parent: cur}
				cur.right = n
				n.next = cur.next
				n.prev = cur
				if n.next != nil {
					n.next.prev = n
				}
				cur.next = n
				t.size++
				return -d, n
			}
			cur = cur.right
		}
	}
}

// Find descends the tree comparing key against each node's value, returning the matching node (or
// nil if none matches) without creating anything and without splaying.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	cur := t.root
	for cur != nil {
		d := cur.Value.DeltaFrom(key)
		switch {
		case d == 0:
			return cur
		case d > 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x.parent.left == x {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rotateRight(x *Node[K, V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x.parent.left == x {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.right = x
	x.parent = y
}

// Splay rotates node to the root of the tree via the standard zig/zig-zig/zig-zag steps. It is
// the caller's responsibility to decide when splaying is worthwhile; Insert and Find never splay
// on their own.
func (t *Tree[K, V]) Splay(n *Node[K, V]) {
	if n == nil {
		return
	}
	for n.parent != nil {
		p := n.parent
		g := p.parent
		if g == nil {
			// Zig.
			if p.left == n {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		} else if g.left == p && p.left == n {
			// Zig-zig.
			t.rotateRight(g)
			t.rotateRight(p)
		} else if g.right == p && p.right == n {
			t.rotateLeft(g)
			t.rotateLeft(p)
		} else if g.left == p && p.right == n {
			// Zig-zag.
			t.rotateLeft(p)
			t.rotateRight(g)
		} else {
			t.rotateRight(p)
			t.rotateLeft(g)
		}
	}
}

// Remove deletes node from the tree in O(1) amortized time given the direct reference, splicing
// it out of both the binary search tree and the prev/next chain. It never splays.
func (t *Tree[K, V]) Remove(n *Node[K, V]) {
	if n == nil {
		return
	}

	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}

	switch {
	case n.left == nil && n.right == nil:
		t.replace(n, nil)
	case n.left == nil:
		t.replace(n, n.right)
	case n.right == nil:
		t.replace(n, n.left)
	default:
		succ := n.next
		if succ.parent != n {
			t.replace(succ, succ.right)
			succ.right = n.right
			succ.right.parent = succ
		}
		t.replace(n, succ)
		succ.left = n.left
		succ.left.parent = succ
	}

	n.left, n.right, n.parent, n.prev, n.next = nil, nil, nil, nil, nil
	t.size--
}

// replace substitutes node old (still linked to its parent) with node replacement (which may be
// nil) in the tree shape, fixing up the parent pointer on both sides.
func (t *Tree[K, V]) replace(old, replacement *Node[K, V]) {
	if old.parent == nil {
		t.root = replacement
	} else if old.parent.left == old {
		old.parent.left = replacement
	} else {
		old.parent.right = replacement
	}
	if replacement != nil {
		replacement.parent = old.parent
	}
}
