package splay_test

import (
	"testing"

	"github.com/scanline-geo/ytess/splay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intItem struct {
	v int
}

func (i *intItem) DeltaFrom(key int) float64 {
	return float64(i.v - key)
}

func factory(key int) *intItem { return &intItem{v: key} }

func TestInsertAndFind(t *testing.T) {
	tree := splay.New[int, *intItem]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		_, n := tree.Insert(v, factory)
		tree.Splay(n)
	}
	require.Equal(t, 7, tree.Len())

	n := tree.Find(7)
	require.NotNil(t, n)
	assert.Equal(t, 7, n.Value.v)

	assert.Nil(t, tree.Find(42))
}

func TestInsertDuplicateReturnsExisting(t *testing.T) {
	tree := splay.New[int, *intItem]()
	_, first := tree.Insert(5, factory)
	delta, second := tree.Insert(5, factory)
	assert.Equal(t, 0.0, delta)
	assert.Same(t, first, second)
	assert.Equal(t, 1, tree.Len())
}

func TestFirstLastOrdering(t *testing.T) {
	tree := splay.New[int, *intItem]()
	for _, v := range []int{5, 3, 8, 1, 9, 4} {
		tree.Insert(v, factory)
	}
	assert.Equal(t, 1, tree.First().Value.v)
	assert.Equal(t, 9, tree.Last().Value.v)
}

func TestPrevNextThreading(t *testing.T) {
	tree := splay.New[int, *intItem]()
	values := []int{5, 3, 8, 1, 4, 7, 9, 2, 6}
	for _, v := range values {
		_, n := tree.Insert(v, factory)
		tree.Splay(n)
	}

	var ordered []int
	for n := tree.First(); n != nil; n = n.Next() {
		ordered = append(ordered, n.Value.v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, ordered)

	var reversed []int
	for n := tree.Last(); n != nil; n = n.Prev() {
		reversed = append(reversed, n.Value.v)
	}
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, reversed)
}

func TestRemoveMaintainsThreadsAndOrder(t *testing.T) {
	tree := splay.New[int, *intItem]()
	var nodes []*splay.Node[int, *intItem]
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		_, n := tree.Insert(v, factory)
		nodes = append(nodes, n)
	}

	// Remove the node holding 4 (a leaf or near-leaf depending on insert order) and 5 (the root
	// in an unsplayed tree), and confirm both tree size and in-order walk stay consistent.
	var toRemove []*splay.Node[int, *intItem]
	for _, n := range nodes {
		if n.Value.v == 4 || n.Value.v == 5 {
			toRemove = append(toRemove, n)
		}
	}
	for _, n := range toRemove {
		tree.Remove(n)
	}

	assert.Equal(t, 5, tree.Len())
	var ordered []int
	for n := tree.First(); n != nil; n = n.Next() {
		ordered = append(ordered, n.Value.v)
	}
	assert.Equal(t, []int{1, 3, 7, 8, 9}, ordered)
}

func TestSplayMovesNodeToRoot(t *testing.T) {
	tree := splay.New[int, *intItem]()
	var target *splay.Node[int, *intItem]
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		_, n := tree.Insert(v, factory)
		if v == 1 {
			target = n
		}
	}
	tree.Splay(target)
	assert.Same(t, target, tree.Root())
}
