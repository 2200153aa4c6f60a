package sord

import "github.com/tidwall/btree"

// orderedIndex is a single ordered set of storage keys under one Order,
// backed by a generic B-tree (spec §4.C). It is a set, not a multimap:
// Insert on an already-present key is a no-op duplicate.
type orderedIndex struct {
	order Order
	tree  *btree.BTreeG[[4]*Node]
}

func newOrderedIndex(order Order) *orderedIndex {
	less := func(a, b [4]*Node) bool { return compareKeys(a, b) < 0 }
	return &orderedIndex{order: order, tree: btree.NewBTreeG[[4]*Node](less)}
}

// contains reports whether key is already present.
func (ix *orderedIndex) contains(key [4]*Node) bool {
	_, ok := ix.tree.Get(key)
	return ok
}

// insert adds key, reporting true if it was not already present.
func (ix *orderedIndex) insert(key [4]*Node) bool {
	_, had := ix.tree.Set(key)
	return !had
}

// remove deletes key, reporting true if it was present.
func (ix *orderedIndex) remove(key [4]*Node) bool {
	_, had := ix.tree.Delete(key)
	return had
}

func (ix *orderedIndex) len() int { return ix.tree.Len() }

// seek positions a cursor at the first key >= pivot (spec §4.C
// "lower-bound search"). The returned bool is false if no such key
// exists (the index is empty, or pivot sorts above everything stored).
func (ix *orderedIndex) seek(pivot [4]*Node) (btree.IterG[[4]*Node], bool) {
	iter := ix.tree.Iter()
	ok := iter.Seek(pivot)
	return iter, ok
}
