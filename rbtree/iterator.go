package rbtree

import "iter"

// All returns a lazy in-order sequence over every linked element, from
// minimum to maximum. Iteration advances by computing each node's in-order
// successor on demand, so it is stable across operations that do not touch
// the node currently being visited; removing a node invalidates only
// iteration resuming from that node.
func (t *Tree[E, K, Tag]) All() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for n := t.Min(); n != nil; n = t.successor(n) {
			if !yield(n) {
				return
			}
		}
	}
}

// Backward is the mirror of All: a lazy sequence from maximum to minimum.
func (t *Tree[E, K, Tag]) Backward() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for n := t.Max(); n != nil; n = t.predecessor(n) {
			if !yield(n) {
				return
			}
		}
	}
}

// From returns a lazy in-order sequence starting at start (inclusive) and
// running to the maximum. Combined with Find/LowerBound/UpperBound, this
// lets a caller resume traversal from an arbitrary point instead of always
// starting at Min.
func (t *Tree[E, K, Tag]) From(start *E) iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for n := start; n != nil; n = t.successor(n) {
			if !yield(n) {
				return
			}
		}
	}
}
