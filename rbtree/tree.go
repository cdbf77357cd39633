package rbtree

import "errors"

// ErrDuplicate is returned by Insert and InsertHint when the tree does not
// permit duplicates (MULTIPLE is unset) and an equivalent element is
// already linked. The tree is left unchanged.
var ErrDuplicate = errors.New("rbtree: duplicate element")

// Tree is the red-black tree head: the root pointer, the element count, and
// every algorithm operating on them. It is parameterized by the element
// type E, the key type K used for Find/LowerBound/UpperBound, and a
// phantom Tag distinguishing independent trees over the same (E, K) pair
// (for example two int-keyed trees over the same struct, selected by
// different Hooks).
//
// A Tree's zero value is not usable; construct one with [New].
type Tree[E, K, Tag any] struct {
	hook      Hook[E]
	order     Ordering[E, K]
	callbacks Callbacks[E]
	multiple  bool

	root *E
	size int
}

// Option configures a Tree at construction time.
type Option[E, K, Tag any] func(*Tree[E, K, Tag])

// WithMultiple permits the tree to hold distinct elements that compare
// equivalent under its Ordering. Equivalent elements are ordered amongst
// themselves by insertion order (ties break toward the right subtree; see
// Insert).
func WithMultiple[E, K, Tag any]() Option[E, K, Tag] {
	return func(t *Tree[E, K, Tag]) { t.multiple = true }
}

// WithCallbacks installs the structural-event hooks described by
// [Callbacks].
func WithCallbacks[E, K, Tag any](cb Callbacks[E]) Option[E, K, Tag] {
	return func(t *Tree[E, K, Tag]) { t.callbacks = cb }
}

// New constructs an empty Tree. hook selects the Linkage field this tree
// uses on each element (see [Hook]); order defines the tree's placement
// rule.
func New[E, K, Tag any](hook Hook[E], order Ordering[E, K], opts ...Option[E, K, Tag]) *Tree[E, K, Tag] {
	t := &Tree[E, K, Tag]{
		hook:  hook,
		order: order,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the number of linked elements.
func (t *Tree[E, K, Tag]) Size() int { return t.size }

// Root returns the root element, or nil if the tree is empty.
func (t *Tree[E, K, Tag]) Root() *E { return t.root }

// Clear detaches every node reachable from the root. It does not invoke
// destructors, callbacks, or mutate any node's linkage fields; the caller
// is free to re-insert or discard the nodes as it sees fit.
func (t *Tree[E, K, Tag]) Clear() {
	t.root = nil
	t.size = 0
}
