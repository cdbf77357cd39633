package rbtree

func (t *Tree[E, K, Tag]) minNode(n *E) *E {
	for t.leftOf(n) != nil {
		n = t.leftOf(n)
	}
	return n
}

func (t *Tree[E, K, Tag]) maxNode(n *E) *E {
	for t.rightOf(n) != nil {
		n = t.rightOf(n)
	}
	return n
}

func (t *Tree[E, K, Tag]) successor(n *E) *E {
	if t.rightOf(n) != nil {
		return t.minNode(t.rightOf(n))
	}
	p := t.parentOf(n)
	for p != nil && n == t.rightOf(p) {
		n = p
		p = t.parentOf(p)
	}
	return p
}

func (t *Tree[E, K, Tag]) predecessor(n *E) *E {
	if t.leftOf(n) != nil {
		return t.maxNode(t.leftOf(n))
	}
	p := t.parentOf(n)
	for p != nil && n == t.leftOf(p) {
		n = p
		p = t.parentOf(p)
	}
	return p
}

// Min returns the smallest linked element, or nil if the tree is empty.
func (t *Tree[E, K, Tag]) Min() *E {
	if t.root == nil {
		return nil
	}
	return t.minNode(t.root)
}

// Max returns the largest linked element, or nil if the tree is empty.
func (t *Tree[E, K, Tag]) Max() *E {
	if t.root == nil {
		return nil
	}
	return t.maxNode(t.root)
}

// Successor returns n's in-order successor, or nil if n is the maximum.
//
// This does not validate that n belongs to this tree; calling it on a node
// from another tree (even under the same tag) is undefined.
func (t *Tree[E, K, Tag]) Successor(n *E) *E { return t.successor(n) }

// Predecessor returns n's in-order predecessor, or nil if n is the minimum.
func (t *Tree[E, K, Tag]) Predecessor(n *E) *E { return t.predecessor(n) }

// Find returns a linked element equivalent to k, or nil if none exists.
func (t *Tree[E, K, Tag]) Find(k K) *E {
	cur := t.root
	for cur != nil {
		switch {
		case t.order.KeyLess(k, cur):
			cur = t.leftOf(cur)
		case t.order.ElemLess(cur, k):
			cur = t.rightOf(cur)
		default:
			return cur
		}
	}
	return nil
}

// LowerBound returns the first element m, in in-order sequence, with
// !less(m, k), i.e. the first element not less than k, or nil if every
// linked element is less than k.
func (t *Tree[E, K, Tag]) LowerBound(k K) *E {
	cur := t.root
	var result *E
	for cur != nil {
		if !t.order.ElemLess(cur, k) {
			result = cur
			cur = t.leftOf(cur)
		} else {
			cur = t.rightOf(cur)
		}
	}
	return result
}

// UpperBound returns the first element m, in in-order sequence, with
// less(k, m), or nil if no linked element exceeds k.
func (t *Tree[E, K, Tag]) UpperBound(k K) *E {
	cur := t.root
	var result *E
	for cur != nil {
		if t.order.KeyLess(k, cur) {
			result = cur
			cur = t.leftOf(cur)
		} else {
			cur = t.rightOf(cur)
		}
	}
	return result
}
