package rbtree

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
)

type benchNode struct {
	key int
	lk  Linkage[benchNode]
}

func benchHook(n *benchNode) *Linkage[benchNode] { return &n.lk }

func newBenchTree() *Tree[benchNode, int, struct{}] {
	order := Ordering[benchNode, int]{
		Less:     func(a, b *benchNode) bool { return a.key < b.key },
		KeyLess:  func(k int, e *benchNode) bool { return k < e.key },
		ElemLess: func(e *benchNode, k int) bool { return e.key < k },
	}
	return New[benchNode, int, struct{}](benchHook, order)
}

func BenchmarkTree_Insert(b *testing.B) {
	tree := newBenchTree()
	i := 0
	for b.Loop() {
		tree.Insert(&benchNode{key: i})
		i++
	}
}

func BenchmarkGoDSRedBlackTree_Insert(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	i := 0
	for b.Loop() {
		tree.Put(i, struct{}{})
		i++
	}
}

func BenchmarkTree_FindRemove(b *testing.B) {
	tree := newBenchTree()
	const n = 100_000
	nodes := make([]*benchNode, n)
	for i := 0; i < n; i++ {
		nodes[i] = &benchNode{key: i}
		tree.Insert(nodes[i])
	}

	i := 0
	for b.Loop() {
		if i >= n {
			i = 0
			for j := 0; j < n; j++ {
				nodes[j] = &benchNode{key: j}
				tree.Insert(nodes[j])
			}
		}
		found := tree.Find(i)
		tree.Remove(found)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_FindRemove(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	const n = 100_000
	for i := 0; i < n; i++ {
		tree.Put(i, struct{}{})
	}

	i := 0
	for b.Loop() {
		if i >= n {
			i = 0
			for j := 0; j < n; j++ {
				tree.Put(j, struct{}{})
			}
		}
		tree.Remove(i)
		i++
	}
}

func BenchmarkTree_InsertHintAtEnd(b *testing.B) {
	tree := newBenchTree()
	i := 0
	for b.Loop() {
		tree.InsertHint(&benchNode{key: i}, nil)
		i++
	}
}
