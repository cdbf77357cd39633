// Package rbtree provides an intrusive, generic red-black tree.
//
// "Intrusive" means the tree owns no payload of its own: the caller embeds
// one [Linkage] field per tree it wants the element to participate in, and
// hands the tree a [Hook] that reaches into that field. Nothing is
// allocated by insert, nothing is copied by delete, and the same element
// can be linked into several independent trees simultaneously: one tree
// per tag, one [Linkage] field per tag, completely independent of one
// another.
//
// # Usage
//
//	type Account struct {
//		byID   rbtree.Linkage[Account]
//		byName rbtree.Linkage[Account]
//		ID     int
//		Name   string
//	}
//
//	byID := rbtree.New[Account, int, struct{}](
//		func(a *Account) *rbtree.Linkage[Account] { return &a.byID },
//		rbtree.Ordering[Account, int]{
//			Less:     func(a, b *Account) bool { return a.ID < b.ID },
//			KeyLess:  func(id int, a *Account) bool { return id < a.ID },
//			ElemLess: func(a *Account, id int) bool { return a.ID < id },
//		},
//	)
//	byID.Insert(&Account{ID: 1, Name: "ada"})
//
// # Safety
//
// A tree is single-threaded with respect to any given (tree, tag) pair; see
// the package-level concurrency contract described in the project's design
// notes. Distinct tags on the same element are independent: mutating the
// byID tree never reads or writes byName's linkage.
package rbtree
