package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

// BalancedTree is a binary search tree that never rotates. After every Insert and every
// successful Delete it checks whether each node's subtrees differ in height by at most 1.
// If any node doesn't, the whole tree is thrown away and rebuilt: the in-order values are
// reordered with RebalanceArray and inserted one by one into a fresh tree, whose root then
// replaces the old one.
// A rebuild costs O(n). Between rebuilds D stays O(log n) as long as the values are distinct;
// long runs of equal values can't be balanced since equal values always go right.
// The zero value is an empty tree.
type BalancedTree[T constraints.Ordered] struct {
	base[T]
	rebuilds uint
}

// New returns an empty BalancedTree.
func New[T constraints.Ordered]() *BalancedTree[T] {
	return &BalancedTree[T]{}
}

// Build inserts the values into an empty BalancedTree in the given order, checking the
// balance after each one.
// Time: O(n^2) worst case
func Build[T constraints.Ordered](values ...T) *BalancedTree[T] {
	u := New[T]()
	for _, v := range values {
		u.Insert(v)
	}
	return u
}

// Insert [Tree.Insert]
// Time: O(D) when no rebuild happens, otherwise O(n).
func (u *BalancedTree[T]) Insert(v T) {
	u.insert(v)
	u.check()
}

// Delete [Tree.Delete]
// The balance is checked once after the node is unlinked, and not at all when v isn't found.
// Time: O(D) when no rebuild happens, otherwise O(n).
func (u *BalancedTree[T]) Delete(v T) (T, error) {
	removed, err := u.remove(v)
	if err != nil {
		return removed, err
	}
	u.check()
	return removed, nil
}

// Rebalance rebuilds the tree even if it's already balanced.
// Time: O(n)
func (u *BalancedTree[T]) Rebalance() {
	u.rebuild()
}

// Rebuilds is the number of times this tree has been rebuilt.
func (u *BalancedTree[T]) Rebuilds() uint {
	return u.rebuilds
}

func (u *BalancedTree[T]) check() {
	if !u.IsBalanced() {
		u.rebuild()
	}
}

// rebuild swaps the root for one of a new tree. The old nodes are left to the collector.
func (u *BalancedTree[T]) rebuild() {
	var fresh base[T]
	for _, v := range RebalanceArray(u.InOrder()) {
		fresh.insert(v)
	}
	u.root = fresh.root
	u.rebuilds++
}

// RebalanceArray reorders a sorted slice so that inserting the result in order into an empty
// PlainTree makes every node the middle element of its range. For a slice s of length n, the
// result is s[n/2] followed by RebalanceArray(s[:n/2]) then RebalanceArray(s[n/2+1:]).
// s isn't modified.
// Time: O(n); Space: O(log n) besides the result.
func RebalanceArray[T any](s []T) []T {
	res := make([]T, 0, len(s))
	if len(s) <= 1 {
		return append(res, s...)
	}
	st := arraystack.New() //[lo,hi) ranges still to be emitted
	for st.Push([2]int{0, len(s)}); !st.Empty(); {
		top, _ := st.Pop()
		r := top.([2]int)
		lo, hi := r[0], r[1]
		mid := lo + (hi-lo)>>1
		res = append(res, s[mid])
		if mid+1 < hi {
			st.Push([2]int{mid + 1, hi})
		}
		if lo < mid {
			st.Push([2]int{lo, mid})
		}
	}
	return res
}
