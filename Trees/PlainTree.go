package Trees

import "golang.org/x/exp/constraints"

// PlainTree is a binary search tree with no balancing at all. Its depth depends
// entirely on the insertion order, D is O(n) in the worst case.
// The zero value is an empty tree.
type PlainTree[T constraints.Ordered] struct {
	base[T]
}

// NewPlain returns an empty PlainTree.
func NewPlain[T constraints.Ordered]() *PlainTree[T] {
	return &PlainTree[T]{}
}

// BuildPlain inserts the values into an empty PlainTree in the given order.
// Time: O(n*D)
func BuildPlain[T constraints.Ordered](values ...T) *PlainTree[T] {
	u := NewPlain[T]()
	for _, v := range values {
		u.insert(v)
	}
	return u
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *PlainTree[T]) Insert(v T) {
	u.insert(v)
}

// Delete [Tree.Delete]
// Time: O(D); Space: O(1)
func (u *PlainTree[T]) Delete(v T) (T, error) {
	return u.remove(v)
}
