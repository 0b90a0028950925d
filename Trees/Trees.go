package Trees

import "golang.org/x/exp/constraints"

// Tree represents a binary search tree built from linked Nodes that allows
// repeated values. Equal values are always placed to the right of each other.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively. D is the depth of the tree.
type Tree[T constraints.Ordered] interface {
	//Insert v to the Tree. Never fails; panics with InvalidValueError if v != v.
	Insert(v T)
	//Delete one occurrence of v. Returns the removed value, or *NotFoundError / *EmptyTreeError
	//in which case the tree is unchanged.
	Delete(v T) (T, error)
	//Find the first node holding v on the path from the root, nil if there is none.
	//The returned node must only be read from.
	Find(v T) *Node[T]
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree, counting repeated values.
	Size() uint
	//Height of the tree, 0 when empty and 1 for a single node.
	Height() uint
	//InOrder returns all the values in ascending order.
	InOrder() []T
	//Iter returns A closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	Iter() func() (T, bool)
	//IsBalanced returns whether the heights of the two subtrees of every node differ by at most 1.
	IsBalanced() bool
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or a parent link doesn't match.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var (
	_ Tree[int] = (*PlainTree[int])(nil)
	_ Tree[int] = (*BalancedTree[int])(nil)
)
