package Trees

import "golang.org/x/exp/constraints"

// Node of a PlainTree or BalancedTree.
// l and r are owned by the node; p only points back up and is nil at the root.
// The zero value is meaningless, nodes are only created by the trees.
type Node[T constraints.Ordered] struct {
	v       T
	l, r, p *Node[T]
}

func (n *Node[T]) Value() T {
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

func (n *Node[T]) Parent() *Node[T] {
	return n.p
}

// Height of the subtree rooting at n. A nil node has height 0 and a leaf 1.
// Recursive.
// Time: O(size of subtree)
func (n *Node[T]) Height() uint {
	if n == nil {
		return 0
	}
	return max(n.l.Height(), n.r.Height()) + 1
}

// maxNode of the subtree rooting at n, the rightmost node. n mustn't be nil.
func maxNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

func minNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// next node in in-order, following parent links upward when n has no right subtree.
// Time: amortized O(1); Space: O(1)
func (n *Node[T]) next() *Node[T] {
	if n.r != nil {
		return minNode(n.r)
	}
	for p := n.p; p != nil; n, p = p, p.p {
		if p.l == n {
			return p
		}
	}
	return nil
}

// balanced returns the height of the subtree rooting at n and whether every node in it
// has children whose heights differ by at most 1. It stops descending at the first violation.
func balanced[T constraints.Ordered](n *Node[T]) (uint, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := balanced(n.l)
	if !ok {
		return 0, false
	}
	rh, ok := balanced(n.r)
	if !ok {
		return 0, false
	}
	if lh > rh+1 || rh > lh+1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}
