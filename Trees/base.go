package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/rebuild-bst/Queues"
	"golang.org/x/exp/constraints"
)

// base holds the root of a tree and implements everything PlainTree and BalancedTree
// share. The zero value is an empty tree.
type base[T constraints.Ordered] struct {
	root *Node[T]
}

// Root of the tree, nil when empty.
func (u *base[T]) Root() *Node[T] {
	return u.root
}

// insert v as a new leaf. Values equal to a node always descend to its right.
// Time: O(D); Space: O(1)
func (u *base[T]) insert(v T) *Node[T] {
	if v != v {
		panic(InvalidValueError{v})
	}
	var p *Node[T]
	link := &u.root
	for cur := u.root; cur != nil; cur = *link {
		p = cur
		if v < cur.v {
			link = &cur.l
		} else {
			link = &cur.r
		}
	}
	n := &Node[T]{v: v, p: p}
	*link = n
	return n
}

// transplant puts c in the place of n under n's parent. c may be nil.
func (u *base[T]) transplant(n, c *Node[T]) {
	switch {
	case n.p == nil:
		u.root = c
	case n.p.l == n:
		n.p.l = c
	default:
		n.p.r = c
	}
	if c != nil {
		c.p = n.p
	}
}

// remove the first node holding v found from the root. A node with two children takes the
// value of its predecessor, and the predecessor node, which has no right child, is
// unlinked instead.
// Time: O(D); Space: O(1)
func (u *base[T]) remove(v T) (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{}
	}
	n := u.Find(v)
	if n == nil {
		return *new(T), &NotFoundError[T]{v}
	}
	removed := n.v
	if n.l != nil && n.r != nil {
		pre := maxNode(n.l)
		n.v = pre.v
		n = pre
	}
	c := n.l
	if c == nil {
		c = n.r
	}
	u.transplant(n, c)
	n.l, n.r, n.p = nil, nil, nil
	return removed, nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *base[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has [Tree.Has]
func (u *base[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return minNode(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return maxNode(u.root).v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *base[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *base[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Size [Tree.Size]. Counted by walking the tree.
// Time: O(n); Space: O(1)
func (u *base[T]) Size() uint {
	var sz uint
	if u.root != nil {
		for cur := minNode(u.root); cur != nil; cur = cur.next() {
			sz++
		}
	}
	return sz
}

// Height [Tree.Height]. Recursive.
func (u *base[T]) Height() uint {
	return u.root.Height()
}

// IsBalanced [Tree.IsBalanced]. Recursive.
// Time: O(n)
func (u *base[T]) IsBalanced() bool {
	_, ok := balanced(u.root)
	return ok
}

func inOrder[T constraints.Ordered](n *Node[T], res *[]T) {
	if n == nil {
		return
	}
	inOrder(n.l, res)
	*res = append(*res, n.v)
	inOrder(n.r, res)
}

// InOrder [Tree.InOrder]. Recursive.
func (u *base[T]) InOrder() []T {
	res := make([]T, 0)
	inOrder(u.root, &res)
	return res
}

// Iter [Tree.Iter]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *base[T]) Iter() func() (T, bool) {
	var cur *Node[T]
	if u.root != nil {
		cur = minNode(u.root)
	}
	return func() (v T, has bool) {
		if cur == nil {
			return
		}
		v, has = cur.v, true
		cur = cur.next()
		return
	}
}

// LevelOrder returns the values breadth first, each level from left to right.
// Time: O(n); Space: O(width of the tree)
func (u *base[T]) LevelOrder() []T {
	res := make([]T, 0)
	if u.root == nil {
		return res
	}
	q := Queues.MakeArrayQueue[*Node[T]](4)
	for q.Push(u.root); !q.Empty(); {
		n, _ := q.Pop()
		res = append(res, n.v)
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
	}
	return res
}

func corrupt[T constraints.Ordered](n, p *Node[T], lo, hi *T) bool {
	if n == nil {
		return false
	}
	if n.p != p || (lo != nil && n.v < *lo) || (hi != nil && !(n.v < *hi)) {
		return true
	}
	return corrupt(n.l, n, lo, &n.v) || corrupt(n.r, n, &n.v, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Checks that left subtrees are strictly less, right subtrees are greater or equal, and
// that every parent link points back at the owning node.
func (u *base[T]) Corrupt() bool {
	return corrupt(u.root, nil, nil, nil)
}

// Clear the tree.
func (u *base[T]) Clear() {
	u.root = nil
}

// String draws the tree sideways, right subtree on top, one node per line.
func (u *base[T]) String() string {
	var sb strings.Builder
	var draw func(*Node[T], int)
	draw = func(n *Node[T], d int) {
		if n == nil {
			return
		}
		draw(n.r, d+1)
		fmt.Fprintf(&sb, "%s%v\n", strings.Repeat("    ", d), n.v)
		draw(n.l, d+1)
	}
	draw(u.root, 0)
	return sb.String()
}
