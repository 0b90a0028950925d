package Trees

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tOpN      = 20000
	tValRange = 4000
)

// maxHeight of a tree whose nodes all have subtrees differing in height by at most 1.
func maxHeight(n uint) uint {
	return uint(1.44*math.Log2(float64(n+2)) + 1)
}

func TestBalancedTree_Distinct(t *testing.T) {
	tree := New[int]()
	model := btree.NewG(32, func(a, b int) bool { return a < b })
	for i := range tOpN {
		v := rg.Intn(tValRange)
		if rg.Intn(3) != 0 {
			if _, in := model.ReplaceOrInsert(v); !in {
				tree.Insert(v)
			}
		} else {
			_, in := model.Delete(v)
			if d, err := tree.Delete(v); in != (err == nil) {
				t.Fatalf("delete %d returned (%d, %v), model had it: %t", v, d, err, in)
			} else if in && d != v {
				t.Fatalf("delete %d removed %d", v, d)
			}
		}
		if !tree.IsBalanced() {
			t.Fatalf("op %d: tree not balanced", i)
		}
		if i%500 == 0 {
			if tree.Corrupt() {
				t.Fatalf("op %d: tree corrupt", i)
			}
			if h, n := tree.Height(), tree.Size(); h > maxHeight(n) {
				t.Fatalf("op %d: height %d too large for size %d", i, h, n)
			}
		}
	}
	want := make([]int, 0, model.Len())
	model.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	if got := tree.InOrder(); !slices.Equal(got, want) {
		t.Fatalf("tree holds %d values, model %d", len(got), len(want))
	}
	for _, v := range want {
		if !tree.Has(v) {
			t.Fatalf("tree doesn't have %d", v)
		}
	}
	t.Logf("height: %d, size: %d, rebuilds: %d.\n", tree.Height(), tree.Size(), tree.Rebuilds())
}

// counts in the model are keyed by value, so duplicates are kept as a multiplicity.
func TestBalancedTree_Multiset(t *testing.T) {
	tree := New[int]()
	model, total := redblacktree.NewWithIntComparator(), 0
	for i := range tOpN {
		v := rg.Intn(tValRange / 20)
		c, in := model.Get(v)
		if rg.Intn(3) != 0 {
			tree.Insert(v)
			n, _ := c.(int)
			model.Put(v, n+1)
			total++
		} else {
			if _, err := tree.Delete(v); in != (err == nil) {
				t.Fatalf("delete %d returned %v, model had it: %t", v, err, in)
			}
			if in {
				if n := c.(int); n == 1 {
					model.Remove(v)
				} else {
					model.Put(v, n-1)
				}
				total--
			}
		}
		if i%500 == 0 && tree.Corrupt() {
			t.Fatalf("op %d: tree corrupt", i)
		}
	}
	want := make([]int, 0, total)
	for it := model.Iterator(); it.Next(); {
		for range it.Value().(int) {
			want = append(want, it.Key().(int))
		}
	}
	if got := tree.InOrder(); !slices.Equal(got, want) {
		t.Fatalf("tree holds %d values, model %d", len(got), len(want))
	}
	if tree.Size() != uint(total) {
		t.Fatalf("size %d, want %d", tree.Size(), total)
	}
}

// tagged makes equal values distinct keys by insertion order.
type tagged struct {
	v, seq int
}

func TestPlainTree_Model(t *testing.T) {
	tree := NewPlain[int]()
	model := btree.NewG(32, func(a, b tagged) bool { return a.v < b.v || a.v == b.v && a.seq < b.seq })
	for i := range tOpN {
		v := rg.Intn(tValRange)
		if rg.Intn(2) == 0 {
			tree.Insert(v)
			model.ReplaceOrInsert(tagged{v, i})
		} else {
			var hit tagged
			in := false
			model.AscendGreaterOrEqual(tagged{v, -1}, func(x tagged) bool {
				hit, in = x, x.v == v
				return false
			})
			if in {
				model.Delete(hit)
			}
			if _, err := tree.Delete(v); in != (err == nil) {
				t.Fatalf("delete %d returned %v, model had it: %t", v, err, in)
			}
		}
	}
	if tree.Corrupt() {
		t.Fatal("tree corrupt")
	}
	got := make([]int, 0, model.Len())
	f := tree.Iter()
	for v, has := f(); has; v, has = f() {
		got = append(got, v)
	}
	i := 0
	model.Ascend(func(x tagged) bool {
		if i >= len(got) || got[i] != x.v {
			t.Fatalf("value %d differs from model", i)
		}
		i++
		return true
	})
	if i != len(got) {
		t.Fatalf("tree holds %d values, model %d", len(got), i)
	}
}

func TestBalancedTree_Neighbours(t *testing.T) {
	tree := New[int]()
	model := btree.NewG(32, func(a, b int) bool { return a < b })
	for range tValRange / 4 {
		v := rg.Intn(tValRange) * 2
		tree.Insert(v)
		model.ReplaceOrInsert(v)
	}
	for range tValRange {
		v := rg.Intn(tValRange*2+2) - 1
		var pre, succ int
		hasPre, hasSucc := false, false
		model.DescendLessOrEqual(v-1, func(x int) bool {
			pre, hasPre = x, true
			return false
		})
		model.AscendGreaterOrEqual(v+1, func(x int) bool {
			succ, hasSucc = x, true
			return false
		})
		if p, ok := tree.Predecessor(v); p != pre || ok != hasPre {
			t.Fatalf("predecessor of %d is (%d, %t), want (%d, %t)", v, p, ok, pre, hasPre)
		}
		if s, ok := tree.Successor(v); s != succ || ok != hasSucc {
			t.Fatalf("successor of %d is (%d, %t), want (%d, %t)", v, s, ok, succ, hasSucc)
		}
	}
	lo, _ := model.Min()
	hi, _ := model.Max()
	if v, _ := tree.Minimum(); v != lo {
		t.Fatalf("minimum %d, want %d", v, lo)
	}
	if v, _ := tree.Maximum(); v != hi {
		t.Fatalf("maximum %d, want %d", v, hi)
	}
}

func TestBalancedTree_LevelOrder(t *testing.T) {
	// 3 and 5 trigger rebuilds, 6 and 7 still fit
	tree := Build(1, 2, 3, 4, 5, 6, 7)
	if got, want := tree.LevelOrder(), []int{3, 2, 5, 1, 4, 6, 7}; !slices.Equal(got, want) {
		t.Fatalf("level order %v, want %v\n%s", got, want, tree)
	}
	if tree.Rebuilds() != 2 || tree.Height() != 4 {
		t.Fatalf("%d rebuilds height %d, want 2 and 4", tree.Rebuilds(), tree.Height())
	}
	tree.Rebalance()
	if got, want := tree.LevelOrder(), []int{4, 2, 6, 1, 3, 5, 7}; !slices.Equal(got, want) {
		t.Fatalf("level order %v, want %v\n%s", got, want, tree)
	}
	if tree.Height() != 3 {
		t.Fatalf("height %d, want 3", tree.Height())
	}
}
