package Trees

import (
	"github.com/g-m-twostay/go-catalog/Queues"
	"golang.org/x/exp/constraints"
)

// base holds what BSTree and AVLTree share: the root, the size and every read-only operation.
// All walks are iterative, with an explicit stack or queue, because a BSTree can degenerate into a list
// of any length.
// The zero value is an empty tree.
type base[K constraints.Integer, V any] struct {
	root *node[K, V]
	size uint
}

// Size [OrderedMap.Size]
// Time: O(1); Space: O(1)
func (u *base[K, V]) Size() uint {
	return u.size
}

// Clear [OrderedMap.Clear]
// Time: O(1)
func (u *base[K, V]) Clear() {
	u.root, u.size = nil, 0
}

// Search [OrderedMap.Search]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Search(k K) (V, bool) {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k > cur.k {
			cur = cur.r
		} else {
			return cur.v, true
		}
	}
	return *new(V), false
}

// Minimum [OrderedMap.Minimum]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Minimum() (K, V, bool) {
	cur := u.root
	if cur == nil {
		return 0, *new(V), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.k, cur.v, true
}

// Maximum [OrderedMap.Maximum]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Maximum() (K, V, bool) {
	cur := u.root
	if cur == nil {
		return 0, *new(V), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.k, cur.v, true
}

// Range [OrderedMap.Range]
// Time: O(n); Space: O(D)
func (u *base[K, V]) Range(o Order, f func(K, V) bool) {
	walk(u.root, o, func(n *node[K, V]) bool {
		return f(n.k, n.v)
	})
}

// Traverse [OrderedMap.Traverse]
// Time: O(n); Space: O(n)
func (u *base[K, V]) Traverse(o Order) []V {
	vs := make([]V, 0, u.size)
	walk(u.root, o, func(n *node[K, V]) bool {
		vs = append(vs, n.v)
		return true
	})
	return vs
}

// Keys [OrderedMap.Keys]
// Time: O(n); Space: O(n)
func (u *base[K, V]) Keys(o Order) []K {
	ks := make([]K, 0, u.size)
	walk(u.root, o, func(n *node[K, V]) bool {
		ks = append(ks, n.k)
		return true
	})
	return ks
}

// Outline [OrderedMap.Outline]
// Time: O(n); Space: O(n)
func (u *base[K, V]) Outline() []Line[K, V] {
	type frame struct {
		n    *node[K, V]
		d    uint
		side Side
	}
	ls := make([]Line[K, V], 0, u.size)
	if u.root == nil {
		return ls
	}
	for st := []frame{{u.root, 0, Root}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		ls = append(ls, Line[K, V]{Depth: top.d, Side: top.side, Key: top.n.k, Value: top.n.v})
		if top.n.r != nil {
			st = append(st, frame{top.n.r, top.d + 1, Right})
		}
		if top.n.l != nil {
			st = append(st, frame{top.n.l, top.d + 1, Left})
		}
	}
	return ls
}

// depth measures the height of the tree by walking it, ignoring cached heights.
// Time: O(n); Space: O(D)
func (u *base[K, V]) depth() uint {
	type frame struct {
		n *node[K, V]
		d uint
	}
	var h uint
	if u.root == nil {
		return 0
	}
	for st := []frame{{u.root, 1}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top.d)
		if top.n.l != nil {
			st = append(st, frame{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st = append(st, frame{top.n.r, top.d + 1})
		}
	}
	return h
}

// verify walks the tree in pre-order checking the order invariant with the key bounds
// inherited from the ancestors, then calls check on every node for implementation specific
// invariants. The node count must match size.
func (u *base[K, V]) verify(check func(*node[K, V]) string) error {
	type frame struct {
		n            *node[K, V]
		lo, hi       K
		hasLo, hasHi bool
	}
	var count uint
	if u.root != nil {
		for st := []frame{{n: u.root}}; len(st) > 0; {
			top := st[len(st)-1]
			st = st[:len(st)-1]
			n := top.n
			if (top.hasLo && n.k <= top.lo) || (top.hasHi && n.k >= top.hi) {
				return &InvariantError[K]{Key: n.k, Reason: ReasonOrder}
			}
			if check != nil {
				if reason := check(n); reason != "" {
					return &InvariantError[K]{Key: n.k, Reason: reason}
				}
			}
			count++
			if n.r != nil {
				st = append(st, frame{n.r, n.k, top.hi, true, top.hasHi})
			}
			if n.l != nil {
				st = append(st, frame{n.l, top.lo, n.k, top.hasLo, true})
			}
		}
	}
	if count != u.size {
		var k K
		if u.root != nil {
			k = u.root.k
		}
		return &InvariantError[K]{Key: k, Reason: ReasonSize}
	}
	return nil
}

// walk visits the subtree rooted at root in order o, calling f on each node until it
// returns false.
// Time: O(n); Space: O(D)
func walk[K constraints.Integer, V any](root *node[K, V], o Order, f func(*node[K, V]) bool) {
	if root == nil {
		return
	}
	var st []*node[K, V]
	switch o {
	case PreOrder:
		for st = append(st, root); len(st) > 0; {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !f(cur) {
				return
			}
			if cur.r != nil {
				st = append(st, cur.r)
			}
			if cur.l != nil {
				st = append(st, cur.l)
			}
		}
	case LevelOrder:
		q := Queues.MakeRing[*node[K, V]](8)
		for q.Push(root); !q.Empty(); {
			cur, _ := q.Pop()
			if !f(cur) {
				return
			}
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	case PostOrder:
		var last *node[K, V]
		for cur := root; cur != nil || len(st) > 0; {
			if cur != nil {
				st = append(st, cur)
				cur = cur.l
				continue
			}
			top := st[len(st)-1]
			if top.r != nil && top.r != last {
				cur = top.r
			} else {
				if !f(top) {
					return
				}
				last = top
				st = st[:len(st)-1]
			}
		}
	default:
		for cur := root; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		for len(st) > 0 {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !f(cur) {
				return
			}
			for cur = cur.r; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
		}
	}
}
