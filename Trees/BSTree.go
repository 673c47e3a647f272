package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is a plain binary search tree with no rebalancing, the baseline OrderedMap.
// Its depth D depends on the insertion order: log2(n) on average for random keys, n for
// sorted ones. Every operation is iterative so that a degenerate tree costs time, not stack.
// The zero value is an empty tree ready to use.
type BSTree[K constraints.Integer, V any] struct {
	base[K, V]
}

// NewBSTree returns an empty BSTree.
func NewBSTree[K constraints.Integer, V any]() *BSTree[K, V] {
	return new(BSTree[K, V])
}

// Insert [OrderedMap.Insert]
// Descends from the root and links a new leaf at the first empty slot. An existing key keeps
// its node, only the value is replaced.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Insert(k K, v V) {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if k < cur.k {
			curPtr = &cur.l
		} else if k > cur.k {
			curPtr = &cur.r
		} else {
			cur.v = v
			return
		}
	}
	*curPtr = &node[K, V]{k: k, v: v}
	u.size++
}

// Delete [OrderedMap.Delete]
// A node with at most one child is replaced by that child. A node with two children takes
// the key and value of its in-order successor, the minimum of its right subtree, and the
// successor's node is unlinked instead.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Delete(k K) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil && cur.k != k; cur = *curPtr {
		if k < cur.k {
			curPtr = &cur.l
		} else {
			curPtr = &cur.r
		}
	}
	cur := *curPtr
	if cur == nil {
		return false
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		t := &cur.r
		for (*t).l != nil {
			t = &(*t).l
		}
		succ := *t
		cur.k, cur.v = succ.k, succ.v
		*t = succ.r
	}
	u.size--
	return true
}

// Height [OrderedMap.Height]
// BSTree doesn't cache heights, so this walks the whole tree.
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) Height() uint {
	return u.depth()
}

// Verify [OrderedMap.Verify]
// Checks the order invariant and the size.
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) Verify() error {
	return u.verify(nil)
}

// Corrupt reports whether Verify finds a broken invariant.
func (u *BSTree[K, V]) Corrupt() bool {
	return u.Verify() != nil
}
