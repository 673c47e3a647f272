package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a height balanced binary search tree. Every node caches the height of its
// subtree, and after every insertion or deletion the heights of the left and right subtree
// of every node differ by at most 1, which keeps the height D below 1.44*log2(n+2).
// Insert and Delete are recursive; the recursion is bounded by D.
// The zero value is an empty tree ready to use.
type AVLTree[K constraints.Integer, V any] struct {
	base[K, V]
	rotL, rotR uint // single rotations performed, a double rotation counts one of each
}

// NewAVLTree returns an empty AVLTree.
func NewAVLTree[K constraints.Integer, V any]() *AVLTree[K, V] {
	return new(AVLTree[K, V])
}

func (u *AVLTree[K, V]) rotateLeft(n **node[K, V]) {
	rotateLeft(n)
	u.rotL++
}

func (u *AVLTree[K, V]) rotateRight(n **node[K, V]) {
	rotateRight(n)
	u.rotR++
}

// Rotations returns how many left and right rotations the tree has performed since it was
// created or since the last ResetRotations.
func (u *AVLTree[K, V]) Rotations() (left, right uint) {
	return u.rotL, u.rotR
}

func (u *AVLTree[K, V]) ResetRotations() {
	u.rotL, u.rotR = 0, 0
}

// insert k into the subtree rooted at *curPtr recursively. Returns true if a node was added,
// false if k was present and only its value was replaced; in the latter case no height
// changed so nothing above needs fixing.
// On the way back up, the heavy side is found by comparing k with the key of the heavy child:
// k went into that child's left or right subtree.
func (u *AVLTree[K, V]) insert(curPtr **node[K, V], k K, v V) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[K, V]{k: k, v: v, h: 1}
		return true
	}
	if k < cur.k {
		if !u.insert(&cur.l, k, v) {
			return false
		}
	} else if k > cur.k {
		if !u.insert(&cur.r, k, v) {
			return false
		}
	} else {
		cur.v = v
		return false
	}
	cur.fix()
	switch b := cur.balance(); {
	case b > 1 && k < cur.l.k: // LL
		u.rotateRight(curPtr)
	case b > 1 && k > cur.l.k: // LR
		u.rotateLeft(&cur.l)
		u.rotateRight(curPtr)
	case b < -1 && k > cur.r.k: // RR
		u.rotateLeft(curPtr)
	case b < -1 && k < cur.r.k: // RL
		u.rotateRight(&cur.r)
		u.rotateLeft(curPtr)
	}
	return true
}

// Insert [OrderedMap.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *AVLTree[K, V]) Insert(k K, v V) {
	if u.insert(&u.root, k, v) {
		u.size++
	}
}

// rebalance the subtree at *curPtr after a deletion beneath it. There is no inserted key to
// steer by, so the heavy child's own balance factor decides: leaning the same way as the
// parent, or level, takes a single rotation; leaning the other way takes a double rotation.
func (u *AVLTree[K, V]) rebalance(curPtr **node[K, V]) {
	cur := *curPtr
	switch b := cur.balance(); {
	case b > 1 && cur.l.balance() >= 0: // LL
		u.rotateRight(curPtr)
	case b > 1: // LR
		u.rotateLeft(&cur.l)
		u.rotateRight(curPtr)
	case b < -1 && cur.r.balance() <= 0: // RR
		u.rotateLeft(curPtr)
	case b < -1: // RL
		u.rotateRight(&cur.r)
		u.rotateLeft(curPtr)
	}
}

// remove k from the subtree rooted at *curPtr recursively. Returns false if k isn't there,
// in which case nothing was touched.
// A node with two children takes over its in-order successor's key and value, and the
// successor is then removed from the right subtree, so rebalancing runs along that path too.
func (u *AVLTree[K, V]) remove(curPtr **node[K, V], k K) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if k < cur.k {
		if !u.remove(&cur.l, k) {
			return false
		}
	} else if k > cur.k {
		if !u.remove(&cur.r, k) {
			return false
		}
	} else if cur.l == nil {
		*curPtr = cur.r
		return true
	} else if cur.r == nil {
		*curPtr = cur.l
		return true
	} else {
		succ := cur.r
		for succ.l != nil {
			succ = succ.l
		}
		cur.k, cur.v = succ.k, succ.v
		u.remove(&cur.r, succ.k)
	}
	cur.fix()
	u.rebalance(curPtr)
	return true
}

// Delete [OrderedMap.Delete]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *AVLTree[K, V]) Delete(k K) bool {
	if u.remove(&u.root, k) {
		u.size--
		return true
	}
	return false
}

// Height [OrderedMap.Height]
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V]) Height() uint {
	return uint(u.root.height())
}

// Verify [OrderedMap.Verify]
// Besides the order invariant and the size, checks every cached height against the
// children's and every balance factor.
// Time: O(n); Space: O(D)
func (u *AVLTree[K, V]) Verify() error {
	return u.verify(func(n *node[K, V]) string {
		if n.height() != max(n.l.height(), n.r.height())+1 {
			return ReasonHeight
		}
		if b := n.balance(); b > 1 || b < -1 {
			return ReasonBalance
		}
		return ""
	})
}

// Corrupt reports whether Verify finds a broken invariant.
func (u *AVLTree[K, V]) Corrupt() bool {
	return u.Verify() != nil
}
