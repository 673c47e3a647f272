package Trees

import "golang.org/x/exp/constraints"

// A node in the trees.
// h is the cached height of the subtree rooted here and is only maintained by AVLTree;
// BSTree leaves it zero. uint8 is plenty: an AVL tree of height 255 would need more nodes
// than can be addressed.
type node[K constraints.Integer, V any] struct {
	k    K
	v    V
	l, r *node[K, V]
	h    uint8
}

// height of the subtree rooted at u, 0 for nil.
func (u *node[K, V]) height() int {
	if u == nil {
		return 0
	}
	return int(u.h)
}

// fix recomputes the cached height of u from its children's.
func (u *node[K, V]) fix() {
	u.h = uint8(max(u.l.height(), u.r.height()) + 1)
}

// balance factor of u: height(left) - height(right). 0 for nil.
func (u *node[K, V]) balance() int {
	if u == nil {
		return 0
	}
	return u.l.height() - u.r.height()
}

// rotateLeft performs a left rotation on the subtree *n. n points at the slot holding the
// subtree root (the parent's child field or the tree's root) so the slot is rewritten in place.
// The former root's height is fixed before the promoted node's.
// Time: O(1); Space: O(1)
func rotateLeft[K constraints.Integer, V any](n **node[K, V]) {
	x := *n
	y := x.r
	x.r = y.l
	y.l = x
	x.fix()
	y.fix()
	*n = y
}

// rotateRight performs a right rotation on the subtree *n. Mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[K constraints.Integer, V any](n **node[K, V]) {
	y := *n
	x := y.l
	y.l = x.r
	x.r = y
	y.fix()
	x.fix()
	*n = x
}
