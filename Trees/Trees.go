package Trees

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// OrderedMap is an ordered map from integer keys to values, implemented as a binary search
// tree. BSTree and AVLTree both implement it, so callers can swap one for the other.
// A key is held at most once: inserting an existing key replaces its value in place.
// "Not found" is reported through the bool results, never as an error or a panic.
// Implementations aren't safe for concurrent use; guard a shared map with a lock.
type OrderedMap[K constraints.Integer, V any] interface {
	//Insert v under k, replacing the value if k is already present.
	Insert(k K, v V)
	//Delete k. Returns false, leaving the map untouched, when k isn't present.
	Delete(k K) bool
	//Search returns the value stored under k. The value is meaningful only if the bool is true.
	Search(k K) (V, bool)
	//Traverse returns the values in the given order. Each call builds a new slice.
	Traverse(o Order) []V
	//Range calls f on every entry in the given order until f returns false.
	//The map must not be modified from inside f.
	Range(o Order, f func(K, V) bool)
	//Keys in the given order.
	Keys(o Order) []K
	//Size is the number of entries.
	Size() uint
	//Height is the number of nodes on the longest root to leaf path, 0 when empty.
	Height() uint
	//Minimum entry of the map.
	Minimum() (K, V, bool)
	//Maximum entry of the map.
	Maximum() (K, V, bool)
	//Outline lists the nodes in pre-order together with their depth and side, enough
	//to draw the shape of the tree.
	Outline() []Line[K, V]
	//Verify checks the invariants of the implementation and returns an *InvariantError
	//for the first violation found, nil otherwise.
	Verify() error
	//Clear removes every entry.
	Clear()
}

// Order selects a traversal order.
type Order byte

const (
	InOrder    Order = iota // left, node, right: ascending keys
	PreOrder                // node, left, right
	PostOrder               // left, right, node
	LevelOrder              // breadth first, left to right
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	default:
		return fmt.Sprintf("Order(%d)", byte(o))
	}
}

// ParseOrder accepts the names returned by Order.String and the short forms "in", "pre",
// "post" and "level", ignoring case.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inorder", "in-order":
		return InOrder, nil
	case "pre", "preorder", "pre-order":
		return PreOrder, nil
	case "post", "postorder", "post-order":
		return PostOrder, nil
	case "level", "levelorder", "level-order":
		return LevelOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Side of a node relative to its parent.
type Side byte

const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "*"
	}
}

// Line is one node of an Outline. Depth of the root is 0.
type Line[K constraints.Integer, V any] struct {
	Depth uint
	Side  Side
	Key   K
	Value V
}
