package Trees

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrUnknownOrder is returned by ParseOrder for a name that isn't a traversal order.
var ErrUnknownOrder = errors.New("unknown traversal order")

// Reasons reported by InvariantError.
const (
	ReasonOrder   = "key out of order"
	ReasonHeight  = "cached height is stale"
	ReasonBalance = "balance factor out of range"
	ReasonSize    = "node count differs from size"
)

// InvariantError reports the first node found to break an invariant of the tree. It means
// the tree is corrupt; a correctly used tree never returns one.
type InvariantError[K constraints.Integer] struct {
	Key    K
	Reason string
}

func (e *InvariantError[K]) Error() string {
	return fmt.Sprintf("tree invariant broken at key %d: %s", e.Key, e.Reason)
}
