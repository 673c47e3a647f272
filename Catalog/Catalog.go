// Package Catalog files Records under their keys in one of the ordered maps of package Trees
// and reports what each operation did.
package Catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/go-catalog/Records"
	"github.com/g-m-twostay/go-catalog/Trees"
	"github.com/sirupsen/logrus"
)

// Variant names an OrderedMap implementation.
type Variant string

const (
	BST Variant = "bst"
	AVL Variant = "avl"
)

// ErrUnknownVariant is returned for a variant name other than "bst" or "avl".
var ErrUnknownVariant = errors.New("unknown tree variant")

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case BST, AVL:
		return v, nil
	case "":
		return AVL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Config of a Catalog.
type Config struct {
	Variant Variant
	// Check runs the tree's invariant check after every mutation. It costs O(n) per call.
	Check bool
}

var DefaultConfig = Config{Variant: AVL}

// Catalog is a set of Records keyed by Record.Key. Like the maps underneath, it isn't safe
// for concurrent use.
type Catalog struct {
	books Trees.OrderedMap[int, Records.Record]
	cfg   Config
	log   logrus.FieldLogger
}

// New returns an empty Catalog. A nil log discards everything.
func New(cfg Config, log logrus.FieldLogger) (*Catalog, error) {
	v, err := ParseVariant(string(cfg.Variant))
	if err != nil {
		return nil, err
	}
	cfg.Variant = v
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	c := &Catalog{cfg: cfg, log: log.WithField("variant", v)}
	if v == BST {
		c.books = Trees.NewBSTree[int, Records.Record]()
	} else {
		c.books = Trees.NewAVLTree[int, Records.Record]()
	}
	return c, nil
}

func (c *Catalog) Variant() Variant {
	return c.cfg.Variant
}

func (c *Catalog) Len() int {
	return int(c.books.Size())
}

// Height of the underlying tree.
func (c *Catalog) Height() uint {
	return c.books.Height()
}

// Add files r under r.Key(), replacing whatever was filed there.
func (c *Catalog) Add(r Records.Record) {
	c.books.Insert(r.Key(), r)
	c.log.WithFields(logrus.Fields{"op": "insert", "key": r.Key(), "size": c.books.Size()}).Debug("record filed")
	c.verify("insert", r.Key())
}

// Remove the record filed under key. Returns false if there is none.
func (c *Catalog) Remove(key int) bool {
	removed := c.books.Delete(key)
	c.log.WithFields(logrus.Fields{"op": "delete", "key": key, "removed": removed}).Debug("record removed")
	if removed {
		c.verify("delete", key)
	}
	return removed
}

// Find the record filed under key.
func (c *Catalog) Find(key int) (Records.Record, bool) {
	r, found := c.books.Search(key)
	c.log.WithFields(logrus.Fields{"op": "search", "key": key, "found": found}).Debug("record looked up")
	return r, found
}

// List the records in the given order.
func (c *Catalog) List(o Trees.Order) []Records.Record {
	return c.books.Traverse(o)
}

func (c *Catalog) verify(op string, key int) {
	if !c.cfg.Check {
		return
	}
	if err := c.books.Verify(); err != nil {
		c.log.WithFields(logrus.Fields{"op": op, "key": key}).WithError(err).Error("tree corrupt")
	}
}

// Err runs the tree's invariant check regardless of Config.Check.
func (c *Catalog) Err() error {
	return c.books.Verify()
}
