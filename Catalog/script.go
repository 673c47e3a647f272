package Catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/g-m-twostay/go-catalog/Records"
	"github.com/g-m-twostay/go-catalog/Trees"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Operations a Step can name.
const (
	OpInsert  = "insert"
	OpDelete  = "delete"
	OpSearch  = "search"
	OpList    = "list"
	OpDisplay = "display"
	OpShape   = "shape"
)

// Step is one operation of a Script. Key is required by insert, delete and search,
// Title is used by insert, Order by list, where it defaults to in-order.
type Step struct {
	Op    string `yaml:"op"`
	Key   *int   `yaml:"key,omitempty"`
	Title string `yaml:"title,omitempty"`
	Order string `yaml:"order,omitempty"`
}

func (st Step) order() (Trees.Order, error) {
	if st.Order == "" {
		return Trees.InOrder, nil
	}
	return Trees.ParseOrder(st.Order)
}

// Script is a batch of catalog operations, decoded from YAML:
//
//	variant: avl
//	check: true
//	steps:
//	  - {op: insert, key: 50, title: Dune}
//	  - {op: search, key: 50}
//	  - {op: display}
type Script struct {
	Variant string `yaml:"variant,omitempty"`
	Check   bool   `yaml:"check,omitempty"`
	Steps   []Step `yaml:"steps"`
}

// ErrEmptyScript is returned by LoadScript for a document without steps.
var ErrEmptyScript = errors.New("script has no steps")

// ScriptError reports an invalid step. Step counts from 1.
type ScriptError struct {
	Step   int
	Reason string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Reason)
}

// LoadScript decodes and validates a Script. Unknown fields are rejected.
func LoadScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := new(Script)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the variant and every step.
func (s *Script) Validate() error {
	if _, err := ParseVariant(s.Variant); err != nil {
		return err
	}
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	for i, st := range s.Steps {
		switch st.Op {
		case OpInsert, OpDelete, OpSearch:
			if st.Key == nil {
				return &ScriptError{Step: i + 1, Reason: st.Op + " needs a key"}
			}
		case OpList:
			if _, err := st.order(); err != nil {
				return &ScriptError{Step: i + 1, Reason: err.Error()}
			}
		case OpDisplay, OpShape:
		default:
			return &ScriptError{Step: i + 1, Reason: fmt.Sprintf("unknown op %q", st.Op)}
		}
	}
	return nil
}

// Config the script asks for. A valid script always yields a valid Config.
func (s *Script) Config() Config {
	v, _ := ParseVariant(s.Variant)
	return Config{Variant: v, Check: s.Check}
}

// Replay runs the steps against c, writing what each one did to w.
func (c *Catalog) Replay(steps []Step, w io.Writer) error {
	for i, st := range steps {
		if err := c.step(st, w); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return nil
}

func (c *Catalog) step(st Step, w io.Writer) error {
	var err error
	switch st.Op {
	case OpInsert:
		c.Add(Records.New(*st.Key, st.Title))
		_, err = fmt.Fprintln(w, "Inserted.")
	case OpDelete:
		if c.Remove(*st.Key) {
			_, err = fmt.Fprintln(w, "Done.")
		} else {
			_, err = fmt.Fprintln(w, "Not found.")
		}
	case OpSearch:
		if r, ok := c.Find(*st.Key); ok {
			_, err = fmt.Fprintln(w, "Found:", r)
		} else {
			_, err = fmt.Fprintln(w, "Not found.")
		}
	case OpList:
		var o Trees.Order
		if o, err = st.order(); err == nil {
			err = c.Print(w, o)
		}
	case OpDisplay:
		err = c.Display(w)
	case OpShape:
		var s string
		if s, err = c.Shape(); err == nil {
			_, err = io.WriteString(w, s)
		}
	default:
		err = &ScriptError{Reason: fmt.Sprintf("unknown op %q", st.Op)}
	}
	return err
}

// Summary of a catalog after a replay.
type Summary struct {
	Variant Variant
	Size    int
	Height  uint
	Keys    []int
}

// Compare replays s on a fresh catalog of every variant, discarding the output, and
// summarizes the result of each. Both summaries list the same keys unless a tree is broken.
func Compare(s *Script, log logrus.FieldLogger) ([]Summary, error) {
	var sums []Summary
	for _, v := range []Variant{BST, AVL} {
		cfg := s.Config()
		cfg.Variant = v
		c, err := New(cfg, log)
		if err != nil {
			return nil, err
		}
		if err = c.Replay(s.Steps, io.Discard); err != nil {
			return nil, fmt.Errorf("%s: %w", v, err)
		}
		ks := make([]int, 0, c.Len())
		for _, r := range c.List(Trees.InOrder) {
			ks = append(ks, r.Key())
		}
		sums = append(sums, Summary{Variant: v, Size: c.Len(), Height: c.Height(), Keys: ks})
	}
	return sums, nil
}
