package Catalog

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-catalog/Records"
	"github.com/g-m-twostay/go-catalog/Trees"
	"github.com/pterm/pterm"
)

var headings = map[Trees.Order]string{
	Trees.InOrder:    "Inorder:",
	Trees.PreOrder:   "Preorder:",
	Trees.PostOrder:  "Postorder:",
	Trees.LevelOrder: "Levelorder:",
}

// Print one traversal: its heading, then one record per line.
func (c *Catalog) Print(w io.Writer, o Trees.Order) error {
	if _, err := fmt.Fprintln(w, headings[o]); err != nil {
		return err
	}
	for _, r := range c.List(o) {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}

// Display prints the in-order, pre-order and post-order traversals.
func (c *Catalog) Display(w io.Writer) error {
	for _, o := range []Trees.Order{Trees.InOrder, Trees.PreOrder, Trees.PostOrder} {
		if err := c.Print(w, o); err != nil {
			return err
		}
	}
	return nil
}

// Shape draws the tree, one node per line, each child marked L or R.
func (c *Catalog) Shape() (string, error) {
	ls := c.books.Outline()
	if len(ls) == 0 {
		return "(empty)\n", nil
	}
	root, _ := subtree(ls, 0)
	return pterm.DefaultTree.WithRoot(root).Srender()
}

// subtree builds the node at ls[i] and its descendants, which follow it in pre-order one level
// deeper. Returns the index after the last descendant.
func subtree(ls []Trees.Line[int, Records.Record], i int) (pterm.TreeNode, int) {
	n := pterm.TreeNode{Text: fmt.Sprintf("%s %s", ls[i].Side, ls[i].Value)}
	d := ls[i].Depth
	for i++; i < len(ls) && ls[i].Depth == d+1; {
		var child pterm.TreeNode
		child, i = subtree(ls, i)
		n.Children = append(n.Children, child)
	}
	return n, i
}
