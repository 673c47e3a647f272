package Trees

import (
	"slices"
	"testing"
)

func TestBSTree_DeleteSuccessor(t *testing.T) {
	tree := NewBSTree[int, int]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(k, -k)
	}
	n := find(tree.root, 50)
	tree.Delete(50)
	if ks := outlineKeys(tree.Outline()); !slices.Equal(ks, []int{60, 30, 20, 40, 70, 80}) {
		t.Fatalf("pre-order %v", ks)
	}
	if tree.root != n || n.v != -60 {
		t.Fatal("root node should take over the successor's entry")
	}
	tree.Delete(30)
	if ks := outlineKeys(tree.Outline()); !slices.Equal(ks, []int{60, 40, 20, 70, 80}) {
		t.Fatalf("pre-order %v", ks)
	}
	tree.Delete(70)
	if ks := outlineKeys(tree.Outline()); !slices.Equal(ks, []int{60, 40, 20, 80}) {
		t.Fatalf("pre-order %v", ks)
	}
	if err := tree.Verify(); err != nil {
		t.Fatal(err)
	}
}

// the successor has a right subtree that must move up into its place.
func TestBSTree_DeleteSuccessorWithChild(t *testing.T) {
	tree := NewBSTree[int, int]()
	for _, k := range []int{10, 5, 20, 15, 17, 16, 18} {
		tree.Insert(k, k)
	}
	tree.Delete(10)
	if ks := outlineKeys(tree.Outline()); !slices.Equal(ks, []int{15, 5, 20, 17, 16, 18}) {
		t.Fatalf("pre-order %v", ks)
	}
	if err := tree.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestBSTree_NoRebalance(t *testing.T) {
	tree := NewBSTree[int, int]()
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k, k)
	}
	want := []Line[int, int]{{0, Root, 10, 10}, {1, Right, 20, 20}, {2, Right, 30, 30}}
	if ls := tree.Outline(); !slices.Equal(ls, want) {
		t.Fatalf("outline %v, want %v", ls, want)
	}
	if tree.Height() != 3 {
		t.Fatalf("height %d, want 3", tree.Height())
	}
}

// a sorted insertion order degenerates the tree into a list; nothing may recurse on it.
func TestBSTree_Degenerate(t *testing.T) {
	const n = 10000
	tree := NewBSTree[int, int]()
	for i := range n {
		tree.Insert(i, i)
	}
	if tree.Height() != n {
		t.Fatalf("height %d, want %d", tree.Height(), n)
	}
	if err := tree.Verify(); err != nil {
		t.Fatal(err)
	}
	for _, o := range []Order{InOrder, PreOrder, PostOrder} {
		if vs := tree.Traverse(o); len(vs) != n {
			t.Fatalf("%v traversal has %d values", o, len(vs))
		}
	}
	if ls := tree.Outline(); ls[n-1].Depth != n-1 {
		t.Fatalf("deepest node at %d", ls[n-1].Depth)
	}
	if v, ok := tree.Search(n - 1); !ok || v != n-1 {
		t.Fatal("deepest key not found")
	}
	for i := range n {
		if !tree.Delete(i) {
			t.Fatalf("failed to delete key %d", i)
		}
	}
	if tree.Size() != 0 {
		t.Fatalf("size %d", tree.Size())
	}
}
