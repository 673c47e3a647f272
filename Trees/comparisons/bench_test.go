package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/g-m-twostay/go-catalog/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares the ordered maps with the ordered trees of https://github.com/emirpasic/gods,
// https://github.com/google/btree and https://github.com/petar/GoLLRB, and point lookups with
// the hash maps https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap.

const benchmarkItemCount = 1 << 14

var keys = rg.Perm(benchmarkItemCount)

var sideEff int

func BenchmarkInsert_AVLTree(b *testing.B) {
	for range b.N {
		t := Trees.NewAVLTree[int, int]()
		for _, k := range keys {
			t.Insert(k, k)
		}
	}
}

func BenchmarkInsert_BSTree(b *testing.B) {
	for range b.N {
		t := Trees.NewBSTree[int, int]()
		for _, k := range keys {
			t.Insert(k, k)
		}
	}
}

func BenchmarkInsert_Gods(b *testing.B) {
	for range b.N {
		t := avltree.NewWithIntComparator()
		for _, k := range keys {
			t.Put(k, k)
		}
	}
}

func BenchmarkInsert_BTree(b *testing.B) {
	for range b.N {
		t := btree.NewG[entry](32, lessEntry)
		for _, k := range keys {
			t.ReplaceOrInsert(entry{k, k})
		}
	}
}

func BenchmarkInsert_LLRB(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, k := range keys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func setupAVLTree(b *testing.B) *Trees.AVLTree[int, int] {
	b.Helper()
	t := Trees.NewAVLTree[int, int]()
	for _, k := range keys {
		t.Insert(k, k)
	}
	return t
}

func BenchmarkSearch_AVLTree(b *testing.B) {
	t := setupAVLTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff, _ = t.Search(k)
		}
	}
}

func BenchmarkSearch_BSTree(b *testing.B) {
	t := Trees.NewBSTree[int, int]()
	for _, k := range keys {
		t.Insert(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff, _ = t.Search(k)
		}
	}
}

func BenchmarkSearch_Gods(b *testing.B) {
	t := avltree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			v, _ := t.Get(k)
			sideEff = v.(int)
		}
	}
}

func BenchmarkSearch_BTree(b *testing.B) {
	t := btree.NewG[entry](32, lessEntry)
	for _, k := range keys {
		t.ReplaceOrInsert(entry{k, k})
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			e, _ := t.Get(entry{k: k})
			sideEff = e.v
		}
	}
}

func BenchmarkSearch_LLRB(b *testing.B) {
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff = int(t.Get(llrb.Int(k)).(llrb.Int))
		}
	}
}

func BenchmarkSearch_HaxMap(b *testing.B) {
	m := haxmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff, _ = m.Get(k)
		}
	}
}

func BenchmarkSearch_HashMap(b *testing.B) {
	m := hashmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff, _ = m.Get(k)
		}
	}
}

func BenchmarkDelete_AVLTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupAVLTree(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(k)
		}
	}
}

func BenchmarkDelete_Gods(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := avltree.NewWithIntComparator()
		for _, k := range keys {
			t.Put(k, k)
		}
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

func BenchmarkDelete_LLRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := llrb.New()
		for _, k := range keys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
		b.StartTimer()
		for _, k := range keys {
			t.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkTraverse_AVLTree(b *testing.B) {
	t := setupAVLTree(b)
	b.ResetTimer()
	for range b.N {
		sideEff = len(t.Traverse(Trees.InOrder))
	}
}

func BenchmarkTraverse_LLRB(b *testing.B) {
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for range b.N {
		vs := make([]int, 0, t.Len())
		t.AscendGreaterOrEqual(t.Min(), func(i llrb.Item) bool {
			vs = append(vs, int(i.(llrb.Int)))
			return true
		})
		sideEff = len(vs)
	}
}
