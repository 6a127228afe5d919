package spanner

import "testing"

func TestUnionFind_EachElementStartsAsOwnRoot(t *testing.T) {
	uf := newUnionFind(5)
	for i := 0; i < 5; i++ {
		if r := uf.find(i); r != i {
			t.Errorf("find(%d) = %d, want %d", i, r, i)
		}
	}
}

func TestUnionFind_UnionTwoElements(t *testing.T) {
	uf := newUnionFind(5)
	if !uf.union(1, 3) {
		t.Fatal("union(1,3) on distinct components should return true")
	}
	if uf.find(1) != uf.find(3) {
		t.Error("after union(1,3), find(1) != find(3)")
	}
}

func TestUnionFind_UnionSameComponentIsNoop(t *testing.T) {
	uf := newUnionFind(4)
	uf.union(0, 1)
	if uf.union(0, 1) {
		t.Error("union on an already-merged pair should return false")
	}
}

func TestUnionFind_MultipleUnions(t *testing.T) {
	uf := newUnionFind(6)
	uf.union(0, 1)
	uf.union(1, 2)
	uf.union(3, 4)
	uf.union(4, 5)

	if uf.find(0) != uf.find(2) {
		t.Error("0 and 2 should be in the same set")
	}
	if uf.find(3) != uf.find(5) {
		t.Error("3 and 5 should be in the same set")
	}
	if uf.find(0) == uf.find(3) {
		t.Error("0 and 3 should be in different sets")
	}
}
