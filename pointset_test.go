package spanner

import "testing"

func TestNewPointSet_DimensionsArePermutations(t *testing.T) {
	points := [][]float64{{3, 1}, {1, 2}, {2, 0}, {0, 3}}
	infos := make([]any, len(points))
	ps := NewPointSet(2, points, infos)

	for i, dim := range ps.dimensions {
		seen := make(map[int]bool)
		for _, p := range dim {
			if seen[p] {
				t.Fatalf("dimension %d has duplicate index %d", i, p)
			}
			seen[p] = true
		}
		if len(seen) != len(points) {
			t.Fatalf("dimension %d is not a full permutation: %v", i, dim)
		}
		for p := 0; p < len(points); p++ {
			if !seen[p] {
				t.Fatalf("dimension %d missing index %d", i, p)
			}
		}
	}
}

func TestNewPointSet_SortedAscending(t *testing.T) {
	points := [][]float64{{5}, {1}, {3}, {2}, {4}}
	ps := NewPointSet(1, points, make([]any, len(points)))
	dim := ps.dimensions[0]
	for i := 1; i < len(dim); i++ {
		if ps.Get(0, dim[i-1]) > ps.Get(0, dim[i]) {
			t.Fatalf("dimension 0 not sorted ascending: %v", dim)
		}
	}
}

func TestNewPointSet_StableOnTies(t *testing.T) {
	points := [][]float64{{1}, {1}, {1}, {0}}
	ps := NewPointSet(1, points, make([]any, len(points)))
	dim := ps.dimensions[0]
	// 0.0 first, then the tied 1.0's in original order (0,1,2).
	want := []int{3, 0, 1, 2}
	for i, v := range want {
		if dim[i] != v {
			t.Errorf("dimensions[0] = %v, want %v", dim, want)
			break
		}
	}
}

func TestPointSet_Dist(t *testing.T) {
	ps := NewPointSet(2, [][]float64{{0, 0}, {3, 4}}, make([]any, 2))
	if d := ps.Dist(0, 1); d != 5.0 {
		t.Errorf("Dist(0,1) = %v, want 5.0", d)
	}
}

func TestPointSet_UpdateBox(t *testing.T) {
	points := [][]float64{{0, 0}, {2, 4}, {1, 1}}
	ps := NewPointSet(2, points, make([]any, len(points)))

	b := &Box{
		dimensions: [][]int{{0, 2, 1}, {0, 2, 1}},
		points:     []int{0, 1, 2},
		low:        make([]float64, 2),
		upper:      make([]float64, 2),
		sizes:      make([]float64, 2),
		center:     make([]float64, 2),
	}
	ps.UpdateBox(b)

	if b.low[0] != 0 || b.upper[0] != 2 || b.sizes[0] != 2 {
		t.Errorf("dimension 0 box wrong: low=%v upper=%v sizes=%v", b.low, b.upper, b.sizes)
	}
	if b.low[1] != 0 || b.upper[1] != 4 || b.sizes[1] != 4 {
		t.Errorf("dimension 1 box wrong: low=%v upper=%v sizes=%v", b.low, b.upper, b.sizes)
	}
	if b.center[0] != 1 || b.center[1] != 2 {
		t.Errorf("center = %v, want [1 2]", b.center)
	}
	if b.radius <= 0 {
		t.Errorf("radius = %v, want > 0 for a multi-point box", b.radius)
	}
}

func TestPointSet_UpdateBox_SinglePointHasZeroRadius(t *testing.T) {
	points := [][]float64{{5, 5}}
	ps := NewPointSet(2, points, make([]any, 1))
	b := &Box{
		dimensions: [][]int{{0}, {0}},
		points:     []int{0},
		low:        make([]float64, 2),
		upper:      make([]float64, 2),
		sizes:      make([]float64, 2),
		center:     make([]float64, 2),
	}
	ps.UpdateBox(b)
	if b.radius != 0 {
		t.Errorf("radius = %v, want 0 for a single-point box", b.radius)
	}
}
