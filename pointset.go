package spanner

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// PointSet is the immutable-after-construction container of N samples in d
// dimensions that every other stage of the pipeline reads from. It owns the
// per-dimension index orderings used to split the fair-split tree and the
// raw point data used for all distance computations.
type PointSet struct {
	dim        int
	points     [][]float64
	infos      []any
	dimensions [][]int // dimensions[i] is a permutation of [0,N) ascending by coordinate i

	// bbox is the bounding box of the entire point set, computed the same
	// way as every tree node's box.
	bbox Box
}

// NewPointSet builds a PointSet over points (N vectors of length dim) and
// their associated infos (opaque payloads carried through to the output,
// never read by the core algorithm). Sorting within each dimension is
// stable, breaking ties by original index, so downstream split points land
// deterministically (required for S5-style duplicate-coordinate inputs).
func NewPointSet(dim int, points [][]float64, infos []any) *PointSet {
	n := len(points)
	ps := &PointSet{
		dim:        dim,
		points:     points,
		infos:      infos,
		dimensions: make([][]int, dim),
	}
	for i := 0; i < dim; i++ {
		perm := make([]int, n)
		for p := range perm {
			perm[p] = p
		}
		sort.SliceStable(perm, func(a, b int) bool {
			return points[perm[a]][i] < points[perm[b]][i]
		})
		ps.dimensions[i] = perm
	}
	ps.bbox = Box{
		low:        make([]float64, dim),
		upper:      make([]float64, dim),
		sizes:      make([]float64, dim),
		center:     make([]float64, dim),
		dimensions: ps.dimensions,
		points:     allIndices(n),
	}
	ps.UpdateBox(&ps.bbox)
	return ps
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Dist returns the Euclidean distance between points u and v.
func (ps *PointSet) Dist(u, v int) float64 {
	return floats.Distance(ps.points[u], ps.points[v], 2)
}

// Get returns the coordinate of point p along dimension dim.
func (ps *PointSet) Get(dim, p int) float64 {
	return ps.points[p][dim]
}

// UpdateBox recomputes b's low/upper/sizes/center/radius from the first and
// last elements of its per-dimension index lists. b.dimensions[i] must be
// non-empty and sorted ascending by coordinate i for every i.
func (ps *PointSet) UpdateBox(b *Box) {
	for i := 0; i < ps.dim; i++ {
		d := b.dimensions[i]
		b.low[i] = ps.Get(i, d[0])
		b.upper[i] = ps.Get(i, d[len(d)-1])
		b.sizes[i] = b.upper[i] - b.low[i]
		b.center[i] = b.low[i] + b.sizes[i]/2
	}
	if len(b.points) == 1 {
		b.radius = 0
	} else {
		b.radius = floats.Norm(b.sizes, 2) / 2
	}
}
