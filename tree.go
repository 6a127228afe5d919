package spanner

import (
	"math"
	"sync/atomic"
)

// Box is a node of the FairSplitTree: an axis-aligned bounding box over a
// subset of a PointSet's points, together with the per-dimension sorted
// index lists that subset induces. Box is also the node type shared by the
// WSPD and the clusterer; both hold plain pointers into the tree the
// pipeline's garbage collector keeps alive, rather than an owning/borrowing
// distinction.
type Box struct {
	low, upper, sizes, center []float64
	radius                    float64

	points     []int
	dimensions [][]int

	id int

	left, right *Box

	// isInPair is set by the WSPD when this node appears as an endpoint of
	// some well-separated pair.
	isInPair bool

	// clusterParent is the head node covering this subtree, set during
	// clustering phase 1. Never mutated after being set once.
	clusterParent *Box

	// nextPoint is the round-robin cursor used by the spanner builder to
	// pick representative points from this node. Declared atomic since a
	// parallel split implementation could emit spanner edges concurrently
	// from the same node, though SpannerBuilder in this package always runs
	// it single-threaded after WSPD decomposition completes.
	nextPoint atomic.Uint64
}

// Leaf reports whether b is a leaf of the fair-split tree: a node with zero
// radius (one point, or several coinciding points) and no children.
func (b *Box) Leaf() bool {
	return b.radius == 0 && b.left == nil && b.right == nil
}

// Points returns the indices (into the owning PointSet) of the points held
// by this node.
func (b *Box) Points() []int { return b.points }

// Radius returns the bounding-sphere radius of the box: half the L2 norm of
// its side lengths, or 0 for a single-point leaf.
func (b *Box) Radius() float64 { return b.radius }

// ID returns the node's allocation-order identifier, unique within its tree.
func (b *Box) ID() int { return b.id }

// maxDimension returns the index of the widest dimension of b's box, ties
// broken toward the lowest index.
func (b *Box) maxDimension() int {
	m := 0
	for i := 1; i < len(b.sizes); i++ {
		if b.sizes[i] > b.sizes[m] {
			m = i
		}
	}
	return m
}

// dist is the box-to-box distance used by the well-separation test:
// center-to-center Euclidean distance minus both bounding-sphere radii. May
// be negative.
func (b *Box) dist(other *Box) float64 {
	return euclideanDistance(b.center, other.center) - b.radius - other.radius
}

func euclideanDistance(a, c []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - c[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// includes reports whether n's bounding box is contained in b's: used only
// by the clusterParent fallback lookup.
func (b *Box) includes(n *Box) bool {
	if b.radius < n.radius {
		return false
	}
	for i := range b.low {
		if b.low[i] > n.low[i] || b.upper[i] < n.upper[i] {
			return false
		}
	}
	return true
}

// nextPointIndex returns the next representative point index from this
// node's round-robin cursor, advancing it for the next caller.
func (b *Box) nextPointIndex() int {
	n := b.nextPoint.Add(1) - 1
	return b.points[int(n%uint64(len(b.points)))]
}

// Tree is the fair-split tree built over a PointSet. Splitting rule at a
// node B: if B.radius == 0 it is a leaf; otherwise split along B's widest
// dimension at the geometric midpoint (not the median), distribute the
// remaining dimensions' index lists preserving their sortedness, and
// recurse into both children.
type Tree struct {
	Set     *PointSet
	Root    *Box
	nodeIDs int

	// Splitter performs the recursive split of Root. The default,
	// SequentialSplit, is a plain pre-order recursion; callers may supply a
	// parallel collaborator instead. Both produce identical trees modulo
	// node id assignment order.
	Splitter func(*Tree)
}

// NewTree builds a fair-split tree over set, rooted at a single node
// spanning every point, and runs splitter (SequentialSplit if nil) to grow
// it. The root always has id 1.
func NewTree(set *PointSet, splitter func(*Tree)) *Tree {
	if splitter == nil {
		splitter = SequentialSplit
	}
	t := &Tree{Set: set, Splitter: splitter}
	root := &Box{
		low:        append([]float64(nil), set.bbox.low...),
		upper:      append([]float64(nil), set.bbox.upper...),
		sizes:      append([]float64(nil), set.bbox.sizes...),
		center:     append([]float64(nil), set.bbox.center...),
		radius:     set.bbox.radius,
		points:     set.bbox.points,
		dimensions: set.dimensions,
	}
	root.id = t.nextID()
	t.Root = root
	t.Splitter(t)
	return t
}

func (t *Tree) nextID() int {
	t.nodeIDs++
	return t.nodeIDs
}

// SequentialSplit recursively splits t.Root in pre-order on the calling
// goroutine. It is the default Tree.Splitter.
func SequentialSplit(t *Tree) {
	t.split(t.Root)
}

func (t *Tree) split(b *Box) {
	if !t.splitOnce(b) {
		return
	}
	t.split(b.left)
	t.split(b.right)
}

// splitOnce splits b into b.left/b.right and reports whether it did so. It
// returns false (leaving b a leaf) when b.radius == 0.
func (t *Tree) splitOnce(b *Box) bool {
	return splitBox(t.Set, b, t.nextID)
}

// splitBox implements the fair-split rule for a single node: split b along
// its widest dimension at the geometric midpoint, distribute the remaining
// dimensions' index lists into two new children, and wire them onto b. ids
// for the two children come from nextID, so SequentialSplit and
// ParallelSplit can share this with their own id-allocation strategy.
// Reports whether a split happened (false, leaving b a leaf, when
// b.radius == 0).
func splitBox(set *PointSet, b *Box, nextID func() int) bool {
	if b.radius == 0 {
		b.left, b.right = nil, nil
		return false
	}
	splitDim := b.maxDimension()
	splitVal := b.low[splitDim] + b.sizes[splitDim]/2
	p := splitPoint(set, b.dimensions[splitDim], splitDim, splitVal)

	left := &Box{dimensions: make([][]int, set.dim), low: make([]float64, set.dim), upper: make([]float64, set.dim), sizes: make([]float64, set.dim), center: make([]float64, set.dim)}
	right := &Box{dimensions: make([][]int, set.dim), low: make([]float64, set.dim), upper: make([]float64, set.dim), sizes: make([]float64, set.dim), center: make([]float64, set.dim)}
	left.id = nextID()
	right.id = nextID()

	full := b.dimensions[splitDim]
	leftSlice := append([]int(nil), full[:p]...)
	rightSlice := append([]int(nil), full[p:]...)
	left.dimensions[splitDim] = leftSlice
	right.dimensions[splitDim] = rightSlice
	left.points = leftSlice
	right.points = rightSlice

	if len(left.points) == 0 || len(right.points) == 0 {
		// A widest dimension with positive size must produce a non-empty
		// split on both sides; this path indicates a structural bug rather
		// than a valid degenerate input.
		panic(internalPanic{ErrInternal})
	}

	distribute(b, left, right, splitDim)

	set.UpdateBox(left)
	set.UpdateBox(right)

	b.left, b.right = left, right
	return true
}

// distribute pushes every index of b.dimensions[i], i != splitDim, into
// left or right according to membership in left's point set, preserving
// per-dimension sortedness.
func distribute(b, left, right *Box, splitDim int) {
	inLeft := make(map[int]struct{}, len(left.points))
	for _, p := range left.points {
		inLeft[p] = struct{}{}
	}
	for i, dim := range b.dimensions {
		if i == splitDim {
			continue
		}
		for _, p := range dim {
			if _, ok := inLeft[p]; ok {
				left.dimensions[i] = append(left.dimensions[i], p)
			} else {
				right.dimensions[i] = append(right.dimensions[i], p)
			}
		}
	}
}

// splitPoint finds the smallest position p in v (a per-dimension sorted
// index list) such that set.Get(dim, v[p]) >= splitVal, then walks p
// backward past any run of values exactly equal to splitVal so that all
// ties land on the right side. The backward walk is guarded at p == 0 so it
// never reads before the start of v, making fully-tied inputs deterministic.
func splitPoint(set *PointSet, v []int, dim int, splitVal float64) int {
	lo, hi := 0, len(v)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if set.Get(dim, v[mid]) == splitVal {
			for mid > 0 && set.Get(dim, v[mid-1]) == splitVal {
				mid--
			}
			return mid
		}
		if splitVal < set.Get(dim, v[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

type internalPanic struct{ err error }
