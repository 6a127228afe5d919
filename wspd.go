package spanner

// WSPDPair is an unordered pair of well-separated fair-split tree nodes.
// Storage order (U, V) is not semantically meaningful.
type WSPDPair struct {
	U, V *Box
}

// BoxDist returns the box-to-box distance between the pair's two nodes
// (center-to-center distance minus both bounding-sphere radii), the same
// quantity the well-separation test compares against sep*radius. Exposed
// for the auxiliary modularity metric in internal/format.
func (p WSPDPair) BoxDist() float64 { return p.U.dist(p.V) }

// WSPD is the Well-Separated Pair Decomposition derived from a fair-split
// tree: a set of node pairs that jointly cover every unordered pair of
// points exactly once, each pair well-separated under Sep.
type WSPD struct {
	Tree  *Tree
	Sep   float64
	Pairs []WSPDPair
}

// NewWSPD builds the WSPD over tree using separation factor sep, running the
// decomposition immediately.
func NewWSPD(tree *Tree, sep float64) *WSPD {
	w := &WSPD{Tree: tree, Sep: sep}
	w.Decompose(tree.Root)
	// A tree that never split (a single point, or every point coinciding)
	// has a leaf root that findPairs never visits, so it is never marked
	// isInPair. It still covers every point and must yield exactly one
	// head for the clusterer to find.
	if tree.Root.Leaf() {
		tree.Root.isInPair = true
	}
	return w
}

// wellSeparated reports whether b1 and b2 satisfy the WSPD separation test:
// dist(b1,b2) >= sep * max(radius(b1), radius(b2)).
func (w *WSPD) wellSeparated(b1, b2 *Box) bool {
	r := b1.radius
	if b2.radius > r {
		r = b2.radius
	}
	return b1.dist(b2) >= w.Sep*r
}

func (w *WSPD) addPair(b1, b2 *Box) {
	w.Pairs = append(w.Pairs, WSPDPair{U: b1, V: b2})
	b1.isInPair = true
	b2.isInPair = true
}

// findPairs recursively decomposes the cross pairs between b1's and b2's
// subtrees into well-separated pairs, following the larger-node-descends
// rule: whichever of b1, b2 has the larger widest-dimension size is
// replaced by its children until the pair is well-separated.
func (w *WSPD) findPairs(b1, b2 *Box) {
	if w.wellSeparated(b1, b2) {
		w.addPair(b1, b2)
		return
	}
	d1, d2 := b1.maxDimension(), b2.maxDimension()
	if b1.sizes[d1] > b2.sizes[d2] {
		b1, b2 = b2, b1
	}
	w.findPairs(b1, b2.left)
	w.findPairs(b1, b2.right)
}

// Decompose runs the WSPD's top-down recursion from node n: for an internal
// node, it finds all well-separated pairs spanning n.left and n.right, then
// recurses into each child. Leaves contribute nothing (they cover no
// cross-pair on their own).
func (w *WSPD) Decompose(n *Box) {
	if n.Leaf() {
		return
	}
	w.findPairs(n.left, n.right)
	w.Decompose(n.left)
	w.Decompose(n.right)
}

// SeparationFactor derives the WSPD separation parameter from the user
// stretch factor t, per the standard WSPD-spanner guarantee: sep =
// 4*(t+1)/(t-1). Callers must reject t <= 1 before calling this (division
// by a non-positive denominator).
func SeparationFactor(t float64) float64 {
	return 4 * (t + 1) / (t - 1)
}
