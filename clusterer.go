package spanner

// Clusterer derives a point clustering from a fair-split tree and its WSPD.
// It runs in three phases: find heads (WSPD-pair endpoints, an antichain in
// the tree), merge heads that are not well-separated via union-find, and
// assign every point the canonical cluster id of its head's component.
type Clusterer struct {
	Set  *PointSet
	Tree *Tree
	WSPD *WSPD

	heads               []*Box
	headIndex           map[*Box]int
	headCanonical       []int
	avgRadius           float64
	positiveRadiusHeads int

	Membership       []int
	NumberOfClusters int
}

// NewClusterer runs the clustering pipeline over set/tree/wspd and returns
// the populated Clusterer. tree and wspd must come from the same pipeline
// run (wspd.Tree == tree).
func NewClusterer(set *PointSet, tree *Tree, w *WSPD) *Clusterer {
	c := &Clusterer{
		Set:        set,
		Tree:       tree,
		WSPD:       w,
		headIndex:  make(map[*Box]int),
		Membership: make([]int, len(set.points)),
	}
	c.findHeads(tree.Root)
	c.NumberOfClusters = len(c.heads)
	c.mergeAndAssign()
	return c
}

// findHeads walks the tree top-down; a node is a head iff isInPair is set,
// in which case its subtree is not descended further (heads form an
// antichain) and every node in the subtree gets clusterParent set to it.
// avgRadius accumulates the sum of radii over heads with positive radius;
// mergeAndAssign turns it into the mean once every head is known.
func (c *Clusterer) findHeads(n *Box) {
	if n.isInPair {
		c.headIndex[n] = len(c.heads)
		c.heads = append(c.heads, n)
		if n.radius > 0 {
			c.avgRadius += n.radius
			c.positiveRadiusHeads++
		}
		assignClusterParent(n, n)
		return
	}
	c.findHeads(n.left)
	c.findHeads(n.right)
}

func assignClusterParent(n, head *Box) {
	n.clusterParent = head
	if n.left != nil {
		assignClusterParent(n.left, head)
		assignClusterParent(n.right, head)
	}
}

// mergeAndAssign runs phases 2 and 3: union heads that are not
// well-separated under the WSPD's own separation factor, canonicalize each
// resulting component into a dense cluster id in traversal order, and
// populate Membership for every point in every head's subtree.
func (c *Clusterer) mergeAndAssign() {
	if c.positiveRadiusHeads > 0 {
		c.avgRadius /= float64(c.positiveRadiusHeads)
	}

	uf := newUnionFind(len(c.heads))
	for i := 0; i < len(c.heads); i++ {
		for j := i + 1; j < len(c.heads); j++ {
			if !c.WSPD.wellSeparated(c.heads[i], c.heads[j]) {
				uf.union(i, j)
			}
		}
	}

	canonical := make(map[int]int)
	next := 0
	c.headCanonical = make([]int, len(c.heads))
	for i, h := range c.heads {
		root := uf.find(i)
		id, ok := canonical[root]
		if !ok {
			id = next
			canonical[root] = id
			next++
		}
		c.headCanonical[i] = id
		for _, p := range h.points {
			c.Membership[p] = id
		}
	}
	c.NumberOfClusters = next
}

// parentHead resolves n's covering head via its clusterParent back-reference,
// falling back to a box-inclusion search over all heads (and finally the
// tree root) only when clusterParent was never set. Under the invariants
// established by findHeads, every tree node reachable from the root gets a
// clusterParent, so the fallback path is unreachable from the core
// pipeline; it exists only for the auxiliary modularity metric, which may
// be handed nodes it obtains independently.
func (c *Clusterer) parentHead(n *Box) *Box {
	if n.clusterParent != nil {
		return n.clusterParent
	}
	for _, h := range c.heads {
		if h.includes(n) {
			return h
		}
	}
	return c.Tree.Root
}

// ParentClusterID returns the canonical cluster id of the head covering n,
// or -1 if n's head (via clusterParent, falling back to box inclusion) is
// not a recognized head. This should not happen in practice; it is
// surfaced as -1 rather than panicking since this path is reachable only
// from the auxiliary modularity metric in internal/format, not the core
// pipeline.
func (c *Clusterer) ParentClusterID(n *Box) int {
	h := c.parentHead(n)
	idx, ok := c.headIndex[h]
	if !ok {
		return -1
	}
	return c.headCanonical[idx]
}
