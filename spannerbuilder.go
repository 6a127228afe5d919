package spanner

// Edge is one spanner edge: the endpoints are points src < dst, and Dist is
// their Euclidean distance.
type Edge struct {
	Src, Dst int
	Dist     float64
}

// SpannerBuilder turns a WSPD into a graph by emitting one edge per
// well-separated pair, using each node's own round-robin cursor to pick the
// representative point on each side. Emission order follows WSPD.Pairs
// (pre-order over the tree, then findPairs recursion order), and duplicate
// (src,dst) edges from different pairs picking the same two points are
// preserved rather than deduplicated, matching the reference
// implementation's observable behavior.
type SpannerBuilder struct {
	Set  *PointSet
	WSPD *WSPD
}

// NewSpannerBuilder returns a builder over set's distances and w's pairs.
func NewSpannerBuilder(set *PointSet, w *WSPD) *SpannerBuilder {
	return &SpannerBuilder{Set: set, WSPD: w}
}

// Build emits one Edge per WSPD pair by advancing each endpoint node's
// round-robin cursor once. Cursors live on the nodes and are never reset: a
// node's position is whatever its atomic counter happens to hold when Build
// is entered, so Build should be called exactly once per WSPD.
func (sb *SpannerBuilder) Build() []Edge {
	edges := make([]Edge, 0, len(sb.WSPD.Pairs))
	for _, pair := range sb.WSPD.Pairs {
		p := pair.U.nextPointIndex()
		q := pair.V.nextPointIndex()
		if q < p {
			p, q = q, p
		}
		edges = append(edges, Edge{Src: p, Dst: q, Dist: sb.Set.Dist(p, q)})
	}
	return edges
}
