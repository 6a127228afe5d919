package spanner

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Result is the output of BuildSpannerAndClusters: the spanner edge list,
// per-point cluster membership, and the number of distinct clusters. Result
// also keeps the WSPD pairs and the clusterer (and through them the tree and
// PointSet) reachable for the auxiliary Pairs and ClusterOf queries.
type Result struct {
	Edges            []Edge
	Membership       []int
	NumberOfClusters int

	// pairs is kept unexported but threaded through to callers that need
	// WSPD-level detail for auxiliary computations (the modularity metric
	// in internal/format); it is not part of the plain edge/membership
	// output contract.
	pairs     []WSPDPair
	clusterer *Clusterer
}

// Pairs exposes the WSPD's well-separated pairs for auxiliary consumers
// (internal/format.Modularity) that need more structure than the plain
// edge/membership output. The core pipeline itself never reads this back.
func (r *Result) Pairs() []WSPDPair { return r.pairs }

// ClusterOf resolves a WSPD pair endpoint to its canonical cluster id,
// using the same clusterParent/box-inclusion fallback lookup the clusterer
// uses internally. Exposed for internal/format.Modularity.
func (r *Result) ClusterOf(n *Box) int { return r.clusterer.ParentClusterID(n) }

// BuildSpannerAndClusters runs the full one-shot pipeline: validate input,
// build a PointSet, grow a fair-split Tree, decompose its WSPD at
// separation factor 4*(stretch+1)/(stretch-1), emit spanner edges via
// round-robin representative selection, and cluster the points by merging
// non-well-separated WSPD heads. It rejects dim == 0, N == 0, stretch <= 1,
// non-finite coordinates, and mismatched sample dimensions (returning the
// corresponding sentinel from errors.go), and is deterministic for a given
// input.
func BuildSpannerAndClusters(dim int, points [][]float64, infos []any, stretch float64) (result *Result, err error) {
	if err := validateInput(dim, points, infos, stretch); err != nil {
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			if ip, ok := p.(internalPanic); ok {
				err = errors.Wrapf(ip.err, "spanner: pipeline failed")
				result = nil
				return
			}
			panic(p)
		}
	}()

	set := NewPointSet(dim, points, infos)
	tree := NewTree(set, nil)
	sep := SeparationFactor(stretch)
	w := NewWSPD(tree, sep)
	sb := NewSpannerBuilder(set, w)
	edges := sb.Build()
	c := NewClusterer(set, tree, w)

	return &Result{
		Edges:            edges,
		Membership:       c.Membership,
		NumberOfClusters: c.NumberOfClusters,
		pairs:            w.Pairs,
		clusterer:        c,
	}, nil
}

func validateInput(dim int, points [][]float64, infos []any, stretch float64) error {
	if dim == 0 || len(points) == 0 {
		return errors.Wrapf(ErrEmptyInput, "dim=%d n=%d", dim, len(points))
	}
	if stretch <= 1 {
		return errors.Wrapf(ErrInvalidStretch, "stretch=%v", stretch)
	}
	if len(infos) != len(points) {
		return errors.Wrapf(ErrInvalidShape, "len(infos)=%d != len(points)=%d", len(infos), len(points))
	}
	for i, p := range points {
		if len(p) != dim {
			return errors.Wrapf(ErrInvalidShape, "point %d has length %d, want %d", i, len(p), dim)
		}
		for j, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Wrapf(ErrNonFinite, "point %d coordinate %d = %v", i, j, v)
			}
		}
	}
	return nil
}
