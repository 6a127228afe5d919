package format

import "github.com/marwanburelle/spanner-clustering"

// Modularity reproduces the reference source's clusters.hh::eval(): an
// out-of-scope quality metric for the clustering BuildSpannerAndClusters
// produces, computed over the WSPD pair list rather than the edge/
// membership output contract. For every WSPD pair, each endpoint's cluster
// is resolved via the clusterParent-fallback lookup (result.ClusterOf);
// pairs whose endpoints land in the same cluster contribute to e[c]
// (weight 1/dist²), pairs that cross clusters contribute to a[c] on both
// sides. The returned score is Σ(e_c/2m + (a_c/2m)²).
func Modularity(result *spanner.Result) float64 {
	k := result.NumberOfClusters
	if k == 0 {
		return 0
	}
	e := make([]float64, k)
	a := make([]float64, k)

	for _, pair := range result.Pairs() {
		c0 := result.ClusterOf(pair.U)
		c1 := result.ClusterOf(pair.V)
		d := pair.BoxDist()
		weight := 0.0
		if d != 0 {
			weight = 1 / (d * d)
		}
		if c0 == c1 {
			if c0 >= 0 {
				e[c0] += weight
			}
			continue
		}
		if c0 >= 0 {
			a[c0] += weight
		}
		if c1 >= 0 {
			a[c1] += weight
		}
	}

	sum := 0.0
	for _, v := range e {
		sum += v
	}
	for _, v := range a {
		sum += v
	}
	if sum == 0 {
		return 0
	}

	q := 0.0
	for c := 0; c < k; c++ {
		ec := e[c] / (2 * sum)
		ac := a[c] / (2 * sum)
		q += ec + ac*ac
	}
	return q
}
