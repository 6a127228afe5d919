// Package spanner computes a geometric t-spanner and a Well-Separated Pair
// Decomposition (WSPD) clustering over a set of points in d-dimensional
// Euclidean space.
//
// Given N points and a stretch factor t>1, BuildSpannerAndClusters returns
// an edge list whose induced shortest-path metric approximates Euclidean
// distance up to factor t, and an assignment of every point to one of K
// clusters discovered from the structure of the fair-split tree's WSPD.
//
// Basic usage:
//
//	result, err := spanner.BuildSpannerAndClusters(2, points, infos, 2.0)
//	// result.Edges[i] is an (Src, Dst, Dist) triple, Src < Dst
//	// result.Membership[i] is the cluster id of point i
//	// result.NumberOfClusters is the number of distinct cluster ids
//
// # Pipeline
//
// Construction is strictly one-shot: a [PointSet] is built from the input,
// a [Tree] (fair-split tree) is recursively split over it, a [WSPD] is
// decomposed from the tree, a [SpannerBuilder] turns WSPD pairs into edges,
// and a [Clusterer] turns WSPD pairs into cluster membership. The returned
// [Result] keeps the WSPD pairs and the clusterer reachable for auxiliary
// queries, so these intermediate structures live as long as the Result.
package spanner
