// Package format implements the text-serialization formats and the
// modularity quality metric that sit outside the core geometric pipeline:
// edge-list and membership CSV, a DOT graph rendering, and an auxiliary
// modularity score over a clustering. None of this package is read by the
// spanner package itself; it only consumes the core's public Result type.
package format

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/marwanburelle/spanner-clustering"
)

// WriteEdgeCSV writes edges in the Gephi-compatible edge-list format: header
// "Source,Target,Distance,Weight,type", one row per edge with
// Weight = 1/(dist*dist) and type fixed to "undirected".
func WriteEdgeCSV(w io.Writer, edges []spanner.Edge) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Source", "Target", "Distance", "Weight", "type"}); err != nil {
		return err
	}
	for _, e := range edges {
		weight := 0.0
		if e.Dist != 0 {
			weight = 1 / (e.Dist * e.Dist)
		}
		row := []string{
			strconv.Itoa(e.Src),
			strconv.Itoa(e.Dst),
			strconv.FormatFloat(e.Dist, 'g', -1, 64),
			strconv.FormatFloat(weight, 'g', -1, 64),
			"undirected",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteMembershipCSV writes the per-point cluster assignment: header
// "Id,Label,Cluster", one row per point. labelFunc renders each point's
// opaque info payload as a string label.
func WriteMembershipCSV(w io.Writer, infos []any, membership []int, labelFunc func(any) string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Id", "Label", "Cluster"}); err != nil {
		return err
	}
	for i, cluster := range membership {
		label := ""
		if labelFunc != nil && i < len(infos) {
			label = labelFunc(infos[i])
		}
		row := []string{strconv.Itoa(i), label, strconv.Itoa(cluster)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteDOT writes edges as an undirected DOT graph: one "src -- dst;" line
// per edge, optionally preceded by per-node label declarations from
// labelFunc.
func WriteDOT(w io.Writer, edges []spanner.Edge, labelFunc func(int) string) error {
	if _, err := fmt.Fprintln(w, "graph {"); err != nil {
		return err
	}
	if labelFunc != nil {
		nodes := map[int]struct{}{}
		for _, e := range edges {
			nodes[e.Src] = struct{}{}
			nodes[e.Dst] = struct{}{}
		}
		for n := range nodes {
			if _, err := fmt.Fprintf(w, "  %d [label=%q];\n", n, labelFunc(n)); err != nil {
				return err
			}
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "  %d -- %d;\n", e.Src, e.Dst); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
