package format

import (
	"bufio"
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/marwanburelle/spanner-clustering"
)

func buildTestResult(t *testing.T) *spanner.Result {
	t.Helper()
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {20, 20}, {21, 20}}
	infos := make([]any, len(points))
	for i := range infos {
		infos[i] = i
	}
	r, err := spanner.BuildSpannerAndClusters(2, points, infos, 2.0)
	if err != nil {
		t.Fatalf("BuildSpannerAndClusters: %v", err)
	}
	return r
}

func TestWriteEdgeCSV_HeaderAndRowShape(t *testing.T) {
	r := buildTestResult(t)
	var buf bytes.Buffer
	if err := WriteEdgeCSV(&buf, r.Edges); err != nil {
		t.Fatalf("WriteEdgeCSV: %v", err)
	}
	scanner := bufio.NewScanner(&buf)
	if !scanner.Scan() {
		t.Fatal("expected at least a header line")
	}
	if got := scanner.Text(); got != "Source,Target,Distance,Weight,type" {
		t.Errorf("header = %q, want Source,Target,Distance,Weight,type", got)
	}
	rows := 0
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) != 5 {
			t.Fatalf("row %q does not have 5 fields", scanner.Text())
		}
		if fields[4] != "undirected" {
			t.Errorf("row %q: type field = %q, want undirected", scanner.Text(), fields[4])
		}
		rows++
	}
	if rows != len(r.Edges) {
		t.Errorf("wrote %d rows, want %d", rows, len(r.Edges))
	}
}

func TestWriteMembershipCSV_RoundTrips(t *testing.T) {
	r := buildTestResult(t)
	infos := make([]any, len(r.Membership))
	for i := range infos {
		infos[i] = i
	}
	var buf bytes.Buffer
	err := WriteMembershipCSV(&buf, infos, r.Membership, func(v any) string {
		return strconv.Itoa(v.(int))
	})
	if err != nil {
		t.Fatalf("WriteMembershipCSV: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	scanner.Scan() // header
	i := 0
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) != 3 {
			t.Fatalf("row %q does not have 3 fields", scanner.Text())
		}
		cluster, err := strconv.Atoi(fields[2])
		if err != nil {
			t.Fatalf("cluster field not an int: %v", err)
		}
		if cluster != r.Membership[i] {
			t.Errorf("row %d: cluster = %d, want %d", i, cluster, r.Membership[i])
		}
		i++
	}
	if i != len(r.Membership) {
		t.Errorf("wrote %d membership rows, want %d", i, len(r.Membership))
	}
}

func TestWriteDOT_ProducesBalancedBraces(t *testing.T) {
	r := buildTestResult(t)
	var buf bytes.Buffer
	if err := WriteDOT(&buf, r.Edges, nil); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "graph {\n") {
		t.Errorf("DOT output does not start with 'graph {': %q", out[:20])
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("DOT output does not end with '}': %q", out[len(out)-5:])
	}
	for _, e := range r.Edges {
		want := strconv.Itoa(e.Src) + " -- " + strconv.Itoa(e.Dst) + ";"
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing edge line %q", want)
		}
	}
}

func TestModularity_FiniteForNonDegenerateClustering(t *testing.T) {
	r := buildTestResult(t)
	q := Modularity(r)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		t.Errorf("Modularity = %v, want a finite value", q)
	}
}

func TestModularity_ZeroClustersIsZero(t *testing.T) {
	r := &spanner.Result{}
	if q := Modularity(r); q != 0 {
		t.Errorf("Modularity of an empty result = %v, want 0", q)
	}
}
