// Command spanner-clustering reads a CSV of points, runs the core spanner
// and WSPD-clustering pipeline, and writes the edge list, membership, and
// DOT graph auxiliary formats.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/zstd"

	"github.com/marwanburelle/spanner-clustering"
	"github.com/marwanburelle/spanner-clustering/internal/config"
	"github.com/marwanburelle/spanner-clustering/internal/format"
)

func main() {
	cfg := config.Config{}
	flag.Float64Var(&cfg.Stretch, "stretch", 2.0, "spanner stretch factor t > 1")
	flag.StringVar(&cfg.InputPath, "input", "", "CSV file of points (numeric columns, optional trailing label)")
	flag.StringVar(&cfg.OutputDir, "out", ".", "directory to write edges.csv, membership.csv, graph.dot")
	flag.BoolVar(&cfg.Compress, "compress", false, "zstd-compress each output file")
	flag.Parse()

	if cfg.InputPath == "" {
		log.Fatal("spanner-clustering: -input is required")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("spanner-clustering: %v", err)
	}

	dim, points, infos, err := readPointsCSV(cfg.InputPath)
	if err != nil {
		log.Fatalf("spanner-clustering: %v", err)
	}

	result, err := spanner.BuildSpannerAndClusters(dim, points, infos, cfg.Stretch)
	if err != nil {
		log.Fatalf("spanner-clustering: %v", err)
	}
	log.Printf("spanner-clustering: %d points, %d edges, %d clusters", len(points), len(result.Edges), result.NumberOfClusters)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("spanner-clustering: %v", err)
	}

	labelFunc := func(v any) string { return fmt.Sprintf("%v", v) }

	if err := writeOutput(cfg, "edges.csv", func(w *bufio.Writer) error {
		return format.WriteEdgeCSV(w, result.Edges)
	}); err != nil {
		log.Fatalf("spanner-clustering: %v", err)
	}
	if err := writeOutput(cfg, "membership.csv", func(w *bufio.Writer) error {
		return format.WriteMembershipCSV(w, infos, result.Membership, labelFunc)
	}); err != nil {
		log.Fatalf("spanner-clustering: %v", err)
	}
	if err := writeOutput(cfg, "graph.dot", func(w *bufio.Writer) error {
		return format.WriteDOT(w, result.Edges, func(i int) string { return labelFunc(infos[i]) })
	}); err != nil {
		log.Fatalf("spanner-clustering: %v", err)
	}
}

// writeOutput writes name (inside cfg.OutputDir) via write, compressing it
// with zstd in place (as "<name>.zst") when cfg.Compress is set.
func writeOutput(cfg config.Config, name string, write func(*bufio.Writer) error) error {
	path := filepath.Join(cfg.OutputDir, name)
	if cfg.Compress {
		path += ".zst"
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	bufWriter := bufio.NewWriterSize(file, 1<<20)

	if !cfg.Compress {
		if err := write(bufWriter); err != nil {
			return err
		}
		return bufWriter.Flush()
	}

	enc, err := zstd.NewWriter(bufWriter, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	encWriter := bufio.NewWriter(enc)
	if err := write(encWriter); err != nil {
		enc.Close()
		return err
	}
	if err := encWriter.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return bufWriter.Flush()
}

// readPointsCSV reads one point per row: numeric coordinate columns, with an
// optional trailing non-numeric label column used as that point's info
// payload (the row index is used when there is no label). dim is inferred
// from the first row.
func readPointsCSV(path string) (dim int, points [][]float64, infos []any, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		numCols := len(row)
		var label string
		hasLabel := false
		if _, errConv := strconv.ParseFloat(row[len(row)-1], 64); errConv != nil {
			numCols--
			label = row[len(row)-1]
			hasLabel = true
		}
		if dim == 0 {
			dim = numCols
		} else if numCols != dim {
			return 0, nil, nil, fmt.Errorf("row %d has %d coordinate columns, want %d", i, numCols, dim)
		}

		coords := make([]float64, numCols)
		for j := 0; j < numCols; j++ {
			v, errConv := strconv.ParseFloat(row[j], 64)
			if errConv != nil {
				return 0, nil, nil, fmt.Errorf("row %d column %d: %w", i, j, errConv)
			}
			coords[j] = v
		}
		points = append(points, coords)
		if hasLabel {
			infos = append(infos, label)
		} else {
			infos = append(infos, i)
		}
	}
	return dim, points, infos, nil
}
