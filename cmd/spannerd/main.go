// Command spannerd exposes the core spanner pipeline over HTTP: POST
// /v1/spanner runs BuildSpannerAndClusters on a JSON request body and
// returns the edge list, membership, and cluster count as JSON. GET
// /metrics exposes request counters and latency histograms in Prometheus
// text format.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/VictoriaMetrics/metrics"

	"github.com/cockroachdb/errors"

	"github.com/marwanburelle/spanner-clustering"
	"github.com/marwanburelle/spanner-clustering/internal/metricsx"
)

type spannerRequest struct {
	Dim     int         `json:"dim"`
	Points  [][]float64 `json:"points"`
	Stretch float64     `json:"stretch"`
}

type spannerResponse struct {
	Edges            []edgeJSON `json:"edges"`
	Membership       []int      `json:"membership"`
	NumberOfClusters int        `json:"number_of_clusters"`
}

type edgeJSON struct {
	Src  int     `json:"src"`
	Dst  int     `json:"dst"`
	Dist float64 `json:"dist"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func main() {
	addr := flag.String("addr", envOr("PORT", ":8080"), "listen address (host:port, or :port)")
	useMetrics := flag.Bool("metrics", true, "expose request counters/latency on GET /metrics")
	flag.Parse()

	sm := metricsx.NewServerMetrics(*useMetrics)

	r := gin.Default()
	r.POST("/v1/spanner", handleSpanner(sm))
	r.GET("/metrics", func(c *gin.Context) {
		metrics.WritePrometheus(c.Writer, true)
	})

	log.Printf("spannerd: listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatalf("spannerd: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		if v[0] != ':' {
			v = ":" + v
		}
		return v
	}
	return fallback
}

func handleSpanner(sm *metricsx.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.New().String()[:8]
		c.Writer.Header().Set("X-Request-Id", reqID)

		var req spannerRequest
		if err := c.BindJSON(&req); err != nil {
			sm.ObserveRequest(true, time.Since(start).Seconds())
			c.JSON(http.StatusBadRequest, errorResponse{errorBody{Kind: "InvalidShape", Message: err.Error()}})
			return
		}

		infos := make([]any, len(req.Points))
		for i := range infos {
			infos[i] = i
		}

		result, err := spanner.BuildSpannerAndClusters(req.Dim, req.Points, infos, req.Stretch)
		if err != nil {
			sm.ObserveRequest(true, time.Since(start).Seconds())
			log.Printf("spannerd[%s]: %v", reqID, err)
			status, kind := classifyError(err)
			c.JSON(status, errorResponse{errorBody{Kind: kind, Message: err.Error()}})
			return
		}

		edges := make([]edgeJSON, len(result.Edges))
		for i, e := range result.Edges {
			edges[i] = edgeJSON{Src: e.Src, Dst: e.Dst, Dist: e.Dist}
		}

		sm.ObserveRequest(false, time.Since(start).Seconds())
		c.JSON(http.StatusOK, spannerResponse{
			Edges:            edges,
			Membership:       result.Membership,
			NumberOfClusters: result.NumberOfClusters,
		})
	}
}

// classifyError maps one of the core's sentinel error kinds to an HTTP
// status and a stable kind name for the JSON error body: 400 for the four
// validation kinds, 500 for ErrInternal.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, spanner.ErrInvalidShape):
		return http.StatusBadRequest, "InvalidShape"
	case errors.Is(err, spanner.ErrInvalidStretch):
		return http.StatusBadRequest, "InvalidStretch"
	case errors.Is(err, spanner.ErrEmptyInput):
		return http.StatusBadRequest, "EmptyInput"
	case errors.Is(err, spanner.ErrNonFinite):
		return http.StatusBadRequest, "NonFinite"
	default:
		return http.StatusInternalServerError, "Internal"
	}
}
