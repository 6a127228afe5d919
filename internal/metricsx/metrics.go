// Package metricsx holds the server-side request counters and latency
// histograms for cmd/spannerd, modeled on the named-counter/gauge idiom
// used throughout lni-dragonboat's internal metrics types.
package metricsx

import "github.com/VictoriaMetrics/metrics"

// ServerMetrics tracks request counts and latency for the spannerd HTTP
// server. All fields are nil when useMetrics is false, and every method is
// a no-op in that case.
type ServerMetrics struct {
	requestsTotal   *metrics.Counter
	requestsFailed  *metrics.Counter
	requestDuration *metrics.Histogram
	useMetrics      bool
}

// NewServerMetrics registers (or retrieves, if already registered) the
// named series used by the server. Pass useMetrics=false to disable all
// tracking without changing call sites.
func NewServerMetrics(useMetrics bool) *ServerMetrics {
	sm := &ServerMetrics{useMetrics: useMetrics}
	if useMetrics {
		sm.requestsTotal = metrics.GetOrCreateCounter("spannerd_requests_total")
		sm.requestsFailed = metrics.GetOrCreateCounter("spannerd_requests_failed_total")
		sm.requestDuration = metrics.GetOrCreateHistogram("spannerd_request_duration_seconds")
	}
	return sm
}

// ObserveRequest records one request's outcome and latency in seconds.
func (sm *ServerMetrics) ObserveRequest(failed bool, seconds float64) {
	if !sm.useMetrics {
		return
	}
	sm.requestsTotal.Inc()
	if failed {
		sm.requestsFailed.Inc()
	}
	sm.requestDuration.Update(seconds)
}
