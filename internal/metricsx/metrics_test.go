package metricsx

import "testing"

func TestServerMetrics_DisabledIsNoop(t *testing.T) {
	sm := NewServerMetrics(false)
	// Must not panic when metrics are disabled.
	sm.ObserveRequest(true, 0.01)
	sm.ObserveRequest(false, 0.02)
}

func TestServerMetrics_EnabledRecordsWithoutPanicking(t *testing.T) {
	sm := NewServerMetrics(true)
	sm.ObserveRequest(false, 0.005)
	sm.ObserveRequest(true, 0.1)
}
