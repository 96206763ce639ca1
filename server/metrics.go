// Prometheus instrumentation for the API server.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	promMetrics = struct {
		simulationsTotal *prometheus.CounterVec
		lastTotalSeek    prometheus.Gauge
		pendingRequests  prometheus.Gauge
	}{
		simulationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "disksched_simulations_total",
			Help: "Completed simulation runs by algorithm",
		}, []string{"algorithm"}),
		lastTotalSeek: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "disksched_last_total_seek_time",
			Help: "Total seek time of the most recent simulation run",
		}),
		pendingRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "disksched_pending_requests",
			Help: "Number of pending disk requests in the store",
		}),
	}
)

func init() {
	prometheus.MustRegister(
		promMetrics.simulationsTotal,
		promMetrics.lastTotalSeek,
		promMetrics.pendingRequests,
	)
}

// observeSimulation records a completed run in the metrics.
func observeSimulation(algorithm string, totalSeek int) {
	promMetrics.simulationsTotal.WithLabelValues(algorithm).Inc()
	promMetrics.lastTotalSeek.Set(float64(totalSeek))
}

// observePending updates the pending-request gauge after a store mutation.
func observePending(s *Store) {
	if n, err := s.Count(); err == nil {
		promMetrics.pendingRequests.Set(float64(n))
	}
}
