// Aggregates per-run performance statistics from a completed request set.

package sim

import "math"

// Statistics summarizes a completed simulation run for final reporting.
// All fields are derived by ComputeStatistics and never mutated independently.
type Statistics struct {
	TotalRequests       int     `json:"total_requests"`
	TotalSeekTime       int     `json:"total_seek_time"`
	AvgSeekTime         float64 `json:"avg_seek_time"`
	AvgResponseTime     float64 `json:"avg_response_time"`
	TotalCompletionTime int64   `json:"total_completion_time"`
	Throughput          float64 `json:"throughput"`
}

// ComputeStatistics reduces a completed request set plus timing totals into a
// Statistics summary. An empty set yields all-zero statistics, not an error.
// Throughput guards division by zero: totalTime can legitimately be 0 only
// when every request was already under the head at tick 0 and the set is
// empty, but the guard keeps the function total.
func ComputeStatistics(completed []*Request, totalSeekTime int, totalTime int64) Statistics {
	if len(completed) == 0 {
		return Statistics{}
	}

	var totalResponse int64
	for _, r := range completed {
		totalResponse += r.ResponseTime
	}

	n := len(completed)
	stats := Statistics{
		TotalRequests:       n,
		TotalSeekTime:       totalSeekTime,
		AvgSeekTime:         round2(float64(totalSeekTime) / float64(n)),
		AvgResponseTime:     round2(float64(totalResponse) / float64(n)),
		TotalCompletionTime: totalTime,
	}
	if totalTime > 0 {
		stats.Throughput = round2(float64(n) / float64(totalTime))
	}
	return stats
}

// round2 rounds to 2 decimal places for reporting, with exact halves going to
// the even neighbor (0.125 reports as 0.12, 0.375 as 0.38).
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
