package sim

import "testing"

// exampleRequests is the textbook 8-request workload used across policy
// tests: tracks {98, 183, 37, 122, 14, 124, 65, 67}, all arriving at tick 0,
// ids assigned 1..8 in that order.
func exampleRequests() []Request {
	tracks := []int{98, 183, 37, 122, 14, 124, 65, 67}
	reqs := make([]Request, len(tracks))
	for i, track := range tracks {
		reqs[i] = NewRequest(i+1, track, 0)
	}
	return reqs
}

// serviceOrder extracts the request ids from the trace in service order,
// skipping the synthetic start event and any wrap events.
func serviceOrder(res Result) []int {
	var ids []int
	for _, ev := range res.Trace {
		if ev.RequestID != nil {
			ids = append(ids, *ev.RequestID)
		}
	}
	return ids
}

// traceSeekSum sums SeekDistance over all trace events that carry one.
func traceSeekSum(res Result) int {
	sum := 0
	for _, ev := range res.Trace {
		if ev.SeekDistance != nil {
			sum += *ev.SeekDistance
		}
	}
	return sum
}

// assertStartEvent checks the trace's synthetic first event: the supplied
// initial head position at tick 0, no request, no seek distance.
func assertStartEvent(t *testing.T, res Result, head int) {
	t.Helper()
	if len(res.Trace) == 0 {
		t.Fatal("trace is empty")
	}
	first := res.Trace[0]
	if first.Position != head {
		t.Errorf("start event position = %d, want %d", first.Position, head)
	}
	if first.Time != 0 {
		t.Errorf("start event time = %d, want 0", first.Time)
	}
	if first.RequestID != nil {
		t.Errorf("start event request id = %d, want nil", *first.RequestID)
	}
	if first.SeekDistance != nil {
		t.Errorf("start event seek distance = %d, want nil", *first.SeekDistance)
	}
}

// assertAllCompleted checks the per-request completion invariants on a run's
// statistics and trace: every request serviced exactly once with
// serviceTime >= arrivalTime.
func assertAllCompleted(t *testing.T, res Result, n int) {
	t.Helper()
	if res.Statistics.TotalRequests != n {
		t.Errorf("completed requests = %d, want %d", res.Statistics.TotalRequests, n)
	}
	ids := serviceOrder(res)
	if len(ids) != n {
		t.Fatalf("serviced %d requests, want %d", len(ids), n)
	}
	seen := make(map[int]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("request %d serviced more than once", id)
		}
		seen[id] = true
	}
}
