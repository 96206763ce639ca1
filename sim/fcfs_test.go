package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFCFS_TextbookExample_TotalSeek640(t *testing.T) {
	// GIVEN the textbook 8-request workload with head at 53
	res := FCFS(exampleRequests(), 53)

	// THEN total seek matches the known FCFS result
	assert.Equal(t, 640, res.TotalSeekTime)
	assert.Equal(t, 8, res.Statistics.TotalRequests)
	assert.Equal(t, 640, res.Statistics.TotalSeekTime)
	assert.Equal(t, 80.0, res.Statistics.AvgSeekTime)
	assert.Equal(t, int64(640), res.Statistics.TotalCompletionTime)
	assertStartEvent(t, res, 53)
	assertAllCompleted(t, res, 8)
}

func TestFCFS_ServesInArrivalIDOrder(t *testing.T) {
	// GIVEN requests supplied out of order, with an arrival-time tie on ids 4 and 2
	reqs := []Request{
		NewRequest(4, 10, 5),
		NewRequest(1, 90, 0),
		NewRequest(2, 40, 5),
		NewRequest(3, 170, 2),
	}

	// WHEN FCFS runs
	res := FCFS(reqs, 50)

	// THEN service order is strict (arrivalTime, id) regardless of track layout
	assert.Equal(t, []int{1, 3, 2, 4}, serviceOrder(res))
}

func TestFCFS_WaitsForFutureArrival(t *testing.T) {
	// GIVEN a single request at the head's track arriving at tick 10
	reqs := []Request{NewRequest(1, 50, 10)}

	// WHEN FCFS runs from head 50
	res := FCFS(reqs, 50)

	// THEN the head waits for the arrival, then charges the 1-tick service floor
	assert.Equal(t, 0, res.TotalSeekTime)
	assert.Len(t, res.Trace, 2)
	assert.Equal(t, int64(11), res.Trace[1].Time)
	assert.Equal(t, 0, *res.Trace[1].SeekDistance)
	// responseTime = serviceTime - arrivalTime = 1
	assert.Equal(t, 1.0, res.Statistics.AvgResponseTime)
}

func TestFCFS_EmptyInput_IsNoOp(t *testing.T) {
	res := FCFS(nil, 50)

	assert.Len(t, res.Trace, 0)
	assert.Equal(t, 0, res.TotalSeekTime)
	assert.Equal(t, Statistics{}, res.Statistics)
}

func TestFCFS_DoesNotMutateCallerRequests(t *testing.T) {
	// GIVEN caller-owned requests
	reqs := exampleRequests()

	// WHEN FCFS runs
	FCFS(reqs, 53)

	// THEN the caller's copies keep their pre-run state
	for _, r := range reqs {
		assert.False(t, r.Completed)
		assert.Equal(t, TimeUnset, r.ServiceTime)
		assert.Equal(t, TimeUnset, r.ResponseTime)
	}
}

func TestFCFS_TotalSeekEqualsTraceSum(t *testing.T) {
	res := FCFS(exampleRequests(), 53)
	assert.Equal(t, res.TotalSeekTime, traceSeekSum(res))
}
