// runState carries the bookkeeping every policy shares: head position, the
// simulated clock, the accumulated seek total, and the head-movement trace.
// The seek-time and clock rules live here so the per-policy files reduce to
// their selection loops.

package sim

import (
	"github.com/sirupsen/logrus"
)

// runState is the mutable state of one policy run over a private working set.
type runState struct {
	head      int
	clock     int64
	totalSeek int
	trace     []HeadMovement
}

// newRunState seeds the trace with the synthetic start event: the head's
// position at tick 0, before any service.
func newRunState(head int) *runState {
	return &runState{
		head:  head,
		trace: []HeadMovement{{Position: head, Time: 0, RequestID: nil}},
	}
}

// waitUntil advances the clock to t if it is still behind it. The clock never
// runs backward.
func (rs *runState) waitUntil(t int64) {
	if rs.clock < t {
		rs.clock = t
	}
}

// advanceTo jumps the clock forward to t. Policy loops use it when nothing is
// pending yet and the run has to idle until the next arrival.
func (rs *runState) advanceTo(t int64) {
	logrus.Debugf("no pending requests at tick %d, clock jumps to next arrival at tick %d", rs.clock, t)
	rs.clock = t
}

// service moves the head to r's track and completes r. Seek cost is the
// absolute track distance; a zero-distance request still advances the clock
// by 1 tick for the mandatory service/transfer time, with a recorded seek of 0.
func (rs *runState) service(r *Request) {
	seek := abs(rs.head - r.Track)
	logrus.Debugf("servicing request %d: head %d -> %d, seek %d, tick %d", r.ID, rs.head, r.Track, seek, rs.clock)
	rs.totalSeek += seek

	rs.head = r.Track
	if seek > 0 {
		rs.clock += int64(seek)
	} else {
		rs.clock++
	}

	r.ServiceTime = rs.clock
	r.ResponseTime = rs.clock - r.ArrivalTime
	r.Completed = true

	id := r.ID
	dist := seek
	rs.trace = append(rs.trace, HeadMovement{
		Position:     rs.head,
		Time:         rs.clock,
		RequestID:    &id,
		SeekDistance: &dist,
	})
}

// jumpToStart performs the C-SCAN wrap: the head seeks from its current
// position all the way back to track 0, charging the full head position as
// seek cost and emitting a wrap event with no request attached.
func (rs *runState) jumpToStart() {
	jump := rs.head
	logrus.Debugf("wrapping head %d -> 0 at tick %d", rs.head, rs.clock)
	rs.totalSeek += jump
	rs.clock += int64(jump)
	rs.head = 0

	dist := jump
	rs.trace = append(rs.trace, HeadMovement{
		Position:     0,
		Time:         rs.clock,
		RequestID:    nil,
		SeekDistance: &dist,
		Action:       ActionJumpToStart,
	})
}

// result assembles the run's Result from the completed working set.
func (rs *runState) result(completed []*Request) Result {
	return Result{
		Trace:         rs.trace,
		TotalSeekTime: rs.totalSeek,
		Statistics:    ComputeStatistics(completed, rs.totalSeek, rs.clock),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
