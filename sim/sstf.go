// Shortest-Seek-Time-First disk scheduling.

package sim

// SSTF greedily services whichever pending request is closest to the current
// head position. Pending requests live in a persistent queue appended in
// arrival-observation order (input order within a batch of simultaneous
// arrivals), and distance ties go to the earliest entry in that queue: a
// request that became eligible first wins over one admitted later, even if
// the later one sits earlier in the input. Minimizes seek time but can starve
// far requests indefinitely if near ones keep arriving. Arrival times gate
// admission: when nothing is pending, the clock jumps to the next arrival
// instead of servicing out of order.
func SSTF(reqs []Request, initialHead int) Result {
	if len(reqs) == 0 {
		return Result{}
	}

	working := cloneRequests(reqs)
	rs := newRunState(initialHead)

	// admitted tracks queue membership by the stable request id, so a request
	// is appended exactly once.
	var pending []*Request
	admitted := make(map[int]bool, len(working))

	remaining := len(working)
	for remaining > 0 {
		for _, r := range working {
			if !admitted[r.ID] && r.ArrivalTime <= rs.clock {
				admitted[r.ID] = true
				pending = append(pending, r)
			}
		}
		if len(pending) == 0 {
			rs.advanceTo(nextArrival(working))
			continue
		}
		i := closestIndex(pending, rs.head)
		r := pending[i]
		pending = append(pending[:i], pending[i+1:]...)
		rs.service(r)
		remaining--
	}
	return rs.result(working)
}

// closestIndex returns the index of the request with minimum |track - head|;
// the earliest queue entry reaching that minimum wins ties.
func closestIndex(reqs []*Request, head int) int {
	best := 0
	for i, r := range reqs[1:] {
		if abs(r.Track-head) < abs(reqs[best].Track-head) {
			best = i + 1
		}
	}
	return best
}
