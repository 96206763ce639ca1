// C-SCAN (circular SCAN) disk scheduling.

package sim

// CSCAN sweeps the head upward only, servicing the nearest eligible request
// at or above it. When no eligible request remains ahead, the head performs an
// explicit jump to the start: the full current head position is charged as
// seek cost (the seek back to track 0), a wrap event is recorded, and the
// ascending sweep resumes from 0. The head never reverses. The wrap pricing
// deliberately differs from C-LOOK's, matching textbook C-SCAN semantics.
// diskSize bounds the addressable track range but plays no part in selection.
func CSCAN(reqs []Request, initialHead, diskSize int) Result {
	if len(reqs) == 0 {
		return Result{}
	}

	working := cloneRequests(reqs)
	rs := newRunState(initialHead)

	remaining := len(working)
	for remaining > 0 {
		elig := eligible(working, rs.clock)
		if len(elig) == 0 {
			rs.advanceTo(nextArrival(working))
			continue
		}
		r := lowestAtOrAbove(elig, rs.head)
		if r == nil {
			rs.jumpToStart()
			r = lowestAtOrAbove(elig, 0)
		}
		rs.service(r)
		remaining--
	}
	return rs.result(working)
}
