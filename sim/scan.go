// SCAN (elevator) disk scheduling.

package sim

// SCAN sweeps the head in one direction, servicing the nearest eligible
// request ahead of it, and reverses when no eligible request remains on the
// current side. The reversal happens in place: the head does not detour to
// the disk edge before turning around, so the sweep boundary is always the
// farthest pending request. diskSize bounds the addressable track range but
// plays no part in selection.
func SCAN(reqs []Request, initialHead, diskSize int, dir Direction) Result {
	return elevator(reqs, initialHead, dir)
}

// elevator is the shared sweep loop behind SCAN and LOOK.
func elevator(reqs []Request, initialHead int, dir Direction) Result {
	if len(reqs) == 0 {
		return Result{}
	}

	working := cloneRequests(reqs)
	rs := newRunState(initialHead)
	sw := &sweep{dir: dir}

	remaining := len(working)
	for remaining > 0 {
		elig := eligible(working, rs.clock)
		if len(elig) == 0 {
			rs.advanceTo(nextArrival(working))
			continue
		}
		rs.service(sw.next(elig, rs.head))
		remaining--
	}
	return rs.result(working)
}
