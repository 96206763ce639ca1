// C-LOOK (circular LOOK) disk scheduling.

package sim

// CLOOK sweeps the head upward only, servicing the nearest eligible request
// at or above it. When no eligible request remains ahead, the head wraps
// directly to the lowest eligible track with no detour through the disk edge:
// the wrap costs the literal distance to that track, unlike C-SCAN's
// head-position-priced jump.
func CLOOK(reqs []Request, initialHead int) Result {
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
			// Wrap: lowest eligible track overall.
			r = lowestAtOrAbove(elig, 0)
		}
		rs.service(r)
		remaining--
	}
	return rs.result(working)
}
