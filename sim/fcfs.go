// First-Come-First-Served disk scheduling.

package sim

import "sort"

// FCFS services requests in strict (arrivalTime, id) order, regardless of
// track layout. The head simply waits whenever the next request's arrival is
// still in the future. Simple, fair, and prone to excessive head movement.
func FCFS(reqs []Request, initialHead int) Result {
	if len(reqs) == 0 {
		return Result{}
	}

	working := cloneRequests(reqs)
	sort.SliceStable(working, func(i, j int) bool {
		if working[i].ArrivalTime != working[j].ArrivalTime {
			return working[i].ArrivalTime < working[j].ArrivalTime
		}
		return working[i].ID < working[j].ID
	})

	rs := newRunState(initialHead)
	for _, r := range working {
		rs.waitUntil(r.ArrivalTime)
		rs.service(r)
	}
	return rs.result(working)
}
