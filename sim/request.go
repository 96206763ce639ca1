// Defines the Request struct that models an individual disk I/O request in the
// simulation. Tracks the target track, arrival time, and service-outcome fields
// filled in when a policy completes the request.

package sim

import "fmt"

// TimeUnset is the sentinel for service/response times that have not been
// assigned yet. A request carries it from construction until the owning
// policy run marks the request completed.
const TimeUnset int64 = -1

// Request models a single disk I/O request's lifecycle in the simulation.
// Each request has:
// - a caller-assigned unique ID (never reused within a run)
// - a target track (cylinder) number
// - an arrival time, the earliest tick at which it may be serviced
// - outcome fields written exactly once when the request is serviced
type Request struct {
	ID          int   // Caller-assigned unique identifier
	Track       int   // Target cylinder/track number
	ArrivalTime int64 // Tick at which the request becomes eligible for service

	ServiceTime  int64 // Tick at which service completed; TimeUnset until then
	ResponseTime int64 // ServiceTime - ArrivalTime; TimeUnset until completion
	Completed    bool  // Set by the owning policy run when serviced
}

// NewRequest constructs a fresh, unserviced request.
func NewRequest(id, track int, arrivalTime int64) Request {
	return Request{
		ID:           id,
		Track:        track,
		ArrivalTime:  arrivalTime,
		ServiceTime:  TimeUnset,
		ResponseTime: TimeUnset,
	}
}

// This method returns a human-readable string representation of a Request.
func (r Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, Track: %d, ArrivalTime: %d, Completed: %v)", r.ID, r.Track, r.ArrivalTime, r.Completed)
}

// cloneRequests produces the policy run's private working set. Policies mutate
// only these copies, so the caller's slice can be re-simulated under another
// policy with no residual state. Outcome fields are reset regardless of what
// the caller passed in.
func cloneRequests(reqs []Request) []*Request {
	out := make([]*Request, len(reqs))
	for i, r := range reqs {
		c := NewRequest(r.ID, r.Track, r.ArrivalTime)
		out[i] = &c
	}
	return out
}

// eligible returns the uncompleted requests that have arrived by tick now,
// in working-set order.
func eligible(reqs []*Request, now int64) []*Request {
	var avail []*Request
	for _, r := range reqs {
		if !r.Completed && r.ArrivalTime <= now {
			avail = append(avail, r)
		}
	}
	return avail
}

// nextArrival returns the minimum arrival time among uncompleted requests,
// or TimeUnset if every request has been serviced.
func nextArrival(reqs []*Request) int64 {
	next := TimeUnset
	for _, r := range reqs {
		if r.Completed {
			continue
		}
		if next == TimeUnset || r.ArrivalTime < next {
			next = r.ArrivalTime
		}
	}
	return next
}
