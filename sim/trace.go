// Head-movement trace types. A policy run appends one HeadMovement per
// serviced request, plus a synthetic start event and, for C-SCAN, the wrap
// event tagged ActionJumpToStart.

package sim

// ActionJumpToStart tags the C-SCAN wrap event: the head seeks back to track 0
// before resuming its ascending sweep. No request is serviced by this move.
const ActionJumpToStart = "jump_to_start"

// HeadMovement is one entry in a simulation's head-movement trace.
// The first entry is always synthetic: the head's starting position at tick 0,
// with no request and no seek distance.
type HeadMovement struct {
	Position     int    `json:"position"`
	Time         int64  `json:"time"`
	RequestID    *int   `json:"request"`                 // nil for the start event and wrap events
	SeekDistance *int   `json:"seek_distance,omitempty"` // absent on the start event
	Action       string `json:"action,omitempty"`        // ActionJumpToStart on C-SCAN wraps
}

// Result is the outcome of a single policy run.
type Result struct {
	Trace         []HeadMovement `json:"head_movement"`
	TotalSeekTime int            `json:"total_seek_time"`
	Statistics    Statistics     `json:"statistics"`
}
